package services

import (
	"context"
	"time"

	"github.com/hndang/clinic_mgmt_app/internal/core/domain"
	"github.com/hndang/clinic_mgmt_app/internal/dto"
)

// AppointmentSvcFacade manages calendar appointments.
type AppointmentSvcFacade interface {
	// GetAppointmentByID retrieves one appointment.
	GetAppointmentByID(ctx context.Context, appointmentID string) (*domain.Appointment, error)

	// ListAppointments retrieves appointments inside a day range.
	ListAppointments(ctx context.Context, clinicID string, from, to time.Time) ([]domain.Appointment, error)

	// CreateAppointment books a visit for a customer.
	CreateAppointment(ctx context.Context, req dto.CreateAppointmentRequest, creatorID string) (*domain.Appointment, error)

	// UpdateAppointment reschedules or re-statuses a visit.
	UpdateAppointment(ctx context.Context, appointmentID string, req dto.UpdateAppointmentRequest, updaterID string) (*domain.Appointment, error)

	// DeleteAppointment removes a visit from the calendar.
	DeleteAppointment(ctx context.Context, appointmentID string) error
}

// TreatmentPlanSvcFacade manages treatment plans.
type TreatmentPlanSvcFacade interface {
	// GetTreatmentPlanByID retrieves one plan.
	GetTreatmentPlanByID(ctx context.Context, planID string) (*domain.TreatmentPlan, error)

	// ListTreatmentPlansByCustomer retrieves a customer's plans.
	ListTreatmentPlansByCustomer(ctx context.Context, customerID string) ([]domain.TreatmentPlan, error)

	// CreateTreatmentPlan creates a plan in the PROPOSED state.
	CreateTreatmentPlan(ctx context.Context, req dto.CreateTreatmentPlanRequest, creatorID string) (*domain.TreatmentPlan, error)

	// UpdateTreatmentPlan updates a plan's fields or item list.
	UpdateTreatmentPlan(ctx context.Context, planID string, req dto.UpdateTreatmentPlanRequest, updaterID string) (*domain.TreatmentPlan, error)
}

// FollowUpSvcFacade manages the append-only care-call log.
type FollowUpSvcFacade interface {
	// AddFollowUpCall appends one call record.
	AddFollowUpCall(ctx context.Context, req dto.CreateFollowUpCallRequest, creatorID string) (*domain.FollowUpCall, error)

	// ListFollowUpCallsByCustomer retrieves a customer's calls, newest first.
	ListFollowUpCallsByCustomer(ctx context.Context, customerID string) ([]domain.FollowUpCall, error)

	// ListRecentFollowUpCalls retrieves the latest calls across customers.
	ListRecentFollowUpCalls(ctx context.Context, limit int) ([]domain.FollowUpCall, error)
}

// SessionSvcFacade manages per-day treatment sessions.
type SessionSvcFacade interface {
	// AddSessionDetails appends procedures to the customer's session on the
	// given day, creating the session when the day has none. Existing
	// details are preserved; the new ones are merged after them.
	AddSessionDetails(ctx context.Context, req dto.AddSessionDetailsRequest, updaterID string) (*domain.TreatmentSession, error)

	// ListSessionsByCustomer retrieves a customer's sessions.
	ListSessionsByCustomer(ctx context.Context, customerID string) ([]domain.TreatmentSession, error)
}
