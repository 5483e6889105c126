package repositories

import (
	"context"
	"time"

	"github.com/hndang/clinic_mgmt_app/internal/core/domain"
)

// AppointmentRepositoryFacade covers calendar appointments.
type AppointmentRepositoryFacade interface {
	// FindAppointmentByID retrieves one appointment.
	FindAppointmentByID(ctx context.Context, appointmentID string) (*domain.Appointment, error)

	// ListAppointmentsInRange retrieves appointments scheduled inside
	// [from, to), optionally filtered by clinic.
	ListAppointmentsInRange(ctx context.Context, clinicID string, from, to time.Time) ([]domain.Appointment, error)

	// CreateAppointment inserts a new appointment.
	CreateAppointment(ctx context.Context, appointment domain.Appointment) error

	// UpdateAppointment updates an appointment.
	UpdateAppointment(ctx context.Context, appointment domain.Appointment) error

	// DeleteAppointment removes an appointment.
	DeleteAppointment(ctx context.Context, appointmentID string) error
}
