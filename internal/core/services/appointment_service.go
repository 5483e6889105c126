package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hndang/clinic_mgmt_app/internal/core/domain"
	portsrepo "github.com/hndang/clinic_mgmt_app/internal/core/ports/repositories"
	"github.com/hndang/clinic_mgmt_app/internal/dto"
)

const defaultAppointmentMins = 30

// AppointmentService manages calendar appointments.
type AppointmentService struct {
	appointmentRepo portsrepo.AppointmentRepositoryFacade
	customerRepo    portsrepo.CustomerRepositoryFacade
}

func NewAppointmentService(appointmentRepo portsrepo.AppointmentRepositoryFacade, customerRepo portsrepo.CustomerRepositoryFacade) *AppointmentService {
	return &AppointmentService{appointmentRepo: appointmentRepo, customerRepo: customerRepo}
}

func (s *AppointmentService) GetAppointmentByID(ctx context.Context, appointmentID string) (*domain.Appointment, error) {
	appointment, err := s.appointmentRepo.FindAppointmentByID(ctx, appointmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get appointment %s: %w", appointmentID, err)
	}
	return appointment, nil
}

func (s *AppointmentService) ListAppointments(ctx context.Context, clinicID string, from, to time.Time) ([]domain.Appointment, error) {
	appointments, err := s.appointmentRepo.ListAppointmentsInRange(ctx, clinicID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	if appointments == nil {
		return []domain.Appointment{}, nil
	}
	return appointments, nil
}

// CreateAppointment books a visit, denormalizing the customer name so the
// calendar renders without joins.
func (s *AppointmentService) CreateAppointment(ctx context.Context, req dto.CreateAppointmentRequest, creatorID string) (*domain.Appointment, error) {
	customer, err := s.customerRepo.FindCustomerByID(ctx, req.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve customer %s: %w", req.CustomerID, err)
	}

	duration := req.DurationMins
	if duration == 0 {
		duration = defaultAppointmentMins
	}

	now := time.Now()
	appointment := domain.Appointment{
		AppointmentID: uuid.NewString(),
		CustomerID:    req.CustomerID,
		CustomerName:  customer.FullName,
		ClinicID:      req.ClinicID,
		ScheduledAt:   req.ScheduledAt,
		DurationMins:  duration,
		Status:        domain.AppointmentScheduled,
		Notes:         req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorID,
		},
	}
	if err := s.appointmentRepo.CreateAppointment(ctx, appointment); err != nil {
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}
	return &appointment, nil
}

func (s *AppointmentService) UpdateAppointment(ctx context.Context, appointmentID string, req dto.UpdateAppointmentRequest, updaterID string) (*domain.Appointment, error) {
	appointment, err := s.appointmentRepo.FindAppointmentByID(ctx, appointmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get appointment %s for update: %w", appointmentID, err)
	}

	if req.ScheduledAt != nil {
		appointment.ScheduledAt = *req.ScheduledAt
	}
	if req.DurationMins != nil {
		appointment.DurationMins = *req.DurationMins
	}
	if req.Status != nil {
		appointment.Status = domain.AppointmentStatus(*req.Status)
	}
	if req.Notes != nil {
		appointment.Notes = *req.Notes
	}
	appointment.LastUpdatedAt = time.Now()
	appointment.LastUpdatedBy = updaterID

	if err := s.appointmentRepo.UpdateAppointment(ctx, *appointment); err != nil {
		return nil, fmt.Errorf("failed to update appointment %s: %w", appointmentID, err)
	}
	return appointment, nil
}

func (s *AppointmentService) DeleteAppointment(ctx context.Context, appointmentID string) error {
	if err := s.appointmentRepo.DeleteAppointment(ctx, appointmentID); err != nil {
		return fmt.Errorf("failed to delete appointment %s: %w", appointmentID, err)
	}
	return nil
}
