package dto

import (
	"time"

	"github.com/hndang/clinic_mgmt_app/internal/core/domain"
)

// CreateAppointmentRequest defines a new calendar entry.
type CreateAppointmentRequest struct {
	CustomerID   string    `json:"customerID" binding:"required"`
	ClinicID     string    `json:"clinicID" binding:"required"`
	ScheduledAt  time.Time `json:"scheduledAt" binding:"required"`
	DurationMins int       `json:"durationMins" binding:"omitempty,min=5,max=480"`
	Notes        string    `json:"notes"`
}

// UpdateAppointmentRequest defines the editable appointment fields.
type UpdateAppointmentRequest struct {
	ScheduledAt  *time.Time `json:"scheduledAt"`
	DurationMins *int       `json:"durationMins" binding:"omitempty,min=5,max=480"`
	Status       *string    `json:"status" binding:"omitempty,oneof=SCHEDULED ARRIVED CANCELLED NO_SHOW"`
	Notes        *string    `json:"notes"`
}

// ListAppointmentsParams defines query parameters for the calendar view.
type ListAppointmentsParams struct {
	ClinicID string    `form:"clinicID"`
	From     time.Time `form:"from" time_format:"2006-01-02" binding:"required"`
	To       time.Time `form:"to" time_format:"2006-01-02" binding:"required"`
}

// AppointmentResponse defines the data returned for an appointment.
type AppointmentResponse struct {
	AppointmentID string    `json:"appointmentID"`
	CustomerID    string    `json:"customerID"`
	CustomerName  string    `json:"customerName"`
	ClinicID      string    `json:"clinicID"`
	ScheduledAt   time.Time `json:"scheduledAt"`
	DurationMins  int       `json:"durationMins"`
	Status        string    `json:"status"`
	Notes         string    `json:"notes"`
}

// ToAppointmentResponse converts a domain.Appointment to its response form.
func ToAppointmentResponse(a *domain.Appointment) AppointmentResponse {
	return AppointmentResponse{
		AppointmentID: a.AppointmentID,
		CustomerID:    a.CustomerID,
		CustomerName:  a.CustomerName,
		ClinicID:      a.ClinicID,
		ScheduledAt:   a.ScheduledAt,
		DurationMins:  a.DurationMins,
		Status:        string(a.Status),
		Notes:         a.Notes,
	}
}

// ToListAppointmentResponse converts a slice of appointments.
func ToListAppointmentResponse(appointments []domain.Appointment) []AppointmentResponse {
	res := make([]AppointmentResponse, len(appointments))
	for i, a := range appointments {
		res[i] = ToAppointmentResponse(&a)
	}
	return res
}
