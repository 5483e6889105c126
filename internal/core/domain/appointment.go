package domain

import "time"

// AppointmentStatus tracks whether the visit happened.
type AppointmentStatus string

const (
	AppointmentScheduled AppointmentStatus = "SCHEDULED"
	AppointmentArrived   AppointmentStatus = "ARRIVED"
	AppointmentCancelled AppointmentStatus = "CANCELLED"
	AppointmentNoShow    AppointmentStatus = "NO_SHOW"
)

// Appointment is a calendar entry for a customer visit. CustomerName is
// denormalized so the calendar view renders without a join.
type Appointment struct {
	AppointmentID string            `json:"appointmentID"`
	CustomerID    string            `json:"customerID"`
	CustomerName  string            `json:"customerName"`
	ClinicID      string            `json:"clinicID"`
	ScheduledAt   time.Time         `json:"scheduledAt"`
	DurationMins  int               `json:"durationMins"`
	Status        AppointmentStatus `json:"status"`
	Notes         string            `json:"notes"`
	AuditFields
}
