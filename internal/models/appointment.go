package models

import "time"

// Appointment is the row shape for the appointments table.
type Appointment struct {
	AppointmentID string    `json:"appointmentID" db:"appointment_id"`
	CustomerID    string    `json:"customerID" db:"customer_id"`
	CustomerName  string    `json:"customerName" db:"customer_name"`
	ClinicID      string    `json:"clinicID" db:"clinic_id"`
	ScheduledAt   time.Time `json:"scheduledAt" db:"scheduled_at"`
	DurationMins  int       `json:"durationMins" db:"duration_mins"`
	Status        string    `json:"status" db:"status"`
	Notes         string    `json:"notes" db:"notes"`
	AuditFields
}
