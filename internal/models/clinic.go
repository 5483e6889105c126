package models

// Clinic is the row shape for the clinics reference table.
type Clinic struct {
	ClinicID string `json:"clinicID" db:"clinic_id"`
	Prefix   string `json:"prefix" db:"prefix"`
	Name     string `json:"name" db:"name"`
}
