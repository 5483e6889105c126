package models

import "time"

// Customer is the row shape for the customers table. CustomerCode is
// nullable: rows inserted out-of-band exist briefly without a code until
// the assigner patches them.
type Customer struct {
	CustomerID   string     `json:"customerID" db:"customer_id"`
	CustomerCode *string    `json:"customerCode" db:"customer_code"`
	ClinicID     string     `json:"clinicID" db:"clinic_id"`
	FullName     string     `json:"fullName" db:"full_name"`
	Phone        string     `json:"phone" db:"phone"`
	Email        string     `json:"email" db:"email"`
	DateOfBirth  *time.Time `json:"dateOfBirth" db:"date_of_birth"`
	Gender       string     `json:"gender" db:"gender"`
	Address      string     `json:"address" db:"address"`
	Source       string     `json:"source" db:"source"`
	Notes        string     `json:"notes" db:"notes"`
	AuditFields
}
