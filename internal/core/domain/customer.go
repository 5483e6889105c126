package domain

import "time"

// Customer is a patient record. CustomerCode is minted from the clinic's
// monthly counter; it is empty only for rows inserted out-of-band before the
// code assigner has picked them up, and immutable once set.
type Customer struct {
	CustomerID   string     `json:"customerID"`
	CustomerCode string     `json:"customerCode"`
	ClinicID     string     `json:"clinicID"`
	FullName     string     `json:"fullName"`
	Phone        string     `json:"phone"`
	Email        string     `json:"email"`
	DateOfBirth  *time.Time `json:"dateOfBirth,omitempty"`
	Gender       string     `json:"gender"`
	Address      string     `json:"address"`
	Source       string     `json:"source"` // how the customer found the clinic
	Notes        string     `json:"notes"`
	AuditFields
}

// IsCoded reports whether the customer already carries a customer code.
// The reactive code assigner uses this as its idempotency guard.
func (c Customer) IsCoded() bool {
	return c.CustomerCode != ""
}
