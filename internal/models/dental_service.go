package models

import "github.com/shopspring/decimal"

// DentalService is the row shape for the dental_services catalog table.
type DentalService struct {
	ServiceID string          `json:"serviceID" db:"service_id"`
	Name      string          `json:"name" db:"name"`
	Category  string          `json:"category" db:"category"`
	UnitPrice decimal.Decimal `json:"unitPrice" db:"unit_price"`
	IsActive  bool            `json:"isActive" db:"is_active"`
	AuditFields
}
