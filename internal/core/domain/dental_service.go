package domain

import "github.com/shopspring/decimal"

// DentalService is a catalog entry: a priced service the clinic offers.
type DentalService struct {
	ServiceID string          `json:"serviceID"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	IsActive  bool            `json:"isActive"`
	AuditFields
}
