package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ConsultedServiceStatus mirrors domain.ConsultedServiceStatus at the row level.
type ConsultedServiceStatus string

// ConsultedService is the row shape for the consulted_services table.
// amount_paid and the derived debt move only inside payment transactions.
type ConsultedService struct {
	ConsultedServiceID string                 `json:"consultedServiceID" db:"consulted_service_id"`
	CustomerID         string                 `json:"customerID" db:"customer_id"`
	ServiceID          string                 `json:"serviceID" db:"service_id"`
	ServiceName        string                 `json:"serviceName" db:"service_name"`
	Quantity           int                    `json:"quantity" db:"quantity"`
	UnitPrice          decimal.Decimal        `json:"unitPrice" db:"unit_price"`
	Discount           decimal.Decimal        `json:"discount" db:"discount"`
	FinalPrice         decimal.Decimal        `json:"finalPrice" db:"final_price"`
	AmountPaid         decimal.Decimal        `json:"amountPaid" db:"amount_paid"`
	Status             ConsultedServiceStatus `json:"status" db:"status"`
	ConsultedAt        time.Time              `json:"consultedAt" db:"consulted_at"`
	AuditFields
}
