package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ConsultedServiceStatus tracks the lifecycle of a consulted service.
type ConsultedServiceStatus string

const (
	ConsultedServiceConfirmed ConsultedServiceStatus = "CONFIRMED"
	ConsultedServiceCompleted ConsultedServiceStatus = "COMPLETED"
)

// ConsultedService is a debt-bearing record: a catalog service sold to a
// customer. FinalPrice is the total owed, AmountPaid the cumulative amount
// settled. Both balance fields are mutated only by the payment allocator.
type ConsultedService struct {
	ConsultedServiceID string                 `json:"consultedServiceID"`
	CustomerID         string                 `json:"customerID"`
	ServiceID          string                 `json:"serviceID"`
	ServiceName        string                 `json:"serviceName"` // denormalized from the catalog at sale time
	Quantity           int                    `json:"quantity"`
	UnitPrice          decimal.Decimal        `json:"unitPrice"`
	Discount           decimal.Decimal        `json:"discount"`
	FinalPrice         decimal.Decimal        `json:"finalPrice"`
	AmountPaid         decimal.Decimal        `json:"amountPaid"`
	Status             ConsultedServiceStatus `json:"status"`
	ConsultedAt        time.Time              `json:"consultedAt"`
	AuditFields
}

// Debt is the outstanding balance. Never negative after a correct allocation.
func (s ConsultedService) Debt() decimal.Decimal {
	return s.FinalPrice.Sub(s.AmountPaid)
}

// WithAllocation returns a copy with the allocation applied to AmountPaid.
// Bounds against the current debt are the allocator's responsibility; this
// is the pure balance arithmetic of the transaction's compute phase.
func (s ConsultedService) WithAllocation(amount decimal.Decimal) ConsultedService {
	s.AmountPaid = s.AmountPaid.Add(amount)
	return s
}

// CalculateFinalPrice derives the total owed from quantity, unit price and
// an absolute discount.
func CalculateFinalPrice(quantity int, unitPrice, discount decimal.Decimal) decimal.Decimal {
	gross := unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
	return gross.Sub(discount)
}
