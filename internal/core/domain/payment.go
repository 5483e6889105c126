package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod is how the customer paid.
type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "CASH"
	PaymentTransfer PaymentMethod = "TRANSFER"
	PaymentCard     PaymentMethod = "CARD"
)

// Payment is a receipt: one amount split across one or more consulted
// services. Payments are immutable once created; corrections are new
// payments.
type Payment struct {
	PaymentID     string              `json:"paymentID"`
	PaymentNumber string              `json:"paymentNumber"` // e.g. PT-2507-0001
	CustomerID    string              `json:"customerID"`
	Amount        decimal.Decimal     `json:"amount"`
	Method        PaymentMethod       `json:"method"`
	PaymentDate   time.Time           `json:"paymentDate"`
	Notes         string              `json:"notes"`
	Allocations   []PaymentAllocation `json:"allocations"`
	CreatedAt     time.Time           `json:"createdAt"`
	CreatedBy     string              `json:"createdBy"`
}

// PaymentAllocation settles part of a payment against one consulted service.
type PaymentAllocation struct {
	AllocationID       string          `json:"allocationID"`
	PaymentID          string          `json:"paymentID"`
	ConsultedServiceID string          `json:"consultedServiceID"`
	Amount             decimal.Decimal `json:"amount"`
}

// AllocationTotal sums the allocation amounts. A valid payment's Amount
// equals this total exactly.
func AllocationTotal(allocations []PaymentAllocation) decimal.Decimal {
	total := decimal.Zero
	for _, alloc := range allocations {
		total = total.Add(alloc.Amount)
	}
	return total
}
