package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is the row shape for the payments table. Rows are insert-only.
type Payment struct {
	PaymentID     string          `json:"paymentID" db:"payment_id"`
	PaymentNumber string          `json:"paymentNumber" db:"payment_number"`
	CustomerID    string          `json:"customerID" db:"customer_id"`
	Amount        decimal.Decimal `json:"amount" db:"amount"`
	Method        string          `json:"method" db:"method"`
	PaymentDate   time.Time       `json:"paymentDate" db:"payment_date"`
	Notes         string          `json:"notes" db:"notes"`
	CreatedAt     time.Time       `json:"createdAt" db:"created_at"`
	CreatedBy     string          `json:"createdBy" db:"created_by"`
}

// PaymentAllocation is the row shape for the payment_allocations table.
type PaymentAllocation struct {
	AllocationID       string          `json:"allocationID" db:"allocation_id"`
	PaymentID          string          `json:"paymentID" db:"payment_id"`
	ConsultedServiceID string          `json:"consultedServiceID" db:"consulted_service_id"`
	Amount             decimal.Decimal `json:"amount" db:"amount"`
}
