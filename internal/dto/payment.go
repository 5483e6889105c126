package dto

import (
	"time"

	"github.com/hndang/clinic_mgmt_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AllocationRequest is one (target, amount) pair of a payment draft.
type AllocationRequest struct {
	ConsultedServiceID string          `json:"consultedServiceID" binding:"required"`
	Amount             decimal.Decimal `json:"amount" binding:"required"`
}

// CreatePaymentRequest defines a payment draft. The payment number is
// minted inside the transaction; the declared amount must equal the sum of
// the allocation amounts.
type CreatePaymentRequest struct {
	CustomerID  string              `json:"customerID" binding:"required"`
	Amount      decimal.Decimal     `json:"amount" binding:"required"`
	Method      string              `json:"method" binding:"required,oneof=CASH TRANSFER CARD"`
	PaymentDate time.Time           `json:"paymentDate" binding:"required"`
	Notes       string              `json:"notes"`
	Allocations []AllocationRequest `json:"allocations" binding:"required"`
}

// AllocationResponse mirrors one persisted allocation.
type AllocationResponse struct {
	AllocationID       string          `json:"allocationID"`
	ConsultedServiceID string          `json:"consultedServiceID"`
	Amount             decimal.Decimal `json:"amount"`
}

// PaymentResponse defines the data returned for a payment.
type PaymentResponse struct {
	PaymentID     string               `json:"paymentID"`
	PaymentNumber string               `json:"paymentNumber"`
	CustomerID    string               `json:"customerID"`
	Amount        decimal.Decimal      `json:"amount"`
	Method        string               `json:"method"`
	PaymentDate   time.Time            `json:"paymentDate"`
	Notes         string               `json:"notes"`
	Allocations   []AllocationResponse `json:"allocations"`
	CreatedAt     time.Time            `json:"createdAt"`
	CreatedBy     string               `json:"createdBy"`
}

// ListPaymentsParams defines query parameters for listing payments.
type ListPaymentsParams struct {
	Limit     int     `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
	NextToken *string `form:"nextToken"`
}

// ListPaymentsResponse is one page of payments plus the next cursor.
type ListPaymentsResponse struct {
	Payments  []PaymentResponse `json:"payments"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// ToPaymentResponse converts a domain.Payment to PaymentResponse.
func ToPaymentResponse(p *domain.Payment) PaymentResponse {
	allocs := make([]AllocationResponse, len(p.Allocations))
	for i, a := range p.Allocations {
		allocs[i] = AllocationResponse{
			AllocationID:       a.AllocationID,
			ConsultedServiceID: a.ConsultedServiceID,
			Amount:             a.Amount,
		}
	}
	return PaymentResponse{
		PaymentID:     p.PaymentID,
		PaymentNumber: p.PaymentNumber,
		CustomerID:    p.CustomerID,
		Amount:        p.Amount,
		Method:        string(p.Method),
		PaymentDate:   p.PaymentDate,
		Notes:         p.Notes,
		Allocations:   allocs,
		CreatedAt:     p.CreatedAt,
		CreatedBy:     p.CreatedBy,
	}
}

// ToListPaymentsResponse converts a payment page to its response form.
func ToListPaymentsResponse(payments []domain.Payment, nextToken *string) ListPaymentsResponse {
	res := make([]PaymentResponse, len(payments))
	for i, p := range payments {
		res[i] = ToPaymentResponse(&p)
	}
	return ListPaymentsResponse{Payments: res, NextToken: nextToken}
}
