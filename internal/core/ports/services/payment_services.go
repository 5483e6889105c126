package services

import (
	"context"

	"github.com/hndang/clinic_mgmt_app/internal/core/domain"
	"github.com/hndang/clinic_mgmt_app/internal/dto"
)

// PaymentReaderSvc defines read operations for payments.
type PaymentReaderSvc interface {
	// GetPaymentByID retrieves a payment with its allocations.
	GetPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error)

	// ListPaymentsByCustomer retrieves a customer's payments, newest first.
	ListPaymentsByCustomer(ctx context.Context, customerID string, params dto.ListPaymentsParams) (*dto.ListPaymentsResponse, error)
}

// PaymentWriterSvc defines the allocator entry point.
type PaymentWriterSvc interface {
	// CreatePayment validates the draft, then atomically mints the payment
	// number, writes the payment and its allocations, and moves each
	// target's balance. All-or-nothing: a missing target or an allocation
	// above a target's debt aborts the whole transaction.
	CreatePayment(ctx context.Context, req dto.CreatePaymentRequest, creatorID string) (*domain.Payment, error)
}

// PaymentSvcFacade combines all payment service interfaces.
type PaymentSvcFacade interface {
	PaymentReaderSvc
	PaymentWriterSvc
}
