package repositories

import (
	"context"

	"github.com/hndang/clinic_mgmt_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// PaymentReader defines read operations for payment data.
type PaymentReader interface {
	// FindPaymentByID retrieves a payment with its allocations.
	FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error)

	// ListPaymentsByCustomer retrieves a cursor-paginated payment list for
	// a customer, newest first, allocations included.
	ListPaymentsByCustomer(ctx context.Context, customerID string, limit int, nextToken *string) ([]domain.Payment, *string, error)
}

// PaymentWriter defines write operations for payment data.
type PaymentWriter interface {
	// CreatePaymentInTx inserts the payment row and its allocation rows
	// inside an open transaction. Payments are immutable afterwards.
	CreatePaymentInTx(ctx context.Context, tx pgx.Tx, payment domain.Payment) error
}

// PaymentRepositoryFacade combines all payment repository interfaces.
type PaymentRepositoryFacade interface {
	PaymentReader
	PaymentWriter
}
