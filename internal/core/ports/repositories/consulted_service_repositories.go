package repositories

import (
	"context"
	"time"

	"github.com/hndang/clinic_mgmt_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// ConsultedServiceReader defines read operations for debt-bearing services.
type ConsultedServiceReader interface {
	// FindConsultedServiceByID retrieves a consulted service by ID.
	FindConsultedServiceByID(ctx context.Context, consultedServiceID string) (*domain.ConsultedService, error)

	// FindConsultedServiceInTx retrieves a consulted service inside an open
	// transaction. The allocator's read phase uses this so the row's
	// balance joins the transaction's conflict-detection read set.
	FindConsultedServiceInTx(ctx context.Context, tx pgx.Tx, consultedServiceID string) (*domain.ConsultedService, error)

	// ListConsultedServicesByCustomer retrieves all consulted services of a
	// customer, newest first.
	ListConsultedServicesByCustomer(ctx context.Context, customerID string) ([]domain.ConsultedService, error)
}

// ConsultedServiceWriter defines write operations for debt-bearing services.
type ConsultedServiceWriter interface {
	// CreateConsultedService inserts a new consulted service with a zero
	// amount paid.
	CreateConsultedService(ctx context.Context, service domain.ConsultedService) error

	// UpdateConsultedService updates descriptive fields (name, status,
	// notes). Balance fields are out of reach here.
	UpdateConsultedService(ctx context.Context, service domain.ConsultedService) error

	// ApplyAllocationInTx sets the new cumulative amount paid on a target
	// inside an open transaction. Only the payment allocator calls this.
	ApplyAllocationInTx(ctx context.Context, tx pgx.Tx, consultedServiceID string, amountPaid decimal.Decimal, updatedAt time.Time, updatedBy string) error
}

// ConsultedServiceRepositoryFacade combines the consulted-service interfaces.
type ConsultedServiceRepositoryFacade interface {
	ConsultedServiceReader
	ConsultedServiceWriter
}
