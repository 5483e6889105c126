package repositories

import (
	"context"
	"time"

	"github.com/hndang/clinic_mgmt_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// CustomerReader defines read operations for customer data.
type CustomerReader interface {
	// FindCustomerByID retrieves a customer by its unique identifier.
	FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error)

	// FindCustomerInTx retrieves a customer inside an open transaction so
	// the row joins the transaction's read set.
	FindCustomerInTx(ctx context.Context, tx pgx.Tx, customerID string) (*domain.Customer, error)

	// FindCustomerByPhone retrieves a customer of a clinic by phone number.
	FindCustomerByPhone(ctx context.Context, clinicID, phone string) (*domain.Customer, error)

	// ListCustomersByClinic retrieves a cursor-paginated customer list.
	// clinicID may be empty to list across clinics.
	ListCustomersByClinic(ctx context.Context, clinicID string, limit int, nextToken *string) ([]domain.Customer, *string, error)

	// ListUncodedCustomerIDs returns IDs of customers without a customer
	// code, oldest first. Used by the code assigner's startup sweep.
	ListUncodedCustomerIDs(ctx context.Context, limit int) ([]string, error)
}

// CustomerWriter defines write operations for customer data.
type CustomerWriter interface {
	// CreateCustomerInTx inserts a new customer row inside an open
	// transaction, so record creation and code assignment commit as one.
	CreateCustomerInTx(ctx context.Context, tx pgx.Tx, customer domain.Customer) error

	// AssignCustomerCodeInTx patches the code onto an existing customer row.
	AssignCustomerCodeInTx(ctx context.Context, tx pgx.Tx, customerID, code string, updatedAt time.Time) error

	// UpdateCustomer updates a customer's editable fields (never the code).
	UpdateCustomer(ctx context.Context, customer domain.Customer) error

	// DeleteCustomer removes a customer row.
	DeleteCustomer(ctx context.Context, customerID string) error
}

// CustomerRepositoryFacade combines all customer repository interfaces.
type CustomerRepositoryFacade interface {
	CustomerReader
	CustomerWriter
}
