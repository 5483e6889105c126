package services

import (
	"context"

	"github.com/hndang/clinic_mgmt_app/internal/core/domain"
	"github.com/hndang/clinic_mgmt_app/internal/dto"
)

// CustomerReaderSvc defines read operations for customer data.
type CustomerReaderSvc interface {
	// GetCustomerByID retrieves a specific customer.
	GetCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error)

	// ListCustomers retrieves a cursor-paginated customer list, optionally
	// filtered by clinic.
	ListCustomers(ctx context.Context, params dto.ListCustomersParams) (*dto.ListCustomersResponse, error)
}

// CustomerWriterSvc defines write operations for customer data.
type CustomerWriterSvc interface {
	// CreateCustomer creates a customer and mints its customer code in one
	// atomic transaction; the returned customer always carries its code.
	CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest, creatorID string) (*domain.Customer, error)

	// UpdateCustomer updates a customer's editable fields.
	UpdateCustomer(ctx context.Context, customerID string, req dto.UpdateCustomerRequest, updaterID string) (*domain.Customer, error)

	// DeleteCustomer removes a customer.
	DeleteCustomer(ctx context.Context, customerID string) error
}

// CustomerCodeAssignerSvc assigns codes to customers that were persisted
// without one (rows inserted out-of-band). Safe against duplicate
// invocation: an already-coded customer is left untouched.
type CustomerCodeAssignerSvc interface {
	// AssignCustomerCode mints and patches the code for one customer,
	// returning the code now on the record (freshly minted or pre-existing).
	AssignCustomerCode(ctx context.Context, customerID string) (string, error)

	// ListUncodedCustomerIDs exposes the sweep query for the assigner loop.
	ListUncodedCustomerIDs(ctx context.Context, limit int) ([]string, error)
}

// CustomerSvcFacade combines all customer service interfaces.
type CustomerSvcFacade interface {
	CustomerReaderSvc
	CustomerWriterSvc
	CustomerCodeAssignerSvc
}
