package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/hndang/clinic_mgmt_app/internal/core/domain"
	portsrepo "github.com/hndang/clinic_mgmt_app/internal/core/ports/repositories"
	"github.com/hndang/clinic_mgmt_app/internal/dto"
	"github.com/hndang/clinic_mgmt_app/internal/middleware"
	"github.com/jackc/pgx/v5"
)

type CustomerService struct {
	txRunner     portsrepo.TxRunner
	customerRepo portsrepo.CustomerRepositoryFacade
	clinicRepo   portsrepo.ClinicRepository
	counterRepo  portsrepo.CounterRepository
}

func NewCustomerService(txRunner portsrepo.TxRunner, customerRepo portsrepo.CustomerRepositoryFacade, clinicRepo portsrepo.ClinicRepository, counterRepo portsrepo.CounterRepository) *CustomerService {
	return &CustomerService{
		txRunner:     txRunner,
		customerRepo: customerRepo,
		clinicRepo:   clinicRepo,
		counterRepo:  counterRepo,
	}
}

// CreateCustomer persists a new customer and mints its customer code in one
// transaction: insert, counter bump and code patch commit together, so a
// customer created through the API is never observable without a code.
func (s *CustomerService) CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest, creatorID string) (*domain.Customer, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	clinic, err := s.clinicRepo.FindClinicByID(ctx, req.ClinicID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve clinic %s: %w", req.ClinicID, err)
	}

	// The scope month is fixed here; transaction retries that straddle a
	// month boundary keep the scope of the first attempt.
	now := time.Now()
	scope := domain.MonthScope(clinic.Prefix, now)

	base := domain.Customer{
		CustomerID:  uuid.NewString(),
		ClinicID:    req.ClinicID,
		FullName:    req.FullName,
		Phone:       req.Phone,
		Email:       req.Email,
		DateOfBirth: req.DateOfBirth,
		Gender:      req.Gender,
		Address:     req.Address,
		Source:      req.Source,
		Notes:       req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorID,
		},
	}

	var created domain.Customer
	err = s.txRunner.RunSerializable(ctx, func(tx pgx.Tx) error {
		seq, err := s.counterRepo.NextSequence(ctx, tx, scope)
		if err != nil {
			return err
		}
		customer := base
		customer.CustomerCode = domain.FormatCode(scope, seq, domain.CustomerCodeWidth)
		if err := s.customerRepo.CreateCustomerInTx(ctx, tx, customer); err != nil {
			return err
		}
		created = customer
		return nil
	})
	if err != nil {
		logger.Error("Failed to create customer", slog.String("error", err.Error()), slog.String("clinic_id", req.ClinicID))
		return nil, err
	}

	logger.Info("Customer created", slog.String("customer_id", created.CustomerID), slog.String("customer_code", created.CustomerCode))
	return &created, nil
}

// AssignCustomerCode mints and patches the code for one customer. Rows
// inserted out-of-band (imports, manual SQL) arrive without a code; the
// reactive assigner funnels them here. Idempotent: a customer that already
// carries a code is returned untouched, so redelivered notifications and
// sweep/notification races cannot mint twice.
func (s *CustomerService) AssignCustomerCode(ctx context.Context, customerID string) (string, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	var code string
	err := s.txRunner.RunSerializable(ctx, func(tx pgx.Tx) error {
		customer, err := s.customerRepo.FindCustomerInTx(ctx, tx, customerID)
		if err != nil {
			return err
		}
		if customer.IsCoded() {
			code = customer.CustomerCode
			return nil
		}

		clinic, err := s.clinicRepo.FindClinicByID(ctx, customer.ClinicID)
		if err != nil {
			return fmt.Errorf("failed to resolve clinic %s: %w", customer.ClinicID, err)
		}

		// Scoped to the customer's creation month: a sweep that runs after
		// a month boundary still codes the row under the month it was
		// created in.
		scope := domain.MonthScope(clinic.Prefix, customer.CreatedAt)
		seq, err := s.counterRepo.NextSequence(ctx, tx, scope)
		if err != nil {
			return err
		}
		code = domain.FormatCode(scope, seq, domain.CustomerCodeWidth)
		return s.customerRepo.AssignCustomerCodeInTx(ctx, tx, customerID, code, time.Now())
	})
	if err != nil {
		logger.Error("Failed to assign customer code", slog.String("error", err.Error()), slog.String("customer_id", customerID))
		return "", err
	}
	return code, nil
}

// ListUncodedCustomerIDs exposes the sweep query for the assigner loop.
func (s *CustomerService) ListUncodedCustomerIDs(ctx context.Context, limit int) ([]string, error) {
	return s.customerRepo.ListUncodedCustomerIDs(ctx, limit)
}

// GetCustomerByID retrieves a specific customer.
func (s *CustomerService) GetCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	customer, err := s.customerRepo.FindCustomerByID(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get customer %s: %w", customerID, err)
	}
	return customer, nil
}

// ListCustomers retrieves a cursor-paginated customer list.
func (s *CustomerService) ListCustomers(ctx context.Context, params dto.ListCustomersParams) (*dto.ListCustomersResponse, error) {
	customers, nextToken, err := s.customerRepo.ListCustomersByClinic(ctx, params.ClinicID, params.Limit, params.NextToken)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	res := dto.ToListCustomersResponse(customers, nextToken)
	return &res, nil
}

// UpdateCustomer updates a customer's editable fields. The customer code is
// not editable; there is no path that changes it after assignment.
func (s *CustomerService) UpdateCustomer(ctx context.Context, customerID string, req dto.UpdateCustomerRequest, updaterID string) (*domain.Customer, error) {
	customer, err := s.customerRepo.FindCustomerByID(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get customer %s for update: %w", customerID, err)
	}

	if req.FullName != nil {
		customer.FullName = *req.FullName
	}
	if req.Phone != nil {
		customer.Phone = *req.Phone
	}
	if req.Email != nil {
		customer.Email = *req.Email
	}
	if req.DateOfBirth != nil {
		customer.DateOfBirth = req.DateOfBirth
	}
	if req.Gender != nil {
		customer.Gender = *req.Gender
	}
	if req.Address != nil {
		customer.Address = *req.Address
	}
	if req.Source != nil {
		customer.Source = *req.Source
	}
	if req.Notes != nil {
		customer.Notes = *req.Notes
	}
	customer.LastUpdatedAt = time.Now()
	customer.LastUpdatedBy = updaterID

	if err := s.customerRepo.UpdateCustomer(ctx, *customer); err != nil {
		return nil, fmt.Errorf("failed to update customer %s: %w", customerID, err)
	}
	return customer, nil
}

// DeleteCustomer removes a customer.
func (s *CustomerService) DeleteCustomer(ctx context.Context, customerID string) error {
	if err := s.customerRepo.DeleteCustomer(ctx, customerID); err != nil {
		return fmt.Errorf("failed to delete customer %s: %w", customerID, err)
	}
	middleware.GetLoggerFromCtx(ctx).Info("Customer deleted", slog.String("customer_id", customerID))
	return nil
}
