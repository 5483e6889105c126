package services_test

import (
	"context"
	"time"

	"github.com/hndang/clinic_mgmt_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// fakeTxRunner invokes fn directly with a nil transaction; the mocked
// repositories never touch it. Calls counts how many transactions were
// opened.
type fakeTxRunner struct {
	Calls int
	Err   error
}

func (f *fakeTxRunner) RunSerializable(ctx context.Context, fn func(tx pgx.Tx) error) error {
	f.Calls++
	if f.Err != nil {
		return f.Err
	}
	return fn(nil)
}

// --- Mock CounterRepository ---
type MockCounterRepository struct {
	mock.Mock
}

func (m *MockCounterRepository) NextSequence(ctx context.Context, tx pgx.Tx, scope string) (int64, error) {
	args := m.Called(ctx, tx, scope)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock ClinicRepository ---
type MockClinicRepository struct {
	mock.Mock
}

func (m *MockClinicRepository) FindClinicByID(ctx context.Context, clinicID string) (*domain.Clinic, error) {
	args := m.Called(ctx, clinicID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Clinic), args.Error(1)
}

func (m *MockClinicRepository) ListClinics(ctx context.Context) ([]domain.Clinic, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Clinic), args.Error(1)
}

// --- Mock CustomerRepository ---
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) CreateCustomerInTx(ctx context.Context, tx pgx.Tx, customer domain.Customer) error {
	args := m.Called(ctx, tx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) AssignCustomerCodeInTx(ctx context.Context, tx pgx.Tx, customerID, code string, updatedAt time.Time) error {
	args := m.Called(ctx, tx, customerID, code, updatedAt)
	return args.Error(0)
}

func (m *MockCustomerRepository) FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindCustomerInTx(ctx context.Context, tx pgx.Tx, customerID string) (*domain.Customer, error) {
	args := m.Called(ctx, tx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindCustomerByPhone(ctx context.Context, clinicID, phone string) (*domain.Customer, error) {
	args := m.Called(ctx, clinicID, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) ListCustomersByClinic(ctx context.Context, clinicID string, limit int, nextToken *string) ([]domain.Customer, *string, error) {
	args := m.Called(ctx, clinicID, limit, nextToken)
	var customers []domain.Customer
	if args.Get(0) != nil {
		customers = args.Get(0).([]domain.Customer)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return customers, token, args.Error(2)
}

func (m *MockCustomerRepository) ListUncodedCustomerIDs(ctx context.Context, limit int) ([]string, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockCustomerRepository) UpdateCustomer(ctx context.Context, customer domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) DeleteCustomer(ctx context.Context, customerID string) error {
	args := m.Called(ctx, customerID)
	return args.Error(0)
}

// --- Mock ConsultedServiceRepository ---
type MockConsultedServiceRepository struct {
	mock.Mock
}

func (m *MockConsultedServiceRepository) FindConsultedServiceByID(ctx context.Context, consultedServiceID string) (*domain.ConsultedService, error) {
	args := m.Called(ctx, consultedServiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ConsultedService), args.Error(1)
}

func (m *MockConsultedServiceRepository) FindConsultedServiceInTx(ctx context.Context, tx pgx.Tx, consultedServiceID string) (*domain.ConsultedService, error) {
	args := m.Called(ctx, tx, consultedServiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ConsultedService), args.Error(1)
}

func (m *MockConsultedServiceRepository) ListConsultedServicesByCustomer(ctx context.Context, customerID string) ([]domain.ConsultedService, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ConsultedService), args.Error(1)
}

func (m *MockConsultedServiceRepository) CreateConsultedService(ctx context.Context, service domain.ConsultedService) error {
	args := m.Called(ctx, service)
	return args.Error(0)
}

func (m *MockConsultedServiceRepository) UpdateConsultedService(ctx context.Context, service domain.ConsultedService) error {
	args := m.Called(ctx, service)
	return args.Error(0)
}

func (m *MockConsultedServiceRepository) ApplyAllocationInTx(ctx context.Context, tx pgx.Tx, consultedServiceID string, amountPaid decimal.Decimal, updatedAt time.Time, updatedBy string) error {
	args := m.Called(ctx, tx, consultedServiceID, amountPaid, updatedAt, updatedBy)
	return args.Error(0)
}

// --- Mock PaymentRepository ---
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) CreatePaymentInTx(ctx context.Context, tx pgx.Tx, payment domain.Payment) error {
	args := m.Called(ctx, tx, payment)
	return args.Error(0)
}

func (m *MockPaymentRepository) FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	args := m.Called(ctx, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) ListPaymentsByCustomer(ctx context.Context, customerID string, limit int, nextToken *string) ([]domain.Payment, *string, error) {
	args := m.Called(ctx, customerID, limit, nextToken)
	var payments []domain.Payment
	if args.Get(0) != nil {
		payments = args.Get(0).([]domain.Payment)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return payments, token, args.Error(2)
}
