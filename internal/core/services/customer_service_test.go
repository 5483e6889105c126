package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/hndang/clinic_mgmt_app/internal/apperrors"
	"github.com/hndang/clinic_mgmt_app/internal/core/domain"
	"github.com/hndang/clinic_mgmt_app/internal/core/services"
	"github.com/hndang/clinic_mgmt_app/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type CustomerServiceTestSuite struct {
	suite.Suite
	txRunner     *fakeTxRunner
	customerRepo *MockCustomerRepository
	clinicRepo   *MockClinicRepository
	counterRepo  *MockCounterRepository
	service      *services.CustomerService
}

func (suite *CustomerServiceTestSuite) SetupTest() {
	suite.txRunner = &fakeTxRunner{}
	suite.customerRepo = new(MockCustomerRepository)
	suite.clinicRepo = new(MockClinicRepository)
	suite.counterRepo = new(MockCounterRepository)
	suite.service = services.NewCustomerService(suite.txRunner, suite.customerRepo, suite.clinicRepo, suite.counterRepo)
}

func (suite *CustomerServiceTestSuite) assertAllMocks() {
	suite.customerRepo.AssertExpectations(suite.T())
	suite.clinicRepo.AssertExpectations(suite.T())
	suite.counterRepo.AssertExpectations(suite.T())
}

func (suite *CustomerServiceTestSuite) TestCreateCustomer_MintsCodeInSameTx() {
	ctx := context.Background()
	clinic := &domain.Clinic{ClinicID: "clinic-mk", Prefix: "MK", Name: "Minh Khai"}
	req := dto.CreateCustomerRequest{
		ClinicID: clinic.ClinicID,
		FullName: "Nguyen Van A",
		Phone:    "0901234567",
	}

	expectedScope := domain.MonthScope(clinic.Prefix, time.Now())
	expectedCode := domain.FormatCode(expectedScope, 12, domain.CustomerCodeWidth)

	suite.clinicRepo.On("FindClinicByID", ctx, clinic.ClinicID).Return(clinic, nil).Once()
	suite.counterRepo.On("NextSequence", ctx, nil, expectedScope).Return(int64(12), nil).Once()
	suite.customerRepo.On("CreateCustomerInTx", ctx, nil, mock.MatchedBy(func(c domain.Customer) bool {
		return c.CustomerCode == expectedCode && c.FullName == req.FullName && c.ClinicID == clinic.ClinicID
	})).Return(nil).Once()

	customer, err := suite.service.CreateCustomer(ctx, req, "user-1")

	suite.Require().NoError(err)
	suite.Require().NotNil(customer)
	suite.Equal(1, suite.txRunner.Calls)
	suite.Equal(expectedCode, customer.CustomerCode)
	suite.True(customer.IsCoded())
	suite.assertAllMocks()
}

func (suite *CustomerServiceTestSuite) TestCreateCustomer_UnknownClinicNoTx() {
	ctx := context.Background()
	req := dto.CreateCustomerRequest{ClinicID: "nope", FullName: "X", Phone: "1"}

	suite.clinicRepo.On("FindClinicByID", ctx, "nope").Return(nil, apperrors.ErrNotFound).Once()

	customer, err := suite.service.CreateCustomer(ctx, req, "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(customer)
	suite.Zero(suite.txRunner.Calls)
	suite.assertAllMocks()
}

func (suite *CustomerServiceTestSuite) TestAssignCustomerCode_MintsForUncodedRow() {
	ctx := context.Background()
	createdAt := time.Date(2025, 7, 14, 10, 0, 0, 0, time.UTC)
	customer := &domain.Customer{
		CustomerID: uuid.NewString(),
		ClinicID:   "clinic-mk",
		AuditFields: domain.AuditFields{
			CreatedAt: createdAt,
		},
	}
	clinic := &domain.Clinic{ClinicID: "clinic-mk", Prefix: "MK"}

	suite.customerRepo.On("FindCustomerInTx", ctx, nil, customer.CustomerID).Return(customer, nil).Once()
	suite.clinicRepo.On("FindClinicByID", ctx, clinic.ClinicID).Return(clinic, nil).Once()
	// Scope follows the row's creation month, not the sweep's wall clock.
	suite.counterRepo.On("NextSequence", ctx, nil, "MK-2507").Return(int64(3), nil).Once()
	suite.customerRepo.On("AssignCustomerCodeInTx", ctx, nil, customer.CustomerID, "MK-2507-003", mock.Anything).Return(nil).Once()

	code, err := suite.service.AssignCustomerCode(ctx, customer.CustomerID)

	suite.Require().NoError(err)
	suite.Equal("MK-2507-003", code)
	suite.assertAllMocks()
}

func (suite *CustomerServiceTestSuite) TestAssignCustomerCode_AlreadyCodedIsNoOp() {
	ctx := context.Background()
	customer := &domain.Customer{
		CustomerID:   uuid.NewString(),
		CustomerCode: "MK-2507-001",
		ClinicID:     "clinic-mk",
	}

	suite.customerRepo.On("FindCustomerInTx", ctx, nil, customer.CustomerID).Return(customer, nil).Once()

	code, err := suite.service.AssignCustomerCode(ctx, customer.CustomerID)

	suite.Require().NoError(err)
	suite.Equal("MK-2507-001", code)
	// No counter bump, no code patch: the existing code survives untouched.
	suite.counterRepo.AssertNotCalled(suite.T(), "NextSequence", mock.Anything, mock.Anything, mock.Anything)
	suite.customerRepo.AssertNotCalled(suite.T(), "AssignCustomerCodeInTx", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.assertAllMocks()
}

func (suite *CustomerServiceTestSuite) TestAssignCustomerCode_MissingCustomer() {
	ctx := context.Background()
	customerID := uuid.NewString()

	suite.customerRepo.On("FindCustomerInTx", ctx, nil, customerID).Return(nil, apperrors.ErrNotFound).Once()

	code, err := suite.service.AssignCustomerCode(ctx, customerID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Empty(code)
	suite.assertAllMocks()
}

func (suite *CustomerServiceTestSuite) TestUpdateCustomer_PatchesProvidedFieldsOnly() {
	ctx := context.Background()
	existing := &domain.Customer{
		CustomerID:   uuid.NewString(),
		CustomerCode: "MK-2507-001",
		ClinicID:     "clinic-mk",
		FullName:     "Nguyen Van A",
		Phone:        "0901234567",
		Notes:        "keep me",
	}
	newName := "Nguyen Van B"
	req := dto.UpdateCustomerRequest{FullName: &newName}

	suite.customerRepo.On("FindCustomerByID", ctx, existing.CustomerID).Return(existing, nil).Once()
	suite.customerRepo.On("UpdateCustomer", ctx, mock.MatchedBy(func(c domain.Customer) bool {
		return c.FullName == newName && c.Phone == "0901234567" && c.Notes == "keep me" &&
			c.CustomerCode == "MK-2507-001" && c.LastUpdatedBy == "user-2"
	})).Return(nil).Once()

	updated, err := suite.service.UpdateCustomer(ctx, existing.CustomerID, req, "user-2")

	suite.Require().NoError(err)
	suite.Equal(newName, updated.FullName)
	suite.assertAllMocks()
}

func (suite *CustomerServiceTestSuite) TestListUncodedCustomerIDs_Passthrough() {
	ctx := context.Background()
	ids := []string{uuid.NewString(), uuid.NewString()}

	suite.customerRepo.On("ListUncodedCustomerIDs", ctx, 100).Return(ids, nil).Once()

	got, err := suite.service.ListUncodedCustomerIDs(ctx, 100)

	suite.Require().NoError(err)
	suite.Equal(ids, got)
	suite.assertAllMocks()
}

func TestCustomerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CustomerServiceTestSuite))
}
