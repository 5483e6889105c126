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
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type PaymentServiceTestSuite struct {
	suite.Suite
	txRunner      *fakeTxRunner
	paymentRepo   *MockPaymentRepository
	consultedRepo *MockConsultedServiceRepository
	counterRepo   *MockCounterRepository
	service       *services.PaymentService
}

func (suite *PaymentServiceTestSuite) SetupTest() {
	suite.txRunner = &fakeTxRunner{}
	suite.paymentRepo = new(MockPaymentRepository)
	suite.consultedRepo = new(MockConsultedServiceRepository)
	suite.counterRepo = new(MockCounterRepository)
	suite.service = services.NewPaymentService(suite.txRunner, suite.paymentRepo, suite.consultedRepo, suite.counterRepo)
}

func (suite *PaymentServiceTestSuite) assertAllMocks() {
	suite.paymentRepo.AssertExpectations(suite.T())
	suite.consultedRepo.AssertExpectations(suite.T())
	suite.counterRepo.AssertExpectations(suite.T())
}

func unpaidService(customerID string, finalPrice, amountPaid int64) *domain.ConsultedService {
	return &domain.ConsultedService{
		ConsultedServiceID: uuid.NewString(),
		CustomerID:         customerID,
		FinalPrice:         decimal.NewFromInt(finalPrice),
		AmountPaid:         decimal.NewFromInt(amountPaid),
		Status:             domain.ConsultedServiceConfirmed,
	}
}

func paymentDraft(customerID string, amount int64, allocations ...dto.AllocationRequest) dto.CreatePaymentRequest {
	return dto.CreatePaymentRequest{
		CustomerID:  customerID,
		Amount:      decimal.NewFromInt(amount),
		Method:      "CASH",
		PaymentDate: time.Now(),
		Allocations: allocations,
	}
}

func (suite *PaymentServiceTestSuite) TestCreatePayment_SplitAcrossTwoServices() {
	ctx := context.Background()
	customerID := uuid.NewString()
	first := unpaidService(customerID, 1_000_000, 0)
	second := unpaidService(customerID, 800_000, 0)

	req := paymentDraft(customerID, 500_000,
		dto.AllocationRequest{ConsultedServiceID: first.ConsultedServiceID, Amount: decimal.NewFromInt(200_000)},
		dto.AllocationRequest{ConsultedServiceID: second.ConsultedServiceID, Amount: decimal.NewFromInt(300_000)},
	)

	expectedScope := domain.PaymentScope(time.Now())
	suite.consultedRepo.On("FindConsultedServiceInTx", ctx, nil, first.ConsultedServiceID).Return(first, nil).Once()
	suite.consultedRepo.On("FindConsultedServiceInTx", ctx, nil, second.ConsultedServiceID).Return(second, nil).Once()
	suite.counterRepo.On("NextSequence", ctx, nil, expectedScope).Return(int64(7), nil).Once()
	suite.paymentRepo.On("CreatePaymentInTx", ctx, nil, mock.MatchedBy(func(p domain.Payment) bool {
		return p.PaymentNumber == domain.FormatCode(expectedScope, 7, domain.PaymentCodeWidth) &&
			p.Amount.Equal(decimal.NewFromInt(500_000)) &&
			len(p.Allocations) == 2
	})).Return(nil).Once()
	suite.consultedRepo.On("ApplyAllocationInTx", ctx, nil, first.ConsultedServiceID,
		decimal.NewFromInt(200_000), mock.Anything, "user-1").Return(nil).Once()
	suite.consultedRepo.On("ApplyAllocationInTx", ctx, nil, second.ConsultedServiceID,
		decimal.NewFromInt(300_000), mock.Anything, "user-1").Return(nil).Once()

	payment, err := suite.service.CreatePayment(ctx, req, "user-1")

	suite.Require().NoError(err)
	suite.Require().NotNil(payment)
	suite.Equal(1, suite.txRunner.Calls)
	suite.Equal(customerID, payment.CustomerID)
	// The payment amount equals the sum its allocations carry.
	suite.True(payment.Amount.Equal(domain.AllocationTotal(payment.Allocations)))
	suite.assertAllMocks()
}

func (suite *PaymentServiceTestSuite) TestCreatePayment_EmptyAllocationsRejectedBeforeTx() {
	ctx := context.Background()
	req := paymentDraft(uuid.NewString(), 100_000)

	payment, err := suite.service.CreatePayment(ctx, req, "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(payment)
	suite.Zero(suite.txRunner.Calls)
	suite.assertAllMocks()
}

func (suite *PaymentServiceTestSuite) TestCreatePayment_AmountMismatchRejectedBeforeTx() {
	ctx := context.Background()
	customerID := uuid.NewString()
	req := paymentDraft(customerID, 500_000,
		dto.AllocationRequest{ConsultedServiceID: uuid.NewString(), Amount: decimal.NewFromInt(200_000)},
	)

	payment, err := suite.service.CreatePayment(ctx, req, "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrPrecondition)
	suite.Nil(payment)
	suite.Zero(suite.txRunner.Calls)
	suite.assertAllMocks()
}

func (suite *PaymentServiceTestSuite) TestCreatePayment_NonPositiveAllocationRejected() {
	ctx := context.Background()
	customerID := uuid.NewString()
	req := paymentDraft(customerID, 0,
		dto.AllocationRequest{ConsultedServiceID: uuid.NewString(), Amount: decimal.Zero},
	)

	_, err := suite.service.CreatePayment(ctx, req, "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Zero(suite.txRunner.Calls)
}

func (suite *PaymentServiceTestSuite) TestCreatePayment_AllocationExceedsDebtAbortsAll() {
	ctx := context.Background()
	customerID := uuid.NewString()
	target := unpaidService(customerID, 1_000_000, 800_000) // debt 200k

	req := paymentDraft(customerID, 300_000,
		dto.AllocationRequest{ConsultedServiceID: target.ConsultedServiceID, Amount: decimal.NewFromInt(300_000)},
	)

	suite.consultedRepo.On("FindConsultedServiceInTx", ctx, nil, target.ConsultedServiceID).Return(target, nil).Once()

	payment, err := suite.service.CreatePayment(ctx, req, "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrPrecondition)
	suite.Nil(payment)
	// Nothing was written: no payment insert, no balance move, no counter bump.
	suite.assertAllMocks()
}

func (suite *PaymentServiceTestSuite) TestCreatePayment_MissingTargetAbortsAll() {
	ctx := context.Background()
	customerID := uuid.NewString()
	present := unpaidService(customerID, 1_000_000, 0)
	missingID := uuid.NewString()

	req := paymentDraft(customerID, 500_000,
		dto.AllocationRequest{ConsultedServiceID: present.ConsultedServiceID, Amount: decimal.NewFromInt(200_000)},
		dto.AllocationRequest{ConsultedServiceID: missingID, Amount: decimal.NewFromInt(300_000)},
	)

	suite.consultedRepo.On("FindConsultedServiceInTx", ctx, nil, present.ConsultedServiceID).Return(present, nil).Once()
	suite.consultedRepo.On("FindConsultedServiceInTx", ctx, nil, missingID).Return(nil, apperrors.ErrNotFound).Once()

	payment, err := suite.service.CreatePayment(ctx, req, "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(payment)
	suite.assertAllMocks()
}

func (suite *PaymentServiceTestSuite) TestCreatePayment_TargetOfOtherCustomerRejected() {
	ctx := context.Background()
	target := unpaidService(uuid.NewString(), 500_000, 0)

	req := paymentDraft(uuid.NewString(), 100_000,
		dto.AllocationRequest{ConsultedServiceID: target.ConsultedServiceID, Amount: decimal.NewFromInt(100_000)},
	)

	suite.consultedRepo.On("FindConsultedServiceInTx", ctx, nil, target.ConsultedServiceID).Return(target, nil).Once()

	payment, err := suite.service.CreatePayment(ctx, req, "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(payment)
	suite.assertAllMocks()
}

func (suite *PaymentServiceTestSuite) TestCreatePayment_RepeatedTargetSharesOneBalance() {
	ctx := context.Background()
	customerID := uuid.NewString()
	target := unpaidService(customerID, 1_000_000, 0)

	// Two allocations to the same target; the second must be bounded by
	// the debt remaining after the first.
	req := paymentDraft(customerID, 1_100_000,
		dto.AllocationRequest{ConsultedServiceID: target.ConsultedServiceID, Amount: decimal.NewFromInt(600_000)},
		dto.AllocationRequest{ConsultedServiceID: target.ConsultedServiceID, Amount: decimal.NewFromInt(500_000)},
	)

	suite.consultedRepo.On("FindConsultedServiceInTx", ctx, nil, target.ConsultedServiceID).Return(target, nil).Once()

	payment, err := suite.service.CreatePayment(ctx, req, "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrPrecondition)
	suite.Nil(payment)
	suite.assertAllMocks()
}

func (suite *PaymentServiceTestSuite) TestCreatePayment_FullSettlementZeroesDebt() {
	ctx := context.Background()
	customerID := uuid.NewString()
	target := unpaidService(customerID, 1_000_000, 400_000) // debt 600k

	req := paymentDraft(customerID, 600_000,
		dto.AllocationRequest{ConsultedServiceID: target.ConsultedServiceID, Amount: decimal.NewFromInt(600_000)},
	)

	expectedScope := domain.PaymentScope(time.Now())
	suite.consultedRepo.On("FindConsultedServiceInTx", ctx, nil, target.ConsultedServiceID).Return(target, nil).Once()
	suite.counterRepo.On("NextSequence", ctx, nil, expectedScope).Return(int64(1), nil).Once()
	suite.paymentRepo.On("CreatePaymentInTx", ctx, nil, mock.AnythingOfType("domain.Payment")).Return(nil).Once()
	// Cumulative amount paid lands exactly on the final price.
	suite.consultedRepo.On("ApplyAllocationInTx", ctx, nil, target.ConsultedServiceID,
		decimal.NewFromInt(1_000_000), mock.Anything, "user-1").Return(nil).Once()

	payment, err := suite.service.CreatePayment(ctx, req, "user-1")

	suite.Require().NoError(err)
	suite.Require().NotNil(payment)
	suite.assertAllMocks()
}

func (suite *PaymentServiceTestSuite) TestGetPaymentByID_NotFound() {
	ctx := context.Background()
	paymentID := uuid.NewString()

	suite.paymentRepo.On("FindPaymentByID", ctx, paymentID).Return(nil, apperrors.ErrNotFound).Once()

	payment, err := suite.service.GetPaymentByID(ctx, paymentID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(payment)
	suite.assertAllMocks()
}

func TestPaymentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PaymentServiceTestSuite))
}
