package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/hndang/clinic_mgmt_app/internal/apperrors"
	"github.com/hndang/clinic_mgmt_app/internal/core/domain"
	portssvc "github.com/hndang/clinic_mgmt_app/internal/core/ports/services"
	"github.com/hndang/clinic_mgmt_app/internal/dto"
	"github.com/hndang/clinic_mgmt_app/internal/handlers"
	"github.com/hndang/clinic_mgmt_app/internal/platform/config"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock PaymentService ---
type MockPaymentService struct {
	mock.Mock
}

func (m *MockPaymentService) CreatePayment(ctx context.Context, req dto.CreatePaymentRequest, creatorID string) (*domain.Payment, error) {
	args := m.Called(ctx, req, creatorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}
func (m *MockPaymentService) GetPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	args := m.Called(ctx, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}
func (m *MockPaymentService) ListPaymentsByCustomer(ctx context.Context, customerID string, params dto.ListPaymentsParams) (*dto.ListPaymentsResponse, error) {
	args := m.Called(ctx, customerID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListPaymentsResponse), args.Error(1)
}

var _ portssvc.PaymentSvcFacade = (*MockPaymentService)(nil)

// --- Mock APITokenService ---
type MockAPITokenService struct {
	mock.Mock
}

func (m *MockAPITokenService) CreateToken(ctx context.Context, req dto.CreateAPITokenRequest, creatorID string) (*dto.CreateAPITokenResponse, error) {
	args := m.Called(ctx, req, creatorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.CreateAPITokenResponse), args.Error(1)
}
func (m *MockAPITokenService) ValidateToken(ctx context.Context, plaintext string) (*domain.APIToken, error) {
	args := m.Called(ctx, plaintext)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.APIToken), args.Error(1)
}
func (m *MockAPITokenService) ListTokens(ctx context.Context) ([]domain.APIToken, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.APIToken), args.Error(1)
}
func (m *MockAPITokenService) RevokeToken(ctx context.Context, tokenID string) error {
	args := m.Called(ctx, tokenID)
	return args.Error(0)
}

var _ portssvc.APITokenSvc = (*MockAPITokenService)(nil)

// --- Test Suite ---
type PaymentHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockPaymentService *MockPaymentService
	mockTokenService   *MockAPITokenService
	jwtSecret          string
	jwtIssuer          string
}

func (suite *PaymentHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    suite.jwtIssuer,
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *PaymentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.jwtIssuer = "clinic-test"

	suite.mockPaymentService = new(MockPaymentService)
	suite.mockTokenService = new(MockAPITokenService)

	cfg := &config.Config{
		JWTSecret:    suite.jwtSecret,
		JWTIssuer:    suite.jwtIssuer,
		IsProduction: true, // no swagger routes in tests
	}
	handlers.RegisterRoutes(suite.router, cfg, &portssvc.ServiceContainer{
		Payment:  suite.mockPaymentService,
		APIToken: suite.mockTokenService,
	})
}

func (suite *PaymentHandlerTestSuite) postPayment(body dto.CreatePaymentRequest, token string) *httptest.ResponseRecorder {
	raw, err := json.Marshal(body)
	suite.Require().NoError(err)

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/payments", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *PaymentHandlerTestSuite) TestCreatePayment_Success() {
	customerID := uuid.NewString()
	consultedServiceID := uuid.NewString()
	userID := uuid.NewString()

	reqBody := dto.CreatePaymentRequest{
		CustomerID:  customerID,
		Amount:      decimal.NewFromInt(500000),
		Method:      "CASH",
		PaymentDate: time.Now().Truncate(time.Second),
		Allocations: []dto.AllocationRequest{
			{ConsultedServiceID: consultedServiceID, Amount: decimal.NewFromInt(500000)},
		},
	}

	expected := &domain.Payment{
		PaymentID:     uuid.NewString(),
		PaymentNumber: "PT-2508-0042",
		CustomerID:    customerID,
		Amount:        reqBody.Amount,
		Method:        domain.PaymentCash,
		PaymentDate:   reqBody.PaymentDate,
		Allocations: []domain.PaymentAllocation{
			{AllocationID: uuid.NewString(), ConsultedServiceID: consultedServiceID, Amount: reqBody.Amount},
		},
		CreatedAt: time.Now(),
		CreatedBy: userID,
	}

	suite.mockPaymentService.On("CreatePayment",
		mock.Anything,
		mock.MatchedBy(func(r dto.CreatePaymentRequest) bool {
			return r.CustomerID == customerID && r.Amount.Equal(reqBody.Amount) && len(r.Allocations) == 1
		}),
		userID,
	).Return(expected, nil).Once()

	w := suite.postPayment(reqBody, suite.generateTestToken(userID))

	suite.Equal(http.StatusCreated, w.Code)

	var res dto.PaymentResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Equal(expected.PaymentID, res.PaymentID)
	suite.Equal("PT-2508-0042", res.PaymentNumber)
	suite.Len(res.Allocations, 1)
	suite.True(res.Amount.Equal(reqBody.Amount))

	suite.mockPaymentService.AssertExpectations(suite.T())
}

func (suite *PaymentHandlerTestSuite) TestCreatePayment_PreconditionFailureMapsTo422() {
	userID := uuid.NewString()
	reqBody := dto.CreatePaymentRequest{
		CustomerID:  uuid.NewString(),
		Amount:      decimal.NewFromInt(300000),
		Method:      "TRANSFER",
		PaymentDate: time.Now(),
		Allocations: []dto.AllocationRequest{
			{ConsultedServiceID: uuid.NewString(), Amount: decimal.NewFromInt(300000)},
		},
	}

	suite.mockPaymentService.On("CreatePayment", mock.Anything, mock.Anything, userID).
		Return(nil, fmt.Errorf("allocation exceeds outstanding debt: %w", apperrors.ErrPrecondition)).Once()

	w := suite.postPayment(reqBody, suite.generateTestToken(userID))

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
	suite.mockPaymentService.AssertExpectations(suite.T())
}

func (suite *PaymentHandlerTestSuite) TestCreatePayment_InvalidBodyRejected() {
	userID := uuid.NewString()

	// Method outside the allowed set fails binding before the service runs.
	reqBody := dto.CreatePaymentRequest{
		CustomerID:  uuid.NewString(),
		Amount:      decimal.NewFromInt(100),
		Method:      "BARTER",
		PaymentDate: time.Now(),
		Allocations: []dto.AllocationRequest{
			{ConsultedServiceID: uuid.NewString(), Amount: decimal.NewFromInt(100)},
		},
	}

	w := suite.postPayment(reqBody, suite.generateTestToken(userID))

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockPaymentService.AssertNotCalled(suite.T(), "CreatePayment")
}

func (suite *PaymentHandlerTestSuite) TestCreatePayment_MissingTokenUnauthorized() {
	reqBody := dto.CreatePaymentRequest{
		CustomerID:  uuid.NewString(),
		Amount:      decimal.NewFromInt(100),
		Method:      "CASH",
		PaymentDate: time.Now(),
		Allocations: []dto.AllocationRequest{
			{ConsultedServiceID: uuid.NewString(), Amount: decimal.NewFromInt(100)},
		},
	}

	w := suite.postPayment(reqBody, "")

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockPaymentService.AssertNotCalled(suite.T(), "CreatePayment")
}

func (suite *PaymentHandlerTestSuite) TestGetPayment_NotFound() {
	paymentID := uuid.NewString()
	userID := uuid.NewString()

	suite.mockPaymentService.On("GetPaymentByID", mock.Anything, paymentID).
		Return(nil, fmt.Errorf("payment %s: %w", paymentID, apperrors.ErrNotFound)).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/payments/"+paymentID, nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockPaymentService.AssertExpectations(suite.T())
}

func TestPaymentHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(PaymentHandlerTestSuite))
}
