package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/hndang/clinic_mgmt_app/internal/apperrors"
	"github.com/hndang/clinic_mgmt_app/internal/core/domain"
	portsrepo "github.com/hndang/clinic_mgmt_app/internal/core/ports/repositories"
	"github.com/hndang/clinic_mgmt_app/internal/dto"
	"github.com/hndang/clinic_mgmt_app/internal/middleware"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type PaymentService struct {
	txRunner      portsrepo.TxRunner
	paymentRepo   portsrepo.PaymentRepositoryFacade
	consultedRepo portsrepo.ConsultedServiceRepositoryFacade
	counterRepo   portsrepo.CounterRepository
}

func NewPaymentService(txRunner portsrepo.TxRunner, paymentRepo portsrepo.PaymentRepositoryFacade, consultedRepo portsrepo.ConsultedServiceRepositoryFacade, counterRepo portsrepo.CounterRepository) *PaymentService {
	return &PaymentService{
		txRunner:      txRunner,
		paymentRepo:   paymentRepo,
		consultedRepo: consultedRepo,
		counterRepo:   counterRepo,
	}
}

// validateDraft runs the checks that need no database state. A draft that
// fails here never opens a transaction.
func (s *PaymentService) validateDraft(req dto.CreatePaymentRequest) error {
	if len(req.Allocations) == 0 {
		return fmt.Errorf("%w: payment requires at least one allocation", apperrors.ErrValidation)
	}
	if !req.Amount.IsPositive() {
		return fmt.Errorf("%w: payment amount must be positive", apperrors.ErrValidation)
	}

	total := decimal.Zero
	for i, alloc := range req.Allocations {
		if !alloc.Amount.IsPositive() {
			return fmt.Errorf("%w: allocation %d amount must be positive", apperrors.ErrValidation, i)
		}
		total = total.Add(alloc.Amount)
	}
	if !total.Equal(req.Amount) {
		return fmt.Errorf("%w: payment amount %s does not equal allocation total %s", apperrors.ErrPrecondition, req.Amount, total)
	}
	return nil
}

// CreatePayment atomically mints the payment number, writes the payment
// with its allocations, and moves each target's balance. All-or-nothing: a
// missing target, a target of another customer, or an allocation above a
// target's outstanding debt aborts the whole transaction and nothing is
// written, the counter included.
func (s *PaymentService) CreatePayment(ctx context.Context, req dto.CreatePaymentRequest, creatorID string) (*domain.Payment, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.validateDraft(req); err != nil {
		return nil, err
	}

	// The scope month is fixed before the transaction so retries keep it.
	now := time.Now()
	scope := domain.PaymentScope(now)

	var created domain.Payment
	err := s.txRunner.RunSerializable(ctx, func(tx pgx.Tx) error {
		// Read phase: load every target once. Two allocations naming the
		// same target are checked against one shared running balance.
		targets := make(map[string]domain.ConsultedService)
		for _, alloc := range req.Allocations {
			if _, seen := targets[alloc.ConsultedServiceID]; seen {
				continue
			}
			target, err := s.consultedRepo.FindConsultedServiceInTx(ctx, tx, alloc.ConsultedServiceID)
			if err != nil {
				return err
			}
			if target.CustomerID != req.CustomerID {
				return fmt.Errorf("%w: consulted service %s belongs to another customer", apperrors.ErrValidation, alloc.ConsultedServiceID)
			}
			targets[alloc.ConsultedServiceID] = *target
		}

		// Compute phase: apply each allocation in memory, bounding it by
		// the target's remaining debt.
		for _, alloc := range req.Allocations {
			target := targets[alloc.ConsultedServiceID]
			if alloc.Amount.GreaterThan(target.Debt()) {
				return fmt.Errorf("%w: allocation %s to consulted service %s exceeds outstanding debt %s",
					apperrors.ErrPrecondition, alloc.Amount, alloc.ConsultedServiceID, target.Debt())
			}
			targets[alloc.ConsultedServiceID] = target.WithAllocation(alloc.Amount)
		}

		seq, err := s.counterRepo.NextSequence(ctx, tx, scope)
		if err != nil {
			return err
		}

		payment := domain.Payment{
			PaymentID:     uuid.NewString(),
			PaymentNumber: domain.FormatCode(scope, seq, domain.PaymentCodeWidth),
			CustomerID:    req.CustomerID,
			Amount:        req.Amount,
			Method:        domain.PaymentMethod(req.Method),
			PaymentDate:   req.PaymentDate,
			Notes:         req.Notes,
			CreatedAt:     now,
			CreatedBy:     creatorID,
		}
		payment.Allocations = make([]domain.PaymentAllocation, len(req.Allocations))
		for i, alloc := range req.Allocations {
			payment.Allocations[i] = domain.PaymentAllocation{
				AllocationID:       uuid.NewString(),
				PaymentID:          payment.PaymentID,
				ConsultedServiceID: alloc.ConsultedServiceID,
				Amount:             alloc.Amount,
			}
		}

		// Write phase: the payment, its allocations and every balance move
		// commit together or not at all.
		if err := s.paymentRepo.CreatePaymentInTx(ctx, tx, payment); err != nil {
			return err
		}
		for id, target := range targets {
			if err := s.consultedRepo.ApplyAllocationInTx(ctx, tx, id, target.AmountPaid, now, creatorID); err != nil {
				return err
			}
		}

		created = payment
		return nil
	})
	if err != nil {
		logger.Error("Failed to create payment", slog.String("error", err.Error()), slog.String("customer_id", req.CustomerID))
		return nil, err
	}

	logger.Info("Payment created",
		slog.String("payment_id", created.PaymentID),
		slog.String("payment_number", created.PaymentNumber),
		slog.String("amount", created.Amount.String()),
		slog.Int("allocations", len(created.Allocations)),
	)
	return &created, nil
}

// GetPaymentByID retrieves a payment with its allocations.
func (s *PaymentService) GetPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	payment, err := s.paymentRepo.FindPaymentByID(ctx, paymentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get payment %s: %w", paymentID, err)
	}
	return payment, nil
}

// ListPaymentsByCustomer retrieves a customer's payments, newest first.
func (s *PaymentService) ListPaymentsByCustomer(ctx context.Context, customerID string, params dto.ListPaymentsParams) (*dto.ListPaymentsResponse, error) {
	payments, nextToken, err := s.paymentRepo.ListPaymentsByCustomer(ctx, customerID, params.Limit, params.NextToken)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments for customer %s: %w", customerID, err)
	}
	res := dto.ToListPaymentsResponse(payments, nextToken)
	return &res, nil
}
