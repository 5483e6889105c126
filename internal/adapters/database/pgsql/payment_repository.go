package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/hndang/clinic_mgmt_app/internal/apperrors"
	"github.com/hndang/clinic_mgmt_app/internal/core/domain"
	portsrepo "github.com/hndang/clinic_mgmt_app/internal/core/ports/repositories"
	"github.com/hndang/clinic_mgmt_app/internal/models"
	"github.com/hndang/clinic_mgmt_app/internal/utils/mapping"
	"github.com/hndang/clinic_mgmt_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const paymentColumns = `payment_id, payment_number, customer_id, amount, method, payment_date, notes, created_at, created_by`

const allocationColumns = `allocation_id, payment_id, consulted_service_id, amount`

type PgxPaymentRepository struct {
	pool *pgxpool.Pool
}

// NewPgxPaymentRepository creates a new repository for payment data.
func NewPgxPaymentRepository(pool *pgxpool.Pool) portsrepo.PaymentRepositoryFacade {
	return &PgxPaymentRepository{pool: pool}
}

func scanPayment(row pgx.Row) (*models.Payment, error) {
	var m models.Payment
	err := row.Scan(
		&m.PaymentID,
		&m.PaymentNumber,
		&m.CustomerID,
		&m.Amount,
		&m.Method,
		&m.PaymentDate,
		&m.Notes,
		&m.CreatedAt,
		&m.CreatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// CreatePaymentInTx inserts the payment row and its allocation rows in one
// batch on the caller's transaction. The payment number column carries a
// unique constraint, so a duplicate mint surfaces as ErrDuplicate and the
// surrounding transaction retries with a fresh sequence.
func (r *PgxPaymentRepository) CreatePaymentInTx(ctx context.Context, tx pgx.Tx, payment domain.Payment) error {
	m := mapping.ToModelPayment(payment)

	batch := &pgx.Batch{}
	batch.Queue(`
		INSERT INTO payments (`+paymentColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`,
		m.PaymentID,
		m.PaymentNumber,
		m.CustomerID,
		m.Amount,
		m.Method,
		m.PaymentDate,
		m.Notes,
		m.CreatedAt,
		m.CreatedBy,
	)
	for _, alloc := range payment.Allocations {
		a := mapping.ToModelPaymentAllocation(alloc)
		batch.Queue(`
			INSERT INTO payment_allocations (`+allocationColumns+`)
			VALUES ($1, $2, $3, $4);
		`, a.AllocationID, a.PaymentID, a.ConsultedServiceID, a.Amount)
	}

	results := tx.SendBatch(ctx, batch)
	defer results.Close()
	for i := 0; i < batch.Len(); i++ {
		if _, err := results.Exec(); err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" {
				return fmt.Errorf("payment number %s: %w", payment.PaymentNumber, apperrors.ErrDuplicate)
			}
			return fmt.Errorf("failed to insert payment %s: %w", payment.PaymentID, err)
		}
	}
	return nil
}

// FindPaymentByID retrieves a payment with its allocations.
func (r *PgxPaymentRepository) FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+paymentColumns+` FROM payments WHERE payment_id = $1;`, paymentID)
	m, err := scanPayment(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find payment %s: %w", paymentID, err)
	}

	allocations, err := r.loadAllocations(ctx, []string{paymentID})
	if err != nil {
		return nil, err
	}
	d := mapping.ToDomainPayment(*m, allocations[paymentID])
	return &d, nil
}

// ListPaymentsByCustomer retrieves one page of a customer's payments using
// (created_at, payment_id) keyset pagination, newest first. Allocations for
// the page are loaded in a second query and stitched in.
func (r *PgxPaymentRepository) ListPaymentsByCustomer(ctx context.Context, customerID string, limit int, nextToken *string) ([]domain.Payment, *string, error) {
	args := []any{customerID}
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE customer_id = $1`

	argPos := 2
	if nextToken != nil {
		cursorAt, cursorID, err := pagination.DecodeCursor(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		query += fmt.Sprintf(" AND (created_at, payment_id) < ($%d, $%d)", argPos, argPos+1)
		args = append(args, cursorAt, cursorID)
		argPos += 2
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC, payment_id DESC LIMIT $%d;", argPos)
	args = append(args, limit+1) // one extra row decides whether a next page exists

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query payments for customer %s: %w", customerID, err)
	}
	defer rows.Close()

	payments := []models.Payment{}
	for rows.Next() {
		m, err := scanPayment(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan payment row: %w", err)
		}
		payments = append(payments, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating payment rows: %w", err)
	}

	var token *string
	if len(payments) > limit {
		payments = payments[:limit]
		last := payments[len(payments)-1]
		t := pagination.EncodeCursor(last.CreatedAt, last.PaymentID)
		token = &t
	}

	ids := make([]string, len(payments))
	for i, p := range payments {
		ids[i] = p.PaymentID
	}
	allocations, err := r.loadAllocations(ctx, ids)
	if err != nil {
		return nil, nil, err
	}

	ds := make([]domain.Payment, len(payments))
	for i, p := range payments {
		ds[i] = mapping.ToDomainPayment(p, allocations[p.PaymentID])
	}
	return ds, token, nil
}

// loadAllocations fetches allocation rows for a set of payments, keyed by
// payment ID.
func (r *PgxPaymentRepository) loadAllocations(ctx context.Context, paymentIDs []string) (map[string][]models.PaymentAllocation, error) {
	byPayment := map[string][]models.PaymentAllocation{}
	if len(paymentIDs) == 0 {
		return byPayment, nil
	}

	rows, err := r.pool.Query(ctx, `
		SELECT `+allocationColumns+` FROM payment_allocations WHERE payment_id = ANY($1) ORDER BY allocation_id;
	`, paymentIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query payment allocations: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var a models.PaymentAllocation
		if err := rows.Scan(&a.AllocationID, &a.PaymentID, &a.ConsultedServiceID, &a.Amount); err != nil {
			return nil, fmt.Errorf("failed to scan payment allocation row: %w", err)
		}
		byPayment[a.PaymentID] = append(byPayment[a.PaymentID], a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating payment allocation rows: %w", err)
	}
	return byPayment, nil
}
