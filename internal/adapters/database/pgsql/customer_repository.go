package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

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

const customerColumns = `customer_id, customer_code, clinic_id, full_name, phone, email, date_of_birth, gender, address, source, notes, created_at, created_by, last_updated_at, last_updated_by`

type PgxCustomerRepository struct {
	pool *pgxpool.Pool
}

// NewPgxCustomerRepository creates a new repository for customer data.
func NewPgxCustomerRepository(pool *pgxpool.Pool) portsrepo.CustomerRepositoryFacade {
	return &PgxCustomerRepository{pool: pool}
}

func scanCustomer(row pgx.Row) (*models.Customer, error) {
	var m models.Customer
	err := row.Scan(
		&m.CustomerID,
		&m.CustomerCode,
		&m.ClinicID,
		&m.FullName,
		&m.Phone,
		&m.Email,
		&m.DateOfBirth,
		&m.Gender,
		&m.Address,
		&m.Source,
		&m.Notes,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// CreateCustomerInTx inserts the customer row on the caller's transaction so
// the insert and the code assignment commit as one atomic unit.
func (r *PgxCustomerRepository) CreateCustomerInTx(ctx context.Context, tx pgx.Tx, customer domain.Customer) error {
	m := mapping.ToModelCustomer(customer)
	_, err := tx.Exec(ctx, `
		INSERT INTO customers (`+customerColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`,
		m.CustomerID,
		m.CustomerCode,
		m.ClinicID,
		m.FullName,
		m.Phone,
		m.Email,
		m.DateOfBirth,
		m.Gender,
		m.Address,
		m.Source,
		m.Notes,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("customer with phone %s: %w", customer.Phone, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to insert customer %s: %w", customer.CustomerID, err)
	}
	return nil
}

// AssignCustomerCodeInTx patches the code onto an existing row. The guard
// against overwriting an existing code lives in the service; this is a
// plain column update on the caller's transaction.
func (r *PgxCustomerRepository) AssignCustomerCodeInTx(ctx context.Context, tx pgx.Tx, customerID, code string, updatedAt time.Time) error {
	tag, err := tx.Exec(ctx, `
		UPDATE customers SET customer_code = $1, last_updated_at = $2 WHERE customer_id = $3;
	`, code, updatedAt, customerID)
	if err != nil {
		return fmt.Errorf("failed to assign code to customer %s: %w", customerID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindCustomerByID retrieves a customer by its ID.
func (r *PgxCustomerRepository) FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+customerColumns+` FROM customers WHERE customer_id = $1;`, customerID)
	m, err := scanCustomer(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find customer by ID %s: %w", customerID, err)
	}
	d := mapping.ToDomainCustomer(*m)
	return &d, nil
}

// FindCustomerInTx retrieves a customer on the caller's transaction so the
// row joins the transaction's read set (the assigner's idempotency guard
// depends on this read being conflict-checked).
func (r *PgxCustomerRepository) FindCustomerInTx(ctx context.Context, tx pgx.Tx, customerID string) (*domain.Customer, error) {
	row := tx.QueryRow(ctx, `SELECT `+customerColumns+` FROM customers WHERE customer_id = $1;`, customerID)
	m, err := scanCustomer(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find customer by ID %s in tx: %w", customerID, err)
	}
	d := mapping.ToDomainCustomer(*m)
	return &d, nil
}

// FindCustomerByPhone retrieves a clinic's customer by phone number.
func (r *PgxCustomerRepository) FindCustomerByPhone(ctx context.Context, clinicID, phone string) (*domain.Customer, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+customerColumns+` FROM customers WHERE clinic_id = $1 AND phone = $2;`, clinicID, phone)
	m, err := scanCustomer(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find customer by phone: %w", err)
	}
	d := mapping.ToDomainCustomer(*m)
	return &d, nil
}

// ListCustomersByClinic retrieves one page of customers using
// (created_at, customer_id) keyset pagination, newest first.
func (r *PgxCustomerRepository) ListCustomersByClinic(ctx context.Context, clinicID string, limit int, nextToken *string) ([]domain.Customer, *string, error) {
	args := []any{}
	query := `SELECT ` + customerColumns + ` FROM customers`
	conditions := ``

	argPos := 1
	if clinicID != "" {
		conditions = fmt.Sprintf(" WHERE clinic_id = $%d", argPos)
		args = append(args, clinicID)
		argPos++
	}
	if nextToken != nil {
		cursorAt, cursorID, err := pagination.DecodeCursor(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		if conditions == "" {
			conditions = " WHERE "
		} else {
			conditions += " AND "
		}
		conditions += fmt.Sprintf("(created_at, customer_id) < ($%d, $%d)", argPos, argPos+1)
		args = append(args, cursorAt, cursorID)
		argPos += 2
	}
	query += conditions + fmt.Sprintf(" ORDER BY created_at DESC, customer_id DESC LIMIT $%d;", argPos)
	args = append(args, limit+1) // one extra row decides whether a next page exists

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query customers: %w", err)
	}
	defer rows.Close()

	customers := []models.Customer{}
	for rows.Next() {
		m, err := scanCustomer(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan customer row: %w", err)
		}
		customers = append(customers, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating customer rows: %w", err)
	}

	var token *string
	if len(customers) > limit {
		customers = customers[:limit]
		last := customers[len(customers)-1]
		t := pagination.EncodeCursor(last.CreatedAt, last.CustomerID)
		token = &t
	}
	return mapping.ToDomainCustomerSlice(customers), token, nil
}

// ListUncodedCustomerIDs returns IDs of customers still missing a code,
// oldest first, for the code assigner's sweep.
func (r *PgxCustomerRepository) ListUncodedCustomerIDs(ctx context.Context, limit int) ([]string, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT customer_id FROM customers WHERE customer_code IS NULL ORDER BY created_at ASC LIMIT $1;
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query uncoded customers: %w", err)
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan uncoded customer ID: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating uncoded customer rows: %w", err)
	}
	return ids, nil
}

// UpdateCustomer updates the editable fields. The customer code is
// immutable and deliberately absent from the statement.
func (r *PgxCustomerRepository) UpdateCustomer(ctx context.Context, customer domain.Customer) error {
	m := mapping.ToModelCustomer(customer)
	tag, err := r.pool.Exec(ctx, `
		UPDATE customers
		SET full_name = $1, phone = $2, email = $3, date_of_birth = $4, gender = $5,
			address = $6, source = $7, notes = $8, last_updated_at = $9, last_updated_by = $10
		WHERE customer_id = $11;
	`,
		m.FullName,
		m.Phone,
		m.Email,
		m.DateOfBirth,
		m.Gender,
		m.Address,
		m.Source,
		m.Notes,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.CustomerID,
	)
	if err != nil {
		return fmt.Errorf("failed to update customer %s: %w", customer.CustomerID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteCustomer removes a customer row.
func (r *PgxCustomerRepository) DeleteCustomer(ctx context.Context, customerID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM customers WHERE customer_id = $1;`, customerID)
	if err != nil {
		return fmt.Errorf("failed to delete customer %s: %w", customerID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
