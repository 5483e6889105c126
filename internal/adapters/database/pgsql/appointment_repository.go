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
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const appointmentColumns = `appointment_id, customer_id, customer_name, clinic_id, scheduled_at, duration_mins, status, notes, created_at, created_by, last_updated_at, last_updated_by`

type PgxAppointmentRepository struct {
	pool *pgxpool.Pool
}

// NewPgxAppointmentRepository creates a new repository for calendar
// appointments.
func NewPgxAppointmentRepository(pool *pgxpool.Pool) portsrepo.AppointmentRepositoryFacade {
	return &PgxAppointmentRepository{pool: pool}
}

func scanAppointment(row pgx.Row) (*models.Appointment, error) {
	var m models.Appointment
	err := row.Scan(
		&m.AppointmentID,
		&m.CustomerID,
		&m.CustomerName,
		&m.ClinicID,
		&m.ScheduledAt,
		&m.DurationMins,
		&m.Status,
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

// FindAppointmentByID retrieves one appointment.
func (r *PgxAppointmentRepository) FindAppointmentByID(ctx context.Context, appointmentID string) (*domain.Appointment, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+appointmentColumns+` FROM appointments WHERE appointment_id = $1;`, appointmentID)
	m, err := scanAppointment(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find appointment %s: %w", appointmentID, err)
	}
	d := mapping.ToDomainAppointment(*m)
	return &d, nil
}

// ListAppointmentsInRange retrieves appointments scheduled inside [from, to),
// optionally filtered by clinic, earliest first.
func (r *PgxAppointmentRepository) ListAppointmentsInRange(ctx context.Context, clinicID string, from, to time.Time) ([]domain.Appointment, error) {
	args := []any{from, to}
	query := `SELECT ` + appointmentColumns + ` FROM appointments WHERE scheduled_at >= $1 AND scheduled_at < $2`
	if clinicID != "" {
		query += ` AND clinic_id = $3`
		args = append(args, clinicID)
	}
	query += ` ORDER BY scheduled_at, appointment_id;`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query appointments: %w", err)
	}
	defer rows.Close()

	appointments := []models.Appointment{}
	for rows.Next() {
		m, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan appointment row: %w", err)
		}
		appointments = append(appointments, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating appointment rows: %w", err)
	}
	return mapping.ToDomainAppointmentSlice(appointments), nil
}

// CreateAppointment inserts a new appointment.
func (r *PgxAppointmentRepository) CreateAppointment(ctx context.Context, appointment domain.Appointment) error {
	m := mapping.ToModelAppointment(appointment)
	_, err := r.pool.Exec(ctx, `
		INSERT INTO appointments (`+appointmentColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`,
		m.AppointmentID,
		m.CustomerID,
		m.CustomerName,
		m.ClinicID,
		m.ScheduledAt,
		m.DurationMins,
		m.Status,
		m.Notes,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert appointment %s: %w", appointment.AppointmentID, err)
	}
	return nil
}

// UpdateAppointment updates an appointment.
func (r *PgxAppointmentRepository) UpdateAppointment(ctx context.Context, appointment domain.Appointment) error {
	m := mapping.ToModelAppointment(appointment)
	tag, err := r.pool.Exec(ctx, `
		UPDATE appointments
		SET customer_name = $1, scheduled_at = $2, duration_mins = $3, status = $4, notes = $5, last_updated_at = $6, last_updated_by = $7
		WHERE appointment_id = $8;
	`, m.CustomerName, m.ScheduledAt, m.DurationMins, m.Status, m.Notes, m.LastUpdatedAt, m.LastUpdatedBy, m.AppointmentID)
	if err != nil {
		return fmt.Errorf("failed to update appointment %s: %w", appointment.AppointmentID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteAppointment removes an appointment.
func (r *PgxAppointmentRepository) DeleteAppointment(ctx context.Context, appointmentID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM appointments WHERE appointment_id = $1;`, appointmentID)
	if err != nil {
		return fmt.Errorf("failed to delete appointment %s: %w", appointmentID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
