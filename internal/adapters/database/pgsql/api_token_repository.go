package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/hndang/clinic_mgmt_app/internal/apperrors"
	"github.com/hndang/clinic_mgmt_app/internal/core/domain"
	portsrepo "github.com/hndang/clinic_mgmt_app/internal/core/ports/repositories"
	"github.com/hndang/clinic_mgmt_app/internal/models"
	"github.com/hndang/clinic_mgmt_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

const apiTokenColumns = `token_id, name, clinic_id, token_hash, last_used_at, expires_at, revoked_at, created_at, created_by`

type PgxAPITokenRepository struct {
	pool *pgxpool.Pool
}

// NewPgxAPITokenRepository creates a new repository for workstation API
// tokens. Only hashes are stored.
func NewPgxAPITokenRepository(pool *pgxpool.Pool) portsrepo.APITokenRepositoryFacade {
	return &PgxAPITokenRepository{pool: pool}
}

// CreateAPIToken stores a new token record.
func (r *PgxAPITokenRepository) CreateAPIToken(ctx context.Context, token domain.APIToken) error {
	m := mapping.ToModelAPIToken(token)
	_, err := r.pool.Exec(ctx, `
		INSERT INTO api_tokens (`+apiTokenColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`,
		m.TokenID,
		m.Name,
		m.ClinicID,
		m.TokenHash,
		m.LastUsedAt,
		m.ExpiresAt,
		m.RevokedAt,
		m.CreatedAt,
		m.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert API token %s: %w", token.TokenID, err)
	}
	return nil
}

// ListActiveAPITokens retrieves tokens that are neither revoked nor expired.
func (r *PgxAPITokenRepository) ListActiveAPITokens(ctx context.Context) ([]domain.APIToken, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+apiTokenColumns+` FROM api_tokens
		WHERE revoked_at IS NULL AND (expires_at IS NULL OR expires_at > now())
		ORDER BY created_at DESC;
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query active API tokens: %w", err)
	}
	defer rows.Close()

	tokens := []domain.APIToken{}
	for rows.Next() {
		var m models.APIToken
		err := rows.Scan(
			&m.TokenID,
			&m.Name,
			&m.ClinicID,
			&m.TokenHash,
			&m.LastUsedAt,
			&m.ExpiresAt,
			&m.RevokedAt,
			&m.CreatedAt,
			&m.CreatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan API token row: %w", err)
		}
		tokens = append(tokens, mapping.ToDomainAPIToken(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating API token rows: %w", err)
	}
	return tokens, nil
}

// TouchAPIToken records when a token was last used.
func (r *PgxAPITokenRepository) TouchAPIToken(ctx context.Context, tokenID string, usedAt time.Time) error {
	tag, err := r.pool.Exec(ctx, `UPDATE api_tokens SET last_used_at = $1 WHERE token_id = $2;`, usedAt, tokenID)
	if err != nil {
		return fmt.Errorf("failed to touch API token %s: %w", tokenID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// RevokeAPIToken marks a token revoked. Revoking twice is a no-op on the
// original timestamp.
func (r *PgxAPITokenRepository) RevokeAPIToken(ctx context.Context, tokenID string, revokedAt time.Time) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE api_tokens SET revoked_at = $1 WHERE token_id = $2 AND revoked_at IS NULL;
	`, revokedAt, tokenID)
	if err != nil {
		return fmt.Errorf("failed to revoke API token %s: %w", tokenID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
