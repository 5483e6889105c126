package repositories

import (
	"context"
	"time"

	"github.com/hndang/clinic_mgmt_app/internal/core/domain"
)

// APITokenRepositoryFacade covers workstation API tokens.
type APITokenRepositoryFacade interface {
	// CreateAPIToken stores a new token (hash only).
	CreateAPIToken(ctx context.Context, token domain.APIToken) error

	// ListActiveAPITokens retrieves tokens that are neither revoked nor expired.
	ListActiveAPITokens(ctx context.Context) ([]domain.APIToken, error)

	// TouchAPIToken records when a token was last used.
	TouchAPIToken(ctx context.Context, tokenID string, usedAt time.Time) error

	// RevokeAPIToken marks a token revoked.
	RevokeAPIToken(ctx context.Context, tokenID string, revokedAt time.Time) error
}
