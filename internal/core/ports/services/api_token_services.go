package services

import (
	"context"

	"github.com/hndang/clinic_mgmt_app/internal/core/domain"
	"github.com/hndang/clinic_mgmt_app/internal/dto"
)

// APITokenSvc manages workstation tokens and validates presented ones.
type APITokenSvc interface {
	// CreateToken issues a token, returning the plaintext exactly once.
	CreateToken(ctx context.Context, req dto.CreateAPITokenRequest, creatorID string) (*dto.CreateAPITokenResponse, error)

	// ValidateToken checks a presented plaintext token and returns the
	// matching token record. Expired and revoked tokens fail.
	ValidateToken(ctx context.Context, plaintext string) (*domain.APIToken, error)

	// ListTokens retrieves active tokens (hashes excluded).
	ListTokens(ctx context.Context) ([]domain.APIToken, error)

	// RevokeToken revokes a token by ID.
	RevokeToken(ctx context.Context, tokenID string) error
}
