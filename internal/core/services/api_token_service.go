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
	"github.com/hndang/clinic_mgmt_app/internal/utils"
	"golang.org/x/crypto/bcrypt"
)

// apiTokenService manages workstation tokens: issue, validate, revoke.
type apiTokenService struct {
	tokenRepo  portsrepo.APITokenRepositoryFacade
	clinicRepo portsrepo.ClinicRepository
}

func NewAPITokenService(tokenRepo portsrepo.APITokenRepositoryFacade, clinicRepo portsrepo.ClinicRepository) *apiTokenService {
	return &apiTokenService{tokenRepo: tokenRepo, clinicRepo: clinicRepo}
}

// CreateToken issues a token. The plaintext appears only in the response;
// only its bcrypt hash is stored.
func (s *apiTokenService) CreateToken(ctx context.Context, req dto.CreateAPITokenRequest, creatorID string) (*dto.CreateAPITokenResponse, error) {
	if _, err := s.clinicRepo.FindClinicByID(ctx, req.ClinicID); err != nil {
		return nil, fmt.Errorf("failed to resolve clinic %s: %w", req.ClinicID, err)
	}

	plaintext, err := utils.GenerateSecureRandomString(32)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	tokenHash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash token: %w", err)
	}

	token := domain.APIToken{
		TokenID:   uuid.NewString(),
		Name:      req.Name,
		ClinicID:  req.ClinicID,
		TokenHash: string(tokenHash),
		ExpiresAt: req.ExpiresAt,
		CreatedAt: time.Now(),
		CreatedBy: creatorID,
	}
	if err := s.tokenRepo.CreateAPIToken(ctx, token); err != nil {
		return nil, fmt.Errorf("failed to save token: %w", err)
	}

	return &dto.CreateAPITokenResponse{
		TokenID:   token.TokenID,
		Name:      token.Name,
		Token:     plaintext,
		ExpiresAt: token.ExpiresAt,
	}, nil
}

// ValidateToken checks a presented plaintext token against the stored
// hashes of active tokens. Expired and revoked tokens never match because
// they are excluded from the candidate set.
func (s *apiTokenService) ValidateToken(ctx context.Context, plaintext string) (*domain.APIToken, error) {
	if plaintext == "" {
		return nil, fmt.Errorf("%w: empty token", apperrors.ErrValidation)
	}

	candidates, err := s.tokenRepo.ListActiveAPITokens(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load active tokens: %w", err)
	}
	for i := range candidates {
		token := &candidates[i]
		if bcrypt.CompareHashAndPassword([]byte(token.TokenHash), []byte(plaintext)) == nil {
			if err := s.tokenRepo.TouchAPIToken(ctx, token.TokenID, time.Now()); err != nil {
				// Usage tracking failure must not fail authentication.
				middleware.GetLoggerFromCtx(ctx).Warn("Failed to record token use", slog.String("token_id", token.TokenID), slog.String("error", err.Error()))
			}
			return token, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

// ListTokens retrieves active tokens.
func (s *apiTokenService) ListTokens(ctx context.Context) ([]domain.APIToken, error) {
	tokens, err := s.tokenRepo.ListActiveAPITokens(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tokens: %w", err)
	}
	if tokens == nil {
		return []domain.APIToken{}, nil
	}
	return tokens, nil
}

// RevokeToken revokes a token by ID.
func (s *apiTokenService) RevokeToken(ctx context.Context, tokenID string) error {
	if err := s.tokenRepo.RevokeAPIToken(ctx, tokenID, time.Now()); err != nil {
		return fmt.Errorf("failed to revoke token %s: %w", tokenID, err)
	}
	return nil
}
