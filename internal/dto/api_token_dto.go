package dto

import (
	"time"

	"github.com/hndang/clinic_mgmt_app/internal/core/domain"
)

// CreateAPITokenRequest defines a new workstation token.
type CreateAPITokenRequest struct {
	Name      string     `json:"name" binding:"required"`
	ClinicID  string     `json:"clinicID" binding:"required"`
	ExpiresAt *time.Time `json:"expiresAt"`
}

// CreateAPITokenResponse returns the plaintext token exactly once.
type CreateAPITokenResponse struct {
	TokenID   string     `json:"tokenID"`
	Name      string     `json:"name"`
	Token     string     `json:"token"` // shown only here; store it now
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
}

// APITokenResponse defines the data returned when listing tokens.
type APITokenResponse struct {
	TokenID    string     `json:"tokenID"`
	Name       string     `json:"name"`
	ClinicID   string     `json:"clinicID"`
	LastUsedAt *time.Time `json:"lastUsedAt,omitempty"`
	ExpiresAt  *time.Time `json:"expiresAt,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
}

// ToAPITokenResponse converts a domain.APIToken to its response form.
func ToAPITokenResponse(t *domain.APIToken) APITokenResponse {
	return APITokenResponse{
		TokenID:    t.TokenID,
		Name:       t.Name,
		ClinicID:   t.ClinicID,
		LastUsedAt: t.LastUsedAt,
		ExpiresAt:  t.ExpiresAt,
		CreatedAt:  t.CreatedAt,
	}
}

// ToListAPITokenResponse converts a slice of tokens.
func ToListAPITokenResponse(tokens []domain.APIToken) []APITokenResponse {
	res := make([]APITokenResponse, len(tokens))
	for i, t := range tokens {
		res[i] = ToAPITokenResponse(&t)
	}
	return res
}
