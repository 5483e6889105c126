package models

import "time"

// APIToken is the row shape for the api_tokens table.
type APIToken struct {
	TokenID    string     `json:"tokenID" db:"token_id"`
	Name       string     `json:"name" db:"name"`
	ClinicID   string     `json:"clinicID" db:"clinic_id"`
	TokenHash  string     `json:"-" db:"token_hash"`
	LastUsedAt *time.Time `json:"lastUsedAt" db:"last_used_at"`
	ExpiresAt  *time.Time `json:"expiresAt" db:"expires_at"`
	RevokedAt  *time.Time `json:"revokedAt" db:"revoked_at"`
	CreatedAt  time.Time  `json:"createdAt" db:"created_at"`
	CreatedBy  string     `json:"createdBy" db:"created_by"`
}
