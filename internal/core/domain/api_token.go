package domain

import "time"

// APIToken authenticates a clinic workstation (front-desk machine) that
// talks to the API without a per-user session. Only the bcrypt hash of the
// token is stored; the plaintext is shown once at issue time.
type APIToken struct {
	TokenID    string     `json:"tokenID"`
	Name       string     `json:"name"` // e.g. "front-desk-mk-01"
	ClinicID   string     `json:"clinicID"`
	TokenHash  string     `json:"-"`
	LastUsedAt *time.Time `json:"lastUsedAt,omitempty"`
	ExpiresAt  *time.Time `json:"expiresAt,omitempty"`
	RevokedAt  *time.Time `json:"revokedAt,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
	CreatedBy  string     `json:"createdBy"`
}

// IsExpired checks if the token has expired.
func (t *APIToken) IsExpired() bool {
	if t.ExpiresAt == nil {
		return false
	}
	return t.ExpiresAt.Before(time.Now())
}

// IsRevoked checks if the token has been revoked.
func (t *APIToken) IsRevoked() bool {
	return t.RevokedAt != nil
}
