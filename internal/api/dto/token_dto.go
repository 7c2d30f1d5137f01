package dto

import (
	"time"

	"github.com/spec-kit/token-service/internal/domain"
)

// TokenRequest payload for credential exchange.
type TokenRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	IsStaff  bool   `json:"is_staff"`
}

// Credential converts the payload into a domain credential.
func (r TokenRequest) Credential() *domain.Credential {
	return &domain.Credential{Username: r.Username, Password: r.Password, IsStaff: r.IsStaff}
}

// PrincipalResponse describes the authenticated caller.
type PrincipalResponse struct {
	Claims    map[string]string `json:"claims"`
	IssuedAt  time.Time         `json:"issued_at"`
	ExpiresAt time.Time         `json:"expires_at"`
}
