package service

import (
	"context"
	"errors"

	"github.com/spec-kit/token-service/internal/auth"
	"github.com/spec-kit/token-service/internal/domain"
	"github.com/spec-kit/token-service/internal/repository"
)

// ErrInvalidCredentials is returned when a credential does not match an active account.
var ErrInvalidCredentials = errors.New("invalid credentials")

// CredentialVerifier checks a credential and returns the matching identity.
type CredentialVerifier interface {
	Verify(ctx context.Context, credential domain.Credential) (*domain.Identity, error)
}

// PasswordVerifier verifies credentials against bcrypt hashes held by an
// IdentityRepository.
type PasswordVerifier struct {
	accounts  repository.IdentityRepository
	dummyHash string
}

// NewPasswordVerifier builds a verifier. The bcrypt cost is used for the
// hash compared against when the login is unknown.
func NewPasswordVerifier(accounts repository.IdentityRepository, bcryptCost int) (*PasswordVerifier, error) {
	dummy, err := auth.HashPassword("not-a-real-password", bcryptCost)
	if err != nil {
		return nil, err
	}
	return &PasswordVerifier{accounts: accounts, dummyHash: dummy}, nil
}

// Verify looks the login up in the credential's population and checks the password.
func (v *PasswordVerifier) Verify(ctx context.Context, credential domain.Credential) (*domain.Identity, error) {
	account, err := v.accounts.FindIdentity(ctx, credential.Population(), credential.Username)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			_ = auth.ComparePassword(v.dummyHash, credential.Password)
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := auth.ComparePassword(account.PasswordHash, credential.Password); err != nil {
		return nil, ErrInvalidCredentials
	}
	if !account.Active {
		return nil, ErrInvalidCredentials
	}

	identity := account.Identity
	return &identity, nil
}
