package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/spec-kit/token-service/internal/auth"
	"github.com/spec-kit/token-service/internal/domain"
)

// FailureKind tags why an issuance attempt failed. It is for internal
// logging only and never changes the response a caller sees.
type FailureKind string

const (
	FailureBadInput           FailureKind = "BAD_INPUT"
	FailureVerificationFailed FailureKind = "VERIFICATION_FAILED"
	FailureUnexpected         FailureKind = "UNEXPECTED"
)

// AuthError is returned by IssueToken for every failed attempt.
type AuthError struct {
	Kind FailureKind
	Err  error
}

func (e *AuthError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return string(e.Kind)
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// FailureKindOf extracts the failure kind from err, defaulting to FailureUnexpected.
func FailureKindOf(err error) FailureKind {
	var authErr *AuthError
	if errors.As(err, &authErr) {
		return authErr.Kind
	}
	return FailureUnexpected
}

// AuthService coordinates credential verification and token issuance.
type AuthService struct {
	verifier CredentialVerifier
	tokenMgr *auth.TokenManager
}

// NewAuthService builds the service.
func NewAuthService(verifier CredentialVerifier, tokens *auth.TokenManager) *AuthService {
	return &AuthService{verifier: verifier, tokenMgr: tokens}
}

// IssueToken verifies the credential and mints a token for the identity.
func (s *AuthService) IssueToken(ctx context.Context, credential *domain.Credential) (token string, err error) {
	defer func() {
		if r := recover(); r != nil {
			token = ""
			err = &AuthError{Kind: FailureUnexpected, Err: fmt.Errorf("panic: %v", r)}
		}
	}()

	if !credential.Valid() {
		return "", &AuthError{Kind: FailureBadInput, Err: errors.New("username and password required")}
	}

	identity, err := s.verifier.Verify(ctx, *credential)
	if err != nil {
		return "", &AuthError{Kind: FailureVerificationFailed, Err: err}
	}
	if identity == nil {
		return "", &AuthError{Kind: FailureVerificationFailed, Err: errors.New("verifier returned no identity")}
	}

	token, err = s.tokenMgr.Issue(*identity)
	if err != nil {
		return "", &AuthError{Kind: FailureUnexpected, Err: err}
	}
	return token, nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
