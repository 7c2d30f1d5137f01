package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/spec-kit/token-service/internal/domain"
)

// TokenLifetime is how long an issued token stays valid.
const TokenLifetime = 7 * 24 * time.Hour

var (
	// ErrTokenMalformed is returned when a token cannot be decoded.
	ErrTokenMalformed = errors.New("token malformed")
	// ErrTokenInvalid is returned for a bad signature, a missing or
	// passed expiry, or an incomplete identity.
	ErrTokenInvalid = errors.New("token invalid")
)

var signingMethod = jwt.SigningMethodHS512

// Claims describes JWT payload.
type Claims struct {
	ID      string `json:"id"`
	Login   string `json:"login"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Surname string `json:"surname"`
	jwt.RegisteredClaims
}

// NewClaims builds the claim set for an identity.
func NewClaims(identity domain.Identity) Claims {
	return Claims{
		ID:      strconv.FormatInt(identity.ID, 10),
		Login:   identity.Login,
		Email:   identity.Email,
		Name:    identity.Name,
		Surname: identity.Surname,
	}
}

// Set returns the identity claims keyed by claim name.
func (c Claims) Set() map[string]string {
	return map[string]string{
		"id":      c.ID,
		"login":   c.Login,
		"email":   c.Email,
		"name":    c.Name,
		"surname": c.Surname,
	}
}

// TokenManager handles issuing and validating JWT tokens.
// It holds no mutable state and is safe for concurrent use.
type TokenManager struct {
	secret []byte
	now    func() time.Time
}

// Option customizes a TokenManager.
type Option func(*TokenManager)

// WithClock overrides the time source used for issuing and validating.
func WithClock(now func() time.Time) Option {
	return func(tm *TokenManager) {
		if now != nil {
			tm.now = now
		}
	}
}

// NewTokenManager builds a new manager around the shared signing secret.
func NewTokenManager(secret []byte, opts ...Option) (*TokenManager, error) {
	if len(secret) == 0 {
		return nil, errors.New("signing secret is empty")
	}
	tm := &TokenManager{
		secret: append([]byte(nil), secret...),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(tm)
	}
	return tm, nil
}

// Issue builds and signs a token for the identity.
func (tm *TokenManager) Issue(identity domain.Identity) (string, error) {
	issuedAt := tm.now().UTC()
	claims := NewClaims(identity)
	claims.RegisteredClaims = jwt.RegisteredClaims{
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(issuedAt.Add(TokenLifetime)),
	}

	tokenString, err := jwt.NewWithClaims(signingMethod, claims).SignedString(tm.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return tokenString, nil
}

// Validate verifies signature and expiry and returns the caller principal.
func (tm *TokenManager) Validate(tokenStr string) (*Principal, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(tokenStr, claims,
		func(*jwt.Token) (interface{}, error) { return tm.secret, nil },
		jwt.WithValidMethods([]string{signingMethod.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(tm.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenMalformed) {
			return nil, fmt.Errorf("%w: %v", ErrTokenMalformed, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}
	if !parsed.Valid {
		return nil, ErrTokenInvalid
	}

	// Identity check; account state lookups would also go here.
	if claims.Name == "" {
		return nil, fmt.Errorf("%w: name claim missing", ErrTokenInvalid)
	}

	return newPrincipal(claims), nil
}
