package auth

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/token-service/internal/domain"
)

const principalKey = "auth_principal"

// Principal represents the authenticated caller recovered from a token.
type Principal struct {
	Claims    map[string]string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

func newPrincipal(claims *Claims) *Principal {
	p := &Principal{Claims: claims.Set()}
	if claims.IssuedAt != nil {
		p.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		p.ExpiresAt = claims.ExpiresAt.Time
	}
	return p
}

// Name returns the display name claim.
func (p *Principal) Name() string {
	return p.Claims["name"]
}

// Identity rebuilds the identity the token was issued for.
func (p *Principal) Identity() (domain.Identity, error) {
	id, err := strconv.ParseInt(p.Claims["id"], 10, 64)
	if err != nil {
		return domain.Identity{}, err
	}
	return domain.Identity{
		ID:      id,
		Login:   p.Claims["login"],
		Email:   p.Claims["email"],
		Name:    p.Claims["name"],
		Surname: p.Claims["surname"],
	}, nil
}

// PrincipalFromContext retrieves the authenticated entity.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}
