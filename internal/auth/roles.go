package auth

import (
	"github.com/gofiber/fiber/v2"

	apperrors "github.com/spec-kit/token-service/pkg/util"
)

// RequireAuthenticated rejects requests the Gate did not attach a principal
// to, answering with the same Bearer challenge the Gate sends.
func (g *Gate) RequireAuthenticated() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := PrincipalFromContext(c); !ok {
			g.Challenge(c)
			return apperrors.NewUnauthorized("authentication required")
		}
		return c.Next()
	}
}
