package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	apperrors "github.com/spec-kit/token-service/pkg/util"
)

const bearerScheme = "Bearer"

// Gate validates bearer tokens and attaches principals to the request.
// Requests without a bearer credential pass through unauthenticated;
// endpoints opt in to enforcement with Gate.RequireAuthenticated.
type Gate struct {
	tokens *TokenManager
	realm  string
	logger *zap.Logger
}

// NewGate constructs the middleware.
func NewGate(tokens *TokenManager, realm string, logger *zap.Logger) *Gate {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Gate{tokens: tokens, realm: realm, logger: logger}
}

// Handle runs the gate for a single request.
func (g *Gate) Handle(c *fiber.Ctx) error {
	authHeader := c.Get(fiber.HeaderAuthorization)
	if authHeader == "" {
		return c.Next()
	}

	scheme, param, _ := strings.Cut(authHeader, " ")
	if scheme != bearerScheme {
		return c.Next()
	}

	token := strings.TrimSpace(param)
	if token == "" {
		g.Challenge(c)
		return apperrors.NewUnauthorized("missing token")
	}

	principal, err := g.tokens.Validate(token)
	if err != nil {
		g.logger.Debug("bearer token rejected", zap.Error(err), zap.String("path", c.Path()))
		g.Challenge(c)
		return apperrors.NewUnauthorized("invalid token")
	}

	c.Locals(principalKey, principal)
	return c.Next()
}

// Challenge sets the WWW-Authenticate header for a 401 response.
func (g *Gate) Challenge(c *fiber.Ctx) {
	value := bearerScheme
	if g.realm != "" {
		value += ` realm="` + g.realm + `"`
	}
	c.Set(fiber.HeaderWWWAuthenticate, value)
}
