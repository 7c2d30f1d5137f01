package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/token-service/internal/api/dto"
	"github.com/spec-kit/token-service/internal/auth"
	apperrors "github.com/spec-kit/token-service/pkg/util"
)

// MeHandler reports the caller's verified claims.
type MeHandler struct{}

// NewMeHandler constructs handler.
func NewMeHandler() *MeHandler {
	return &MeHandler{}
}

// Show handles GET /api/v1/me.
func (h *MeHandler) Show(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	return c.JSON(fiber.Map{
		"data": dto.PrincipalResponse{
			Claims:    principal.Claims,
			IssuedAt:  principal.IssuedAt,
			ExpiresAt: principal.ExpiresAt,
		},
	})
}
