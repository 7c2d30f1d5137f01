package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/token-service/internal/api/dto"
	"github.com/spec-kit/token-service/internal/service"
)

// AccessDenied is the single response body for every failed issuance.
const AccessDenied = "Access is denied due to invalid credentials."

// TokenHandler exchanges credentials for bearer tokens.
type TokenHandler struct {
	auth   *service.AuthService
	logger *zap.Logger
}

// NewTokenHandler constructs handler.
func NewTokenHandler(authService *service.AuthService, logger *zap.Logger) *TokenHandler {
	return &TokenHandler{auth: authService, logger: logger}
}

// Issue handles POST /api/v1/token.
func (h *TokenHandler) Issue(c *fiber.Ctx) error {
	var req dto.TokenRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.Info("token request rejected",
			zap.String("kind", string(service.FailureBadInput)),
			zap.Error(err),
		)
		return deny(c)
	}

	token, err := h.auth.IssueToken(c.UserContext(), req.Credential())
	if err != nil {
		kind := service.FailureKindOf(err)
		log := h.logger.Info
		if kind == service.FailureUnexpected {
			log = h.logger.Error
		}
		log("token request rejected",
			zap.String("kind", string(kind)),
			zap.Bool("is_staff", req.IsStaff),
			zap.Error(err),
		)
		return deny(c)
	}

	c.Set(fiber.HeaderCacheControl, "no-store")
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.Status(http.StatusOK).SendString(token)
}

func deny(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.Status(http.StatusUnauthorized).SendString(AccessDenied)
}
