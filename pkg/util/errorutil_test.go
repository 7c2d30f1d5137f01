package util

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDomainError(t *testing.T) {
	assert.Nil(t, ToDomainError(nil))

	wrapped := fmt.Errorf("gate: %w", NewUnauthorized("invalid token"))
	de := ToDomainError(wrapped)
	require.NotNil(t, de)
	assert.Equal(t, "UNAUTHORIZED", de.Code)
	assert.Equal(t, http.StatusUnauthorized, de.HTTPStatus)
	assert.Equal(t, "invalid token", de.Message)

	de = ToDomainError(fiber.ErrNotFound)
	assert.Equal(t, "NOT_FOUND", de.Code)
	assert.Equal(t, http.StatusNotFound, de.HTTPStatus)

	de = ToDomainError(fmt.Errorf("lookup: %w", errors.New("no rows in result set")))
	assert.Equal(t, "INTERNAL_ERROR", de.Code)

	cause := errors.New("boom")
	de = ToDomainError(cause)
	assert.Equal(t, "INTERNAL_ERROR", de.Code)
	assert.Equal(t, "internal server error", de.Message)
	assert.ErrorIs(t, de, cause)
}
