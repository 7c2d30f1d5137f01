package persistence

import (
	"context"
	"io/fs"
	"testing"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/token-service/migrations"
)

func TestEmbeddedMigrations(t *testing.T) {
	require.NoError(t, prepareGoose(zap.NewNop()))

	collected, err := goose.CollectMigrations(".", 0, goose.MaxVersion)
	require.NoError(t, err)
	require.Len(t, collected, 1)
	assert.Equal(t, int64(1), collected[0].Version)

	content, err := fs.ReadFile(migrations.FS, "001_identities.sql")
	require.NoError(t, err)
	assert.Contains(t, string(content), "-- +goose Up")
	assert.Contains(t, string(content), "-- +goose Down")
	assert.Contains(t, string(content), "staff_members")
	assert.Contains(t, string(content), "customers")
}

func TestRunMigrations_NoPool(t *testing.T) {
	assert.NoError(t, RunMigrations(context.Background(), nil, zap.NewNop()))
}
