package repository

import (
	"context"
	"os"
	"testing"

	"flavours/config"
	"flavours/infras/otel/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscardPartialRecord(t *testing.T) {
	cfg := &config.Config{}
	cfg.Booking.DataDir = t.TempDir()

	repo := New(cfg, mocks.NewOtel()).(*repositoryImpl)

	require.NoError(t, os.MkdirAll(repo.bookingsDir(), 0o755))

	id := uuid.NewString()
	require.NoError(t, os.WriteFile(repo.recordFile(id), []byte(`{"id":"truncat`), 0o644))

	repo.discardPartialRecord(id)

	_, err := os.Stat(repo.recordFile(id))
	assert.True(t, os.IsNotExist(err))

	// With the truncated file gone the directory scan recovers.
	assert.Empty(t, repo.GetAll(context.Background()))

	// Discarding an id that never hit disk is a no-op.
	repo.discardPartialRecord(uuid.NewString())
}
