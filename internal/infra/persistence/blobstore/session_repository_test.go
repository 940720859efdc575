package blobstore

import (
	"context"
	"testing"

	"suq/internal/domain/repository"
	"suq/internal/infra/kvstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRepository_CurrentWithoutSession(t *testing.T) {
	repo := NewSessionRepository(kvstore.NewMemStore())

	_, err := repo.Current(context.Background())
	assert.ErrorIs(t, err, repository.ErrNoSession)
}

func TestSessionRepository_SetCurrentRoundTrip(t *testing.T) {
	repo := NewSessionRepository(kvstore.NewMemStore())
	ctx := context.Background()

	user := newTestUser("u1", "selam@example.com", "0911")
	require.NoError(t, repo.SetCurrent(ctx, user))

	got, err := repo.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, "u1", got.ID)
	assert.Equal(t, user.PasswordHash, got.PasswordHash)
}

func TestSessionRepository_SetCurrentReplacesPrevious(t *testing.T) {
	repo := NewSessionRepository(kvstore.NewMemStore())
	ctx := context.Background()

	require.NoError(t, repo.SetCurrent(ctx, newTestUser("u1", "a@example.com", "0911")))
	require.NoError(t, repo.SetCurrent(ctx, newTestUser("u2", "b@example.com", "0922")))

	got, err := repo.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, "u2", got.ID)
}

func TestSessionRepository_Clear(t *testing.T) {
	repo := NewSessionRepository(kvstore.NewMemStore())
	ctx := context.Background()

	require.NoError(t, repo.SetCurrent(ctx, newTestUser("u1", "a@example.com", "0911")))
	require.NoError(t, repo.Clear(ctx))

	_, err := repo.Current(ctx)
	assert.ErrorIs(t, err, repository.ErrNoSession)
}

func TestSessionRepository_ClearWithoutSessionIsNoOp(t *testing.T) {
	repo := NewSessionRepository(kvstore.NewMemStore())

	assert.NoError(t, repo.Clear(context.Background()))
}

func TestSessionRepository_CorruptRegionReadsAsNoSession(t *testing.T) {
	store := kvstore.NewMemStore()
	repo := NewSessionRepository(store)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, sessionKey, "{broken"))

	_, err := repo.Current(ctx)
	assert.ErrorIs(t, err, repository.ErrNoSession)
}
