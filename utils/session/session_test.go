package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	token, err := store.Create(ctx, Data{UserID: 42, Email: "user@example.com"})
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	data, err := store.Get(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), data.UserID)
	assert.Equal(t, "user@example.com", data.Email)
}

func TestMemoryStoreTokensAreUnique(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	a, err := store.Create(ctx, Data{UserID: 1})
	require.NoError(t, err)
	b, err := store.Create(ctx, Data{UserID: 1})
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestMemoryStoreUnknownToken(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.Get(context.Background(), "no-such-token")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreDestroy(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	token, err := store.Create(ctx, Data{UserID: 7})
	require.NoError(t, err)

	require.NoError(t, store.Destroy(ctx, token))

	_, err = store.Get(ctx, token)
	assert.ErrorIs(t, err, ErrNotFound)

	// Destroying an already-destroyed token stays a no-op.
	assert.NoError(t, store.Destroy(ctx, token))
}

func TestMemoryStoreExpiry(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	current := time.Now()
	store.now = func() time.Time { return current }

	token, err := store.Create(ctx, Data{UserID: 9})
	require.NoError(t, err)

	// Still valid just inside the TTL.
	current = current.Add(TTL - time.Minute)
	_, err = store.Get(ctx, token)
	require.NoError(t, err)

	// Gone once the TTL elapses.
	current = current.Add(2 * time.Minute)
	_, err = store.Get(ctx, token)
	assert.ErrorIs(t, err, ErrNotFound)
}
