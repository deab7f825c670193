package session_test

import (
	"context"
	"sync"
	"testing"

	"regenmed/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func TestMemoryStore_GetAbsent(t *testing.T) {
	t.Parallel()
	store := session.NewMemoryStore()

	sess, err := store.Get(context.Background(), "unknown")
	require.NoError(t, err)
	assert.Nil(t, sess)

	has, err := store.HasTokens(context.Background(), "unknown")
	require.NoError(t, err)
	assert.False(t, has)
}

func TestMemoryStore_SetTokens(t *testing.T) {
	t.Parallel()
	store := session.NewMemoryStore()
	ctx := context.Background()

	err := store.SetTokens(ctx, "sid-1", &oauth2.Token{AccessToken: "at-1"})
	require.NoError(t, err)

	sess, err := store.Get(ctx, "sid-1")
	require.NoError(t, err)
	require.NotNil(t, sess)
	assert.Equal(t, "sid-1", sess.ID)
	require.NotNil(t, sess.Tokens)
	assert.Equal(t, "at-1", sess.Tokens.AccessToken)

	has, err := store.HasTokens(ctx, "sid-1")
	require.NoError(t, err)
	assert.True(t, has)
}

func TestMemoryStore_LaterGrantOverwrites(t *testing.T) {
	t.Parallel()
	store := session.NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.SetTokens(ctx, "sid-1", &oauth2.Token{AccessToken: "old", RefreshToken: "old-refresh"}))
	require.NoError(t, store.SetTokens(ctx, "sid-1", &oauth2.Token{AccessToken: "new"}))

	sess, err := store.Get(ctx, "sid-1")
	require.NoError(t, err)
	require.NotNil(t, sess.Tokens)
	// Whole-value replacement: no field-by-field merge with the old bundle.
	assert.Equal(t, "new", sess.Tokens.AccessToken)
	assert.Empty(t, sess.Tokens.RefreshToken)
}

func TestMemoryStore_SessionsAreIndependent(t *testing.T) {
	t.Parallel()
	store := session.NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.SetTokens(ctx, "sid-1", &oauth2.Token{AccessToken: "at-1"}))

	has, err := store.HasTokens(ctx, "sid-2")
	require.NoError(t, err)
	assert.False(t, has)
}

func TestMemoryStore_ConcurrentWrites(t *testing.T) {
	t.Parallel()
	store := session.NewMemoryStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = store.SetTokens(ctx, "sid-1", &oauth2.Token{AccessToken: "at", RefreshToken: "rt"})
		}()
	}
	wg.Wait()

	sess, err := store.Get(ctx, "sid-1")
	require.NoError(t, err)
	require.NotNil(t, sess.Tokens)
	assert.Equal(t, "at", sess.Tokens.AccessToken)
	assert.Equal(t, "rt", sess.Tokens.RefreshToken)
}
