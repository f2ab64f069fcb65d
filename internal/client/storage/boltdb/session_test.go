package boltdb

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openbiblio/biblio/internal/client/storage"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	s, err := New(context.Background(), dbPath)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, s.Close())
	})

	return s
}

func TestStorage_New(t *testing.T) {
	s := newTestStorage(t)
	require.NotNil(t, s)
}

func TestStorage_SaveSession_RoundTrip(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	userJSON := []byte(`{"id":"1","nome":"Test User","email":"test@example.com","role":"COMUM"}`)
	require.NoError(t, s.SaveSession(ctx, "fake-token", userJSON))

	token, err := s.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "fake-token", token)

	user, err := s.User(ctx)
	require.NoError(t, err)
	assert.Equal(t, userJSON, user)
}

func TestStorage_SaveSession_Overwrites(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.SaveSession(ctx, "old-token", []byte(`{"id":"1"}`)))
	require.NoError(t, s.SaveSession(ctx, "new-token", []byte(`{"id":"2"}`)))

	token, err := s.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "new-token", token)

	user, err := s.User(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"id":"2"}`), user)
}

func TestStorage_EmptySession(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	_, err := s.Token(ctx)
	assert.ErrorIs(t, err, storage.ErrSessionNotFound)

	_, err = s.User(ctx)
	assert.ErrorIs(t, err, storage.ErrSessionNotFound)
}

func TestStorage_Clear(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.SaveSession(ctx, "fake-token", []byte(`{"id":"1"}`)))
	require.NoError(t, s.Clear(ctx))

	_, err := s.Token(ctx)
	assert.ErrorIs(t, err, storage.ErrSessionNotFound)
	_, err = s.User(ctx)
	assert.ErrorIs(t, err, storage.ErrSessionNotFound)

	// The bucket is recreated, so a new session can be saved right away.
	require.NoError(t, s.SaveSession(ctx, "next-token", []byte(`{"id":"2"}`)))
	token, err := s.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "next-token", token)
}

func TestStorage_Clear_Idempotent(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.Clear(ctx))
	require.NoError(t, s.Clear(ctx))
}

func TestStorage_PersistsAcrossReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	ctx := context.Background()

	s, err := New(ctx, dbPath)
	require.NoError(t, err)
	require.NoError(t, s.SaveSession(ctx, "fake-token", []byte(`{"id":"1"}`)))
	require.NoError(t, s.Close())

	reopened, err := New(ctx, dbPath)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, reopened.Close())
	}()

	token, err := reopened.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "fake-token", token)
}
