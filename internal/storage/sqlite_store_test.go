// File: internal/storage/sqlite_store_test.go
package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "assistant.db")
	store, err := NewSQLiteStore(path)
	require.NoError(t, err)

	_, err = store.Get("missing")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Set("token", "abc"))
	value, err := store.Get("token")
	require.NoError(t, err)
	assert.Equal(t, "abc", value)

	// Set must overwrite, not duplicate.
	require.NoError(t, store.Set("token", "def"))
	value, err = store.Get("token")
	require.NoError(t, err)
	assert.Equal(t, "def", value)

	require.NoError(t, store.Delete("token"))
	_, err = store.Get("token")
	assert.ErrorIs(t, err, ErrNotFound)

	// Deleting an absent key is not an error.
	assert.NoError(t, store.Delete("token"))
}

func TestSQLiteStorePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "assistant.db")

	store, err := NewSQLiteStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Set("ai_chat_sessions", `[{"id":"s1"}]`))

	reopened, err := NewSQLiteStore(path)
	require.NoError(t, err)
	value, err := reopened.Get("ai_chat_sessions")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"s1"}]`, value)
}
