package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/otomatty/shinsei/pkg/filesystem"
	"github.com/otomatty/shinsei/pkg/paths"
	"github.com/otomatty/shinsei/pkg/storage"
	"github.com/otomatty/shinsei/pkg/types"
)

// setupMemoryStore creates a store over an in-memory filesystem so the
// contract can be checked without touching the host disk.
func setupMemoryStore(t *testing.T) types.Store {
	t.Helper()

	p, err := paths.New("/data/shinsei")
	require.NoError(t, err)

	return storage.New(filesystem.NewMemory(), p)
}

func TestMemory_RoundTrip(t *testing.T) {
	store := setupMemoryStore(t)

	require.NoError(t, store.Put("notes", "draft", []byte("hello")))

	got, ok, err := store.Get("notes", "draft")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("hello"), got)
}

func TestMemory_AbsenceAndDelete(t *testing.T) {
	store := setupMemoryStore(t)

	_, ok, err := store.Get("notes", "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Delete("notes", "missing"))

	exists, err := store.Exists("notes", "missing")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestMemory_Enumeration(t *testing.T) {
	store := setupMemoryStore(t)

	require.NoError(t, store.PutString("settings", "theme", "dark"))
	require.NoError(t, store.PutString("settings", "locale", "ja"))

	keys, err := store.List("settings")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"theme", "locale"}, keys)

	values, err := store.All("settings")
	require.NoError(t, err)
	assert.ElementsMatch(t, [][]byte{[]byte("dark"), []byte("ja")}, values)
}
