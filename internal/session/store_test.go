package session

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveLoadClearRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "token")
	store := NewStore(path)

	token, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, token, "missing file is an empty token, not an error")

	require.NoError(t, store.Save("tok-789"))

	// A fresh store must read it back from disk.
	token, err = NewStore(path).Load()
	require.NoError(t, err)
	assert.Equal(t, "tok-789", token)

	require.NoError(t, store.Clear())
	token, err = NewStore(path).Load()
	require.NoError(t, err)
	assert.Empty(t, token)

	require.NoError(t, store.Clear(), "clearing twice is fine")
}

func TestTokenFileIsUserOnly(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("file modes are not meaningful on windows")
	}

	path := filepath.Join(t.TempDir(), "token")
	require.NoError(t, NewStore(path).Save("tok"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestLoadTrimsWhitespace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	require.NoError(t, os.WriteFile(path, []byte("tok-abc\n"), 0o600))

	token, err := NewStore(path).Load()
	require.NoError(t, err)
	assert.Equal(t, "tok-abc", token)
}
