package localstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreRoundTrip(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	in := []string{"tomatoes", "yam"}
	require.NoError(t, store.Put("user-1", KindSearchHistory, in))

	var out []string
	require.NoError(t, store.Get("user-1", KindSearchHistory, &out))
	assert.Equal(t, in, out)
}

func TestFileStoreMissingKeyIsZeroValue(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	var out []string
	require.NoError(t, store.Get("nobody", KindCart, &out))
	assert.Nil(t, out)
}

func TestFileStoreDelete(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Put("user-1", KindCart, []string{"x"}))
	require.NoError(t, store.Delete("user-1", KindCart))

	var out []string
	require.NoError(t, store.Get("user-1", KindCart, &out))
	assert.Nil(t, out)

	// Deleting an absent key is a no-op.
	require.NoError(t, store.Delete("user-1", KindCart))
}

func TestFileStoreKeysAreIsolatedPerUserAndKind(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Put("user-1", KindLanguage, "en"))
	require.NoError(t, store.Put("user-2", KindLanguage, "fr"))

	var lang string
	require.NoError(t, store.Get("user-2", KindLanguage, &lang))
	assert.Equal(t, "fr", lang)

	_, err = os.Stat(filepath.Join(dir, "lang_user-1.json"))
	assert.NoError(t, err)
}
