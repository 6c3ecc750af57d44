package wordgrid

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeWordList(t *testing.T, lines string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte(lines), 0o644))
	return path
}

func TestLoadDictionaryNormalizes(t *testing.T) {
	path := writeWordList(t, "Cat\nDOG'S\n\n--!\n cattle \n")

	dict, err := LoadDictionary(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"cat", "dogs", "cattle"}, dict.Words)
}

func TestLoadDictionaryMissing(t *testing.T) {
	_, err := LoadDictionary(filepath.Join(t.TempDir(), "nope.txt"))

	assert.ErrorIs(t, err, ErrMissingResource)
}

func TestLoadDictionaryCached(t *testing.T) {
	path := writeWordList(t, "cat\ndog\n")
	cache := NewMemoryCache()

	dict, err := LoadDictionaryCached(cache, path, nil)
	require.NoError(t, err)
	require.Equal(t, []string{"cat", "dog"}, dict.Words)

	// The second load must come from the cache, not the file.
	require.NoError(t, os.Remove(path))

	cached, err := LoadDictionaryCached(cache, path, nil)
	require.NoError(t, err)
	assert.Equal(t, dict.Words, cached.Words)
}

func TestLoadDictionaryCachedMissingFile(t *testing.T) {
	_, err := LoadDictionaryCached(NewMemoryCache(), filepath.Join(t.TempDir(), "nope.txt"), nil)

	assert.ErrorIs(t, err, ErrMissingResource)
}
