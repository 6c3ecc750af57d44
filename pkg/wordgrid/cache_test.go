package wordgrid

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCacheRoundtrip(t *testing.T) {
	cache := NewMemoryCache()

	require.NoError(t, cache.Set("k", []byte("v"), 0))

	value, ok, err := cache.Get("k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("v"), value)
}

func TestMemoryCacheMiss(t *testing.T) {
	cache := NewMemoryCache()

	_, ok, err := cache.Get("absent")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryCacheExpiry(t *testing.T) {
	cache := NewMemoryCache()

	require.NoError(t, cache.Set("k", []byte("v"), 10*time.Millisecond))
	time.Sleep(30 * time.Millisecond)

	_, ok, err := cache.Get("k")
	require.NoError(t, err)
	assert.False(t, ok)
}
