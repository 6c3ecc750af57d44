package wordgrid

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func wordsOfLength(n, length int) []string {
	words := make([]string, n)
	for i := range words {
		words[i] = strings.Repeat("a", length)
	}
	return words
}

func TestMultiplierEmptyReturnsBase(t *testing.T) {
	cfg := DefaultDifficultyConfig()

	assert.Equal(t, cfg.BaseMultiplier, cfg.Multiplier(nil))
	assert.Equal(t, cfg.BaseMultiplier, cfg.Multiplier([]string{}))
}

func TestMultiplierHardestAtLowerBounds(t *testing.T) {
	cfg := DefaultDifficultyConfig()

	// One three-letter word sits at or below both normalization
	// minimums, the hardest possible universe.
	assert.InDelta(t, cfg.MaxMultiplier, cfg.Multiplier([]string{"cat"}), 1e-9)
}

func TestMultiplierEasiestAtUpperBounds(t *testing.T) {
	cfg := DefaultDifficultyConfig()

	// Thousands of long words sit at or above both maximums.
	assert.InDelta(t, cfg.MinMultiplier, cfg.Multiplier(wordsOfLength(2500, 8)), 1e-9)
}

func TestMultiplierMonotonicInWordCount(t *testing.T) {
	cfg := DefaultDifficultyConfig()

	prev := cfg.Multiplier(wordsOfLength(10, 4))
	for _, n := range []int{20, 50, 100, 500, 1000, 2000} {
		next := cfg.Multiplier(wordsOfLength(n, 4))
		assert.LessOrEqual(t, next, prev, "n=%d", n)
		prev = next
	}
}

func TestMultiplierMonotonicInPotential(t *testing.T) {
	cfg := DefaultDifficultyConfig()

	prev := cfg.Multiplier(wordsOfLength(100, 3))
	for length := 4; length <= 8; length++ {
		next := cfg.Multiplier(wordsOfLength(100, length))
		assert.LessOrEqual(t, next, prev, "length=%d", length)
		prev = next
	}
}

func TestMultiplierStaysInRange(t *testing.T) {
	cfg := DefaultDifficultyConfig()

	for _, words := range [][]string{
		{"a"},
		wordsOfLength(5, 10),
		wordsOfLength(3000, 2),
		wordsOfLength(1234, 6),
	} {
		m := cfg.Multiplier(words)
		assert.GreaterOrEqual(t, m, cfg.MinMultiplier)
		assert.LessOrEqual(t, m, cfg.MaxMultiplier)
	}
}

func TestLoadDifficultyConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "difficulty.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_multiplier: 3.5\nword_count_weight: 0.7\npotential_weight: 0.3\n"), 0o644))

	cfg, err := LoadDifficultyConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 3.5, cfg.MaxMultiplier)
	assert.Equal(t, 0.7, cfg.WordCountWeight)
	// Untouched fields keep their defaults.
	assert.Equal(t, DefaultDifficultyConfig().MinMultiplier, cfg.MinMultiplier)
}

func TestLoadDifficultyConfigMissing(t *testing.T) {
	_, err := LoadDifficultyConfig(filepath.Join(t.TempDir(), "nope.yaml"))

	assert.ErrorIs(t, err, ErrMissingResource)
}
