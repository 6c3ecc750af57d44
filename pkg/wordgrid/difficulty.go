package wordgrid

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// DifficultyConfig tunes how a hand's feasible-word universe maps to a
// score multiplier. Every bound and weight is operator-tunable so
// difficulty perception can be adjusted without touching the formula.
type DifficultyConfig struct {
	// BaseMultiplier is returned for hands with no feasible words.
	BaseMultiplier float64 `yaml:"base_multiplier"`

	// MinMultiplier goes to the easiest hands, MaxMultiplier to the
	// hardest.
	MinMultiplier float64 `yaml:"min_multiplier"`
	MaxMultiplier float64 `yaml:"max_multiplier"`

	// Log-normalization bounds per signal: values at or below the min
	// normalize to 1 (hardest), at or above the max to 0 (easiest).
	WordCountMin float64 `yaml:"word_count_min"`
	WordCountMax float64 `yaml:"word_count_max"`
	PotentialMin float64 `yaml:"potential_min"`
	PotentialMax float64 `yaml:"potential_max"`

	WordCountWeight float64 `yaml:"word_count_weight"`
	PotentialWeight float64 `yaml:"potential_weight"`
}

func DefaultDifficultyConfig() DifficultyConfig {
	return DifficultyConfig{
		BaseMultiplier:  1.0,
		MinMultiplier:   0.5,
		MaxMultiplier:   2.8,
		WordCountMin:    10,
		WordCountMax:    2000,
		PotentialMin:    9,
		PotentialMax:    60,
		WordCountWeight: 0.5,
		PotentialWeight: 0.5,
	}
}

// LoadDifficultyConfig reads a YAML tuning file over the defaults. A
// missing file fails with ErrMissingResource so a bad path is noticed
// at startup rather than silently running on defaults.
func LoadDifficultyConfig(path string) (DifficultyConfig, error) {
	cfg := DefaultDifficultyConfig()

	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, fmt.Errorf("%w: %s", ErrMissingResource, path)
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parse difficulty config: %w", err)
	}

	return cfg, nil
}

// Multiplier derives the hand difficulty multiplier from its feasible
// words. Fewer and shorter feasible words mean a harder hand and a
// higher multiplier.
func (cfg DifficultyConfig) Multiplier(words []string) float64 {
	if len(words) == 0 {
		return cfg.BaseMultiplier
	}

	wordCount := float64(len(words))
	potential := scorePotential(words)

	difficulty := cfg.WordCountWeight*logNormalize(wordCount, cfg.WordCountMin, cfg.WordCountMax) +
		cfg.PotentialWeight*logNormalize(potential, cfg.PotentialMin, cfg.PotentialMax)
	difficulty = clamp(difficulty, 0, 1)

	return cfg.MinMultiplier + difficulty*(cfg.MaxMultiplier-cfg.MinMultiplier)
}

// scorePotential is the mean squared word length: the round score is
// length² based, so this tracks the ceiling of achievable scores.
func scorePotential(words []string) float64 {
	total := 0.0
	for _, word := range words {
		l := float64(len(word))
		total += l * l
	}
	return total / float64(len(words))
}

// logNormalize maps value into [0,1] on a log scale between min and
// max, 1 at or below min and 0 at or above max. The log scale makes
// differences near the hard end count for more than the same
// differences near the easy end.
func logNormalize(value, min, max float64) float64 {
	v := clamp(value, min, max)
	return (math.Log(max) - math.Log(v)) / (math.Log(max) - math.Log(min))
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
