package wordgrid

import (
	"encoding/json"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"
)

// Index snapshots are keyed by the hand's sorted letters and expire
// much sooner than the dictionary.
const (
	indexCachePrefix = "wordgrid:index:v1:"
	indexCacheTTL    = time.Hour
)

// Engine is the surface the web layer talks to: hand generation,
// cached feasibility indexes and round scoring. It is safe for
// concurrent use.
type Engine struct {
	dict   *Dictionary
	cache  Cache
	gen    *Generator
	cfg    DifficultyConfig
	logger *slog.Logger
	group  singleflight.Group
}

// NewEngine wires an engine around a loaded dictionary. A nil cache
// falls back to an in-memory cache, a nil generator to a time-seeded
// one, a nil logger to slog.Default().
func NewEngine(dict *Dictionary, cache Cache, gen *Generator, cfg DifficultyConfig, logger *slog.Logger) *Engine {
	if cache == nil {
		cache = NewMemoryCache()
	}
	if gen == nil {
		gen = NewDefaultGenerator()
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Engine{
		dict:   dict,
		cache:  cache,
		gen:    gen,
		cfg:    cfg,
		logger: logger,
	}
}

func (e *Engine) GenerateHand() *Hand {
	return e.gen.Generate()
}

// GetOrBuildIndex returns the feasibility index for hand, hydrated
// from the cache when any permutation of the same letters was already
// indexed. Concurrent misses on one key build once.
func (e *Engine) GetOrBuildIndex(hand *Hand) (*FeasibilityIndex, error) {
	if hand == nil || len(hand.Letters) != HandSize {
		return nil, ErrInvalidHand
	}
	key := indexCachePrefix + hand.Key()

	if raw, ok, err := e.cache.Get(key); err == nil && ok {
		var snap IndexSnapshot
		if err := json.Unmarshal(raw, &snap); err == nil {
			return HydrateIndex(&snap), nil
		}
		e.logger.Warn("discarding undecodable cached index", slog.String("key", key))
	}

	v, err, _ := e.group.Do(key, func() (any, error) {
		ix, err := BuildIndex(hand, e.dict, e.cfg)
		if err != nil {
			return nil, err
		}

		raw, err := json.Marshal(ix.Snapshot())
		if err != nil {
			return nil, err
		}
		if err := e.cache.Set(key, raw, indexCacheTTL); err != nil {
			return nil, err
		}

		e.logger.Debug("feasibility index built",
			slog.String("hand", hand.Key()),
			slog.Int("words", ix.TotalCount()),
			slog.Float64("multiplier", ix.Multiplier()))

		return ix, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(*FeasibilityIndex), nil
}

// ScoreRound resolves the hand's index through the cache and scores
// the answer against it.
func (e *Engine) ScoreRound(answer string, hand *Hand, elapsedSeconds float64) (*RoundResult, error) {
	ix, err := e.GetOrBuildIndex(hand)
	if err != nil {
		return nil, err
	}

	return ScoreRound(answer, hand, elapsedSeconds, ix), nil
}
