package wordgrid

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"
)

var ErrMissingResource = errors.New("dictionary resource not found")

// The cache key is versioned with the normalization rules so a stale
// pre-normalized word list is never reused after the rules change.
const (
	dictCacheKey = "wordgrid:dict:v2"
	dictCacheTTL = 7 * 24 * time.Hour
)

// Dictionary is the normalized word list, loaded once and shared
// read-only across index builds. Callers must never mutate Words.
type Dictionary struct {
	Words []string
}

// normalizeWord lowercases s and strips every non-alphabetic rune.
// Dictionary entries, hands and player answers all go through here.
func normalizeWord(s string) string {
	var b strings.Builder
	for _, letter := range strings.ToLower(s) {
		if letter >= 'a' && letter <= 'z' {
			b.WriteRune(letter)
		}
	}
	return b.String()
}

// LoadDictionary reads a newline-delimited word list, normalizing each
// line and dropping lines with no letters left.
func LoadDictionary(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrMissingResource, path)
		}
		return nil, err
	}
	defer f.Close()

	dict := &Dictionary{}

	sc := bufio.NewScanner(f)
	sc.Split(bufio.ScanLines)

	for sc.Scan() {
		word := normalizeWord(sc.Text())
		if word == "" {
			continue
		}
		dict.Words = append(dict.Words, word)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return dict, nil
}

// LoadDictionaryCached loads the word list through cache so the file
// is read once per cache lifetime rather than once per process.
func LoadDictionaryCached(cache Cache, path string, logger *slog.Logger) (*Dictionary, error) {
	if logger == nil {
		logger = slog.Default()
	}

	if raw, ok, err := cache.Get(dictCacheKey); err == nil && ok {
		var words []string
		if err := json.Unmarshal(raw, &words); err == nil {
			return &Dictionary{Words: words}, nil
		}
		logger.Warn("discarding undecodable cached dictionary",
			slog.String("key", dictCacheKey))
	}

	dict, err := LoadDictionary(path)
	if err != nil {
		return nil, err
	}

	raw, err := json.Marshal(dict.Words)
	if err != nil {
		return nil, err
	}
	if err := cache.Set(dictCacheKey, raw, dictCacheTTL); err != nil {
		return nil, err
	}

	logger.Info("dictionary loaded",
		slog.String("path", path),
		slog.Int("words", len(dict.Words)))

	return dict, nil
}
