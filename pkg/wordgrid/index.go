package wordgrid

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// FeasibilityIndex holds every dictionary word formable from one hand,
// sorted longest first, with constant-time membership lookups. It is
// immutable once built.
type FeasibilityIndex struct {
	counts     LetterCount
	words      []string // length desc, then lexicographic asc
	members    map[string]struct{}
	maxLen     int
	multiplier float64
}

// BuildIndex scans dict for words formable from hand's letters and
// computes the hand's difficulty multiplier from the result. The
// dictionary is never mutated; matches are collected into a new slice.
func BuildIndex(hand *Hand, dict *Dictionary, cfg DifficultyConfig) (*FeasibilityIndex, error) {
	if hand == nil {
		return nil, ErrInvalidHand
	}
	if len(hand.Letters) != HandSize {
		return nil, fmt.Errorf("%w: %q has %d", ErrInvalidHand, hand, len(hand.Letters))
	}

	counts := hand.Counts()

	var words []string
	for _, word := range dict.Words {
		if len(word) > HandSize {
			continue
		}
		if counts.Covers(CountLetters(word)) {
			words = append(words, word)
		}
	}

	slices.SortFunc(words, func(a, b string) bool {
		if len(a) != len(b) {
			return len(a) > len(b)
		}
		return a < b
	})

	ix := newIndex(counts, words)
	ix.multiplier = cfg.Multiplier(words)

	return ix, nil
}

func newIndex(counts LetterCount, words []string) *FeasibilityIndex {
	members := make(map[string]struct{}, len(words))
	for _, word := range words {
		members[word] = struct{}{}
	}

	maxLen := 0
	if len(words) > 0 {
		maxLen = len(words[0])
	}

	return &FeasibilityIndex{
		counts:  counts,
		words:   words,
		members: members,
		maxLen:  maxLen,
	}
}

// Valid reports whether word, normalized like a dictionary entry, is
// formable from the hand. Input left empty by normalization is never
// valid.
func (ix *FeasibilityIndex) Valid(word string) bool {
	w := normalizeWord(word)
	if w == "" {
		return false
	}
	_, ok := ix.members[w]
	return ok
}

// All returns the feasible words, longest first then lexicographic.
func (ix *FeasibilityIndex) All() []string {
	return slices.Clone(ix.words)
}

// Longest returns every feasible word of maximum length, ties included.
func (ix *FeasibilityIndex) Longest() []string {
	var longest []string
	for _, word := range ix.words {
		if len(word) != ix.maxLen {
			break
		}
		longest = append(longest, word)
	}
	return longest
}

// LongestLength returns the maximum feasible word length, 0 if none.
func (ix *FeasibilityIndex) LongestLength() int {
	return ix.maxLen
}

func (ix *FeasibilityIndex) TotalCount() int {
	return len(ix.words)
}

// Multiplier is the difficulty multiplier computed at build time and
// carried through snapshots.
func (ix *FeasibilityIndex) Multiplier() float64 {
	return ix.multiplier
}

// Counts returns a copy of the hand multiset the index was built from.
func (ix *FeasibilityIndex) Counts() LetterCount {
	counts := make(LetterCount, len(ix.counts))
	for letter, n := range ix.counts {
		counts[letter] = n
	}
	return counts
}

// IndexSnapshot is the cacheable form of a FeasibilityIndex.
type IndexSnapshot struct {
	Letters    map[string]int `json:"letters"`
	Words      []string       `json:"words"`
	Multiplier float64        `json:"multiplier"`
}

// Snapshot captures everything needed to rebuild the index without
// rescanning the dictionary.
func (ix *FeasibilityIndex) Snapshot() *IndexSnapshot {
	letters := make(map[string]int, len(ix.counts))
	for letter, n := range ix.counts {
		letters[string(letter)] = n
	}
	return &IndexSnapshot{
		Letters:    letters,
		Words:      slices.Clone(ix.words),
		Multiplier: ix.multiplier,
	}
}

// HydrateIndex rebuilds an index from a cached snapshot. Word order
// and multiplier are restored as captured, not recomputed.
func HydrateIndex(snap *IndexSnapshot) *FeasibilityIndex {
	counts := make(LetterCount, len(snap.Letters))
	for s, n := range snap.Letters {
		for _, letter := range s {
			counts[letter] = n
		}
	}

	ix := newIndex(counts, slices.Clone(snap.Words))
	ix.multiplier = snap.Multiplier

	return ix
}
