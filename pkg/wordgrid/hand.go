package wordgrid

import (
	"errors"
	"fmt"

	"golang.org/x/exp/slices"
)

const HandSize = 10

var ErrInvalidHand = errors.New("hand must contain exactly 10 letters")

// LetterCount is the letter multiset of a hand or a word.
type LetterCount map[rune]int

func CountLetters(s string) LetterCount {
	counts := make(LetterCount)
	for _, letter := range s {
		counts[letter]++
	}
	return counts
}

// Covers reports whether every letter in other is available in c,
// honouring repeat counts on both sides.
func (c LetterCount) Covers(other LetterCount) bool {
	for letter, need := range other {
		if c[letter] < need {
			return false
		}
	}
	return true
}

func (c LetterCount) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}

type Hand struct {
	Letters []rune
}

// NewHand normalizes s (lowercase, alphabetic runes only) and fails
// unless exactly HandSize letters remain. Input is never truncated to
// fit.
func NewHand(s string) (*Hand, error) {
	word := normalizeWord(s)
	if len(word) != HandSize {
		return nil, fmt.Errorf("%w: %q has %d", ErrInvalidHand, s, len(word))
	}
	return &Hand{Letters: []rune(word)}, nil
}

// Key returns the hand's letters in sorted order. Hands that are
// permutations of each other share a key, so they share cache entries.
func (h *Hand) Key() string {
	sorted := slices.Clone(h.Letters)
	slices.Sort(sorted)
	return string(sorted)
}

func (h *Hand) Counts() LetterCount {
	return CountLetters(string(h.Letters))
}

func (h *Hand) String() string {
	return string(h.Letters)
}
