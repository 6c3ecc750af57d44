package wordgrid

import (
	"math/rand"
	"time"

	"golang.org/x/exp/slices"
)

// Pool weights approximate English letter frequency.
var (
	vowelWeights = map[rune]int{
		'a': 8, 'e': 12, 'i': 7, 'o': 7, 'u': 3, 'y': 2,
	}

	consonantWeights = map[rune]int{
		'b': 2, 'c': 3, 'd': 4, 'f': 2, 'g': 2,
		'h': 6, 'j': 1, 'k': 1, 'l': 4, 'm': 3,
		'n': 7, 'p': 2, 'q': 1, 'r': 6, 's': 6,
		't': 9, 'v': 1, 'w': 2, 'x': 1, 'z': 1,
	}

	// The repeated values bias hands toward three or four vowels.
	vowelCountChoices = []int{2, 3, 3, 3, 4, 4, 5}
)

var (
	vowelPool     = buildPool(vowelWeights)
	consonantPool = buildPool(consonantWeights)
)

// buildPool expands a weight table into a flat sampling pool, in letter
// order so that a seeded generator draws the same hands every run.
func buildPool(weights map[rune]int) []rune {
	letters := make([]rune, 0, len(weights))
	for letter := range weights {
		letters = append(letters, letter)
	}
	slices.Sort(letters)

	var pool []rune
	for _, letter := range letters {
		for i := 0; i < weights[letter]; i++ {
			pool = append(pool, letter)
		}
	}

	return pool
}

// Generator draws letter hands from the weighted pools. It holds the
// only source of randomness in the engine.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator returns a generator drawing from rng. Pass a seeded
// source for reproducible hands.
func NewGenerator(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

func NewDefaultGenerator() *Generator {
	return NewGenerator(rand.New(rand.NewSource(time.Now().UnixNano())))
}

// Generate draws a hand: a weighted vowel draw for a randomly chosen
// vowel count, consonants for the remaining slots, then a shuffle so
// ordering does not reveal the vowel/consonant split.
func (g *Generator) Generate() *Hand {
	numVowels := vowelCountChoices[g.rng.Intn(len(vowelCountChoices))]

	letters := make([]rune, 0, HandSize)
	for i := 0; i < numVowels; i++ {
		letters = append(letters, vowelPool[g.rng.Intn(len(vowelPool))])
	}
	for i := numVowels; i < HandSize; i++ {
		letters = append(letters, consonantPool[g.rng.Intn(len(consonantPool))])
	}

	g.rng.Shuffle(len(letters), func(i, j int) {
		letters[i], letters[j] = letters[j], letters[i]
	})

	return &Hand{Letters: letters}
}
