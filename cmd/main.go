package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	"wordgrid/pkg/store"
	"wordgrid/pkg/wordgrid"
)

var (
	numRounds = flag.Int("n", 10, "Number of rounds to simulate")
	dictPath  = flag.String("dict", "assets/words.txt", "Path to the word list")
	seed      = flag.Int64("seed", 0, "Random seed; 0 seeds from the clock")
)

func main() {
	start := time.Now()
	flag.Parse()

	cache, err := store.OpenInMemory(nil)
	if err != nil {
		log.Fatal(err)
	}
	defer cache.Close()

	dict, err := wordgrid.LoadDictionaryCached(cache, *dictPath, nil)
	if err != nil {
		log.Fatal(err)
	}

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(rngSeed))

	engine := wordgrid.NewEngine(dict, cache, wordgrid.NewGenerator(rng), wordgrid.DefaultDifficultyConfig(), nil)

	var solved int
	var totalScore float64

	for i := 0; i < *numRounds; i++ {
		result := simulateRound(engine, rng)
		if result.Score > 0 {
			solved++
		}
		totalScore += result.Score
	}

	elapsed := time.Since(start)
	fmt.Printf("%v rounds were played\n%v rounds scored, for a total of %.2f points.\n",
		*numRounds,
		solved,
		totalScore,
	)
	fmt.Println("Took", elapsed)
}

// simulateRound plays one round: the bot answers the first of the
// longest feasible words at a random elapsed time.
func simulateRound(engine *wordgrid.Engine, rng *rand.Rand) *wordgrid.RoundResult {
	hand := engine.GenerateHand()

	ix, err := engine.GetOrBuildIndex(hand)
	if err != nil {
		log.Fatal(err)
	}

	var answer string
	if longest := ix.Longest(); len(longest) > 0 {
		answer = longest[0]
	}
	elapsedSeconds := float64(1 + rng.Intn(30))

	result, err := engine.ScoreRound(answer, hand, elapsedSeconds)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("hand=%s answer=%q elapsed=%vs score=%.2f (%s)\n",
		hand, answer, elapsedSeconds, result.Score, result.Message)

	return result
}
