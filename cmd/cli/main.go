package main

import (
	"flag"
	"fmt"
	"log"
	"slices"
	"strconv"
	"strings"

	"combinations/internal/combinations"

	"github.com/samber/lo"
)

var (
	validStrategies = []string{"enumerator", "lexor", "generator"}
	runners         = map[string]func(set []int, m uint64, print bool) (uint64, error){
		"enumerator": runEnumerator,
		"lexor":      runLexor,
		"generator":  runGenerator,
	}
)

func main() {
	// Define arguments
	nPtr := flag.Uint64("n", 16, "Size of the base set; ignored when an input file is given")
	mPtr := flag.Uint64("m", 4, "Size of the subsets")
	strategyPtr := flag.String("strategy", "enumerator", `Strategy to produce the combinations. Allowed values are:
- "enumerator" (one combination at a time with bounded memory),
- "lexor" (random access by lexicographic index) and
- "generator" (all combinations materialized in memory at once), where "enumerator" is the default`)
	limitPtr := flag.Uint64("limit", 1<<20, "Refuse to proceed when the combination count exceeds this limit")
	printPtr := flag.Bool("print", false, "Print every combination")
	indexPtr := flag.Int64("index", -1, "Print only the combination at this lexicographic index (lexor strategy only)")
	filePtr := flag.String("file", "", "Path to a JSON scenario file carrying the base set, m and limit")
	flag.Parse()
	strategy := strings.ToLower(*strategyPtr)

	// Validate arguments
	if !slices.Contains(validStrategies, strategy) {
		log.Fatalf("%v is not a valid strategy", strategy)
	} else if *indexPtr >= 0 && strategy != "lexor" {
		log.Fatalf("index access requires the lexor strategy, not %v", strategy)
	}

	// Extract input
	set := lo.Range(int(*nPtr))
	m := *mPtr
	limit := *limitPtr
	if *filePtr != "" {
		input, err := combinations.InputFromJson(*filePtr)
		if err != nil {
			log.Fatalf("cannot parse input file: %v", err)
		}
		set = input.Set
		m = input.M
		if input.Limit > 0 {
			limit = input.Limit
		}
	}

	// Count before generating anything, refusing astronomically large runs
	counter := combinations.NewCounter()
	count, err := counter.Count(uint64(len(set)), m)
	if err != nil {
		log.Fatalf("cannot count combinations: %v", err)
	} else if count > limit {
		log.Fatalf("%v combinations exceed the limit of %v", count, limit)
	}

	fmt.Printf("Number of combinations: %v\n", count)

	if *indexPtr >= 0 {
		lexor := combinations.NewLexor(set, m)
		combination, err := lexor.Get(uint64(*indexPtr))
		if err != nil {
			log.Fatalf("cannot access combination %v: %v", *indexPtr, err)
		} else if combination == nil {
			log.Fatalf("index %v is out of range", *indexPtr)
		}
		printCombination(combination)
		return
	}

	produced, err := runners[strategy](set, m, *printPtr)
	if err != nil {
		log.Fatalf("an error occurred during combination generation: %v", err)
	} else if produced != count {
		log.Fatalf("%v strategy produced %v combinations, expected %v", strategy, produced, count)
	}
}

func runEnumerator(set []int, m uint64, print bool) (uint64, error) {
	enumerator := combinations.NewEnumerator(set)
	produced := uint64(0)
	for combination := enumerator.First(m); combination != nil; combination = enumerator.Next() {
		if print {
			printCombination(combination)
		}
		produced++
	}
	return produced, nil
}

func runLexor(set []int, m uint64, print bool) (uint64, error) {
	lexor := combinations.NewLexor(set, m)
	produced := uint64(0)
	for {
		combination, err := lexor.Get(produced)
		if err != nil {
			return produced, err
		} else if combination == nil {
			return produced, nil
		}
		if print {
			printCombination(combination)
		}
		produced++
	}
}

func runGenerator(set []int, m uint64, print bool) (uint64, error) {
	generator := combinations.NewGenerator(set)
	if err := generator.Generate(m); err != nil {
		return 0, err
	}
	if print {
		for _, combination := range generator.Combinations() {
			printCombination(combination)
		}
	}
	return generator.Size(), nil
}

func printCombination(combination []int) {
	fmt.Println(strings.Join(lo.Map(combination, func(element int, _ int) string {
		return strconv.Itoa(element)
	}), " "))
}
