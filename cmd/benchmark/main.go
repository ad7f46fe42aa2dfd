package main

import (
	"fmt"
	"log"
	"time"

	"combinations/internal/combinations"

	"github.com/samber/lo"
)

const repetitions = 3

type StrategyType int

const (
	enumerator StrategyType = iota
	lexor
	generator
)

var strategyTypes = map[StrategyType]string{
	enumerator: "enumerator",
	lexor:      "lexor",
	generator:  "generator",
}

type Scenario struct {
	N uint64
	M uint64
}

type BenchmarkResult struct {
	Strategy StrategyType
	Scenario Scenario
	Count    uint64
	Duration time.Duration
}

func main() {
	scenarios := []Scenario{
		{N: 16, M: 4},
		{N: 20, M: 6},
		{N: 22, M: 11},
		{N: 24, M: 8},
	}
	strategies := []StrategyType{enumerator, lexor, generator}
	results := make([]BenchmarkResult, 0, len(scenarios)*len(strategies))

	for _, scenario := range scenarios {
		for _, strategy := range strategies {
			fmt.Printf("Benchmarking scenario (n=%v, m=%v) with strategy \"%v\"\n", scenario.N, scenario.M, strategyTypes[strategy])

			count, duration := measure(strategy, scenario)

			results = append(results, BenchmarkResult{
				Strategy: strategy,
				Scenario: scenario,
				Count:    count,
				Duration: duration,
			})
		}
	}

	fmt.Println()
	for _, result := range results {
		fmt.Printf("n=%v m=%v strategy=%v combinations=%v duration=%v\n",
			result.Scenario.N, result.Scenario.M, strategyTypes[result.Strategy], result.Count, result.Duration)
	}
}

func measure(strategy StrategyType, scenario Scenario) (uint64, time.Duration) {
	set := lo.Range(int(scenario.N))
	durations := make([]time.Duration, 0, repetitions)
	var count uint64

	for range repetitions {
		start := time.Now()
		produced, err := run(strategy, set, scenario.M)
		durations = append(durations, time.Since(start))

		if err != nil {
			log.Fatalf("strategy %v failed on (n=%v, m=%v): %v", strategyTypes[strategy], scenario.N, scenario.M, err)
		}
		count = produced
	}

	return count, average(durations)
}

func run(strategy StrategyType, set []int, m uint64) (uint64, error) {
	switch strategy {
	case enumerator:
		e := combinations.NewEnumerator(set)
		produced := uint64(0)
		for combination := e.First(m); combination != nil; combination = e.Next() {
			produced++
		}
		return produced, nil

	case lexor:
		l := combinations.NewLexor(set, m)
		produced := uint64(0)
		for {
			combination, err := l.Get(produced)
			if err != nil {
				return produced, err
			} else if combination == nil {
				return produced, nil
			}
			produced++
		}

	default:
		g := combinations.NewGenerator(set)
		if err := g.Generate(m); err != nil {
			return 0, err
		}
		return g.Size(), nil
	}
}

func average(durations []time.Duration) time.Duration {
	if len(durations) == 0 {
		return 0
	}
	return lo.Sum(durations) / time.Duration(len(durations))
}
