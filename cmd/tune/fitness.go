package main

import (
	"fmt"
	"math"
	"sync"

	"github.com/baldhumanity/neat-go/neat"

	"github.com/finchlab/neatbird/config"
	"github.com/finchlab/neatbird/evolve"
	"github.com/finchlab/neatbird/game"
)

// Evaluator runs headless evolution and scores hyperparameter vectors.
type Evaluator struct {
	params     *ParamVector
	seeds      []int64
	baseConfig *config.Config

	mu        sync.Mutex
	lastBest  float64 // best genome fitness from the most recent Evaluate
	lastGens  int     // generations consumed by the most recent Evaluate
}

// NewEvaluator creates a new evaluator. Each evaluation runs one full
// evolution per seed and averages the best fitness achieved.
func NewEvaluator(params *ParamVector, seeds []int64, baseCfg *config.Config) *Evaluator {
	return &Evaluator{
		params:     params,
		seeds:      seeds,
		baseConfig: baseCfg,
	}
}

// LastBest returns the best genome fitness from the most recent evaluation.
func (e *Evaluator) LastBest() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.lastBest
}

// LastGenerations returns the generation count of the most recent evaluation.
func (e *Evaluator) LastGenerations() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.lastGens
}

// Evaluate computes fitness for a hyperparameter vector (lower = better).
// Fitness is the negated mean best-genome fitness across seeds, so that
// populations which learn faster with these hyperparameters score lower.
func (e *Evaluator) Evaluate(x []float64) float64 {
	raw := e.params.Clamp(e.params.Denormalize(x))

	var total float64
	var totalGens, runs int
	bestFitness := 0.0

	for _, seed := range e.seeds {
		f, gens, err := e.runEvolution(raw, seed)
		if err != nil {
			// A broken hyperparameter combination (e.g. runaway topology
			// mutation) scores worst rather than aborting the search.
			fmt.Printf("evaluation failed (seed %d): %v\n", seed, err)
			continue
		}
		total += f
		totalGens += gens
		runs++
		if f > bestFitness {
			bestFitness = f
		}
	}

	e.mu.Lock()
	e.lastBest = bestFitness
	if runs > 0 {
		e.lastGens = totalGens / runs
	} else {
		e.lastGens = 0
	}
	e.mu.Unlock()

	// No completed run means no signal; score worst.
	if runs == 0 {
		return math.Inf(1)
	}
	return -(total / float64(runs))
}

// runEvolution executes one full headless evolution with the given
// hyperparameters and returns the best fitness achieved.
func (e *Evaluator) runEvolution(raw []float64, seed int64) (fitness float64, generations int, err error) {
	neatCfg, err := neat.LoadConfig(e.baseConfig.Evolution.NeatConfig)
	if err != nil {
		return 0, 0, fmt.Errorf("load engine config: %w", err)
	}
	e.params.ApplyToConfig(neatCfg, raw)

	pop, err := neat.NewPopulation(neatCfg)
	if err != nil {
		return 0, 0, fmt.Errorf("create population: %w", err)
	}

	// Per-run config copy so the generation budget and telemetry flags
	// never leak between evaluations.
	cfg := *e.baseConfig
	cfg.Telemetry.LogStats = false

	g := game.NewGame(game.Options{Seed: seed, Headless: true})
	trainer := evolve.NewTrainerFromPopulation(&cfg, pop, g, nil)

	if err := trainer.Run(); err != nil {
		return 0, 0, err
	}

	if b := trainer.Best(); b != nil {
		fitness = b.Fitness
	}
	return fitness, trainer.Generation(), nil
}
