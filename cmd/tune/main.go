// Hyperparameter tuning tool - CMA-ES search over the evolution
// engine's mutation and speciation settings, scored by how quickly
// headless populations learn to fly.
//
// Usage: go run ./cmd/tune -output tune_results
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/baldhumanity/neat-go/neat"
	"gonum.org/v1/gonum/optimize"
	"gopkg.in/ini.v1"

	"github.com/finchlab/neatbird/config"
)

// formatDuration formats a duration as h/m/s for progress output.
func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second

	if h > 0 {
		return fmt.Sprintf("%dh%02dm%02ds", h, m, s)
	}
	return fmt.Sprintf("%dm%02ds", m, s)
}

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Base config YAML file (empty = use defaults)")
	neatConfig := flag.String("neat-config", "", "Path to the base evolution INI file (empty = use config value)")
	generations := flag.Int("generations", 10, "Generation budget per evolution run")
	seeds := flag.Int("seeds", 3, "Number of seeds per evaluation")
	maxEvals := flag.Int("max-evals", 100, "Maximum number of evaluations")
	population := flag.Int("population", 0, "CMA-ES population size (0 = auto)")
	outputDir := flag.String("output", "", "Output directory for results")
	flag.Parse()

	if *outputDir == "" {
		log.Fatal("--output is required")
	}
	if *seeds < 1 {
		log.Fatal("--seeds must be at least 1")
	}
	if *generations < 1 {
		log.Fatal("--generations must be at least 1")
	}
	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		log.Fatalf("failed to create output directory: %v", err)
	}

	// Load base config
	if err := config.Init(*configPath); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	baseCfg := config.Cfg()
	if *neatConfig != "" {
		baseCfg.Evolution.NeatConfig = *neatConfig
	}
	baseCfg.Evolution.Generations = *generations
	baseCfg.Evolution.CheckpointInterval = 0 // no checkpoints during search

	// Create parameter vector seeded from the base INI
	params := NewParamVector()
	baseNeatCfg, err := neat.LoadConfig(baseCfg.Evolution.NeatConfig)
	if err != nil {
		log.Fatalf("failed to load engine config: %v", err)
	}
	initX := params.Normalize(params.ExtractFromConfig(baseNeatCfg))

	// Generate seeds for evaluation
	evalSeeds := make([]int64, *seeds)
	for i := range evalSeeds {
		evalSeeds[i] = int64(i*1000 + 42)
	}

	evaluator := NewEvaluator(params, evalSeeds, baseCfg)

	problem := optimize.Problem{
		Func: func(x []float64) float64 {
			return evaluator.Evaluate(x)
		},
	}

	settings := &optimize.Settings{
		FuncEvaluations: *maxEvals,
		Concurrent:      0, // evolution runs are already CPU-bound
	}

	popSize := *population
	if popSize == 0 {
		popSize = 4 + int(3.0*float64(params.Dim())/2.0)
	}

	method := &optimize.CmaEsChol{
		InitStepSize: 0.3,
		Population:   popSize,
	}

	// Open log file
	logPath := filepath.Join(*outputDir, "tune_log.csv")
	logFile, err := os.Create(logPath)
	if err != nil {
		log.Fatalf("failed to create log file: %v", err)
	}
	defer logFile.Close()

	logWriter := csv.NewWriter(logFile)
	defer logWriter.Flush()

	header := []string{"eval", "fitness"}
	for _, spec := range params.Specs {
		header = append(header, spec.Name)
	}
	logWriter.Write(header)

	// Track evaluations and timing
	evalCount := 0
	bestFitness := 1e9
	var bestParams []float64
	startTime := time.Now()

	originalFunc := problem.Func
	problem.Func = func(x []float64) float64 {
		fitness := originalFunc(x)
		evalCount++

		raw := params.Clamp(params.Denormalize(x))
		if fitness < bestFitness {
			bestFitness = fitness
			bestParams = make([]float64, len(raw))
			copy(bestParams, raw)
		}

		row := []string{strconv.Itoa(evalCount), fmt.Sprintf("%.6f", fitness)}
		for _, v := range raw {
			row = append(row, fmt.Sprintf("%.6f", v))
		}
		logWriter.Write(row)
		logWriter.Flush()

		elapsed := time.Since(startTime)
		avgPerEval := elapsed / time.Duration(evalCount)
		remaining := time.Duration(*maxEvals-evalCount) * avgPerEval

		fmt.Printf("Eval %d/%d: mean_best=%.2f run_best=%.2f gens=%d (best=%.2f) | elapsed: %s, ETA: %s\n",
			evalCount, *maxEvals, -fitness, evaluator.LastBest(), evaluator.LastGenerations(), -bestFitness,
			formatDuration(elapsed), formatDuration(remaining))

		return fitness
	}

	fmt.Printf("Starting CMA-ES search with %d parameters, population=%d, max_evals=%d\n",
		params.Dim(), popSize, *maxEvals)
	fmt.Printf("Seeds per evaluation: %d, generations per run: %d\n", *seeds, *generations)

	result, err := optimize.Minimize(problem, initX, settings, method)
	if err != nil {
		log.Printf("optimization ended: %v", err)
	}

	if bestParams == nil {
		bestParams = params.Clamp(params.Denormalize(result.X))
	}

	totalTime := time.Since(startTime)
	fmt.Printf("\nSearch complete after %d evaluations in %s\n", evalCount, formatDuration(totalTime))
	fmt.Printf("Best mean fitness: %.2f\n", -bestFitness)

	fmt.Println("\nBest hyperparameters:")
	for i, spec := range params.Specs {
		fmt.Printf("  %s: %.6f\n", spec.Name, bestParams[i])
	}

	// Save best INI
	params.ApplyToConfig(baseNeatCfg, bestParams)
	iniOutPath := filepath.Join(*outputDir, "best_neat.ini")
	if err := writeNeatINI(baseNeatCfg, iniOutPath); err != nil {
		log.Printf("failed to write best engine config: %v", err)
	} else {
		fmt.Printf("\nBest engine config saved to: %s\n", iniOutPath)
	}
}

// writeNeatINI serializes an engine config back to INI form.
func writeNeatINI(cfg *neat.Config, path string) error {
	f := ini.Empty()

	sections := []struct {
		name string
		v    interface{}
	}{
		{"NEAT", &cfg.Neat},
		{"DefaultGenome", &cfg.Genome},
		{"DefaultReproduction", &cfg.Reproduction},
		{"DefaultSpeciesSet", &cfg.SpeciesSet},
		{"DefaultStagnation", &cfg.Stagnation},
	}
	for _, s := range sections {
		sec, err := f.NewSection(s.name)
		if err != nil {
			return err
		}
		if err := sec.ReflectFrom(s.v); err != nil {
			return fmt.Errorf("section %s: %w", s.name, err)
		}
	}
	return f.SaveTo(path)
}
