package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// GenerationStats holds aggregated statistics for one generation.
type GenerationStats struct {
	Generation   int     `csv:"generation"`
	Population   int     `csv:"population"`
	Species      int     `csv:"species"`
	EpisodeTicks int     `csv:"episode_ticks"`
	BestScore    int32   `csv:"best_score"`

	// Fitness distribution across the population
	BestFitness float64 `csv:"best_fitness"`
	MeanFitness float64 `csv:"mean_fitness"`
	StdFitness  float64 `csv:"std_fitness"`
	P50Fitness  float64 `csv:"p50_fitness"`
	P90Fitness  float64 `csv:"p90_fitness"`

	// Events during the episode
	Flaps         int `csv:"flaps"`
	PipesCleared  int `csv:"pipes_cleared"`
	DeathsPipe    int `csv:"deaths_pipe"`
	DeathsGround  int `csv:"deaths_ground"`
	DeathsCeiling int `csv:"deaths_ceiling"`
}

// ComputeFitnessStats fills the fitness distribution fields from the
// population's final fitness values.
func (s *GenerationStats) ComputeFitnessStats(fitnesses []float64) {
	s.Population = len(fitnesses)
	if len(fitnesses) == 0 {
		return
	}

	sorted := make([]float64, len(fitnesses))
	copy(sorted, fitnesses)
	sort.Float64s(sorted)

	s.BestFitness = sorted[len(sorted)-1]
	s.MeanFitness = stat.Mean(sorted, nil)
	if len(sorted) > 1 {
		s.StdFitness = stat.StdDev(sorted, nil)
	}
	s.P50Fitness = stat.Quantile(0.5, stat.Empirical, sorted, nil)
	s.P90Fitness = stat.Quantile(0.9, stat.Empirical, sorted, nil)
}

// LogStats emits the stats as a structured log record.
func (s *GenerationStats) LogStats() {
	slog.Info("generation_stats",
		"generation", s.Generation,
		"population", s.Population,
		"species", s.Species,
		"episode_ticks", s.EpisodeTicks,
		"best_score", s.BestScore,
		"best_fitness", s.BestFitness,
		"mean_fitness", s.MeanFitness,
		"std_fitness", s.StdFitness,
		"p50_fitness", s.P50Fitness,
		"p90_fitness", s.P90Fitness,
		"flaps", s.Flaps,
		"pipes_cleared", s.PipesCleared,
		"deaths_pipe", s.DeathsPipe,
		"deaths_ground", s.DeathsGround,
		"deaths_ceiling", s.DeathsCeiling,
	)
}
