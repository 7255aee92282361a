// Package evolve drives neuroevolution: it feeds each generation of
// genomes through a game episode and reports fitness back to the engine.
package evolve

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/baldhumanity/neat-go/neat"
	"github.com/baldhumanity/neat-go/neat/nn"

	"github.com/finchlab/neatbird/config"
	"github.com/finchlab/neatbird/game"
	"github.com/finchlab/neatbird/telemetry"
)

// Trainer runs the generational loop. One Trainer owns one population
// and one game instance; generations run sequentially on the caller's
// goroutine because the game holds the render context.
type Trainer struct {
	cfg  *config.Config
	pop  *neat.Population
	game *game.Game
	out  *telemetry.OutputManager

	winner   *neat.Genome
	lastTick int
	quit     bool
}

// NewTrainer creates a fresh population from the engine's INI config.
func NewTrainer(cfg *config.Config, g *game.Game, out *telemetry.OutputManager) (*Trainer, error) {
	neatCfg, err := neat.LoadConfig(cfg.Evolution.NeatConfig)
	if err != nil {
		return nil, fmt.Errorf("load neat config %s: %w", cfg.Evolution.NeatConfig, err)
	}
	pop, err := neat.NewPopulation(neatCfg)
	if err != nil {
		return nil, fmt.Errorf("create population: %w", err)
	}
	return &Trainer{cfg: cfg, pop: pop, game: g, out: out}, nil
}

// NewTrainerFromPopulation wraps an already-built population. Used by
// tooling that constructs populations with modified engine settings.
func NewTrainerFromPopulation(cfg *config.Config, pop *neat.Population, g *game.Game, out *telemetry.OutputManager) *Trainer {
	return &Trainer{cfg: cfg, pop: pop, game: g, out: out}
}

// Resume restores a population from a checkpoint file.
func Resume(checkpointPath string, cfg *config.Config, g *game.Game, out *telemetry.OutputManager) (*Trainer, error) {
	pop, err := neat.LoadCheckpoint(checkpointPath, cfg.Evolution.NeatConfig)
	if err != nil {
		return nil, fmt.Errorf("load checkpoint %s: %w", checkpointPath, err)
	}
	slog.Info("resumed from checkpoint", "path", checkpointPath, "generation", pop.Generation)
	return &Trainer{cfg: cfg, pop: pop, game: g, out: out}, nil
}

// Generation returns the population's current generation counter.
func (t *Trainer) Generation() int {
	return t.pop.Generation
}

// Winner returns the genome that crossed the fitness threshold, or nil.
func (t *Trainer) Winner() *neat.Genome {
	return t.winner
}

// Best returns the best genome seen so far, which may be nil before the
// first generation completes.
func (t *Trainer) Best() *neat.Genome {
	return t.pop.BestGenome
}

// Quit reports whether the user closed the window mid-generation.
func (t *Trainer) Quit() bool {
	return t.quit
}

// RunGeneration evaluates and reproduces one generation. It returns
// true when the run is finished: a winner emerged, the generation
// budget is spent, or the user quit.
func (t *Trainer) RunGeneration() (done bool, err error) {
	winner, err := t.pop.RunGeneration(t.evalGenomes)
	if err != nil {
		return true, fmt.Errorf("generation %d: %w", t.pop.Generation, err)
	}
	if winner != nil {
		t.winner = winner
		slog.Info("fitness threshold reached",
			"generation", t.pop.Generation,
			"genome", winner.Key,
			"fitness", winner.Fitness)
	}

	if t.shouldCheckpoint(winner != nil) {
		path := fmt.Sprintf("%s_gen%d.ckpt", t.cfg.Evolution.CheckpointPrefix, t.pop.Generation)
		if err := t.pop.SaveCheckpoint(path); err != nil {
			slog.Error("checkpoint save failed", "path", path, "error", err)
		} else {
			slog.Info("checkpoint saved", "path", path)
		}
	}

	done = t.quit || winner != nil || t.pop.Generation >= t.cfg.Evolution.Generations
	return done, nil
}

// Run executes generations until RunGeneration reports done.
func (t *Trainer) Run() error {
	for {
		done, err := t.RunGeneration()
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

func (t *Trainer) shouldCheckpoint(final bool) bool {
	interval := t.cfg.Evolution.CheckpointInterval
	if interval <= 0 {
		return false
	}
	if final || t.pop.Generation >= t.cfg.Evolution.Generations {
		return true
	}
	return t.pop.Generation%interval == 0
}

// evalGenomes is the fitness callback handed to the engine. It builds a
// feedforward network per genome, runs all of them through a single
// shared episode, and writes the resulting fitness back onto each
// genome.
func (t *Trainer) evalGenomes(genomes map[int]*neat.Genome) error {
	agents, err := buildAgents(genomes, t.pop.SpeciesSet.GenomeToSpecies)
	if err != nil {
		return err
	}

	t.game.SetGeneration(t.pop.Generation)
	result := t.game.RunEpisode(agents)
	if result.Quit {
		t.quit = true
	}
	t.lastTick = result.Ticks

	for key, g := range genomes {
		if f, ok := result.Fitness[key]; ok {
			g.Fitness = f
		} else {
			// Network construction failed earlier; worst fitness.
			g.Fitness = 0
		}
	}

	t.report(genomes, result)
	return nil
}

// buildAgents converts genomes into episode agents in deterministic key
// order. Genomes whose network cannot be built are skipped and keep
// zero fitness. speciesOf may be nil for an unspeciated population.
func buildAgents(genomes map[int]*neat.Genome, speciesOf map[int]int) ([]game.AgentSpec, error) {
	if len(genomes) == 0 {
		return nil, fmt.Errorf("empty population")
	}

	keys := make([]int, 0, len(genomes))
	for k := range genomes {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	agents := make([]game.AgentSpec, 0, len(keys))
	for _, k := range keys {
		net, err := nn.CreateFeedForwardNetwork(genomes[k])
		if err != nil {
			slog.Warn("network build failed", "genome", k, "error", err)
			continue
		}
		agents = append(agents, game.AgentSpec{GenomeKey: k, Species: speciesOf[k], Net: net})
	}
	if len(agents) == 0 {
		return nil, fmt.Errorf("no viable networks in population of %d", len(genomes))
	}
	return agents, nil
}

// report assembles and emits per-generation statistics.
func (t *Trainer) report(genomes map[int]*neat.Genome, result game.EpisodeResult) {
	stats := telemetry.GenerationStats{
		Generation:   t.pop.Generation,
		Species:      len(t.pop.SpeciesSet.Species),
		EpisodeTicks: result.Ticks,
		BestScore:    result.BestScore,
	}

	fitnesses := make([]float64, 0, len(genomes))
	for _, g := range genomes {
		fitnesses = append(fitnesses, g.Fitness)
	}
	stats.ComputeFitnessStats(fitnesses)
	t.game.Collector().Flush(&stats)

	if t.cfg.Telemetry.LogStats {
		stats.LogStats()
	}
	if t.out != nil {
		if err := t.out.WriteStats(stats); err != nil {
			slog.Error("stats write failed", "error", err)
		}
	}
}
