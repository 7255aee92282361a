package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/finchlab/neatbird/config"
	"github.com/finchlab/neatbird/evolve"
	"github.com/finchlab/neatbird/game"
	"github.com/finchlab/neatbird/telemetry"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	neatConfig := flag.String("neat-config", "", "Path to the evolution INI file (empty = use config value)")
	headless := flag.Bool("headless", false, "Run without graphics")
	logStats := flag.Bool("log-stats", false, "Output per-generation stats via slog")
	generations := flag.Int("generations", 0, "Generation budget (0 = use config)")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	checkpoint := flag.String("checkpoint", "", "Resume evolution from a checkpoint file")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")

	flag.Parse()

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	// CLI overrides
	if *neatConfig != "" {
		cfg.Evolution.NeatConfig = *neatConfig
	}
	if *generations > 0 {
		cfg.Evolution.Generations = *generations
	}
	if *logStats {
		cfg.Telemetry.LogStats = true
	}

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	out, err := telemetry.NewOutputManager(*outputDir)
	if err != nil {
		slog.Error("failed to create output directory", "error", err)
		os.Exit(1)
	}
	defer out.Close()
	if err := out.WriteConfig(cfg); err != nil {
		slog.Error("failed to snapshot config", "error", err)
	}

	if !*headless {
		rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), "Flappy Bird Neuroevolution")
		defer rl.CloseWindow()
		rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))
	}

	g := game.NewGame(game.Options{Seed: rngSeed, Headless: *headless})

	slog.Info("starting evolution",
		"seed", rngSeed,
		"generations", cfg.Evolution.Generations,
		"neat_config", cfg.Evolution.NeatConfig,
		"headless", *headless,
	)

	checkpointPath := *checkpoint
	for g.RunMenu() {
		trainer, err := newTrainer(checkpointPath, cfg, g, out)
		if err != nil {
			slog.Error("failed to create trainer", "error", err)
			os.Exit(1)
		}
		checkpointPath = "" // a restarted run begins from scratch

		if err := trainer.Run(); err != nil {
			slog.Error("evolution failed", "error", err)
			os.Exit(1)
		}
		logOutcome(trainer)

		if trainer.Quit() || !g.RunDone() {
			break
		}
	}
}

func newTrainer(checkpointPath string, cfg *config.Config, g *game.Game, out *telemetry.OutputManager) (*evolve.Trainer, error) {
	if checkpointPath != "" {
		return evolve.Resume(checkpointPath, cfg, g, out)
	}
	return evolve.NewTrainer(cfg, g, out)
}

func logOutcome(t *evolve.Trainer) {
	if w := t.Winner(); w != nil {
		slog.Info("winner found", "genome", w.Key, "fitness", w.Fitness, "generation", t.Generation())
		return
	}
	if b := t.Best(); b != nil {
		slog.Info("generation budget spent", "best_genome", b.Key, "best_fitness", b.Fitness, "generation", t.Generation())
	}
}
