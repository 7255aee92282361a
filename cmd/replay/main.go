// Replay tool - renders the best genome from a checkpoint playing a
// single episode, with no evolution running.
//
// Usage: go run ./cmd/replay -checkpoint flappy_checkpoint_gen10.ckpt
package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/baldhumanity/neat-go/neat"
	"github.com/baldhumanity/neat-go/neat/nn"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/finchlab/neatbird/config"
	"github.com/finchlab/neatbird/game"
)

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	neatConfig := flag.String("neat-config", "", "Path to the evolution INI file (empty = use config value)")
	checkpoint := flag.String("checkpoint", "", "Checkpoint file to replay (required)")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	episodes := flag.Int("episodes", 1, "Number of episodes to play")

	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if *checkpoint == "" {
		slog.Error("missing -checkpoint flag")
		os.Exit(1)
	}

	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()
	if *neatConfig != "" {
		cfg.Evolution.NeatConfig = *neatConfig
	}

	pop, err := neat.LoadCheckpoint(*checkpoint, cfg.Evolution.NeatConfig)
	if err != nil {
		slog.Error("failed to load checkpoint", "path", *checkpoint, "error", err)
		os.Exit(1)
	}
	best := bestGenome(pop)
	if best == nil {
		slog.Error("checkpoint holds no genomes", "path", *checkpoint)
		os.Exit(1)
	}

	net, err := nn.CreateFeedForwardNetwork(best)
	if err != nil {
		slog.Error("failed to build network", "genome", best.Key, "error", err)
		os.Exit(1)
	}

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), "Flappy Bird Replay")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	g := game.NewGame(game.Options{Seed: rngSeed})
	g.SetGeneration(pop.Generation)

	slog.Info("replaying best genome",
		"genome", best.Key,
		"fitness", best.Fitness,
		"generation", pop.Generation,
		"seed", rngSeed,
	)

	for i := 0; i < *episodes; i++ {
		result := g.RunEpisode([]game.AgentSpec{{GenomeKey: best.Key, Net: net}})
		slog.Info("episode finished",
			"episode", i+1,
			"ticks", result.Ticks,
			"score", result.BestScore,
			"fitness", result.Fitness[best.Key],
		)
		if result.Quit {
			break
		}
	}
}

// bestGenome prefers the population's recorded best; if the checkpoint
// predates any evaluation it falls back to the highest-fitness member.
func bestGenome(pop *neat.Population) *neat.Genome {
	if pop.BestGenome != nil {
		return pop.BestGenome
	}
	var best *neat.Genome
	for _, g := range pop.Population {
		if best == nil || g.Fitness > best.Fitness {
			best = g
		}
	}
	return best
}
