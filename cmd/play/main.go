// Play mode - fly a single bird with the keyboard, using the same
// physics, pipes, and scoring the evolved networks train against.
// Space flaps, P pauses, R restarts after a crash.
//
// Usage: go run ./cmd/play
package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/finchlab/neatbird/config"
	"github.com/finchlab/neatbird/game"
)

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")

	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), "Flappy Bird")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	g := game.NewGame(game.Options{Seed: rngSeed, Manual: true})
	pilot := keyboardNet{down: func() bool { return rl.IsKeyDown(rl.KeySpace) }}

	slog.Info("starting play mode", "seed", rngSeed)

	for g.RunMenu() {
		result := g.RunEpisode([]game.AgentSpec{{GenomeKey: 1, Net: pilot}})
		slog.Info("episode finished",
			"ticks", result.Ticks,
			"score", result.BestScore,
		)
		if result.Quit || !g.RunDone() {
			break
		}
	}
}

// keyboardNet adapts the flap key into the controller interface the
// episode driver expects: full output while the key is held, none
// otherwise, so the shared flap threshold fires exactly on key-down.
type keyboardNet struct {
	down func() bool
}

func (k keyboardNet) Activate(inputs []float64) ([]float64, error) {
	if k.down() {
		return []float64{1}, nil
	}
	return []float64{0}, nil
}
