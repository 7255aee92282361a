// Package game implements the episode driver: per-frame orchestration of
// sensing, action, physics, scoring, and termination for a population of
// birds controlled by evolved networks.
package game

import (
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/finchlab/neatbird/components"
	"github.com/finchlab/neatbird/config"
	"github.com/finchlab/neatbird/renderer"
	"github.com/finchlab/neatbird/systems"
	"github.com/finchlab/neatbird/telemetry"
	"github.com/finchlab/neatbird/ui"
)

// Network is the controller interface a bird's genome provides. The
// evolution engine's feedforward networks satisfy it directly.
type Network interface {
	Activate(inputs []float64) ([]float64, error)
}

// AgentSpec pairs a genome key with its network for one episode.
type AgentSpec struct {
	GenomeKey int
	Species   int
	Net       Network
}

// EpisodeResult reports the outcome of one evaluated episode.
type EpisodeResult struct {
	Fitness   map[int]float64 // genome key -> final fitness
	Ticks     int
	BestScore int32
	Quit      bool // user asked to stop the run
}

// Options holds game initialization parameters.
type Options struct {
	Seed     int64
	Headless bool
	// Manual mode: a human flies a single bird. Space flaps instead of
	// pausing, and the training controls stay hidden.
	Manual bool
}

// Game holds the episode driver state.
type Game struct {
	cfg *config.Config
	rng *rand.Rand

	world      *ecs.World
	birdMapper *ecs.Map3[components.Position, components.Velocity, components.Bird]
	birdFilter *ecs.Filter3[components.Position, components.Velocity, components.Bird]
	pipeMapper *ecs.Map2[components.Position, components.Pipe]
	pipeFilter *ecs.Filter2[components.Position, components.Pipe]

	// One network per live bird, keyed by genome key
	networks map[int]Network

	collector  *telemetry.Collector
	background *renderer.Background
	panel      *ui.ControlPanel
	netView    *ui.NetView

	// Sensor and output snapshot of the current leader, for the net view
	viewInputs []float64
	viewOutput float64
	viewFlap   bool

	physics systems.PhysicsParams
	pipes   systems.PipeParams

	headless      bool
	manual        bool
	stepsPerFrame int
	paused        bool
	quit          bool

	tick       int
	generation int
	aliveCount int

	// Best across the whole run, for the HUD
	bestFitness float64
	bestScore   int32
}

// NewGame creates a game instance. Cfg must be initialized first.
func NewGame(opts Options) *Game {
	cfg := config.Cfg()
	world := ecs.NewWorld()

	g := &Game{
		cfg:   cfg,
		rng:   rand.New(rand.NewSource(opts.Seed)),
		world: world,
		birdMapper: ecs.NewMap3[components.Position, components.Velocity, components.Bird](world),
		birdFilter: ecs.NewFilter3[components.Position, components.Velocity, components.Bird](world),
		pipeMapper: ecs.NewMap2[components.Position, components.Pipe](world),
		pipeFilter: ecs.NewFilter2[components.Position, components.Pipe](world),

		networks:  make(map[int]Network),
		collector: telemetry.NewCollector(),

		physics: systems.PhysicsParams{
			Gravity:      cfg.Physics.Gravity,
			FlapImpulse:  cfg.Physics.FlapImpulse,
			MaxFallSpeed: cfg.Physics.MaxFallSpeed,
		},
		pipes: systems.PipeParams{
			Width:     cfg.Pipes.Width,
			Gap:       cfg.Pipes.Gap,
			SpawnX:    cfg.Pipes.SpawnX,
			TriggerX:  cfg.Pipes.SpawnTriggerX,
			GapTopMin: cfg.Derived.GapTopMin,
			GapTopMax: cfg.Derived.GapTopMax,
		},

		headless:      opts.Headless,
		manual:        opts.Manual,
		stepsPerFrame: 1,
	}

	if !opts.Headless {
		g.background = renderer.NewBackground(
			cfg.Screen.Width, cfg.Screen.Height,
			cfg.Background.Layers,
			cfg.Background.NoiseAlpha, cfg.Background.NoiseBeta,
			cfg.Background.NoiseScale, cfg.Background.ScrollSpeed,
			opts.Seed,
		)
		if !opts.Manual {
			g.panel = ui.NewControlPanel(float32(cfg.Screen.Width)-240, 20, 220)
			g.netView = ui.NewNetView(10, float32(cfg.Screen.Height)-145)
		}
	}

	return g
}

// Collector returns the episode event collector.
func (g *Game) Collector() *telemetry.Collector {
	return g.collector
}

// SetGeneration sets the generation number shown in the HUD.
func (g *Game) SetGeneration(gen int) {
	g.generation = gen
}

// Tick returns the current episode tick.
func (g *Game) Tick() int {
	return g.tick
}

// AliveCount returns the number of living birds.
func (g *Game) AliveCount() int {
	return g.aliveCount
}

// Quit reports whether the user asked to stop the run.
func (g *Game) Quit() bool {
	return g.quit
}
