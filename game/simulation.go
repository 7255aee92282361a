package game

import (
	"log/slog"

	"github.com/mlange-42/ark/ecs"

	"github.com/finchlab/neatbird/components"
	"github.com/finchlab/neatbird/systems"
)

// step advances the episode by one tick: sensing, action, physics,
// scoring, termination checks, and pipe maintenance.
func (g *Game) step() {
	if g.background != nil {
		g.background.Scroll()
	}

	g.spawnPipeIfDue()
	g.scrollPipes()

	// Sensors are shared: all birds fly in the same column, so the next
	// uncleared pipe is the same for everyone.
	nextPos, next := g.nextPipe()

	g.updateBirds(nextPos, next)
	g.scorePassedPipes()
	g.cullPipes()

	g.tick++
}

// scrollPipes moves all pipes left by the scroll speed.
func (g *Game) scrollPipes() {
	speed := g.cfg.Pipes.Speed
	query := g.pipeFilter.Query()
	for query.Next() {
		pos, _ := query.Get()
		systems.ScrollPipe(pos, speed)
	}
}

// updateBirds runs each living bird's network, applies its action and the
// physics, grants the survival reward, and checks for death.
func (g *Game) updateBirds(nextPos *components.Position, next *components.Pipe) {
	cfg := g.cfg
	screenW := float64(cfg.Screen.Width)
	screenH := float64(cfg.Screen.Height)

	leaderFitness := -1.0

	query := g.birdFilter.Query()
	for query.Next() {
		pos, vel, bird := query.Get()
		if !bird.Alive {
			continue
		}

		net, ok := g.networks[bird.GenomeKey]
		if !ok {
			// No controller, no episode; retire the bird silently.
			bird.Kill(components.CauseGround)
			g.aliveCount--
			continue
		}

		inputs := systems.ComputeSensors(*pos, nextPos, next, screenW, screenH)
		outputs, err := net.Activate(inputs.AsSlice())
		if err != nil {
			// Engine failure: the bird keeps the fitness it earned so far.
			slog.Warn("network activation failed", "genome", bird.GenomeKey, "error", err)
			bird.Kill(components.CauseGround)
			g.aliveCount--
			continue
		}

		flap := systems.ShouldFlap(outputs)
		if flap {
			systems.Flap(vel, g.physics)
			g.collector.RecordFlap()
		}

		// Snapshot the leader's sensing and decision for the net view
		if g.netView != nil && bird.Fitness > leaderFitness {
			leaderFitness = bird.Fitness
			g.viewInputs = inputs.AsSlice()
			g.viewOutput = 0
			if len(outputs) > 0 {
				g.viewOutput = outputs[0]
			}
			g.viewFlap = flap
		}
		systems.ApplyGravity(pos, vel, g.physics)

		bird.AddReward(cfg.Fitness.SurvivalReward)

		cause := systems.CheckBirdDeath(*pos, cfg.Bird.Width, cfg.Bird.Height,
			cfg.Derived.GroundY, nextPos, next)
		if cause != components.CauseNone {
			bird.Kill(cause)
			g.collector.RecordDeath(cause)
			g.aliveCount--
		}
	}
}

// scorePassedPipes marks pipes the bird column has fully passed and grants
// the traversal reward to every living bird.
func (g *Game) scorePassedPipes() {
	cfg := g.cfg
	birdX := cfg.Bird.StartX

	cleared := false
	query := g.pipeFilter.Query()
	for query.Next() {
		pos, pipe := query.Get()
		if pipe.Cleared || birdX <= pos.X+pipe.Width {
			continue
		}
		pipe.Cleared = true
		cleared = true
	}
	if !cleared {
		return
	}

	g.collector.RecordPipeCleared()
	birds := g.birdFilter.Query()
	for birds.Next() {
		_, _, bird := birds.Get()
		if !bird.Alive {
			continue
		}
		bird.Score++
		bird.AddReward(cfg.Fitness.PipeReward)
	}
}

// cullPipes removes pipes that have fully scrolled off the left edge.
func (g *Game) cullPipes() {
	var gone []ecs.Entity
	query := g.pipeFilter.Query()
	for query.Next() {
		pos, pipe := query.Get()
		if systems.PipeOffScreen(*pos, *pipe) {
			gone = append(gone, query.Entity())
		}
	}
	for _, e := range gone {
		g.pipeMapper.Remove(e)
	}
}
