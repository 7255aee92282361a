package game

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/finchlab/neatbird/components"
	"github.com/finchlab/neatbird/systems"
)

// spawnGeneration creates one bird per agent spec. Every live bird owns
// exactly one network for the duration of the episode.
func (g *Game) spawnGeneration(agents []AgentSpec) {
	cfg := g.cfg

	for _, a := range agents {
		pos := components.Position{X: cfg.Bird.StartX, Y: cfg.Bird.StartY}
		vel := components.Velocity{}
		bird := components.Bird{GenomeKey: a.GenomeKey, Species: a.Species, Alive: true}

		g.birdMapper.NewEntity(&pos, &vel, &bird)
		g.networks[a.GenomeKey] = a.Net
		g.aliveCount++
	}
}

// resetEpisode puts all birds back at the start position with zero velocity
// and clears the pipe set. Scores and fitness restart from zero; the
// episode tick counter rewinds.
func (g *Game) resetEpisode() {
	cfg := g.cfg

	query := g.birdFilter.Query()
	for query.Next() {
		pos, vel, bird := query.Get()
		pos.X = cfg.Bird.StartX
		pos.Y = cfg.Bird.StartY
		vel.Y = 0
		bird.Alive = true
		bird.Cause = components.CauseNone
		bird.Fitness = 0
		bird.Score = 0
	}
	g.aliveCount = g.countBirds()

	g.clearPipes()
	g.collector.Reset()
	g.tick = 0
	if g.background != nil {
		g.background.Reset()
	}
}

// endGeneration collects final fitness per genome, then discards all birds,
// pipes, and networks. The (Bird, Network) pairing exists only within an
// episode.
func (g *Game) endGeneration() (fitness map[int]float64, bestScore int32) {
	fitness = make(map[int]float64)

	var toRemove []removal
	query := g.birdFilter.Query()
	for query.Next() {
		_, _, bird := query.Get()
		fitness[bird.GenomeKey] = bird.Fitness
		if bird.Score > bestScore {
			bestScore = bird.Score
		}
		toRemove = append(toRemove, removal{entity: query.Entity(), key: bird.GenomeKey})
	}

	for _, r := range toRemove {
		g.birdMapper.Remove(r.entity)
		delete(g.networks, r.key)
	}
	g.aliveCount = 0

	g.clearPipes()
	return fitness, bestScore
}

type removal struct {
	entity ecs.Entity
	key    int
}

// clearPipes removes every pipe entity.
func (g *Game) clearPipes() {
	var pipes []ecs.Entity
	query := g.pipeFilter.Query()
	for query.Next() {
		pipes = append(pipes, query.Entity())
	}
	for _, e := range pipes {
		g.pipeMapper.Remove(e)
	}
}

// countBirds returns the total number of bird entities, dead or alive.
func (g *Game) countBirds() int {
	n := 0
	query := g.birdFilter.Query()
	for query.Next() {
		n++
	}
	return n
}

// nextPipe finds the nearest uncleared pipe ahead of the shared bird
// column. Returns nils when no such pipe exists.
func (g *Game) nextPipe() (*components.Position, *components.Pipe) {
	birdX := g.cfg.Bird.StartX

	var bestPos *components.Position
	var bestPipe *components.Pipe
	query := g.pipeFilter.Query()
	for query.Next() {
		pos, pipe := query.Get()
		if pipe.Cleared || pos.X+pipe.Width <= birdX {
			continue
		}
		if bestPos == nil || pos.X < bestPos.X {
			bestPos = pos
			bestPipe = pipe
		}
	}
	return bestPos, bestPipe
}

// lastPipeX returns the x of the most recently spawned (rightmost) pipe.
func (g *Game) lastPipeX() (x float64, ok bool) {
	query := g.pipeFilter.Query()
	for query.Next() {
		pos, _ := query.Get()
		if !ok || pos.X > x {
			x = pos.X
			ok = true
		}
	}
	return x, ok
}

// spawnPipeIfDue generates a new pipe pair when the last one has scrolled
// past the trigger column.
func (g *Game) spawnPipeIfDue() {
	lastX, havePipes := g.lastPipeX()
	if !systems.ShouldSpawn(lastX, havePipes, g.pipes) {
		return
	}
	pos, pipe := systems.NewPipe(g.rng, g.pipes)
	g.pipeMapper.NewEntity(&pos, &pipe)
}
