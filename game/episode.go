package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// RunEpisode evaluates one generation: it spawns a bird per agent, runs
// the frame-synchronous loop until every bird is dead or the tick budget
// runs out, and returns the final fitness per genome. In graphical mode
// each tick batch is drawn as one frame; in headless mode the loop spins
// as fast as the CPU allows.
func (g *Game) RunEpisode(agents []AgentSpec) EpisodeResult {
	g.spawnGeneration(agents)
	g.collector.Reset()
	g.tick = 0

	maxTicks := g.cfg.Evolution.MaxEpisodeTicks

	for g.aliveCount > 0 && g.tick < maxTicks && !g.quit {
		if g.headless {
			g.step()
			continue
		}

		if rl.WindowShouldClose() {
			g.quit = true
			break
		}
		g.handleInput()

		if !g.paused {
			for i := 0; i < g.stepsPerFrame && g.aliveCount > 0 && g.tick < maxTicks; i++ {
				g.step()
			}
		}

		g.draw()
	}

	ticks := g.tick
	fitness, bestScore := g.endGeneration()

	for _, f := range fitness {
		if f > g.bestFitness {
			g.bestFitness = f
		}
	}
	if bestScore > g.bestScore {
		g.bestScore = bestScore
	}

	return EpisodeResult{
		Fitness:   fitness,
		Ticks:     ticks,
		BestScore: bestScore,
		Quit:      g.quit,
	}
}

// RunMenu shows the start screen until the user starts or quits.
// Returns false when the user quit.
func (g *Game) RunMenu() bool {
	if g.headless {
		return true
	}

	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeySpace) {
			return true
		}
		if rl.IsKeyPressed(rl.KeyQ) {
			return false
		}

		rl.BeginDrawing()
		g.drawBackdrop()
		g.drawMenu()
		rl.EndDrawing()
	}
	return false
}

// RunDone shows the end-of-run overlay until the user restarts or quits.
// Returns true to start a fresh run.
func (g *Game) RunDone() bool {
	if g.headless {
		return false
	}

	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeyR) {
			return true
		}
		if rl.IsKeyPressed(rl.KeyQ) {
			return false
		}

		rl.BeginDrawing()
		g.drawBackdrop()
		g.drawDone()
		rl.EndDrawing()
	}
	return false
}
