package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/finchlab/neatbird/ui"
)

// Pipe and bird colors.
var (
	pipeColor     = rl.Color{R: 46, G: 156, B: 73, A: 255}
	pipeEdgeColor = rl.Color{R: 26, G: 106, B: 48, A: 255}

	// Species palette; wraps for large species counts
	speciesColors = []rl.Color{
		{R: 245, G: 200, B: 66, A: 255},
		{R: 235, G: 110, B: 80, A: 255},
		{R: 110, G: 190, B: 235, A: 255},
		{R: 170, G: 220, B: 100, A: 255},
		{R: 220, G: 130, B: 220, A: 255},
		{R: 250, G: 160, B: 60, A: 255},
	}
)

// draw renders one frame of a running episode.
func (g *Game) draw() {
	rl.BeginDrawing()
	g.drawBackdrop()
	g.drawPipes()
	g.drawBirds()
	g.drawHUD()
	rl.EndDrawing()
}

// drawBackdrop renders the sky and parallax hills.
func (g *Game) drawBackdrop() {
	if g.background != nil {
		g.background.Draw()
	} else {
		rl.ClearBackground(rl.SkyBlue)
	}
}

// drawPipes renders all pipe pairs.
func (g *Game) drawPipes() {
	groundY := int32(g.cfg.Derived.GroundY)

	query := g.pipeFilter.Query()
	for query.Next() {
		pos, pipe := query.Get()

		x := int32(pos.X)
		w := int32(pipe.Width)
		gapTop := int32(pipe.GapTop)
		gapBottom := int32(pipe.GapBottom)

		rl.DrawRectangle(x, 0, w, gapTop, pipeColor)
		rl.DrawRectangleLines(x, 0, w, gapTop, pipeEdgeColor)
		rl.DrawRectangle(x, gapBottom, w, groundY-gapBottom, pipeColor)
		rl.DrawRectangleLines(x, gapBottom, w, groundY-gapBottom, pipeEdgeColor)
	}
}

// drawBirds renders all living birds, tinted by species.
func (g *Game) drawBirds() {
	w := float32(g.cfg.Bird.Width)
	h := float32(g.cfg.Bird.Height)

	query := g.birdFilter.Query()
	for query.Next() {
		pos, vel, bird := query.Get()
		if !bird.Alive {
			continue
		}

		color := speciesColors[bird.Species%len(speciesColors)]
		// Tilt hint: brighter while rising
		if vel.Y < 0 {
			color = brighten(color)
		}
		color.A = 200

		rl.DrawRectangleV(
			rl.Vector2{X: float32(pos.X), Y: float32(pos.Y)},
			rl.Vector2{X: w, Y: h},
			color,
		)
		// Eye
		rl.DrawCircle(int32(pos.X)+int32(w)-10, int32(pos.Y)+10, 4, rl.Black)
	}
}

// brighten lifts a color toward white for the rising-bird tilt hint.
func brighten(c rl.Color) rl.Color {
	lift := func(v uint8) uint8 {
		n := int(v) + 40
		if n > 255 {
			n = 255
		}
		return uint8(n)
	}
	return rl.Color{R: lift(c.R), G: lift(c.G), B: lift(c.B), A: c.A}
}

// drawHUD renders the training HUD and the control panel.
func (g *Game) drawHUD() {
	currentBest := g.bestFitness
	query := g.birdFilter.Query()
	for query.Next() {
		_, _, bird := query.Get()
		if bird.Fitness > currentBest {
			currentBest = bird.Fitness
		}
	}

	ui.DrawHUD(ui.HUDState{
		Generation:    g.generation,
		Alive:         g.aliveCount,
		Population:    g.countBirds(),
		BestFitness:   currentBest,
		BestScore:     g.bestScore,
		Tick:          g.tick,
		StepsPerFrame: g.stepsPerFrame,
		Paused:        g.paused,
	})

	if g.panel != nil {
		actions := g.panel.Draw(g.stepsPerFrame, g.paused)
		g.applyPanelActions(actions.StepsPerFrame, actions.TogglePause, actions.Restart)
	}
	if g.netView != nil {
		g.netView.Draw(g.viewInputs, g.viewOutput, g.viewFlap)
	}
}

// drawMenu renders the start screen.
func (g *Game) drawMenu() {
	ui.DrawMenu(int32(g.cfg.Screen.Width), int32(g.cfg.Screen.Height))
}

// drawDone renders the end-of-run overlay.
func (g *Game) drawDone() {
	ui.DrawDone(int32(g.cfg.Screen.Width), g.bestFitness, g.bestScore)
}
