// Package ui draws the HUD and the training control panel.
package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// HUDState holds the values shown in the top-left HUD.
type HUDState struct {
	Generation    int
	Alive         int
	Population    int
	BestFitness   float64
	BestScore     int32
	Tick          int
	StepsPerFrame int
	Paused        bool
}

// DrawHUD renders the training HUD text.
func DrawHUD(s HUDState) {
	rl.DrawText(fmt.Sprintf("Gen: %d  Tick: %d", s.Generation, s.Tick), 10, 10, 20, rl.White)
	rl.DrawText(fmt.Sprintf("Alive: %d/%d", s.Alive, s.Population), 10, 35, 20, rl.White)
	rl.DrawText(fmt.Sprintf("Best fitness: %.1f  Score: %d", s.BestFitness, s.BestScore), 10, 60, 20, rl.White)
	rl.DrawText(fmt.Sprintf("Speed: %dx  [</>]", s.StepsPerFrame), 10, 85, 20, rl.White)
	if s.Paused {
		rl.DrawText("PAUSED", 10, 110, 20, rl.Yellow)
	}
	rl.DrawText(fmt.Sprintf("%d FPS", rl.GetFPS()), 10, 135, 16, rl.Gray)
}

// DrawMenu renders the start screen text.
func DrawMenu(screenW, screenH int32) {
	drawCentered("FLAPPY BIRD NEUROEVOLUTION", screenW/2, 300, 30, rl.White)
	drawCentered("Press SPACE to start", screenW/2, 450, 20, rl.White)
	drawCentered("Press Q to quit", screenW/2, 500, 20, rl.White)
}

// DrawDone renders the end-of-run overlay.
func DrawDone(screenW int32, bestFitness float64, bestScore int32) {
	drawCentered("TRAINING COMPLETE", screenW/2, 300, 30, rl.White)
	drawCentered(fmt.Sprintf("Best fitness: %.1f  Score: %d", bestFitness, bestScore), screenW/2, 400, 20, rl.White)
	drawCentered("Press R to restart, Q to quit", screenW/2, 470, 20, rl.White)
}

func drawCentered(text string, cx, y, size int32, color rl.Color) {
	w := rl.MeasureText(text, size)
	rl.DrawText(text, cx-w/2, y, size, color)
}
