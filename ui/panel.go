package ui

import (
	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// PanelActions reports what the user requested through the control panel
// during one frame.
type PanelActions struct {
	StepsPerFrame int
	TogglePause   bool
	Restart       bool
}

// ControlPanel is a small raygui panel with a speed slider and pause and
// restart buttons. Toggled with Tab.
type ControlPanel struct {
	x, y    float32
	width   float32
	visible bool
}

// NewControlPanel creates the panel anchored at the given position.
func NewControlPanel(x, y, width float32) *ControlPanel {
	return &ControlPanel{x: x, y: y, width: width}
}

// Toggle switches panel visibility.
func (p *ControlPanel) Toggle() {
	p.visible = !p.visible
}

// Draw renders the panel and returns the requested actions.
func (p *ControlPanel) Draw(stepsPerFrame int, paused bool) PanelActions {
	actions := PanelActions{StepsPerFrame: stepsPerFrame}
	if !p.visible {
		return actions
	}

	px, py := p.x, p.y
	rl.DrawRectangle(int32(px)-10, int32(py)-10, int32(p.width)+20, 130, rl.Color{R: 0, G: 0, B: 0, A: 180})

	rl.DrawText("Training speed", int32(px), int32(py), 14, rl.RayWhite)
	py += 18
	newSteps := gui.SliderBar(
		rl.Rectangle{X: px, Y: py, Width: p.width - 40, Height: 20},
		"1", "10",
		float32(stepsPerFrame), 1, 10,
	)
	if int(newSteps) != stepsPerFrame {
		actions.StepsPerFrame = int(newSteps)
	}
	py += 35

	pauseLabel := "Pause"
	if paused {
		pauseLabel = "Resume"
	}
	if gui.Button(rl.Rectangle{X: px, Y: py, Width: 100, Height: 28}, pauseLabel) {
		actions.TogglePause = true
	}
	if gui.Button(rl.Rectangle{X: px + 110, Y: py, Width: 100, Height: 28}, "Restart") {
		actions.Restart = true
	}

	return actions
}
