package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Input labels for the network view. Order matches the sensor vector.
var inputLabels = []string{"Bird Y", "Pipe Dist", "Gap Top", "Gap Bot"}

var outputLabels = []string{"Flap"}

// Colors for activation visualization.
var (
	colorNodeLine = rl.Color{R: 100, G: 100, B: 100, A: 255}
	colorEdge     = rl.Color{R: 200, G: 200, B: 200, A: 70}
	colorEdgeHot  = rl.Color{R: 255, G: 160, B: 60, A: 160}
	colorLabelDim = rl.Color{R: 120, G: 120, B: 120, A: 255}
	colorViewBack = rl.Color{R: 20, G: 20, B: 30, A: 200}
)

// NetView draws the tracked bird's sensor inputs and flap decision as a
// small network diagram. Topology between the layers is not shown; the
// evolved genomes differ per bird, so only endpoint activations are drawn.
type NetView struct {
	X, Y          float32
	Width, Height float32
	Visible       bool
}

// NewNetView creates a network view anchored at the given position.
func NewNetView(x, y float32) *NetView {
	return &NetView{X: x, Y: y, Width: 190, Height: 130}
}

// Toggle flips visibility.
func (v *NetView) Toggle() {
	v.Visible = !v.Visible
}

// Draw renders the diagram for the given sensor inputs and network
// output. flap reports whether the output crossed the decision threshold.
func (v *NetView) Draw(inputs []float64, output float64, flap bool) {
	if !v.Visible {
		return
	}

	rl.DrawRectangle(int32(v.X), int32(v.Y), int32(v.Width), int32(v.Height), colorViewBack)
	rl.DrawRectangleLines(int32(v.X), int32(v.Y), int32(v.Width), int32(v.Height), colorNodeLine)

	nodeRadius := float32(6)
	inputX := v.X + 70
	outputX := v.X + v.Width - 40
	spacing := (v.Height - 20) / float32(len(inputLabels))

	outPos := rl.Vector2{X: outputX, Y: v.Y + v.Height/2}

	// Edges first so nodes draw on top
	for i := range inputLabels {
		from := rl.Vector2{X: inputX, Y: v.Y + 10 + spacing/2 + float32(i)*spacing}
		color := colorEdge
		if flap {
			color = colorEdgeHot
		}
		rl.DrawLineEx(from, outPos, 1.5, color)
	}

	for i, label := range inputLabels {
		pos := rl.Vector2{X: inputX, Y: v.Y + 10 + spacing/2 + float32(i)*spacing}
		var act float64
		if i < len(inputs) {
			act = inputs[i]
		}
		drawActivationNode(pos, nodeRadius, act)

		labelWidth := rl.MeasureText(label, 10)
		rl.DrawText(label, int32(pos.X-nodeRadius)-labelWidth-4, int32(pos.Y)-5, 10, colorLabelDim)
	}

	drawActivationNode(outPos, nodeRadius+2, output)
	rl.DrawText(outputLabels[0], int32(outPos.X+nodeRadius+6), int32(outPos.Y)-5, 10, colorLabelDim)
}

// drawActivationNode renders a neuron colored by its activation in [0,1].
func drawActivationNode(pos rl.Vector2, radius float32, activation float64) {
	rl.DrawCircleV(pos, radius, activationColor(activation))
	rl.DrawCircleLinesV(pos, radius, colorNodeLine)
}

// activationColor maps [0,1] to gray..orange.
func activationColor(activation float64) rl.Color {
	t := activation
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return rl.Color{
		R: uint8(60 + t*195),
		G: uint8(60 + t*100),
		B: 60,
		A: 255,
	}
}
