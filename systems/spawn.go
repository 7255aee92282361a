package systems

import (
	"math/rand"

	"github.com/finchlab/neatbird/components"
)

// PipeParams bundles the constants for pipe generation.
type PipeParams struct {
	Width     float64
	Gap       float64
	SpawnX    float64
	TriggerX  float64
	GapTopMin float64 // inclusive
	GapTopMax float64 // inclusive
}

// NewPipe generates a pipe pair at the spawn x with a randomized gap
// position. The gap always lies within [GapTopMin, GapTopMax+Gap], which
// keeps the gap center inside the screen range excluding the margins.
func NewPipe(rng *rand.Rand, p PipeParams) (components.Position, components.Pipe) {
	gapTop := p.GapTopMin + rng.Float64()*(p.GapTopMax-p.GapTopMin)
	pos := components.Position{X: p.SpawnX, Y: 0}
	pipe := components.Pipe{
		Width:     p.Width,
		GapTop:    gapTop,
		GapBottom: gapTop + p.Gap,
	}
	return pos, pipe
}

// ShouldSpawn reports whether a new pipe is due, given the x of the most
// recently spawned pipe. A negative lastX means no pipe exists yet.
func ShouldSpawn(lastX float64, havePipes bool, p PipeParams) bool {
	if !havePipes {
		return true
	}
	return lastX <= p.TriggerX
}
