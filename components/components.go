// Package components defines the ECS components for birds and pipes.
package components

// Position represents an entity's world position in pixels.
// The y axis grows downward, matching the renderer.
type Position struct {
	X, Y float64
}

// Velocity represents vertical velocity in pixels per tick.
// Birds never move horizontally; the world scrolls past them.
type Velocity struct {
	Y float64
}

// DeathCause records what killed a bird.
type DeathCause uint8

const (
	CauseNone DeathCause = iota
	CausePipe
	CauseGround
	CauseCeiling
)

// String returns a human-readable cause name.
func (c DeathCause) String() string {
	switch c {
	case CausePipe:
		return "pipe"
	case CauseGround:
		return "ground"
	case CauseCeiling:
		return "ceiling"
	default:
		return "none"
	}
}

// Bird is the agent component. Each live bird owns exactly one neural
// network for the duration of an episode, looked up by GenomeKey.
// Fitness accumulates rewards only: it never decreases while the bird is
// alive and is frozen the tick the bird dies.
type Bird struct {
	GenomeKey int // key into the engine's genome map and the network table
	Species   int // species key, drives the render tint
	Score     int32
	Fitness   float64
	Alive     bool
	Cause     DeathCause
}

// AddReward increases fitness while the bird is alive. Dead birds keep
// their final fitness.
func (b *Bird) AddReward(r float64) {
	if !b.Alive || r < 0 {
		return
	}
	b.Fitness += r
}

// Kill marks the bird dead and records the cause. Fitness is frozen from
// this point on.
func (b *Bird) Kill(cause DeathCause) {
	if !b.Alive {
		return
	}
	b.Alive = false
	b.Cause = cause
}

// Pipe is an obstacle pair: a top pipe from the ceiling down to GapTop and
// a bottom pipe from GapBottom to the ground. The entity's Position.X is
// the pipe's left edge; pipes scroll left and are removed off-screen.
type Pipe struct {
	Width     float64
	GapTop    float64 // y of the top pipe's lower edge
	GapBottom float64 // y of the bottom pipe's upper edge
	Cleared   bool    // birds have passed and scored this pipe
}
