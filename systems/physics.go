// Package systems implements the per-tick mechanics of the episode driver:
// physics, collision, sensing, and pipe generation.
package systems

import "github.com/finchlab/neatbird/components"

// PhysicsParams bundles the constants applied every tick.
type PhysicsParams struct {
	Gravity      float64
	FlapImpulse  float64
	MaxFallSpeed float64
}

// ApplyGravity advances a bird's velocity and position by one tick.
func ApplyGravity(pos *components.Position, vel *components.Velocity, p PhysicsParams) {
	vel.Y += p.Gravity
	if vel.Y > p.MaxFallSpeed {
		vel.Y = p.MaxFallSpeed
	}
	pos.Y += vel.Y
}

// Flap sets the bird's velocity to the upward flap impulse.
func Flap(vel *components.Velocity, p PhysicsParams) {
	vel.Y = -p.FlapImpulse
}

// ScrollPipe moves a pipe left by the scroll speed.
func ScrollPipe(pos *components.Position, speed float64) {
	pos.X -= speed
}

// PipeOffScreen reports whether a pipe has fully scrolled past the left edge.
func PipeOffScreen(pos components.Position, pipe components.Pipe) bool {
	return pos.X+pipe.Width <= 0
}
