package systems

import (
	"testing"

	"github.com/finchlab/neatbird/components"
)

var testPhysics = PhysicsParams{
	Gravity:      1.2,
	FlapImpulse:  12,
	MaxFallSpeed: 16,
}

func TestApplyGravityAccelerates(t *testing.T) {
	pos := components.Position{X: 100, Y: 400}
	vel := components.Velocity{Y: 0}

	ApplyGravity(&pos, &vel, testPhysics)

	if vel.Y != 1.2 {
		t.Errorf("vel.Y = %v, want 1.2", vel.Y)
	}
	if pos.Y != 401.2 {
		t.Errorf("pos.Y = %v, want 401.2", pos.Y)
	}
}

func TestApplyGravityClampsFallSpeed(t *testing.T) {
	pos := components.Position{Y: 400}
	vel := components.Velocity{Y: 15.5}

	ApplyGravity(&pos, &vel, testPhysics)

	if vel.Y != testPhysics.MaxFallSpeed {
		t.Errorf("vel.Y = %v, want clamped to %v", vel.Y, testPhysics.MaxFallSpeed)
	}
}

func TestFlapSetsUpwardVelocity(t *testing.T) {
	vel := components.Velocity{Y: 10}
	Flap(&vel, testPhysics)
	if vel.Y != -12 {
		t.Errorf("vel.Y = %v, want -12", vel.Y)
	}
}

func TestFlapThenGravityDescendsEventually(t *testing.T) {
	pos := components.Position{Y: 400}
	vel := components.Velocity{}
	Flap(&vel, testPhysics)

	// The bird rises first, then gravity wins.
	lowest := pos.Y
	for i := 0; i < 30; i++ {
		ApplyGravity(&pos, &vel, testPhysics)
		if pos.Y < lowest {
			lowest = pos.Y
		}
	}

	if lowest >= 400 {
		t.Error("bird never rose after flap")
	}
	if pos.Y <= 400 {
		t.Errorf("pos.Y = %v after 30 ticks, want descent past start", pos.Y)
	}
}

func TestScrollPipe(t *testing.T) {
	pos := components.Position{X: 610}
	ScrollPipe(&pos, 5)
	if pos.X != 605 {
		t.Errorf("pos.X = %v, want 605", pos.X)
	}
}

func TestPipeOffScreen(t *testing.T) {
	pipe := components.Pipe{Width: 150}

	tests := []struct {
		name string
		x    float64
		want bool
	}{
		{"on screen", 100, false},
		{"partially visible", -149, false},
		{"exactly off", -150, true},
		{"fully off", -200, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PipeOffScreen(components.Position{X: tt.x}, pipe)
			if got != tt.want {
				t.Errorf("PipeOffScreen(x=%v) = %v, want %v", tt.x, got, tt.want)
			}
		})
	}
}
