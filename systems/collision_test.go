package systems

import (
	"testing"

	"github.com/finchlab/neatbird/components"
)

const (
	testBirdW   = 46
	testBirdH   = 34
	testGroundY = 800
)

func TestRectOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want bool
	}{
		{"identical", Rect{0, 0, 10, 10}, Rect{0, 0, 10, 10}, true},
		{"partial", Rect{0, 0, 10, 10}, Rect{5, 5, 10, 10}, true},
		{"touching edges", Rect{0, 0, 10, 10}, Rect{10, 0, 10, 10}, false},
		{"disjoint x", Rect{0, 0, 10, 10}, Rect{20, 0, 10, 10}, false},
		{"disjoint y", Rect{0, 0, 10, 10}, Rect{0, 20, 10, 10}, false},
		{"contained", Rect{0, 0, 100, 100}, Rect{40, 40, 10, 10}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Overlaps(tt.b); got != tt.want {
				t.Errorf("Overlaps = %v, want %v", got, tt.want)
			}
			// Overlap is symmetric
			if got := tt.b.Overlaps(tt.a); got != tt.want {
				t.Errorf("reverse Overlaps = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPipeRects(t *testing.T) {
	pos := components.Position{X: 300}
	pipe := components.Pipe{Width: 150, GapTop: 200, GapBottom: 365}

	top, bottom := PipeRects(pos, pipe, testGroundY)

	if top.Y != 0 || top.H != 200 {
		t.Errorf("top rect = %+v, want y=0 h=200", top)
	}
	if bottom.Y != 365 || bottom.H != testGroundY-365 {
		t.Errorf("bottom rect = %+v, want y=365 h=%v", bottom, testGroundY-365)
	}
	if top.X != 300 || bottom.X != 300 || top.W != 150 || bottom.W != 150 {
		t.Error("pipe rects must share the pipe's x and width")
	}
}

func TestCheckBirdDeath(t *testing.T) {
	pipePos := components.Position{X: 90}
	pipe := components.Pipe{Width: 150, GapTop: 300, GapBottom: 465}

	tests := []struct {
		name string
		pos  components.Position
		want components.DeathCause
	}{
		{"safe in gap", components.Position{X: 100, Y: 400}, components.CauseNone},
		{"hits top pipe", components.Position{X: 100, Y: 250}, components.CausePipe},
		{"hits bottom pipe", components.Position{X: 100, Y: 450}, components.CausePipe},
		{"hits ground", components.Position{X: 100, Y: testGroundY - testBirdH}, components.CauseGround},
		{"above screen", components.Position{X: 100, Y: 0}, components.CauseCeiling},
		{"below ground entirely", components.Position{X: 100, Y: 900}, components.CauseGround},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CheckBirdDeath(tt.pos, testBirdW, testBirdH, testGroundY, &pipePos, &pipe)
			if got != tt.want {
				t.Errorf("CheckBirdDeath = %v, want %v", got, tt.want)
			}
		})
	}
}

// A bird left of the pipe must not collide regardless of height.
func TestCheckBirdDeathNoPipeOverlapHorizontally(t *testing.T) {
	pipePos := components.Position{X: 400}
	pipe := components.Pipe{Width: 150, GapTop: 300, GapBottom: 465}

	got := CheckBirdDeath(components.Position{X: 100, Y: 100}, testBirdW, testBirdH, testGroundY, &pipePos, &pipe)
	if got != components.CauseNone {
		t.Errorf("CheckBirdDeath = %v, want none", got)
	}
}

func TestCheckBirdDeathWithoutPipes(t *testing.T) {
	got := CheckBirdDeath(components.Position{X: 100, Y: 400}, testBirdW, testBirdH, testGroundY, nil, nil)
	if got != components.CauseNone {
		t.Errorf("CheckBirdDeath = %v, want none with no pipes", got)
	}
}
