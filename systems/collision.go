package systems

import "github.com/finchlab/neatbird/components"

// Rect is an axis-aligned bounding box with y growing downward.
type Rect struct {
	X, Y, W, H float64
}

// Overlaps reports whether two rectangles intersect.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W &&
		r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// BirdRect returns the bird's hitbox.
func BirdRect(pos components.Position, w, h float64) Rect {
	return Rect{X: pos.X, Y: pos.Y, W: w, H: h}
}

// PipeRects returns the hitboxes of the top and bottom pipe of a pair.
func PipeRects(pos components.Position, pipe components.Pipe, groundY float64) (top, bottom Rect) {
	top = Rect{X: pos.X, Y: 0, W: pipe.Width, H: pipe.GapTop}
	bottom = Rect{X: pos.X, Y: pipe.GapBottom, W: pipe.Width, H: groundY - pipe.GapBottom}
	return top, bottom
}

// CheckBirdDeath returns the cause of death for a bird this tick, or
// CauseNone if it survives. Screen-top and ground checks use the hitbox
// edges so a bird can never rest outside the screen while alive.
func CheckBirdDeath(birdPos components.Position, birdW, birdH float64, groundY float64,
	pipePos *components.Position, pipe *components.Pipe) components.DeathCause {

	if birdPos.Y+birdH >= groundY {
		return components.CauseGround
	}
	if birdPos.Y <= 0 {
		return components.CauseCeiling
	}

	if pipePos != nil && pipe != nil {
		b := BirdRect(birdPos, birdW, birdH)
		top, bottom := PipeRects(*pipePos, *pipe, groundY)
		if b.Overlaps(top) || b.Overlaps(bottom) {
			return components.CausePipe
		}
	}

	return components.CauseNone
}
