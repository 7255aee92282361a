package systems

import "github.com/finchlab/neatbird/components"

// FlapThreshold is the network output above which the bird flaps.
const FlapThreshold = 0.5

// SensorInputs holds the values a bird's network sees each tick.
// All values are normalized to [0,1] against the screen dimensions so the
// network never has to cope with raw pixel magnitudes.
type SensorInputs struct {
	BirdY     float64 // bird's vertical position
	PipeDist  float64 // horizontal distance to the next uncleared pipe
	GapTop    float64 // y of the next gap's upper edge
	GapBottom float64 // y of the next gap's lower edge
}

// AsSlice returns the sensor inputs as a flat slice for the network.
func (s *SensorInputs) AsSlice() []float64 {
	return []float64{s.BirdY, s.PipeDist, s.GapTop, s.GapBottom}
}

// ComputeSensors calculates the inputs for one bird. nextPos and nextPipe
// describe the nearest uncleared pipe; when no pipe exists yet the pipe
// sensors read as maximally distant with a centered gap.
func ComputeSensors(birdPos components.Position,
	nextPos *components.Position, nextPipe *components.Pipe,
	screenW, screenH float64) SensorInputs {

	inputs := SensorInputs{
		BirdY: clamp01(birdPos.Y / screenH),
	}

	if nextPos == nil || nextPipe == nil {
		inputs.PipeDist = 1
		inputs.GapTop = 0.4
		inputs.GapBottom = 0.6
		return inputs
	}

	inputs.PipeDist = clamp01((nextPos.X - birdPos.X) / screenW)
	inputs.GapTop = clamp01(nextPipe.GapTop / screenH)
	inputs.GapBottom = clamp01(nextPipe.GapBottom / screenH)
	return inputs
}

// ShouldFlap converts a network output vector into the binary action.
func ShouldFlap(outputs []float64) bool {
	return len(outputs) > 0 && outputs[0] > FlapThreshold
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
