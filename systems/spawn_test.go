package systems

import (
	"math/rand"
	"testing"
)

var testPipeParams = PipeParams{
	Width:     150,
	Gap:       165,
	SpawnX:    610,
	TriggerX:  250,
	GapTopMin: 200,
	GapTopMax: 600,
}

func TestNewPipeGapWithinMargins(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 1000; i++ {
		pos, pipe := NewPipe(rng, testPipeParams)

		if pos.X != testPipeParams.SpawnX {
			t.Fatalf("pipe spawned at x=%v, want %v", pos.X, testPipeParams.SpawnX)
		}
		if pipe.GapTop < testPipeParams.GapTopMin || pipe.GapTop > testPipeParams.GapTopMax {
			t.Fatalf("gap top %v outside [%v, %v]", pipe.GapTop, testPipeParams.GapTopMin, testPipeParams.GapTopMax)
		}
		if pipe.GapBottom != pipe.GapTop+testPipeParams.Gap {
			t.Fatalf("gap bottom %v, want top+gap=%v", pipe.GapBottom, pipe.GapTop+testPipeParams.Gap)
		}
		if pipe.Cleared {
			t.Fatal("new pipe must start uncleared")
		}
	}
}

func TestNewPipeDeterministicPerSeed(t *testing.T) {
	a := rand.New(rand.NewSource(7))
	b := rand.New(rand.NewSource(7))

	for i := 0; i < 10; i++ {
		_, pa := NewPipe(a, testPipeParams)
		_, pb := NewPipe(b, testPipeParams)
		if pa.GapTop != pb.GapTop {
			t.Fatalf("pipe %d diverged between identical seeds: %v vs %v", i, pa.GapTop, pb.GapTop)
		}
	}
}

func TestShouldSpawn(t *testing.T) {
	tests := []struct {
		name      string
		lastX     float64
		havePipes bool
		want      bool
	}{
		{"no pipes yet", 0, false, true},
		{"last pipe far right", 500, true, false},
		{"last pipe at trigger", 250, true, true},
		{"last pipe past trigger", 100, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ShouldSpawn(tt.lastX, tt.havePipes, testPipeParams); got != tt.want {
				t.Errorf("ShouldSpawn(%v, %v) = %v, want %v", tt.lastX, tt.havePipes, got, tt.want)
			}
		})
	}
}
