package evolve

import (
	"testing"

	"github.com/baldhumanity/neat-go/neat"

	"github.com/finchlab/neatbird/config"
)

func testGenomeConfig() *neat.GenomeConfig {
	return &neat.GenomeConfig{
		NumInputs:   4,
		NumOutputs:  1,
		FeedForward: true,
		InputKeys:   []int{-1, -2, -3, -4},
		OutputKeys:  []int{0},
	}
}

func testGenome(key int) *neat.Genome {
	g := neat.NewGenome(key, testGenomeConfig())
	g.Nodes[0] = &neat.NodeGene{Key: 0, Response: 1, Activation: "sigmoid", Aggregation: "sum"}
	ck := neat.ConnectionKey{InNodeID: -1, OutNodeID: 0}
	g.Connections[ck] = &neat.ConnectionGene{Key: ck, Weight: 1, Enabled: true}
	return g
}

func TestBuildAgentsOrdersByKey(t *testing.T) {
	genomes := map[int]*neat.Genome{
		7: testGenome(7),
		2: testGenome(2),
		5: testGenome(5),
	}

	agents, err := buildAgents(genomes, nil)
	if err != nil {
		t.Fatalf("buildAgents: %v", err)
	}
	if len(agents) != 3 {
		t.Fatalf("got %d agents, want 3", len(agents))
	}
	for i, want := range []int{2, 5, 7} {
		if agents[i].GenomeKey != want {
			t.Errorf("agents[%d].GenomeKey = %d, want %d", i, agents[i].GenomeKey, want)
		}
	}
}

func TestBuildAgentsNetworksActivate(t *testing.T) {
	agents, err := buildAgents(map[int]*neat.Genome{1: testGenome(1)}, nil)
	if err != nil {
		t.Fatalf("buildAgents: %v", err)
	}

	out, err := agents[0].Net.Activate([]float64{0.5, 0.5, 0.5, 0.5})
	if err != nil {
		t.Fatalf("Activate: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("got %d outputs, want 1", len(out))
	}
	if out[0] < 0 || out[0] > 1 {
		t.Errorf("sigmoid output = %v, want within [0, 1]", out[0])
	}
}

func TestBuildAgentsCarriesSpecies(t *testing.T) {
	genomes := map[int]*neat.Genome{
		1: testGenome(1),
		2: testGenome(2),
	}
	speciesOf := map[int]int{1: 3, 2: 7}

	agents, err := buildAgents(genomes, speciesOf)
	if err != nil {
		t.Fatalf("buildAgents: %v", err)
	}
	for _, a := range agents {
		if a.Species != speciesOf[a.GenomeKey] {
			t.Errorf("genome %d species = %d, want %d", a.GenomeKey, a.Species, speciesOf[a.GenomeKey])
		}
	}
}

func TestBuildAgentsEmptyPopulation(t *testing.T) {
	if _, err := buildAgents(nil, nil); err == nil {
		t.Error("expected error for empty population")
	}
}

func TestBuildAgentsSkipsBrokenGenome(t *testing.T) {
	broken := testGenome(3)
	broken.Nodes[0].Activation = "no_such_activation"

	genomes := map[int]*neat.Genome{
		1: testGenome(1),
		3: broken,
	}

	agents, err := buildAgents(genomes, nil)
	if err != nil {
		t.Fatalf("buildAgents: %v", err)
	}
	if len(agents) != 1 || agents[0].GenomeKey != 1 {
		t.Errorf("broken genome not skipped: %+v", agents)
	}
}

func TestShouldCheckpoint(t *testing.T) {
	cases := []struct {
		name       string
		interval   int
		generation int
		final      bool
		want       bool
	}{
		{"disabled", 0, 5, false, false},
		{"disabled even when final", 0, 5, true, false},
		{"on interval", 5, 5, false, true},
		{"off interval", 5, 3, false, false},
		{"winner forces checkpoint", 5, 3, true, true},
		{"last generation", 5, 10, false, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.Evolution.CheckpointInterval = tc.interval
			cfg.Evolution.Generations = 10

			tr := &Trainer{
				cfg: cfg,
				pop: &neat.Population{Generation: tc.generation},
			}
			if got := tr.shouldCheckpoint(tc.final); got != tc.want {
				t.Errorf("shouldCheckpoint(%v) = %v, want %v", tc.final, got, tc.want)
			}
		})
	}
}
