package components

import "testing"

func TestBirdRewardWhileAlive(t *testing.T) {
	b := Bird{Alive: true}

	b.AddReward(0.1)
	b.AddReward(20)
	if b.Fitness != 20.1 {
		t.Errorf("fitness = %v, want 20.1", b.Fitness)
	}
}

func TestBirdFitnessFrozenAfterDeath(t *testing.T) {
	b := Bird{Alive: true}
	b.AddReward(5)

	b.Kill(CausePipe)
	b.AddReward(100)

	if b.Fitness != 5 {
		t.Errorf("fitness = %v, want 5 (frozen at death)", b.Fitness)
	}
	if b.Cause != CausePipe {
		t.Errorf("cause = %v, want pipe", b.Cause)
	}
}

func TestBirdRejectsNegativeReward(t *testing.T) {
	b := Bird{Alive: true, Fitness: 3}
	b.AddReward(-1)
	if b.Fitness != 3 {
		t.Errorf("fitness = %v, want 3 (rewards only)", b.Fitness)
	}
}

func TestKillKeepsFirstCause(t *testing.T) {
	b := Bird{Alive: true}
	b.Kill(CauseGround)
	b.Kill(CausePipe)
	if b.Cause != CauseGround {
		t.Errorf("cause = %v, want ground (first kill wins)", b.Cause)
	}
}

func TestDeathCauseString(t *testing.T) {
	cases := map[DeathCause]string{
		CauseNone:    "none",
		CausePipe:    "pipe",
		CauseGround:  "ground",
		CauseCeiling: "ceiling",
	}
	for c, want := range cases {
		if got := c.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", c, got, want)
		}
	}
}
