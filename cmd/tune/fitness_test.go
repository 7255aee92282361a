package main

import (
	"math"
	"testing"

	"github.com/finchlab/neatbird/config"
)

func TestEvaluateNoSeedsScoresWorst(t *testing.T) {
	params := NewParamVector()
	e := NewEvaluator(params, nil, &config.Config{})

	got := e.Evaluate(params.Normalize(params.DefaultVector()))

	if !math.IsInf(got, 1) {
		t.Errorf("Evaluate with no seeds = %v, want +Inf", got)
	}
	if e.LastGenerations() != 0 {
		t.Errorf("LastGenerations = %d after empty evaluation, want 0", e.LastGenerations())
	}
}

func TestParamVectorRoundTrip(t *testing.T) {
	params := NewParamVector()
	defaults := params.DefaultVector()

	back := params.Denormalize(params.Normalize(defaults))
	for i, spec := range params.Specs {
		if math.Abs(back[i]-defaults[i]) > 1e-9 {
			t.Errorf("%s: round trip %v, want %v", spec.Name, back[i], defaults[i])
		}
	}
}
