// Package main provides CMA-ES search over evolution hyperparameters.
package main

import (
	"github.com/baldhumanity/neat-go/neat"
)

// ParamSpec defines a single tunable hyperparameter.
type ParamSpec struct {
	Name    string  // INI key, used in logs
	Min     float64 // Lower bound
	Max     float64 // Upper bound
	Default float64 // Default value
}

// ParamVector holds the set of all tunable hyperparameters.
type ParamVector struct {
	Specs []ParamSpec
}

// NewParamVector creates the standard set of tunable hyperparameters.
func NewParamVector() *ParamVector {
	return &ParamVector{
		Specs: []ParamSpec{
			// Connection weights
			{Name: "weight_mutate_rate", Min: 0.3, Max: 1.0, Default: 0.8},
			{Name: "weight_mutate_power", Min: 0.1, Max: 2.0, Default: 0.5},
			{Name: "weight_replace_rate", Min: 0.0, Max: 0.3, Default: 0.1},
			// Node bias
			{Name: "bias_mutate_rate", Min: 0.3, Max: 1.0, Default: 0.7},
			{Name: "bias_mutate_power", Min: 0.1, Max: 2.0, Default: 0.5},
			// Topology mutation
			{Name: "conn_add_prob", Min: 0.05, Max: 0.9, Default: 0.5},
			{Name: "conn_delete_prob", Min: 0.0, Max: 0.9, Default: 0.5},
			{Name: "node_add_prob", Min: 0.0, Max: 0.6, Default: 0.2},
			{Name: "node_delete_prob", Min: 0.0, Max: 0.6, Default: 0.2},
			// Speciation
			{Name: "compatibility_threshold", Min: 1.0, Max: 6.0, Default: 3.0},
			{Name: "compatibility_weight_coefficient", Min: 0.1, Max: 2.0, Default: 0.5},
			// Reproduction
			{Name: "survival_threshold", Min: 0.1, Max: 0.6, Default: 0.2},
		},
	}
}

// Dim returns the number of parameters.
func (pv *ParamVector) Dim() int {
	return len(pv.Specs)
}

// DefaultVector returns the default parameter values as a slice.
func (pv *ParamVector) DefaultVector() []float64 {
	v := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		v[i] = spec.Default
	}
	return v
}

// Normalize converts raw parameter values to [0,1] range.
func (pv *ParamVector) Normalize(raw []float64) []float64 {
	normalized := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		normalized[i] = (raw[i] - spec.Min) / (spec.Max - spec.Min)
	}
	return normalized
}

// Denormalize converts [0,1] values back to raw parameter values.
func (pv *ParamVector) Denormalize(normalized []float64) []float64 {
	raw := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		raw[i] = spec.Min + normalized[i]*(spec.Max-spec.Min)
	}
	return raw
}

// Clamp ensures all values are within bounds.
func (pv *ParamVector) Clamp(v []float64) []float64 {
	clamped := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		val := v[i]
		if val < spec.Min {
			val = spec.Min
		}
		if val > spec.Max {
			val = spec.Max
		}
		clamped[i] = val
	}
	return clamped
}

// ApplyToConfig applies parameter values to an engine config.
// Order must match Specs order.
func (pv *ParamVector) ApplyToConfig(cfg *neat.Config, values []float64) {
	clamped := pv.Clamp(values)

	i := 0
	cfg.Genome.WeightMutateRate = clamped[i]; i++
	cfg.Genome.WeightMutatePower = clamped[i]; i++
	cfg.Genome.WeightReplaceRate = clamped[i]; i++
	cfg.Genome.BiasMutateRate = clamped[i]; i++
	cfg.Genome.BiasMutatePower = clamped[i]; i++
	cfg.Genome.ConnAddProb = clamped[i]; i++
	cfg.Genome.ConnDeleteProb = clamped[i]; i++
	cfg.Genome.NodeAddProb = clamped[i]; i++
	cfg.Genome.NodeDeleteProb = clamped[i]; i++
	cfg.SpeciesSet.CompatibilityThreshold = clamped[i]; i++
	cfg.Genome.CompatibilityWeightCoefficient = clamped[i]; i++
	cfg.Reproduction.SurvivalThreshold = clamped[i]
}

// ExtractFromConfig extracts current parameter values from an engine config.
func (pv *ParamVector) ExtractFromConfig(cfg *neat.Config) []float64 {
	return []float64{
		cfg.Genome.WeightMutateRate,
		cfg.Genome.WeightMutatePower,
		cfg.Genome.WeightReplaceRate,
		cfg.Genome.BiasMutateRate,
		cfg.Genome.BiasMutatePower,
		cfg.Genome.ConnAddProb,
		cfg.Genome.ConnDeleteProb,
		cfg.Genome.NodeAddProb,
		cfg.Genome.NodeDeleteProb,
		cfg.SpeciesSet.CompatibilityThreshold,
		cfg.Genome.CompatibilityWeightCoefficient,
		cfg.Reproduction.SurvivalThreshold,
	}
}
