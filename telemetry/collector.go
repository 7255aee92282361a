// Package telemetry collects per-episode events and per-generation fitness
// statistics and writes them as CSV.
package telemetry

import "github.com/finchlab/neatbird/components"

// Collector accumulates events within one episode and produces
// GenerationStats at episode end.
type Collector struct {
	flaps         int
	pipesCleared  int
	deathsPipe    int
	deathsGround  int
	deathsCeiling int
}

// NewCollector creates an empty episode collector.
func NewCollector() *Collector {
	return &Collector{}
}

// RecordFlap records one flap action.
func (c *Collector) RecordFlap() {
	c.flaps++
}

// RecordPipeCleared records a bird set passing a pipe.
func (c *Collector) RecordPipeCleared() {
	c.pipesCleared++
}

// RecordDeath records a bird death by cause.
func (c *Collector) RecordDeath(cause components.DeathCause) {
	switch cause {
	case components.CausePipe:
		c.deathsPipe++
	case components.CauseGround:
		c.deathsGround++
	case components.CauseCeiling:
		c.deathsCeiling++
	}
}

// Reset clears all counters for the next episode.
func (c *Collector) Reset() {
	*c = Collector{}
}

// Flush fills the event fields of a GenerationStats and resets the
// collector. Fitness fields are filled separately from the population.
func (c *Collector) Flush(stats *GenerationStats) {
	stats.Flaps = c.flaps
	stats.PipesCleared = c.pipesCleared
	stats.DeathsPipe = c.deathsPipe
	stats.DeathsGround = c.deathsGround
	stats.DeathsCeiling = c.deathsCeiling
	c.Reset()
}
