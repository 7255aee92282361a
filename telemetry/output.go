package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/finchlab/neatbird/config"
)

// OutputManager handles structured run output with CSV logging.
type OutputManager struct {
	dir      string
	statFile *os.File

	headerWritten bool
}

// NewOutputManager creates a new output manager and initializes the output
// directory. Returns nil if dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	path := filepath.Join(dir, "generations.csv")
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating generations.csv: %w", err)
	}

	return &OutputManager{dir: dir, statFile: f}, nil
}

// WriteConfig saves the current configuration as YAML alongside the CSVs.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// WriteStats appends a generation record to generations.csv.
func (om *OutputManager) WriteStats(stats GenerationStats) error {
	if om == nil {
		return nil
	}

	records := []GenerationStats{stats}

	if !om.headerWritten {
		if err := gocsv.Marshal(records, om.statFile); err != nil {
			return fmt.Errorf("writing generation stats: %w", err)
		}
		om.headerWritten = true
		return nil
	}

	if err := gocsv.MarshalWithoutHeaders(records, om.statFile); err != nil {
		return fmt.Errorf("writing generation stats: %w", err)
	}
	return nil
}

// Close flushes and closes the output files.
func (om *OutputManager) Close() error {
	if om == nil || om.statFile == nil {
		return nil
	}
	err := om.statFile.Close()
	om.statFile = nil
	return err
}
