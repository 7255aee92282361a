package telemetry

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestOutputManagerDisabled(t *testing.T) {
	om, err := NewOutputManager("")
	if err != nil {
		t.Fatalf("NewOutputManager(\"\") failed: %v", err)
	}
	if om != nil {
		t.Fatal("empty dir should disable output")
	}

	// All methods must be nil-safe
	if err := om.WriteStats(GenerationStats{}); err != nil {
		t.Errorf("WriteStats on nil manager: %v", err)
	}
	if err := om.Close(); err != nil {
		t.Errorf("Close on nil manager: %v", err)
	}
}

func TestOutputManagerWritesCSV(t *testing.T) {
	dir := t.TempDir()
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatalf("NewOutputManager failed: %v", err)
	}

	if err := om.WriteStats(GenerationStats{Generation: 1, Population: 50, BestFitness: 12.5}); err != nil {
		t.Fatalf("WriteStats failed: %v", err)
	}
	if err := om.WriteStats(GenerationStats{Generation: 2, Population: 50, BestFitness: 30.1}); err != nil {
		t.Fatalf("WriteStats failed: %v", err)
	}
	if err := om.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "generations.csv"))
	if err != nil {
		t.Fatalf("reading generations.csv: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("csv has %d lines, want header + 2 records", len(lines))
	}
	if !strings.Contains(lines[0], "generation") || !strings.Contains(lines[0], "best_fitness") {
		t.Errorf("header missing expected columns: %q", lines[0])
	}
	if strings.Contains(lines[2], "generation") {
		t.Error("header repeated on second record")
	}
}
