package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}

	if cfg.Screen.Width != 600 || cfg.Screen.Height != 800 {
		t.Errorf("screen = %dx%d, want 600x800", cfg.Screen.Width, cfg.Screen.Height)
	}
	if cfg.Pipes.Gap != 165 {
		t.Errorf("pipe gap = %v, want 165", cfg.Pipes.Gap)
	}
	if cfg.Fitness.SurvivalReward <= 0 || cfg.Fitness.PipeReward <= 0 {
		t.Error("fitness rewards must be positive (reward-only schedule)")
	}
}

func TestLoadDerived(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Derived.GroundY != float64(cfg.Screen.Height) {
		t.Errorf("GroundY = %v, want %v", cfg.Derived.GroundY, cfg.Screen.Height)
	}

	wantMax := float64(cfg.Screen.Height) - cfg.Pipes.MarginBottom - cfg.Pipes.Gap
	if cfg.Derived.GapTopMax != wantMax {
		t.Errorf("GapTopMax = %v, want %v", cfg.Derived.GapTopMax, wantMax)
	}
	if cfg.Derived.GapTopMin >= cfg.Derived.GapTopMax {
		t.Errorf("gap-top range empty: [%v, %v]", cfg.Derived.GapTopMin, cfg.Derived.GapTopMax)
	}
	if cfg.Derived.NumInputs != 4 || cfg.Derived.NumOutputs != 1 {
		t.Errorf("sensor dims = %d/%d, want 4/1", cfg.Derived.NumInputs, cfg.Derived.NumOutputs)
	}
}

func TestLoadOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "override.yaml")
	data := []byte("pipes:\n  gap: 200\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%q) failed: %v", path, err)
	}

	if cfg.Pipes.Gap != 200 {
		t.Errorf("pipe gap = %v, want 200 (overridden)", cfg.Pipes.Gap)
	}
	// Untouched keys keep defaults
	if cfg.Pipes.Width != 150 {
		t.Errorf("pipe width = %v, want 150 (default)", cfg.Pipes.Width)
	}
}

func TestLoadRejectsImpossibleLayout(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	// Margins plus gap exceed the screen height
	data := []byte("pipes:\n  margin_top: 700\n  margin_bottom: 200\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected error for layout with no valid gap placement")
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML failed: %v", err)
	}

	reloaded, err := Load(path)
	if err != nil {
		t.Fatalf("reloading written config failed: %v", err)
	}
	if reloaded.Pipes.Gap != cfg.Pipes.Gap || reloaded.Screen.Width != cfg.Screen.Width {
		t.Error("written config did not round-trip")
	}
}
