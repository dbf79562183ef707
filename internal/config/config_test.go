package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Tank.R1 <= cfg.Tank.R2 {
		t.Error("default r1 should exceed r2")
	}
	if cfg.Tank.VolumeLiters <= 0 {
		t.Error("default volume should be positive")
	}
	if cfg.Dt <= 0 {
		t.Error("default dt should be positive")
	}
	if cfg.Flow.Fluid != "water" {
		t.Errorf("default fluid: got %s", cfg.Flow.Fluid)
	}
	if cfg.Flow.DischargeCoefficient != 1.0 {
		t.Errorf("default cd: got %g", cfg.Flow.DischargeCoefficient)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "drain.yaml")

	want := &Config{
		Tank: TankConfig{R1: 0.2, R2: 0.12, VolumeLiters: 15, OutletDiameter: 0.02},
		Flow: FlowConfig{DischargeCoefficient: 0.65, Fluid: "olive_oil"},
		Dt:   0.02,
	}

	if err := Save(path, want); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if *got != *want {
		t.Errorf("round trip mismatch:\ngot  %+v\nwant %+v", got, want)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("reference")
	if cfg == nil {
		t.Fatal("expected reference preset")
	}
	if cfg.Tank.R1 != 0.15 || cfg.Tank.R2 != 0.10 {
		t.Errorf("reference geometry: got %+v", cfg.Tank)
	}

	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for unknown preset")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) == 0 {
		t.Fatal("expected presets")
	}

	found := false
	for _, name := range names {
		if name == "reference" {
			found = true
		}
	}
	if !found {
		t.Error("reference preset missing from listing")
	}
}
