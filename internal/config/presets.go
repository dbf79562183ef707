package config

import "sort"

var Presets = map[string]*Config{
	// The pinned regression scenario: height ~0.2010 m, drains in well
	// under the time cap.
	"reference": {
		Tank: TankConfig{R1: 0.15, R2: 0.10, VolumeLiters: 10, OutletDiameter: 0.01},
		Flow: FlowConfig{DischargeCoefficient: 1.0, Fluid: "water"},
		Dt:   0.05,
	},
	"garden_bucket": {
		Tank: TankConfig{R1: 0.18, R2: 0.13, VolumeLiters: 12, OutletDiameter: 0.012},
		Flow: FlowConfig{DischargeCoefficient: 0.8, Fluid: "water"},
		Dt:   0.05,
	},
	"oil_pan": {
		Tank: TankConfig{R1: 0.20, R2: 0.15, VolumeLiters: 8, OutletDiameter: 0.015},
		Flow: FlowConfig{DischargeCoefficient: 0.75, Fluid: "motor_oil"},
		Dt:   0.05,
	},
	"honey_jar": {
		Tank: TankConfig{R1: 0.06, R2: 0.04, VolumeLiters: 1, OutletDiameter: 0.008},
		Flow: FlowConfig{DischargeCoefficient: 0.6, Fluid: "honey"},
		Dt:   0.01,
	},
	// Vanishingly small outlet; runs into the safety cap.
	"slow_drip": {
		Tank: TankConfig{R1: 0.15, R2: 0.10, VolumeLiters: 10, OutletDiameter: 0.0005},
		Flow: FlowConfig{DischargeCoefficient: 0.9, Fluid: "water"},
		Dt:   0.5,
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
