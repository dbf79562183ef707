package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultDt             = 0.05
	DefaultR1             = 0.15
	DefaultR2             = 0.10
	DefaultVolumeLiters   = 10.0
	DefaultOutletDiameter = 0.01
	DefaultCd             = 1.0
	DefaultFluid          = "water"
)

type Config struct {
	Tank TankConfig `yaml:"tank"`
	Flow FlowConfig `yaml:"flow"`
	Dt   float64    `yaml:"dt"`
}

type TankConfig struct {
	R1             float64 `yaml:"r1"`
	R2             float64 `yaml:"r2"`
	VolumeLiters   float64 `yaml:"volume_liters"`
	OutletDiameter float64 `yaml:"outlet_diameter"`
}

type FlowConfig struct {
	DischargeCoefficient float64 `yaml:"discharge_coefficient"`
	Fluid                string  `yaml:"fluid"`
}

func DefaultConfig() *Config {
	return &Config{
		Tank: TankConfig{
			R1:             DefaultR1,
			R2:             DefaultR2,
			VolumeLiters:   DefaultVolumeLiters,
			OutletDiameter: DefaultOutletDiameter,
		},
		Flow: FlowConfig{
			DischargeCoefficient: DefaultCd,
			Fluid:                DefaultFluid,
		},
		Dt: DefaultDt,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
