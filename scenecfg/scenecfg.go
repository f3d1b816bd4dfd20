// Package scenecfg loads scene-tuning presets from YAML and applies
// them to a simulator.Simulator, the ambient configuration layer
// gazed-vu exposes through typed setter methods rather than a config
// file of its own; here the setters already exist on Simulator, so
// this package is only the YAML-to-setter-calls translation.
package scenecfg

import (
	"fmt"
	"os"

	"github.com/lluisalemanypuig/physim/math/lin"
	"github.com/lluisalemanypuig/physim/simulator"
	"gopkg.in/yaml.v3"
)

// Config is a scene-tuning preset: everything a caller can set on a
// Simulator through its typed setters, expressed as plain YAML data.
type Config struct {
	TimeStep                 float32 `yaml:"time_step"`
	Solver                   string  `yaml:"solver"`
	Gravity                  *V3     `yaml:"gravity,omitempty"`
	ViscousDrag              float32 `yaml:"viscous_drag"`
	ParticleParticleEnabled  bool    `yaml:"particle_particle_collisions"`
}

// V3 is Config's YAML-friendly mirror of lin.V3 (yaml.v3 needs
// exported struct tags, and we don't want to tag the hot-path vector
// type used throughout the rest of the engine).
type V3 struct {
	X, Y, Z float32
}

func (v V3) toLin() lin.V3 { return lin.V3{X: v.X, Y: v.Y, Z: v.Z} }

// Load reads and parses a Config from a YAML file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenecfg: reading %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("scenecfg: parsing %s: %w", path, err)
	}
	return &cfg, nil
}

// solverByName maps a config's solver string onto simulator.Solver.
func solverByName(name string) (simulator.Solver, error) {
	switch name {
	case "", "euler-semi":
		return simulator.EulerSemi, nil
	case "euler-orig":
		return simulator.EulerOrig, nil
	case "verlet":
		return simulator.Verlet, nil
	default:
		return 0, fmt.Errorf("scenecfg: unknown solver %q", name)
	}
}

// Apply installs the preset onto sim via its typed setters. It is the
// sole point where YAML data reaches the simulator; sim itself knows
// nothing about configuration files.
func (c *Config) Apply(sim *simulator.Simulator) error {
	if c.TimeStep > 0 {
		if err := sim.SetTimeStep(c.TimeStep); err != nil {
			return err
		}
	}
	sv, err := solverByName(c.Solver)
	if err != nil {
		return err
	}
	sim.SetSolver(sv)

	if c.Gravity != nil {
		sim.SetGravity(c.Gravity.toLin())
	}
	sim.SetViscousDrag(c.ViscousDrag)
	sim.SetParticleParticleCollisions(c.ParticleParticleEnabled)
	return nil
}
