// Package config loads and saves simulation scenarios as YAML files.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/controlsim/internal/controllers"
	"github.com/san-kum/controlsim/internal/tf"
)

const (
	DefaultFinalTime = 10.0
	DefaultPoints    = 200
	DefaultKc        = 1.0
	DefaultTauI      = 1.0
)

type Config struct {
	System     SystemConfig     `yaml:"system"`
	Controller ControllerConfig `yaml:"controller"`
	Simulation SimulationConfig `yaml:"simulation"`
}

// SystemConfig describes the plant transfer function. Coefficients are
// listed highest power first.
type SystemConfig struct {
	Numerator   []float64 `yaml:"numerator"`
	Denominator []float64 `yaml:"denominator"`
	Delay       float64   `yaml:"delay"`
}

type ControllerConfig struct {
	Kind  string  `yaml:"kind"` // none, p, pi, pid
	Kc    float64 `yaml:"kc"`
	TauI  float64 `yaml:"tau_i"`
	TauD  float64 `yaml:"tau_d"`
	Alpha float64 `yaml:"alpha"`
}

type SimulationConfig struct {
	FinalTime float64 `yaml:"final_time"`
	Points    int     `yaml:"points"`
	Input     string  `yaml:"input"` // step or ramp
	Magnitude float64 `yaml:"magnitude"`
	Feedback  bool    `yaml:"feedback"`
}

func DefaultConfig() *Config {
	return &Config{
		System: SystemConfig{
			Numerator:   []float64{1},
			Denominator: []float64{1, 1},
		},
		Controller: ControllerConfig{
			Kind: "none",
			Kc:   DefaultKc,
			TauI: DefaultTauI,
		},
		Simulation: SimulationConfig{
			FinalTime: DefaultFinalTime,
			Points:    DefaultPoints,
			Input:     "step",
			Magnitude: 1,
		},
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

// Plant builds the plant transfer function from the system section.
func (c *Config) Plant() (tf.TransferFunction, error) {
	return tf.New(c.System.Numerator, c.System.Denominator, c.System.Delay)
}

// ControllerTF builds the controller transfer function, or the unit
// transfer function for kind "none".
func (c *Config) ControllerTF() (tf.TransferFunction, error) {
	switch c.Controller.Kind {
	case "", "none":
		return tf.Unit, nil
	case "p":
		return controllers.P{Kc: c.Controller.Kc}.TransferFunction()
	case "pi":
		return controllers.PI{Kc: c.Controller.Kc, TauI: c.Controller.TauI}.TransferFunction()
	case "pid":
		return controllers.PID{
			Kc:    c.Controller.Kc,
			TauI:  c.Controller.TauI,
			TauD:  c.Controller.TauD,
			Alpha: c.Controller.Alpha,
		}.TransferFunction()
	default:
		return tf.TransferFunction{}, fmt.Errorf("config: unknown controller kind %q", c.Controller.Kind)
	}
}

// InputTransform returns the Laplace transform of the configured input
// signal, e.g. magnitude/s for a step.
func (c *Config) InputTransform() (tf.TransferFunction, error) {
	m := c.Simulation.Magnitude
	if m == 0 {
		m = 1
	}
	switch c.Simulation.Input {
	case "", "step":
		return tf.New([]float64{m}, []float64{1, 0}, 0)
	case "ramp":
		return tf.New([]float64{m}, []float64{1, 0, 0}, 0)
	default:
		return tf.TransferFunction{}, fmt.Errorf("config: unknown input %q", c.Simulation.Input)
	}
}
