package doe

import (
	"fmt"
	"math"
	"runtime"

	"github.com/alexiusacademia/gowing/internal/aero"
	"github.com/alexiusacademia/gowing/internal/wing"
)

// Sweep holds the parameter axes of the design of experiments.
// Spans are full spans (m); angles are in degrees.
type Sweep struct {
	Spans      []float64 `json:"spans"`
	RootChords []float64 `json:"root_chords"`
	Tapers     []float64 `json:"tapers"`
	Dihedrals  []float64 `json:"dihedrals"`
	TwistRoots []float64 `json:"twist_roots"`
	TwistTips  []float64 `json:"twist_tips"`
	TrimAlphas []float64 `json:"trim_alphas"`
}

// Size is the number of geometry/flight combinations per airfoil.
func (s Sweep) Size() int {
	return len(s.Spans) * len(s.RootChords) * len(s.Tapers) * len(s.Dihedrals) *
		len(s.TwistRoots) * len(s.TwistTips) * len(s.TrimAlphas)
}

// Config is the immutable input of a DOE run
type Config struct {
	Airfoils   []string
	Condition  aero.Condition
	Sweep      Sweep
	Stations   int
	Quadrature wing.Quadrature
	Workers    int // 0 means GOMAXPROCS
}

// DefaultConfig returns the baseline small UAV sweep.
func DefaultConfig() Config {
	return Config{
		Condition:  aero.SeaLevel(),
		Sweep:      Presets["baseline"].Sweep,
		Stations:   wing.DefaultStations,
		Quadrature: wing.UniformStrips,
	}
}

// Validate checks the configuration. Any error here is fatal for the run.
func (c *Config) Validate() error {
	if len(c.Airfoils) == 0 {
		return ErrNoAirfoils
	}
	for _, name := range c.Airfoils {
		if name == "" {
			return &ValidationError{"airfoil name must not be empty"}
		}
	}
	if err := c.Condition.Validate(); err != nil {
		return fmt.Errorf("flight condition: %w", err)
	}
	if c.Stations < 2 {
		return &ValidationError{msg: fmt.Sprintf("need at least 2 span stations, got %d", c.Stations)}
	}
	if c.Workers < 0 {
		return &ValidationError{"workers must not be negative"}
	}

	axes := []struct {
		name   string
		values []float64
	}{
		{"spans", c.Sweep.Spans},
		{"root_chords", c.Sweep.RootChords},
		{"tapers", c.Sweep.Tapers},
		{"dihedrals", c.Sweep.Dihedrals},
		{"twist_roots", c.Sweep.TwistRoots},
		{"twist_tips", c.Sweep.TwistTips},
		{"trim_alphas", c.Sweep.TrimAlphas},
	}
	for _, a := range axes {
		if len(a.values) == 0 {
			return &ValidationError{msg: fmt.Sprintf("sweep axis %s is empty", a.name)}
		}
		for _, v := range a.values {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return &ValidationError{msg: fmt.Sprintf("sweep axis %s has non-finite value", a.name)}
			}
		}
	}
	return nil
}

func (c *Config) workers() int {
	if c.Workers > 0 {
		return c.Workers
	}
	return runtime.GOMAXPROCS(0)
}

// ValidationError represents a DOE configuration error
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}
