package aero

import (
	"math"

	"github.com/alexiusacademia/gowing/internal/opt"
)

// Sea-level flight condition defaults

const (
	// Standard atmosphere at sea level
	RhoSeaLevel = 1.225   // kg/m³
	MuSeaLevel  = 1.81e-5 // Pa·s

	// Default freestream velocity for small UAV sweeps
	DefaultVelocity = 20.0 // m/s

	// Oswald efficiency correlation bounds
	OswaldFloor = 0.65
)

// Condition is the ambient flight condition shared by every station.
type Condition struct {
	Rho      float64 // Air density (kg/m³)
	Mu       float64 // Dynamic viscosity (Pa·s)
	Velocity float64 // Freestream velocity (m/s)
}

// SeaLevel returns the default flight condition.
func SeaLevel() Condition {
	return Condition{Rho: RhoSeaLevel, Mu: MuSeaLevel, Velocity: DefaultVelocity}
}

// DynamicPressure q = ½ρV²
func (c Condition) DynamicPressure() float64 {
	return 0.5 * c.Rho * c.Velocity * c.Velocity
}

// Reynolds returns the chord-based Reynolds number ρVc/μ.
func (c Condition) Reynolds(chord float64) float64 {
	if c.Mu <= 0 {
		return math.Inf(1)
	}
	return c.Rho * c.Velocity * chord / c.Mu
}

// Validate checks that the condition is physical.
func (c Condition) Validate() error {
	switch {
	case !(c.Rho > 0) || math.IsInf(c.Rho, 0):
		return &ValidationError{"air density must be positive"}
	case !(c.Mu > 0) || math.IsInf(c.Mu, 0):
		return &ValidationError{"dynamic viscosity must be positive"}
	case !(c.Velocity > 0) || math.IsInf(c.Velocity, 0):
		return &ValidationError{"velocity must be positive"}
	}
	return nil
}

// OswaldEfficiency estimates the span efficiency factor from aspect ratio
// e = max(0.65, 1.78(1 - 0.045·AR^0.68) - 0.64)
func OswaldEfficiency(ar opt.Float) opt.Float {
	a, ok := ar.Get()
	if !ok || a <= 0 {
		return opt.None()
	}
	e := 1.78*(1-0.045*math.Pow(a, 0.68)) - 0.64
	return opt.Of(math.Max(e, OswaldFloor))
}

// InducedDrag returns CDi = CL²/(π·AR·e).
func InducedDrag(cl, ar, e opt.Float) opt.Float {
	c, okCL := cl.Get()
	a, okAR := ar.Get()
	ee, okE := e.Get()
	if !okCL || !okAR || !okE || a <= 0 || ee <= 0 {
		return opt.None()
	}
	return opt.Of(c * c / (math.Pi * a * ee))
}

// MeanAerodynamicChord of a trapezoidal wing
// MAC = 2/3·c_root·(1 + λ + λ²)/(1 + λ)
func MeanAerodynamicChord(rootChord, taper float64) opt.Float {
	if 1+taper == 0 {
		return opt.None()
	}
	mac := (2.0 / 3.0) * rootChord * (1 + taper + taper*taper) / (1 + taper)
	if !(mac > 0) {
		return opt.None()
	}
	return opt.Of(mac)
}

// ValidationError represents an invalid flight condition
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}
