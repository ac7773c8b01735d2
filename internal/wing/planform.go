package wing

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gowing/internal/aero"
	"github.com/alexiusacademia/gowing/internal/opt"
)

// Planform is one trapezoidal wing geometry under test.
// Span is always the full tip-to-tip span; the half-wing is Span/2.
type Planform struct {
	Airfoil string `json:"airfoil"`

	// Geometry (m)
	Span      float64 `json:"span"`       // b - full span
	RootChord float64 `json:"root_chord"` // c_root
	Taper     float64 `json:"taper"`      // λ = c_tip / c_root

	// Angles (deg)
	DihedralDeg  float64 `json:"dihedral_deg"` // metadata only
	TwistRootDeg float64 `json:"twist_root_deg"`
	TwistTipDeg  float64 `json:"twist_tip_deg"`
}

// TipChord c_tip = λ·c_root
func (p Planform) TipChord() float64 {
	return p.RootChord * p.Taper
}

// SemiSpan is the half-wing length b/2.
func (p Planform) SemiSpan() float64 {
	return p.Span / 2
}

// Area is the planform area of both trapezoidal half-wings, S = b(c_root + c_tip)/2.
func (p Planform) Area() float64 {
	return p.Span * (p.RootChord + p.TipChord()) / 2
}

// AspectRatio AR = b²/S, absent for a degenerate area.
func (p Planform) AspectRatio() opt.Float {
	s := p.Area()
	if !(s > 0) {
		return opt.None()
	}
	return opt.Of(p.Span * p.Span / s)
}

// MeanAeroChord of the trapezoidal planform
func (p Planform) MeanAeroChord() opt.Float {
	return aero.MeanAerodynamicChord(p.RootChord, p.Taper)
}

// Validate rejects geometry that cannot be evaluated at all. Zero span or
// zero chord is degenerate but still valid; its coefficients come out absent.
func (p *Planform) Validate() error {
	if p.Airfoil == "" {
		return &ValidationError{"airfoil must be set"}
	}
	fields := []struct {
		name string
		v    float64
	}{
		{"span", p.Span},
		{"root chord", p.RootChord},
		{"dihedral", p.DihedralDeg},
		{"root twist", p.TwistRootDeg},
		{"tip twist", p.TwistTipDeg},
	}
	for _, f := range fields {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return &ValidationError{msg: fmt.Sprintf("%s must be finite", f.name)}
		}
	}
	if p.Span < 0 {
		return &ValidationError{"span must not be negative"}
	}
	if p.RootChord < 0 {
		return &ValidationError{"root chord must not be negative"}
	}
	if !(p.Taper > 0) || math.IsInf(p.Taper, 0) {
		return &ValidationError{"taper ratio must be positive"}
	}
	return nil
}

// ValidationError represents a planform validation error
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}
