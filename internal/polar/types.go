package polar

import (
	"math"

	"github.com/alexiusacademia/gowing/internal/opt"
)

// Sample is one solved section-polar point
type Sample struct {
	Airfoil string  `json:"airfoil"`
	Re      float64 `json:"re"`    // Reynolds number
	Alpha   float64 `json:"alpha"` // Angle of attack (deg)

	CL opt.Float `json:"-"`
	CD opt.Float `json:"-"`
	CM opt.Float `json:"-"`
}

// NewSample builds a sample from raw solver output. NaN coefficients and a
// non-positive CD are recorded as absent.
func NewSample(airfoil string, re, alpha, cl, cd, cm float64) Sample {
	s := Sample{
		Airfoil: airfoil,
		Re:      re,
		Alpha:   alpha,
		CL:      opt.Of(cl),
		CM:      opt.Of(cm),
	}
	if cd > 0 {
		s.CD = opt.Of(cd)
	}
	return s
}

// placeable reports whether the sample can sit on the (Re, alpha) grid.
func (s Sample) placeable() bool {
	return s.Re > 0 && !math.IsInf(s.Re, 0) &&
		!math.IsNaN(s.Alpha) && !math.IsInf(s.Alpha, 0)
}

// Coefficients holds an interpolated (CL, CD, CM) triple
type Coefficients struct {
	CL opt.Float
	CD opt.Float
	CM opt.Float
}

// Empty reports whether no coefficient is present.
func (c Coefficients) Empty() bool {
	return !c.CL.Valid() && !c.CD.Valid() && !c.CM.Valid()
}
