package wing

import (
	"github.com/alexiusacademia/gowing/internal/aero"
	"github.com/alexiusacademia/gowing/internal/opt"
	"github.com/alexiusacademia/gowing/internal/polar"
)

// SectionLookup is the section-polar query the integrator depends on.
// *polar.Interpolator satisfies it.
type SectionLookup interface {
	Lookup(airfoil string, re, alpha float64) polar.Coefficients
}

// Point is one integrated finite-wing result
type Point struct {
	Planform

	// Derived geometry
	TipChord    float64   // c_tip (m)
	Area        float64   // S (m²)
	AspectRatio opt.Float // AR

	// Flight condition
	AlphaTrimDeg float64 // Aircraft angle of attack (deg)
	Velocity     float64 // V (m/s)
	Rho          float64 // ρ (kg/m³)
	Mu           float64 // μ (Pa·s)

	// Coefficients
	CL  opt.Float
	CDp opt.Float // Parasite (section) drag
	CDi opt.Float // Induced drag
	CD  opt.Float // CDp + CDi
	Cm  opt.Float

	Lift opt.Float // Dimensional lift (N)
}

// Complete reports whether every coefficient is present.
func (pt Point) Complete() bool {
	return pt.CL.Valid() && pt.CDp.Valid() && pt.CDi.Valid() && pt.CD.Valid() && pt.Cm.Valid()
}

// StationLoad is the section result at one station
type StationLoad struct {
	Station
	AlphaDeg float64 // Effective local angle of attack (deg)
	polar.Coefficients
	LiftPerSpan opt.Float // q·c·cl (N/m)
}

// Result bundles the wing point with its spanwise distribution
type Result struct {
	Point
	Efficiency      opt.Float // Oswald span efficiency e
	Loads           []StationLoad
	MissingStations int // stations with no section data at all
}

// Integrator computes strip-theory wing polars against a section lookup
type Integrator struct {
	Sections   SectionLookup
	Condition  aero.Condition
	Stations   int
	Quadrature Quadrature
}

// NewIntegrator creates an integrator with the default station count and
// uniform strips.
func NewIntegrator(sections SectionLookup, cond aero.Condition) *Integrator {
	return &Integrator{
		Sections:   sections,
		Condition:  cond,
		Stations:   DefaultStations,
		Quadrature: UniformStrips,
	}
}

// Integrate evaluates the planform at the trim angle of attack (deg).
//
// Each station sees alpha = trim + local twist. Stations without data are
// skipped coefficient by coefficient; a coefficient with no contributing
// station, or whose reference quantity is degenerate, is absent.
func (ig *Integrator) Integrate(p Planform, alphaTrimDeg float64) *Result {
	q := ig.Condition.DynamicPressure()
	stations := Discretize(p, ig.Condition, ig.Stations, ig.Quadrature)

	res := &Result{
		Point: Point{
			Planform:     p,
			TipChord:     p.TipChord(),
			Area:         p.Area(),
			AspectRatio:  p.AspectRatio(),
			AlphaTrimDeg: alphaTrimDeg,
			Velocity:     ig.Condition.Velocity,
			Rho:          ig.Condition.Rho,
			Mu:           ig.Condition.Mu,
		},
		Loads: make([]StationLoad, len(stations)),
	}

	// Half-wing sums of force and moment
	var lift, drag, moment opt.Sum
	for i, st := range stations {
		alpha := alphaTrimDeg + st.TwistDeg
		c := ig.Sections.Lookup(p.Airfoil, st.Re, alpha)
		if c.Empty() {
			res.MissingStations++
		}

		dS := st.Chord * st.Width
		lift.Add(c.CL, q*dS)
		drag.Add(c.CD, q*dS)
		moment.Add(c.CM, q*dS*st.Chord)

		load := StationLoad{Station: st, AlphaDeg: alpha, Coefficients: c}
		if cl, ok := c.CL.Get(); ok {
			load.LiftPerSpan = opt.Of(q * st.Chord * cl)
		}
		res.Loads[i] = load
	}

	// Symmetric wing
	L := scale(lift.Value(), 2)
	Dp := scale(drag.Value(), 2)
	M := scale(moment.Value(), 2)

	qS := q * res.Area
	res.Lift = L
	res.CL = divide(L, qS)
	res.CDp = divide(Dp, qS)

	res.Efficiency = aero.OswaldEfficiency(res.AspectRatio)
	res.CDi = aero.InducedDrag(res.CL, res.AspectRatio, res.Efficiency)
	res.CD = opt.Add(res.CDp, res.CDi)

	if mac, ok := p.MeanAeroChord().Get(); ok {
		res.Cm = divide(M, qS*mac)
	}

	return res
}

func scale(v opt.Float, k float64) opt.Float {
	x, ok := v.Get()
	if !ok {
		return opt.None()
	}
	return opt.Of(x * k)
}

// divide returns v/d, absent when d is not a positive finite divisor.
func divide(v opt.Float, d float64) opt.Float {
	x, ok := v.Get()
	if !ok || !(d > 0) {
		return opt.None()
	}
	return opt.Of(x / d)
}
