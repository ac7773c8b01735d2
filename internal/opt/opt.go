// Package opt provides an explicit optional float used wherever a numeric
// result may be missing. Absence is carried as a flag, never as NaN.
package opt

import (
	"math"
	"strconv"
)

// Float is a float64 that may be absent. The zero value is absent.
type Float struct {
	v  float64
	ok bool
}

// Of wraps v. NaN and infinities are treated as absent.
func Of(v float64) Float {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Float{}
	}
	return Float{v: v, ok: true}
}

// None returns an absent value.
func None() Float { return Float{} }

// Get returns the value and whether it is present.
func (f Float) Get() (float64, bool) { return f.v, f.ok }

// Valid reports whether the value is present.
func (f Float) Valid() bool { return f.ok }

// Or returns the value, or def when absent.
func (f Float) Or(def float64) float64 {
	if !f.ok {
		return def
	}
	return f.v
}

// NaN returns the value, or NaN when absent. Only for plotting and
// serialisation boundaries.
func (f Float) NaN() float64 { return f.Or(math.NaN()) }

// String formats the value with the shortest representation, or "" when absent.
func (f Float) String() string {
	if !f.ok {
		return ""
	}
	return strconv.FormatFloat(f.v, 'g', -1, 64)
}

// Add returns a+b when both are present.
func Add(a, b Float) Float {
	if !a.ok || !b.ok {
		return Float{}
	}
	return Of(a.v + b.v)
}

// Lerp blends a and b with weight t, extrapolating linearly outside [0,1].
// A side whose weight is exactly zero is not required to be present.
func Lerp(a, b Float, t float64) Float {
	switch {
	case t == 0:
		return a
	case t == 1:
		return b
	case !a.ok || !b.ok:
		return Float{}
	}
	return Of((1-t)*a.v + t*b.v)
}

// Sum accumulates present values and remembers whether any was seen.
type Sum struct {
	total float64
	n     int
}

// Add adds v to the sum when present.
func (s *Sum) Add(v Float, weight float64) {
	if !v.ok {
		return
	}
	s.total += v.v * weight
	s.n++
}

// Count is the number of present terms added.
func (s *Sum) Count() int { return s.n }

// Value is the sum, absent when no term was present.
func (s *Sum) Value() Float {
	if s.n == 0 {
		return Float{}
	}
	return Of(s.total)
}
