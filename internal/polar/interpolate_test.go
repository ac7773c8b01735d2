package polar

import (
	"math"
	"testing"

	"github.com/alexiusacademia/gowing/internal/opt"
)

const tol = 1e-12

func near(t *testing.T, name string, got opt.Float, want float64) {
	t.Helper()
	v, ok := got.Get()
	if !ok {
		t.Errorf("%s absent, want %v", name, want)
		return
	}
	if math.Abs(v-want) > tol {
		t.Errorf("%s = %v, want %v", name, v, want)
	}
}

// naca2412Table has three Reynolds numbers over alpha -5..15 with a simple
// linear lift curve that depends on Re.
func naca2412Table() *Table {
	var samples []Sample
	for _, re := range []float64{2e5, 5e5, 1e6} {
		for a := -5.0; a <= 15; a += 1 {
			cl := 0.25 + 0.1*a + re*1e-7
			cd := 0.01 + 0.0005*a*a
			cm := -0.05 - 0.001*a
			samples = append(samples, NewSample("naca2412", re, a, cl, cd, cm))
		}
	}
	return NewTable(samples)
}

func TestLookupExactSampleIsIdentity(t *testing.T) {
	tbl := naca2412Table()
	ip := NewInterpolator(tbl)
	for _, re := range tbl.Reynolds("naca2412") {
		for _, s := range tbl.AtReynolds("naca2412", re) {
			got := ip.Lookup("naca2412", s.Re, s.Alpha)
			if got.CL != s.CL || got.CD != s.CD || got.CM != s.CM {
				t.Fatalf("Lookup(%v, %v) = %+v, want sample %+v", s.Re, s.Alpha, got, s)
			}
		}
	}
}

func TestLookupClampsAlpha(t *testing.T) {
	ip := NewInterpolator(naca2412Table())
	high := ip.Lookup("naca2412", 5e5, 30)
	edge := ip.Lookup("naca2412", 5e5, 15)
	if high != edge {
		t.Errorf("alpha=30 gave %+v, want alpha=15 value %+v", high, edge)
	}
	low := ip.Lookup("naca2412", 5e5, -40)
	lowEdge := ip.Lookup("naca2412", 5e5, -5)
	if low != lowEdge {
		t.Errorf("alpha=-40 gave %+v, want alpha=-5 value %+v", low, lowEdge)
	}
}

func TestLookupExactReynoldsDoesNotBlend(t *testing.T) {
	tbl := naca2412Table()
	ip := NewInterpolator(tbl)
	got := ip.Lookup("naca2412", 5e5, 2.5)
	// Single-Re evaluation: midpoint of alpha 2 and 3 at Re=5e5.
	want := 0.25 + 0.1*2.5 + 5e5*1e-7
	near(t, "CL", got.CL, want)
}

func TestLookupMidpointScenario(t *testing.T) {
	tbl := NewTable([]Sample{
		NewSample("X", 2e5, 0, 0.5, 0.02, -0.05),
		NewSample("X", 2e5, 5, 0.9, 0.03, -0.06),
	})
	got := NewInterpolator(tbl).Lookup("X", 2e5, 2.5)
	near(t, "CL", got.CL, 0.7)
	near(t, "CD", got.CD, 0.025)
	near(t, "CM", got.CM, -0.055)
}

func TestLookupBlendsReynolds(t *testing.T) {
	ip := NewInterpolator(naca2412Table())
	got := ip.Lookup("naca2412", 3.5e5, 0)
	// Halfway between 2e5 and 5e5
	near(t, "CL", got.CL, 0.25+3.5e5*1e-7)
}

func TestLookupExtrapolatesReynolds(t *testing.T) {
	ip := NewInterpolator(naca2412Table())
	// CL is linear in Re, so extrapolation from the end pairs is exact
	near(t, "CL below", ip.Lookup("naca2412", 5e4, 0).CL, 0.25+5e4*1e-7)
	near(t, "CL above", ip.Lookup("naca2412", 2e6, 0).CL, 0.25+2e6*1e-7)

	tbl := NewTable([]Sample{
		NewSample("X", 2e5, 0, 0.40, 0.010, -0.05),
		NewSample("X", 5e5, 0, 0.70, 0.008, -0.05),
	})
	got := NewInterpolator(tbl).Lookup("X", 1.22e5, 0)
	if cl, _ := got.CL.Get(); math.Abs(cl-0.322) > 1e-9 {
		t.Errorf("CL at tip Re = %v, want 0.322", got.CL)
	}
	if cd, _ := got.CD.Get(); math.Abs(cd-0.01052) > 1e-9 {
		t.Errorf("CD at tip Re = %v, want 0.01052", got.CD)
	}
}

func TestLookupSingleReynolds(t *testing.T) {
	tbl := NewTable([]Sample{
		NewSample("X", 3e5, 0, 0.2, 0.01, 0),
		NewSample("X", 3e5, 4, 0.6, 0.02, 0),
	})
	got := NewInterpolator(tbl).Lookup("X", 9e5, 2)
	near(t, "CL", got.CL, 0.4)
}

func TestLookupNoData(t *testing.T) {
	ip := NewInterpolator(naca2412Table())
	if got := ip.Lookup("unknown", 2e5, 0); !got.Empty() {
		t.Errorf("unknown airfoil = %+v, want no data", got)
	}

	tbl := NewTable([]Sample{
		NewSample("Y", 2e5, 0, math.NaN(), math.NaN(), math.NaN()),
		NewSample("Y", 5e5, 0, math.NaN(), -1, math.NaN()),
	})
	if got := NewInterpolator(tbl).Lookup("Y", 3e5, 0); !got.Empty() {
		t.Errorf("all-invalid rows = %+v, want no data", got)
	}
}

func TestLookupSkipsMissingCoefficient(t *testing.T) {
	tbl := NewTable([]Sample{
		NewSample("Z", 2e5, 0, 0.2, 0.01, -0.02),
		NewSample("Z", 2e5, 2, math.NaN(), 0.012, -0.03),
		NewSample("Z", 2e5, 4, 0.6, 0.014, -0.04),
	})
	got := NewInterpolator(tbl).Lookup("Z", 2e5, 2)
	near(t, "CL", got.CL, 0.4)
	near(t, "CD", got.CD, 0.012)
}

func TestLookupPartialBracket(t *testing.T) {
	tbl := NewTable([]Sample{
		NewSample("W", 2e5, 0, 0.2, 0.01, 0),
		NewSample("W", 4e5, 0, math.NaN(), 0.02, 0),
	})
	got := NewInterpolator(tbl).Lookup("W", 3e5, 0)
	if got.CL.Valid() {
		t.Errorf("CL blended against a missing side: %v", got.CL)
	}
	near(t, "CD", got.CD, 0.015)
}
