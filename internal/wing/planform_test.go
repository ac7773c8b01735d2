package wing

import (
	"math"
	"testing"
)

func TestPlanformDerivedGeometry(t *testing.T) {
	p := Planform{Airfoil: "naca2412", Span: 2, RootChord: 0.3, Taper: 0.6}
	if got := p.TipChord(); math.Abs(got-0.18) > 1e-12 {
		t.Errorf("TipChord = %v, want 0.18", got)
	}
	if got := p.Area(); math.Abs(got-0.48) > 1e-12 {
		t.Errorf("Area = %v, want 0.48", got)
	}
	ar, ok := p.AspectRatio().Get()
	if !ok || math.Abs(ar-4/0.48) > 1e-12 {
		t.Errorf("AR = %v, want %v", ar, 4/0.48)
	}
}

func TestPlanformZeroSpanHasNoAspectRatio(t *testing.T) {
	p := Planform{Airfoil: "X", Span: 0, RootChord: 0.2, Taper: 1}
	if p.AspectRatio().Valid() {
		t.Error("AR of a zero-span wing must be absent")
	}
	if err := p.Validate(); err != nil {
		t.Errorf("degenerate span should still validate: %v", err)
	}
}

func TestPlanformValidate(t *testing.T) {
	tests := []struct {
		name string
		p    Planform
	}{
		{"no airfoil", Planform{Span: 1, RootChord: 0.2, Taper: 1}},
		{"negative span", Planform{Airfoil: "X", Span: -1, RootChord: 0.2, Taper: 1}},
		{"zero taper", Planform{Airfoil: "X", Span: 1, RootChord: 0.2, Taper: 0}},
		{"NaN twist", Planform{Airfoil: "X", Span: 1, RootChord: 0.2, Taper: 1, TwistTipDeg: math.NaN()}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.p.Validate(); err == nil {
				t.Error("Validate() = nil, want error")
			}
		})
	}
}
