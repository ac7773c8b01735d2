package airfoil

import (
	"math"
	"testing"
)

func diamond() *Airfoil {
	return &Airfoil{Name: "diamond", Points: []Point{
		{X: 1, Y: 0}, {X: 0.5, Y: 0.05}, {X: 0, Y: 0}, {X: 0.5, Y: -0.05},
	}}
}

func TestProperties(t *testing.T) {
	s := diamond().Properties()
	if math.Abs(s.Area-0.05) > 1e-12 {
		t.Errorf("Area = %v, want 0.05", s.Area)
	}
	if math.Abs(s.CentroidX-0.5) > 1e-12 || math.Abs(s.CentroidY) > 1e-12 {
		t.Errorf("centroid = (%v, %v), want (0.5, 0)", s.CentroidX, s.CentroidY)
	}
	if math.Abs(s.MaxThickness-0.1) > 1e-12 || s.MaxThicknessAt != 0.5 {
		t.Errorf("max thickness %v at %v, want 0.1 at 0.5", s.MaxThickness, s.MaxThicknessAt)
	}
}

func TestThicknessAt(t *testing.T) {
	af := diamond()
	tests := []struct {
		x, want float64
	}{
		{0.25, 0.05},
		{0.75, 0.05},
		{1.5, 0},
		{-0.1, 0},
	}
	for _, tt := range tests {
		if got := af.ThicknessAt(tt.x); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("ThicknessAt(%v) = %v, want %v", tt.x, got, tt.want)
		}
	}
}

func TestCamberDoesNotInflateThickness(t *testing.T) {
	// thin arc: y extent is large, thickness is not
	af := &Airfoil{Points: []Point{
		{X: 1, Y: 0}, {X: 0.5, Y: 0.11}, {X: 0, Y: 0}, {X: 0.5, Y: 0.09},
	}}
	if got := af.MaxThickness(); math.Abs(got-0.02) > 1e-12 {
		t.Errorf("MaxThickness = %v, want 0.02", got)
	}
}

func TestPropertiesDegenerate(t *testing.T) {
	af := &Airfoil{Points: []Point{{X: 0, Y: 0}, {X: 1, Y: 0}}}
	if s := af.Properties(); s != (Section{}) {
		t.Errorf("two-point loop = %+v, want zero", s)
	}
}
