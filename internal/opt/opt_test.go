package opt

import (
	"math"
	"testing"
)

func TestOfRejectsNonFinite(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if Of(v).Valid() {
			t.Errorf("Of(%v) should be absent", v)
		}
	}
	if v, ok := Of(0).Get(); !ok || v != 0 {
		t.Errorf("Of(0) = %v,%v; want 0,true", v, ok)
	}
}

func TestZeroValueIsAbsent(t *testing.T) {
	var f Float
	if f.Valid() {
		t.Fatal("zero Float must be absent")
	}
	if f.String() != "" {
		t.Errorf("absent String() = %q, want empty", f.String())
	}
	if !math.IsNaN(f.NaN()) {
		t.Error("absent NaN() should be NaN")
	}
}

func TestLerp(t *testing.T) {
	tests := []struct {
		name string
		a, b Float
		t    float64
		want Float
	}{
		{"midpoint", Of(1), Of(3), 0.5, Of(2)},
		{"zero weight on missing hi", Of(1), None(), 0, Of(1)},
		{"zero weight on missing lo", None(), Of(4), 1, Of(4)},
		{"missing side with weight", Of(1), None(), 0.3, None()},
		{"extrapolate below", Of(1), Of(3), -0.5, Of(0)},
		{"extrapolate above", Of(1), Of(3), 1.5, Of(4)},
		{"extrapolate with missing side", Of(1), None(), -0.5, None()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Lerp(tt.a, tt.b, tt.t)
			if got != tt.want {
				t.Errorf("Lerp = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSumSkipsAbsent(t *testing.T) {
	var s Sum
	s.Add(Of(2), 3)
	s.Add(None(), 100)
	s.Add(Of(1), 1)
	if got, _ := s.Value().Get(); got != 7 {
		t.Errorf("sum = %v, want 7", got)
	}
	if s.Count() != 2 {
		t.Errorf("count = %d, want 2", s.Count())
	}

	var empty Sum
	empty.Add(None(), 1)
	if empty.Value().Valid() {
		t.Error("sum of only absent terms must be absent")
	}
}

func TestAdd(t *testing.T) {
	if got := Add(Of(0.01), Of(0.02)); !got.Valid() || math.Abs(got.Or(0)-0.03) > 1e-15 {
		t.Errorf("Add = %v", got)
	}
	if Add(Of(1), None()).Valid() {
		t.Error("Add with absent operand must be absent")
	}
}
