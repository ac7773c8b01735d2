package provider

import (
	"context"
	"fmt"
	"math"

	"github.com/alexiusacademia/gowing/internal/polar"
)

// Table serves previously solved polars, typically loaded from a CSV file.
type Table struct {
	table *polar.Table
}

// NewTable wraps an existing sample set.
func NewTable(samples []polar.Sample) *Table {
	return &Table{table: polar.NewTable(samples)}
}

// Polars implements SectionPolarProvider. The Reynolds number must match a
// recorded value to within 0.1 %; alphas match to 1e-6 deg. A nil alpha
// slice returns the whole recorded sweep.
func (t *Table) Polars(_ context.Context, airfoil string, re float64, alphas []float64) ([]polar.Sample, error) {
	var recorded float64
	found := false
	for _, r := range t.table.Reynolds(airfoil) {
		if math.Abs(r-re) <= 1e-3*re {
			recorded, found = r, true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("%s at Re=%.0f: %w", airfoil, re, ErrNotConverged)
	}

	rows := t.table.AtReynolds(airfoil, recorded)
	if alphas == nil {
		return rows, nil
	}
	var out []polar.Sample
	for _, a := range alphas {
		for _, s := range rows {
			if math.Abs(s.Alpha-a) < 1e-6 {
				out = append(out, s)
				break
			}
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%s at Re=%.0f: %w", airfoil, re, ErrNotConverged)
	}
	return out, nil
}
