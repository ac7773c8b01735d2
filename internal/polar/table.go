package polar

import (
	"sort"
)

// Table is an immutable index of section polars, grouped by airfoil and
// sorted by Reynolds number then alpha. Safe for concurrent readers.
type Table struct {
	airfoils map[string]*group
	names    []string

	n          int
	dropped    int
	duplicates int
}

type group struct {
	reynolds []float64            // sorted distinct Re
	byRe     map[float64][]Sample // sorted by alpha
}

type gridKey struct {
	re, alpha float64
}

// NewTable builds a table from an unordered sample stream. Repeated
// (airfoil, Re, alpha) keys keep the last sample seen; samples without a
// finite positive Re or a finite alpha are dropped.
func NewTable(samples []Sample) *Table {
	t := &Table{airfoils: make(map[string]*group)}

	latest := make(map[string]map[gridKey]Sample)
	for _, s := range samples {
		if !s.placeable() {
			t.dropped++
			continue
		}
		m, ok := latest[s.Airfoil]
		if !ok {
			m = make(map[gridKey]Sample)
			latest[s.Airfoil] = m
		}
		k := gridKey{s.Re, s.Alpha}
		if _, seen := m[k]; seen {
			t.duplicates++
		}
		m[k] = s
	}

	for name, m := range latest {
		g := &group{byRe: make(map[float64][]Sample)}
		for k, s := range m {
			g.byRe[k.re] = append(g.byRe[k.re], s)
		}
		for re, rows := range g.byRe {
			sort.Slice(rows, func(i, j int) bool { return rows[i].Alpha < rows[j].Alpha })
			g.reynolds = append(g.reynolds, re)
		}
		sort.Float64s(g.reynolds)
		t.airfoils[name] = g
		t.names = append(t.names, name)
		t.n += len(m)
	}
	sort.Strings(t.names)

	return t
}

// Airfoils returns the sorted airfoil names present in the table.
func (t *Table) Airfoils() []string {
	return append([]string(nil), t.names...)
}

// Has reports whether the airfoil has any samples.
func (t *Table) Has(airfoil string) bool {
	_, ok := t.airfoils[airfoil]
	return ok
}

// Reynolds returns the sorted distinct Reynolds numbers recorded for the
// airfoil, or nil if the airfoil is unknown.
func (t *Table) Reynolds(airfoil string) []float64 {
	g, ok := t.airfoils[airfoil]
	if !ok {
		return nil
	}
	return append([]float64(nil), g.reynolds...)
}

// AtReynolds returns the samples at exactly re, sorted by alpha.
func (t *Table) AtReynolds(airfoil string, re float64) []Sample {
	g, ok := t.airfoils[airfoil]
	if !ok {
		return nil
	}
	return append([]Sample(nil), g.byRe[re]...)
}

// Samples returns every stored sample sorted by airfoil, Re and alpha.
func (t *Table) Samples() []Sample {
	out := make([]Sample, 0, t.n)
	for _, name := range t.names {
		g := t.airfoils[name]
		for _, re := range g.reynolds {
			out = append(out, g.byRe[re]...)
		}
	}
	return out
}

// Len is the number of stored samples after deduplication.
func (t *Table) Len() int { return t.n }

// Dropped is the number of input samples that could not be placed.
func (t *Table) Dropped() int { return t.dropped }

// Duplicates is the number of input samples overwritten by a later one.
func (t *Table) Duplicates() int { return t.duplicates }

func (t *Table) group(airfoil string) *group {
	return t.airfoils[airfoil]
}
