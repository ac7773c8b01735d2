// Package report reads and writes polar and wing result tables.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/alexiusacademia/gowing/internal/opt"
	"github.com/alexiusacademia/gowing/internal/polar"
)

// PolarHeader is the column layout of a section polar CSV.
var PolarHeader = []string{"Airfoil", "Re", "Alpha", "CL", "CD", "CM"}

// ReadPolarCSV reads section polar rows. Columns are matched by header name
// in any order. Empty, NaN or unparsable cells become absent coefficients and
// a non-positive CD is absent; rows are never rejected here.
func ReadPolarCSV(r io.Reader) ([]polar.Sample, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read polar header: %w", err)
	}

	col := make(map[string]int, len(header))
	for i, h := range header {
		col[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, req := range []string{"airfoil", "re", "alpha"} {
		if _, ok := col[req]; !ok {
			return nil, fmt.Errorf("polar CSV has no %q column", req)
		}
	}

	cell := func(rec []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	var out []polar.Sample
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return out, fmt.Errorf("read polar row: %w", err)
		}
		name := cell(rec, "airfoil")
		if name == "" {
			continue
		}
		out = append(out, polar.NewSample(
			name,
			parseCell(cell(rec, "re")),
			parseCell(cell(rec, "alpha")),
			parseCell(cell(rec, "cl")),
			parseCell(cell(rec, "cd")),
			parseCell(cell(rec, "cm")),
		))
	}
	return out, nil
}

// parseCell returns NaN for anything that is not a number.
func parseCell(s string) float64 {
	if s == "" {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// WritePolarCSV writes the header and the samples sorted by airfoil, Re and
// alpha. The header is written even when there are no samples.
func WritePolarCSV(w io.Writer, samples []polar.Sample) error {
	sorted := make([]polar.Sample, len(samples))
	copy(sorted, samples)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Airfoil != b.Airfoil {
			return a.Airfoil < b.Airfoil
		}
		if a.Re != b.Re {
			return a.Re < b.Re
		}
		return a.Alpha < b.Alpha
	})

	cw := csv.NewWriter(w)
	if err := cw.Write(PolarHeader); err != nil {
		return err
	}
	for _, s := range sorted {
		rec := []string{
			s.Airfoil,
			formatFloat(s.Re),
			formatFloat(s.Alpha),
			s.CL.String(),
			s.CD.String(),
			s.CM.String(),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// LoadPolarCSV reads a polar CSV file.
func LoadPolarCSV(path string) ([]polar.Sample, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	samples, err := ReadPolarCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return samples, nil
}

// SavePolarCSV writes a polar CSV file.
func SavePolarCSV(path string, samples []polar.Sample) error {
	return writeFile(path, func(w io.Writer) error { return WritePolarCSV(w, samples) })
}

func formatFloat(v float64) string {
	return opt.Of(v).String()
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
