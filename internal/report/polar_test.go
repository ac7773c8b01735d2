package report

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alexiusacademia/gowing/internal/polar"
)

func TestReadPolarCSVTolerant(t *testing.T) {
	in := `Airfoil,Re,Alpha,CL,CD,CM
naca2412,200000,0,0.25,0.009,-0.05
naca2412,200000,1,nan,,-0.051
naca2412,200000,2,0.45,-0.001,abc
s1223,500000,0,1.1,0.02,-0.2
`
	got, err := ReadPolarCSV(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadPolarCSV: %v", err)
	}
	if len(got) != 4 {
		t.Fatalf("got %d rows, want 4", len(got))
	}

	if got[1].CL.Valid() || got[1].CD.Valid() || !got[1].CM.Valid() {
		t.Errorf("row 1 = %+v, want CL and CD absent", got[1])
	}
	if got[2].CD.Valid() {
		t.Error("non-positive CD should be absent")
	}
	if got[2].CM.Valid() {
		t.Error("unparsable CM should be absent")
	}
	if v, _ := got[3].CL.Get(); v != 1.1 || got[3].Re != 5e5 {
		t.Errorf("row 3 = %+v", got[3])
	}
}

func TestReadPolarCSVColumnOrder(t *testing.T) {
	in := "cm, cd, cl, alpha, re, airfoil\n-0.05,0.01,0.3,2,1e6,clarky\n"
	got, err := ReadPolarCSV(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadPolarCSV: %v", err)
	}
	s := got[0]
	if s.Airfoil != "clarky" || s.Re != 1e6 || s.Alpha != 2 {
		t.Errorf("key = %+v", s)
	}
	if v, _ := s.CL.Get(); v != 0.3 {
		t.Errorf("CL = %v, want 0.3", v)
	}
}

func TestReadPolarCSVErrors(t *testing.T) {
	if _, err := ReadPolarCSV(strings.NewReader("Airfoil,Alpha,CL\nx,0,0.1\n")); err == nil {
		t.Error("expected error for missing Re column")
	}
	got, err := ReadPolarCSV(strings.NewReader(""))
	if err != nil || got != nil {
		t.Errorf("empty input = %v, %v", got, err)
	}
}

func TestWritePolarCSVHeaderOnly(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePolarCSV(&buf, nil); err != nil {
		t.Fatalf("WritePolarCSV: %v", err)
	}
	if got := buf.String(); got != "Airfoil,Re,Alpha,CL,CD,CM\n" {
		t.Errorf("output = %q", got)
	}
}

func TestWritePolarCSVSorted(t *testing.T) {
	samples := []polar.Sample{
		polar.NewSample("b", 2e5, 0, 0.1, 0.01, 0),
		polar.NewSample("a", 5e5, 1, 0.2, 0.01, 0),
		polar.NewSample("a", 2e5, 3, 0.3, 0, -0.1),
		polar.NewSample("a", 2e5, -1, 0.4, 0.02, 0),
	}
	var buf bytes.Buffer
	if err := WritePolarCSV(&buf, samples); err != nil {
		t.Fatalf("WritePolarCSV: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	want := []string{
		"Airfoil,Re,Alpha,CL,CD,CM",
		"a,200000,-1,0.4,0.02,0",
		"a,200000,3,0.3,,-0.1",
		"a,500000,1,0.2,0.01,0",
		"b,200000,0,0.1,0.01,0",
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d:\n%s", len(lines), len(want), buf.String())
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestPolarCSVFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "polars.csv")
	samples := []polar.Sample{polar.NewSample("naca0012", 2e5, 4, 0.44, 0.011, 0)}
	if err := SavePolarCSV(path, samples); err != nil {
		t.Fatalf("SavePolarCSV: %v", err)
	}
	got, err := LoadPolarCSV(path)
	if err != nil {
		t.Fatalf("LoadPolarCSV: %v", err)
	}
	if len(got) != 1 || got[0] != samples[0] {
		t.Errorf("got %+v, want %+v", got, samples)
	}
}
