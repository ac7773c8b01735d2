package provider

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/alexiusacademia/gowing/internal/airfoil"
)

const samplePolar = `
       XFOIL         Version 6.99

 Calculated polar for: NACA 2412

 1 1 Reynolds number fixed          Mach number fixed

 xtrf =   1.000 (top)        1.000 (bottom)
 Mach =   0.000     Re =     0.200 e 6     Ncrit =   9.000

   alpha    CL        CD       CDp       CM     Top_Xtr  Bot_Xtr
  ------ -------- --------- --------- -------- -------- --------
  -2.000  -0.0042   0.00921   0.00312  -0.0521   0.8012   0.2113
   0.000   0.2341   0.00887   0.00290  -0.0538   0.7321   0.5982
   2.000   0.4687   0.00950   0.00334  -0.0550   0.6123   0.9011
`

func TestParsePolar(t *testing.T) {
	got, err := ParsePolar(strings.NewReader(samplePolar), "naca2412", 2e5)
	if err != nil {
		t.Fatalf("ParsePolar: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d rows, want 3", len(got))
	}
	s := got[1]
	if s.Airfoil != "naca2412" || s.Re != 2e5 || s.Alpha != 0 {
		t.Errorf("row key = %+v", s)
	}
	if v, _ := s.CL.Get(); v != 0.2341 {
		t.Errorf("CL = %v, want 0.2341", v)
	}
	if v, _ := s.CD.Get(); v != 0.00887 {
		t.Errorf("CD = %v, want 0.00887", v)
	}
	if v, _ := s.CM.Get(); v != -0.0538 {
		t.Errorf("CM = %v, want -0.0538 (CDp column must be skipped)", v)
	}
}

func TestParsePolarWithoutTable(t *testing.T) {
	if _, err := ParsePolar(strings.NewReader("garbage\n"), "x", 1e5); err == nil {
		t.Error("expected error for file without a table")
	}
}

func TestScript(t *testing.T) {
	s := Script("airfoil.dat", 2e5, []float64{-1, 0.5}, 0, 9, 200)
	for _, want := range []string{"LOAD airfoil.dat", "VISC 200000", "N 9", "ITER 200", "ALFA -1", "ALFA 0.5", "PACC\npolar.txt\n", "QUIT"} {
		if !strings.Contains(s, want) {
			t.Errorf("script missing %q:\n%s", want, s)
		}
	}
}

func fakeXFoil(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script stand-in needs a POSIX shell")
	}
	path := filepath.Join(t.TempDir(), "xfoil")
	script := "#!/bin/sh\ncat > /dev/null\n" + body
	if err := os.WriteFile(path, []byte(script), 0755); err != nil {
		t.Fatal(err)
	}
	return path
}

func coordDir(t *testing.T) airfoil.Dir {
	t.Helper()
	dir := t.TempDir()
	dat := "NACA 2412\n 1.0 0.0013\n 0.5 0.06\n 0.0 0.0\n 0.5 -0.04\n 1.0 -0.0013\n"
	if err := os.WriteFile(filepath.Join(dir, "naca2412.dat"), []byte(dat), 0644); err != nil {
		t.Fatal(err)
	}
	return airfoil.Dir(dir)
}

func TestXFoilRunsExecutable(t *testing.T) {
	exe := fakeXFoil(t, "cat > polar.txt <<'EOF'\n"+samplePolar+"EOF\n")
	x := NewXFoil(exe, coordDir(t), nil)

	got, err := x.Polars(context.Background(), "naca2412", 2e5, []float64{-2, 0, 2})
	if err != nil {
		t.Fatalf("Polars: %v", err)
	}
	if len(got) != 3 {
		t.Errorf("got %d samples, want 3", len(got))
	}
}

func TestXFoilNoConvergence(t *testing.T) {
	exe := fakeXFoil(t, "exit 1\n")
	x := NewXFoil(exe, coordDir(t), nil)

	_, err := x.Polars(context.Background(), "naca2412", 2e5, []float64{0})
	if err == nil {
		t.Fatal("expected error when no polar file is written")
	}
}

func TestXFoilMissingCoordinates(t *testing.T) {
	x := NewXFoil("xfoil", coordDir(t), nil)
	if _, err := x.Polars(context.Background(), "unknown", 2e5, []float64{0}); !errors.Is(err, airfoil.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}
