package provider

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/alexiusacademia/gowing/internal/airfoil"
	"github.com/alexiusacademia/gowing/internal/polar"
)

// XFoil defaults
const (
	DefaultNCrit   = 9.0
	DefaultMaxIter = 200
	DefaultTimeout = 60 * time.Second

	polarFile = "polar.txt"
)

// XFoil runs an XFOIL executable once per (airfoil, Re) sweep. Each run
// accumulates converged points into a polar file which is then parsed.
type XFoil struct {
	// Path is the executable, looked up on PATH when bare
	Path        string
	Coordinates airfoil.Source
	Mach        float64
	NCrit       float64
	MaxIter     int
	Timeout     time.Duration
	Log         logrus.FieldLogger
}

// NewXFoil creates a backend with the usual transition and iteration settings.
func NewXFoil(path string, src airfoil.Source, log logrus.FieldLogger) *XFoil {
	if path == "" {
		path = "xfoil"
	}
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &XFoil{
		Path:        path,
		Coordinates: src,
		NCrit:       DefaultNCrit,
		MaxIter:     DefaultMaxIter,
		Timeout:     DefaultTimeout,
		Log:         log,
	}
}

// Polars implements SectionPolarProvider. A sweep with no converged point
// is retried once with a lower transition criterion and doubled iterations.
func (x *XFoil) Polars(ctx context.Context, name string, re float64, alphas []float64) ([]polar.Sample, error) {
	af, err := x.Coordinates.Coordinates(ctx, name)
	if err != nil {
		return nil, err
	}

	settings := xfoilSettings{ncrit: x.NCrit, iter: x.MaxIter, mach: x.Mach}
	samples, err := x.run(ctx, af, re, alphas, settings)
	if err == nil && len(samples) > 0 {
		return samples, nil
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	relaxed := settings
	relaxed.ncrit = max(7, settings.ncrit-1)
	relaxed.iter = max(100, settings.iter*2)
	x.Log.WithFields(logrus.Fields{
		"airfoil": name,
		"re":      re,
		"ncrit":   relaxed.ncrit,
		"iter":    relaxed.iter,
	}).Debug("retrying XFOIL sweep with relaxed settings")

	samples, err = x.run(ctx, af, re, alphas, relaxed)
	if err != nil {
		return nil, err
	}
	if len(samples) == 0 {
		return nil, fmt.Errorf("%s at Re=%.0f: %w", name, re, ErrNotConverged)
	}
	return samples, nil
}

type xfoilSettings struct {
	ncrit float64
	iter  int
	mach  float64
}

func (x *XFoil) run(ctx context.Context, af *airfoil.Airfoil, re float64, alphas []float64, s xfoilSettings) ([]polar.Sample, error) {
	dir, err := os.MkdirTemp("", "gowing-xfoil-")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(dir)

	f, err := os.Create(filepath.Join(dir, "airfoil.dat"))
	if err != nil {
		return nil, err
	}
	if err := airfoil.WriteDat(f, af); err != nil {
		f.Close()
		return nil, err
	}
	if err := f.Close(); err != nil {
		return nil, err
	}

	timeout := x.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(runCtx, x.Path)
	cmd.Dir = dir
	cmd.Stdin = strings.NewReader(Script("airfoil.dat", re, alphas, s.mach, s.ncrit, s.iter))
	var stderr bytes.Buffer
	cmd.Stdout = io.Discard
	cmd.Stderr = &stderr

	runErr := cmd.Run()
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	// XFOIL often exits non-zero after writing a usable polar file
	pf, err := os.Open(filepath.Join(dir, polarFile))
	if err != nil {
		if runErr != nil {
			return nil, fmt.Errorf("xfoil: %w: %s", runErr, strings.TrimSpace(stderr.String()))
		}
		return nil, fmt.Errorf("xfoil wrote no polar file: %w", ErrNotConverged)
	}
	defer pf.Close()

	return ParsePolar(pf, af.Name, re)
}

// Script builds the XFOIL command sequence for one viscous alpha sweep.
func Script(datFile string, re float64, alphas []float64, mach, ncrit float64, iter int) string {
	var b strings.Builder
	w := func(format string, args ...any) { fmt.Fprintf(&b, format+"\n", args...) }

	w("PLOP")
	w("G") // graphics off
	w("")
	w("LOAD %s", datFile)
	w("PANE")
	w("OPER")
	w("VPAR")
	w("N %g", ncrit)
	w("")
	w("VISC %g", re)
	w("MACH %g", mach)
	w("ITER %d", iter)
	w("PACC")
	w("%s", polarFile)
	w("") // no dump file
	for _, a := range alphas {
		w("ALFA %g", a)
	}
	w("PACC")
	w("")
	w("QUIT")
	return b.String()
}

// ParsePolar reads an XFOIL accumulated polar file. Rows follow the dashed
// separator line with columns alpha CL CD CDp CM ...
func ParsePolar(r io.Reader, name string, re float64) ([]polar.Sample, error) {
	sc := bufio.NewScanner(r)
	inTable := false
	var out []polar.Sample
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if !inTable {
			if strings.HasPrefix(line, "------") {
				inTable = true
			}
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 5 {
			continue
		}
		vals := make([]float64, 5)
		ok := true
		for i := 0; i < 5; i++ {
			v, err := strconv.ParseFloat(fields[i], 64)
			if err != nil {
				ok = false
				break
			}
			vals[i] = v
		}
		if !ok {
			continue
		}
		// alpha CL CD CDp CM
		out = append(out, polar.NewSample(name, re, vals[0], vals[1], vals[2], vals[4]))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if !inTable {
		return nil, errors.New("polar file has no data table")
	}
	return out, nil
}
