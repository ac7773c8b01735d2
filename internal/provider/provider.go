// Package provider produces section polars from external backends.
package provider

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/alexiusacademia/gowing/internal/polar"
)

// ErrNotConverged is returned when a backend produced no usable point.
var ErrNotConverged = errors.New("solver did not converge")

// SectionPolarProvider solves one airfoil at one Reynolds number over an
// alpha sweep (deg). Alphas that fail to converge are left out of the
// result; an error means the whole sweep produced nothing.
type SectionPolarProvider interface {
	Polars(ctx context.Context, airfoil string, re float64, alphas []float64) ([]polar.Sample, error)
}

// Chain tries each provider in order and returns the first non-empty result.
type Chain []SectionPolarProvider

// Polars implements SectionPolarProvider.
func (c Chain) Polars(ctx context.Context, airfoil string, re float64, alphas []float64) ([]polar.Sample, error) {
	if len(c) == 0 {
		return nil, errors.New("no polar backend configured")
	}
	var errs []error
	for _, p := range c {
		samples, err := p.Polars(ctx, airfoil, re, alphas)
		if err == nil && len(samples) > 0 {
			return samples, nil
		}
		if err == nil {
			err = ErrNotConverged
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		errs = append(errs, err)
	}
	return nil, errors.Join(errs...)
}

// Collect runs p over every airfoil × Reynolds number. Backend failures are
// logged and skipped; only cancellation stops the run, in which case the
// samples gathered so far are returned with ctx.Err().
func Collect(ctx context.Context, p SectionPolarProvider, airfoils []string, reynolds, alphas []float64, log logrus.FieldLogger) ([]polar.Sample, error) {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}

	var out []polar.Sample
	for _, name := range airfoils {
		for _, re := range reynolds {
			if err := ctx.Err(); err != nil {
				return out, err
			}
			entry := log.WithFields(logrus.Fields{"airfoil": name, "re": fmt.Sprintf("%.0f", re)})

			samples, err := p.Polars(ctx, name, re, alphas)
			if err != nil {
				if ctx.Err() != nil {
					return out, ctx.Err()
				}
				entry.WithError(err).Warn("section polar failed; skipping")
				continue
			}
			entry.WithField("points", len(samples)).Infof("solved %d of %d alphas", len(samples), len(alphas))
			out = append(out, samples...)
		}
	}
	return out, nil
}

// AlphaRange returns start, start+step, ... up to end inclusive.
func AlphaRange(start, end, step float64) []float64 {
	if step <= 0 || end < start {
		return []float64{start}
	}
	n := int((end-start)/step+1e-9) + 1
	out := make([]float64, n)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	return out
}
