package provider

import (
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/alexiusacademia/gowing/internal/polar"
)

// stubProvider returns fixed samples or an error per airfoil.
type stubProvider struct {
	fail  map[string]bool
	calls int
}

func (s *stubProvider) Polars(_ context.Context, name string, re float64, alphas []float64) ([]polar.Sample, error) {
	s.calls++
	if s.fail[name] {
		return nil, ErrNotConverged
	}
	out := make([]polar.Sample, 0, len(alphas))
	for _, a := range alphas {
		out = append(out, polar.NewSample(name, re, a, 0.1*a, 0.01, -0.02))
	}
	return out, nil
}

func TestChainFallsThrough(t *testing.T) {
	bad := &stubProvider{fail: map[string]bool{"naca2412": true}}
	good := &stubProvider{}
	c := Chain{bad, good}

	got, err := c.Polars(context.Background(), "naca2412", 2e5, []float64{0, 1})
	if err != nil {
		t.Fatalf("Polars: %v", err)
	}
	if len(got) != 2 || bad.calls != 1 || good.calls != 1 {
		t.Errorf("got %d samples, calls bad=%d good=%d", len(got), bad.calls, good.calls)
	}
}

func TestChainAllFail(t *testing.T) {
	c := Chain{&stubProvider{fail: map[string]bool{"x": true}}}
	if _, err := c.Polars(context.Background(), "x", 2e5, []float64{0}); !errors.Is(err, ErrNotConverged) {
		t.Errorf("err = %v, want ErrNotConverged", err)
	}
	if _, err := (Chain{}).Polars(context.Background(), "x", 2e5, nil); err == nil {
		t.Error("empty chain should fail")
	}
}

func TestCollectSkipsFailures(t *testing.T) {
	logger, hook := test.NewNullLogger()
	p := &stubProvider{fail: map[string]bool{"s1223": true}}

	samples, err := Collect(context.Background(), p, []string{"naca2412", "s1223"}, []float64{2e5, 5e5}, []float64{-1, 0, 1}, logger)
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if len(samples) != 6 {
		t.Errorf("got %d samples, want 6", len(samples))
	}

	warnings := 0
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.WarnLevel {
			warnings++
		}
	}
	if warnings != 2 {
		t.Errorf("got %d warnings, want 2", warnings)
	}
}

func TestCollectCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Collect(ctx, &stubProvider{}, []string{"a"}, []float64{1e5}, []float64{0}, nil)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestAlphaRange(t *testing.T) {
	got := AlphaRange(-5, 15, 0.5)
	if len(got) != 41 || got[0] != -5 || got[40] != 15 {
		t.Errorf("AlphaRange(-5,15,0.5) = %d values [%v..%v]", len(got), got[0], got[len(got)-1])
	}
	if got := AlphaRange(3, 1, 1); len(got) != 1 || got[0] != 3 {
		t.Errorf("degenerate range = %v", got)
	}
}

func TestTableProvider(t *testing.T) {
	tp := NewTable([]polar.Sample{
		polar.NewSample("X", 2e5, 0, 0.2, 0.01, 0),
		polar.NewSample("X", 2e5, 1, 0.3, 0.011, 0),
		polar.NewSample("X", 5e5, 0, 0.25, 0.009, 0),
	})

	all, err := tp.Polars(context.Background(), "X", 2.0001e5, nil)
	if err != nil || len(all) != 2 {
		t.Fatalf("Polars(nil alphas) = %d rows, %v", len(all), err)
	}
	one, err := tp.Polars(context.Background(), "X", 2e5, []float64{1, 7})
	if err != nil || len(one) != 1 || one[0].Alpha != 1 {
		t.Fatalf("Polars([1,7]) = %+v, %v", one, err)
	}
	if _, err := tp.Polars(context.Background(), "X", 1e6, nil); !errors.Is(err, ErrNotConverged) {
		t.Errorf("unknown Re err = %v", err)
	}
}
