package doe

import (
	"context"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/alexiusacademia/gowing/internal/opt"
	"github.com/alexiusacademia/gowing/internal/polar"
	"github.com/alexiusacademia/gowing/internal/wing"
)

// Driver enumerates a sweep and integrates every combination.
type Driver struct {
	cfg     Config
	log     logrus.FieldLogger
	metrics *Metrics
}

// NewDriver validates cfg and returns a driver. A nil logger discards
// output; nil metrics disables instrumentation.
func NewDriver(cfg Config, log logrus.FieldLogger, metrics *Metrics) (*Driver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &Driver{cfg: cloneConfig(cfg), log: log, metrics: metrics}, nil
}

// Config returns a copy of the driver configuration.
func (d *Driver) Config() Config {
	return cloneConfig(d.cfg)
}

// combination is one unit of work
type combination struct {
	planform wing.Planform
	alpha    float64
}

// combinations enumerates every planform × trim alpha in sweep order.
func (d *Driver) combinations() []combination {
	s := d.cfg.Sweep
	out := make([]combination, 0, len(d.cfg.Airfoils)*s.Size())
	for _, airfoil := range d.cfg.Airfoils {
		for _, b := range s.Spans {
			for _, cRoot := range s.RootChords {
				for _, taper := range s.Tapers {
					for _, dihedral := range s.Dihedrals {
						for _, twRoot := range s.TwistRoots {
							for _, twTip := range s.TwistTips {
								for _, alpha := range s.TrimAlphas {
									out = append(out, combination{
										planform: wing.Planform{
											Airfoil:      airfoil,
											Span:         b,
											RootChord:    cRoot,
											Taper:        taper,
											DihedralDeg:  dihedral,
											TwistRootDeg: twRoot,
											TwistTipDeg:  twTip,
										},
										alpha: alpha,
									})
								}
							}
						}
					}
				}
			}
		}
	}
	return out
}

// Run integrates every combination against the shared table and returns
// the points sorted by (airfoil, span, root chord, taper, trim alpha).
// Points with missing data are kept with absent fields. Cancellation is
// honoured between combinations and returns ctx.Err().
func (d *Driver) Run(ctx context.Context, table *polar.Table) ([]wing.Point, error) {
	start := time.Now()

	for _, name := range d.cfg.Airfoils {
		if !table.Has(name) {
			d.log.WithField("airfoil", name).Warn("no section polars for airfoil; its points will be empty")
		}
	}

	combos := d.combinations()
	for _, c := range combos {
		if err := c.planform.Validate(); err != nil {
			return nil, &ValidationError{msg: "invalid planform in sweep: " + err.Error()}
		}
	}

	ig := &wing.Integrator{
		Sections:   polar.NewInterpolator(table),
		Condition:  d.cfg.Condition,
		Stations:   d.cfg.Stations,
		Quadrature: d.cfg.Quadrature,
	}

	n := d.cfg.workers()
	if n > len(combos) {
		n = len(combos)
	}
	if n < 1 {
		n = 1
	}
	chunk := (len(combos) + n - 1) / n

	buffers := make([][]wing.Point, n)
	var wg sync.WaitGroup
	for w := 0; w < n; w++ {
		lo := w * chunk
		hi := min(lo+chunk, len(combos))
		if lo >= hi {
			continue
		}
		wg.Add(1)
		go func(w int, work []combination) {
			defer wg.Done()
			buf := make([]wing.Point, 0, len(work))
			for _, c := range work {
				if ctx.Err() != nil {
					return
				}
				res := ig.Integrate(c.planform, c.alpha)
				d.record(res)
				buf = append(buf, res.Point)
			}
			buffers[w] = buf
		}(w, combos[lo:hi])
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	points := make([]wing.Point, 0, len(combos))
	for _, buf := range buffers {
		points = append(points, buf...)
	}
	SortPoints(points)

	if d.metrics != nil {
		d.metrics.SweepDuration.Observe(time.Since(start).Seconds())
	}
	d.log.WithFields(logrus.Fields{
		"points":   len(points),
		"workers":  n,
		"duration": time.Since(start).Round(time.Millisecond).String(),
	}).Info("DOE sweep complete")

	return points, nil
}

func (d *Driver) record(res *wing.Result) {
	status := Status(res.Point)
	d.metrics.observe(status, res.MissingStations)
	if status == StatusValid {
		return
	}

	fields := logrus.Fields{
		"airfoil":      res.Airfoil,
		"b":            res.Span,
		"c_root":       res.RootChord,
		"taper":        res.Taper,
		"twist_tip":    res.TwistTipDeg,
		"alpha_trim":   res.AlphaTrimDeg,
		"missing":      res.MissingStations,
		"missing_of":   len(res.Loads),
		"aspect_ratio": res.AspectRatio.String(),
	}
	d.log.WithFields(fields).Warnf("wing point is %s", status)
}

// Status classifies a point by the completeness of its coefficients.
func Status(pt wing.Point) string {
	switch {
	case pt.Complete():
		return StatusValid
	case pt.CL.Valid() || pt.CDp.Valid() || pt.Cm.Valid():
		return StatusPartial
	default:
		return StatusInvalid
	}
}

// SortPoints orders points for reproducible output. The primary key is
// (airfoil, b, c_root, taper, alpha_trim); the remaining parameters break ties.
func SortPoints(points []wing.Point) {
	sort.SliceStable(points, func(i, j int) bool {
		a, b := points[i], points[j]
		if a.Airfoil != b.Airfoil {
			return a.Airfoil < b.Airfoil
		}
		keys := [][2]float64{
			{a.Span, b.Span},
			{a.RootChord, b.RootChord},
			{a.Taper, b.Taper},
			{a.AlphaTrimDeg, b.AlphaTrimDeg},
			{a.DihedralDeg, b.DihedralDeg},
			{a.TwistRootDeg, b.TwistRootDeg},
			{a.TwistTipDeg, b.TwistTipDeg},
		}
		for _, k := range keys {
			if k[0] != k[1] {
				return k[0] < k[1]
			}
		}
		return false
	})
}

// Summary counts points by status.
func Summary(points []wing.Point) map[string]int {
	out := map[string]int{StatusValid: 0, StatusPartial: 0, StatusInvalid: 0}
	for _, p := range points {
		out[Status(p)]++
	}
	return out
}

// BestGlide returns the point with the highest CL/CD among complete points.
func BestGlide(points []wing.Point) (wing.Point, opt.Float) {
	var best wing.Point
	ratio := opt.None()
	for _, p := range points {
		cl, okL := p.CL.Get()
		cd, okD := p.CD.Get()
		if !okL || !okD || cd <= 0 {
			continue
		}
		r := cl / cd
		if cur, ok := ratio.Get(); !ok || r > cur {
			best, ratio = p, opt.Of(r)
		}
	}
	return best, ratio
}

func cloneConfig(c Config) Config {
	cp := func(v []float64) []float64 { return append([]float64(nil), v...) }
	c.Airfoils = append([]string(nil), c.Airfoils...)
	c.Sweep = Sweep{
		Spans:      cp(c.Sweep.Spans),
		RootChords: cp(c.Sweep.RootChords),
		Tapers:     cp(c.Sweep.Tapers),
		Dihedrals:  cp(c.Sweep.Dihedrals),
		TwistRoots: cp(c.Sweep.TwistRoots),
		TwistTips:  cp(c.Sweep.TwistTips),
		TrimAlphas: cp(c.Sweep.TrimAlphas),
	}
	return c
}
