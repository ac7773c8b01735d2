package polar

import (
	"math"
	"sort"

	"github.com/alexiusacademia/gowing/internal/opt"
)

// reEpsilon guards the Reynolds blend against a zero-width bracket
const reEpsilon = 1e-12

// Interpolator estimates section coefficients at arbitrary (Re, alpha) from
// a Table. It holds no mutable state.
type Interpolator struct {
	table *Table
}

// NewInterpolator creates an interpolator over t.
func NewInterpolator(t *Table) *Interpolator {
	return &Interpolator{table: t}
}

// Lookup returns (CL, CD, CM) for the airfoil at the given Reynolds number
// and angle of attack (deg).
//
// Alpha is clamped to the recorded range at each bracketing Reynolds number.
// A Reynolds number outside the table is extrapolated linearly from the two
// nearest recorded values. Missing data is reported through absent
// coefficients.
func (ip *Interpolator) Lookup(airfoil string, re, alpha float64) Coefficients {
	g := ip.table.group(airfoil)
	if g == nil || len(g.reynolds) == 0 || math.IsNaN(re) || math.IsNaN(alpha) {
		return Coefficients{}
	}

	reLo, reHi := bracket(g.reynolds, re)

	lo := atAlpha(g.byRe[reLo], alpha)
	hi := lo
	if reHi != reLo {
		hi = atAlpha(g.byRe[reHi], alpha)
	}
	if lo.Empty() && hi.Empty() {
		return Coefficients{}
	}

	t := 0.0
	if math.Abs(reHi-reLo) > reEpsilon {
		t = (re - reLo) / (reHi - reLo)
	}

	return Coefficients{
		CL: opt.Lerp(lo.CL, hi.CL, t),
		CD: opt.Lerp(lo.CD, hi.CD, t),
		CM: opt.Lerp(lo.CM, hi.CM, t),
	}
}

// bracket finds the recorded Reynolds numbers surrounding re. An exact hit
// returns that value twice; out-of-range queries use the two nearest ends
// so the blend extrapolates.
func bracket(res []float64, re float64) (float64, float64) {
	n := len(res)
	if n == 1 {
		return res[0], res[0]
	}

	idx := sort.SearchFloat64s(res, re)
	switch {
	case idx < n && res[idx] == re:
		return re, re
	case idx == 0:
		return res[0], res[1]
	case idx >= n:
		return res[n-2], res[n-1]
	}
	return res[idx-1], res[idx]
}

// atAlpha interpolates each coefficient independently over the samples at
// one Reynolds number, which are sorted by alpha.
func atAlpha(rows []Sample, alpha float64) Coefficients {
	return Coefficients{
		CL: interp1(rows, alpha, func(s Sample) opt.Float { return s.CL }),
		CD: interp1(rows, alpha, func(s Sample) opt.Float { return s.CD }),
		CM: interp1(rows, alpha, func(s Sample) opt.Float { return s.CM }),
	}
}

func interp1(rows []Sample, alpha float64, field func(Sample) opt.Float) opt.Float {
	xs := make([]float64, 0, len(rows))
	ys := make([]float64, 0, len(rows))
	for _, r := range rows {
		if v, ok := field(r).Get(); ok {
			xs = append(xs, r.Alpha)
			ys = append(ys, v)
		}
	}
	if len(xs) == 0 {
		return opt.None()
	}

	// Clamp to the recorded range
	a := math.Max(xs[0], math.Min(xs[len(xs)-1], alpha))

	i := sort.SearchFloat64s(xs, a)
	if i < len(xs) && xs[i] == a {
		return opt.Of(ys[i])
	}
	// xs[i-1] < a < xs[i]
	x0, x1 := xs[i-1], xs[i]
	y0, y1 := ys[i-1], ys[i]
	f := (a - x0) / (x1 - x0)
	return opt.Of(y0 + f*(y1-y0))
}
