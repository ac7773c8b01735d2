package wing

import (
	"fmt"
	"strings"

	"github.com/alexiusacademia/gowing/internal/aero"
)

// DefaultStations is the number of spanwise stations per half-wing
const DefaultStations = 31

// Quadrature selects how strip widths are assigned to stations.
type Quadrature int

const (
	// UniformStrips gives every station a full semi/(N-1) strip, end
	// stations included, so the widths overshoot the semi-span by one strip.
	UniformStrips Quadrature = iota
	// Trapezoidal gives the end stations half a strip so that the widths
	// sum to the semi-span.
	Trapezoidal
)

func (q Quadrature) String() string {
	switch q {
	case Trapezoidal:
		return "trapezoidal"
	case UniformStrips:
		return "uniform"
	default:
		return "unknown"
	}
}

// ParseQuadrature accepts "uniform" (the default) or "trapezoidal".
func ParseQuadrature(s string) (Quadrature, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "uniform", "strips":
		return UniformStrips, nil
	case "trapezoidal", "trapz":
		return Trapezoidal, nil
	}
	return 0, fmt.Errorf("unknown quadrature %q (want uniform or trapezoidal)", s)
}

// Station is one spanwise point on the half-wing
type Station struct {
	Y        float64 // Spanwise position from root (m)
	Chord    float64 // Local chord (m)
	TwistDeg float64 // Local geometric twist (deg)
	Re       float64 // Local chord Reynolds number
	Width    float64 // Strip width used for integration (m)
}

// Discretize lays n evenly spaced stations from the root (y=0) to the tip
// of the half-wing. n below 2 is raised to 2.
func Discretize(p Planform, cond aero.Condition, n int, q Quadrature) []Station {
	if n < 2 {
		n = 2
	}

	semi := p.SemiSpan()
	cTip := p.TipChord()
	dy := semi / float64(n-1)

	stations := make([]Station, n)
	for i := range stations {
		st := &stations[i]
		if semi > 0 {
			eta := float64(i) / float64(n-1) // y / semi-span
			st.Y = eta * semi
			st.Chord = p.RootChord + (cTip-p.RootChord)*eta
			st.TwistDeg = p.TwistRootDeg + (p.TwistTipDeg-p.TwistRootDeg)*eta
			st.Width = dy
			if q == Trapezoidal && (i == 0 || i == n-1) {
				st.Width = dy / 2
			}
		} else {
			// Collapsed wing
			st.Chord = p.RootChord
			st.TwistDeg = p.TwistRootDeg
		}
		st.Re = cond.Reynolds(st.Chord)
	}

	return stations
}
