package airfoil

import (
	"math"
	"sort"
)

// thicknessStations is the number of chordwise cuts scanned for the
// maximum thickness.
const thicknessStations = 200

// Section holds the geometric properties of the coordinate loop, in chord
// fractions.
type Section struct {
	Area      float64 // enclosed area (c²)
	CentroidX float64
	CentroidY float64

	MaxThickness   float64 // t/c
	MaxThicknessAt float64 // x/c of the thickest cut
}

// Properties computes the enclosed area and centroid with the shoelace
// formula and scans chordwise cuts for the maximum thickness.
func (a *Airfoil) Properties() Section {
	var s Section
	s.Area, s.CentroidX, s.CentroidY = a.areaAndCentroid()
	s.MaxThickness, s.MaxThicknessAt = a.maxThickness()
	return s
}

// MaxThickness is the largest vertical extent of the loop at any chord station.
func (a *Airfoil) MaxThickness() float64 {
	t, _ := a.maxThickness()
	return t
}

// ThicknessAt is the vertical extent of the section at chord station x.
func (a *Airfoil) ThicknessAt(x float64) float64 {
	ys := a.intersectionsAtX(x)
	if len(ys) < 2 {
		return 0
	}
	sort.Float64s(ys)

	// Sum of the inside segments
	var total float64
	for i := 0; i+1 < len(ys); i += 2 {
		total += ys[i+1] - ys[i]
	}
	return total
}

func (a *Airfoil) maxThickness() (t, at float64) {
	minX, maxX, _, _ := a.Bounds()
	if len(a.Points) < 3 || maxX <= minX {
		return 0, 0
	}
	for i := 0; i <= thicknessStations; i++ {
		x := minX + (maxX-minX)*float64(i)/thicknessStations
		if th := a.ThicknessAt(x); th > t {
			t, at = th, x
		}
	}
	return t, at
}

// areaAndCentroid uses the shoelace formula; the loop is closed implicitly.
func (a *Airfoil) areaAndCentroid() (area, cx, cy float64) {
	n := len(a.Points)
	if n < 3 {
		return 0, 0, 0
	}

	var signedArea, sumX, sumY float64
	for i := 0; i < n; i++ {
		p, q := a.Points[i], a.Points[(i+1)%n]
		cross := p.X*q.Y - q.X*p.Y
		signedArea += cross
		sumX += (p.X + q.X) * cross
		sumY += (p.Y + q.Y) * cross
	}

	signedArea /= 2
	area = math.Abs(signedArea)
	if area > 0 {
		cx = sumX / (6 * signedArea)
		cy = sumY / (6 * signedArea)
	}
	return area, cx, cy
}

// intersectionsAtX returns the y of every edge crossing the vertical line at x.
func (a *Airfoil) intersectionsAtX(x float64) []float64 {
	var ys []float64
	n := len(a.Points)
	for i := 0; i < n; i++ {
		p, q := a.Points[i], a.Points[(i+1)%n]
		if (p.X <= x && q.X > x) || (q.X <= x && p.X > x) {
			t := (x - p.X) / (q.X - p.X)
			ys = append(ys, p.Y+t*(q.Y-p.Y))
		}
	}
	return ys
}
