package airfoil

import (
	"errors"
	"math"
)

// ErrNotFound is returned when an airfoil has no coordinate file.
var ErrNotFound = errors.New("airfoil not found")

// Point is one (x, y) coordinate normalised by chord
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Airfoil is a named ordered coordinate loop
type Airfoil struct {
	Name   string  `json:"name"`
	Title  string  `json:"title,omitempty"` // first line of the .dat file
	Points []Point `json:"points"`
}

// Bounds returns the chordwise extent and the thickness envelope.
func (a *Airfoil) Bounds() (minX, maxX, minY, maxY float64) {
	if len(a.Points) == 0 {
		return 0, 0, 0, 0
	}
	minX, maxX = a.Points[0].X, a.Points[0].X
	minY, maxY = a.Points[0].Y, a.Points[0].Y
	for _, p := range a.Points {
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}
	return minX, maxX, minY, maxY
}
