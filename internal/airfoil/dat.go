package airfoil

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ParseDat reads a Selig-format coordinate file: a title line followed by
// one "x y" pair per line. Lines that do not parse as a pair are skipped,
// which also drops the point-count line of Lednicer files.
func ParseDat(r io.Reader, name string) (*Airfoil, error) {
	af := &Airfoil{Name: name}
	sc := bufio.NewScanner(r)
	first := true
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if first {
			af.Title = line
			first = false
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			continue
		}
		x, errX := strconv.ParseFloat(fields[0], 64)
		y, errY := strconv.ParseFloat(fields[1], 64)
		if errX != nil || errY != nil {
			continue
		}
		// Lednicer header lists point counts (> 1)
		if x > 1.5 {
			continue
		}
		af.Points = append(af.Points, Point{X: x, Y: y})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s coordinates: %w", name, err)
	}
	if len(af.Points) == 0 {
		return nil, fmt.Errorf("no coordinates found for %s", name)
	}
	return af, nil
}

// LoadDat reads a coordinate file; the airfoil is named after the file.
func LoadDat(path string) (*Airfoil, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return ParseDat(f, name)
}

// WriteDat writes the airfoil in Selig format.
func WriteDat(w io.Writer, af *Airfoil) error {
	title := af.Title
	if title == "" {
		title = af.Name
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, title)
	for _, p := range af.Points {
		fmt.Fprintf(bw, " %.6f  %.6f\n", p.X, p.Y)
	}
	return bw.Flush()
}
