package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alexiusacademia/gowing/internal/opt"
	"github.com/alexiusacademia/gowing/internal/wing"
)

// WingHeader is the column layout of the wing result table.
var WingHeader = []string{
	"Airfoil", "b", "c_root", "taper", "c_tip", "S", "AR",
	"dihedral_deg", "twist_root_deg", "twist_tip_deg", "alpha_trim_deg",
	"V", "rho", "mu",
	"CL", "CDp", "CDi", "CD", "Cm", "L_N",
}

// wingValues returns one row in WingHeader order; absent values are invalid opt.Floats.
func wingValues(pt wing.Point) (string, []opt.Float) {
	return pt.Airfoil, []opt.Float{
		opt.Of(pt.Span),
		opt.Of(pt.RootChord),
		opt.Of(pt.Taper),
		opt.Of(pt.TipChord),
		opt.Of(pt.Area),
		pt.AspectRatio,
		opt.Of(pt.DihedralDeg),
		opt.Of(pt.TwistRootDeg),
		opt.Of(pt.TwistTipDeg),
		opt.Of(pt.AlphaTrimDeg),
		opt.Of(pt.Velocity),
		opt.Of(pt.Rho),
		opt.Of(pt.Mu),
		pt.CL,
		pt.CDp,
		pt.CDi,
		pt.CD,
		pt.Cm,
		pt.Lift,
	}
}

// WriteWingCSV writes the header and one row per point, in the given order.
// Absent values are written as empty cells.
func WriteWingCSV(w io.Writer, points []wing.Point) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(WingHeader); err != nil {
		return err
	}
	rec := make([]string, len(WingHeader))
	for _, pt := range points {
		name, vals := wingValues(pt)
		rec[0] = name
		for i, v := range vals {
			rec[i+1] = v.String()
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// SaveWingCSV writes a wing result CSV file.
func SaveWingCSV(path string, points []wing.Point) error {
	return writeFile(path, func(w io.Writer) error { return WriteWingCSV(w, points) })
}

// ReadWingCSV reads a wing result table back. Columns are matched by name;
// empty cells are absent values.
func ReadWingCSV(r io.Reader) ([]wing.Point, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read wing header: %w", err)
	}
	col := make(map[string]int, len(header))
	for i, h := range header {
		col[strings.TrimSpace(h)] = i
	}
	if _, ok := col["Airfoil"]; !ok {
		return nil, fmt.Errorf("wing CSV has no %q column", "Airfoil")
	}

	var out []wing.Point
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return out, fmt.Errorf("read wing row: %w", err)
		}
		get := func(name string) opt.Float {
			i, ok := col[name]
			if !ok || i >= len(rec) {
				return opt.None()
			}
			return opt.Of(parseCell(strings.TrimSpace(rec[i])))
		}
		out = append(out, wing.Point{
			Planform: wing.Planform{
				Airfoil:      rec[col["Airfoil"]],
				Span:         get("b").Or(0),
				RootChord:    get("c_root").Or(0),
				Taper:        get("taper").Or(0),
				DihedralDeg:  get("dihedral_deg").Or(0),
				TwistRootDeg: get("twist_root_deg").Or(0),
				TwistTipDeg:  get("twist_tip_deg").Or(0),
			},
			TipChord:     get("c_tip").Or(0),
			Area:         get("S").Or(0),
			AspectRatio:  get("AR"),
			AlphaTrimDeg: get("alpha_trim_deg").Or(0),
			Velocity:     get("V").Or(0),
			Rho:          get("rho").Or(0),
			Mu:           get("mu").Or(0),
			CL:           get("CL"),
			CDp:          get("CDp"),
			CDi:          get("CDi"),
			CD:           get("CD"),
			Cm:           get("Cm"),
			Lift:         get("L_N"),
		})
	}
	return out, nil
}

// LoadWingCSV reads a wing result CSV file.
func LoadWingCSV(path string) ([]wing.Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	points, err := ReadWingCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return points, nil
}
