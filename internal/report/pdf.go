package report

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/alexiusacademia/gowing/internal/opt"
	"github.com/alexiusacademia/gowing/internal/wing"
)

// Summary describes a one-page PDF digest of a sweep.
type Summary struct {
	Title  string
	Date   time.Time
	Points []wing.Point
	Top    int            // rows in the ranking table, 10 when zero
	Counts map[string]int // status -> number of points
	Notes  string
}

// Ranked returns the complete points ordered by descending CL/CD, at most n.
func Ranked(points []wing.Point, n int) []wing.Point {
	type scored struct {
		pt wing.Point
		ld float64
	}
	var list []scored
	for _, pt := range points {
		ld, ok := glide(pt).Get()
		if !ok {
			continue
		}
		list = append(list, scored{pt, ld})
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].ld > list[j].ld })
	if n > 0 && len(list) > n {
		list = list[:n]
	}
	out := make([]wing.Point, len(list))
	for i, s := range list {
		out[i] = s.pt
	}
	return out
}

func glide(pt wing.Point) opt.Float {
	cl, okL := pt.CL.Get()
	cd, okD := pt.CD.Get()
	if !okL || !okD || cd <= 0 {
		return opt.None()
	}
	return opt.Of(cl / cd)
}

// WriteSummaryPDF renders the summary as an A4 landscape page.
func WriteSummaryPDF(w io.Writer, s Summary) error {
	title := s.Title
	if title == "" {
		title = "Wing design sweep"
	}
	date := s.Date
	if date.IsZero() {
		date = time.Now()
	}
	top := s.Top
	if top <= 0 {
		top = 10
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, title)
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", date.Format("2006-01-02")))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Design points: %d", len(s.Points)))
	pdf.Ln(6)
	if len(s.Counts) > 0 {
		keys := make([]string, 0, len(s.Counts))
		for k := range s.Counts {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			pdf.Cell(0, 6, fmt.Sprintf("  %s: %d", k, s.Counts[k]))
			pdf.Ln(6)
		}
	}
	pdf.Ln(4)

	cols := []struct {
		head  string
		width float64
	}{
		{"#", 10}, {"Airfoil", 32}, {"b (m)", 20}, {"c_root (m)", 24}, {"taper", 18},
		{"AR", 18}, {"twist (deg)", 28}, {"alpha (deg)", 24}, {"CL", 22}, {"CD", 24},
		{"CL/CD", 22}, {"L (N)", 24},
	}
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(225, 225, 225)
	for _, c := range cols {
		pdf.CellFormat(c.width, 7, c.head, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for i, pt := range Ranked(s.Points, top) {
		cells := []string{
			fmt.Sprintf("%d", i+1),
			pt.Airfoil,
			fmt.Sprintf("%.2f", pt.Span),
			fmt.Sprintf("%.3f", pt.RootChord),
			fmt.Sprintf("%.2f", pt.Taper),
			fixed(pt.AspectRatio, 2),
			fmt.Sprintf("%.1f / %.1f", pt.TwistRootDeg, pt.TwistTipDeg),
			fmt.Sprintf("%.1f", pt.AlphaTrimDeg),
			fixed(pt.CL, 4),
			fixed(pt.CD, 5),
			fixed(glide(pt), 1),
			fixed(pt.Lift, 1),
		}
		for j, c := range cols {
			pdf.CellFormat(c.width, 6, cells[j], "1", 0, "R", false, 0, "")
		}
		pdf.Ln(-1)
	}

	if s.Notes != "" {
		pdf.Ln(6)
		pdf.MultiCell(0, 6, s.Notes, "", "L", false)
	}
	return pdf.Output(w)
}

func fixed(v opt.Float, prec int) string {
	f, ok := v.Get()
	if !ok {
		return "-"
	}
	return fmt.Sprintf("%.*f", prec, f)
}
