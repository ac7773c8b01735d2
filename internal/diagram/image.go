package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/alexiusacademia/gowing/internal/airfoil"
	"github.com/alexiusacademia/gowing/internal/polar"
	"github.com/alexiusacademia/gowing/internal/wing"
)

// Output file names
const (
	CLAlphaFile      = "Cl_vs_Alpha.png"
	DragPolarFile    = "Cd_vs_Cl_2D.png"
	CMAlphaFile      = "Cm_vs_Alpha_2D.png"
	CLTrimFile       = "CL_vs_AlphaTrim_3D.png"
	WingDragFile     = "CD_vs_CL_3D.png"
	outlineExtension = "_outline.png"
)

// series is one named curve
type series struct {
	name string
	xys  plotter.XYs
}

// ExportSectionPlots writes the lift curve, drag polar and moment curve of
// every airfoil in samples to dir. CL-alpha is drawn at the lowest, middle
// and highest recorded Reynolds number; the other two at the middle one.
// Plots with nothing to draw are skipped. The written paths are returned.
func ExportSectionPlots(samples []polar.Sample, dir string) ([]string, error) {
	table := polar.NewTable(samples)

	var lift, drag, moment []series
	for _, name := range table.Airfoils() {
		res := table.Reynolds(name)
		if len(res) == 0 {
			continue
		}
		for _, re := range reSamples(res) {
			rows := table.AtReynolds(name, re)
			lift = append(lift, series{
				name: fmt.Sprintf("%s @ Re=%s", name, groupThousands(re)),
				xys:  collect(rows, func(s polar.Sample) (float64, float64, bool) { return pair(s.Alpha, s.CL.Get) }),
			})
		}

		mid := table.AtReynolds(name, res[len(res)/2])
		polarXY := collect(mid, func(s polar.Sample) (float64, float64, bool) {
			cl, okL := s.CL.Get()
			cd, okD := s.CD.Get()
			return cl, cd, okL && okD
		})
		sort.Sort(byX(polarXY))
		drag = append(drag, series{name: name, xys: polarXY})
		moment = append(moment, series{
			name: name,
			xys:  collect(mid, func(s polar.Sample) (float64, float64, bool) { return pair(s.Alpha, s.CM.Get) }),
		})
	}

	var written []string
	for _, fig := range []struct {
		file, title, x, y string
		data              []series
	}{
		{CLAlphaFile, "CL vs Alpha", "Alpha (deg)", "CL", lift},
		{DragPolarFile, "Drag Polar (2D)", "CL", "CD", drag},
		{CMAlphaFile, "CM vs Alpha (2D)", "Alpha (deg)", "CM", moment},
	} {
		path := filepath.Join(dir, fig.file)
		ok, err := exportLines(fig.title, fig.x, fig.y, fig.data, false, path)
		if err != nil {
			return written, err
		}
		if ok {
			written = append(written, path)
		}
	}
	return written, nil
}

// ExportSweepPlots writes the wing CL vs trim alpha curves and the CD-CL
// cloud of a design sweep to dir. For the lift curve one geometry per
// airfoil and trim angle is kept: the first after ordering by span, root
// chord, taper and tip twist.
func ExportSweepPlots(points []wing.Point, dir string) ([]string, error) {
	byAirfoil := make(map[string][]wing.Point)
	var names []string
	for _, pt := range points {
		if _, ok := byAirfoil[pt.Airfoil]; !ok {
			names = append(names, pt.Airfoil)
		}
		byAirfoil[pt.Airfoil] = append(byAirfoil[pt.Airfoil], pt)
	}
	sort.Strings(names)

	var lift, cloud []series
	for _, name := range names {
		pts := append([]wing.Point(nil), byAirfoil[name]...)
		sort.SliceStable(pts, func(i, j int) bool {
			a, b := pts[i], pts[j]
			switch {
			case a.Span != b.Span:
				return a.Span < b.Span
			case a.RootChord != b.RootChord:
				return a.RootChord < b.RootChord
			case a.Taper != b.Taper:
				return a.Taper < b.Taper
			default:
				return a.TwistTipDeg < b.TwistTipDeg
			}
		})

		seen := make(map[float64]bool)
		var curve, scatter plotter.XYs
		for _, pt := range pts {
			cl, okL := pt.CL.Get()
			if okL && !seen[pt.AlphaTrimDeg] {
				seen[pt.AlphaTrimDeg] = true
				curve = append(curve, plotter.XY{X: pt.AlphaTrimDeg, Y: cl})
			}
			if cd, okD := pt.CD.Get(); okL && okD {
				scatter = append(scatter, plotter.XY{X: cl, Y: cd})
			}
		}
		sort.Sort(byX(curve))
		lift = append(lift, series{name: name, xys: curve})
		cloud = append(cloud, series{name: name, xys: scatter})
	}

	var written []string
	path := filepath.Join(dir, CLTrimFile)
	ok, err := exportLines("3D CL vs Trim Alpha", "Trim alpha (deg)", "CL", lift, false, path)
	if err != nil {
		return written, err
	}
	if ok {
		written = append(written, path)
	}

	path = filepath.Join(dir, WingDragFile)
	ok, err = exportLines("3D Drag Polar (DOE cloud)", "CL", "CD", cloud, true, path)
	if err != nil {
		return written, err
	}
	if ok {
		written = append(written, path)
	}
	return written, nil
}

// ExportAirfoilOutline plots the coordinate outline of af. When filename is
// a directory the file is named <airfoil>_outline.png inside it.
func ExportAirfoilOutline(af *airfoil.Airfoil, filename string) (string, error) {
	if len(af.Points) < 2 {
		return "", fmt.Errorf("%s: not enough coordinates to plot", af.Name)
	}
	if fi, err := os.Stat(filename); err == nil && fi.IsDir() {
		filename = filepath.Join(filename, af.Name+outlineExtension)
	}

	p := plot.New()
	p.Title.Text = af.Title
	if p.Title.Text == "" {
		p.Title.Text = af.Name
	}
	p.X.Label.Text = "x/c"
	p.Y.Label.Text = "y/c"
	p.Add(plotter.NewGrid())

	outline := make(plotter.XYs, len(af.Points))
	for i, pt := range af.Points {
		outline[i] = plotter.XY{X: pt.X, Y: pt.Y}
	}
	line, err := plotter.NewLine(outline)
	if err != nil {
		return "", err
	}
	line.LineStyle.Width = vg.Points(1.5)
	line.LineStyle.Color = color.Black
	p.Add(line)

	// Equal axes so the section is not distorted
	minX, maxX, _, _ := af.Bounds()
	half := (maxX - minX) / 2
	p.X.Min, p.X.Max = minX-0.02, maxX+0.02
	p.Y.Min, p.Y.Max = -half/3, half/3

	return filename, save(p, 9*vg.Inch, 3*vg.Inch, filename)
}

// exportLines draws one line (or scatter) per series. It reports false
// without writing anything when no series has points.
func exportLines(title, xLabel, yLabel string, data []series, scatter bool, filename string) (bool, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	p.Legend.Top = true
	p.Add(plotter.NewGrid())

	drawn := 0
	for _, s := range data {
		if len(s.xys) == 0 {
			continue
		}
		c := plotutil.Color(drawn)
		if scatter {
			sc, err := plotter.NewScatter(s.xys)
			if err != nil {
				return false, err
			}
			sc.GlyphStyle.Color = c
			sc.GlyphStyle.Radius = vg.Points(2)
			sc.GlyphStyle.Shape = draw.CircleGlyph{}
			p.Add(sc)
			p.Legend.Add(s.name, sc)
		} else {
			l, err := plotter.NewLine(s.xys)
			if err != nil {
				return false, err
			}
			l.LineStyle.Width = vg.Points(1.5)
			l.LineStyle.Color = c
			p.Add(l)
			p.Legend.Add(s.name, l)
		}
		drawn++
	}
	if drawn == 0 {
		return false, nil
	}
	return true, save(p, 9*vg.Inch, 6*vg.Inch, filename)
}

// save writes the plot in the format given by the file extension, adding
// .png when there is none.
func save(p *plot.Plot, width, height vg.Length, filename string) error {
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png", ".svg", ".pdf", ".jpg", ".jpeg", ".eps", ".tif", ".tiff":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}

// reSamples picks the lowest, middle and highest of the sorted values.
func reSamples(res []float64) []float64 {
	idx := []int{0, len(res) / 2, len(res) - 1}
	var out []float64
	for _, i := range idx {
		if len(out) > 0 && out[len(out)-1] == res[i] {
			continue
		}
		out = append(out, res[i])
	}
	return out
}

func collect(rows []polar.Sample, xy func(polar.Sample) (float64, float64, bool)) plotter.XYs {
	var out plotter.XYs
	for _, s := range rows {
		if x, y, ok := xy(s); ok {
			out = append(out, plotter.XY{X: x, Y: y})
		}
	}
	return out
}

func pair(x float64, get func() (float64, bool)) (float64, float64, bool) {
	y, ok := get()
	return x, y, ok
}

func groupThousands(v float64) string {
	s := fmt.Sprintf("%.0f", v)
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return b.String()
}

type byX plotter.XYs

func (s byX) Len() int           { return len(s) }
func (s byX) Less(i, j int) bool { return s[i].X < s[j].X }
func (s byX) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }
