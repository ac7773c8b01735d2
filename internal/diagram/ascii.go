package diagram

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/guptarohit/asciigraph"

	"github.com/alexiusacademia/gowing/internal/wing"
)

// DrawSpanLoad plots the lift per unit span (N/m) from root to tip.
// Stations without section data show as gaps. It returns "" when no
// station has a value.
func DrawSpanLoad(loads []wing.StationLoad, width, height int) string {
	data := make([]float64, len(loads))
	present := 0
	for i, l := range loads {
		data[i] = l.LiftPerSpan.NaN()
		if !math.IsNaN(data[i]) {
			present++
		}
	}
	if present == 0 {
		return ""
	}
	if height <= 0 {
		height = 10
	}

	opts := []asciigraph.Option{
		asciigraph.Height(height),
		asciigraph.Precision(2),
		asciigraph.Caption(fmt.Sprintf("lift per span (N/m), root → tip, %d stations", len(loads))),
	}
	if width > 0 {
		opts = append(opts, asciigraph.Width(width))
	}
	return asciigraph.Plot(data, opts...)
}

// DrawPlanform draws the top view of one half-wing, root on the left and
// tip on the right, with an unswept leading edge.
func DrawPlanform(p wing.Planform, width int) string {
	if width < 4 {
		width = 40
	}
	if !(p.RootChord > 0) || !(p.Span > 0) {
		return "  (degenerate planform)\n"
	}

	// one row per 1/8 of the root chord
	rows := 8
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("  root c=%.3f m%s tip c=%.3f m\n",
		p.RootChord, strings.Repeat(" ", max(1, width-28)), p.TipChord()))
	sb.WriteString("  ┌" + strings.Repeat("─", width) + "\n")
	for r := 0; r < rows; r++ {
		var line strings.Builder
		for col := 0; col < width; col++ {
			eta := (float64(col) + 0.5) / float64(width)
			local := 1 + (p.Taper-1)*eta
			if float64(r)+0.5 < local*float64(rows) {
				line.WriteString("█")
			} else {
				line.WriteString(" ")
			}
		}
		sb.WriteString("  │" + strings.TrimRight(line.String(), " ") + "\n")
	}
	sb.WriteString(fmt.Sprintf("  └%s b/2 = %.3f m\n", strings.Repeat("─", width), p.SemiSpan()))
	return sb.String()
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := utf8.RuneCountInString(title)
	for _, line := range lines {
		maxLen = max(maxLen, utf8.RuneCountInString(line))
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	pad := func(s string) string {
		return s + strings.Repeat(" ", maxLen-4-utf8.RuneCountInString(s))
	}
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(title)))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(line)))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}
