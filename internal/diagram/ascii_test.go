package diagram

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/alexiusacademia/gowing/internal/opt"
	"github.com/alexiusacademia/gowing/internal/wing"
)

func TestDrawSpanLoad(t *testing.T) {
	loads := make([]wing.StationLoad, 6)
	for i := range loads {
		loads[i].LiftPerSpan = opt.Of(float64(10 - i))
	}
	loads[3].LiftPerSpan = opt.None()

	got := DrawSpanLoad(loads, 0, 5)
	if got == "" {
		t.Fatal("expected a chart")
	}
	if !strings.Contains(got, "6 stations") {
		t.Errorf("caption missing:\n%s", got)
	}
}

func TestDrawSpanLoadAllAbsent(t *testing.T) {
	if got := DrawSpanLoad(make([]wing.StationLoad, 4), 20, 5); got != "" {
		t.Errorf("got %q, want empty", got)
	}
}

func TestDrawPlanform(t *testing.T) {
	fullRows := func(s string, width int) int {
		n := 0
		for _, line := range strings.Split(s, "\n") {
			if strings.HasPrefix(line, "  │") && strings.Count(line, "█") == width {
				n++
			}
		}
		return n
	}

	rect := wing.Planform{Airfoil: "x", Span: 2, RootChord: 0.2, Taper: 1}
	if got := fullRows(DrawPlanform(rect, 20), 20); got != 8 {
		t.Errorf("rectangular wing: %d full rows, want 8", got)
	}

	tapered := rect
	tapered.Taper = 0.5
	if got := fullRows(DrawPlanform(tapered, 20), 20); got != 4 {
		t.Errorf("taper 0.5: %d full rows, want 4", got)
	}

	if got := DrawPlanform(wing.Planform{}, 20); !strings.Contains(got, "degenerate") {
		t.Errorf("zero span drawn as %q", got)
	}
}

func TestDrawSummaryBox(t *testing.T) {
	box := DrawSummaryBox("Best glide", []string{"naca2412  L/D = 14.2", "α = 4°"})
	lines := strings.Split(strings.TrimRight(box, "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("got %d lines, want 5:\n%s", len(lines), box)
	}
	w := utf8.RuneCountInString(lines[0])
	for i, l := range lines {
		if n := utf8.RuneCountInString(l); n != w {
			t.Errorf("line %d is %d runes wide, want %d", i, n, w)
		}
	}
}
