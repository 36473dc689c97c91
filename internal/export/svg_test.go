package export

import (
	"math"
	"strings"
	"testing"

	"github.com/san-kum/numkit/internal/legendre"
	"github.com/san-kum/numkit/internal/numeric"
)

func TestLegendreFigure(t *testing.T) {
	x := numeric.Linspace(-1, 1, 50)
	table, err := legendre.Evaluate(x, 3)
	if err != nil {
		t.Fatalf("evaluate failed: %v", err)
	}

	svg := LegendreFigure(x, table).SVG()
	if !strings.HasPrefix(svg, "<?xml") {
		t.Fatalf("not an svg document: %q", svg[:20])
	}
	if !strings.Contains(svg, "Legendre Polynomials up to Degree 3") {
		t.Error("missing title")
	}
	for _, label := range []string{"L0(x)", "L1(x)", "L2(x)", "L3(x)"} {
		if !strings.Contains(svg, ">"+label+"<") {
			t.Errorf("missing legend entry %s", label)
		}
	}
	if got := strings.Count(svg, `class="series"`); got != 4 {
		t.Errorf("expected 4 curves, got %d", got)
	}
	if !strings.Contains(svg, `class="grid"`) {
		t.Error("missing grid")
	}
	if !strings.Contains(svg, `class="xlabel" `) || !strings.Contains(svg, ">L(x)</text>") {
		t.Error("missing axis labels")
	}
}

func TestTrajectoryFigure(t *testing.T) {
	traj := &numeric.Trajectory{
		Times:  numeric.Vector{0, 1, 2, 3},
		Values: numeric.Vector{1, math.NaN(), 3, 4},
	}
	svg := TrajectoryFigure(traj, "rk4 <inverse>").SVG()
	if !strings.Contains(svg, "rk4 &lt;inverse&gt;") {
		t.Error("title not escaped")
	}
	// NaN breaks the path into two segments
	path := svg[strings.Index(svg, `class="series"`):]
	path = path[:strings.Index(path, "/>")]
	if strings.Count(path, "M") != 2 {
		t.Errorf("expected two path segments, got %q", path)
	}
}

func TestEmptyFigure(t *testing.T) {
	fig := &Figure{Series: []Series{{X: []float64{1}, Y: []float64{math.Inf(1)}}}}
	if fig.SVG() != "" {
		t.Error("expected empty output without finite points")
	}
}

func TestFlatSeries(t *testing.T) {
	fig := &Figure{Series: []Series{{Label: "c", X: []float64{0, 1}, Y: []float64{2, 2}}}}
	svg := fig.SVG()
	if strings.Contains(svg, "NaN") || strings.Contains(svg, "Inf") {
		t.Errorf("degenerate range produced invalid coordinates")
	}
}
