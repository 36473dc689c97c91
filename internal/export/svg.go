package export

import (
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/numkit/internal/numeric"
)

type Series struct {
	Label string
	X, Y  []float64
}

// Figure is a line chart with labelled axes, legend and optional grid.
type Figure struct {
	Title  string
	XLabel string
	YLabel string
	Series []Series
	Grid   bool
	Width  int
	Height int
}

var palette = []string{"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd", "#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf"}

const (
	marginLeft   = 60.0
	marginRight  = 110.0
	marginTop    = 40.0
	marginBottom = 50.0
	gridLines    = 5
)

// LegendreFigure draws one curve per table row labelled L{n}(x).
func LegendreFigure(x []float64, table numeric.Table) *Figure {
	fig := &Figure{
		Title:  fmt.Sprintf("Legendre Polynomials up to Degree %d", table.Rows()-1),
		XLabel: "x",
		YLabel: "L(x)",
		Grid:   true,
	}
	for n, row := range table {
		fig.Series = append(fig.Series, Series{Label: fmt.Sprintf("L%d(x)", n), X: x, Y: row})
	}
	return fig
}

func TrajectoryFigure(traj *numeric.Trajectory, title string) *Figure {
	return &Figure{
		Title:  title,
		XLabel: "t",
		YLabel: "y(t)",
		Grid:   true,
		Series: []Series{{Label: "y", X: traj.Times, Y: traj.Values}},
	}
}

type bounds struct {
	minX, maxX, minY, maxY float64
}

func (f *Figure) bounds() (bounds, bool) {
	b := bounds{math.Inf(1), math.Inf(-1), math.Inf(1), math.Inf(-1)}
	found := false
	for _, s := range f.Series {
		for i := range s.X {
			if i >= len(s.Y) || !finite(s.X[i]) || !finite(s.Y[i]) {
				continue
			}
			b.minX = math.Min(b.minX, s.X[i])
			b.maxX = math.Max(b.maxX, s.X[i])
			b.minY = math.Min(b.minY, s.Y[i])
			b.maxY = math.Max(b.maxY, s.Y[i])
			found = true
		}
	}
	if !found {
		return b, false
	}
	if b.maxX == b.minX {
		b.minX, b.maxX = b.minX-1, b.maxX+1
	}
	if b.maxY == b.minY {
		b.minY, b.maxY = b.minY-1, b.maxY+1
	}
	padY := (b.maxY - b.minY) * 0.05
	b.minY -= padY
	b.maxY += padY
	return b, true
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// SVG renders the figure. Figures without any finite point render empty.
func (f *Figure) SVG() string {
	b, ok := f.bounds()
	if !ok {
		return ""
	}

	width, height := f.Width, f.Height
	if width <= 0 {
		width = 720
	}
	if height <= 0 {
		height = 480
	}
	plotW := float64(width) - marginLeft - marginRight
	plotH := float64(height) - marginTop - marginBottom

	px := func(x float64) float64 { return marginLeft + (x-b.minX)/(b.maxX-b.minX)*plotW }
	py := func(y float64) float64 { return marginTop + plotH - (y-b.minY)/(b.maxY-b.minY)*plotH }

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d" font-family="sans-serif" font-size="12">
<rect width="100%%" height="100%%" fill="#ffffff"/>
`, width, height, width, height))

	sb.WriteString(fmt.Sprintf(`<text class="title" x="%.1f" y="%.1f" text-anchor="middle" font-size="16">%s</text>
`, marginLeft+plotW/2, marginTop/2+6, escape(f.Title)))

	if f.Grid {
		sb.WriteString(`<g class="grid" stroke="#dddddd" stroke-width="1">` + "\n")
		for i := 0; i <= gridLines; i++ {
			gx := marginLeft + plotW*float64(i)/gridLines
			gy := marginTop + plotH*float64(i)/gridLines
			sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f"/>
`, gx, marginTop, gx, marginTop+plotH))
			sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f"/>
`, marginLeft, gy, marginLeft+plotW, gy))
		}
		sb.WriteString("</g>\n")
	}

	// frame and tick labels
	sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="none" stroke="#333333"/>
`, marginLeft, marginTop, plotW, plotH))
	for i := 0; i <= gridLines; i++ {
		xv := b.minX + (b.maxX-b.minX)*float64(i)/gridLines
		yv := b.minY + (b.maxY-b.minY)*float64(i)/gridLines
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" text-anchor="middle">%.3g</text>
`, px(xv), marginTop+plotH+16, xv))
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" text-anchor="end">%.3g</text>
`, marginLeft-6, py(yv)+4, yv))
	}
	sb.WriteString(fmt.Sprintf(`<text class="xlabel" x="%.1f" y="%d" text-anchor="middle">%s</text>
`, marginLeft+plotW/2, height-10, escape(f.XLabel)))
	sb.WriteString(fmt.Sprintf(`<text class="ylabel" x="14" y="%.1f" text-anchor="middle" transform="rotate(-90 14 %.1f)">%s</text>
`, marginTop+plotH/2, marginTop+plotH/2, escape(f.YLabel)))

	for i, s := range f.Series {
		color := palette[i%len(palette)]
		sb.WriteString(fmt.Sprintf(`<path class="series" fill="none" stroke="%s" stroke-width="1.5" d="`, color))
		pen := false
		for j := range s.X {
			if j >= len(s.Y) || !finite(s.X[j]) || !finite(s.Y[j]) {
				pen = false
				continue
			}
			cmd := "L"
			if !pen {
				cmd = "M"
				pen = true
			}
			sb.WriteString(fmt.Sprintf("%s%.1f,%.1f ", cmd, px(s.X[j]), py(s.Y[j])))
		}
		sb.WriteString(`"/>` + "\n")
	}

	// legend
	lx := marginLeft + plotW + 12
	for i, s := range f.Series {
		ly := marginTop + 10 + float64(i)*18
		color := palette[i%len(palette)]
		sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="2"/>
<text class="legend" x="%.1f" y="%.1f">%s</text>
`, lx, ly, lx+20, ly, color, lx+26, ly+4, escape(s.Label)))
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}

var escaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")

func escape(s string) string {
	return escaper.Replace(s)
}
