package viz

import (
	"fmt"
	"math"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/numkit/internal/experiment"
	"github.com/san-kum/numkit/internal/numeric"
)

var seriesColors = []asciigraph.AnsiColor{
	asciigraph.Red, asciigraph.Green, asciigraph.Blue, asciigraph.Yellow,
	asciigraph.Magenta, asciigraph.Cyan, asciigraph.Orange, asciigraph.White,
}

type ChartSize struct {
	Width  int
	Height int
}

var DefaultSize = ChartSize{Width: 80, Height: 15}

// LegendreChart plots one series per table row. asciigraph spreads the
// samples evenly across the width, so x is only used for the caption.
func LegendreChart(x []float64, table numeric.Table, size ChartSize) string {
	if table.Rows() == 0 || table.Cols() == 0 {
		return ""
	}
	series := make([][]float64, table.Rows())
	legends := make([]string, table.Rows())
	colors := make([]asciigraph.AnsiColor, table.Rows())
	for n, row := range table {
		series[n] = finiteOnly(row)
		legends[n] = fmt.Sprintf("L%d(x)", n)
		colors[n] = seriesColors[n%len(seriesColors)]
	}

	caption := fmt.Sprintf("Legendre Polynomials up to Degree %d", table.Rows()-1)
	if len(x) > 0 {
		caption += fmt.Sprintf("  (x from %g to %g)", x[0], x[len(x)-1])
	}

	return asciigraph.PlotMany(series,
		asciigraph.Height(size.Height),
		asciigraph.Width(size.Width),
		asciigraph.Caption(caption),
		asciigraph.SeriesColors(colors...),
		asciigraph.SeriesLegends(legends...),
	)
}

func TrajectoryChart(traj *numeric.Trajectory, caption string, size ChartSize) string {
	if traj.Len() == 0 {
		return ""
	}
	return asciigraph.Plot(finiteOnly(traj.Values),
		asciigraph.Height(size.Height),
		asciigraph.Width(size.Width),
		asciigraph.Caption(caption),
	)
}

// ResultChart plots every column but the first against row index.
func ResultChart(res *experiment.Result, size ChartSize) string {
	if len(res.Columns) < 2 || len(res.Rows) == 0 {
		return ""
	}
	series := make([][]float64, 0, len(res.Columns)-1)
	for _, name := range res.Columns[1:] {
		series = append(series, finiteOnly(res.Column(name)))
	}
	colors := make([]asciigraph.AnsiColor, len(series))
	for i := range colors {
		colors[i] = seriesColors[i%len(seriesColors)]
	}
	return asciigraph.PlotMany(series,
		asciigraph.Height(size.Height),
		asciigraph.Width(size.Width),
		asciigraph.Caption(fmt.Sprintf("%s vs %s", res.Kernel, res.Columns[0])),
		asciigraph.SeriesColors(colors...),
		asciigraph.SeriesLegends(res.Columns[1:]...),
	)
}

// finiteOnly replaces non-finite values with NaN, which asciigraph skips.
func finiteOnly(v []float64) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		if math.IsInf(x, 0) {
			x = math.NaN()
		}
		out[i] = x
	}
	return out
}
