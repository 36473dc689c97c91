package viz

import (
	"math"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/numkit/internal/legendre"
	"github.com/san-kum/numkit/internal/numeric"
)

func TestLegendreChartLegends(t *testing.T) {
	x := numeric.Linspace(-1, 1, 50)
	table, err := legendre.Evaluate(x, 3)
	require.NoError(t, err)

	out := LegendreChart(x, table, ChartSize{Width: 40, Height: 8})
	require.Contains(t, out, "Legendre Polynomials up to Degree 3")
	for _, label := range []string{"L0(x)", "L1(x)", "L2(x)", "L3(x)"} {
		require.Contains(t, out, label)
	}
}

func TestLegendreChartEmpty(t *testing.T) {
	require.Empty(t, LegendreChart(nil, nil, DefaultSize))
}

func TestTrajectoryChart(t *testing.T) {
	traj := &numeric.Trajectory{
		Times:  numeric.Vector{0, 1, 2},
		Values: numeric.Vector{1, 2, 4},
	}
	out := TrajectoryChart(traj, "rk4", ChartSize{Width: 20, Height: 5})
	require.Contains(t, out, "rk4")
	require.Empty(t, TrajectoryChart(&numeric.Trajectory{}, "x", DefaultSize))
}

func TestCanvasSet(t *testing.T) {
	c := NewCanvas(2, 1)
	c.Set(0, 0)
	c.Set(3, 3)
	c.Set(-1, 0)
	c.Set(100, 100)

	got := []rune(strings.TrimSuffix(c.String(), "\n"))
	require.Len(t, got, 2)
	require.Equal(t, rune(brailleBlank+0x01), got[0])
	require.Equal(t, rune(brailleBlank+0x80), got[1])
}

func TestCanvasPlotSkipsNaN(t *testing.T) {
	c := NewCanvas(4, 2)
	c.Plot([]float64{0, math.NaN(), 1}, 0, 1)
	out := c.String()
	require.NotEqual(t, strings.Repeat(string(rune(brailleBlank)), 4)+"\n"+strings.Repeat(string(rune(brailleBlank)), 4)+"\n", out)

	c.Clear()
	c.Plot([]float64{1, 2}, 1, 1)
	require.Equal(t, strings.Repeat(strings.Repeat(string(rune(brailleBlank)), 4)+"\n", 2), c.String())
}

func TestBounds(t *testing.T) {
	lo, hi := Bounds([]float64{1, math.Inf(1), -2}, []float64{math.NaN(), 3})
	require.Equal(t, -2.0, lo)
	require.Equal(t, 3.0, hi)

	lo, hi = Bounds([]float64{5, 5})
	require.Equal(t, 4.0, lo)
	require.Equal(t, 6.0, hi)

	lo, hi = Bounds()
	require.Equal(t, -1.0, lo)
	require.Equal(t, 1.0, hi)
}

func TestNextThemeCycles(t *testing.T) {
	th := Themes[0]
	for range Themes {
		th = NextTheme(th)
	}
	require.Equal(t, Themes[0].Name, th.Name)
	require.Equal(t, ThemeCyberpunk.Name, GetTheme("missing").Name)
}

func TestExplorerKeys(t *testing.T) {
	e := NewExplorer(3)
	require.Equal(t, 3, e.Degree())

	press := func(s string) {
		var msg tea.KeyMsg
		if s == "ctrl+c" {
			msg = tea.KeyMsg{Type: tea.KeyCtrlC}
		} else {
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
		}
		_, _ = e.Update(msg)
	}

	press("+")
	require.Equal(t, 4, e.Degree())
	require.Equal(t, 5, e.table.Rows())

	press("-")
	press("-")
	require.Equal(t, 2, e.Degree())

	for i := 0; i < 5; i++ {
		press("-")
	}
	require.Equal(t, 0, e.Degree())

	press("b")
	require.True(t, e.braille)
	require.NotEmpty(t, e.View())

	press("t")
	require.Equal(t, Themes[1].Name, e.theme.Name)

	_, cmd := e.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
}

func TestExplorerViewShowsReadout(t *testing.T) {
	e := NewExplorer(2)
	view := e.View()
	require.Contains(t, view, "Legendre Polynomials up to Degree 2")
	require.Contains(t, view, "L2")
}
