package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/numkit/internal/legendre"
	"github.com/san-kum/numkit/internal/numeric"
)

const (
	explorerSamples = 500
	maxDegree       = 12
)

// Explorer is a Bubble Tea model that plots L0..Lp on [-1, 1] and lets
// the user change p and read values at individual sample points.
type Explorer struct {
	degree  int
	cursor  int
	braille bool
	theme   Theme
	styles  Styles
	x       numeric.Vector
	table   numeric.Table
	err     error
	width   int
	height  int
}

func NewExplorer(degree int) *Explorer {
	if degree < 0 {
		degree = 0
	}
	if degree > maxDegree {
		degree = maxDegree
	}
	e := &Explorer{
		degree: degree,
		cursor: explorerSamples / 2,
		theme:  ThemeCyberpunk,
		styles: NewStyles(ThemeCyberpunk),
		x:      numeric.Linspace(-1, 1, explorerSamples),
		width:  80,
		height: 24,
	}
	e.recompute()
	return e
}

func (e *Explorer) recompute() {
	e.table, e.err = legendre.Evaluate(e.x, e.degree)
}

func (e *Explorer) Degree() int { return e.degree }

func (e *Explorer) Init() tea.Cmd { return nil }

func (e *Explorer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return e.handleKey(msg)
	case tea.WindowSizeMsg:
		e.width, e.height = msg.Width, msg.Height
	}
	return e, nil
}

func (e *Explorer) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return e, tea.Quit
	case "+", "=", "up", "k":
		if e.degree < maxDegree {
			e.degree++
			e.recompute()
		}
	case "-", "_", "down", "j":
		if e.degree > 0 {
			e.degree--
			e.recompute()
		}
	case "left", "h":
		e.cursor = max(0, e.cursor-5)
	case "right", "l":
		e.cursor = min(len(e.x)-1, e.cursor+5)
	case "b":
		e.braille = !e.braille
	case "t":
		e.theme = NextTheme(e.theme)
		e.styles = NewStyles(e.theme)
	}
	return e, nil
}

func (e *Explorer) View() string {
	s := e.styles
	var b strings.Builder
	b.WriteString(s.Heading(fmt.Sprintf("Legendre Polynomials up to Degree %d", e.degree)))
	b.WriteString("\n\n")

	if e.err != nil {
		b.WriteString(s.Error.Render(e.err.Error()))
		b.WriteString("\n")
		return b.String()
	}

	w := max(20, e.width-30)
	h := max(6, e.height-10)
	var plot string
	if e.braille {
		plot = e.brailleView(w, h)
	} else {
		plot = LegendreChart(e.x, e.table, ChartSize{Width: w, Height: h})
	}

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, plot, "  ", s.Panel.Render(e.readout())))
	b.WriteString("\n\n")
	b.WriteString(s.Hint("+/-", "degree", "←/→", "cursor", "b", "braille", "t", "theme", "q", "quit"))
	b.WriteString("\n")
	return b.String()
}

func (e *Explorer) brailleView(w, h int) string {
	c := NewCanvas(w, h)
	lo, hi := Bounds(e.table...)
	for _, row := range e.table {
		c.Plot(row, lo, hi)
	}
	return lipgloss.NewStyle().Foreground(e.theme.Primary).Render(c.String())
}

// readout lists every L_n at the cursor sample.
func (e *Explorer) readout() string {
	s := e.styles
	var b strings.Builder
	b.WriteString(s.Label.Render("x = ") + s.Value.Render(fmt.Sprintf("%+.4f", e.x[e.cursor])))
	for n, row := range e.table {
		b.WriteString(fmt.Sprintf("\n%s %s",
			s.Label.Render(fmt.Sprintf("L%-2d", n)),
			s.Value.Render(fmt.Sprintf("%+.6f", row[e.cursor]))))
	}
	return b.String()
}

// RunExplorer starts the explorer on the alternate screen.
func RunExplorer(degree int) error {
	_, err := tea.NewProgram(NewExplorer(degree), tea.WithAltScreen()).Run()
	return err
}
