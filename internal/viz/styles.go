package viz

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles bundles the lipgloss styles derived from a theme.
type Styles struct {
	Title lipgloss.Style
	Label lipgloss.Style
	Value lipgloss.Style
	Muted lipgloss.Style
	Error lipgloss.Style
	Key   lipgloss.Style
	Panel lipgloss.Style
}

func NewStyles(t Theme) Styles {
	return Styles{
		Title: lipgloss.NewStyle().Bold(true).Foreground(t.Primary),
		Label: lipgloss.NewStyle().Foreground(t.Muted),
		Value: lipgloss.NewStyle().Bold(true).Foreground(t.Text),
		Muted: lipgloss.NewStyle().Foreground(t.Muted),
		Error: lipgloss.NewStyle().Bold(true).Foreground(t.Error),
		Key:   lipgloss.NewStyle().Bold(true).Foreground(t.Accent),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Muted).
			Padding(0, 1),
	}
}

// Default is used by the command line output.
var Default = NewStyles(ThemeCyberpunk)

// Heading renders a title with an underline of matching width.
func (s Styles) Heading(title string) string {
	return s.Title.Render(title) + "\n" + s.Muted.Render(strings.Repeat("─", lipgloss.Width(title)))
}

// KV renders "label: value" pairs, one per line, labels aligned.
func (s Styles) KV(pairs map[string]float64) string {
	keys := make([]string, 0, len(pairs))
	width := 0
	for k := range pairs {
		keys = append(keys, k)
		if len(k) > width {
			width = len(k)
		}
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		b.WriteString(fmt.Sprintf("  %s  %s\n",
			s.Label.Render(fmt.Sprintf("%-*s", width, k)),
			s.Value.Render(fmt.Sprintf("%.16g", pairs[k]))))
	}
	return b.String()
}

// Hint renders "key action" pairs on one line.
func (s Styles) Hint(pairs ...string) string {
	var parts []string
	for i := 0; i+1 < len(pairs); i += 2 {
		parts = append(parts, s.Key.Render(pairs[i])+" "+s.Muted.Render(pairs[i+1]))
	}
	return strings.Join(parts, "  ")
}
