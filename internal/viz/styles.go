package viz

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles are the lipgloss styles derived from one Theme.
type Styles struct {
	Title   lipgloss.Style
	Heading lipgloss.Style
	Name    lipgloss.Style
	Key     lipgloss.Style
	Subtle  lipgloss.Style
	Good    lipgloss.Style
	Warn    lipgloss.Style
	Bad     lipgloss.Style
	Panel   lipgloss.Style
}

func NewStyles(t Theme) Styles {
	return Styles{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(t.Secondary),
		Heading: lipgloss.NewStyle().Bold(true).Foreground(t.Primary),
		Name:    lipgloss.NewStyle().Foreground(t.Text),
		Key:     lipgloss.NewStyle().Foreground(t.Accent),
		Subtle:  lipgloss.NewStyle().Foreground(t.Muted),
		Good:    lipgloss.NewStyle().Bold(true).Foreground(t.Success),
		Warn:    lipgloss.NewStyle().Foreground(t.Warning),
		Bad:     lipgloss.NewStyle().Bold(true).Foreground(t.Error),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Muted).
			Padding(0, 1),
	}
}

// Separator draws a decorative rule
func (s Styles) Separator(width int) string {
	if width < 8 {
		width = 8
	}
	mid := width / 2
	left := strings.Repeat("─", mid-3)
	right := strings.Repeat("─", width-mid-3)
	return s.Subtle.Render(left + " ◆ " + right)
}

// Sparkline renders one block character per value, scaled between the
// smallest and largest finite value. Non-finite values render as a gap.
func (s Styles) Sparkline(values []float64) string {
	chars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	rng := hi - lo
	if rng <= 0 || math.IsInf(rng, 0) {
		rng = 1
	}

	var b strings.Builder
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			b.WriteString(s.Subtle.Render("·"))
			continue
		}
		norm := (v - lo) / rng
		idx := int(norm * float64(len(chars)-1))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(chars) {
			idx = len(chars) - 1
		}
		b.WriteString(s.Key.Render(string(chars[idx])))
	}
	return b.String()
}
