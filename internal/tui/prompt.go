// Package tui provides the interactive front ends for the classifier: a
// bubbletea prompt for terminals and a line prompt for pipes.
package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/snoonan2/theory-extraCredit/internal/littleo"
	"github.com/snoonan2/theory-extraCredit/internal/viz"
)

const promptText = "Enter the Big O expression (e.g., 'n^2'): "

// Prompt is a bubbletea model that reads expressions and shows the
// little-o listing for each one.
type Prompt struct {
	classifier *littleo.Classifier
	styles     viz.Styles
	input      []rune
	expr       string
	results    []string
	quitting   bool
}

func NewPrompt(c *littleo.Classifier, s viz.Styles) Prompt {
	return Prompt{classifier: c, styles: s}
}

func (m Prompt) Init() tea.Cmd { return nil }

func (m Prompt) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.quitting = true
		return m, tea.Quit
	case tea.KeyEnter:
		expr := strings.TrimSpace(string(m.input))
		if expr == "" {
			return m, nil
		}
		m.expr = expr
		m.results = m.classifier.FindLittleO(expr)
		m.input = m.input[:0]
	case tea.KeyBackspace:
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}
	case tea.KeySpace:
		m.input = append(m.input, ' ')
	case tea.KeyRunes:
		m.input = append(m.input, key.Runes...)
	}
	return m, nil
}

func (m Prompt) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(viz.Menu(m.classifier.Catalog(), m.styles))
	b.WriteString("\n")
	b.WriteString(m.styles.Heading.Render(promptText))
	b.WriteString(string(m.input))
	b.WriteString(m.styles.Key.Render("█"))
	b.WriteString("\n\n")

	if m.expr != "" {
		body := viz.Results(m.expr, m.results, m.styles)
		if !littleo.IsError(m.results) {
			body += "\n" + viz.Footer(m.expr, m.styles)
		}
		b.WriteString(m.styles.Panel.Render(strings.TrimRight(body, "\n")))
		b.WriteString("\n")
	}

	b.WriteString(m.styles.Warn.Render("enter: classify · backspace: edit · esc: quit"))
	b.WriteString("\n")
	return b.String()
}

// Expression returns the last submitted expression.
func (m Prompt) Expression() string { return m.expr }

// Results returns the listing for the last submitted expression.
func (m Prompt) Results() []string { return m.results }

// Run starts the prompt on the terminal.
func Run(c *littleo.Classifier, s viz.Styles) error {
	_, err := tea.NewProgram(NewPrompt(c, s)).Run()
	return err
}
