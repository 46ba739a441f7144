package tour

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles groups the lipgloss styles applied by the Runner.
type Styles struct {
	Header lipgloss.Style
	Rule   lipgloss.Style
	Fail   lipgloss.Style
}

// NewStyles returns the runner styles. With noColor set, all styles render
// text unchanged.
func NewStyles(noColor bool) Styles {
	if noColor {
		plain := lipgloss.NewStyle()
		return Styles{Header: plain, Rule: plain, Fail: plain}
	}
	return Styles{
		Header: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		Rule:   lipgloss.NewStyle().Faint(true),
		Fail:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
	}
}

// rule renders a horizontal divider of the given width.
func (s Styles) rule(width int) string {
	return s.Rule.Render(strings.Repeat("-", width))
}
