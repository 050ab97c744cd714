package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/mbuckley/feprep/internal/ui/theme"
)

// ProgressBar displays a horizontal progress bar with an optional
// "position/total" count.
type ProgressBar struct {
	Label     string
	Position  int
	Total     int
	ShowCount bool
	Width     int
}

// NewProgressBar creates a progress bar for position out of total.
func NewProgressBar(label string, position, total int, showCount bool, width int) ProgressBar {
	return ProgressBar{
		Label:     label,
		Position:  position,
		Total:     total,
		ShowCount: showCount,
		Width:     width,
	}
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	var result string

	if p.Label != "" {
		result += lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label) + "  "
	}

	count := ""
	if p.ShowCount {
		count = fmt.Sprintf("  %d/%d", p.Position, p.Total)
	}

	labelWidth := lipgloss.Width(result)
	barWidth := p.Width - labelWidth - lipgloss.Width(count)
	if barWidth < 4 {
		barWidth = 4
	}

	var percent float64
	if p.Total > 0 {
		percent = float64(p.Position) / float64(p.Total)
	}

	filled := int(float64(barWidth) * percent)
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}
	empty := barWidth - filled

	result += lipgloss.NewStyle().
		Background(theme.Secondary).
		Render(strings.Repeat(" ", filled))
	result += lipgloss.NewStyle().
		Background(theme.Border).
		Render(strings.Repeat(" ", empty))

	if p.ShowCount {
		result += lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(count)
	}

	return result
}
