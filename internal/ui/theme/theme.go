package theme

import (
	"charm.land/lipgloss/v2"
)

// Theme names persisted as the learner's display preference.
const (
	NameDark  = "dark"
	NameLight = "light"
)

// Color palette: steel-and-amber, readable on dark terminals
var (
	Primary   = lipgloss.Color("#3B82F6") // Blue
	Secondary = lipgloss.Color("#0EA5E9") // Sky
	Accent    = lipgloss.Color("#F59E0B") // Amber
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#EF4444") // Red
	Text      = lipgloss.Color("#F1F5F9") // Near-white
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#0B1120") // Deep Navy
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// Apply switches the palette for the named theme. Unknown names keep
// the dark defaults.
func Apply(name string) {
	if name != NameLight {
		return
	}
	Primary = lipgloss.Color("#1D4ED8")
	Secondary = lipgloss.Color("#0369A1")
	Accent = lipgloss.Color("#B45309")
	Success = lipgloss.Color("#15803D")
	Error = lipgloss.Color("#B91C1C")
	Text = lipgloss.Color("#0F172A")
	TextDim = lipgloss.Color("#475569")
	BgDark = lipgloss.Color("#F8FAFC")
	BgCard = lipgloss.Color("#E2E8F0")
	Border = lipgloss.Color("#94A3B8")
	rebuildStyles()
}

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var (
	Header = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Footer = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)
)

func rebuildStyles() {
	Title = Title.Foreground(Primary)
	Subtitle = Subtitle.Foreground(TextDim)
	Body = Body.Foreground(Text)
	Hint = Hint.Foreground(TextDim)
	Header = Header.Background(BgCard)
	Footer = Footer.Background(BgCard)
	Card = Card.Background(BgCard).BorderForeground(Border)
	Selected = Selected.Foreground(Primary)
	Unselected = Unselected.Foreground(Text)
	Correct = Correct.Foreground(Success)
	Incorrect = Incorrect.Foreground(Error)
	ProgressFilled = ProgressFilled.Background(Secondary)
	ProgressEmpty = ProgressEmpty.Background(Border)
}
