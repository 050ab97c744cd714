package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/mbuckley/feprep/internal/ui/layout"
)

// Screen is one full-window view managed by the router.
type Screen interface {
	// Init returns an initial command when the screen is first shown.
	Init() tea.Cmd

	// Update handles messages and returns the updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content between header and footer.
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is implemented by screens that supply their own
// footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
