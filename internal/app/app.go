// Package app wires the trainer, advisor, and store into the root
// Bubble Tea model.
package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mbuckley/feprep/internal/advisor"
	"github.com/mbuckley/feprep/internal/progress"
	"github.com/mbuckley/feprep/internal/question"
	"github.com/mbuckley/feprep/internal/router"
	"github.com/mbuckley/feprep/internal/screen"
	"github.com/mbuckley/feprep/internal/screens/home"
	"github.com/mbuckley/feprep/internal/screens/scoreboard"
	"github.com/mbuckley/feprep/internal/store"
	"github.com/mbuckley/feprep/internal/topic"
	"github.com/mbuckley/feprep/internal/trainer"
	"github.com/mbuckley/feprep/internal/ui/layout"
	"github.com/mbuckley/feprep/internal/ui/theme"
)

// Options carries the app's external dependencies. Provider may be nil;
// advisory text then falls back to fixed strings.
type Options struct {
	Store    *store.Store
	Provider advisor.Provider
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router     *router.Router
	controller *trainer.Controller
	width      int
	height     int
}

// newAppModel builds the controller and the initial screen stack,
// resuming the last persisted mode.
func newAppModel(ctx context.Context, opts Options) (AppModel, error) {
	settings := opts.Store.SettingsRepo()

	if name, err := settings.Get(ctx, store.KeyTheme); err == nil && name != "" {
		theme.Apply(name)
	}

	tracker, err := progress.NewTracker(ctx, opts.Store.SequenceRepo())
	if err != nil {
		return AppModel{}, fmt.Errorf("load progress: %w", err)
	}

	controller, err := trainer.NewController(ctx, question.NewEngine(), tracker, settings, opts.Store.LedgerRepo())
	if err != nil {
		return AppModel{}, fmt.Errorf("load session state: %w", err)
	}

	advice := advisor.NewService(opts.Provider, advisor.DefaultConfig().Timeout)

	r := router.New(home.New(controller, advice))
	if controller.SavedMode(ctx) == trainer.ModeScoreboard {
		r.Push(scoreboard.New(controller))
	}

	return AppModel{router: r, controller: controller}, nil
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, topic.DisplayName(m.controller.Topic()), m.controller.Score(), m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		if hints := hp.KeyHints(); len(hints) > 0 {
			footerHints = hints
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(ctx context.Context, opts Options) error {
	model, err := newAppModel(ctx, opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model)
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
