// Package scoreboard shows past exam results and recent answers.
package scoreboard

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mbuckley/feprep/internal/router"
	"github.com/mbuckley/feprep/internal/screen"
	"github.com/mbuckley/feprep/internal/topic"
	"github.com/mbuckley/feprep/internal/trainer"
	"github.com/mbuckley/feprep/internal/ui/layout"
	"github.com/mbuckley/feprep/internal/ui/theme"
)

// openedMsg is sent once the controller has switched to the
// scoreboard overlay.
type openedMsg struct {
	Err error
}

// ScoreboardScreen renders the leaderboard and history ledgers,
// newest first.
type ScoreboardScreen struct {
	controller *trainer.Controller
	errMsg     string
}

var _ screen.Screen = (*ScoreboardScreen)(nil)
var _ screen.KeyHintProvider = (*ScoreboardScreen)(nil)

// New creates the scoreboard screen. The controller enters its
// scoreboard state when the screen initializes.
func New(controller *trainer.Controller) *ScoreboardScreen {
	return &ScoreboardScreen{controller: controller}
}

func (s *ScoreboardScreen) Init() tea.Cmd {
	return func() tea.Msg {
		return openedMsg{Err: s.controller.OpenScoreboard(context.Background())}
	}
}

func (s *ScoreboardScreen) Title() string {
	return "Scoreboard"
}

func (s *ScoreboardScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ScoreboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if opened, ok := msg.(openedMsg); ok {
		if opened.Err != nil {
			s.errMsg = opened.Err.Error()
		}
		return s, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch kmsg.String() {
	case "esc", "enter", "q":
		// Closing the overlay re-enters practice if it was open.
		if _, open := s.controller.State().(trainer.Scoreboard); open {
			if err := s.controller.CloseScoreboard(context.Background()); err != nil {
				return s, nil
			}
		}
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return s, nil
}

func (s *ScoreboardScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).
			Height(height).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render("Something went wrong:\n\n" + s.errMsg)
	}

	var b strings.Builder

	heading := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	body := lipgloss.NewStyle().Foreground(theme.Text)

	b.WriteString("  " + heading.Render("Exam results"))
	b.WriteString("\n\n")

	records := s.controller.Leaderboard()
	if len(records) == 0 {
		b.WriteString("  " + dim.Render("No exams taken yet."))
		b.WriteString("\n")
	}
	for _, r := range records {
		grade := theme.Incorrect.Render("FAIL")
		if r.Passed {
			grade = theme.Correct.Render("PASS")
		}
		line := fmt.Sprintf("  %s  %-16s  %3d/%d  ",
			r.Timestamp.Format("2006-01-02 15:04"),
			topic.DisplayName(r.Topic),
			r.Score, r.Total)
		b.WriteString(body.Render(line) + grade)
		b.WriteString("\n")
	}

	b.WriteString("\n  " + heading.Render("Recent answers"))
	b.WriteString("\n\n")

	entries := s.controller.History()
	if len(entries) == 0 {
		b.WriteString("  " + dim.Render("No answers recorded yet."))
		b.WriteString("\n")
	}
	for _, e := range entries {
		mark := theme.Incorrect.Render("✗")
		if e.Correct {
			mark = theme.Correct.Render("✓")
		}
		line := fmt.Sprintf("  %s  %-16s  %-24s  ",
			e.Timestamp.Format("2006-01-02 15:04"),
			topic.DisplayName(e.Topic),
			e.QuestionID)
		b.WriteString(body.Render(line) + mark)
		b.WriteString("\n")
	}

	b.WriteString("\n  " + dim.Render(fmt.Sprintf("Practice score: %d", s.controller.Score())))

	return lipgloss.NewStyle().Width(width).Height(height).Render(b.String())
}
