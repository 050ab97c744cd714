// Package exam runs the bounded scored exam and shows the terminal
// result.
package exam

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
	"github.com/mbuckley/feprep/internal/ui/components"
	"github.com/mbuckley/feprep/internal/ui/layout"
	"github.com/mbuckley/feprep/internal/ui/theme"
)

// examStartedMsg is sent once the controller has drawn the exam's
// question order.
type examStartedMsg struct {
	Err error
}

// ExamScreen drives one exam session on the controller's active topic.
type ExamScreen struct {
	controller *trainer.Controller
	choice     components.MultiChoice
	errMsg     string
	loaded     bool
}

var _ screen.Screen = (*ExamScreen)(nil)
var _ screen.KeyHintProvider = (*ExamScreen)(nil)

// New creates an exam screen. The exam starts when the screen
// initializes; leaving before the last question abandons it silently.
func New(controller *trainer.Controller) *ExamScreen {
	return &ExamScreen{controller: controller}
}

func (s *ExamScreen) Init() tea.Cmd {
	return func() tea.Msg {
		return examStartedMsg{Err: s.controller.StartExam(context.Background())}
	}
}

func (s *ExamScreen) Title() string {
	return "Exam — " + topic.DisplayName(s.controller.Topic())
}

func (s *ExamScreen) KeyHints() []layout.KeyHint {
	switch st := s.controller.State().(type) {
	case trainer.ExamFinished:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Done"},
		}
	case trainer.ExamActive:
		if st.Feedback != nil {
			return []layout.KeyHint{
				{Key: "N", Description: "Next"},
				{Key: "Esc", Description: "Abandon"},
			}
		}
	}
	return []layout.KeyHint{
		{Key: "A-D", Description: "Answer"},
		{Key: "Esc", Description: "Abandon"},
	}
}

func (s *ExamScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case examStartedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.loaded = true
		s.syncChoice()
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

func (s *ExamScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if !s.loaded {
		return s, nil
	}

	if _, done := s.controller.State().(trainer.ExamFinished); done {
		switch msg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return s, nil
	}

	st, ok := s.controller.State().(trainer.ExamActive)
	if !ok {
		return s, nil
	}

	// Abandoning mid-exam records nothing.
	if msg.String() == "esc" {
		if err := s.controller.EnterPractice(context.Background()); err != nil {
			s.errMsg = err.Error()
			return s, nil
		}
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if key := msg.String(); key == "n" || (key == "enter" && st.Feedback != nil) {
		if st.Feedback == nil {
			return s, nil
		}
		if err := s.controller.Next(context.Background()); err != nil {
			s.errMsg = err.Error()
			return s, nil
		}
		s.syncChoice()
		return s, nil
	}

	var chosen string
	s.choice, chosen = s.choice.Update(msg)
	if chosen == "" {
		return s, nil
	}
	if err := s.controller.SelectOption(context.Background(), chosen); err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	if st, ok := s.controller.State().(trainer.ExamActive); ok && st.Feedback != nil {
		s.choice = s.choice.Reveal(chosen)
	}
	return s, nil
}

// syncChoice rebuilds the option selector from the controller state.
func (s *ExamScreen) syncChoice() {
	st, ok := s.controller.State().(trainer.ExamActive)
	if !ok {
		return
	}
	s.choice = components.NewMultiChoice(st.Question)
	if st.Feedback != nil {
		s.choice = s.choice.Reveal(st.Selected)
	}
}

func (s *ExamScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).
			Height(height).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render("Something went wrong:\n\n" + s.errMsg)
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).
			Height(height).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Preparing exam...")
	}

	switch st := s.controller.State().(type) {
	case trainer.ExamFinished:
		return renderResult(st, width)
	case trainer.ExamActive:
		return s.renderQuestion(st, width)
	default:
		return ""
	}
}

func (s *ExamScreen) renderQuestion(st trainer.ExamActive, width int) string {
	var b strings.Builder

	pos, total := s.controller.Progress()
	bar := components.NewProgressBar("Question", pos+1, total, true, min(width-8, 70))
	b.WriteString("  " + bar.View())
	b.WriteString("\n\n")

	block := lipgloss.NewStyle().Width(min(width-8, 76)).Render(s.choice.View())
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, block))
	b.WriteString("\n")

	if st.Feedback != nil {
		verdict := theme.Incorrect.Render(st.Feedback.Message)
		if st.Feedback.Correct {
			verdict = theme.Correct.Render(st.Feedback.Message)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, verdict))
		b.WriteString("\n")
	}

	return b.String()
}

// renderResult shows the terminal exam record.
func renderResult(st trainer.ExamFinished, width int) string {
	r := st.Record

	var b strings.Builder
	b.WriteString("\n\n")

	grade := theme.Incorrect.Render("FAIL")
	if r.Passed {
		grade = theme.Correct.Render("PASS")
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, grade))
	b.WriteString("\n\n")

	score := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render(fmt.Sprintf("%d / %d", r.Score, r.Total))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, score))
	b.WriteString("\n\n")

	detail := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%s — pass mark %d — recorded %s",
			topic.DisplayName(r.Topic), trainer.PassMark, r.Timestamp.Format("2006-01-02 15:04")))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, detail))

	return b.String()
}
