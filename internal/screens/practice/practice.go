// Package practice is the open-ended question screen. It walks the
// topic's permutation one question at a time and shows advisory text
// alongside graded answers.
package practice

import (
	"context"
	"strings"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mbuckley/feprep/internal/advisor"
	"github.com/mbuckley/feprep/internal/router"
	"github.com/mbuckley/feprep/internal/screen"
	"github.com/mbuckley/feprep/internal/screens/exam"
	"github.com/mbuckley/feprep/internal/screens/scoreboard"
	"github.com/mbuckley/feprep/internal/topic"
	"github.com/mbuckley/feprep/internal/trainer"
	"github.com/mbuckley/feprep/internal/ui/components"
	"github.com/mbuckley/feprep/internal/ui/layout"
	"github.com/mbuckley/feprep/internal/ui/theme"
)

// questionLoadedMsg is sent once the controller has entered practice on
// the requested topic.
type questionLoadedMsg struct {
	Err error
}

// tipMsg carries an advisory study tip for a topic.
type tipMsg struct {
	Topic topic.Topic
	Text  string
}

// analysisMsg carries advisory feedback for one graded answer. The
// question id pins the response to the question active at request
// time; stale responses are dropped on arrival.
type analysisMsg struct {
	QuestionID string
	Text       string
}

// PracticeScreen drives practice mode for one topic.
type PracticeScreen struct {
	controller *trainer.Controller
	advice     *advisor.Service
	topic      topic.Topic

	choice   components.MultiChoice
	spin     spinner.Model
	thinking bool
	tip      string
	analysis string
	errMsg   string
	loaded   bool
}

var _ screen.Screen = (*PracticeScreen)(nil)
var _ screen.KeyHintProvider = (*PracticeScreen)(nil)

// New creates a practice screen for the given topic.
func New(controller *trainer.Controller, advice *advisor.Service, t topic.Topic) *PracticeScreen {
	return &PracticeScreen{
		controller: controller,
		advice:     advice,
		topic:      t,
		spin: spinner.New(
			spinner.WithSpinner(spinner.MiniDot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(theme.Secondary)),
		),
	}
}

func (s *PracticeScreen) Init() tea.Cmd {
	return tea.Batch(s.loadTopic(), s.fetchTip())
}

func (s *PracticeScreen) Title() string {
	return "Practice — " + topic.DisplayName(s.topic)
}

func (s *PracticeScreen) KeyHints() []layout.KeyHint {
	if st, ok := s.controller.State().(trainer.PracticeActive); ok && st.Feedback != nil {
		return []layout.KeyHint{
			{Key: "N", Description: "Next"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "A-D", Description: "Answer"},
		{Key: "E", Description: "Exam"},
		{Key: "R", Description: "Restart topic"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *PracticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case questionLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.loaded = true
		s.syncChoice()
		return s, nil

	case tipMsg:
		// A tip for a previously viewed topic is stale.
		if msg.Topic == s.topic {
			s.tip = msg.Text
		}
		return s, nil

	case analysisMsg:
		if st, ok := s.controller.State().(trainer.PracticeActive); ok && st.Question.ID == msg.QuestionID {
			s.analysis = msg.Text
			s.thinking = false
		}
		return s, nil

	case spinner.TickMsg:
		if !s.thinking {
			return s, nil
		}
		var cmd tea.Cmd
		s.spin, cmd = s.spin.Update(msg)
		return s, cmd

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

func (s *PracticeScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if !s.loaded {
		return s, nil
	}
	st, ok := s.controller.State().(trainer.PracticeActive)
	if !ok {
		return s, nil
	}

	// Resync after returning from an overlay that re-entered practice.
	if st.Question.ID != s.choice.Question.ID || (st.Feedback == nil && s.choice.Revealed) {
		s.analysis = ""
		s.thinking = false
		s.syncChoice()
	}

	switch msg.String() {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }

	case "n", "enter":
		if st.Feedback == nil {
			break // enter falls through to option submission below
		}
		if err := s.controller.Next(context.Background()); err != nil {
			s.errMsg = err.Error()
			return s, nil
		}
		s.analysis = ""
		s.thinking = false
		s.syncChoice()
		return s, nil

	case "e":
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: exam.New(s.controller)}
		}

	case "r":
		if err := s.controller.ResetTopic(context.Background()); err != nil {
			s.errMsg = err.Error()
			return s, nil
		}
		s.analysis = ""
		s.thinking = false
		s.syncChoice()
		return s, nil

	case "s":
		return s, func() tea.Msg {
			return router.PushScreenMsg{Screen: scoreboard.New(s.controller)}
		}
	}

	var chosen string
	s.choice, chosen = s.choice.Update(msg)
	if chosen == "" {
		return s, nil
	}
	return s, s.submit(chosen)
}

// submit grades the chosen key and requests advisory analysis for the
// question that was active at submission time.
func (s *PracticeScreen) submit(key string) tea.Cmd {
	if err := s.controller.SelectOption(context.Background(), key); err != nil {
		s.errMsg = err.Error()
		return nil
	}

	st, ok := s.controller.State().(trainer.PracticeActive)
	if !ok || st.Feedback == nil {
		return nil
	}
	s.choice = s.choice.Reveal(key)

	q := st.Question
	correct := st.Feedback.Correct
	s.thinking = true
	return tea.Batch(
		func() tea.Msg {
			text := s.advice.Analysis(context.Background(), q, key, correct)
			return analysisMsg{QuestionID: q.ID, Text: text}
		},
		s.spin.Tick,
	)
}

// loadTopic enters practice on the screen's topic.
func (s *PracticeScreen) loadTopic() tea.Cmd {
	return func() tea.Msg {
		return questionLoadedMsg{Err: s.controller.SwitchTopic(context.Background(), s.topic)}
	}
}

// fetchTip requests a study tip in the background.
func (s *PracticeScreen) fetchTip() tea.Cmd {
	t := s.topic
	return func() tea.Msg {
		return tipMsg{Topic: t, Text: s.advice.Tip(context.Background(), t)}
	}
}

// syncChoice rebuilds the option selector from the controller state.
func (s *PracticeScreen) syncChoice() {
	st, ok := s.controller.State().(trainer.PracticeActive)
	if !ok {
		return
	}
	s.choice = components.NewMultiChoice(st.Question)
	if st.Feedback != nil {
		s.choice = s.choice.Reveal(st.Selected)
	}
}

func (s *PracticeScreen) View(width, height int) string {
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
			Render("Loading...")
	}

	st, ok := s.controller.State().(trainer.PracticeActive)
	if !ok {
		return ""
	}

	var b strings.Builder

	pos, total := s.controller.Progress()
	bar := components.NewProgressBar(topic.DisplayName(s.topic), pos, total, true, min(width-8, 70))
	b.WriteString("  " + bar.View())
	b.WriteString("\n\n")

	block := lipgloss.NewStyle().Width(min(width-8, 76)).Render(s.choice.View())
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, block))
	b.WriteString("\n")

	if st.Feedback != nil {
		b.WriteString(renderFeedback(st, s.analysis, width))
		if s.analysis == "" && s.thinking {
			wait := s.spin.View() + " " + theme.Hint.Render("Reviewing your answer...")
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, wait))
			b.WriteString("\n")
		}
	} else if s.tip != "" {
		tip := lipgloss.NewStyle().
			Width(min(width-8, 70)).
			Foreground(theme.TextDim).
			Italic(true).
			Render("Tip: " + s.tip)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, tip))
	}

	return b.String()
}

// renderFeedback shows the grade, the explanation, and any advisory
// analysis that has arrived.
func renderFeedback(st trainer.PracticeActive, analysis string, width int) string {
	var b strings.Builder

	verdict := theme.Incorrect.Render(st.Feedback.Message)
	if st.Feedback.Correct {
		verdict = theme.Correct.Render(st.Feedback.Message)
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, verdict))
	b.WriteString("\n\n")

	if st.Feedback.Explanation != "" {
		exp := lipgloss.NewStyle().
			Width(min(width-8, 70)).
			Foreground(theme.Text).
			Render(st.Feedback.Explanation)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, exp))
		b.WriteString("\n\n")
	}

	if st.Question.RequiresCitation && st.Question.Citation != "" {
		cite := lipgloss.NewStyle().
			Width(min(width-8, 70)).
			Foreground(theme.TextDim).
			Render("Reference: " + st.Question.Citation)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, cite))
		b.WriteString("\n\n")
	}

	if analysis != "" {
		note := lipgloss.NewStyle().
			Width(min(width-8, 70)).
			Foreground(theme.Secondary).
			Italic(true).
			Render(analysis)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, note))
		b.WriteString("\n")
	}

	return b.String()
}
