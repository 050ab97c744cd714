package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mbuckley/feprep/internal/question"
	"github.com/mbuckley/feprep/internal/ui/theme"
)

// MultiChoice renders a question with its keyed options. Grading is
// owned by the caller: the component tracks a cursor, reports the
// chosen key on submit, and renders the graded state once Reveal is
// called.
type MultiChoice struct {
	Question question.Question
	Cursor   int

	// Revealed is set by the caller after grading. ChosenKey marks the
	// learner's pick; the correct key comes from the question.
	Revealed  bool
	ChosenKey string
}

// NewMultiChoice creates a selector for the given question.
func NewMultiChoice(q question.Question) MultiChoice {
	return MultiChoice{Question: q}
}

// Init returns nil.
func (m MultiChoice) Init() tea.Cmd {
	return nil
}

// Update handles cursor movement and returns the chosen key on enter
// or on a direct letter key. An empty key means nothing was chosen.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, string) {
	if m.Revealed {
		return m, ""
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, ""
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(question.OptionKeys)-1 {
			m.Cursor++
		}
	case "enter":
		return m, question.OptionKeys[m.Cursor]
	default:
		// Direct letter selection: a-d or A-D.
		upper := strings.ToUpper(key)
		for i, k := range question.OptionKeys {
			if upper == k {
				m.Cursor = i
				return m, k
			}
		}
	}

	return m, ""
}

// Reveal puts the component into its graded state.
func (m MultiChoice) Reveal(chosenKey string) MultiChoice {
	m.Revealed = true
	m.ChosenKey = chosenKey
	return m
}

// View renders the prompt and options.
func (m MultiChoice) View() string {
	s := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(m.Question.Prompt) + "\n\n"

	for i, key := range question.OptionKeys {
		prefix := "  "
		if i == m.Cursor && !m.Revealed {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s)  %s", prefix, key, m.Question.Options[key])

		switch {
		case m.Revealed && key == m.Question.CorrectKey:
			s += lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render(line) + "\n"
		case m.Revealed && key == m.ChosenKey:
			s += lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render(line) + "\n"
		case m.Revealed:
			s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
		case i == m.Cursor:
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}

	return s
}
