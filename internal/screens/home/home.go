// Package home is the topic selection screen.
package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mbuckley/feprep/internal/advisor"
	"github.com/mbuckley/feprep/internal/question"
	"github.com/mbuckley/feprep/internal/router"
	"github.com/mbuckley/feprep/internal/screen"
	"github.com/mbuckley/feprep/internal/screens/exam"
	"github.com/mbuckley/feprep/internal/screens/practice"
	"github.com/mbuckley/feprep/internal/screens/scoreboard"
	"github.com/mbuckley/feprep/internal/topic"
	"github.com/mbuckley/feprep/internal/trainer"
	"github.com/mbuckley/feprep/internal/ui/components"
	"github.com/mbuckley/feprep/internal/ui/layout"
	"github.com/mbuckley/feprep/internal/ui/theme"
)

const bannerArt = `
 ███████╗███████╗    ██████╗ ██████╗ ███████╗██████╗
 ██╔════╝██╔════╝    ██╔══██╗██╔══██╗██╔════╝██╔══██╗
 █████╗  █████╗      ██████╔╝██████╔╝█████╗  ██████╔╝
 ██╔══╝  ██╔══╝      ██╔═══╝ ██╔══██╗██╔══╝  ██╔═══╝
 ██║     ███████╗    ██║     ██║  ██║███████╗██║
 ╚═╝     ╚══════╝    ╚═╝     ╚═╝  ╚═╝╚══════╝╚═╝`

const bannerCompact = "F E   P R E P"

// HomeScreen lists the exam topics plus the scoreboard and exit.
type HomeScreen struct {
	controller *trainer.Controller
	menu       components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates the home screen.
func New(controller *trainer.Controller, advice *advisor.Service) *HomeScreen {
	items := make([]components.MenuItem, 0, len(topic.All())+2)

	for _, t := range topic.All() {
		t := t
		items = append(items, components.MenuItem{
			Label: topic.DisplayName(t),
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: practice.New(controller, advice, t)}
				}
			},
		})
	}

	items = append(items, components.MenuItem{
		Label: "Take Exam",
		Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: exam.New(controller)}
			}
		},
	})
	items = append(items, components.MenuItem{
		Label: "Scoreboard",
		Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: scoreboard.New(controller)}
			}
		},
	})
	items = append(items, components.MenuItem{
		Label:  "Quit",
		Action: func() tea.Cmd { return tea.Quit },
	})

	return &HomeScreen{
		controller: controller,
		menu:       components.NewMenu(items),
	}
}

func (s *HomeScreen) Init() tea.Cmd {
	return nil
}

func (s *HomeScreen) Title() string {
	return "Home"
}

func (s *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *HomeScreen) View(width, height int) string {
	// Cursor positions move while practicing, so the per-topic counts
	// are read fresh on every render rather than captured at build time.
	for i, t := range topic.All() {
		s.menu.Items[i].Detail = fmt.Sprintf("%d/%d", s.controller.Tracker().Position(t), question.PoolSize)
	}

	var b strings.Builder

	b.WriteString(renderBanner(width))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Fundamentals of Engineering exam trainer"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.menu.View()))

	return lipgloss.NewStyle().Height(height).Render(b.String())
}

// renderBanner draws the title art, compacted for narrow terminals.
func renderBanner(width int) string {
	art := bannerArt
	if width < 56 {
		art = bannerCompact
	}
	styled := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(art)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, styled)
}
