package app

import (
	"fmt"
	"math/rand"
	"os"

	tea "charm.land/bubbletea/v2"

	"quizdrill/internal/drill"
	"quizdrill/internal/quiz"
	"quizdrill/internal/ui/layout"
)

// appModel is the root Bubble Tea model hosting the drill flow.
type appModel struct {
	drill  *drill.Model
	width  int
	height int
}

func (m appModel) Init() tea.Cmd {
	return m.drill.Init()
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case drill.DoneMsg:
		return m, tea.Quit

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.drill, cmd = m.drill.Update(msg)
	return m, cmd
}

func (m appModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	header := layout.RenderHeader(m.drill.Title(), m.drill.Status(), m.width)
	footer := layout.RenderFooter(m.drill.KeyHints(), m.width)
	content := m.drill.View(m.width, layout.ContentHeight(m.height))

	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

// Run starts the Bubble Tea program for a drill over the loaded service.
func Run(svc *quiz.Service, rng *rand.Rand, opts drill.Options) error {
	p := tea.NewProgram(appModel{drill: drill.New(svc, rng, opts)})
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
