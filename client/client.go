package main

import (
	"os"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/nathanieltooley/broadside/client/global"
	"github.com/nathanieltooley/broadside/client/views/mainmenu"
	"github.com/rs/zerolog/log"
)

type model struct {
	currentView tea.Model
}

func (m model) Init() tea.Cmd {
	return m.currentView.Init()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, global.QuitKey) {
			log.Info().Msg("quitting")
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		global.TERM_WIDTH = msg.Width
		global.TERM_HEIGHT = msg.Height
	}

	newView, cmd := m.currentView.Update(msg)
	m.currentView = newView

	return m, cmd
}

func (m model) View() string {
	return m.currentView.View()
}

func main() {
	global.GlobalInit(true)

	m := model{
		currentView: mainmenu.NewModel(),
	}

	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		log.Err(err).Msg("error running program")
		os.Exit(1)
	}
}
