package mainmenu

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/nathanieltooley/broadside/armada"
	"github.com/nathanieltooley/broadside/client/global"
	"github.com/nathanieltooley/broadside/client/rendering"
	"github.com/nathanieltooley/broadside/client/rendering/components"
	"github.com/nathanieltooley/broadside/client/views/gameview"
	"github.com/rs/zerolog/log"
)

type MainMenuModel struct {
	buttons components.MenuButtons
}

func NewModel() MainMenuModel {
	back := func() tea.Model { return NewModel() }

	buttons := []components.ViewButton{
		{
			Name: "New Game",
			OnClick: func() (tea.Model, tea.Cmd) {
				match := armada.NewMatch(global.Opt.PlayerOneName, global.Opt.PlayerTwoName)
				log.Info().Str("match_id", match.ID.String()).
					Str("player_one", match.PlayerName(armada.PLAYER_ONE)).
					Str("player_two", match.PlayerName(armada.PLAYER_TWO)).
					Msg("new match")

				backtrack := components.NewBreadcrumb()
				return gameview.NewMatchModel(match, backtrack.PushNew(back)), nil
			},
		},
		{
			Name: "Options",
			OnClick: func() (tea.Model, tea.Cmd) {
				backtrack := components.NewBreadcrumb()
				return newOptionsMenu(backtrack.PushNew(back)), nil
			},
		},
		{
			Name: "Help",
			OnClick: func() (tea.Model, tea.Cmd) {
				backtrack := components.NewBreadcrumb()
				return newHelpMenu(backtrack.PushNew(back)), nil
			},
		},
		{
			Name: "Quit",
			OnClick: func() (tea.Model, tea.Cmd) {
				return NewModel(), tea.Quit
			},
		},
	}

	return MainMenuModel{
		buttons: components.NewMenuButton(buttons),
	}
}

func (m MainMenuModel) Init() tea.Cmd {
	return nil
}

func (m MainMenuModel) View() string {
	header := rendering.TitleStyle.Render("Broadside!")
	return rendering.GlobalCenter(lipgloss.JoinVertical(lipgloss.Center, header, m.buttons.View()))
}

func (m MainMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, startCmd := m.buttons.Update(msg)
	if newModel != nil {
		return newModel, startCmd
	}

	return m, nil
}
