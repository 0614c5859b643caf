package gameview

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/nathanieltooley/broadside/armada"
	"github.com/nathanieltooley/broadside/client/global"
	"github.com/nathanieltooley/broadside/client/rendering"
	"github.com/nathanieltooley/broadside/client/rendering/components"
	"github.com/rs/zerolog/log"
)

const _MESSAGE_TIME = time.Second * 2

// Screens layered on top of the engine's phases. The engine only knows about the
// interstitial; the rest exist so the two players never see each other's fleet.
const (
	SCREEN_MATCH = iota
	// "pass the terminal" before player two places
	SCREEN_PLACEMENT_HANDOFF
	// shot result shown to the shooter before the swap
	SCREEN_SHOT_RESULT
	// blank "pass the terminal" screen between turns
	SCREEN_SWAP
)

type clearMessageMsg struct {
	id int
}

type MatchModel struct {
	match     *armada.Match
	backtrack components.Breadcrumbs

	screen int

	message   string
	messageID int

	help help.Model
}

func NewMatchModel(match *armada.Match, backtrack components.Breadcrumbs) MatchModel {
	h := help.New()
	h.Width = global.TERM_WIDTH

	return MatchModel{
		match:     match,
		backtrack: backtrack,
		screen:    SCREEN_MATCH,
		help:      h,
	}
}

func (m MatchModel) Init() tea.Cmd { return nil }

func (m MatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case clearMessageMsg:
		if msg.id == m.messageID {
			m.message = ""
		}
		return m, nil
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, global.HelpKey):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, global.BackKey):
			log.Info().Str("match_id", m.match.ID.String()).Msg("match abandoned")
			return m.backtrack.PopDefault(func() tea.Model { return m }), nil
		}

		return m.handleKey(msg)
	}

	return m, nil
}

func (m MatchModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	selected := key.Matches(msg, global.SelectKey)

	switch m.screen {
	case SCREEN_PLACEMENT_HANDOFF:
		if selected {
			m.screen = SCREEN_MATCH
		}
		return m, nil
	case SCREEN_SHOT_RESULT:
		if selected {
			m.screen = SCREEN_SWAP
			m.message = ""
		}
		return m, nil
	case SCREEN_SWAP:
		if !selected {
			return m, nil
		}

		m.screen = SCREEN_MATCH
		// falls through to the engine, where select confirms the interstitial
	}

	if m.match.Phase() == armada.PHASE_GAMEOVER {
		if selected {
			return newEndScreen(m.match, m.backtrack), nil
		}
		return m, nil
	}

	cmd := commandForKey(m.match.Phase(), msg)
	if cmd == nil {
		return m, nil
	}

	return m.apply(cmd)
}

func (m MatchModel) apply(cmd armada.Command) (tea.Model, tea.Cmd) {
	active := m.match.ActivePlayer()
	board := m.match.Board(active)
	placing, wasPlacing := board.PlacingShip()

	result := m.match.Apply(cmd)

	if !result.Accepted() {
		switch cmd.(type) {
		case armada.PlaceCommand:
			if wasPlacing {
				return m, m.showMessage(fmt.Sprintf("The %s doesn't fit there", placing.Name()))
			}
		case armada.FireCommand:
			return m, m.showMessage(fmt.Sprintf("Already fired at %s", rendering.CellLabel(board.Cursor())))
		}
		return m, nil
	}

	if result.Shot != nil {
		m.message = shotMessage(*result.Shot)
		m.messageID++
		if result.Phase == armada.PHASE_INTERSTITIAL {
			m.screen = SCREEN_SHOT_RESULT
		}
		return m, nil
	}

	if result.Kind != armada.RESULT_PHASE_CHANGED {
		return m, nil
	}

	switch result.Phase {
	case armada.PHASE_PLACEMENT_TWO:
		if global.Opt.ShowPlacementHandoff {
			m.screen = SCREEN_PLACEMENT_HANDOFF
		}
	case armada.PHASE_BATTLE:
		// the last placement hands straight over to the first shot, same player
		if _, ok := cmd.(armada.PlaceCommand); ok {
			return m, m.showMessage(fmt.Sprintf("%s fires first", m.match.PlayerName(m.match.ActivePlayer())))
		}
	}

	return m, nil
}

func (m *MatchModel) showMessage(message string) tea.Cmd {
	m.message = message
	m.messageID++

	id := m.messageID
	return tea.Tick(_MESSAGE_TIME, func(time.Time) tea.Msg {
		return clearMessageMsg{id}
	})
}

func shotMessage(shot armada.ShotReport) string {
	target := rendering.CellLabel(shot.Target)

	switch {
	case shot.Sunk:
		return fmt.Sprintf("%s: hit! You sank the %s", target, rendering.Title(armada.ShipName(shot.ShipKind)))
	case shot.Hit:
		return fmt.Sprintf("%s: hit!", target)
	}

	return fmt.Sprintf("%s: miss", target)
}

func (m MatchModel) View() string {
	switch m.screen {
	case SCREEN_PLACEMENT_HANDOFF:
		return handoffView(m.match.PlayerName(armada.PLAYER_TWO), "place your fleet")
	case SCREEN_SWAP:
		return handoffView(m.match.PlayerName(m.match.ActivePlayer()), "take your shot")
	}

	var body string
	switch phase := m.match.Phase(); {
	case armada.IsPlacement(phase):
		body = m.placementView()
	case phase == armada.PHASE_BATTLE:
		body = m.battleView(m.match.ActivePlayer(), true, fmt.Sprintf("%s's turn", m.match.PlayerName(m.match.ActivePlayer())))
	case phase == armada.PHASE_INTERSTITIAL:
		shooter := armada.OtherPlayer(m.match.ActivePlayer())
		body = m.battleView(shooter, false, "Press enter to end your turn")
	case phase == armada.PHASE_GAMEOVER:
		body = m.battleView(m.match.Winner(), false, fmt.Sprintf("%s sank the last ship! Press enter", m.match.PlayerName(m.match.Winner())))
	}

	return rendering.GlobalCenter(lipgloss.JoinVertical(lipgloss.Center,
		body,
		m.messageView(),
		m.help.View(keyMap{phase: m.match.Phase()}),
	))
}

func (m MatchModel) messageView() string {
	if m.message == "" {
		return ""
	}

	return rendering.ButtonStyle.Width(40).Padding(0, 1).Render(m.message)
}

func (m MatchModel) placementView() string {
	player := m.match.ActivePlayer()
	board := m.match.Board(player)

	heading := fmt.Sprintf("%s, place your fleet", m.match.PlayerName(player))
	if placing, ok := board.PlacingShip(); ok {
		heading = fmt.Sprintf("%s, place your %s (%d/%d)", m.match.PlayerName(player), rendering.Title(placing.Name()), board.PlacedCount()+1, armada.FLEET_SIZE)
	}

	return lipgloss.JoinVertical(lipgloss.Center,
		rendering.TitleStyle.Render(heading),
		rendering.TitledGrid("Your waters", rendering.FleetGrid(board, nil, true)),
	)
}

func (m MatchModel) battleView(player int, showCursor bool, heading string) string {
	own := m.match.Board(player)
	opponent := m.match.Opponent(player)

	target := rendering.TitledGrid(fmt.Sprintf("%s's waters", m.match.PlayerName(armada.OtherPlayer(player))), rendering.TargetGrid(own, showCursor))
	fleet := rendering.TitledGrid("Your fleet", rendering.FleetGrid(own, opponent.Shots(), false))
	status := rendering.PanelStyle.Render(rendering.FleetStatus(own))

	return lipgloss.JoinVertical(lipgloss.Center,
		rendering.TitleStyle.Render(heading),
		rendering.SubtleStyle.Render(fmt.Sprintf("Turn %d", m.match.Turn()+1)),
		lipgloss.JoinHorizontal(lipgloss.Top, target, fleet, status),
	)
}

func handoffView(playerName string, task string) string {
	return rendering.GlobalCenter(lipgloss.JoinVertical(lipgloss.Center,
		rendering.HighlightedButtonStyle.Render("Swap players"),
		fmt.Sprintf("Pass the terminal to %s to %s", playerName, task),
		rendering.SubtleStyle.Render("Press enter when ready"),
	))
}
