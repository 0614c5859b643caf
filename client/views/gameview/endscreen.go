package gameview

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/nathanieltooley/broadside/armada"
	"github.com/nathanieltooley/broadside/client/global"
	"github.com/nathanieltooley/broadside/client/rendering"
	"github.com/nathanieltooley/broadside/client/rendering/components"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

const (
	_LOG_WIDTH  = 56
	_LOG_HEIGHT = 12
)

type endModel struct {
	match     *armada.Match
	backtrack components.Breadcrumbs

	shotLog list.Model
}

func newEndScreen(match *armada.Match, backtrack components.Breadcrumbs) endModel {
	log.Info().
		Str("match_id", match.ID.String()).
		Str("winner", match.PlayerName(match.Winner())).
		Int("turns", match.Turn()).
		Msg("match finished")

	return endModel{
		match:     match,
		backtrack: backtrack,
		shotLog:   rendering.NewShotLog(match.ShotLog(), match.PlayerName, _LOG_WIDTH, _LOG_HEIGHT),
	}
}

type playerStats struct {
	shots int
	hits  int
	sunk  int
}

func (s playerStats) accuracy() float64 {
	if s.shots == 0 {
		return 0
	}

	return float64(s.hits) / float64(s.shots) * 100
}

func statsFor(shotLog []armada.ShotReport, player int) playerStats {
	shots := lo.Filter(shotLog, func(shot armada.ShotReport, _ int) bool { return shot.Shooter == player })

	return playerStats{
		shots: len(shots),
		hits:  lo.CountBy(shots, func(shot armada.ShotReport) bool { return shot.Hit }),
		sunk:  lo.CountBy(shots, func(shot armada.ShotReport) bool { return shot.Sunk }),
	}
}

func (m endModel) Init() tea.Cmd { return nil }
func (m endModel) View() string {
	shots := m.match.ShotLog()

	lines := lo.Map([]int{armada.PLAYER_ONE, armada.PLAYER_TWO}, func(player int, _ int) string {
		stats := statsFor(shots, player)
		return fmt.Sprintf("%-12s %2d shots  %2d hits  %3.0f%%  %d sunk", m.match.PlayerName(player), stats.shots, stats.hits, stats.accuracy(), stats.sunk)
	})

	return rendering.GlobalCenter(lipgloss.JoinVertical(lipgloss.Center,
		"Game Over",
		rendering.HighlightedButtonStyle.Render(fmt.Sprintf("%s wins!", m.match.PlayerName(m.match.Winner()))),
		rendering.PanelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...)),
		rendering.PanelStyle.Render(m.shotLog.View()),
		rendering.SubtleStyle.Render("↑/↓ to scroll the log, enter to return to the menu"),
	))
}

func (m endModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, global.SelectKey, global.BackKey) {
			return m.backtrack.PopDefault(func() tea.Model { return m }), nil
		}
	}

	var cmd tea.Cmd
	m.shotLog, cmd = m.shotLog.Update(msg)
	return m, cmd
}
