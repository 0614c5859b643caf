package mainmenu

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/nathanieltooley/broadside/client/global"
	"github.com/nathanieltooley/broadside/client/rendering"
	"github.com/nathanieltooley/broadside/client/rendering/components"
	"github.com/samber/lo"
)

type helpMenuModel struct {
	backtrack components.Breadcrumbs
}

func newHelpMenu(backtrack components.Breadcrumbs) helpMenuModel {
	return helpMenuModel{backtrack}
}

func helpLines(bindings ...key.Binding) []string {
	return lo.Map(bindings, func(b key.Binding, _ int) string {
		return rendering.ItemStyle.Render(fmt.Sprintf("%-8s %s", b.Help().Key, b.Help().Desc))
	})
}

func (m helpMenuModel) Init() tea.Cmd { return nil }
func (m helpMenuModel) View() string {
	lines := []string{
		rendering.TitleStyle.Render("Help"),
		"Each player places five ships, then you take turns firing at the other fleet.",
		"Sink every ship to win. Pass the terminal when the game asks you to.",
		"",
	}
	lines = append(lines, helpLines(
		global.MoveUpKey,
		global.MoveDownKey,
		global.MoveLeftKey,
		global.MoveRightKey,
		global.RotateLeftKey,
		global.RotateRightKey,
		global.SelectKey,
		global.HelpKey,
		global.BackKey,
		global.QuitKey,
	)...)
	lines = append(lines, "", rendering.SubtleStyle.Render("Tab / Shift+Tab move between fields in Options"))

	return rendering.GlobalCenter(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m helpMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, global.BackKey, global.SelectKey) {
			return m.backtrack.PopDefault(func() tea.Model { return NewModel() }), nil
		}
	}

	return m, nil
}
