package gameview

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/nathanieltooley/broadside/client/global"
)

func init() {
	global.StopLogging()
}

var (
	enterKey = tea.KeyMsg{Type: tea.KeyEnter}
	leftKey  = tea.KeyMsg{Type: tea.KeyLeft}
	rightKey = tea.KeyMsg{Type: tea.KeyRight}
	upKey    = tea.KeyMsg{Type: tea.KeyUp}
	downKey  = tea.KeyMsg{Type: tea.KeyDown}
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// Key presses that place the whole fleet from a fresh board without overlaps.
var fleetKeys = []tea.KeyMsg{
	enterKey,
	downKey, downKey, rightKey, enterKey,
	downKey, downKey, enterKey,
	downKey, downKey, enterKey,
	downKey, downKey, rightKey, enterKey,
}

func press(model tea.Model, keys ...tea.KeyMsg) tea.Model {
	for _, k := range keys {
		model, _ = model.Update(k)
	}

	return model
}
