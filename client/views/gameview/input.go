package gameview

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/nathanieltooley/broadside/armada"
	"github.com/nathanieltooley/broadside/client/global"
)

// commandForKey turns one key press into at most one engine command for the given
// phase. bubbletea hands us each press (and each terminal key repeat) as its own
// message, so there is nothing to debounce here.
func commandForKey(phase int, msg tea.KeyMsg) armada.Command {
	placing := armada.IsPlacement(phase)
	aiming := placing || phase == armada.PHASE_BATTLE

	switch {
	case aiming && key.Matches(msg, global.MoveLeftKey):
		return armada.MoveCursorCommand{DX: -1}
	case aiming && key.Matches(msg, global.MoveRightKey):
		return armada.MoveCursorCommand{DX: 1}
	case aiming && key.Matches(msg, global.MoveUpKey):
		return armada.MoveCursorCommand{DY: -1}
	case aiming && key.Matches(msg, global.MoveDownKey):
		return armada.MoveCursorCommand{DY: 1}
	case placing && key.Matches(msg, global.RotateLeftKey):
		return armada.RotateCommand{Delta: -1}
	case placing && key.Matches(msg, global.RotateRightKey):
		return armada.RotateCommand{Delta: 1}
	case key.Matches(msg, global.SelectKey):
		switch {
		case placing:
			return armada.PlaceCommand{}
		case phase == armada.PHASE_BATTLE:
			return armada.FireCommand{}
		case phase == armada.PHASE_INTERSTITIAL:
			return armada.ConfirmCommand{}
		}
	}

	return nil
}

// keyMap feeds the help bar at the bottom of the game view.
type keyMap struct {
	phase int
}

func (k keyMap) ShortHelp() []key.Binding {
	switch {
	case armada.IsPlacement(k.phase):
		return []key.Binding{global.MoveUpKey, global.MoveDownKey, global.MoveLeftKey, global.MoveRightKey, global.RotateLeftKey, global.RotateRightKey, global.SelectKey, global.HelpKey}
	case k.phase == armada.PHASE_BATTLE:
		return []key.Binding{global.MoveUpKey, global.MoveDownKey, global.MoveLeftKey, global.MoveRightKey, global.SelectKey, global.HelpKey}
	}

	return []key.Binding{global.SelectKey, global.HelpKey}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{global.MoveUpKey, global.MoveDownKey, global.MoveLeftKey, global.MoveRightKey},
		{global.RotateLeftKey, global.RotateRightKey, global.SelectKey},
		{global.HelpKey, global.BackKey, global.QuitKey},
	}
}
