package rendering

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/nathanieltooley/broadside/armada"
)

type shotItem struct {
	text string
}

func (s shotItem) FilterValue() string { return s.text }

type simpleDelegate struct {
	HighlightedItemStyle lipgloss.Style
	ItemStyle            lipgloss.Style

	spacing int
}

func (d simpleDelegate) Height() int {
	// at least one line even when neither style sets a height
	return max(1, min(d.ItemStyle.GetHeight(), d.HighlightedItemStyle.GetHeight()))
}
func (d simpleDelegate) Spacing() int                            { return d.spacing }
func (d simpleDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d simpleDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	if index == m.Index() {
		fmt.Fprint(w, d.HighlightedItemStyle.Render(listItem.FilterValue()))
	} else {
		fmt.Fprint(w, d.ItemStyle.Render(listItem.FilterValue()))
	}
}

func NewSimpleListDelegate() simpleDelegate {
	return simpleDelegate{HighlightedItemStyle, ItemStyle, 0}
}

// ShotLine describes one shot for the battle log, e.g. "3. Ahab fired at B7: hit, sank the Carrier".
func ShotLine(turn int, shot armada.ShotReport, name func(player int) string) string {
	outcome := "miss"
	switch {
	case shot.Sunk:
		outcome = "hit, sank the " + Title(armada.ShipName(shot.ShipKind))
	case shot.Hit:
		outcome = "hit"
	}

	return fmt.Sprintf("%d. %s fired at %s: %s", turn, name(shot.Shooter), CellLabel(shot.Target), outcome)
}

// NewShotLog builds a scrollable list of every shot in the match, oldest first.
func NewShotLog(shots []armada.ShotReport, name func(player int) string, width int, height int) list.Model {
	items := make([]list.Item, len(shots))
	for i, shot := range shots {
		items[i] = shotItem{ShotLine(i+1, shot, name)}
	}

	l := list.New(items, NewSimpleListDelegate(), width, height)
	l.Title = "Battle log"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	// the end screen owns esc and enter, and q is not a way out of a finished match
	l.KeyMap.Quit.SetEnabled(false)

	return l
}
