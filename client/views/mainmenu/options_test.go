package mainmenu

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/nathanieltooley/broadside/client/global"
	"github.com/nathanieltooley/broadside/client/rendering/components"
	"github.com/nathanieltooley/broadside/client/views/gameview"
)

func init() {
	global.StopLogging()
}

func newTestOptions(t *testing.T) tea.Model {
	t.Helper()
	t.Setenv("BROADSIDE_CONFIG_DIR", t.TempDir())

	global.Opt = global.GlobalConfig{PlayerOneName: "Player 1", PlayerTwoName: "Player 2", ShowPlacementHandoff: true}
	return newOptionsMenu(components.NewBreadcrumb())
}

func typeText(model tea.Model, text string) tea.Model {
	for _, r := range text {
		model, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}

	return model
}

func TestOptionsRenamePlayer(t *testing.T) {
	model := newTestOptions(t)

	for range len("Player 1") {
		model, _ = model.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	}
	model = typeText(model, "Ishmael")
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if global.Opt.PlayerOneName != "Ishmael" {
		t.Fatalf("expected player one to be renamed, got %q", global.Opt.PlayerOneName)
	}

	saved, err := global.LoadConfig(global.DefaultConfigLocation())
	if err != nil {
		t.Fatalf("options should have been saved: %s", err)
	}
	if saved.PlayerOneName != "Ishmael" {
		t.Fatalf("saved config has %q", saved.PlayerOneName)
	}
}

func TestOptionsBlankNameFallsBack(t *testing.T) {
	model := newTestOptions(t)

	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyTab})
	for range len("Player 2") {
		model, _ = model.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	}
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if global.Opt.PlayerTwoName != "Player 2" {
		t.Fatalf("blank name should fall back to the default, got %q", global.Opt.PlayerTwoName)
	}
}

func TestOptionsToggleHandoff(t *testing.T) {
	model := newTestOptions(t)

	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if global.Opt.ShowPlacementHandoff {
		t.Fatalf("handoff toggle should have been switched off")
	}
	if global.Opt.Debug {
		t.Fatalf("debug toggle should be untouched")
	}
}

func TestMainMenuStartsMatch(t *testing.T) {
	var model tea.Model = NewModel()

	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if _, ok := model.(gameview.MatchModel); !ok {
		t.Fatalf("new game should open the match view, got %T", model)
	}

	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if _, ok := model.(MainMenuModel); !ok {
		t.Fatalf("esc should return to the main menu, got %T", model)
	}
}
