package gameview

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/nathanieltooley/broadside/armada"
	"github.com/nathanieltooley/broadside/client/global"
	"github.com/nathanieltooley/broadside/client/rendering/components"
)

func newTestModel(handoff bool) (tea.Model, *armada.Match) {
	global.Opt.ShowPlacementHandoff = handoff

	match := armada.NewMatch("Ahab", "Starbuck")
	return NewMatchModel(match, components.NewBreadcrumb()), match
}

func screenOf(t *testing.T, model tea.Model) int {
	t.Helper()

	m, ok := model.(MatchModel)
	if !ok {
		t.Fatalf("expected MatchModel, got %T", model)
	}

	return m.screen
}

func TestPlacementThroughKeys(t *testing.T) {
	model, match := newTestModel(true)

	model = press(model, fleetKeys...)
	if match.Phase() != armada.PHASE_PLACEMENT_TWO {
		t.Fatalf("expected player two's placement, got %s", armada.PhaseName(match.Phase()))
	}
	if screenOf(t, model) != SCREEN_PLACEMENT_HANDOFF {
		t.Fatalf("player two should be greeted by the handoff screen")
	}

	// arrows do nothing until the handoff is dismissed
	model = press(model, rightKey)
	if match.Board(armada.PLAYER_TWO).Cursor() != (armada.Coord{}) {
		t.Fatalf("cursor moved behind the handoff screen")
	}

	model = press(model, enterKey)
	model = press(model, fleetKeys...)
	if match.Phase() != armada.PHASE_BATTLE || match.ActivePlayer() != armada.PLAYER_TWO {
		t.Fatalf("expected player two to open fire, got %s", armada.PhaseName(match.Phase()))
	}
	if screenOf(t, model) != SCREEN_MATCH {
		t.Fatalf("battle should start on the match screen")
	}
}

func TestRejectedPlacementShowsMessage(t *testing.T) {
	model, match := newTestModel(false)

	// the submarine is seeded at (0,0) and hangs off the left edge
	model = press(model, enterKey, enterKey)
	if match.Board(armada.PLAYER_ONE).PlacedCount() != 1 {
		t.Fatalf("second placement should have been rejected")
	}
	if model.(MatchModel).message == "" {
		t.Fatalf("a rejected placement should explain itself")
	}

	m, _ := model.Update(clearMessageMsg{id: model.(MatchModel).messageID})
	if m.(MatchModel).message != "" {
		t.Fatalf("message should clear on its tick")
	}
}

func TestTurnHandoff(t *testing.T) {
	model, match := newTestModel(false)
	model = press(model, fleetKeys...)
	model = press(model, fleetKeys...)

	// player two's cursor is on the carrier's anchor, (2,8), which is a hit
	model = press(model, enterKey)
	if match.Phase() != armada.PHASE_INTERSTITIAL {
		t.Fatalf("fire should move to the interstitial, got %s", armada.PhaseName(match.Phase()))
	}
	if screenOf(t, model) != SCREEN_SHOT_RESULT {
		t.Fatalf("shooter should see the shot result first")
	}

	model = press(model, enterKey)
	if screenOf(t, model) != SCREEN_SWAP || match.Phase() != armada.PHASE_INTERSTITIAL {
		t.Fatalf("second enter should show the swap screen without ending the interstitial")
	}

	model = press(model, enterKey)
	if match.Phase() != armada.PHASE_BATTLE || match.ActivePlayer() != armada.PLAYER_ONE {
		t.Fatalf("third enter should hand the turn to player one")
	}
	if screenOf(t, model) != SCREEN_MATCH {
		t.Fatalf("player one should be on the match screen")
	}

	if hit, shot := match.Board(armada.PLAYER_TWO).ShotResult(armada.Coord{X: 2, Y: 8}); !shot || !hit {
		t.Fatalf("player two's shot at (2,8) should be a recorded hit")
	}
}

func TestRepeatFireKeepsTurn(t *testing.T) {
	model, match := newTestModel(false)
	model = press(model, fleetKeys...)
	model = press(model, fleetKeys...)

	// both players fire at the origin, then player two tries the origin again
	model = press(model, upKey, upKey, upKey, upKey, upKey, upKey, upKey, upKey, leftKey, leftKey)
	model = press(model, enterKey, enterKey, enterKey)
	model = press(model, enterKey, enterKey, enterKey)

	if match.ActivePlayer() != armada.PLAYER_TWO || match.Phase() != armada.PHASE_BATTLE {
		t.Fatalf("expected player two to be firing again")
	}

	turn := match.Turn()
	model = press(model, enterKey)
	if match.Turn() != turn || match.Phase() != armada.PHASE_BATTLE {
		t.Fatalf("firing at the same cell twice should not take a turn")
	}
	if model.(MatchModel).message == "" {
		t.Fatalf("repeat fire should explain itself")
	}
}
