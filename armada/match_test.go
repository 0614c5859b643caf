package armada

import "testing"

func TestPlacementPhases(t *testing.T) {
	m := NewMatch("Ahab", "")

	if m.Phase() != PHASE_PLACEMENT_ONE || m.ActivePlayer() != PLAYER_ONE {
		t.Fatalf("match should start with player one placing")
	}
	if m.PlayerName(PLAYER_TWO) != "Player 2" {
		t.Fatalf("blank name should default, got %q", m.PlayerName(PLAYER_TWO))
	}

	if m.Fire().Accepted() || m.ConfirmInterstitial().Accepted() {
		t.Fatalf("fire and confirm must be rejected during placement")
	}

	placeMatchFleet(t, m)
	if m.Phase() != PHASE_PLACEMENT_TWO || m.ActivePlayer() != PLAYER_TWO {
		t.Fatalf("expected player two placement, got %s", PhaseName(m.Phase()))
	}
	if m.Board(PLAYER_TWO).PlacedCount() != 0 {
		t.Fatalf("player one's placement leaked onto player two's board")
	}

	placeMatchFleet(t, m)
	if m.Phase() != PHASE_BATTLE || m.ActivePlayer() != PLAYER_TWO {
		t.Fatalf("player two should fire first, got phase %s player %d", PhaseName(m.Phase()), m.ActivePlayer())
	}

	if m.RotateShip(1).Accepted() || m.PlaceShip().Accepted() {
		t.Fatalf("rotate and place must be rejected during battle")
	}
}

func TestFireAndInterstitial(t *testing.T) {
	m := newBattleMatch(t)

	matchMoveCursorTo(m, Coord{0, 0})
	result := m.Fire()
	if result.Kind != RESULT_PHASE_CHANGED || result.Shot == nil {
		t.Fatalf("fire should be accepted with a shot report, got %+v", result)
	}
	if !result.Shot.Hit || result.Shot.ShipKind != SHIP_PATROL_BOAT || result.Shot.Shooter != PLAYER_TWO {
		t.Fatalf("unexpected shot report %+v", *result.Shot)
	}
	if hit, shot := m.Board(PLAYER_TWO).ShotResult(Coord{0, 0}); !shot || !hit {
		t.Fatalf("shooter's board should record the hit")
	}
	if len(m.Board(PLAYER_ONE).Shots()) != 0 {
		t.Fatalf("target's shots map should be untouched")
	}

	if m.Phase() != PHASE_INTERSTITIAL || m.ActivePlayer() != PLAYER_ONE {
		t.Fatalf("expected interstitial waiting on player one, got %s", PhaseName(m.Phase()))
	}
	if m.Fire().Accepted() || m.MoveCursor(1, 0).Accepted() {
		t.Fatalf("fire and cursor moves must be rejected during the interstitial")
	}

	m.Board(PLAYER_ONE).MoveCursor(4, 4)
	if !m.ConfirmInterstitial().Accepted() {
		t.Fatalf("confirm should be accepted during the interstitial")
	}
	if m.Phase() != PHASE_BATTLE || m.ActivePlayer() != PLAYER_ONE {
		t.Fatalf("player one should be firing after confirmation")
	}
	if m.Board(PLAYER_ONE).Cursor() != (Coord{}) {
		t.Fatalf("incoming shooter's cursor should be reset, got %s", m.Board(PLAYER_ONE).Cursor())
	}
	if m.Turn() != 1 {
		t.Fatalf("expected one turn, got %d", m.Turn())
	}
}

func TestRepeatFireIsNoop(t *testing.T) {
	m := newBattleMatch(t)

	// player two misses at (9,9), player one fires at the origin, player two tries (9,9) again
	matchMoveCursorTo(m, Coord{9, 9})
	m.Fire()
	m.ConfirmInterstitial()
	m.Fire()
	m.ConfirmInterstitial()

	shooter := m.Board(PLAYER_TWO)
	shotsBefore := len(shooter.Shots())
	turnBefore := m.Turn()

	matchMoveCursorTo(m, Coord{9, 9})
	result := m.Fire()
	if result.Accepted() {
		t.Fatalf("second fire at (9,9) should be rejected")
	}
	if m.Phase() != PHASE_BATTLE || m.ActivePlayer() != PLAYER_TWO {
		t.Fatalf("a rejected fire must not end the turn")
	}
	if len(shooter.Shots()) != shotsBefore || m.Turn() != turnBefore {
		t.Fatalf("rejected fire changed shots or turn")
	}

	// a repeat at an occupied cell must not register a second hit
	matchMoveCursorTo(m, Coord{0, 0})
	m.Fire()
	m.ConfirmInterstitial()
	matchMoveCursorTo(m, Coord{5, 5})
	m.Fire()
	m.ConfirmInterstitial()
	matchMoveCursorTo(m, Coord{0, 0})
	if m.Fire().Accepted() {
		t.Fatalf("second fire at (0,0) should be rejected")
	}

	ship, _ := m.Board(PLAYER_ONE).ShipAt(Coord{0, 0})
	if ship.HitCount() != 1 {
		t.Fatalf("patrol boat was hit %d times from one cell", ship.HitCount())
	}
}

func TestFullGame(t *testing.T) {
	m := newBattleMatch(t)
	targets := occupiedCells(m.Board(PLAYER_ONE))

	for i, target := range targets {
		if m.Phase() != PHASE_BATTLE || m.ActivePlayer() != PLAYER_TWO {
			t.Fatalf("expected player two to be firing on shot %d", i)
		}

		matchMoveCursorTo(m, target)
		result := m.Fire()
		if !result.Accepted() || !result.Shot.Hit {
			t.Fatalf("shot %d at %s should hit", i, target)
		}

		last := i == len(targets)-1
		if m.Board(PLAYER_ONE).IsDefeated() != last {
			t.Fatalf("defeat should be reported exactly on the last hit, shot %d", i)
		}
		if last {
			break
		}

		// player one answers with a miss into open water
		m.ConfirmInterstitial()
		miss := firstEmptyCell(t, m.Board(PLAYER_TWO), m.Board(PLAYER_ONE))
		matchMoveCursorTo(m, miss)
		if result := m.Fire(); !result.Accepted() || result.Shot.Hit {
			t.Fatalf("player one's shot at %s should be an accepted miss", miss)
		}
		m.ConfirmInterstitial()
	}

	if m.Phase() != PHASE_GAMEOVER {
		t.Fatalf("expected game over, got %s", PhaseName(m.Phase()))
	}
	if m.Winner() != PLAYER_TWO || m.ActivePlayer() != PLAYER_TWO {
		t.Fatalf("player two should have won, winner is %d", m.Winner())
	}

	last, ok := m.LastShot()
	if !ok || !last.Sunk || last.ShipKind != SHIP_CARRIER {
		t.Fatalf("last shot should sink the carrier, got %+v", last)
	}
	if len(m.ShotLog()) != m.Turn() || m.Turn() != 2*len(targets)-1 {
		t.Fatalf("shot log has %d entries over %d turns", len(m.ShotLog()), m.Turn())
	}

	commands := []Command{MoveCursorCommand{DX: 1}, RotateCommand{Delta: 1}, PlaceCommand{}, FireCommand{}, ConfirmCommand{}}
	for _, cmd := range commands {
		if m.Apply(cmd).Accepted() {
			t.Fatalf("%s accepted after game over", cmd.Name())
		}
	}
	if m.Winner() != PLAYER_TWO {
		t.Fatalf("winner changed after game over")
	}
}

func TestBoardPanicsOnUnknownPlayer(t *testing.T) {
	m := NewMatch("", "")

	defer func() {
		if recover() == nil {
			t.Fatalf("expected a panic for player 3")
		}
	}()

	m.Board(3)
}
