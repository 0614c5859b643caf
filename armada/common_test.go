package armada

import "testing"

// A fleet layout that fits the grid without overlaps, anchors in placement order.
var testLayout = [FLEET_SIZE]struct {
	anchor   Coord
	rotation int
}{
	{Coord{0, 0}, 0}, // (0,0) (0,1)
	{Coord{1, 2}, 0}, // (0..2,2)
	{Coord{1, 4}, 0}, // (0..2,4)
	{Coord{1, 6}, 0}, // (0..3,6)
	{Coord{2, 8}, 0}, // (0..4,8)
}

func moveCursorTo(b *Board, target Coord) {
	cursor := b.Cursor()
	b.MoveCursor(target.X-cursor.X, target.Y-cursor.Y)
}

func placeTestFleet(t *testing.T, b *Board) {
	t.Helper()

	for i, placement := range testLayout {
		moveCursorTo(b, placement.anchor)
		b.RotateShip(placement.rotation)

		if !b.PlaceShip() {
			t.Fatalf("placement %d at %s was rejected", i, placement.anchor)
		}
	}
}

func matchMoveCursorTo(m *Match, target Coord) {
	cursor := m.Board(m.ActivePlayer()).Cursor()
	m.MoveCursor(target.X-cursor.X, target.Y-cursor.Y)
}

func placeMatchFleet(t *testing.T, m *Match) {
	t.Helper()

	for i, placement := range testLayout {
		matchMoveCursorTo(m, placement.anchor)
		m.RotateShip(placement.rotation)

		if result := m.PlaceShip(); !result.Accepted() {
			t.Fatalf("match placement %d at %s was rejected", i, placement.anchor)
		}
	}
}

// newBattleMatch returns a match where both fleets are placed and player two is about to fire.
func newBattleMatch(t *testing.T) *Match {
	t.Helper()

	m := NewMatch("", "")
	placeMatchFleet(t, m)
	placeMatchFleet(t, m)

	if m.Phase() != PHASE_BATTLE {
		t.Fatalf("expected battle after both placements, got %s", PhaseName(m.Phase()))
	}

	return m
}

func occupiedCells(b *Board) []Coord {
	cells := make([]Coord, 0)
	for _, ship := range b.Ships() {
		cells = append(cells, ship.AbsoluteCells()...)
	}

	return cells
}

// firstEmptyCell finds a cell with no ship that shooter has not fired at yet.
func firstEmptyCell(t *testing.T, target *Board, shooter *Board) Coord {
	t.Helper()

	for y := range GRID_SIZE {
		for x := range GRID_SIZE {
			c := Coord{x, y}
			if _, ok := target.ShipAt(c); !ok && !shooter.HasBeenShot(c) {
				return c
			}
		}
	}

	t.Fatalf("no empty cell left")
	return Coord{}
}
