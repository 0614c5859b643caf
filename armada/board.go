package armada

import (
	"maps"

	"github.com/samber/lo"
)

// Board is one player's private grid with their ships, cursor and shots map.
//
// The shots map is keyed by cell and holds whether the shot was a hit. During a
// battle a board records the shots its owner fired at the opponent, so it is both
// "what did my shot here do" and "have I already fired here".
type Board struct {
	ships       []Ship
	placingShip *Ship
	shots       map[Coord]bool
	cursor      Coord
}

// NewBoard returns an empty board with the first template ready to place at (0,0).
func NewBoard() *Board {
	placing := newShip(0, Coord{}, 0, true)

	return &Board{
		ships:       make([]Ship, 0, FLEET_SIZE),
		placingShip: &placing,
		shots:       make(map[Coord]bool),
	}
}

// MoveCursor moves the cursor, clamped to the grid. A ship being placed follows the
// cursor exactly.
func (b *Board) MoveCursor(dx, dy int) {
	b.setCursor(b.cursor.Add(Coord{X: dx, Y: dy}))
}

// ResetCursor returns the cursor to the top-left cell.
func (b *Board) ResetCursor() {
	b.setCursor(Coord{})
}

func (b *Board) setCursor(c Coord) {
	b.cursor = c.Clamp()

	if b.placingShip != nil {
		b.placingShip.anchor = b.cursor
	}
}

// RotateShip rotates the ship being placed. Returns false when every ship is placed.
func (b *Board) RotateShip(delta int) bool {
	if b.placingShip == nil {
		return false
	}

	return b.placingShip.Rotate(delta)
}

// PlaceShip commits the ship being placed if it is inside the grid and does not
// overlap an already placed ship. Returns false, changing nothing, otherwise.
func (b *Board) PlaceShip() bool {
	if b.placingShip == nil {
		return false
	}

	if b.placingShip.IsInvalid(b.ships) {
		boardLogger().V(1).Info("rejected placement", "ship", b.placingShip.Name(), "anchor", b.placingShip.anchor.String(), "rotation", b.placingShip.rotation)
		return false
	}

	committed := b.placingShip.commit()
	b.ships = append(b.ships, committed)
	boardLogger().V(1).Info("ship placed", "ship", committed.Name(), "cells", len(committed.shape), "placed", len(b.ships))

	if len(b.ships) < FLEET_SIZE {
		next := newShip(len(b.ships), b.cursor, 0, true)
		b.placingShip = &next
	} else {
		b.placingShip = nil
	}

	return true
}

func (b *Board) IsReady() bool {
	return len(b.ships) == FLEET_SIZE
}

// ResolveShot applies an incoming shot to this board's ships. Returns true if a
// ship was hit.
func (b *Board) ResolveShot(cell Coord) bool {
	for i := range b.ships {
		if b.ships[i].TryRegisterHit(cell) {
			return true
		}
	}

	return false
}

// RecordShotResult remembers the outcome of a shot at cell, overwriting any earlier entry.
func (b *Board) RecordShotResult(cell Coord, hit bool) {
	b.shots[cell] = hit
}

func (b *Board) HasBeenShot(cell Coord) bool {
	_, ok := b.shots[cell]
	return ok
}

// IsDefeated reports whether every placed ship is sunk. An empty board is never defeated.
func (b *Board) IsDefeated() bool {
	return len(b.ships) > 0 && lo.EveryBy(b.ships, func(s Ship) bool { return s.sunk })
}

func (b *Board) Cursor() Coord {
	return b.cursor
}

func (b *Board) PlacedCount() int {
	return len(b.ships)
}

// RemainingShips counts the placed ships that are still afloat.
func (b *Board) RemainingShips() int {
	return lo.CountBy(b.ships, func(s Ship) bool { return !s.sunk })
}

// Ships returns copies of the placed ships in placement order.
func (b *Board) Ships() []Ship {
	return lo.Map(b.ships, func(s Ship, _ int) Ship { return s.clone() })
}

// PlacingShip returns the ship currently being placed, if any.
func (b *Board) PlacingShip() (Ship, bool) {
	if b.placingShip == nil {
		return Ship{}, false
	}

	return b.placingShip.clone(), true
}

// ShipAt returns the placed ship covering cell, if any.
func (b *Board) ShipAt(cell Coord) (Ship, bool) {
	ship, ok := lo.Find(b.ships, func(s Ship) bool { return s.Occupies(cell) })
	if !ok {
		return Ship{}, false
	}

	return ship.clone(), true
}

// Shots returns a copy of the shots map.
func (b *Board) Shots() map[Coord]bool {
	return maps.Clone(b.shots)
}

func (b *Board) ShotResult(cell Coord) (hit bool, shot bool) {
	hit, shot = b.shots[cell]
	return hit, shot
}
