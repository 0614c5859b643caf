package armada

import "github.com/samber/lo"

// Ship is one vessel on a board. While placing it follows the board cursor and can
// be rotated; once committed its anchor and rotation are fixed and only its hit
// state changes.
type Ship struct {
	kind     int
	shape    ShipTemplate
	anchor   Coord
	rotation int
	hits     []bool
	sunk     bool
	placing  bool
}

func newShip(kind int, anchor Coord, rotation int, placing bool) Ship {
	shape := Templates[kind]

	return Ship{
		kind:     kind,
		shape:    shape,
		anchor:   anchor,
		rotation: NormalizeRotation(rotation),
		hits:     make([]bool, len(shape)),
		placing:  placing,
	}
}

// NewShip creates an unhit ship of the given catalog kind.
// Panics if kind is not a catalog index, which is a programming error.
func NewShip(kind int, anchor Coord, rotation int, placing bool) Ship {
	if kind < 0 || kind >= FLEET_SIZE {
		panic("armada: ship kind out of range")
	}

	return newShip(kind, anchor, rotation, placing)
}

func (s Ship) Kind() int      { return s.kind }
func (s Ship) Name() string   { return ShipName(s.kind) }
func (s Ship) Anchor() Coord  { return s.anchor }
func (s Ship) Rotation() int  { return s.rotation }
func (s Ship) Sunk() bool     { return s.sunk }
func (s Ship) Placing() bool  { return s.placing }
func (s Ship) Len() int       { return len(s.shape) }
func (s Ship) HitCount() int  { return lo.Count(s.hits, true) }
func (s Ship) Shape() []Coord { return append([]Coord(nil), s.shape...) }

// Hits returns a copy of the hit mask, index aligned with AbsoluteCells.
func (s Ship) Hits() []bool {
	return append([]bool(nil), s.hits...)
}

// AbsoluteCells returns the board cells the ship covers, in shape order.
func (s Ship) AbsoluteCells() []Coord {
	return lo.Map(s.shape, func(offset Coord, _ int) Coord {
		return RotateOffset(offset, s.rotation).Add(s.anchor)
	})
}

func (s Ship) Occupies(cell Coord) bool {
	return lo.Contains(s.AbsoluteCells(), cell)
}

// Rotate turns a ship that is still being placed. Committed ships are left alone
// and false is returned.
func (s *Ship) Rotate(delta int) bool {
	if !s.placing {
		return false
	}

	s.rotation = NormalizeRotation(s.rotation + delta)
	return true
}

// TryRegisterHit marks the segment covering cell as hit. Returns false when the
// ship does not cover cell.
func (s *Ship) TryRegisterHit(cell Coord) bool {
	_, index, found := lo.FindIndexOf(s.AbsoluteCells(), func(c Coord) bool {
		return c == cell
	})
	if !found {
		return false
	}

	s.hits[index] = true
	s.sunk = lo.EveryBy(s.hits, func(hit bool) bool { return hit })

	return true
}

// IsInvalid reports whether the ship hangs off the grid or overlaps any of others.
func (s Ship) IsInvalid(others []Ship) bool {
	cells := s.AbsoluteCells()

	for _, cell := range cells {
		if !cell.InBounds() {
			return true
		}
	}

	for _, other := range others {
		if len(lo.Intersect(cells, other.AbsoluteCells())) > 0 {
			return true
		}
	}

	return false
}

// commit copies the ship's placement into a fresh, unhit, committed ship.
func (s Ship) commit() Ship {
	return newShip(s.kind, s.anchor, s.rotation, false)
}

// clone deep copies the hit mask so the copy can be handed out safely.
func (s Ship) clone() Ship {
	s.hits = s.Hits()
	return s
}
