package armada

import (
	"fmt"

	"github.com/samber/lo"
)

// GRID_SIZE is the width and height of every board.
const GRID_SIZE = 10

// Coord is a cell on a board, or an offset from a ship's anchor.
// X grows to the right and Y grows downward.
type Coord struct {
	X int
	Y int
}

func NewCoord(x, y int) Coord {
	return Coord{X: x, Y: y}
}

func (c Coord) Add(other Coord) Coord {
	return Coord{X: c.X + other.X, Y: c.Y + other.Y}
}

func (c Coord) InBounds() bool {
	return c.X >= 0 && c.X < GRID_SIZE && c.Y >= 0 && c.Y < GRID_SIZE
}

// Clamp pulls both axes back onto the grid.
func (c Coord) Clamp() Coord {
	return Coord{
		X: lo.Clamp(c.X, 0, GRID_SIZE-1),
		Y: lo.Clamp(c.Y, 0, GRID_SIZE-1),
	}
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Quarter turn transforms indexed by rotation.
// Each matrix maps (x, y) to (m[0][0]*x + m[0][1]*y, m[1][0]*x + m[1][1]*y).
var rotationMatrices = [4][2][2]int{
	{{1, 0}, {0, 1}},   // (x, y)
	{{0, 1}, {-1, 0}},  // (y, -x)
	{{-1, 0}, {0, -1}}, // (-x, -y)
	{{0, -1}, {1, 0}},  // (-y, x)
}

// NormalizeRotation maps any number of quarter turns into 0..3.
func NormalizeRotation(rotation int) int {
	return ((rotation % 4) + 4) % 4
}

// InverseRotation returns the rotation that undoes the given one.
func InverseRotation(rotation int) int {
	return NormalizeRotation(4 - NormalizeRotation(rotation))
}

// RotateOffset turns an anchor-relative offset by the given number of quarter turns.
func RotateOffset(offset Coord, rotation int) Coord {
	m := rotationMatrices[NormalizeRotation(rotation)]
	return Coord{
		X: m[0][0]*offset.X + m[0][1]*offset.Y,
		Y: m[1][0]*offset.X + m[1][1]*offset.Y,
	}
}
