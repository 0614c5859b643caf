package rendering

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/nathanieltooley/broadside/armada"
	"github.com/samber/lo"
)

const (
	GLYPH_WATER   = "·"
	GLYPH_SHIP    = "■"
	GLYPH_PLACING = "□"
	GLYPH_HIT     = "✕"
	GLYPH_MISS    = "○"
)

var (
	cellStyle    = lipgloss.NewStyle().Width(2).Align(lipgloss.Center)
	waterStyle   = cellStyle.Foreground(WaterColor)
	shipStyle    = cellStyle.Foreground(ShipColor)
	placingStyle = cellStyle.Foreground(HighlightedColor).Bold(true)
	invalidStyle = cellStyle.Foreground(InvalidColor).Bold(true)
	hitStyle     = cellStyle.Foreground(HitColor).Bold(true)
	sunkStyle    = cellStyle.Foreground(SunkColor)
	missStyle    = cellStyle.Foreground(MissColor)
	labelStyle   = cellStyle.Foreground(MissColor)

	cursorBackground = lipgloss.Color("237")
)

var columnLabels = lo.Map(lo.Range(armada.GRID_SIZE), func(i int, _ int) string {
	return string(rune('A' + i))
})

// CellLabel names a cell the way the grid headers do, e.g. (1,6) is "B7".
func CellLabel(c armada.Coord) string {
	if !c.InBounds() {
		return c.String()
	}

	return fmt.Sprintf("%s%d", columnLabels[c.X], c.Y+1)
}

type cell struct {
	glyph string
	style lipgloss.Style
}

type gridCells [armada.GRID_SIZE][armada.GRID_SIZE]cell

func newGridCells() gridCells {
	var g gridCells
	for y := range armada.GRID_SIZE {
		for x := range armada.GRID_SIZE {
			g[y][x] = cell{GLYPH_WATER, waterStyle}
		}
	}

	return g
}

func (g *gridCells) set(c armada.Coord, glyph string, style lipgloss.Style) {
	if c.InBounds() {
		g[c.Y][c.X] = cell{glyph, style}
	}
}

func (g gridCells) render(cursor *armada.Coord) string {
	var b strings.Builder

	b.WriteString(labelStyle.Width(3).Render(""))
	for _, label := range columnLabels {
		b.WriteString(labelStyle.Render(label))
	}
	b.WriteString("\n")

	for y := range armada.GRID_SIZE {
		b.WriteString(labelStyle.Width(3).Render(fmt.Sprintf("%d", y+1)))
		for x := range armada.GRID_SIZE {
			c := g[y][x]
			style := c.style
			if cursor != nil && *cursor == armada.NewCoord(x, y) {
				style = style.Background(cursorBackground)
			}
			b.WriteString(style.Render(c.glyph))
		}

		if y < armada.GRID_SIZE-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}

// FleetGrid draws a player's own waters: their placed ships with the hits they have
// taken, the shots the opponent wasted on open water, and the ship being placed.
// incoming is the opponent's shots map and may be nil during placement.
func FleetGrid(board *armada.Board, incoming map[armada.Coord]bool, showCursor bool) string {
	g := newGridCells()

	for c, hit := range incoming {
		if !hit {
			g.set(c, GLYPH_MISS, missStyle)
		}
	}

	ships := board.Ships()
	for _, ship := range ships {
		hits := ship.Hits()
		for i, c := range ship.AbsoluteCells() {
			switch {
			case ship.Sunk():
				g.set(c, GLYPH_HIT, sunkStyle)
			case hits[i]:
				g.set(c, GLYPH_HIT, hitStyle)
			default:
				g.set(c, GLYPH_SHIP, shipStyle)
			}
		}
	}

	if placing, ok := board.PlacingShip(); ok {
		style := placingStyle
		if placing.IsInvalid(ships) {
			style = invalidStyle
		}

		for _, c := range placing.AbsoluteCells() {
			g.set(c, GLYPH_PLACING, style)
		}
	}

	var cursor *armada.Coord
	if showCursor {
		c := board.Cursor()
		cursor = &c
	}

	return g.render(cursor)
}

// TargetGrid draws what a shooter knows about the opponent: where they have fired
// and whether it hit. The shooter's cursor selects the next target.
func TargetGrid(shooter *armada.Board, showCursor bool) string {
	g := newGridCells()

	for c, hit := range shooter.Shots() {
		if hit {
			g.set(c, GLYPH_HIT, hitStyle)
		} else {
			g.set(c, GLYPH_MISS, missStyle)
		}
	}

	var cursor *armada.Coord
	if showCursor {
		c := shooter.Cursor()
		cursor = &c
	}

	return g.render(cursor)
}

// TitledGrid wraps a grid in a panel with a heading.
func TitledGrid(title string, grid string) string {
	return PanelStyle.Render(lipgloss.JoinVertical(lipgloss.Center, TitleStyle.Render(title), grid))
}

// FleetStatus lists each ship and whether it is still afloat.
func FleetStatus(board *armada.Board) string {
	lines := lo.Map(board.Ships(), func(ship armada.Ship, _ int) string {
		status := fmt.Sprintf("%d/%d", ship.Len()-ship.HitCount(), ship.Len())
		if ship.Sunk() {
			return sunkStyle.UnsetWidth().Render(fmt.Sprintf("%-12s sunk", Title(ship.Name())))
		}

		return fmt.Sprintf("%-12s %s", Title(ship.Name()), status)
	})

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
