// Package world holds the grid simulation of the dungeon: entity state,
// movement, gravity and monster pursuit. It knows nothing about input,
// level files or rendering.
package world

import "fmt"

// Cell is a grid coordinate. Row 0 is the bottom row of a level.
type Cell struct {
	Col, Row int
}

// C constructs a Cell.
func C(col, row int) Cell {
	return Cell{Col: col, Row: row}
}

// Shift returns the neighbouring cell in direction d.
func (c Cell) Shift(d Direction) Cell {
	dc, dr := d.Delta()
	return Cell{Col: c.Col + dc, Row: c.Row + dr}
}

// Below returns the cell directly underneath c.
func (c Cell) Below() Cell {
	return c.Shift(Down)
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Col, c.Row)
}

// GridPosition is a cell that may not have been assigned yet.
// The zero value is unplaced.
type GridPosition struct {
	cell   Cell
	placed bool
}

// Placed returns a GridPosition holding c.
func Placed(c Cell) GridPosition {
	return GridPosition{cell: c, placed: true}
}

// Get returns the cell and whether it has been placed.
func (p GridPosition) Get() (Cell, bool) {
	return p.cell, p.placed
}

// IsPlaced reports whether the position has been assigned.
func (p GridPosition) IsPlaced() bool {
	return p.placed
}

// Direction is the facing or movement direction of an entity.
type Direction int

const (
	None Direction = iota
	Left
	Right
	Down
)

// Delta returns the column and row offsets for this direction.
func (d Direction) Delta() (dCol, dRow int) {
	switch d {
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	case Down:
		return 0, -1
	default:
		return 0, 0
	}
}

func (d Direction) String() string {
	switch d {
	case None:
		return "none"
	case Left:
		return "left"
	case Right:
		return "right"
	case Down:
		return "down"
	default:
		return "unknown"
	}
}
