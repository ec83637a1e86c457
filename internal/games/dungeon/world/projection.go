package world

import "github.com/vovakirdan/tui-dungeon/internal/core"

// Anchors are pixel offsets added to a cell's lower-left corner.
var (
	// PlayerAnchor places the player sprite, which is drawn from its bottom-left.
	PlayerAnchor = core.V(9, 0)
	// TileAnchor is the center of a cell, used for monsters and static tiles.
	TileAnchor = core.V(25, 25)
)

// Projection maps grid cells to screen-space pixels.
type Projection struct {
	CellSize   float64
	HalfWidth  float64
	HalfHeight float64
}

// Project returns the pixel position of cell c with the given anchor.
func (p Projection) Project(c Cell, anchor core.Vec2) core.Vec2 {
	return core.V(
		anchor.X+float64(c.Col)*p.CellSize-p.HalfWidth,
		anchor.Y+float64(c.Row)*p.CellSize-p.HalfHeight,
	)
}

// Unproject is the inverse of Project. It returns fractional grid coordinates
// so renderers can place entities that are between two cells.
func (p Projection) Unproject(pos core.Vec2, anchor core.Vec2) (col, row float64) {
	col = (pos.X - anchor.X + p.HalfWidth) / p.CellSize
	row = (pos.Y - anchor.Y + p.HalfHeight) / p.CellSize
	return col, row
}
