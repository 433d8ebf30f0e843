// Package shape holds the playfield geometry: static shapes, falling pieces
// and the lookahead collision test between them.
package shape

import "blockfall/internal/core"

// Geometry is the bounding-box and cell view shared by static shapes and
// falling pieces. Edges are in grid units; Right and Bottom are exclusive.
type Geometry interface {
	Width() int
	Height() int
	Left() int
	Right() int
	Top() int
	Bottom() int
	// Filled reports whether the pattern-local cell (x, y) is set.
	Filled(x, y int) bool
}

// Shape is a pattern placed at a grid position. It is used for the floor and
// for settled pieces.
type Shape struct {
	Pos     core.Position
	Pattern core.Pattern
}

// New places pattern at pos.
func New(pos core.Position, pattern core.Pattern) Shape {
	return Shape{Pos: pos, Pattern: pattern}
}

// Floor returns a one-row, fully filled shape spanning columns at row.
func Floor(columns, row int) Shape {
	return New(core.Position{X: 0, Y: row}, core.Filled(columns, 1))
}

// Width returns the pattern width in cells.
func (s Shape) Width() int { return s.Pattern.W }

// Height returns the pattern height in cells.
func (s Shape) Height() int { return s.Pattern.H }

// Left returns the leftmost column of the bounding box.
func (s Shape) Left() int { return s.Pos.X }

// Right returns the column just past the bounding box.
func (s Shape) Right() int { return s.Pos.X + s.Width() }

// Top returns the topmost row of the bounding box.
func (s Shape) Top() int { return s.Pos.Y }

// Bottom returns the row just below the bounding box.
func (s Shape) Bottom() int { return s.Pos.Y + s.Height() }

// Filled reports whether the pattern-local cell (x, y) is set.
func (s Shape) Filled(x, y int) bool { return s.Pattern.At(x, y) }

// Cells calls fn with the grid coordinates of every filled cell.
func Cells(g Geometry, fn func(x, y int)) {
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if g.Filled(x, y) {
				fn(g.Left()+x, g.Top()+y)
			}
		}
	}
}
