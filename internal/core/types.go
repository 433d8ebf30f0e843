package core

// Size describes the dimensions of the playfield in grid units.
type Size struct {
	W int
	H int
}

// Position is a grid coordinate: X is the column, Y the row.
type Position struct {
	X int
	Y int
}

// Add returns p offset by (dx, dy).
func (p Position) Add(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}
