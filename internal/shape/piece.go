package shape

import "blockfall/internal/core"

// Kind identifies one of the seven canonical layouts.
type Kind uint8

// Piece kinds, named after the letter each layout resembles.
const (
	KindI Kind = iota
	KindJ
	KindL
	KindO
	KindS
	KindT
	KindZ
)

// KindCount is the number of canonical layouts.
const KindCount = 7

var kindNames = [KindCount]string{"I", "J", "L", "O", "S", "T", "Z"}

// String returns the kind's letter, or "?" for unknown values.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "?"
}

var layouts = [KindCount]core.Pattern{
	KindI: core.MustPattern([][]uint8{
		{0, 0, 1, 0},
		{0, 0, 1, 0},
		{0, 0, 1, 0},
		{0, 0, 1, 0},
	}),
	KindJ: core.MustPattern([][]uint8{
		{1, 0, 0},
		{1, 1, 1},
		{0, 0, 0},
	}),
	KindL: core.MustPattern([][]uint8{
		{0, 0, 1},
		{1, 1, 1},
		{0, 0, 0},
	}),
	KindO: core.MustPattern([][]uint8{
		{1, 1},
		{1, 1},
	}),
	KindS: core.MustPattern([][]uint8{
		{0, 1, 1},
		{1, 1, 0},
		{0, 0, 0},
	}),
	KindT: core.MustPattern([][]uint8{
		{0, 1, 0},
		{1, 1, 1},
		{0, 0, 0},
	}),
	KindZ: core.MustPattern([][]uint8{
		{1, 1, 0},
		{0, 1, 1},
		{0, 0, 0},
	}),
}

// Layout returns a fresh copy of the starting pattern for k.
func Layout(k Kind) core.Pattern {
	return layouts[k%KindCount].Clone()
}

// Piece is the falling tetromino. It owns its geometry and mutates it in place.
type Piece struct {
	kind  Kind
	shape Shape
}

// NewPiece creates a piece of the given kind at pos.
func NewPiece(k Kind, pos core.Position) *Piece {
	return &Piece{kind: k % KindCount, shape: New(pos, Layout(k))}
}

// RandomPiece picks a kind uniformly from rng and places it at pos.
func RandomPiece(rng *core.RNG, pos core.Position) *Piece {
	return NewPiece(Kind(rng.IntN(KindCount)), pos)
}

// Kind reports which layout the piece started from.
func (p *Piece) Kind() Kind { return p.kind }

// Pos returns the current grid position.
func (p *Piece) Pos() core.Position { return p.shape.Pos }

// Pattern returns the current pattern.
func (p *Piece) Pattern() core.Pattern { return p.shape.Pattern }

// Width returns the pattern width in cells.
func (p *Piece) Width() int { return p.shape.Width() }

// Height returns the pattern height in cells.
func (p *Piece) Height() int { return p.shape.Height() }

// Left returns the leftmost column of the bounding box.
func (p *Piece) Left() int { return p.shape.Left() }

// Right returns the column just past the bounding box.
func (p *Piece) Right() int { return p.shape.Right() }

// Top returns the topmost row of the bounding box.
func (p *Piece) Top() int { return p.shape.Top() }

// Bottom returns the row just below the bounding box.
func (p *Piece) Bottom() int { return p.shape.Bottom() }

// Filled reports whether the pattern-local cell (x, y) is set.
func (p *Piece) Filled(x, y int) bool { return p.shape.Filled(x, y) }

// Translate moves the piece by (dx, dy). Nothing keeps it on the grid.
func (p *Piece) Translate(dx, dy int) {
	p.shape.Pos = p.shape.Pos.Add(dx, dy)
}

// MoveLeft shifts the piece one column left.
func (p *Piece) MoveLeft() { p.Translate(-1, 0) }

// MoveRight shifts the piece one column right.
func (p *Piece) MoveRight() { p.Translate(1, 0) }

// MoveDown shifts the piece one row down.
func (p *Piece) MoveDown() { p.Translate(0, 1) }

// Rotate turns the pattern 90° in place. Non-square patterns are left as they
// are and Rotate reports false.
func (p *Piece) Rotate() bool {
	rotated, err := p.shape.Pattern.Rotate()
	if err != nil {
		return false
	}
	p.shape.Pattern = rotated
	return true
}

// Settle returns an independent snapshot of the piece as a static shape.
func (p *Piece) Settle() Shape {
	return New(p.shape.Pos, p.shape.Pattern.Clone())
}
