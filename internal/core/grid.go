package core

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyPattern is returned when a pattern has no rows or no columns.
	ErrEmptyPattern = errors.New("pattern has no cells")
	// ErrRaggedPattern is returned when pattern rows differ in length.
	ErrRaggedPattern = errors.New("pattern rows differ in length")
	// ErrNotSquare is returned when rotating a pattern that is not N×N.
	ErrNotSquare = errors.New("pattern is not square")
)

// Pattern stores a rectangular grid of 0/1 cells in row-major order.
type Pattern struct {
	W, H int
	data []uint8
}

// NewPattern allocates an empty pattern with the given dimensions.
func NewPattern(w, h int) Pattern {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return Pattern{W: w, H: h, data: make([]uint8, w*h)}
}

// PatternFromRows builds a pattern from row slices. Any non-zero value counts
// as filled.
func PatternFromRows(rows [][]uint8) (Pattern, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return Pattern{}, ErrEmptyPattern
	}
	w := len(rows[0])
	p := NewPattern(w, len(rows))
	for y, row := range rows {
		if len(row) != w {
			return Pattern{}, fmt.Errorf("row %d has %d cells, want %d: %w", y, len(row), w, ErrRaggedPattern)
		}
		for x, v := range row {
			if v != 0 {
				p.data[p.Index(x, y)] = 1
			}
		}
	}
	return p, nil
}

// MustPattern is PatternFromRows for static tables; it panics on bad input.
func MustPattern(rows [][]uint8) Pattern {
	p, err := PatternFromRows(rows)
	if err != nil {
		panic(err)
	}
	return p
}

// Filled returns a full w*h pattern.
func Filled(w, h int) Pattern {
	p := NewPattern(w, h)
	for i := range p.data {
		p.data[i] = 1
	}
	return p
}

// Cells exposes the backing slice.
func (p Pattern) Cells() []uint8 { return p.data }

// Index returns the linear slice index for coordinates (x, y).
func (p Pattern) Index(x, y int) int { return y*p.W + x }

// In reports whether (x, y) lies inside the pattern.
func (p Pattern) In(x, y int) bool {
	return x >= 0 && y >= 0 && x < p.W && y < p.H
}

// At returns the cell at (x, y); out-of-range coordinates read as empty.
func (p Pattern) At(x, y int) bool {
	if !p.In(x, y) {
		return false
	}
	return p.data[p.Index(x, y)] != 0
}

// Square reports whether the pattern is N×N.
func (p Pattern) Square() bool { return p.W == p.H && p.W > 0 }

// Count returns the number of filled cells.
func (p Pattern) Count() int {
	n := 0
	for _, c := range p.data {
		if c != 0 {
			n++
		}
	}
	return n
}

// Rotate returns a copy turned 90° so that rotated[y][x] = p[N-1-x][y].
func (p Pattern) Rotate() (Pattern, error) {
	if !p.Square() {
		return Pattern{}, fmt.Errorf("rotate %dx%d: %w", p.W, p.H, ErrNotSquare)
	}
	n := p.W
	out := NewPattern(n, n)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			out.data[out.Index(x, y)] = p.data[p.Index(y, n-1-x)]
		}
	}
	return out, nil
}

// Clone returns a deep copy.
func (p Pattern) Clone() Pattern {
	out := Pattern{W: p.W, H: p.H, data: make([]uint8, len(p.data))}
	copy(out.data, p.data)
	return out
}

// Equal reports whether both patterns have the same size and cells.
func (p Pattern) Equal(o Pattern) bool {
	if p.W != o.W || p.H != o.H || len(p.data) != len(o.data) {
		return false
	}
	for i := range p.data {
		if (p.data[i] != 0) != (o.data[i] != 0) {
			return false
		}
	}
	return true
}

// Rows returns the pattern as row slices.
func (p Pattern) Rows() [][]uint8 {
	rows := make([][]uint8, p.H)
	for y := range rows {
		rows[y] = append([]uint8(nil), p.data[y*p.W:(y+1)*p.W]...)
	}
	return rows
}
