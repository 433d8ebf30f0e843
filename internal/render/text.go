package render

import (
	"strings"

	"blockfall/internal/core"
	"blockfall/internal/shape"
)

// Text renders the visible playfield as rows of runes: '#' for settled
// cells, '@' for the active piece and '.' for empty cells. Cells outside the
// playfield are dropped. A nil active piece is skipped.
func Text(size core.Size, settled []shape.Shape, active *shape.Piece) string {
	grid := make([][]byte, size.H)
	for y := range grid {
		grid[y] = []byte(strings.Repeat(".", size.W))
	}
	mark := func(ch byte) func(x, y int) {
		return func(x, y int) {
			if x >= 0 && y >= 0 && x < size.W && y < size.H {
				grid[y][x] = ch
			}
		}
	}
	for i := range settled {
		shape.Cells(settled[i], mark('#'))
	}
	if active != nil {
		shape.Cells(active, mark('@'))
	}

	var sb strings.Builder
	for _, row := range grid {
		sb.Write(row)
		sb.WriteByte('\n')
	}
	return sb.String()
}
