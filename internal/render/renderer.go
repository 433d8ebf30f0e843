// Package render draws playfield shapes onto pixel surfaces.
package render

import (
	"image/color"

	"blockfall/internal/shape"
)

var (
	// DebugEmptyColor marks empty cells inside a pattern's bounding box.
	DebugEmptyColor = color.NRGBA{R: 255, A: 128}
	// DebugBoundsColor outlines bounding boxes.
	DebugBoundsColor = color.NRGBA{R: 64, G: 160, B: 255, A: 255}
)

// Renderer converts grid-unit shapes into pixel rectangles.
type Renderer struct {
	Block      int
	Foreground color.Color
	Background color.Color

	// ShowEmpty paints empty pattern cells with DebugEmptyColor.
	ShowEmpty bool
	// ShowBounds outlines every bounding box with DebugBoundsColor.
	ShowBounds bool
}

// NewRenderer returns a white-on-black renderer for the given block size.
func NewRenderer(block int) *Renderer {
	if block <= 0 {
		block = 1
	}
	return &Renderer{Block: block, Foreground: color.White, Background: color.Black}
}

// Scene clears dst, then draws the settled shapes in order and the active
// piece on top. A nil active piece is skipped. Debug layers of every shape are
// drawn before any block, so no overlay ever covers a filled cell.
func (r *Renderer) Scene(dst Surface, settled []shape.Shape, active *shape.Piece) {
	dst.Clear(r.Background)
	if r.ShowEmpty || r.ShowBounds {
		for i := range settled {
			r.debug(dst, settled[i])
		}
		if active != nil {
			r.debug(dst, active)
		}
	}
	for i := range settled {
		r.blocks(dst, settled[i])
	}
	if active != nil {
		r.blocks(dst, active)
	}
}

// Shape draws one block per filled cell of g, offset to g's pixel position,
// with the enabled debug layers around it.
func (r *Renderer) Shape(dst Surface, g shape.Geometry) {
	if r.ShowEmpty {
		r.empty(dst, g)
	}
	r.blocks(dst, g)
	if r.ShowBounds {
		r.outline(dst, g)
	}
}

func (r *Renderer) debug(dst Surface, g shape.Geometry) {
	if r.ShowEmpty {
		r.empty(dst, g)
	}
	if r.ShowBounds {
		r.outline(dst, g)
	}
}

func (r *Renderer) blocks(dst Surface, g shape.Geometry) {
	ox, oy := r.origin(g)
	b := r.Block
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if g.Filled(x, y) {
				dst.FillRect(ox+x*b, oy+y*b, b, b, r.Foreground)
			}
		}
	}
}

func (r *Renderer) empty(dst Surface, g shape.Geometry) {
	ox, oy := r.origin(g)
	b := r.Block
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if !g.Filled(x, y) {
				dst.FillRect(ox+x*b, oy+y*b, b, b, DebugEmptyColor)
			}
		}
	}
}

func (r *Renderer) origin(g shape.Geometry) (int, int) {
	return g.Left() * r.Block, g.Top() * r.Block
}

func (r *Renderer) outline(dst Surface, g shape.Geometry) {
	ox, oy := r.origin(g)
	w, h := g.Width()*r.Block, g.Height()*r.Block
	dst.FillRect(ox, oy, w, 1, DebugBoundsColor)
	dst.FillRect(ox, oy+h-1, w, 1, DebugBoundsColor)
	dst.FillRect(ox, oy, 1, h, DebugBoundsColor)
	dst.FillRect(ox+w-1, oy, 1, h, DebugBoundsColor)
}
