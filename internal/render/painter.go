//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Painter uploads a Canvas into an ebiten image and draws it scaled.
type Painter struct {
	canvas *Canvas
	img    *ebiten.Image
}

// NewPainter allocates a painter backed by a w*h canvas.
func NewPainter(w, h int) *Painter {
	c := NewCanvas(w, h)
	cw, ch := c.Size()
	return &Painter{canvas: c, img: ebiten.NewImage(cw, ch)}
}

// Canvas returns the surface to draw the frame into.
func (p *Painter) Canvas() *Canvas { return p.canvas }

// Blit uploads the canvas and draws it onto dst at the given scale.
func (p *Painter) Blit(dst *ebiten.Image, scale int) {
	if scale <= 0 {
		scale = 1
	}
	p.img.WritePixels(p.canvas.Pix())

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(p.img, op)
}

// Size returns the dimensions of the underlying canvas.
func (p *Painter) Size() (int, int) { return p.canvas.Size() }
