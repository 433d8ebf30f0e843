//go:build ebiten

package ui

import (
	"strings"

	"blockfall/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay toggles the renderer's debug layers and prints their status on top
// of the playfield.
type Overlay struct {
	r      *render.Renderer
	paused bool
}

// NewOverlay constructs an overlay driving r's debug flags.
func NewOverlay(r *render.Renderer) *Overlay {
	return &Overlay{r: r}
}

// Update handles the D (empty cells) and B (bounding boxes) toggles.
func (o *Overlay) Update(paused bool) {
	o.paused = paused
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		o.r.ShowEmpty = !o.r.ShowEmpty
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		o.r.ShowBounds = !o.r.ShowBounds
	}
}

// Draw prints the active debug layers in the top-left corner.
func (o *Overlay) Draw(screen *ebiten.Image) {
	var tags []string
	if o.paused {
		tags = append(tags, "paused")
	}
	if o.r.ShowEmpty {
		tags = append(tags, "empty")
	}
	if o.r.ShowBounds {
		tags = append(tags, "bounds")
	}
	if len(tags) == 0 {
		return
	}
	ebitenutil.DebugPrintAt(screen, strings.Join(tags, " "), 2, 2)
}
