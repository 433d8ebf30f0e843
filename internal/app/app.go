//go:build ebiten

package app

import (
	"log"
	"time"

	"blockfall/internal/core"
	"blockfall/internal/game"
	"blockfall/internal/input"
	"blockfall/internal/render"
	"blockfall/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Key repeat timing in frames, roughly matching a desktop keyboard.
const (
	repeatDelay    = 15
	repeatInterval = 3
)

var hostKeys = map[ebiten.Key]input.Key{
	ebiten.KeyArrowLeft:  input.KeyLeft,
	ebiten.KeyArrowRight: input.KeyRight,
	ebiten.KeyArrowUp:    input.KeyUp,
	ebiten.KeyArrowDown:  input.KeyDown,
}

// Game adapts the block game state to the ebiten.Game interface.
type Game struct {
	state    *game.State
	renderer *render.Renderer
	painter  *render.Painter
	hud      *ui.HUD
	overlay  *ui.Overlay
	clock    *core.Stopwatch

	scale    int
	paused   bool
	tickOnce bool
}

// New constructs a Game for the provided state.
func New(state *game.State, cfg *Config) *Game {
	gc := state.Config()
	w, h := gc.PixelSize()
	r := render.NewRenderer(gc.BlockSize)
	return &Game{
		state:    state,
		renderer: r,
		painter:  render.NewPainter(w, h),
		hud:      ui.NewHUD(state, cfg.HUDWidth),
		overlay:  ui.NewOverlay(r),
		clock:    core.NewStopwatch(),
		scale:    cfg.Scale,
	}
}

// Reset restarts the piece sequence with the provided seed.
func (g *Game) Reset(seed int64) {
	g.state.Reset(seed)
	g.clock.Restart()
	g.tickOnce = false
	log.Printf("reset with seed %d", seed)
}

// Update handles per-frame input and advances the game.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.state.Seed())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	if !g.paused {
		for hk, k := range hostKeys {
			if repeating(hk) {
				g.state.HandleKey(k)
			}
		}
	}

	g.overlay.Update(g.paused)
	w, _ := g.painter.Size()
	g.hud.Update(w * g.scale)

	delta := g.clock.Lap()
	switch {
	case !g.paused:
		g.state.Tick(delta)
	case g.tickOnce:
		g.state.Tick(g.state.Gravity().Interval())
	}
	g.tickOnce = false
	return nil
}

// repeating reports a press on the first frame and then at the repeat rate
// while the key stays down.
func repeating(k ebiten.Key) bool {
	d := inpututil.KeyPressDuration(k)
	if d == 1 {
		return true
	}
	return d >= repeatDelay && (d-repeatDelay)%repeatInterval == 0
}

// Draw renders the settled pieces, then the active piece, then the panels.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Scene(g.painter.Canvas(), g.state.Settled(), g.state.Active())
	g.painter.Blit(screen, g.scale)
	g.overlay.Draw(screen)
	w, h := g.painter.Size()
	g.hud.Draw(screen, w*g.scale, h*g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.painter.Size()
	return w*g.scale + g.hud.Width(), h * g.scale
}
