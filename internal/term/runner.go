package term

import (
	"context"
	"fmt"
	"log"
	"time"

	"blockfall/internal/core"
	"blockfall/internal/game"
	"blockfall/internal/input"
	"blockfall/internal/render"

	"github.com/gdamore/tcell/v2"
)

// DefaultFrame is the redraw interval of the terminal loop.
const DefaultFrame = time.Second / 30

var hostKeys = map[tcell.Key]input.Key{
	tcell.KeyLeft:  input.KeyLeft,
	tcell.KeyRight: input.KeyRight,
	tcell.KeyUp:    input.KeyUp,
	tcell.KeyDown:  input.KeyDown,
}

// Runner drives a game.State from tcell events and a frame ticker. All state
// mutation happens on the goroutine that calls Run.
type Runner struct {
	screen   tcell.Screen
	state    *game.State
	renderer *render.Renderer
	surface  *Surface
	clock    *core.Stopwatch
	frame    time.Duration

	paused bool
	now    func() time.Time
}

// NewRunner builds a runner drawing state onto an initialized screen.
func NewRunner(screen tcell.Screen, state *game.State) *Runner {
	size := state.Size()
	return &Runner{
		screen:   screen,
		state:    state,
		renderer: render.NewRenderer(1),
		surface:  NewSurface(screen, 1, 1, size.W, size.H),
		clock:    core.NewStopwatch(),
		frame:    DefaultFrame,
		now:      time.Now,
	}
}

// SetFrame changes the redraw interval.
func (r *Runner) SetFrame(d time.Duration) {
	if d > 0 {
		r.frame = d
	}
}

// Run processes events and frames until ctx is done or the player quits.
func (r *Runner) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := r.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(r.frame)
	defer ticker.Stop()

	r.clock.Restart()
	r.Frame()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if r.Handle(ev) {
				return nil
			}
		case <-ticker.C:
			r.Frame()
		}
	}
}

// Frame advances the game by the time since the previous frame and redraws.
func (r *Runner) Frame() {
	delta := r.clock.Lap()
	if !r.paused {
		r.state.Tick(delta)
	}
	r.Draw()
}

// Handle applies one terminal event. It reports true when the player asked
// to quit.
func (r *Runner) Handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		r.screen.Sync()
	case *tcell.EventKey:
		if k, ok := hostKeys[ev.Key()]; ok {
			if !r.paused {
				r.state.HandleKey(k)
			}
			return false
		}
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyRune:
			return r.handleRune(ev.Rune())
		}
	}
	return false
}

func (r *Runner) handleRune(ch rune) bool {
	switch ch {
	case 'q', 'Q':
		return true
	case ' ':
		r.paused = !r.paused
	case 'n':
		if r.paused {
			r.state.Tick(r.state.Gravity().Interval())
		}
	case 'r':
		r.reset(r.state.Seed())
	case 's':
		r.reset(r.now().UnixNano())
	case 'd':
		r.renderer.ShowEmpty = !r.renderer.ShowEmpty
	case 'b':
		r.renderer.ShowBounds = !r.renderer.ShowBounds
	}
	return false
}

func (r *Runner) reset(seed int64) {
	r.state.Reset(seed)
	r.clock.Restart()
	log.Printf("reset with seed %d", seed)
}

// Draw renders the playfield, its frame and a status line, then shows the
// screen.
func (r *Runner) Draw() {
	size := r.state.Size()
	r.screen.Clear()
	r.drawFrame(size)
	r.renderer.Scene(r.surface, r.state.Settled(), r.state.Active())
	r.drawStatus(size)
	r.screen.Show()
}

func (r *Runner) drawFrame(size core.Size) {
	style := tcell.StyleDefault.Foreground(tcell.ColorGray)
	right := 2*size.W + 1
	bottom := size.H + 1
	for y := 1; y < bottom; y++ {
		r.screen.SetContent(0, y, '│', nil, style)
		r.screen.SetContent(right, y, '│', nil, style)
	}
	for x := 1; x < right; x++ {
		r.screen.SetContent(x, 0, '─', nil, style)
		r.screen.SetContent(x, bottom, '─', nil, style)
	}
	r.screen.SetContent(0, 0, '┌', nil, style)
	r.screen.SetContent(right, 0, '┐', nil, style)
	r.screen.SetContent(0, bottom, '└', nil, style)
	r.screen.SetContent(right, bottom, '┘', nil, style)
}

func (r *Runner) drawStatus(size core.Size) {
	p := r.state.Active()
	status := fmt.Sprintf("%s  settled %d", p.Kind(), len(r.state.Settled()))
	if r.paused {
		status += "  paused"
	}
	putString(r.screen, 0, size.H+2, status, tcell.StyleDefault)
}

func putString(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	for _, ch := range s {
		screen.SetContent(x, y, ch, nil, style)
		x++
	}
}
