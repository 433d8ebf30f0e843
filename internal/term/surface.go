// Package term hosts the game in a terminal through tcell.
package term

import (
	"image/color"

	"github.com/gdamore/tcell/v2"
)

const (
	solidRune = '█'
	shadeRune = '░'
)

// Surface draws one playfield cell as two terminal columns so blocks look
// roughly square. One surface pixel equals one grid cell.
type Surface struct {
	screen tcell.Screen
	ox, oy int
	w, h   int
}

// NewSurface returns a w*h cell surface anchored at terminal position (ox, oy).
func NewSurface(screen tcell.Screen, ox, oy, w, h int) *Surface {
	return &Surface{screen: screen, ox: ox, oy: oy, w: w, h: h}
}

// Size returns the surface dimensions in cells.
func (s *Surface) Size() (int, int) { return s.w, s.h }

// Clear blanks the surface with col as the background.
func (s *Surface) Clear(col color.Color) {
	style := tcell.StyleDefault.Background(tcell.FromImageColor(col))
	for y := 0; y < s.h; y++ {
		for x := 0; x < s.w; x++ {
			s.set(x, y, ' ', style)
		}
	}
}

// FillRect paints cells clipped to the surface. Translucent colors are drawn
// as a light shade.
func (s *Surface) FillRect(x, y, w, h int, col color.Color) {
	_, _, _, a := col.RGBA()
	if a == 0 {
		return
	}
	ch := solidRune
	if a < 0xffff {
		ch = shadeRune
	}
	style := tcell.StyleDefault.Foreground(tcell.FromImageColor(col))
	for py := max(y, 0); py < min(y+h, s.h); py++ {
		for px := max(x, 0); px < min(x+w, s.w); px++ {
			s.set(px, py, ch, style)
		}
	}
}

func (s *Surface) set(x, y int, ch rune, style tcell.Style) {
	tx := s.ox + 2*x
	ty := s.oy + y
	s.screen.SetContent(tx, ty, ch, nil, style)
	s.screen.SetContent(tx+1, ty, ch, nil, style)
}
