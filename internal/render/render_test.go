package render

import (
	"image/color"
	"strings"
	"testing"

	"blockfall/internal/core"
	"blockfall/internal/shape"

	"github.com/stretchr/testify/assert"
)

var (
	white = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	black = color.RGBA{A: 255}
)

func TestCanvasClearAndFill(t *testing.T) {
	c := NewCanvas(4, 3)
	c.Clear(color.Black)
	assert.Equal(t, black, c.At(3, 2))

	c.FillRect(1, 1, 2, 5, color.White)
	assert.Equal(t, white, c.At(1, 1))
	assert.Equal(t, white, c.At(2, 2))
	assert.Equal(t, black, c.At(0, 1))
	assert.Equal(t, black, c.At(3, 1))
	assert.Equal(t, color.RGBA{}, c.At(9, 9))
}

func TestCanvasClipsNegativeOrigin(t *testing.T) {
	c := NewCanvas(4, 4)
	c.Clear(color.Black)
	c.FillRect(-2, -2, 3, 3, color.White)
	assert.Equal(t, white, c.At(0, 0))
	assert.Equal(t, black, c.At(1, 1))
}

func TestCanvasBlendsTranslucent(t *testing.T) {
	c := NewCanvas(1, 1)
	c.Clear(color.Black)
	c.FillRect(0, 0, 1, 1, color.NRGBA{R: 255, A: 128})
	px := c.At(0, 0)
	assert.InDelta(t, 128, int(px.R), 1)
	assert.Equal(t, uint8(0), px.G)
	assert.Equal(t, uint8(255), px.A)
}

func TestShapeTranslatesToPixelSpace(t *testing.T) {
	r := NewRenderer(8)
	c := NewCanvas(80, 144)
	c.Clear(r.Background)

	p := shape.NewPiece(shape.KindO, core.Position{X: 2, Y: 3})
	r.Shape(c, p)

	assert.Equal(t, white, c.At(16, 24))
	assert.Equal(t, white, c.At(31, 39))
	assert.Equal(t, black, c.At(15, 24))
	assert.Equal(t, black, c.At(32, 24))
	assert.Equal(t, black, c.At(16, 40))
}

func TestSceneClearsAndDrawsAll(t *testing.T) {
	r := NewRenderer(8)
	c := NewCanvas(80, 144)
	c.FillRect(0, 0, 80, 144, color.White)

	settled := []shape.Shape{shape.NewPiece(shape.KindO, core.Position{X: 0, Y: 16}).Settle()}
	active := shape.NewPiece(shape.KindJ, core.Position{X: 5, Y: 0})
	r.Scene(c, settled, active)

	assert.Equal(t, white, c.At(0, 128), "settled cell")
	assert.Equal(t, white, c.At(40, 0), "active cell")
	assert.Equal(t, black, c.At(48, 0), "empty cell of the active pattern")
	assert.Equal(t, black, c.At(70, 70), "cleared background")
}

func TestDebugEmptyCells(t *testing.T) {
	r := NewRenderer(4)
	r.ShowEmpty = true
	c := NewCanvas(16, 16)
	c.Clear(r.Background)

	r.Shape(c, shape.NewPiece(shape.KindJ, core.Position{}))
	px := c.At(4, 0)
	assert.Greater(t, px.R, uint8(0))
	assert.Equal(t, uint8(0), px.G)
	assert.Equal(t, white, c.At(0, 0))
}

func TestDebugBounds(t *testing.T) {
	r := NewRenderer(4)
	r.ShowBounds = true
	c := NewCanvas(16, 16)
	c.Clear(r.Background)

	r.Shape(c, shape.NewPiece(shape.KindO, core.Position{X: 1, Y: 1}))
	bounds := color.RGBA{R: 64, G: 160, B: 255, A: 255}
	assert.Equal(t, bounds, c.At(4, 4))
	assert.Equal(t, bounds, c.At(11, 11))
	assert.Equal(t, white, c.At(6, 6))
}

func TestSceneDrawsDebugLayersUnderBlocks(t *testing.T) {
	r := NewRenderer(4)
	r.ShowEmpty = true
	r.ShowBounds = true
	c := NewCanvas(16, 16)

	settled := []shape.Shape{shape.NewPiece(shape.KindO, core.Position{X: 0, Y: 2}).Settle()}
	active := shape.NewPiece(shape.KindJ, core.Position{X: 0, Y: 1})
	r.Scene(c, settled, active)

	assert.Equal(t, white, c.At(2, 13), "settled cell under an empty cell of the active piece")
	assert.Equal(t, white, c.At(2, 15), "settled cell under the active outline")
	assert.Equal(t, color.RGBA{R: 64, G: 160, B: 255, A: 255}, c.At(9, 15), "outline over an empty cell")
}

func TestSceneWithoutActivePiece(t *testing.T) {
	r := NewRenderer(4)
	c := NewCanvas(16, 16)
	settled := []shape.Shape{shape.NewPiece(shape.KindO, core.Position{}).Settle()}

	assert.NotPanics(t, func() { r.Scene(c, settled, nil) })
	assert.Equal(t, white, c.At(0, 0))
	assert.Equal(t, "##\n##\n", Text(core.Size{W: 2, H: 2}, settled, nil))
}

func TestText(t *testing.T) {
	settled := []shape.Shape{shape.NewPiece(shape.KindO, core.Position{X: 0, Y: 2}).Settle()}
	active := shape.NewPiece(shape.KindT, core.Position{X: 1, Y: -1})

	got := Text(core.Size{W: 4, H: 4}, settled, active)
	want := strings.Join([]string{
		".@@@",
		"....",
		"##..",
		"##..",
	}, "\n") + "\n"
	assert.Equal(t, want, got)
}
