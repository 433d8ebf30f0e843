package render

import "image/color"

// Surface is an immediate-mode raster target in pixel units.
type Surface interface {
	Size() (w, h int)
	Clear(c color.Color)
	FillRect(x, y, w, h int, c color.Color)
}

// Canvas is an in-memory RGBA surface. Its buffer can be uploaded directly to
// a GPU image.
type Canvas struct {
	w, h int
	buf  []byte
}

// NewCanvas allocates a canvas of w*h pixels.
func NewCanvas(w, h int) *Canvas {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Canvas{w: w, h: h, buf: make([]byte, 4*w*h)}
}

// Size returns the canvas dimensions in pixels.
func (c *Canvas) Size() (int, int) { return c.w, c.h }

// Pix exposes the RGBA bytes in row-major order.
func (c *Canvas) Pix() []byte { return c.buf }

// At returns the pixel at (x, y). Out-of-range reads return transparent black.
func (c *Canvas) At(x, y int) color.RGBA {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return color.RGBA{}
	}
	base := 4 * (y*c.w + x)
	return color.RGBA{R: c.buf[base], G: c.buf[base+1], B: c.buf[base+2], A: c.buf[base+3]}
}

// Clear fills every pixel with col.
func (c *Canvas) Clear(col color.Color) {
	rgba := toRGBA(col)
	for i := 0; i < len(c.buf); i += 4 {
		c.buf[i+0] = rgba.R
		c.buf[i+1] = rgba.G
		c.buf[i+2] = rgba.B
		c.buf[i+3] = rgba.A
	}
}

// FillRect paints a rectangle clipped to the canvas. Translucent colors are
// blended over the existing pixels.
func (c *Canvas) FillRect(x, y, w, h int, col color.Color) {
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+w, c.w), min(y+h, c.h)
	if x0 >= x1 || y0 >= y1 {
		return
	}
	r, g, b, a := col.RGBA()
	if a == 0 {
		return
	}
	inv := 0xffff - a
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			base := 4 * (py*c.w + px)
			if a == 0xffff {
				c.buf[base+0] = uint8(r >> 8)
				c.buf[base+1] = uint8(g >> 8)
				c.buf[base+2] = uint8(b >> 8)
				c.buf[base+3] = 0xff
				continue
			}
			// col.RGBA is alpha-premultiplied, so source-over is src + dst*(1-a).
			c.buf[base+0] = uint8((r + uint32(c.buf[base+0])*0x101*inv/0xffff) >> 8)
			c.buf[base+1] = uint8((g + uint32(c.buf[base+1])*0x101*inv/0xffff) >> 8)
			c.buf[base+2] = uint8((b + uint32(c.buf[base+2])*0x101*inv/0xffff) >> 8)
			c.buf[base+3] = uint8((a + uint32(c.buf[base+3])*0x101*inv/0xffff) >> 8)
		}
	}
}

func toRGBA(col color.Color) color.RGBA {
	r, g, b, a := col.RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}
