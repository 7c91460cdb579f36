package render

import "github.com/grindlemire/go-tui-controls/pkg/geom"

// Canvas is a view of a Buffer with its own origin and clip rectangle.
// Widgets draw in their parent's frame and call Translate with their own
// location before drawing children, so every level sees local coordinates.
type Canvas struct {
	buf    *Buffer
	origin geom.Point // in buffer coordinates
	clip   geom.Rect  // in buffer coordinates
}

// NewCanvas returns a canvas covering the whole buffer.
func NewCanvas(buf *Buffer) *Canvas {
	return &Canvas{buf: buf, clip: buf.Rect()}
}

// Buffer returns the underlying buffer.
func (c *Canvas) Buffer() *Buffer {
	return c.buf
}

// Origin returns the canvas origin in buffer coordinates.
func (c *Canvas) Origin() geom.Point {
	return c.origin
}

// Translate returns a canvas whose origin is moved by (dx, dy). The clip is unchanged.
func (c *Canvas) Translate(dx, dy int) *Canvas {
	return &Canvas{buf: c.buf, origin: c.origin.Add(geom.Pt(dx, dy)), clip: c.clip}
}

// Clip returns a canvas additionally clipped to r, given in local coordinates.
func (c *Canvas) Clip(r geom.Rect) *Canvas {
	abs := r.Translate(c.origin.X, c.origin.Y)
	return &Canvas{buf: c.buf, origin: c.origin, clip: c.clip.Intersect(abs)}
}

// SetRune draws a single rune at local (x, y).
func (c *Canvas) SetRune(x, y int, r rune, style Style) {
	ax, ay := x+c.origin.X, y+c.origin.Y
	if c.clip.Contains(ax, ay) {
		c.buf.SetRune(ax, ay, r, style)
	}
}

// SetString draws s starting at local (x, y) and returns the width drawn.
func (c *Canvas) SetString(x, y int, s string, style Style) int {
	return c.buf.SetString(x+c.origin.X, y+c.origin.Y, s, style, c.clip)
}

// Fill fills the local rectangle r.
func (c *Canvas) Fill(r geom.Rect, ch rune, style Style) {
	abs := r.Translate(c.origin.X, c.origin.Y).Intersect(c.clip)
	c.buf.Fill(abs, ch, style)
}

// DrawBox draws a hollow box around the local rectangle r.
func (c *Canvas) DrawBox(r geom.Rect, border BorderStyle, style Style) {
	drawBox(c.buf, r.Translate(c.origin.X, c.origin.Y), border, style, c.clip)
}
