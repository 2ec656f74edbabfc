package ui2d

import gomath "math"

// Vertex layouts of the two batches.
const (
	SolidStride = 7 // x, y, z, r, g, b, a
	TextStride  = 9 // x, y, z, u, v, r, g, b, a
)

// Canvas is what widgets draw onto.
type Canvas interface {
	DrawRect(x, y, w, h float32, c Color)
	DrawRectOutline(x, y, w, h, thickness float32, c Color)
	DrawLine(x0, y0, x1, y1, thickness float32, c Color)
	DrawText(x, y float32, text string, scale float32, c Color)
	MeasureText(text string, scale float32) (float32, float32)
}

// DrawList batches solid and textured triangles for one frame.
type DrawList struct {
	Solid []float32
	Text  []float32

	font *Font
}

// NewDrawList creates an empty list that lays text out with f.
func NewDrawList(f *Font) *DrawList {
	return &DrawList{
		Solid: make([]float32, 0, 4096),
		Text:  make([]float32, 0, 4096),
		font:  f,
	}
}

// Reset empties both batches.
func (d *DrawList) Reset() {
	d.Solid = d.Solid[:0]
	d.Text = d.Text[:0]
}

// Font returns the layout font.
func (d *DrawList) Font() *Font {
	return d.font
}

// DrawRect draws a filled rectangle.
func (d *DrawList) DrawRect(x, y, w, h float32, c Color) {
	d.addQuad(x, y, x+w, y, x+w, y+h, x, y+h, c)
}

// DrawRectOutline draws a rectangle outline.
func (d *DrawList) DrawRectOutline(x, y, w, h, thickness float32, c Color) {
	d.DrawRect(x, y, w, thickness, c)
	d.DrawRect(x, y+h-thickness, w, thickness, c)
	d.DrawRect(x, y+thickness, thickness, h-thickness*2, c)
	d.DrawRect(x+w-thickness, y+thickness, thickness, h-thickness*2, c)
}

// DrawPanel draws a panel with border.
func (d *DrawList) DrawPanel(x, y, w, h float32, bg, border Color) {
	d.DrawRect(x, y, w, h, bg)
	d.DrawRectOutline(x, y, w, h, 1, border)
}

// DrawLine draws a segment as a quad of the given thickness.
func (d *DrawList) DrawLine(x0, y0, x1, y1, thickness float32, c Color) {
	dx, dy := x1-x0, y1-y0
	l := float32(gomath.Hypot(float64(dx), float64(dy)))
	if l == 0 {
		return
	}
	nx, ny := -dy/l*thickness/2, dx/l*thickness/2
	d.addQuad(x0+nx, y0+ny, x1+nx, y1+ny, x1-nx, y1-ny, x0-nx, y0-ny, c)
}

func (d *DrawList) addQuad(ax, ay, bx, by, cx, cy, dx, dy float32, c Color) {
	d.Solid = append(d.Solid,
		ax, ay, 0, c.R, c.G, c.B, c.A,
		bx, by, 0, c.R, c.G, c.B, c.A,
		cx, cy, 0, c.R, c.G, c.B, c.A,

		ax, ay, 0, c.R, c.G, c.B, c.A,
		cx, cy, 0, c.R, c.G, c.B, c.A,
		dx, dy, 0, c.R, c.G, c.B, c.A,
	)
}

func (d *DrawList) addTexturedQuad(x, y, w, h, u0, v0, u1, v1 float32, c Color) {
	d.Text = append(d.Text,
		x, y, 0, u0, v0, c.R, c.G, c.B, c.A,
		x+w, y, 0, u1, v0, c.R, c.G, c.B, c.A,
		x+w, y+h, 0, u1, v1, c.R, c.G, c.B, c.A,

		x, y, 0, u0, v0, c.R, c.G, c.B, c.A,
		x+w, y+h, 0, u1, v1, c.R, c.G, c.B, c.A,
		x, y+h, 0, u0, v1, c.R, c.G, c.B, c.A,
	)
}

// DrawText draws text with its top-left corner at (x, y).
func (d *DrawList) DrawText(x, y float32, text string, scale float32, c Color) {
	if d.font == nil {
		return
	}
	gw, gh := d.font.GlyphSize()
	charW := float32(gw) * scale
	charH := float32(gh) * scale

	curX := x
	for _, r := range text {
		if r == '\n' {
			curX = x
			y += charH
			continue
		}
		if r != ' ' {
			u0, v0, u1, v1 := d.font.GetGlyphUV(r)
			d.addTexturedQuad(curX, y, charW, charH, u0, v0, u1, v1, c)
		}
		curX += charW
	}
}

// MeasureText returns the width and height of rendered text.
func (d *DrawList) MeasureText(text string, scale float32) (float32, float32) {
	if d.font == nil {
		return 0, 0
	}
	return d.font.MeasureText(text, scale)
}

// SolidCount returns the number of solid vertices queued.
func (d *DrawList) SolidCount() int {
	return len(d.Solid) / SolidStride
}

// TextCount returns the number of text vertices queued.
func (d *DrawList) TextCount() int {
	return len(d.Text) / TextStride
}
