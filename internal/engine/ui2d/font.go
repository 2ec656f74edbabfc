package ui2d

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	firstGlyph  = 0x20
	lastGlyph   = 0x7e
	atlasCols   = 16
	degreeGlyph = '°'
)

// Font is a monospaced glyph atlas rasterised from basicfont.Face7x13.
// The atlas is a single alpha plane; the GL renderer uploads it as a texture.
type Font struct {
	Atlas *image.Alpha

	glyphW, glyphH int
	index          map[rune]int
}

// NewFont rasterises the printable ASCII range plus the degree sign.
func NewFont() *Font {
	face := basicfont.Face7x13

	runes := make([]rune, 0, lastGlyph-firstGlyph+2)
	for r := rune(firstGlyph); r <= lastGlyph; r++ {
		runes = append(runes, r)
	}
	runes = append(runes, degreeGlyph)

	rows := (len(runes) + atlasCols - 1) / atlasCols
	f := &Font{
		Atlas:  image.NewAlpha(image.Rect(0, 0, atlasCols*face.Advance, rows*face.Height)),
		glyphW: face.Advance,
		glyphH: face.Height,
		index:  make(map[rune]int, len(runes)),
	}

	d := font.Drawer{Dst: f.Atlas, Src: image.Opaque, Face: face}
	for i, r := range runes {
		f.index[r] = i
		col, row := i%atlasCols, i/atlasCols
		d.Dot = fixed.P(col*face.Advance, row*face.Height+face.Ascent)
		d.DrawString(string(r))
	}
	return f
}

// GlyphSize returns the cell size of one glyph in pixels.
func (f *Font) GlyphSize() (int, int) {
	return f.glyphW, f.glyphH
}

// GlyphRect returns the atlas cell for r. Runes outside the atlas map to '?'.
func (f *Font) GlyphRect(r rune) image.Rectangle {
	i, ok := f.index[r]
	if !ok {
		i = f.index['?']
	}
	col, row := i%atlasCols, i/atlasCols
	x, y := col*f.glyphW, row*f.glyphH
	return image.Rect(x, y, x+f.glyphW, y+f.glyphH)
}

// GetGlyphUV returns normalized texture coordinates for r.
func (f *Font) GetGlyphUV(r rune) (u0, v0, u1, v1 float32) {
	rect := f.GlyphRect(r)
	w := float32(f.Atlas.Rect.Dx())
	h := float32(f.Atlas.Rect.Dy())
	return float32(rect.Min.X) / w, float32(rect.Min.Y) / h,
		float32(rect.Max.X) / w, float32(rect.Max.Y) / h
}

// MeasureText returns the size of text at scale. Newlines start a new line.
func (f *Font) MeasureText(text string, scale float32) (float32, float32) {
	lines, cols, widest := 1, 0, 0
	for _, r := range text {
		if r == '\n' {
			lines++
			cols = 0
			continue
		}
		cols++
		widest = max(widest, cols)
	}
	return float32(widest*f.glyphW) * scale, float32(lines*f.glyphH) * scale
}
