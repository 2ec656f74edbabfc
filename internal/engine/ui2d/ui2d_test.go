package ui2d

import (
	gomath "math"
	"testing"
)

func TestFontAtlas(t *testing.T) {
	f := NewFont()
	gw, gh := f.GlyphSize()
	if gw != 7 || gh != 13 {
		t.Fatalf("glyph size = %dx%d, want 7x13", gw, gh)
	}

	coverage := func(r rune) int {
		rect := f.GlyphRect(r)
		n := 0
		for y := rect.Min.Y; y < rect.Max.Y; y++ {
			for x := rect.Min.X; x < rect.Max.X; x++ {
				if f.Atlas.AlphaAt(x, y).A > 0 {
					n++
				}
			}
		}
		return n
	}
	if coverage('A') == 0 || coverage('7') == 0 {
		t.Error("printable glyphs are blank")
	}
	if coverage(' ') != 0 {
		t.Error("space glyph has ink")
	}
	if f.GlyphRect('☃') != f.GlyphRect('?') {
		t.Error("unknown rune does not fall back to '?'")
	}
}

func TestFontUVInsideAtlas(t *testing.T) {
	f := NewFont()
	for r := rune(firstGlyph); r <= lastGlyph; r++ {
		u0, v0, u1, v1 := f.GetGlyphUV(r)
		if u0 < 0 || v0 < 0 || u1 > 1 || v1 > 1 || u0 >= u1 || v0 >= v1 {
			t.Fatalf("glyph %q has UV (%g,%g)-(%g,%g)", r, u0, v0, u1, v1)
		}
	}
}

func TestMeasureText(t *testing.T) {
	f := NewFont()
	tests := []struct {
		text string
		w, h float32
	}{
		{"abc", 42, 26},
		{"ab\nlonger", 84, 52},
		{"", 0, 26},
	}
	for _, tt := range tests {
		w, h := f.MeasureText(tt.text, 2)
		if w != tt.w || h != tt.h {
			t.Errorf("MeasureText(%q) = %gx%g, want %gx%g", tt.text, w, h, tt.w, tt.h)
		}
	}
}

func TestDrawListBatches(t *testing.T) {
	d := NewDrawList(NewFont())
	d.DrawRect(0, 0, 10, 10, ColorWhite)
	d.DrawRectOutline(0, 0, 10, 10, 1, ColorWhite)
	if got := d.SolidCount(); got != 5*6 {
		t.Errorf("solid vertices = %d, want 30", got)
	}

	d.DrawText(0, 0, "a b", 1, ColorText)
	if got := d.TextCount(); got != 2*6 {
		t.Errorf("text vertices = %d, want 12 (spaces skipped)", got)
	}

	d.Reset()
	if d.SolidCount() != 0 || d.TextCount() != 0 {
		t.Error("Reset kept vertices")
	}
}

func TestDrawLineThickness(t *testing.T) {
	d := NewDrawList(nil)
	d.DrawLine(0, 0, 10, 0, 2, ColorWhite)
	if d.SolidCount() != 6 {
		t.Fatalf("line vertices = %d", d.SolidCount())
	}
	for i := 0; i < 6; i++ {
		y := d.Solid[i*SolidStride+1]
		if gomath.Abs(float64(y)) != 1 {
			t.Errorf("vertex %d y = %g, want ±1", i, y)
		}
	}

	d.DrawLine(5, 5, 5, 5, 2, ColorWhite)
	if d.SolidCount() != 6 {
		t.Error("zero-length line emitted geometry")
	}
}

func frame(c *Context, mx, my float32, down bool, draw func()) {
	in := c.Input()
	in.MouseX, in.MouseY, in.MouseLeftDown = mx, my, down
	c.Begin()
	draw()
	c.End()
}

func TestButtonClickOnPress(t *testing.T) {
	c := NewContext(NewDrawList(NewFont()))
	var clicks int
	draw := func() {
		c.BeginPanel("p", Rect{0, 0, 200, 100}, "")
		c.Row(24)
		if c.Button("ok", 80, "OK") {
			clicks++
		}
		c.EndPanel()
	}

	frame(c, 20, 15, false, draw)
	frame(c, 20, 15, true, draw)
	frame(c, 20, 15, true, draw)
	frame(c, 20, 15, false, draw)
	if clicks != 1 {
		t.Errorf("clicks = %d, want 1", clicks)
	}
}

func TestClickGoesToOneWidget(t *testing.T) {
	c := NewContext(NewDrawList(NewFont()))
	var a, b bool
	frame(c, 20, 15, true, func() {
		c.BeginPanel("p", Rect{0, 0, 200, 100}, "")
		c.Row(24)
		a = c.Button("a", 80, "A")
		c.Row(24)
		c.cursorY = 8 // overlap the first button
		b = c.Button("b", 80, "B")
		c.EndPanel()
	})
	if !a || b {
		t.Errorf("clicks a=%v b=%v, want only a", a, b)
	}
}

func TestCardClick(t *testing.T) {
	c := NewContext(NewDrawList(NewFont()))
	var rects []Rect
	var clicked []bool
	frame(c, 150, 30, true, func() {
		rects, clicked = nil, nil
		c.BeginPanel("grid", Rect{0, 0, 300, 200}, "")
		c.Row(60)
		for _, id := range []string{"left", "right"} {
			r, ok := c.Card(id, 120, 60, false, ColorGood)
			rects = append(rects, r)
			clicked = append(clicked, ok)
		}
		c.EndPanel()
	})
	if rects[1].X <= rects[0].X+rects[0].W-1 {
		t.Errorf("cards overlap: %+v %+v", rects[0], rects[1])
	}
	if clicked[0] || !clicked[1] {
		t.Errorf("clicked = %v, want right card only", clicked)
	}
}

func TestOverUI(t *testing.T) {
	c := NewContext(NewDrawList(NewFont()))
	frame(c, 0, 0, false, func() {
		c.BeginPanel("side", Rect{500, 0, 300, 600}, "Side")
		c.EndPanel()
	})
	if !c.OverUI(600, 100) {
		t.Error("point inside panel not over UI")
	}
	if c.OverUI(100, 100) {
		t.Error("point outside panel reported over UI")
	}
}

func TestRectInset(t *testing.T) {
	r := Rect{10, 10, 4, 100}.Inset(3)
	if r.W != 0 || r.H != 94 || r.X != 13 {
		t.Errorf("Inset = %+v", r)
	}
}
