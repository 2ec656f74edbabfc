package ui2d

// Context lays out widgets on a Canvas and routes mouse input to them.
type Context struct {
	canvas Canvas
	input  *InputState

	// Scale multiplies every glyph.
	Scale float32

	hotWidget    string
	activeWidget string

	current *Panel

	// Panels drawn this frame and last frame, for hit testing outside the UI.
	panels     []Rect
	prevPanels []Rect

	cursorX float32
	cursorY float32
	rowH    float32
}

// Panel is a fixed rectangle with a title strip.
type Panel struct {
	ID   string
	Rect Rect
}

const (
	titleBarH = 22
	padding   = 8
	spacing   = 4
)

// NewContext creates a UI context drawing onto canvas.
func NewContext(canvas Canvas) *Context {
	return &Context{
		canvas: canvas,
		input:  &InputState{},
		Scale:  1,
	}
}

// Canvas returns the draw target for custom widgets.
func (c *Context) Canvas() Canvas {
	return c.canvas
}

// Input returns the input state for modification.
func (c *Context) Input() *InputState {
	return c.input
}

// Begin starts a new UI frame.
func (c *Context) Begin() {
	c.input.Update()
	c.prevPanels, c.panels = c.panels, c.prevPanels[:0]
	c.hotWidget = ""
}

// End finishes the UI frame.
func (c *Context) End() {
	if c.input.MouseLeftReleased {
		c.activeWidget = ""
	}
	c.input.EndFrame()
}

// OverUI reports whether (x, y) fell inside a panel on the last frame.
func (c *Context) OverUI(x, y float32) bool {
	for _, r := range c.prevPanels {
		if r.Contains(x, y) {
			return true
		}
	}
	for _, r := range c.panels {
		if r.Contains(x, y) {
			return true
		}
	}
	return false
}

// BeginPanel starts a panel at r with an optional title strip.
func (c *Context) BeginPanel(id string, r Rect, title string) {
	c.current = &Panel{ID: id, Rect: r}
	c.panels = append(c.panels, r)

	c.canvas.DrawRect(r.X, r.Y, r.W, r.H, ColorPanelBg)
	c.canvas.DrawRectOutline(r.X, r.Y, r.W, r.H, 1, ColorPanelBorder)

	c.cursorX = r.X + padding
	c.cursorY = r.Y + padding
	c.rowH = 0

	if title != "" {
		c.canvas.DrawRect(r.X+1, r.Y+1, r.W-2, titleBarH-1, ColorButtonNormal)
		_, th := c.canvas.MeasureText(title, c.Scale)
		c.canvas.DrawText(r.X+padding, r.Y+(titleBarH-th)/2, title, c.Scale, ColorTextDim)
		c.cursorY = r.Y + titleBarH + padding
	}
}

// EndPanel ends the current panel.
func (c *Context) EndPanel() {
	c.current = nil
}

// Row starts a new row with the given height.
func (c *Context) Row(height float32) {
	if c.current == nil {
		return
	}
	c.cursorX = c.current.Rect.X + padding
	c.cursorY += c.rowH
	if c.rowH > 0 {
		c.cursorY += spacing
	}
	c.rowH = height
}

// Spacer adds vertical space.
func (c *Context) Spacer(height float32) {
	c.cursorY += height
}

// ContentWidth returns the usable width of the current panel.
func (c *Context) ContentWidth() float32 {
	if c.current == nil {
		return 0
	}
	return c.current.Rect.W - 2*padding
}

// Cursor returns the next widget position.
func (c *Context) Cursor() (float32, float32) {
	return c.cursorX, c.cursorY
}

// Advance moves the cursor right by width, as if a widget had been drawn.
func (c *Context) Advance(width float32) {
	c.cursorX += width + spacing
}

// Label draws a text label.
func (c *Context) Label(text string) {
	c.LabelColored(text, ColorText)
}

// LabelColored draws a text label with a specific color.
func (c *Context) LabelColored(text string, color Color) {
	c.LabelScaled(text, 1, color)
}

// LabelScaled draws a label at a multiple of the context scale.
func (c *Context) LabelScaled(text string, scale float32, color Color) {
	if c.current == nil {
		return
	}
	s := c.Scale * scale
	w, h := c.canvas.MeasureText(text, s)
	y := c.cursorY
	if c.rowH > h {
		y += (c.rowH - h) / 2
	}
	c.canvas.DrawText(c.cursorX, y, text, s, color)
	c.cursorX += w + spacing
}

// Separator draws a horizontal line below the current row.
func (c *Context) Separator() {
	if c.current == nil {
		return
	}
	c.cursorY += c.rowH + spacing
	c.rowH = 0
	x := c.current.Rect.X + padding
	c.canvas.DrawRect(x, c.cursorY, c.ContentWidth(), 1, ColorPanelBorder)
	c.cursorY += padding
	c.cursorX = x
}

// clickable resolves hover and click state for a widget rectangle.
func (c *Context) clickable(id string, r Rect) (hovered, clicked bool) {
	hovered = r.Contains(c.input.MouseX, c.input.MouseY)
	if !hovered {
		return false, false
	}
	c.hotWidget = id
	if c.input.MouseLeftPressed || c.input.MouseLeftClicked {
		c.activeWidget = id
		clicked = true
		// Only one widget gets the click
		c.input.MouseLeftPressed = false
		c.input.MouseLeftClicked = false
	}
	return hovered, clicked
}

func (c *Context) widgetRect(width float32) Rect {
	h := c.rowH
	if h == 0 {
		h = 24
	}
	if width == 0 {
		width = c.current.Rect.X + c.current.Rect.W - padding - c.cursorX
	}
	return Rect{c.cursorX, c.cursorY, width, h}
}

// Button draws a button and returns true if clicked.
func (c *Context) Button(id string, width float32, label string) bool {
	return c.Tab(id, width, label, false)
}

// Tab draws a button that stays lit while active.
func (c *Context) Tab(id string, width float32, label string, active bool) bool {
	if c.current == nil {
		return false
	}
	r := c.widgetRect(width)
	fullID := c.current.ID + "_" + id
	hovered, clicked := c.clickable(fullID, r)

	color := ColorButtonNormal
	switch {
	case active || c.activeWidget == fullID:
		color = ColorButtonActive
	case hovered:
		color = ColorButtonHover
	}
	c.canvas.DrawRect(r.X, r.Y, r.W, r.H, color)
	c.canvas.DrawRectOutline(r.X, r.Y, r.W, r.H, 1, ColorPanelBorder)

	tw, th := c.canvas.MeasureText(label, c.Scale)
	c.canvas.DrawText(r.X+(r.W-tw)/2, r.Y+(r.H-th)/2, label, c.Scale, ColorText)

	c.cursorX += r.W + spacing
	return clicked
}

// Card draws a clickable tile and returns its rectangle for custom content.
func (c *Context) Card(id string, width, height float32, selected bool, accent Color) (Rect, bool) {
	if c.current == nil {
		return Rect{}, false
	}
	r := Rect{c.cursorX, c.cursorY, width, height}
	fullID := c.current.ID + "_" + id
	hovered, clicked := c.clickable(fullID, r)

	bg := ColorInputBg
	border := ColorPanelBorder
	switch {
	case selected:
		bg = accent.WithAlpha(0.18)
		border = ColorHighlight
	case hovered:
		bg = ColorButtonHover
	}
	c.canvas.DrawRect(r.X, r.Y, r.W, r.H, bg)
	c.canvas.DrawRect(r.X, r.Y, 3, r.H, accent)
	c.canvas.DrawRectOutline(r.X, r.Y, r.W, r.H, 1, border)

	c.cursorX += width + spacing
	c.rowH = max(c.rowH, height)
	return r, clicked
}

// ProgressBar draws a horizontal bar filled to fraction.
func (c *Context) ProgressBar(fraction, width, height float32, label string, fill Color) {
	if c.current == nil {
		return
	}
	if height == 0 {
		height = 12
	}
	r := c.widgetRect(width)
	r.H = height
	fraction = min(max(fraction, 0), 1)

	c.canvas.DrawRect(r.X, r.Y, r.W, r.H, ColorInputBg)
	c.canvas.DrawRectOutline(r.X, r.Y, r.W, r.H, 1, ColorPanelBorder)
	if fw := (r.W - 2) * fraction; fw > 0 {
		c.canvas.DrawRect(r.X+1, r.Y+1, fw, r.H-2, fill)
	}
	if label != "" {
		tw, th := c.canvas.MeasureText(label, c.Scale)
		c.canvas.DrawText(r.X+(r.W-tw)/2, r.Y+(r.H-th)/2, label, c.Scale, ColorText)
	}
	c.cursorX += r.W + spacing
}

// Selectable draws a full-width row and returns true if clicked.
func (c *Context) Selectable(id string, label string, selected bool, color Color) bool {
	if c.current == nil {
		return false
	}
	r := c.widgetRect(0)
	fullID := c.current.ID + "_" + id
	hovered, clicked := c.clickable(fullID, r)

	switch {
	case selected:
		c.canvas.DrawRect(r.X, r.Y, r.W, r.H, ColorHighlight.WithAlpha(0.35))
	case hovered:
		c.canvas.DrawRect(r.X, r.Y, r.W, r.H, ColorButtonHover)
	}
	_, th := c.canvas.MeasureText(label, c.Scale)
	c.canvas.DrawText(r.X+4, r.Y+(r.H-th)/2, label, c.Scale, color)

	c.cursorX = c.current.Rect.X + padding
	c.cursorY += r.H
	c.rowH = 0
	return clicked
}

// Rect is a simple rectangle struct.
type Rect struct {
	X, Y, W, H float32
}

// Contains checks if a point is inside the rectangle.
func (r Rect) Contains(x, y float32) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Inset shrinks r by d on every side.
func (r Rect) Inset(d float32) Rect {
	return Rect{r.X + d, r.Y + d, max(r.W-2*d, 0), max(r.H-2*d, 0)}
}
