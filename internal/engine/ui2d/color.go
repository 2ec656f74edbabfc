package ui2d

// Color represents an RGBA color with float components (0.0 to 1.0).
type Color struct {
	R, G, B, A float32
}

// Predefined colors for UI theming.
var (
	ColorWhite = Color{1, 1, 1, 1}

	// Dashboard theme
	ColorPanelBg      = Color{0.06, 0.07, 0.09, 0.92}
	ColorPanelBorder  = Color{0.22, 0.25, 0.3, 1}
	ColorButtonNormal = Color{0.11, 0.13, 0.16, 1}
	ColorButtonHover  = Color{0.18, 0.21, 0.26, 1}
	ColorButtonActive = Color{0.1, 0.32, 0.45, 1}
	ColorInputBg      = Color{0.04, 0.05, 0.06, 1}
	ColorText         = Color{0.88, 0.9, 0.92, 1}
	ColorTextDim      = Color{0.52, 0.56, 0.62, 1}
	ColorHighlight    = Color{0.13, 0.83, 0.93, 1}

	// Condition colors
	ColorGood     = Color{0.13, 0.77, 0.37, 1}
	ColorWarning  = Color{0.96, 0.62, 0.04, 1}
	ColorCritical = Color{0.94, 0.27, 0.27, 1}
)

// RGBA creates a color from 8-bit RGBA values (0-255).
func RGBA(r, g, b, a uint8) Color {
	return Color{
		R: float32(r) / 255.0,
		G: float32(g) / 255.0,
		B: float32(b) / 255.0,
		A: float32(a) / 255.0,
	}
}

// RGB creates a color from 8-bit RGB values with full alpha.
func RGB(r, g, b uint8) Color {
	return Color{
		R: float32(r) / 255.0,
		G: float32(g) / 255.0,
		B: float32(b) / 255.0,
		A: 1.0,
	}
}

// WithAlpha returns a copy of the color with a different alpha value.
func (c Color) WithAlpha(a float32) Color {
	return Color{c.R, c.G, c.B, a}
}

// Lighten returns a lighter version of the color.
func (c Color) Lighten(factor float32) Color {
	return Color{
		R: c.R + (1-c.R)*factor,
		G: c.G + (1-c.G)*factor,
		B: c.B + (1-c.B)*factor,
		A: c.A,
	}
}
