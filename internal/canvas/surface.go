package canvas

import (
	"image"
	"image/color"
)

// Align is the horizontal anchoring of a text run relative to its x coordinate.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Face selects a text size in pixels and weight.
type Face struct {
	Size float64
	Bold bool
}

// Pen describes how a path outline is stroked. A nil Dash draws a solid line.
type Pen struct {
	Color color.Color
	Width float64
	Dash  []float64
}

// Surface is a fixed-size raster target. Coordinates are in pixels with the
// origin at the top-left corner and y growing downwards.
type Surface interface {
	Bounds() image.Rectangle
	Clear()
	Fill(p *Path, c color.Color)
	Stroke(p *Path, pen Pen)
	FillRect(x, y, w, h float64, c color.Color)
	StrokeRect(x, y, w, h float64, pen Pen)
	// Text draws s with its baseline at y.
	Text(s string, x, y float64, f Face, a Align, c color.Color)
}

// Size returns the surface dimensions as floats.
func Size(s Surface) (w, h float64) {
	b := s.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

// Center returns the midpoint of the surface.
func Center(s Surface) (x, y float64) {
	w, h := Size(s)
	return w / 2, h / 2
}
