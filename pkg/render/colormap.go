// Package render converts volume slices into pixels.
//
// The colormap maps a scalar sample to a grayscale display intensity given a
// window range; the slice renderer walks a view's canvas rectangle and writes
// windowed samples into the shared framebuffer.
package render

import (
	"image/color"
	"math"
)

// Colormap maps scalar values onto the 0-255 intensity scale through a
// linear window.
type Colormap struct {
	Min float64
	Max float64
}

// Intensity returns the display intensity for a sample value.
//
// Values are clamped to the window before scaling: out-of-window samples
// saturate at 0 or 255 instead of wrapping around. A degenerate window
// (Max == Min, including inverted windows collapsing to it) maps everything
// to 0, a valid all-black display state rather than an error.
func (c Colormap) Intensity(v float64) uint8 {
	if c.Max == c.Min {
		return 0
	}
	t := (v - c.Min) / (c.Max - c.Min)
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return uint8(math.Round(255 * t))
}

// RGBA returns the windowed sample as an opaque grayscale pixel, the
// intensity replicated across all three channels.
func (c Colormap) RGBA(v float64) color.RGBA {
	i := c.Intensity(v)
	return color.RGBA{R: i, G: i, B: i, A: 0xff}
}
