// Package layout arranges per-volume views into non-overlapping canvas
// rectangles and resolves pointer positions back to views.
package layout

import "image"

// Default geometry, overridable through the config file.
const (
	// DefaultSpacing is the gap between adjacent view canvases in pixels.
	DefaultSpacing = 10

	// DefaultTopMargin is the vertical space reserved above the views for
	// toolbar chrome drawn by the presentation layer.
	DefaultTopMargin = 40
)

// Layout places views left-to-right below a reserved toolbar margin.
type Layout struct {
	Spacing   int
	TopMargin int
}

// New returns a layout with the default geometry.
func New() Layout {
	return Layout{Spacing: DefaultSpacing, TopMargin: DefaultTopMargin}
}

// Arrange computes a canvas rectangle for each view size, in view-list
// order. Each canvas starts one spacing unit in from the left edge and below
// the toolbar margin; the x cursor advances by the view width plus spacing,
// so resizing any view shifts every view after it. Rectangles never overlap
// by construction.
func (l Layout) Arrange(sizes []image.Point) []image.Rectangle {
	rects := make([]image.Rectangle, len(sizes))
	x := l.Spacing
	y := l.TopMargin + l.Spacing
	for i, sz := range sizes {
		rects[i] = image.Rect(x, y, x+sz.X, y+sz.Y)
		x += sz.X + l.Spacing
	}
	return rects
}

// HitTest returns the index of the first rectangle containing pt, in view
// order, or -1 if the point falls on background or toolbar chrome.
func HitTest(rects []image.Rectangle, pt image.Point) int {
	for i, r := range rects {
		if pt.In(r) {
			return i
		}
	}
	return -1
}
