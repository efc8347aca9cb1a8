package viewport

import "math"

// MinZoom is the zoom floor in screen pixels per volume unit. A strictly
// positive floor keeps the inverse mapping defined; there is no ceiling so a
// single sample can be magnified arbitrarily.
const MinZoom = 0.1

// Transform maps between canvas-local screen pixels and slice-plane
// coordinates. Zoom is in screen pixels per volume unit; Pan is the screen
// offset of the volume origin.
type Transform struct {
	Zoom float64
	PanX float64
	PanY float64
}

// NewTransform returns the identity transform (zoom 1, no pan).
func NewTransform() Transform {
	return Transform{Zoom: 1}
}

// ScreenToVolume maps a canvas-local pixel to continuous slice-plane
// coordinates. The exact inverse of VolumeToScreen up to float rounding.
func (t Transform) ScreenToVolume(sx, sy float64) (vx, vy float64) {
	return (sx - t.PanX) / t.Zoom, (sy - t.PanY) / t.Zoom
}

// VolumeToScreen maps slice-plane coordinates to a canvas-local pixel.
func (t Transform) VolumeToScreen(vx, vy float64) (sx, sy float64) {
	return vx*t.Zoom + t.PanX, vy*t.Zoom + t.PanY
}

// SampleIndex maps a canvas-local pixel to the slice-plane sample indices,
// truncating toward the grid (floor, not round) so each pixel selects a
// single sample.
func (t Transform) SampleIndex(sx, sy float64) (ix, iy int) {
	vx, vy := t.ScreenToVolume(sx, sy)
	return int(math.Floor(vx)), int(math.Floor(vy))
}

// SetZoom sets the zoom factor, clamped to the floor.
func (t *Transform) SetZoom(z float64) {
	if z < MinZoom {
		z = MinZoom
	}
	t.Zoom = z
}

// ScaleZoom multiplies the zoom factor, clamped to the floor.
func (t *Transform) ScaleZoom(factor float64) {
	t.SetZoom(t.Zoom * factor)
}

// TranslatePan shifts the pan offset by a screen-space delta.
func (t *Transform) TranslatePan(dx, dy float64) {
	t.PanX += dx
	t.PanY += dy
}
