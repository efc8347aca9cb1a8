package view

import "math"

// Mode is the window-wide gesture state.
type Mode int

// Gesture modes.
const (
	ModeIdle Mode = iota
	ModeBoxZoom
	ModePanning
)

// String returns the lowercase mode name.
func (m Mode) String() string {
	switch m {
	case ModeBoxZoom:
		return "boxzoom"
	case ModePanning:
		return "panning"
	}
	return "idle"
}

// BoxZoomThreshold is the minimum drag extent, in screen pixels per axis,
// for a box-zoom to commit. Smaller drags are treated as accidental clicks
// and discarded.
const BoxZoomThreshold = 10.0

// Interaction is the single window-wide gesture state. It is reset to idle
// on every pointer release, so a stale drag can never leak into the next
// gesture cycle.
type Interaction struct {
	Mode       Mode
	ActiveView int

	// Gesture anchor and latest pointer position, in window coordinates.
	StartX, StartY float64
	CurX, CurY     float64
}

// Reset returns the interaction to idle without touching the active view
// index (the last clicked view stays the keyboard target).
func (it *Interaction) Reset() {
	it.Mode = ModeIdle
}

// Controller turns raw pointer events into pan and box-zoom operations on
// the active view's transform.
type Controller struct {
	// Threshold overrides BoxZoomThreshold when positive.
	Threshold float64
}

func (c Controller) threshold() float64 {
	if c.Threshold > 0 {
		return c.Threshold
	}
	return BoxZoomThreshold
}

// Press starts a gesture on the hit view. The transition taken depends on
// the view's mode flags: zoom mode starts a box-zoom, drag mode starts a
// pan, neither leaves the interaction idle (pass-through click).
func (c Controller) Press(it *Interaction, v *State, viewIdx int, x, y float64) {
	it.ActiveView = viewIdx
	it.StartX, it.StartY = x, y
	it.CurX, it.CurY = x, y

	switch {
	case v.ZoomMode:
		it.Mode = ModeBoxZoom
	case v.DragMode:
		it.Mode = ModePanning
	default:
		it.Mode = ModeIdle
	}
}

// Move advances an in-progress gesture. Box-zoom only records the current
// position; the view is untouched until release. Panning applies the delta
// since the previous move immediately and advances the anchor, so the pan
// is committed incrementally.
func (c Controller) Move(it *Interaction, v *State, x, y float64) {
	switch it.Mode {
	case ModeBoxZoom:
		it.CurX, it.CurY = x, y
	case ModePanning:
		v.Transform.TranslatePan(x-it.CurX, y-it.CurY)
		it.CurX, it.CurY = x, y
	}
}

// Release ends the gesture. For a box-zoom it commits the selected
// rectangle if both its screen-space dimensions exceed the threshold; a pan
// needs no further work since moves committed incrementally. The
// interaction always returns to idle, regardless of where the pointer was
// released.
func (c Controller) Release(it *Interaction, v *State, x, y float64) {
	if it.Mode == ModeBoxZoom {
		it.CurX, it.CurY = x, y
		c.commitBoxZoom(it, v)
	}
	it.Reset()
}

// commitBoxZoom recomputes the view's zoom and pan so the dragged rectangle
// fills the canvas, centered. The rectangle is converted to slice-plane
// coordinates through the current transform first; the new zoom fits the
// rectangle's larger relative dimension.
func (c Controller) commitBoxZoom(it *Interaction, v *State) {
	if math.Abs(it.CurX-it.StartX) <= c.threshold() || math.Abs(it.CurY-it.StartY) <= c.threshold() {
		return
	}

	// Window coordinates -> canvas-local.
	ox, oy := float64(v.Canvas.Min.X), float64(v.Canvas.Min.Y)
	x1 := math.Min(it.StartX, it.CurX) - ox
	y1 := math.Min(it.StartY, it.CurY) - oy
	x2 := math.Max(it.StartX, it.CurX) - ox
	y2 := math.Max(it.StartY, it.CurY) - oy

	vx1, vy1 := v.Transform.ScreenToVolume(x1, y1)
	vx2, vy2 := v.Transform.ScreenToVolume(x2, y2)

	rectW := vx2 - vx1
	rectH := vy2 - vy1
	if rectW <= 0 || rectH <= 0 {
		return
	}

	cw := float64(v.Canvas.Dx())
	ch := float64(v.Canvas.Dy())

	v.Transform.SetZoom(math.Min(cw/rectW, ch/rectH))

	// Recenter: the rectangle's volume-space center maps to the canvas
	// center under the new zoom.
	cx := (vx1 + vx2) / 2
	cy := (vy1 + vy2) / 2
	v.Transform.PanX = cw/2 - cx*v.Transform.Zoom
	v.Transform.PanY = ch/2 - cy*v.Transform.Zoom
}
