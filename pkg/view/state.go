// Package view holds the mutable per-view state of the viewer: which plane
// and slice of which volume is shown, how it is zoomed and panned, and the
// gesture state machine that drives pan and box-zoom interactions.
//
// Widget effects from the presentation layer arrive as typed commands
// (see Command) applied by a single dispatch function, so no widget callback
// captures a mutable reference to a view.
package view

import (
	"image"
	"math"

	"github.com/google/uuid"

	"github.com/matzehuels/voxview/pkg/viewport"
	"github.com/matzehuels/voxview/pkg/volume"
)

// State is the display state for one volume. Views are created 1:1 with the
// volume list at startup and live until shutdown; the volume itself is
// shared, never owned.
type State struct {
	ID     uuid.UUID
	Volume *volume.Volume

	Plane     viewport.Plane
	Slice     int
	Transform viewport.Transform

	// Canvas is the view's screen region, assigned by the layout whenever
	// the window or any view geometry changes.
	Canvas image.Rectangle

	// Gesture mode flags, toggled by the toolbar. Mutually exclusive:
	// enabling one clears the other. With neither set, presses on the
	// canvas are pass-through clicks.
	ZoomMode bool
	DragMode bool
}

// NewState creates the initial view for a volume: XY plane, slice 0,
// identity transform.
func NewState(vol *volume.Volume) *State {
	return &State{
		ID:        uuid.New(),
		Volume:    vol,
		Plane:     viewport.PlaneXY,
		Transform: viewport.NewTransform(),
	}
}

// PlaneDims returns the slice-plane width and height for the current plane.
func (s *State) PlaneDims() (w, h int) {
	return s.Plane.Dims(s.Volume.Dims())
}

// SliceExtent returns the slice count along the current plane's slice axis.
func (s *State) SliceExtent() int {
	return s.Plane.SliceExtent(s.Volume.Dims())
}

// CanvasSize returns the canvas extent the layout should allocate: the
// plane extents scaled by the current zoom, rounded to whole pixels (at
// least one each way).
func (s *State) CanvasSize() image.Point {
	w, h := s.PlaneDims()
	pw := int(math.Round(float64(w) * s.Transform.Zoom))
	ph := int(math.Round(float64(h) * s.Transform.Zoom))
	if pw < 1 {
		pw = 1
	}
	if ph < 1 {
		ph = 1
	}
	return image.Point{X: pw, Y: ph}
}

// SetPlane switches the slicing plane and reclamps the slice index into the
// new slice axis extent, since the old index may be out of range.
func (s *State) SetPlane(p viewport.Plane) {
	s.Plane = p
	s.Slice = viewport.ClampSlice(s.Slice, s.SliceExtent())
}

// SetSlice sets the slice index, clamped into range.
func (s *State) SetSlice(idx int) {
	s.Slice = viewport.ClampSlice(idx, s.SliceExtent())
}

// StepSlice moves the slice index by delta, clamped into range.
func (s *State) StepSlice(delta int) {
	s.SetSlice(s.Slice + delta)
}

// SetZoomMode enables or disables box-zoom gestures; enabling clears drag
// mode.
func (s *State) SetZoomMode(on bool) {
	s.ZoomMode = on
	if on {
		s.DragMode = false
	}
}

// SetDragMode enables or disables pan gestures; enabling clears zoom mode.
func (s *State) SetDragMode(on bool) {
	s.DragMode = on
	if on {
		s.ZoomMode = false
	}
}

// Reset restores the view defaults: slice 0, identity transform, and the
// volume's global display window.
func (s *State) Reset() {
	s.Slice = 0
	s.Transform = viewport.NewTransform()
	s.Volume.ResetWindow()
}
