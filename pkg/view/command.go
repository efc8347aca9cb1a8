package view

import (
	"github.com/google/uuid"

	"github.com/matzehuels/voxview/pkg/viewport"
)

// Command is a typed widget effect targeting one view. The presentation
// layer turns toolbar interactions (text commits, button toggles, scrollbar
// and radio changes) into commands; Apply is the single place view state is
// mutated by widgets.
type Command interface {
	// Target returns the ID of the view the command addresses.
	Target() uuid.UUID
}

// SetWindow commits a display window range for the view's volume.
// With the session's sync-colormap bit set it is broadcast to all volumes.
type SetWindow struct {
	View uuid.UUID
	Min  float64
	Max  float64
}

// SetPlane selects the slicing plane, reclamping the slice index.
type SetPlane struct {
	View  uuid.UUID
	Plane viewport.Plane
}

// SetSlice sets the slice index (scrollbar effect), clamped into range.
type SetSlice struct {
	View  uuid.UUID
	Index int
}

// StepSlice moves the slice index by a delta (arrow-key effect).
type StepSlice struct {
	View  uuid.UUID
	Delta int
}

// ScaleZoom multiplies the view's zoom factor, clamped to the zoom floor.
type ScaleZoom struct {
	View   uuid.UUID
	Factor float64
}

// ToggleZoomMode flips the box-zoom gesture flag (clears drag mode when
// enabling).
type ToggleZoomMode struct {
	View uuid.UUID
}

// ToggleDragMode flips the pan gesture flag (clears zoom mode when
// enabling).
type ToggleDragMode struct {
	View uuid.UUID
}

// ResetView restores the view's slice, transform, and display window
// defaults.
type ResetView struct {
	View uuid.UUID
}

func (c SetWindow) Target() uuid.UUID      { return c.View }
func (c SetPlane) Target() uuid.UUID       { return c.View }
func (c SetSlice) Target() uuid.UUID       { return c.View }
func (c StepSlice) Target() uuid.UUID      { return c.View }
func (c ScaleZoom) Target() uuid.UUID      { return c.View }
func (c ToggleZoomMode) Target() uuid.UUID { return c.View }
func (c ToggleDragMode) Target() uuid.UUID { return c.View }
func (c ResetView) Target() uuid.UUID      { return c.View }

// Apply dispatches a command against a view. Unknown command types are
// ignored so the presentation layer can extend the set without breaking
// older cores.
func Apply(s *State, cmd Command) {
	switch c := cmd.(type) {
	case SetWindow:
		s.Volume.SetWindow(c.Min, c.Max)
	case SetPlane:
		s.SetPlane(c.Plane)
	case SetSlice:
		s.SetSlice(c.Index)
	case StepSlice:
		s.StepSlice(c.Delta)
	case ScaleZoom:
		s.Transform.ScaleZoom(c.Factor)
	case ToggleZoomMode:
		s.SetZoomMode(!s.ZoomMode)
	case ToggleDragMode:
		s.SetDragMode(!s.DragMode)
	case ResetView:
		s.Reset()
	}
}
