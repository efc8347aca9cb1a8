package viewer

import (
	"github.com/matzehuels/voxview/pkg/view"
	"github.com/matzehuels/voxview/pkg/viewport"
	"github.com/matzehuels/voxview/pkg/volume"
)

// Key is a presentation-independent keyboard action. The TUI (or any other
// front end) maps raw key events onto these before calling HandleKey.
type Key int

const (
	KeyNone Key = iota
	KeySliceBack
	KeySliceForward
	KeyZoomIn
	KeyZoomOut
	KeyPlaneXY
	KeyPlaneXZ
	KeyPlaneYZ
	KeyWindowWiden
	KeyWindowNarrow
	KeyLevelUp
	KeyLevelDown
	KeyToggleZoomMode
	KeyToggleDragMode
	KeyAutoWindow
	KeyToggleSync
	KeyNextView
	KeyReset
)

// windowStep is the fractional width change applied by the window keys.
const windowStep = 0.1

// HandleKey applies a keyboard action to the active view. Unknown keys are
// ignored.
func (s *Session) HandleKey(k Key) {
	if len(s.views) == 0 {
		return
	}
	v := s.views[s.interaction.ActiveView]

	switch k {
	case KeySliceBack:
		_ = s.Apply(view.StepSlice{View: v.ID, Delta: -1})
	case KeySliceForward:
		_ = s.Apply(view.StepSlice{View: v.ID, Delta: 1})
	case KeyZoomIn:
		_ = s.Apply(view.ScaleZoom{View: v.ID, Factor: s.zoomStep})
	case KeyZoomOut:
		_ = s.Apply(view.ScaleZoom{View: v.ID, Factor: 1 / s.zoomStep})
	case KeyPlaneXY:
		_ = s.Apply(view.SetPlane{View: v.ID, Plane: viewport.PlaneXY})
	case KeyPlaneXZ:
		_ = s.Apply(view.SetPlane{View: v.ID, Plane: viewport.PlaneXZ})
	case KeyPlaneYZ:
		_ = s.Apply(view.SetPlane{View: v.ID, Plane: viewport.PlaneYZ})
	case KeyWindowWiden:
		s.adjustWindow(v, 1+windowStep, 0)
	case KeyWindowNarrow:
		s.adjustWindow(v, 1-windowStep, 0)
	case KeyLevelUp:
		s.adjustWindow(v, 1, windowStep)
	case KeyLevelDown:
		s.adjustWindow(v, 1, -windowStep)
	case KeyToggleZoomMode:
		_ = s.Apply(view.ToggleZoomMode{View: v.ID})
	case KeyToggleDragMode:
		_ = s.Apply(view.ToggleDragMode{View: v.ID})
	case KeyAutoWindow:
		min, max := volume.ComputeStats(v.Volume).AutoWindow()
		_ = s.Apply(view.SetWindow{View: v.ID, Min: min, Max: max})
	case KeyToggleSync:
		s.ToggleSyncColormap()
	case KeyNextView:
		s.SetActiveView((s.interaction.ActiveView + 1) % len(s.views))
	case KeyReset:
		_ = s.Apply(view.ResetView{View: v.ID})
	}
}

// adjustWindow scales the window width by widthScale around its center and
// then shifts the center by levelShift times the new width. A degenerate
// zero-width window gets a unit width first so the keys stay usable.
func (s *Session) adjustWindow(v *view.State, widthScale, levelShift float64) {
	min, max := v.Volume.Window()
	width := max - min
	if width == 0 {
		width = 1
	}
	center := (min + max) / 2
	width *= widthScale
	center += levelShift * width
	_ = s.Apply(view.SetWindow{View: v.ID, Min: center - width/2, Max: center + width/2})
}
