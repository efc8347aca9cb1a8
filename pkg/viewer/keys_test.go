package viewer

import (
	"math"
	"testing"

	"github.com/matzehuels/voxview/pkg/viewport"
)

func TestHandleKeySlice(t *testing.T) {
	s := newTestSession(t)

	s.HandleKey(KeySliceForward)
	s.HandleKey(KeySliceForward)
	s.HandleKey(KeySliceBack)
	if got := s.View(0).Slice; got != 1 {
		t.Errorf("slice = %d, want 1", got)
	}
	if got := s.View(1).Slice; got != 0 {
		t.Errorf("inactive view slice = %d, want 0", got)
	}
}

func TestHandleKeyZoom(t *testing.T) {
	s := newTestSession(t)

	s.HandleKey(KeyZoomIn)
	if got := s.View(0).Transform.Zoom; math.Abs(got-1.2) > 1e-9 {
		t.Errorf("zoom = %g, want 1.2", got)
	}
	s.HandleKey(KeyZoomOut)
	if got := s.View(0).Transform.Zoom; math.Abs(got-1) > 1e-9 {
		t.Errorf("zoom = %g, want 1", got)
	}

	// Zooming must also move the neighbor's canvas.
	before := s.View(1).Canvas.Min.X
	s.HandleKey(KeyZoomIn)
	if s.View(1).Canvas.Min.X <= before {
		t.Error("zoom did not relayout the neighbor view")
	}
}

func TestHandleKeyPlanes(t *testing.T) {
	s := newTestSession(t)

	tests := []struct {
		key  Key
		want viewport.Plane
	}{
		{KeyPlaneXZ, viewport.PlaneXZ},
		{KeyPlaneYZ, viewport.PlaneYZ},
		{KeyPlaneXY, viewport.PlaneXY},
	}
	for _, tt := range tests {
		s.HandleKey(tt.key)
		if got := s.View(0).Plane; got != tt.want {
			t.Errorf("plane = %v, want %v", got, tt.want)
		}
	}
}

func TestHandleKeyWindow(t *testing.T) {
	s := newTestSession(t)
	s.View(0).Volume.SetWindow(0, 100)

	// Widen scales the width around the center.
	s.HandleKey(KeyWindowWiden)
	min, max := s.View(0).Volume.Window()
	if math.Abs(min+5) > 1e-9 || math.Abs(max-105) > 1e-9 {
		t.Errorf("window after widen = [%g, %g], want [-5, 105]", min, max)
	}

	s.View(0).Volume.SetWindow(0, 100)
	s.HandleKey(KeyWindowNarrow)
	min, max = s.View(0).Volume.Window()
	if math.Abs(min-5) > 1e-9 || math.Abs(max-95) > 1e-9 {
		t.Errorf("window after narrow = [%g, %g], want [5, 95]", min, max)
	}

	// Level keys shift the center, keeping the width.
	s.View(0).Volume.SetWindow(0, 100)
	s.HandleKey(KeyLevelUp)
	min, max = s.View(0).Volume.Window()
	if math.Abs((max-min)-100) > 1e-9 {
		t.Errorf("level shift changed width: [%g, %g]", min, max)
	}
	if math.Abs(min-10) > 1e-9 {
		t.Errorf("window after level up = [%g, %g], want [10, 110]", min, max)
	}

	// A degenerate window stays usable.
	s.View(0).Volume.SetWindow(5, 5)
	s.HandleKey(KeyWindowWiden)
	min, max = s.View(0).Volume.Window()
	if min >= max {
		t.Errorf("degenerate window not recovered: [%g, %g]", min, max)
	}
}

func TestHandleKeyAutoWindow(t *testing.T) {
	s := newTestSession(t)
	s.View(0).Volume.SetWindow(-1000, 1000)

	s.HandleKey(KeyAutoWindow)
	min, max := s.View(0).Volume.Window()
	gmin, gmax := s.View(0).Volume.GlobalRange()
	if min < gmin || max > gmax || min >= max {
		t.Errorf("auto window [%g, %g] outside data range [%g, %g]", min, max, gmin, gmax)
	}
}

func TestHandleKeyNextView(t *testing.T) {
	s := newTestSession(t)

	s.HandleKey(KeyNextView)
	if s.ActiveView() != 1 {
		t.Errorf("active view = %d, want 1", s.ActiveView())
	}
	s.HandleKey(KeyNextView)
	if s.ActiveView() != 0 {
		t.Errorf("active view = %d, want 0 after wrap", s.ActiveView())
	}
}

func TestHandleKeyModesAndReset(t *testing.T) {
	s := newTestSession(t)

	s.HandleKey(KeyToggleZoomMode)
	if !s.View(0).ZoomMode {
		t.Error("zoom mode not toggled")
	}
	s.HandleKey(KeyToggleDragMode)
	if s.View(0).ZoomMode || !s.View(0).DragMode {
		t.Error("drag mode toggle did not clear zoom mode")
	}

	s.HandleKey(KeyToggleSync)
	if !s.SyncColormap() {
		t.Error("sync not toggled")
	}

	s.HandleKey(KeySliceForward)
	s.HandleKey(KeyZoomIn)
	s.HandleKey(KeyReset)
	v := s.View(0)
	if v.Slice != 0 || v.Transform.Zoom != 1 {
		t.Errorf("reset left slice %d zoom %g", v.Slice, v.Transform.Zoom)
	}

	// Unknown keys are ignored.
	s.HandleKey(KeyNone)
	s.HandleKey(Key(99))
}
