package observability

import (
	"context"
	"testing"
	"time"
)

type countingViewerHooks struct {
	NoopViewerHooks
	frames int
}

func (h *countingViewerHooks) OnFrameComplete(viewCount int, d time.Duration) {
	h.frames++
}

func TestDefaultsAreNoops(t *testing.T) {
	Reset()

	// Must not panic and must always return something callable.
	Viewer().OnFrameStart(2)
	Viewer().OnFrameComplete(2, time.Millisecond)
	Viewer().OnGesture("panning", 0)
	Viewer().OnLayout(3)
	Cache().OnCacheHit(context.Background(), "stats")
}

func TestSetViewerHooks(t *testing.T) {
	defer Reset()

	h := &countingViewerHooks{}
	SetViewerHooks(h)

	Viewer().OnFrameComplete(1, time.Millisecond)
	Viewer().OnFrameComplete(1, time.Millisecond)
	if h.frames != 2 {
		t.Errorf("frames = %d, want 2", h.frames)
	}

	Reset()
	Viewer().OnFrameComplete(1, time.Millisecond)
	if h.frames != 2 {
		t.Error("Reset did not detach the hooks")
	}
}
