// Package viewer ties the per-view state, gesture controller, layout, and
// slice renderer together into a single interactive session.
//
// The session is single-threaded and cooperative: the presentation layer
// delivers pointer and key events between frame ticks, then calls Render to
// rewrite the composed framebuffer. Nothing in here blocks or suspends, so
// no locking is needed over view or interaction state.
package viewer

import (
	"image"
	"image/color"
	"image/draw"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/voxview/pkg/errors"
	"github.com/matzehuels/voxview/pkg/layout"
	"github.com/matzehuels/voxview/pkg/observability"
	"github.com/matzehuels/voxview/pkg/render"
	"github.com/matzehuels/voxview/pkg/view"
	"github.com/matzehuels/voxview/pkg/volume"
)

// DefaultZoomStep is the zoom multiplier applied by the +/- keys.
const DefaultZoomStep = 1.2

// Default window geometry before the first resize arrives.
const (
	defaultWidth  = 800
	defaultHeight = 600
)

// boxZoomOutline is the overlay color for an in-progress box-zoom drag.
var boxZoomOutline = [4]uint8{0xff, 0x00, 0x00, 0xff}

// Options configures a session. Zero values fall back to the defaults.
type Options struct {
	Layout           layout.Layout
	ZoomStep         float64
	BoxZoomThreshold float64
	Background       color.RGBA
	SyncColormap     bool
}

// Session owns the view list, the window-wide interaction state, and the
// single framebuffer the renderer writes and the presentation layer reads.
type Session struct {
	views       []*view.State
	interaction view.Interaction
	controller  view.Controller
	layout      layout.Layout

	zoomStep     float64
	syncColormap bool
	background   color.RGBA

	winW, winH int
	frame      *image.RGBA
}

// New creates a session with one view per volume. Views start on the XY
// plane at slice 0 with an identity transform.
func New(vols []*volume.Volume, opts Options) *Session {
	if opts.ZoomStep == 0 {
		opts.ZoomStep = DefaultZoomStep
	}
	if opts.Layout == (layout.Layout{}) {
		opts.Layout = layout.New()
	}
	if opts.Background.A == 0 {
		opts.Background = color.RGBA{A: 0xff}
	}

	s := &Session{
		controller:   view.Controller{Threshold: opts.BoxZoomThreshold},
		layout:       opts.Layout,
		zoomStep:     opts.ZoomStep,
		syncColormap: opts.SyncColormap,
		background:   opts.Background,
		winW:         defaultWidth,
		winH:         defaultHeight,
	}
	for _, vol := range vols {
		s.views = append(s.views, view.NewState(vol))
	}
	s.frame = image.NewRGBA(image.Rect(0, 0, s.winW, s.winH))
	s.Relayout()
	return s
}

// Views returns the view list in display order.
func (s *Session) Views() []*view.State { return s.views }

// View returns the view at index i.
func (s *Session) View(i int) *view.State { return s.views[i] }

// ActiveView returns the index of the view targeted by keyboard input: the
// last view a pointer press landed on.
func (s *Session) ActiveView() int { return s.interaction.ActiveView }

// SetActiveView changes the keyboard target view.
func (s *Session) SetActiveView(i int) {
	if i >= 0 && i < len(s.views) {
		s.interaction.ActiveView = i
	}
}

// Interaction exposes the current gesture state (read-only use).
func (s *Session) Interaction() view.Interaction { return s.interaction }

// SyncColormap reports whether window commits broadcast to all volumes.
func (s *Session) SyncColormap() bool { return s.syncColormap }

// ToggleSyncColormap flips the session-wide colormap sync bit.
func (s *Session) ToggleSyncColormap() { s.syncColormap = !s.syncColormap }

// Resize updates the window extent, reallocates the framebuffer, and
// recomputes the layout.
func (s *Session) Resize(w, h int) {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	if w == s.winW && h == s.winH {
		return
	}
	s.winW, s.winH = w, h
	s.frame = image.NewRGBA(image.Rect(0, 0, w, h))
	s.Relayout()
}

// Size returns the current window extent in pixels.
func (s *Session) Size() (w, h int) { return s.winW, s.winH }

// Relayout recomputes every view's canvas rectangle. Called on window
// resize and whenever a view's plane or zoom changes, since canvas extents
// derive from plane dimensions times zoom.
func (s *Session) Relayout() {
	sizes := make([]image.Point, len(s.views))
	for i, v := range s.views {
		sizes[i] = v.CanvasSize()
	}
	rects := s.layout.Arrange(sizes)
	for i, v := range s.views {
		v.Canvas = rects[i]
	}
	observability.Viewer().OnLayout(len(s.views))
}

// CanvasRects returns the current canvas rectangle of every view.
func (s *Session) CanvasRects() []image.Rectangle {
	rects := make([]image.Rectangle, len(s.views))
	for i, v := range s.views {
		rects[i] = v.Canvas
	}
	return rects
}

// PointerPress starts a gesture if the press hits a view canvas. Presses on
// background or toolbar chrome are ignored.
func (s *Session) PointerPress(x, y float64) {
	idx := layout.HitTest(s.CanvasRects(), image.Point{X: int(x), Y: int(y)})
	if idx < 0 {
		return
	}
	s.controller.Press(&s.interaction, s.views[idx], idx, x, y)
}

// PointerMove advances an in-progress gesture; a no-op while idle.
func (s *Session) PointerMove(x, y float64) {
	if s.interaction.Mode == view.ModeIdle {
		return
	}
	s.controller.Move(&s.interaction, s.views[s.interaction.ActiveView], x, y)
}

// PointerRelease ends the current gesture wherever the pointer is, possibly
// committing a box-zoom, and always returns the interaction to idle.
func (s *Session) PointerRelease(x, y float64) {
	mode := s.interaction.Mode
	if mode == view.ModeIdle {
		return
	}
	idx := s.interaction.ActiveView
	s.controller.Release(&s.interaction, s.views[idx], x, y)
	observability.Viewer().OnGesture(mode.String(), idx)
	if mode == view.ModeBoxZoom {
		// A committed box-zoom changed the zoom factor, which feeds the
		// layout.
		s.Relayout()
	}
}

// Apply routes a widget command to its target view by ID. A SetWindow with
// the sync-colormap bit set broadcasts to every volume. Commands that change
// plane or zoom trigger a relayout.
func (s *Session) Apply(cmd view.Command) error {
	target, err := s.viewByID(cmd.Target())
	if err != nil {
		return err
	}

	if sw, ok := cmd.(view.SetWindow); ok && s.syncColormap {
		for _, v := range s.views {
			v.Volume.SetWindow(sw.Min, sw.Max)
		}
		return nil
	}

	view.Apply(target, cmd)

	switch cmd.(type) {
	case view.SetPlane, view.ScaleZoom, view.ResetView:
		s.Relayout()
	}
	return nil
}

func (s *Session) viewByID(id uuid.UUID) (*view.State, error) {
	for _, v := range s.views {
		if v.ID == id {
			return v, nil
		}
	}
	return nil, errors.New(errors.ErrCodeViewNotFound, "no view with id %s", id)
}

// CommitWindowText parses a "min max" float pair committed by the window
// text input and applies it to the view at idx. Parse failure silently
// retains the previous window; invalid input is recoverable, not an error.
func (s *Session) CommitWindowText(idx int, text string) bool {
	if idx < 0 || idx >= len(s.views) {
		return false
	}
	min, max, ok := ParseWindowText(text)
	if !ok {
		return false
	}
	_ = s.Apply(view.SetWindow{View: s.views[idx].ID, Min: min, Max: max})
	return true
}

// ParseWindowText parses a window range as two whitespace-separated floats.
func ParseWindowText(text string) (min, max float64, ok bool) {
	fields := strings.Fields(text)
	if len(fields) != 2 {
		return 0, 0, false
	}
	min, err1 := strconv.ParseFloat(fields[0], 64)
	max, err2 := strconv.ParseFloat(fields[1], 64)
	if err1 != nil || err2 != nil {
		return 0, 0, false
	}
	return min, max, true
}

// Frame returns the composed framebuffer from the last Render call.
func (s *Session) Frame() *image.RGBA { return s.frame }

// Render rewrites the full framebuffer: background, every view's slice, and
// the box-zoom overlay when a drag is in progress. The frame rate is
// bounded by the presentation layer, not here.
func (s *Session) Render() *image.RGBA {
	observability.Viewer().OnFrameStart(len(s.views))
	start := time.Now()

	draw.Draw(s.frame, s.frame.Bounds(), image.NewUniform(s.background), image.Point{}, draw.Src)

	for _, v := range s.views {
		min, max := v.Volume.Window()
		render.Slice(s.frame, v.Canvas, v.Volume, v.Plane, v.Slice, v.Transform, render.Colormap{Min: min, Max: max})
	}

	if s.interaction.Mode == view.ModeBoxZoom {
		r := image.Rect(
			int(s.interaction.StartX), int(s.interaction.StartY),
			int(s.interaction.CurX), int(s.interaction.CurY),
		)
		render.Outline(s.frame, r, boxZoomOutline)
	}

	observability.Viewer().OnFrameComplete(len(s.views), time.Since(start))
	return s.frame
}
