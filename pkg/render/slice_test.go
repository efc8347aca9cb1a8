package render

import (
	"image"
	"testing"

	"github.com/matzehuels/voxview/pkg/viewport"
	"github.com/matzehuels/voxview/pkg/volume"
)

// testVolume builds a 2x2x2 volume with sample value x + 10y + 100z.
func testVolume(t *testing.T) *volume.Volume {
	t.Helper()
	samples := make([]float64, 8)
	for z := 0; z < 2; z++ {
		for y := 0; y < 2; y++ {
			for x := 0; x < 2; x++ {
				samples[z*4+y*2+x] = float64(x + 10*y + 100*z)
			}
		}
	}
	vol, err := volume.New("test", samples, 2, 2, 2)
	if err != nil {
		t.Fatalf("volume.New: %v", err)
	}
	return vol
}

func TestSliceIdentityTransform(t *testing.T) {
	vol := testVolume(t)
	cm := Colormap{Min: 0, Max: 255}
	dst := image.NewRGBA(image.Rect(0, 0, 4, 4))

	Slice(dst, image.Rect(0, 0, 2, 2), vol, viewport.PlaneXY, 1, viewport.NewTransform(), cm)

	// Slice z=1: samples 100, 101, 110, 111.
	tests := []struct {
		x, y int
		want uint8
	}{
		{0, 0, 100},
		{1, 0, 101},
		{0, 1, 110},
		{1, 1, 111},
	}
	for _, tt := range tests {
		if got := dst.RGBAAt(tt.x, tt.y).R; got != tt.want {
			t.Errorf("pixel (%d, %d) = %d, want %d", tt.x, tt.y, got, tt.want)
		}
	}

	// Pixels outside the canvas stay untouched.
	if got := dst.RGBAAt(3, 3); got.A != 0 {
		t.Errorf("pixel outside canvas written: %+v", got)
	}
}

func TestSliceZoomReplicatesSamples(t *testing.T) {
	vol := testVolume(t)
	cm := Colormap{Min: 0, Max: 255}
	dst := image.NewRGBA(image.Rect(0, 0, 4, 4))
	tr := viewport.Transform{Zoom: 2}

	Slice(dst, image.Rect(0, 0, 4, 4), vol, viewport.PlaneXY, 0, tr, cm)

	// At zoom 2 each sample covers a 2x2 pixel block.
	if a, b := dst.RGBAAt(0, 0).R, dst.RGBAAt(1, 1).R; a != b || a != 0 {
		t.Errorf("top-left block = %d, %d, want 0, 0", a, b)
	}
	if got := dst.RGBAAt(3, 3).R; got != 11 {
		t.Errorf("bottom-right block = %d, want 11", got)
	}
}

func TestSliceLeavesOutOfPlanePixels(t *testing.T) {
	vol := testVolume(t)
	cm := Colormap{Min: 0, Max: 255}
	dst := image.NewRGBA(image.Rect(0, 0, 8, 8))

	// Canvas larger than the 2x2 plane at zoom 1: pixels past the plane
	// stay background.
	Slice(dst, image.Rect(0, 0, 8, 8), vol, viewport.PlaneXY, 0, viewport.NewTransform(), cm)

	if got := dst.RGBAAt(5, 5); got.A != 0 {
		t.Errorf("pixel past plane extent written: %+v", got)
	}
}

func TestSliceHonorsCanvasOffset(t *testing.T) {
	vol := testVolume(t)
	cm := Colormap{Min: 0, Max: 255}
	dst := image.NewRGBA(image.Rect(0, 0, 10, 10))

	Slice(dst, image.Rect(4, 4, 6, 6), vol, viewport.PlaneXY, 0, viewport.NewTransform(), cm)

	if got := dst.RGBAAt(4, 4).R; got != 0 {
		t.Errorf("canvas origin pixel = %d, want 0", got)
	}
	if got := dst.RGBAAt(5, 5).R; got != 11 {
		t.Errorf("canvas (1, 1) pixel = %d, want 11", got)
	}
	if got := dst.RGBAAt(0, 0); got.A != 0 {
		t.Errorf("pixel outside canvas written: %+v", got)
	}
}

func TestOutline(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 10, 10))
	red := [4]uint8{0xff, 0, 0, 0xff}

	Outline(dst, image.Rect(2, 2, 6, 6), red)

	if got := dst.RGBAAt(2, 2); got.R != 0xff {
		t.Errorf("corner not drawn: %+v", got)
	}
	if got := dst.RGBAAt(4, 2); got.R != 0xff {
		t.Errorf("top edge not drawn: %+v", got)
	}
	if got := dst.RGBAAt(4, 4); got.A != 0 {
		t.Errorf("interior filled: %+v", got)
	}
}

func TestSliceImage(t *testing.T) {
	vol := testVolume(t)
	cm := Colormap{Min: 0, Max: 255}

	img := SliceImage(vol, viewport.PlaneXZ, 1, cm)

	if img.Bounds().Dx() != 2 || img.Bounds().Dy() != 2 {
		t.Fatalf("bounds = %v, want 2x2", img.Bounds())
	}
	// Plane XZ at y=1: sample(x, 1, z) = x + 10 + 100z.
	if got := img.GrayAt(1, 1).Y; got != 111 {
		t.Errorf("pixel (1, 1) = %d, want 111", got)
	}
}

func TestScaleImage(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 4, 4))

	out := ScaleImage(src, 2)
	if out.Bounds().Dx() != 8 || out.Bounds().Dy() != 8 {
		t.Errorf("scaled bounds = %v, want 8x8", out.Bounds())
	}

	if same := ScaleImage(src, 1); same != image.Image(src) {
		t.Error("factor 1 should return the source image")
	}
}
