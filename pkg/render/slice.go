package render

import (
	"image"

	"github.com/matzehuels/voxview/pkg/viewport"
	"github.com/matzehuels/voxview/pkg/volume"
)

// Slice renders one view's slice into dst.
//
// For every destination pixel inside canvas (clipped to dst's bounds), the
// canvas-local coordinate is mapped through the transform to a slice-plane
// sample index. Pixels mapping outside [0, planeW) x [0, planeH) are left
// untouched (background); everything else is windowed through the colormap
// and written as opaque grayscale. The whole rectangle is rewritten every
// frame; there is no dirty-region tracking.
func Slice(dst *image.RGBA, canvas image.Rectangle, vol *volume.Volume, plane viewport.Plane, slice int, t viewport.Transform, cm Colormap) {
	clipped := canvas.Intersect(dst.Bounds())
	if clipped.Empty() {
		return
	}

	planeW, planeH := plane.Dims(vol.Dims())

	for sy := clipped.Min.Y; sy < clipped.Max.Y; sy++ {
		row := dst.PixOffset(clipped.Min.X, sy)
		for sx := clipped.Min.X; sx < clipped.Max.X; sx++ {
			ix, iy := t.SampleIndex(float64(sx-canvas.Min.X), float64(sy-canvas.Min.Y))
			if ix >= 0 && ix < planeW && iy >= 0 && iy < planeH {
				x, y, z := plane.MapToVolume(ix, iy, slice)
				i := cm.Intensity(vol.Sample(x, y, z))
				dst.Pix[row+0] = i
				dst.Pix[row+1] = i
				dst.Pix[row+2] = i
				dst.Pix[row+3] = 0xff
			}
			row += 4
		}
	}
}

// Outline draws a 1-pixel rectangle outline into dst, clipped to its bounds.
// Used for the in-progress box-zoom rectangle overlay.
func Outline(dst *image.RGBA, r image.Rectangle, c [4]uint8) {
	r = r.Canon()
	b := dst.Bounds()

	set := func(x, y int) {
		if (image.Point{x, y}).In(b) {
			o := dst.PixOffset(x, y)
			dst.Pix[o+0] = c[0]
			dst.Pix[o+1] = c[1]
			dst.Pix[o+2] = c[2]
			dst.Pix[o+3] = c[3]
		}
	}

	for x := r.Min.X; x <= r.Max.X; x++ {
		set(x, r.Min.Y)
		set(x, r.Max.Y)
	}
	for y := r.Min.Y; y <= r.Max.Y; y++ {
		set(r.Min.X, y)
		set(r.Max.X, y)
	}
}
