package render

import (
	"image"

	xdraw "golang.org/x/image/draw"

	"github.com/matzehuels/voxview/pkg/viewport"
	"github.com/matzehuels/voxview/pkg/volume"
)

// SliceImage renders a full slice at native resolution (one pixel per
// sample) as an opaque grayscale image. Used by the export path, which has
// no viewport transform.
func SliceImage(vol *volume.Volume, plane viewport.Plane, slice int, cm Colormap) *image.Gray {
	w, h := plane.Dims(vol.Dims())
	img := image.NewGray(image.Rect(0, 0, w, h))

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			vx, vy, vz := plane.MapToVolume(x, y, slice)
			img.Pix[y*img.Stride+x] = cm.Intensity(vol.Sample(vx, vy, vz))
		}
	}
	return img
}

// ScaleImage resamples src by the given factor using Catmull-Rom
// interpolation. A factor of 1 returns src unchanged.
func ScaleImage(src image.Image, factor float64) image.Image {
	if factor == 1 {
		return src
	}
	b := src.Bounds()
	w := int(float64(b.Dx()) * factor)
	h := int(float64(b.Dy()) * factor)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, b, xdraw.Src, nil)
	return dst
}
