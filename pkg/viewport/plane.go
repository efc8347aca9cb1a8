// Package viewport implements the per-view coordinate mapping between screen
// pixels and volume slice coordinates.
//
// A view shows one axis-aligned 2D slice through a 3D grid. The Plane selects
// which two volume axes map onto screen X/Y and which axis is stepped through
// by the slice index; the Transform is the affine zoom+pan mapping between
// canvas-local pixels and slice-plane coordinates.
package viewport

import (
	"strings"

	"github.com/matzehuels/voxview/pkg/errors"
)

// Plane selects the slicing direction through a volume.
type Plane int

// The three orthogonal slicing planes.
const (
	PlaneXY Plane = iota // screen x/y = volume x/y, slice axis z
	PlaneXZ              // screen x/y = volume x/z, slice axis y
	PlaneYZ              // screen x/y = volume y/z, slice axis x
)

// String returns the lowercase plane name.
func (p Plane) String() string {
	switch p {
	case PlaneXY:
		return "xy"
	case PlaneXZ:
		return "xz"
	case PlaneYZ:
		return "yz"
	}
	return "unknown"
}

// ParsePlane parses a case-insensitive plane name.
func ParsePlane(s string) (Plane, error) {
	switch strings.ToLower(s) {
	case "xy":
		return PlaneXY, nil
	case "xz":
		return PlaneXZ, nil
	case "yz":
		return PlaneYZ, nil
	}
	return PlaneXY, errors.New(errors.ErrCodeInvalidPlane, "invalid plane %q (must be xy, xz, or yz)", s)
}

// Dims returns the slice-plane width and height for a volume with the given
// grid extents.
func (p Plane) Dims(nx, ny, nz int) (w, h int) {
	switch p {
	case PlaneXZ:
		return nx, nz
	case PlaneYZ:
		return ny, nz
	default:
		return nx, ny
	}
}

// SliceExtent returns the number of slices along the plane's slice axis.
func (p Plane) SliceExtent(nx, ny, nz int) int {
	switch p {
	case PlaneXZ:
		return ny
	case PlaneYZ:
		return nx
	default:
		return nz
	}
}

// MapToVolume converts slice-plane coordinates (vx, vy) at the given slice
// index into 3D grid coordinates.
func (p Plane) MapToVolume(vx, vy, slice int) (x, y, z int) {
	switch p {
	case PlaneXZ:
		return vx, slice, vy
	case PlaneYZ:
		return slice, vx, vy
	default:
		return vx, vy, slice
	}
}

// ClampSlice clamps a slice index into [0, extent-1]. Used when the slice
// axis changes on a plane switch and the old index may be out of range.
func ClampSlice(idx, extent int) int {
	if idx >= extent {
		idx = extent - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}
