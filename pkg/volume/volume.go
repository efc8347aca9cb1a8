// Package volume provides the immutable 3D scalar grids displayed by the viewer.
//
// A Volume is a dense nx*ny*nz float grid loaded once at startup and never
// resized. The only mutable state is the display window: the scalar range
// mapped onto the 0-255 intensity scale by the renderer. Sample access is
// bounds-checked and returns a sentinel value for out-of-range indices, so
// callers never have to pre-validate coordinates.
package volume

import (
	"sync"

	"gonum.org/v1/gonum/floats"

	"github.com/matzehuels/voxview/pkg/errors"
)

// Sentinel is the value returned for sample reads outside the grid.
const Sentinel = 0.0

// Volume is a 3D scalar grid with a mutable display window.
//
// The sample data and dimensions are fixed at construction. The window range
// is guarded by a mutex so a reader always observes a consistent (min, max)
// pair even if a future caller commits a window from another goroutine.
type Volume struct {
	name       string
	nx, ny, nz int
	samples    []float64

	globalMin float64
	globalMax float64

	mu     sync.RWMutex
	winMin float64
	winMax float64
}

// New creates a volume from a flat sample slice in z-major order
// (index = z*nx*ny + y*nx + x). The global range is computed once and the
// display window is initialized to it.
func New(name string, samples []float64, nx, ny, nz int) (*Volume, error) {
	if err := errors.ValidateDimensions(nx, ny, nz); err != nil {
		return nil, err
	}
	if len(samples) != nx*ny*nz {
		return nil, errors.New(errors.ErrCodeSizeMismatch,
			"expected %d samples (%dx%dx%d), got %d", nx*ny*nz, nx, ny, nz, len(samples))
	}

	v := &Volume{
		name:      name,
		nx:        nx,
		ny:        ny,
		nz:        nz,
		samples:   samples,
		globalMin: floats.Min(samples),
		globalMax: floats.Max(samples),
	}
	v.winMin = v.globalMin
	v.winMax = v.globalMax
	return v, nil
}

// Name returns the display name of the volume (typically the file base name).
func (v *Volume) Name() string { return v.name }

// Nx returns the grid extent along the x axis.
func (v *Volume) Nx() int { return v.nx }

// Ny returns the grid extent along the y axis.
func (v *Volume) Ny() int { return v.ny }

// Nz returns the grid extent along the z axis.
func (v *Volume) Nz() int { return v.nz }

// Dims returns all three grid extents.
func (v *Volume) Dims() (nx, ny, nz int) { return v.nx, v.ny, v.nz }

// Sample returns the scalar value at (x, y, z), or Sentinel if any index
// lies outside the grid. It never reads adjacent memory.
func (v *Volume) Sample(x, y, z int) float64 {
	if x < 0 || x >= v.nx || y < 0 || y >= v.ny || z < 0 || z >= v.nz {
		return Sentinel
	}
	return v.samples[z*v.nx*v.ny+y*v.nx+x]
}

// GlobalRange returns the minimum and maximum sample values, computed once
// at construction.
func (v *Volume) GlobalRange() (min, max float64) {
	return v.globalMin, v.globalMax
}

// Window returns the current display window as a consistent pair.
func (v *Volume) Window() (min, max float64) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.winMin, v.winMax
}

// SetWindow sets the display window. No ordering is enforced: an inverted or
// zero-width window is a valid, displayable state handled by the colormap,
// not an error.
func (v *Volume) SetWindow(min, max float64) {
	v.mu.Lock()
	v.winMin = min
	v.winMax = max
	v.mu.Unlock()
}

// ResetWindow restores the display window to the global sample range.
func (v *Volume) ResetWindow() {
	v.SetWindow(v.globalMin, v.globalMax)
}
