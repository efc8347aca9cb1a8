package volume

import (
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"github.com/matzehuels/voxview/pkg/errors"
)

// Spec identifies a volume file and its grid dimensions, as given on the
// command line or in a manifest file.
type Spec struct {
	Path string `yaml:"path"`
	Nx   int    `yaml:"nx"`
	Ny   int    `yaml:"ny"`
	Nz   int    `yaml:"nz"`
}

// LoadRaw loads a volume from a raw binary file of little-endian float32
// samples in z-major order. The file size must match the dimensions exactly;
// a mismatch usually means swapped or wrong extents and is reported rather
// than silently truncated.
func LoadRaw(path string, nx, ny, nz int) (*Volume, error) {
	if err := errors.ValidateVolumePath(path); err != nil {
		return nil, err
	}
	if err := errors.ValidateDimensions(nx, ny, nz); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "cannot open %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "cannot read %s", path)
	}

	count := nx * ny * nz
	if len(data) != count*4 {
		return nil, errors.New(errors.ErrCodeSizeMismatch,
			"file size mismatch for %s: expected %d bytes (%dx%dx%d float32), got %d",
			path, count*4, nx, ny, nz, len(data))
	}

	samples := make([]float64, count)
	for i := range samples {
		bits := binary.LittleEndian.Uint32(data[i*4:])
		samples[i] = float64(math.Float32frombits(bits))
	}

	return New(filepath.Base(path), samples, nx, ny, nz)
}

// LoadSpec loads the volume described by a Spec.
func LoadSpec(s Spec) (*Volume, error) {
	return LoadRaw(s.Path, s.Nx, s.Ny, s.Nz)
}

// ParseArgs parses positional arguments into volume specs. Arguments come in
// groups of four: path nx ny nz, repeated once per volume.
func ParseArgs(args []string) ([]Spec, error) {
	if len(args) == 0 || len(args)%4 != 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"expected groups of 4 arguments (file nx ny nz), got %d", len(args))
	}

	specs := make([]Spec, 0, len(args)/4)
	for i := 0; i < len(args); i += 4 {
		s := Spec{Path: args[i]}
		var err error
		if s.Nx, err = strconv.Atoi(args[i+1]); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid nx for %s", s.Path)
		}
		if s.Ny, err = strconv.Atoi(args[i+2]); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid ny for %s", s.Path)
		}
		if s.Nz, err = strconv.Atoi(args[i+3]); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid nz for %s", s.Path)
		}
		if err := errors.ValidateDimensions(s.Nx, s.Ny, s.Nz); err != nil {
			return nil, err
		}
		specs = append(specs, s)
	}
	return specs, nil
}
