package volume

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/voxview/pkg/errors"
)

// Manifest is a YAML file listing the volumes to open, as an alternative to
// positional argument groups:
//
//	volumes:
//	  - path: brain.raw
//	    nx: 256
//	    ny: 256
//	    nz: 128
//	  - path: phantom.raw
//	    nx: 64
//	    ny: 64
//	    nz: 64
type Manifest struct {
	Volumes []Spec `yaml:"volumes"`
}

// LoadManifest parses a manifest file and validates every entry.
func LoadManifest(path string) ([]Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "cannot open manifest %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "cannot read manifest %s", path)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "cannot parse manifest %s", path)
	}
	if len(m.Volumes) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidManifest, "manifest %s lists no volumes", path)
	}

	for _, s := range m.Volumes {
		if err := errors.ValidateVolumePath(s.Path); err != nil {
			return nil, err
		}
		if err := errors.ValidateDimensions(s.Nx, s.Ny, s.Nz); err != nil {
			return nil, err
		}
	}
	return m.Volumes, nil
}
