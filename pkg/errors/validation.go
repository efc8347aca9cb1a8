package errors

import (
	"strings"
	"unicode"
)

// ValidateDimensions validates volume grid dimensions.
// All three extents must be strictly positive, and the total sample count
// must stay within a sane bound to catch swapped or garbage arguments early.
func ValidateDimensions(nx, ny, nz int) error {
	if nx <= 0 || ny <= 0 || nz <= 0 {
		return New(ErrCodeInvalidDimensions, "dimensions must be positive, got %dx%dx%d", nx, ny, nz)
	}

	const maxSamples = 1 << 31 // ~8 GiB of float32 samples
	if int64(nx)*int64(ny)*int64(nz) > maxSamples {
		return New(ErrCodeInvalidDimensions, "volume too large: %dx%dx%d", nx, ny, nz)
	}

	return nil
}

// ValidateVolumePath validates a volume file path for safety.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidateVolumePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	return nil
}

// ValidatePlaneName validates a slicing plane name (xy, xz, or yz).
// Matching is case-insensitive; parsing into the actual plane type is done
// by the viewport package.
func ValidatePlaneName(name string) error {
	switch strings.ToLower(name) {
	case "xy", "xz", "yz":
		return nil
	}
	return New(ErrCodeInvalidPlane, "invalid plane %q (must be xy, xz, or yz)", name)
}
