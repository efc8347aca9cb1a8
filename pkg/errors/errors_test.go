package errors

import (
	stderrors "errors"
	"strings"
	"testing"
)

func TestErrorFormatting(t *testing.T) {
	err := New(ErrCodeInvalidDimensions, "dimensions must be positive, got %dx%dx%d", 0, 2, 3)

	if !strings.Contains(err.Error(), "INVALID_DIMENSIONS") {
		t.Errorf("Error() missing code: %v", err)
	}
	if !strings.Contains(err.Error(), "0x2x3") {
		t.Errorf("Error() missing formatted message: %v", err)
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := stderrors.New("disk on fire")
	err := Wrap(ErrCodeInternal, cause, "cannot read volume")

	if !stderrors.Is(err, cause) {
		t.Error("wrapped cause lost from chain")
	}
	if !strings.Contains(err.Error(), "disk on fire") {
		t.Errorf("Error() missing cause: %v", err)
	}
}

func TestIsAndGetCode(t *testing.T) {
	err := New(ErrCodeViewNotFound, "no such view")

	if !Is(err, ErrCodeViewNotFound) {
		t.Error("Is should match the code")
	}
	if Is(err, ErrCodeInternal) {
		t.Error("Is matched the wrong code")
	}
	if Is(stderrors.New("plain"), ErrCodeInternal) {
		t.Error("Is matched a plain error")
	}
	if got := GetCode(err); got != ErrCodeViewNotFound {
		t.Errorf("GetCode = %v, want %v", got, ErrCodeViewNotFound)
	}
	if got := GetCode(stderrors.New("plain")); got != "" {
		t.Errorf("GetCode on plain error = %q, want empty", got)
	}

	// The code survives wrapping.
	wrapped := Wrap(ErrCodeFileNotFound, err, "loading")
	if !Is(wrapped, ErrCodeFileNotFound) {
		t.Error("Is should match the outermost code")
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeInvalidWindow, "window min must differ from max")
	if got := UserMessage(err); got != "window min must differ from max" {
		t.Errorf("UserMessage = %q", got)
	}
	if strings.Contains(UserMessage(err), "INVALID_WINDOW") {
		t.Error("UserMessage should drop the code prefix")
	}

	plain := stderrors.New("plain failure")
	if got := UserMessage(plain); got != "plain failure" {
		t.Errorf("UserMessage on plain error = %q", got)
	}
}

func TestValidateDimensions(t *testing.T) {
	tests := []struct {
		name       string
		nx, ny, nz int
		wantErr    bool
	}{
		{"valid", 256, 256, 128, false},
		{"single voxel", 1, 1, 1, false},
		{"zero nx", 0, 2, 2, true},
		{"negative ny", 2, -1, 2, true},
		{"zero nz", 2, 2, 0, true},
		{"overflow", 100000, 100000, 100000, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDimensions(tt.nx, tt.ny, tt.nz)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDimensions(%d, %d, %d) error = %v, wantErr %v",
					tt.nx, tt.ny, tt.nz, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidDimensions) {
				t.Errorf("wrong code: %v", GetCode(err))
			}
		})
	}
}

func TestValidateVolumePath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"valid", "/data/brain.raw", false},
		{"relative", "scan.raw", false},
		{"empty", "", true},
		{"null byte", "a\x00b", true},
		{"control char", "a\nb", true},
		{"too long", strings.Repeat("x", 501), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateVolumePath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateVolumePath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePlaneName(t *testing.T) {
	for _, name := range []string{"xy", "XZ", "Yz"} {
		if err := ValidatePlaneName(name); err != nil {
			t.Errorf("ValidatePlaneName(%q) error: %v", name, err)
		}
	}
	for _, name := range []string{"", "zz", "xyz"} {
		if err := ValidatePlaneName(name); !Is(err, ErrCodeInvalidPlane) {
			t.Errorf("ValidatePlaneName(%q) = %v, want invalid plane", name, err)
		}
	}
}
