package viewport

import "testing"

func TestParsePlane(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Plane
		wantErr bool
	}{
		{"lower xy", "xy", PlaneXY, false},
		{"upper XZ", "XZ", PlaneXZ, false},
		{"mixed Yz", "Yz", PlaneYZ, false},
		{"unknown", "zz", PlaneXY, true},
		{"empty", "", PlaneXY, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePlane(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParsePlane(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParsePlane(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestPlaneGeometry(t *testing.T) {
	const nx, ny, nz = 3, 5, 7

	tests := []struct {
		plane        Plane
		wantW, wantH int
		wantExtent   int
	}{
		{PlaneXY, 3, 5, 7},
		{PlaneXZ, 3, 7, 5},
		{PlaneYZ, 5, 7, 3},
	}

	for _, tt := range tests {
		t.Run(tt.plane.String(), func(t *testing.T) {
			w, h := tt.plane.Dims(nx, ny, nz)
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("Dims = (%d, %d), want (%d, %d)", w, h, tt.wantW, tt.wantH)
			}
			if got := tt.plane.SliceExtent(nx, ny, nz); got != tt.wantExtent {
				t.Errorf("SliceExtent = %d, want %d", got, tt.wantExtent)
			}
		})
	}
}

func TestMapToVolume(t *testing.T) {
	tests := []struct {
		plane   Plane
		x, y, z int
	}{
		{PlaneXY, 1, 2, 9},
		{PlaneXZ, 1, 9, 2},
		{PlaneYZ, 9, 1, 2},
	}

	for _, tt := range tests {
		t.Run(tt.plane.String(), func(t *testing.T) {
			// Plane coordinates (1, 2) at slice 9 in every case.
			x, y, z := tt.plane.MapToVolume(1, 2, 9)
			if x != tt.x || y != tt.y || z != tt.z {
				t.Errorf("MapToVolume(1, 2, 9) = (%d, %d, %d), want (%d, %d, %d)",
					x, y, z, tt.x, tt.y, tt.z)
			}
		})
	}
}

func TestClampSlice(t *testing.T) {
	tests := []struct {
		name        string
		idx, extent int
		want        int
	}{
		{"in range", 3, 10, 3},
		{"above", 49, 30, 29},
		{"at extent", 30, 30, 29},
		{"negative", -4, 30, 0},
		{"zero extent", 5, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampSlice(tt.idx, tt.extent); got != tt.want {
				t.Errorf("ClampSlice(%d, %d) = %d, want %d", tt.idx, tt.extent, got, tt.want)
			}
		})
	}
}
