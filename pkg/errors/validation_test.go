package errors

import (
	"strings"
	"testing"
)

func TestValidateSceneName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "demo", false},
		{"with dashes", "my-scene_v2", false},
		{"unicode", "schräg", false},
		{"empty", "", true},
		{"too long", strings.Repeat("a", 129), true},
		{"max length ok", strings.Repeat("a", 128), false},
		{"path separator", "a/b", true},
		{"backslash", `a\b`, true},
		{"traversal", "..", true},
		{"control char", "a\tb", true},
		{"null byte", "a\x00b", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSceneName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateSceneName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidName) {
				t.Fatalf("error code = %q, want %q", GetCode(err), ErrCodeInvalidName)
			}
		})
	}
}

func TestValidateExportSize(t *testing.T) {
	if err := ValidateExportSize(10, 8); err != nil {
		t.Fatalf("valid size rejected: %v", err)
	}
	for _, tt := range [][2]float32{{0, 5}, {5, 0}, {-1, 5}, {5, -1}} {
		if err := ValidateExportSize(tt[0], tt[1]); !Is(err, ErrCodeInvalidInput) {
			t.Fatalf("ValidateExportSize(%g, %g) = %v, want INVALID_INPUT", tt[0], tt[1], err)
		}
	}
}

func TestValidateFOV(t *testing.T) {
	for _, fov := range []float32{30, 90, 179.9, 0.1} {
		if err := ValidateFOV(fov); err != nil {
			t.Fatalf("ValidateFOV(%g) = %v, want nil", fov, err)
		}
	}
	for _, fov := range []float32{0, -10, 180, 360} {
		if err := ValidateFOV(fov); !Is(err, ErrCodeInvalidView) {
			t.Fatalf("ValidateFOV(%g) = %v, want INVALID_VIEW", fov, err)
		}
	}
}
