package errors

import (
	"strings"
	"unicode"
)

// ValidateSceneName validates a stored-scene name for safety and
// correctness. Names are used in URLs, cache keys, and store documents,
// so the rules are intentionally conservative:
//   - No empty names
//   - No control characters
//   - No path separators or traversal sequences
//   - Maximum length of 128 characters
func ValidateSceneName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidName, "scene name cannot be empty")
	}

	if len(name) > 128 {
		return New(ErrCodeInvalidName, "scene name too long (max 128 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidName, "scene name contains invalid control characters")
		}
	}

	dangerousPatterns := []string{
		"..",   // Parent directory
		"/",    // Path separator
		"\\",   // Backslash (Windows path)
		"\x00", // Null byte
	}

	for _, pattern := range dangerousPatterns {
		if strings.Contains(name, pattern) {
			return New(ErrCodeInvalidName, "scene name contains invalid characters: %q", pattern)
		}
	}

	return nil
}

// ValidateExportSize validates the requested export dimensions.
// Zero and negative sizes cannot produce a usable aspect ratio.
func ValidateExportSize(width, height float32) error {
	if width <= 0 || height <= 0 {
		return New(ErrCodeInvalidInput, "export size must be positive, got %gx%g", width, height)
	}
	return nil
}

// ValidateFOV validates a field-of-view angle in degrees. The focal
// length 1/tan(fov/2) degenerates at 0 and 180 degrees.
func ValidateFOV(fov float32) error {
	if fov <= 0 || fov >= 180 {
		return New(ErrCodeInvalidView, "field of view must be in (0, 180) degrees, got %g", fov)
	}
	return nil
}
