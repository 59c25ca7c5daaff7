package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestErrorFormatting(t *testing.T) {
	plain := New(ErrCodeInvalidScene, "face %d: fewer than 3 vertices", 2)
	if got, want := plain.Error(), "INVALID_SCENE: face 2: fewer than 3 vertices"; got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}

	wrapped := Wrap(ErrCodeStorage, fmt.Errorf("connection refused"), "loading scene %q", "demo")
	if got, want := wrapped.Error(), `STORAGE: loading scene "demo": connection refused`; got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := fmt.Errorf("boom")
	err := Wrap(ErrCodeInternal, cause, "rendering")

	if !stderrors.Is(err, cause) {
		t.Fatal("wrapped cause must survive errors.Is")
	}
	if err.Unwrap() != cause {
		t.Fatal("Unwrap must return the cause")
	}
}

func TestIsMatchesCode(t *testing.T) {
	err := New(ErrCodeSceneNotFound, "no scene %q", "missing")

	if !Is(err, ErrCodeSceneNotFound) {
		t.Fatal("Is must match the error's own code")
	}
	if Is(err, ErrCodeStorage) {
		t.Fatal("Is must not match a different code")
	}
	if Is(fmt.Errorf("plain"), ErrCodeStorage) {
		t.Fatal("Is must not match plain errors")
	}

	// A structured error wrapped in a plain one still matches.
	outer := fmt.Errorf("handler: %w", err)
	if !Is(outer, ErrCodeSceneNotFound) {
		t.Fatal("Is must unwrap plain wrappers")
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeInvalidView, "bad fov")); got != ErrCodeInvalidView {
		t.Fatalf("GetCode = %q, want %q", got, ErrCodeInvalidView)
	}
	if got := GetCode(fmt.Errorf("plain")); got != "" {
		t.Fatalf("GetCode on plain error = %q, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	if got := UserMessage(New(ErrCodeInvalidName, "scene name cannot be empty")); got != "scene name cannot be empty" {
		t.Fatalf("UserMessage = %q", got)
	}
	if got := UserMessage(fmt.Errorf("plain failure")); got != "plain failure" {
		t.Fatalf("UserMessage on plain error = %q", got)
	}
}
