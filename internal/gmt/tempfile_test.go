package gmt

import (
	"os"
	"strings"
	"testing"
)

func TestTempGridCreateAndClose(t *testing.T) {
	tmp, err := NewTempGrid(".nc")
	if err != nil {
		t.Fatalf("NewTempGrid: %v", err)
	}
	path := tmp.Path()
	if !strings.HasSuffix(path, ".nc") {
		t.Errorf("expected .nc suffix, got %s", path)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("temp file should exist after allocation: %v", err)
	}

	if err := tmp.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("temp file should be removed after Close, stat err = %v", err)
	}
}

func TestTempGridCloseIsIdempotent(t *testing.T) {
	tmp, err := NewTempGrid(".nc")
	if err != nil {
		t.Fatalf("NewTempGrid: %v", err)
	}
	if err := tmp.Close(); err != nil {
		t.Fatalf("first Close: %v", err)
	}
	if err := tmp.Close(); err != nil {
		t.Fatalf("second Close should be a no-op: %v", err)
	}
}

func TestTempGridCloseAfterEngineRemovedFile(t *testing.T) {
	tmp, err := NewTempGrid(".nc")
	if err != nil {
		t.Fatalf("NewTempGrid: %v", err)
	}
	// Simulate something else deleting the artifact first.
	if err := os.Remove(tmp.Path()); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := tmp.Close(); err != nil {
		t.Fatalf("Close after external removal: %v", err)
	}
}

func TestTempGridPathsAreUnique(t *testing.T) {
	a, err := NewTempGrid(".nc")
	if err != nil {
		t.Fatalf("NewTempGrid: %v", err)
	}
	defer func() { _ = a.Close() }()
	b, err := NewTempGrid(".nc")
	if err != nil {
		t.Fatalf("NewTempGrid: %v", err)
	}
	defer func() { _ = b.Close() }()
	if a.Path() == b.Path() {
		t.Fatalf("overlapping calls must not share artifacts: %s", a.Path())
	}
}
