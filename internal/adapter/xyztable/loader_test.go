package xyztable

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseWhitespaceRows(t *testing.T) {
	in := "# lon lat value\n0 10 1.5\n1.25\t11\t-2\n\n2 12 3\n"
	table, err := Parse(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if table.Len() != 3 {
		t.Fatalf("len = %d, want 3", table.Len())
	}
	if table.Lon[1] != 1.25 || table.Lat[1] != 11 || table.Value[1] != -2 {
		t.Errorf("row 1 wrong: %+v", table)
	}
}

func TestParseCommaRows(t *testing.T) {
	in := "0, 10, 1\n1, 11, 2\n"
	table, err := Parse(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if table.Len() != 2 {
		t.Fatalf("len = %d, want 2", table.Len())
	}
	if table.Value[1] != 2 {
		t.Errorf("value[1] = %v", table.Value[1])
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"wrong column count", "0 10\n"},
		{"bad longitude", "east 10 1\n"},
		{"bad value", "0 10 high\n"},
		{"empty input", "# only a comment\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(strings.NewReader(tt.in)); err == nil {
				t.Errorf("Parse(%q) should fail", tt.in)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "points.xyz")
	if err := os.WriteFile(path, []byte("0 0 1\n1 1 2\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	table, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if table.Len() != 2 {
		t.Errorf("len = %d, want 2", table.Len())
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.xyz")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
