package gmt

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// TempGrid is a scoped filesystem path for one call's output artifact.
// It exists only for the duration of a call and is removed on every exit
// path via Close.
type TempGrid struct {
	path string
}

// NewTempGrid allocates a unique grid path with the given suffix in the
// system temp directory. The file itself is created empty so that a failed
// engine run still leaves something removable behind.
func NewTempGrid(suffix string) (*TempGrid, error) {
	name := fmt.Sprintf("sphgrid-%s%s", uuid.NewString(), suffix)
	path := filepath.Join(os.TempDir(), name)
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create temp grid file: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("failed to close temp grid file: %w", err)
	}
	return &TempGrid{path: path}, nil
}

// Path returns the allocated path.
func (t *TempGrid) Path() string {
	return t.path
}

// Close removes the artifact. Removal of an already-removed file is not an
// error; any other failure is reported.
func (t *TempGrid) Close() error {
	if t == nil || t.path == "" {
		return nil
	}
	err := os.Remove(t.path)
	t.path = ""
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove temp grid file: %w", err)
	}
	return nil
}
