// Package usecase orchestrates gridding requests against the GMT engine.
package usecase

import (
	"fmt"
	"io"

	"go.ngs.io/sphgrid/internal/adapter/grdfile"
	"go.ngs.io/sphgrid/internal/domain"
	"go.ngs.io/sphgrid/internal/gmt"
)

// moduleName is the engine module performing spherical gridding in tension.
const moduleName = "sphinterpolate"

// Gridder runs spherical gridding requests: it marshals input and options,
// invokes the engine once, and materializes the resulting grid.
type Gridder struct {
	binPath string
	runner  gmt.Runner // Overrides the real engine when set (tests).
}

// NewGridder creates a gridder using the engine binary at binPath
// (empty means resolve the default binary on PATH).
func NewGridder(binPath string) *Gridder {
	return &Gridder{binPath: binPath}
}

// NewGridderWithRunner creates a gridder backed by a caller-provided runner.
func NewGridderWithRunner(r gmt.Runner) *Gridder {
	return &Gridder{runner: r}
}

// openSession acquires the engine context for one call.
func (g *Gridder) openSession() (*gmt.Session, error) {
	if g.runner != nil {
		return gmt.NewSessionWithRunner(g.runner), nil
	}
	return gmt.NewSession(g.binPath)
}

// SphInterpolate grids scattered lon/lat/value data on a sphere.
//
// data is either in-memory tabular data (*domain.Table, domain.Table, or an
// n x 3 [][]float64 of lon/lat/value rows) or a string reference to a source
// the engine reads directly. opts follows the gmt.Options allow-list.
//
// When opts carries no outgrid, the result materializes in memory and the
// intermediate file is removed; when the caller sets outgrid, the grid stays
// at that path and the returned grid is nil. Exactly one of the two holds
// after a successful call. Every failure is fatal for the call; scoped
// resources are still released.
func (g *Gridder) SphInterpolate(data any, opts gmt.Options) (*domain.Grid, error) {
	if opts == nil {
		opts = gmt.Options{}
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	kind, table, srcPath, err := domain.Classify(data)
	if err != nil {
		return nil, &gmt.InvalidInputError{Reason: err.Error()}
	}

	// An explicit flag, not a path comparison, decides whether the caller
	// wants the file kept.
	outPath, userOut := opts.OutGrid()
	var tmp *gmt.TempGrid
	if !userOut {
		tmp, err = gmt.NewTempGrid(".nc")
		if err != nil {
			return nil, err
		}
		defer func() { _ = tmp.Close() }()
		outPath = tmp.Path()
		opts = cloneOptions(opts)
		opts["outgrid"] = outPath
	}

	session, err := g.openSession()
	if err != nil {
		return nil, err
	}
	defer func() { _ = session.Close() }()

	var stdin io.Reader
	infile := srcPath
	if kind == domain.KindVectors {
		vf, err := session.VirtualFile(table)
		if err != nil {
			return nil, err
		}
		defer func() { _ = vf.Close() }()
		stdin = vf.Reader()
		infile = vf.Token()
	}

	args, err := gmt.BuildArgs(opts)
	if err != nil {
		return nil, err
	}
	if infile != "" {
		args = infile + " " + args
	}

	if err := session.CallModule(moduleName, args, stdin); err != nil {
		return nil, err
	}

	if userOut {
		// Grid output remains at the caller's path.
		return nil, nil
	}

	grid, err := grdfile.Read(outPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read result grid: %w", err)
	}
	return grid, nil
}

// cloneOptions copies an option set so the caller's map is never mutated.
func cloneOptions(opts gmt.Options) gmt.Options {
	clone := make(gmt.Options, len(opts)+1)
	for k, v := range opts {
		clone[k] = v
	}
	return clone
}
