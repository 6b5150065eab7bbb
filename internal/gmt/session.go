package gmt

import (
	"bytes"
	"fmt"
	"io"
	"os/exec"
	"strconv"
	"strings"

	"go.ngs.io/sphgrid/internal/domain"
)

// DefaultBinary is the engine executable looked up on PATH when no explicit
// path is configured.
const DefaultBinary = "gmt"

// Runner executes one module invocation against the engine.
// The abstraction exists so tests can stub the engine without a GMT install.
type Runner interface {
	// Run invokes the named module with the given argument tokens. Input
	// data, if any, is presented on standard input. It returns the engine's
	// captured stderr alongside any execution error.
	Run(module string, args []string, stdin io.Reader) ([]byte, error)
}

// execRunner runs modules through the gmt executable.
type execRunner struct {
	binPath string
}

func (r *execRunner) Run(module string, args []string, stdin io.Reader) ([]byte, error) {
	//nolint:gosec // G204: binary path comes from configuration, args are built by this package.
	cmd := exec.Command(r.binPath, append([]string{module}, args...)...)
	cmd.Stdin = stdin
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stderr.Bytes(), err
}

// Session is a scoped handle to the external engine's runtime context.
// Open one per call and release it with Close on every exit path.
type Session struct {
	runner Runner
	closed bool
}

// NewSession opens an engine session. binPath may be empty, in which case
// the default binary is resolved on PATH. A missing engine is reported here,
// before any module work happens.
func NewSession(binPath string) (*Session, error) {
	if binPath == "" {
		binPath = DefaultBinary
	}
	resolved, err := exec.LookPath(binPath)
	if err != nil {
		return nil, fmt.Errorf("gmt engine not found (%s): %w", binPath, err)
	}
	return &Session{runner: &execRunner{binPath: resolved}}, nil
}

// NewSessionWithRunner opens a session backed by a caller-provided runner.
func NewSessionWithRunner(r Runner) *Session {
	return &Session{runner: r}
}

// Close releases the session. Calls after Close fail.
func (s *Session) Close() error {
	s.closed = true
	return nil
}

// CallModule invokes one engine module synchronously with a combined
// argument string. stdin may be nil for file-kind input. Failure from the
// engine surfaces as a ModuleError; there is no retry.
func (s *Session) CallModule(module, args string, stdin io.Reader) error {
	if s.closed {
		return fmt.Errorf("session is closed")
	}
	stderr, err := s.runner.Run(module, strings.Fields(args), stdin)
	if err != nil {
		return &ModuleError{
			Module: module,
			Stderr: strings.TrimSpace(string(stderr)),
			Err:    err,
		}
	}
	return nil
}

// VirtualFile exposes an in-memory table to the engine through a file-like
// stream, avoiding a disk write of the input. Token is the argument position
// the input occupies; an empty token means the data arrives on standard
// input instead of a named file.
type VirtualFile struct {
	data *bytes.Reader
}

// VirtualFile renders a table into the ASCII lon/lat/value form the engine
// reads. The returned handle is scoped to the call; release it with Close.
func (s *Session) VirtualFile(t *domain.Table) (*VirtualFile, error) {
	if s.closed {
		return nil, fmt.Errorf("session is closed")
	}
	if err := t.Validate(); err != nil {
		return nil, invalidInputf("bad table: %v", err)
	}
	var buf bytes.Buffer
	for i := range t.Lon {
		buf.WriteString(strconv.FormatFloat(t.Lon[i], 'g', -1, 64))
		buf.WriteByte('\t')
		buf.WriteString(strconv.FormatFloat(t.Lat[i], 'g', -1, 64))
		buf.WriteByte('\t')
		buf.WriteString(strconv.FormatFloat(t.Value[i], 'g', -1, 64))
		buf.WriteByte('\n')
	}
	return &VirtualFile{data: bytes.NewReader(buf.Bytes())}, nil
}

// Token returns the argument token for the virtual input. Streams have no
// name, so the token is empty and the engine reads standard input.
func (v *VirtualFile) Token() string {
	return ""
}

// Reader returns the stream presented to the engine.
func (v *VirtualFile) Reader() io.Reader {
	return v.data
}

// Close releases the handle.
func (v *VirtualFile) Close() error {
	v.data = nil
	return nil
}
