package envimport

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"

	"github.com/docker/go-units"
)

// DefaultMaxCapture bounds the subordinate shell's captured output when
// Importer.MaxCapture is left zero.
const DefaultMaxCapture int64 = 4 * units.MiB

// ErrDumpTooLarge reports that the subordinate shell produced more
// output than the importer was allowed to capture.
var ErrDumpTooLarge = errors.New("environment dump too large")

// A Runner executes the subordinate shell synchronously and returns its
// captured standard output, at most maxOutput bytes of it. Substituting
// the Runner is how tests avoid spawning real shells.
type Runner interface {
	Run(ctx context.Context, name string, args []string, maxOutput int64) ([]byte, error)
}

var execCommandContext = exec.CommandContext

// execRunner runs the shell through os/exec.
type execRunner struct{}

var _ Runner = execRunner{}

func (execRunner) Run(ctx context.Context, name string, args []string, maxOutput int64) ([]byte, error) {
	cmd := execCommandContext(ctx, name, args...)
	prepareShell(cmd, args)

	stdout := &boundedBuffer{max: maxOutput}
	var stderr bytes.Buffer
	cmd.Stdout = stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if stdout.overflowed {
		// The write error kills the copy, so the process usually dies
		// of a broken pipe; the overflow is still the cause to report.
		return nil, fmt.Errorf("envimport: %w (over %s)", ErrDumpTooLarge, units.BytesSize(float64(maxOutput)))
	}
	if err != nil {
		if msg := bytes.TrimSpace(stderr.Bytes()); len(msg) > 0 {
			return nil, fmt.Errorf("envimport: failed to run %s: %w: %s", name, err, msg)
		}
		return nil, fmt.Errorf("envimport: failed to run %s: %w", name, err)
	}
	return stdout.Bytes(), nil
}

// boundedBuffer collects writes up to a fixed size and fails afterwards,
// so a runaway subordinate process cannot exhaust memory.
type boundedBuffer struct {
	buf        bytes.Buffer
	max        int64
	overflowed bool
}

func (b *boundedBuffer) Write(p []byte) (int, error) {
	if int64(b.buf.Len())+int64(len(p)) > b.max {
		b.overflowed = true
		return 0, ErrDumpTooLarge
	}
	return b.buf.Write(p)
}

func (b *boundedBuffer) Bytes() []byte { return b.buf.Bytes() }
