/*
Package envimport runs a command in a subordinate shell that also dumps
its resulting environment, then imports the dumped variables into an
environment store. It is the mechanism behind tools that need the side
effects of an environment setup script (compiler environments, SDK
activation scripts) inside an already running process.

The subordinate shell runs

	<command> <args> > <null sink> && <dump>

so the target command's own output is discarded and the captured stream
contains only the dump. POSIX shells dot-source the command, with the
arguments passed as positional parameters, so its exports land in the
shell that runs the dump. Every name=value line of the dump is applied to
the store, overwriting existing values; lines that do not look like an
assignment are skipped. Variables the command removed are reported in
the resulting Diff but never unset.
*/
package envimport

import (
	"context"
	"fmt"
	"regexp"
	"sort"

	"go.uber.org/zap"
)

// dumpLine matches one dumped assignment: a non-empty name up to the
// first "=", then the rest of the line as the value, possibly empty.
// The trailing \r? makes CRLF dumps parse the same as LF ones.
var dumpLine = regexp.MustCompile(`(?m)^([^=\r\n]+)=([^\r\n]*)\r?$`)

// An Importer imports the environment side effects of running a
// command. The zero value imports into the live process environment
// using the platform shell; all fields are optional.
type Importer struct {
	// Store receives the imported variables and provides the snapshot
	// the Diff is computed against. Defaults to ProcessStore.
	Store Store
	// Runner executes the subordinate shell. Defaults to a runner
	// backed by os/exec.
	Runner Runner
	// Shell phrases the composite line. Defaults to DefaultShell().
	Shell *Shell
	// MaxCapture bounds the captured dump in bytes. Defaults to
	// DefaultMaxCapture.
	MaxCapture int64
	// Logger receives debug output. Defaults to a no-op logger.
	Logger *zap.Logger
}

// Import runs the command with the given arguments in a subordinate
// shell and applies every variable of the resulting environment dump to
// the store, reporting what changed relative to the state before the
// run. The command's exit status gates the dump: when it fails, nothing
// is captured and nothing is applied.
//
// Applying is not transactional. If a store write fails midway, the
// variables already applied stay applied, and the error is returned
// together with the partial Diff.
func (imp *Importer) Import(ctx context.Context, command string, args ...string) (*Diff, error) {
	store := imp.store()
	shell := imp.shell()
	logger := imp.logger()

	max := imp.MaxCapture
	if max <= 0 {
		max = DefaultMaxCapture
	}

	before := Capture(store)

	line := shell.Compose(command, args...)
	shellArgs := append(append([]string(nil), shell.Args...), line)
	logger.Debug("running subordinate shell",
		zap.String("shell", shell.Path),
		zap.String("line", line))

	out, err := imp.runner().Run(ctx, shell.Path, shellArgs, max)
	if err != nil {
		return nil, err
	}

	diff := &Diff{
		Added:   map[string]string{},
		Changed: map[string]string{},
	}
	dumped := make(map[string]struct{})
	for _, m := range dumpLine.FindAllSubmatch(out, -1) {
		name, value := string(m[1]), string(m[2])
		if err := store.Set(name, value); err != nil {
			return diff, fmt.Errorf("envimport: failed to set %s: %w", name, err)
		}
		diff.Applied++
		dumped[name] = struct{}{}

		// The dump may repeat a name; the last occurrence decides
		// which bucket it lands in.
		prev, had := before[name]
		switch {
		case !had:
			diff.Added[name] = value
		case prev != value:
			diff.Changed[name] = value
		default:
			delete(diff.Added, name)
			delete(diff.Changed, name)
		}
	}

	for name := range before {
		if _, ok := dumped[name]; !ok {
			diff.Removed = append(diff.Removed, name)
		}
	}
	sort.Strings(diff.Removed)

	logger.Debug("imported environment",
		zap.Int("applied", diff.Applied),
		zap.Int("added", len(diff.Added)),
		zap.Int("changed", len(diff.Changed)),
		zap.Int("removed", len(diff.Removed)))

	return diff, nil
}

func (imp *Importer) store() Store {
	if imp.Store != nil {
		return imp.Store
	}
	return ProcessStore{}
}

func (imp *Importer) runner() Runner {
	if imp.Runner != nil {
		return imp.Runner
	}
	return execRunner{}
}

func (imp *Importer) shell() *Shell {
	if imp.Shell != nil {
		return imp.Shell
	}
	return DefaultShell()
}

func (imp *Importer) logger() *zap.Logger {
	if imp.Logger != nil {
		return imp.Logger
	}
	return zap.NewNop()
}
