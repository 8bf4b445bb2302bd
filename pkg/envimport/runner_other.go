//go:build !windows

package envimport

import "os/exec"

// prepareShell is a no-op outside Windows; POSIX shells receive the
// composite line as a regular argument.
func prepareShell(*exec.Cmd, []string) {}
