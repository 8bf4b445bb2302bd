//go:build windows

package envimport

import (
	"os/exec"
	"path/filepath"
	"strings"
	"syscall"
)

// prepareShell bypasses the default argument escaping when the
// subordinate shell is cmd.exe. Go escapes quotes the CRT way, which
// cmd.exe does not understand; the composite line has to reach it
// verbatim, wrapped in the one pair of quotes that /s strips.
func prepareShell(cmd *exec.Cmd, args []string) {
	if len(args) == 0 {
		return
	}
	base := strings.ToLower(filepath.Base(cmd.Path))
	if base != "cmd.exe" && base != "cmd" {
		return
	}

	var b strings.Builder
	b.WriteString(syscall.EscapeArg(cmd.Path))
	for _, arg := range args[:len(args)-1] {
		b.WriteByte(' ')
		b.WriteString(arg)
	}
	b.WriteString(` "`)
	b.WriteString(args[len(args)-1])
	b.WriteString(`"`)
	cmd.SysProcAttr = &syscall.SysProcAttr{CmdLine: b.String()}
}
