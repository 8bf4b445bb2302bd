package envimport

import (
	"os"
	"runtime"
	"strings"
)

// A Shell describes the subordinate command interpreter an import runs
// under and how to phrase the composite "run, discard output, dump
// environment" line for it.
type Shell struct {
	// Path is the interpreter executable.
	Path string
	// Args precede the composite line, e.g. "/c" for cmd.exe.
	Args []string
	// Source prefixes the target command so it runs inside the
	// interpreter itself rather than as a child process. cmd.exe runs
	// batch files in-process already; POSIX shells need dot-sourcing,
	// or the command's exports would die with its subshell. Sourcing
	// shells receive arguments as positional parameters, not operands.
	Source string
	// NullSink is where the target command's own output is discarded.
	NullSink string
	// DumpCmd prints every environment variable as name=value lines.
	DumpCmd string

	// special lists the characters that force an argument into quotes.
	special string
	// quote wraps a string in the shell's quoting syntax.
	quote func(string) string
}

// CmdShell phrases composite lines for the Windows command interpreter.
var CmdShell = &Shell{
	Path:     "cmd.exe",
	Args:     []string{"/s", "/c"},
	NullSink: "nul",
	DumpCmd:  "set",
	special:  " \t;,=&|<>()^\"%!",
	quote:    quoteCmd,
}

// POSIXShell phrases composite lines for a Bourne-compatible shell.
var POSIXShell = &Shell{
	Path:     "/bin/sh",
	Args:     []string{"-c"},
	Source:   ". ",
	NullSink: "/dev/null",
	DumpCmd:  "env",
	special:  " \t\n\"'`$&|;<>(){}*?[]#~\\",
	quote:    quotePOSIX,
}

// DefaultShell returns the shell of the running platform.
func DefaultShell() *Shell {
	if runtime.GOOS == "windows" {
		return CmdShell
	}
	return POSIXShell
}

// Compose builds the composite line for one import: the target command
// with its arguments, the command's own output discarded into the null
// sink, then the environment dump. Discarding the command's output keeps
// the dump the only thing on the captured stream, which is the contract
// the parser relies on.
func (sh *Shell) Compose(command string, args ...string) string {
	var b strings.Builder
	if sh.Source != "" && len(args) > 0 {
		// dash drops operands after a sourced filename, so arguments
		// travel as positional parameters, which sourcing inherits.
		b.WriteString("set --")
		for _, arg := range args {
			b.WriteByte(' ')
			b.WriteString(sh.quoteArg(arg))
		}
		b.WriteString("; ")
		args = nil
	}
	b.WriteString(sh.Source)
	b.WriteString(sh.quoteCommand(command))
	for _, arg := range args {
		b.WriteByte(' ')
		b.WriteString(sh.quoteArg(arg))
	}
	b.WriteString(" > ")
	b.WriteString(sh.NullSink)
	b.WriteString(" && ")
	b.WriteString(sh.DumpCmd)
	return b.String()
}

// Quote wraps s in the shell's quoting syntax unconditionally, escaping
// any embedded quote characters.
func (sh *Shell) Quote(s string) string {
	return sh.quote(s)
}

// quoteCommand quotes the command token whenever it names an existing
// file, so script paths with embedded spaces stay a single token even
// when the caller did not quote them.
func (sh *Shell) quoteCommand(command string) string {
	if _, err := os.Stat(command); err == nil {
		return sh.quote(command)
	}
	return sh.quoteArg(command)
}

// quoteArg quotes an argument only when the shell would otherwise split
// or interpret it.
func (sh *Shell) quoteArg(arg string) string {
	if arg != "" && !strings.ContainsAny(arg, sh.special) {
		return arg
	}
	return sh.quote(arg)
}

func quotePOSIX(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

func quoteCmd(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
