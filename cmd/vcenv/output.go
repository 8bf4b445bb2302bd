package main

import (
	"encoding/json"
	"fmt"
	"io"
	"runtime"

	"github.com/rmocanu/vcenv/pkg/envimport"
)

// Output formats for the imported variables. sh suits eval in POSIX
// shells, cmd suits cmd.exe, json suits other tooling.
const (
	formatSh   = "sh"
	formatCmd  = "cmd"
	formatJSON = "json"
)

func defaultFormat() string {
	if runtime.GOOS == "windows" {
		return formatCmd
	}
	return formatSh
}

// checkFormat validates a --format value. Commands check the flag before
// importing; writeDiff only runs afterwards, too late for a flag error.
func checkFormat(format string) error {
	switch format {
	case formatSh, formatCmd, formatJSON:
		return nil
	}
	return fmt.Errorf("unknown format %q", format)
}

// writeDiff prints the added and changed variables of a diff, sorted by
// name. Removed variables are never printed as assignments; evaluating
// the output must only ever extend an environment.
func writeDiff(w io.Writer, diff *envimport.Diff, format string) error {
	vars := diff.Vars()
	switch format {
	case formatSh:
		for _, name := range diff.Names() {
			fmt.Fprintf(w, "export %s=%s\n", name, envimport.POSIXShell.Quote(vars[name]))
		}
	case formatCmd:
		// set takes the rest of the line verbatim, quotes included.
		for _, name := range diff.Names() {
			fmt.Fprintf(w, "set %s=%s\n", name, vars[name])
		}
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(vars)
	default:
		return checkFormat(format)
	}
	return nil
}
