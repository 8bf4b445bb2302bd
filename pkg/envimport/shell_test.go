package envimport_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rmocanu/vcenv/pkg/envimport"
)

func TestShell_Compose(t *testing.T) {
	t.Parallel()

	type test struct {
		name    string
		shell   *envimport.Shell
		command string
		args    []string
		want    string
	}

	tests := []test{
		{
			name:    "posix no arguments",
			shell:   envimport.POSIXShell,
			command: "setup.sh",
			want:    ". setup.sh > /dev/null && env",
		},
		{
			name:    "posix plain",
			shell:   envimport.POSIXShell,
			command: "vcvarsall.bat",
			args:    []string{"x86"},
			want:    "set -- x86; . vcvarsall.bat > /dev/null && env",
		},
		{
			name:    "posix argument with space",
			shell:   envimport.POSIXShell,
			command: "setup.sh",
			args:    []string{"8.1 SDK"},
			want:    "set -- '8.1 SDK'; . setup.sh > /dev/null && env",
		},
		{
			name:    "posix argument with quote",
			shell:   envimport.POSIXShell,
			command: "setup.sh",
			args:    []string{"don't"},
			want:    `set -- 'don'\''t'; . setup.sh > /dev/null && env`,
		},
		{
			name:    "posix empty argument",
			shell:   envimport.POSIXShell,
			command: "setup.sh",
			args:    []string{""},
			want:    "set -- ''; . setup.sh > /dev/null && env",
		},
		{
			name:    "posix multiple arguments",
			shell:   envimport.POSIXShell,
			command: "setup.sh",
			args:    []string{"x86", "8.1 SDK"},
			want:    "set -- x86 '8.1 SDK'; . setup.sh > /dev/null && env",
		},
		{
			name:    "cmd plain",
			shell:   envimport.CmdShell,
			command: "vcvarsall.bat",
			args:    []string{"amd64"},
			want:    "vcvarsall.bat amd64 > nul && set",
		},
		{
			name:    "cmd argument with space",
			shell:   envimport.CmdShell,
			command: "vcvarsall.bat",
			args:    []string{"x86_amd64", "10.0 SDK"},
			want:    `vcvarsall.bat x86_amd64 "10.0 SDK" > nul && set`,
		},
		{
			name:    "cmd argument with embedded quote",
			shell:   envimport.CmdShell,
			command: "setup.bat",
			args:    []string{`say "hi"`},
			want:    `setup.bat "say ""hi""" > nul && set`,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, tc.shell.Compose(tc.command, tc.args...))
		})
	}
}

func TestShell_ComposeQuotesExistingCommand(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	script := filepath.Join(dir, "plain.sh")
	require.NoError(t, os.WriteFile(script, []byte("#!/bin/sh\n"), 0o755))

	// Even a path that needs no quoting is quoted once it is known to
	// name a real file.
	want := ". '" + script + "' > /dev/null && env"
	require.Equal(t, want, envimport.POSIXShell.Compose(script))
}

func TestShell_Quote(t *testing.T) {
	t.Parallel()

	require.Equal(t, `'a b'`, envimport.POSIXShell.Quote("a b"))
	require.Equal(t, `'it'\''s'`, envimport.POSIXShell.Quote("it's"))
	require.Equal(t, `"a b"`, envimport.CmdShell.Quote("a b"))
	require.Equal(t, `"a ""b"""`, envimport.CmdShell.Quote(`a "b"`))
}

func TestDefaultShell(t *testing.T) {
	t.Parallel()

	if runtime.GOOS == "windows" {
		require.Same(t, envimport.CmdShell, envimport.DefaultShell())
	} else {
		require.Same(t, envimport.POSIXShell, envimport.DefaultShell())
	}
}
