package main

import (
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rmocanu/vcenv/pkg/envimport"
)

func TestWriteDiff(t *testing.T) {
	t.Parallel()

	diff := &envimport.Diff{
		Added: map[string]string{
			"INCLUDE": `C:\VC\include`,
			"EMPTY":   "",
		},
		Changed: map[string]string{
			"PATH": `C:\VC\bin;C:\Windows`,
		},
		Removed: []string{"GONE"},
	}

	type test struct {
		name   string
		format string
		want   string
	}

	tests := []test{
		{
			name:   "sh",
			format: "sh",
			want: "export EMPTY=''\n" +
				`export INCLUDE='C:\VC\include'` + "\n" +
				`export PATH='C:\VC\bin;C:\Windows'` + "\n",
		},
		{
			name:   "cmd",
			format: "cmd",
			want: "set EMPTY=\n" +
				`set INCLUDE=C:\VC\include` + "\n" +
				`set PATH=C:\VC\bin;C:\Windows` + "\n",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var b strings.Builder
			require.NoError(t, writeDiff(&b, diff, tc.format))
			require.Equal(t, tc.want, b.String())
		})
	}
}

func TestWriteDiff_JSON(t *testing.T) {
	t.Parallel()

	diff := &envimport.Diff{
		Added:   map[string]string{"A": "1"},
		Changed: map[string]string{"B": "two three"},
	}

	var b strings.Builder
	require.NoError(t, writeDiff(&b, diff, "json"))
	require.JSONEq(t, `{"A": "1", "B": "two three"}`, b.String())
}

func TestWriteDiff_UnknownFormat(t *testing.T) {
	t.Parallel()

	var b strings.Builder
	err := writeDiff(&b, &envimport.Diff{}, "powershell")
	require.ErrorContains(t, err, "unknown format")
}

func TestCheckFormat(t *testing.T) {
	t.Parallel()

	for _, format := range []string{formatSh, formatCmd, formatJSON} {
		require.NoError(t, checkFormat(format))
	}
	require.ErrorContains(t, checkFormat("powershell"), "unknown format")
	require.ErrorContains(t, checkFormat(""), "unknown format")
}

func TestImportCommand_ChecksFormatBeforeImporting(t *testing.T) {
	t.Parallel()

	// The script does not exist. If the command reached the subordinate
	// shell, the error would say so instead of naming the flag.
	script := filepath.Join(t.TempDir(), "missing.sh")

	root := newRootCommand()
	root.SetArgs([]string{"import", script, "--format", "powershell"})
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)

	err := root.Execute()
	require.ErrorContains(t, err, `unknown format "powershell"`)
}
