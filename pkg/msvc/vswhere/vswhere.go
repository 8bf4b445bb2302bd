/*
Package vswhere locates Visual Studio 2017 and later through the
vswhere utility that ships with the Visual Studio Installer.

Importing the package registers the locator:

	import _ "github.com/rmocanu/vcenv/pkg/msvc/vswhere"
*/
package vswhere

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/rmocanu/vcenv/pkg/msvc"
)

func init() {
	msvc.RegisterLocator("vswhere", &Locator{})
}

// vcToolsComponent is the workload component whose presence makes an
// installation a usable C++ toolchain.
const vcToolsComponent = "Microsoft.VisualStudio.Component.VC.Tools.x86.x64"

// releaseRanges maps release years to vswhere version ranges, newest
// first.
var releaseRanges = []struct {
	version string
	span    string
}{
	{"2022", "[17.0,18.0)"},
	{"2019", "[16.0,17.0)"},
	{"2017", "[15.0,16.0)"},
}

// A Locator finds modern Visual Studio installations by running
// vswhere. The zero value looks for the executable in the Visual Studio
// Installer directory, then on PATH.
type Locator struct {
	// Path optionally pins the vswhere executable.
	Path string
}

var _ msvc.Locator = (*Locator)(nil)

func (l *Locator) Versions() []string {
	versions := make([]string, 0, len(releaseRanges))
	for _, r := range releaseRanges {
		versions = append(versions, r.version)
	}
	return versions
}

func (l *Locator) Locate(version string) (string, error) {
	var span string
	for _, r := range releaseRanges {
		if r.version == version {
			span = r.span
			break
		}
	}
	if span == "" {
		return "", fmt.Errorf("vswhere: unsupported release %q", version)
	}

	path, err := l.executable()
	if err != nil {
		return "", fmt.Errorf("vswhere: %w", err)
	}

	out, err := exec.CommandContext(context.Background(), path,
		"-products", "*",
		"-requires", vcToolsComponent,
		"-version", span,
		"-property", "installationPath",
		"-nologo", "-utf8").Output()
	if err != nil {
		return "", fmt.Errorf("vswhere: failed to run %s: %w", path, err)
	}

	root := firstLine(out)
	if root == "" {
		return "", fmt.Errorf("vswhere: no installation for %s", version)
	}
	return root, nil
}

// executable finds vswhere.exe. It lives in a fixed location under the
// Visual Studio Installer, which is not on PATH, so that directory is
// tried before falling back to a PATH lookup.
func (l *Locator) executable() (string, error) {
	if l.Path != "" {
		return l.Path, nil
	}
	for _, programFiles := range []string{os.Getenv("ProgramFiles(x86)"), os.Getenv("ProgramFiles")} {
		if programFiles == "" {
			continue
		}
		candidate := filepath.Join(programFiles, "Microsoft Visual Studio", "Installer", "vswhere.exe")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}
	return exec.LookPath("vswhere")
}

// firstLine returns the first line of out, trimmed. vswhere prints one
// installation path per line, newest version first.
func firstLine(out []byte) string {
	if i := bytes.IndexAny(out, "\r\n"); i >= 0 {
		out = out[:i]
	}
	return string(bytes.TrimSpace(out))
}
