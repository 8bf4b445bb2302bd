/*
Package msvc resolves installed Microsoft Visual C++ toolchains and
imports the environment their vcvarsall.bat setup script produces.

Releases up to 2015 are found through their VS*COMNTOOLS environment
variables. Later releases dropped those variables, so anything else is
resolved through registered Locators; import a locator package for its
side effects to enable it:

	import _ "github.com/rmocanu/vcenv/pkg/msvc/vswhere"
*/
package msvc

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/rmocanu/vcenv/pkg/envimport"
)

// Resolution failures, distinguished so callers can fall back.
var (
	ErrUnknownVersion = errors.New("unknown toolchain version")
	ErrUnknownArch    = errors.New("unknown architecture")
	ErrNoInstallation = errors.New("no installation found")
	ErrScriptMissing  = errors.New("setup script missing")
)

// A Selector names the toolchain to resolve. The zero value means the
// newest installed release for the native architecture.
type Selector struct {
	// Version is a release year such as "2015". Empty selects the
	// newest installed release.
	Version string
	// Host and Target pick the cross-compilation pair. They accept
	// canonical tokens and aliases such as "x64" or "Win64". When only
	// one is given the other mirrors it; when neither is, both default
	// to the native width of the machine.
	Host   string
	Target string
}

// A Toolchain is a resolved installation: where its setup script lives
// and which platform argument to pass it.
type Toolchain struct {
	Version     string
	Root        string
	SetupScript string
	PlatformArg string
}

// A Resolver locates installed toolchains. The zero value reads the
// live process environment; all fields are optional.
type Resolver struct {
	// Env is consulted for VS*COMNTOOLS variables and for native
	// width detection. Defaults to the live process environment.
	Env envimport.Store
	// Stat checks that setup scripts exist. Defaults to os.Stat.
	Stat func(name string) (fs.FileInfo, error)
	// Logger receives debug output. Defaults to a no-op logger.
	Logger *zap.Logger
}

// Resolve maps a selector to an installed toolchain. It fails when the
// release is unknown or not installed, when an architecture selector
// does not parse, or when the installation lacks its setup script.
// Resolve never runs the script; callers chain to Import once they are
// happy with the result.
func (r *Resolver) Resolve(sel Selector) (*Toolchain, error) {
	platform, err := r.resolvePlatformArg(sel.Host, sel.Target)
	if err != nil {
		return nil, err
	}

	var tc *Toolchain
	if sel.Version == "" {
		tc, err = r.newestInstalled()
	} else {
		tc, err = r.resolveVersion(sel.Version)
	}
	if err != nil {
		return nil, err
	}
	tc.PlatformArg = platform

	if _, err := r.stat()(tc.SetupScript); err != nil {
		return nil, fmt.Errorf("msvc: %w: %s", ErrScriptMissing, tc.SetupScript)
	}

	r.logger().Debug("resolved toolchain",
		zap.String("version", tc.Version),
		zap.String("script", tc.SetupScript),
		zap.String("platform", tc.PlatformArg))
	return tc, nil
}

// Import resolves the selector and imports the environment its setup
// script produces into the importer's store. A nil importer imports
// into the live process environment.
func (r *Resolver) Import(ctx context.Context, imp *envimport.Importer, sel Selector) (*envimport.Diff, error) {
	tc, err := r.Resolve(sel)
	if err != nil {
		return nil, err
	}
	if imp == nil {
		imp = &envimport.Importer{Logger: r.Logger}
	}
	return imp.Import(ctx, tc.SetupScript, tc.PlatformArg)
}

// Installed probes every known release and returns the ones that
// resolve, newest generation first. Probes only read the environment
// and the filesystem, so they run concurrently.
func (r *Resolver) Installed() []Toolchain {
	var versions []string
	seen := map[string]struct{}{}
	add := func(version string) {
		if _, ok := seen[version]; ok {
			return
		}
		seen[version] = struct{}{}
		versions = append(versions, version)
	}
	for _, loc := range registeredLocators() {
		for _, version := range loc.Versions() {
			add(version)
		}
	}
	for _, rel := range comnToolsReleases {
		add(rel.version)
	}

	results := make([]*Toolchain, len(versions))
	var g errgroup.Group
	for i, version := range versions {
		i, version := i, version
		g.Go(func() error {
			if tc, err := r.Resolve(Selector{Version: version}); err == nil {
				results[i] = tc
			}
			return nil
		})
	}
	_ = g.Wait()

	installed := make([]Toolchain, 0, len(results))
	for _, tc := range results {
		if tc != nil {
			installed = append(installed, *tc)
		}
	}
	return installed
}

func (r *Resolver) resolveVersion(version string) (*Toolchain, error) {
	if envVar, ok := comnToolsVar(version); ok {
		root := r.env().Get(envVar)
		if root == "" {
			return nil, fmt.Errorf("msvc: %w %q: %s is unset", ErrUnknownVersion, version, envVar)
		}
		return &Toolchain{
			Version:     version,
			Root:        root,
			SetupScript: legacySetupScript(root),
		}, nil
	}

	registered := registeredLocators()
	for _, loc := range registered {
		for _, v := range loc.Versions() {
			if v != version {
				continue
			}
			root, err := loc.Locate(version)
			if err != nil {
				return nil, fmt.Errorf("msvc: %w %q: %w", ErrUnknownVersion, version, err)
			}
			return &Toolchain{
				Version:     version,
				Root:        root,
				SetupScript: modernSetupScript(root),
			}, nil
		}
	}
	if len(registered) == 0 {
		return nil, fmt.Errorf("msvc: %w %q, no locators registered, forgotten import?", ErrUnknownVersion, version)
	}
	return nil, fmt.Errorf("msvc: %w %q", ErrUnknownVersion, version)
}

func (r *Resolver) newestInstalled() (*Toolchain, error) {
	for _, loc := range registeredLocators() {
		for _, version := range loc.Versions() {
			root, err := loc.Locate(version)
			if err != nil {
				continue
			}
			return &Toolchain{
				Version:     version,
				Root:        root,
				SetupScript: modernSetupScript(root),
			}, nil
		}
	}
	for _, rel := range comnToolsReleases {
		if root := r.env().Get(rel.envVar); root != "" {
			return &Toolchain{
				Version:     rel.version,
				Root:        root,
				SetupScript: legacySetupScript(root),
			}, nil
		}
	}
	return nil, fmt.Errorf("msvc: %w", ErrNoInstallation)
}

// resolvePlatformArg turns the host and target selectors into the
// argument vcvarsall.bat takes. A single selector acts as a combined
// one, so asking for just "x64" builds natively for amd64.
func (r *Resolver) resolvePlatformArg(host, target string) (string, error) {
	var h, t Arch
	var err error
	switch {
	case host == "" && target == "":
		native := nativeArch(r.env())
		h, t = native, native
	case host == "":
		if t, err = ParseArch(target); err != nil {
			return "", err
		}
		h = t
	case target == "":
		if h, err = ParseArch(host); err != nil {
			return "", err
		}
		t = h
	default:
		if h, err = ParseArch(host); err != nil {
			return "", err
		}
		if t, err = ParseArch(target); err != nil {
			return "", err
		}
	}
	return platformArg(h, t), nil
}

func (r *Resolver) env() envimport.Store {
	if r.Env != nil {
		return r.Env
	}
	return envimport.ProcessStore{}
}

func (r *Resolver) stat() func(name string) (fs.FileInfo, error) {
	if r.Stat != nil {
		return r.Stat
	}
	return os.Stat
}

func (r *Resolver) logger() *zap.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return zap.NewNop()
}
