package msvc

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/rmocanu/vcenv/pkg/envimport"
)

// Arch is a canonical processor architecture token, spelled the way
// vcvarsall.bat expects it.
type Arch string

const (
	ArchX86   Arch = "x86"
	ArchAMD64 Arch = "amd64"
	ArchARM   Arch = "arm"
	ArchARM64 Arch = "arm64"
)

// archAliases maps lower-cased selector spellings to canonical tokens.
// The 64-bit spellings accumulated over the years; all of them resolve
// to amd64.
var archAliases = map[string]Arch{
	"x86":     ArchX86,
	"i386":    ArchX86,
	"amd64":   ArchAMD64,
	"x64":     ArchAMD64,
	"win64":   ArchAMD64,
	"x86_64":  ArchAMD64,
	"arm":     ArchARM,
	"arm64":   ArchARM64,
	"aarch64": ArchARM64,
}

// ParseArch resolves an architecture selector to its canonical token.
// Selectors are matched case-insensitively.
func ParseArch(selector string) (Arch, error) {
	arch, ok := archAliases[strings.ToLower(selector)]
	if !ok {
		return "", fmt.Errorf("msvc: %w %q", ErrUnknownArch, selector)
	}
	return arch, nil
}

// platformArg builds the token vcvarsall.bat takes: the bare
// architecture for native builds, host_target for cross builds.
func platformArg(host, target Arch) string {
	if host == target {
		return string(host)
	}
	return string(host) + "_" + string(target)
}

// nativeArch is the default when no selector is supplied: the 64-bit
// token when the machine is 64-bit, x86 otherwise. A 32-bit process on
// 64-bit Windows reports a 32-bit GOARCH but sees
// PROCESSOR_ARCHITEW6432, so the store is consulted too.
func nativeArch(env envimport.Store) Arch {
	switch runtime.GOARCH {
	case "amd64":
		return ArchAMD64
	case "arm64":
		return ArchARM64
	}
	if wide := env.Get("PROCESSOR_ARCHITEW6432"); wide != "" {
		if arch, err := ParseArch(wide); err == nil {
			return arch
		}
		return ArchAMD64
	}
	return ArchX86
}
