package msvc

import "path/filepath"

// release pairs one Visual Studio release year with the environment
// variable that marks its installation.
type release struct {
	version string
	envVar  string
}

// comnToolsReleases is the fixed set of releases discoverable through
// VS*COMNTOOLS variables, newest first, so unversioned resolution picks
// the most recent installation. Releases after 2015 dropped these
// variables and are found through registered Locators instead.
var comnToolsReleases = []release{
	{"2015", "VS140COMNTOOLS"},
	{"2013", "VS120COMNTOOLS"},
	{"2012", "VS110COMNTOOLS"},
	{"2010", "VS100COMNTOOLS"},
	{"2008", "VS90COMNTOOLS"},
	{"2005", "VS80COMNTOOLS"},
}

func comnToolsVar(version string) (string, bool) {
	for _, r := range comnToolsReleases {
		if r.version == version {
			return r.envVar, true
		}
	}
	return "", false
}

// legacySetupScript resolves vcvarsall.bat from a VS*COMNTOOLS root,
// which points at Common7\Tools, two levels above the VC directory.
func legacySetupScript(root string) string {
	return filepath.Join(root, "..", "..", "VC", "vcvarsall.bat")
}

// modernSetupScript resolves vcvarsall.bat from a 2017+ installation
// root, where it moved under VC\Auxiliary\Build.
func modernSetupScript(root string) string {
	return filepath.Join(root, "VC", "Auxiliary", "Build", "vcvarsall.bat")
}
