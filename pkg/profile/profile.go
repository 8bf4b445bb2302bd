/*
Package profile names user-defined environment setup scripts, so they
can be imported without spelling out paths and arguments every time.

Profiles live in vcenv/profiles.yaml under the user configuration
directory:

	profiles:
	  - name: embedded
	    script: /opt/embedded/envsetup.sh
	    args: ["arm-none-eabi"]
*/
package profile

import (
	"fmt"
	"os"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// ConfigPath is the location of the profiles file, relative to the user
// configuration directory.
const ConfigPath = "vcenv/profiles.yaml"

// A Profile names one setup script and the arguments to pass it.
type Profile struct {
	Name   string   `yaml:"name"`
	Script string   `yaml:"script"`
	Args   []string `yaml:"args,omitempty"`
}

// Load reads the profiles file from the user configuration directory.
// A missing file is not an error; it just yields no profiles.
func Load() ([]Profile, error) {
	path, err := xdg.SearchConfigFile(ConfigPath)
	if err != nil {
		return nil, nil
	}
	return LoadFile(path)
}

// LoadFile reads and validates a profiles file.
func LoadFile(path string) ([]Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("profile: %w", err)
	}

	var file struct {
		Profiles []Profile `yaml:"profiles"`
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("profile: failed to parse %s: %w", path, err)
	}

	seen := make(map[string]struct{}, len(file.Profiles))
	for _, p := range file.Profiles {
		if p.Name == "" {
			return nil, fmt.Errorf("profile: %s: profile without a name", path)
		}
		if p.Script == "" {
			return nil, fmt.Errorf("profile: %s: profile %q has no script", path, p.Name)
		}
		if _, ok := seen[p.Name]; ok {
			return nil, fmt.Errorf("profile: %s: duplicate profile %q", path, p.Name)
		}
		seen[p.Name] = struct{}{}
	}
	return file.Profiles, nil
}

// Find returns the named profile from the list.
func Find(profiles []Profile, name string) (Profile, bool) {
	for _, p := range profiles {
		if p.Name == name {
			return p, true
		}
	}
	return Profile{}, false
}
