package msvc

import (
	"fmt"
	"sync"
)

// A Locator resolves installation roots for releases outside the
// VS*COMNTOOLS generation. Implementations register themselves, usually
// from an init function, and are consulted in registration order.
type Locator interface {
	// Versions lists the release years this locator can resolve,
	// newest first.
	Versions() []string
	// Locate returns the installation root for the given release
	// year, or an error when that release is not installed.
	Locate(version string) (string, error)
}

var (
	locators      = map[string]Locator{}
	locatorNames  []string // provide ordered iteration for the map
	locatorsMutex sync.RWMutex
)

// RegisterLocator makes a locator available under the given name.
// If a locator with the same name is already registered or the provided
// locator is nil, this function panics.
func RegisterLocator(name string, locator Locator) {
	locatorsMutex.Lock()
	defer locatorsMutex.Unlock()

	if locators[name] != nil {
		panic(fmt.Sprintf("msvc: locator %q is already registered", name))
	}

	if locator == nil {
		panic(fmt.Sprintf("msvc: locator provided for %q is nil", name))
	}

	locators[name] = locator
	locatorNames = append(locatorNames, name)
}

func registeredLocators() []Locator {
	locatorsMutex.RLock()
	defer locatorsMutex.RUnlock()

	out := make([]Locator, 0, len(locatorNames))
	for _, name := range locatorNames {
		out = append(out, locators[name])
	}
	return out
}
