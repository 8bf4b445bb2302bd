package envimport

import (
	"os"
	"sort"
	"strings"
	"sync"
)

// A Store is the environment-variable space an import operates on.
// Implementations must tolerate Set overwriting existing variables;
// nothing ever removes a variable through this interface.
type Store interface {
	// Get returns the value of the named variable, or the empty string
	// if it is not present.
	Get(name string) string
	// Set assigns the named variable, overwriting any previous value.
	Set(name, value string) error
	// Environ lists every variable as a "name=value" pair.
	Environ() []string
}

// ProcessStore is the live environment of the current process. Variables
// written to it persist for the lifetime of the process and are inherited
// by its children; there is no teardown.
type ProcessStore struct{}

var _ Store = ProcessStore{}

func (ProcessStore) Get(name string) string       { return os.Getenv(name) }
func (ProcessStore) Set(name, value string) error { return os.Setenv(name, value) }
func (ProcessStore) Environ() []string            { return os.Environ() }

// MapStore is an in-memory Store, safe for concurrent use. It is meant
// for tests and dry runs, where mutating the process environment is
// undesirable. The zero value is an empty store ready to use.
type MapStore struct {
	mu    sync.RWMutex
	items map[string]string
}

var _ Store = (*MapStore)(nil)

// NewMapStore returns a MapStore seeded with a copy of the given
// variables. The initial map may be nil.
func NewMapStore(initial map[string]string) *MapStore {
	items := make(map[string]string, len(initial))
	for name, value := range initial {
		items[name] = value
	}
	return &MapStore{items: items}
}

func (s *MapStore) Get(name string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.items[name]
}

func (s *MapStore) Set(name, value string) error {
	s.mu.Lock()
	if s.items == nil {
		s.items = make(map[string]string)
	}
	s.items[name] = value
	s.mu.Unlock()
	return nil
}

// Environ lists the store's variables sorted by name, so output derived
// from it is deterministic.
func (s *MapStore) Environ() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, 0, len(s.items))
	for name, value := range s.items {
		out = append(out, name+"="+value)
	}
	sort.Strings(out)
	return out
}

// A Snapshot holds the variables visible in a Store at a point in time.
// It exists only for the duration of one import.
type Snapshot map[string]string

// Capture snapshots every variable currently in the store.
func Capture(s Store) Snapshot {
	environ := s.Environ()
	snap := make(Snapshot, len(environ))
	for _, kv := range environ {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || name == "" {
			continue
		}
		snap[name] = value
	}
	return snap
}
