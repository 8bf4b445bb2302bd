package envimport

import "sort"

// A Diff reports the outcome of one import relative to the snapshot
// taken just before the subordinate shell ran.
type Diff struct {
	// Added holds variables the dump introduced.
	Added map[string]string
	// Changed holds variables whose dumped value differs from the
	// snapshot.
	Changed map[string]string
	// Removed lists names present in the snapshot but absent from the
	// dump, sorted. They are reported only; the store never unsets
	// them.
	Removed []string
	// Applied counts every variable written to the store, unchanged
	// overwrites included.
	Applied int
}

// Vars merges Added and Changed: everything a caller needs to replay
// this import in another environment.
func (d *Diff) Vars() map[string]string {
	vars := make(map[string]string, len(d.Added)+len(d.Changed))
	for name, value := range d.Added {
		vars[name] = value
	}
	for name, value := range d.Changed {
		vars[name] = value
	}
	return vars
}

// Names returns the names of Added and Changed, sorted.
func (d *Diff) Names() []string {
	names := make([]string, 0, len(d.Added)+len(d.Changed))
	for name := range d.Added {
		names = append(names, name)
	}
	for name := range d.Changed {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
