package types

import "strings"

// Target is a directory kept in sync. Path may start with "~" and is
// assumed to exist at the same location on both hosts.
type Target struct {
	Name string `json:"-" yaml:"-" toml:"-"`
	Path string `json:"path" yaml:"path" toml:"path"`
}

// NewTarget creates a target
func NewTarget(name, path string) Target {
	return Target{Name: name, Path: path}
}

// Equal reports whether both targets share the same name
func (t Target) Equal(other Target) bool {
	return t.Name == other.Name
}

// CompareTargets orders targets by name, for use with slices.SortFunc
func CompareTargets(a, b Target) int {
	return strings.Compare(a.Name, b.Name)
}
