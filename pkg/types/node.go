package types

import "strings"

// Node is a remote synchronization endpoint. Name doubles as the ssh host
// alias handed to rsync.
type Node struct {
	Name        string `json:"-" yaml:"-" toml:"-"`
	Description string `json:"description" yaml:"description" toml:"description"`
}

// NewNode creates a node with an empty description
func NewNode(name string) Node {
	return Node{Name: name}
}

// WithDescription returns a copy of the node with the given description
func (n Node) WithDescription(description string) Node {
	n.Description = description
	return n
}

// Equal reports whether both nodes share the same name
func (n Node) Equal(other Node) bool {
	return n.Name == other.Name
}

// CompareNodes orders nodes by name, for use with slices.SortFunc
func CompareNodes(a, b Node) int {
	return strings.Compare(a.Name, b.Name)
}
