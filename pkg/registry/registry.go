package registry

import (
	"github.com/arthur-debert/eriksync/pkg/types"
)

// Registry stores nodes and targets by name
type Registry struct {
	nodes   *Index[types.Node]
	targets *Index[types.Target]
}

// New creates an empty Registry
func New() *Registry {
	return &Registry{
		nodes:   NewIndex[types.Node](),
		targets: NewIndex[types.Target](),
	}
}

// AddNode inserts node, replacing any node with the same name
func (r *Registry) AddNode(node types.Node) {
	r.nodes.Put(node.Name, node)
}

// AddNodes adds every node in order; later duplicates win
func (r *Registry) AddNodes(nodes []types.Node) {
	for _, n := range nodes {
		r.AddNode(n)
	}
}

// AddTarget inserts target, replacing any target with the same name
func (r *Registry) AddTarget(target types.Target) {
	r.targets.Put(target.Name, target)
}

// AddTargets adds every target in order; later duplicates win
func (r *Registry) AddTargets(targets []types.Target) {
	for _, t := range targets {
		r.AddTarget(t)
	}
}

// RemoveNode deletes the named node. Unknown names are ignored.
func (r *Registry) RemoveNode(name string) {
	r.nodes.Remove(name)
}

// RemoveNodes deletes every named node
func (r *Registry) RemoveNodes(names []string) {
	for _, n := range names {
		r.RemoveNode(n)
	}
}

// RemoveTarget deletes the named target. Unknown names are ignored.
func (r *Registry) RemoveTarget(name string) {
	r.targets.Remove(name)
}

// RemoveTargets deletes every named target
func (r *Registry) RemoveTargets(names []string) {
	for _, n := range names {
		r.RemoveTarget(n)
	}
}

// Nodes returns all nodes sorted by name
func (r *Registry) Nodes() []types.Node {
	return r.nodes.Values()
}

// NodeNames returns all node names sorted
func (r *Registry) NodeNames() []string {
	return r.nodes.Names()
}

// Targets returns all targets sorted by name
func (r *Registry) Targets() []types.Target {
	return r.targets.Values()
}

// TargetNames returns all target names sorted
func (r *Registry) TargetNames() []string {
	return r.targets.Names()
}

// GetNode looks up a node by name
func (r *Registry) GetNode(name string) (types.Node, bool) {
	return r.nodes.Get(name)
}

// GetTarget looks up a target by name
func (r *Registry) GetTarget(name string) (types.Target, bool) {
	return r.targets.Get(name)
}

// ContainsNode reports whether a node with that name exists
func (r *Registry) ContainsNode(name string) bool {
	return r.nodes.Has(name)
}

// ContainsTarget reports whether a target with that name exists
func (r *Registry) ContainsTarget(name string) bool {
	return r.targets.Has(name)
}
