// Package registry holds the set of nodes and targets eriksync knows about
// and persists it to a single YAML, JSON or TOML file.
//
// Records are keyed by name. Adding a record whose name already exists
// replaces it; removing an unknown name does nothing. Every listing is
// sorted by name so that CLI output and saved files are reproducible.
//
// On disk the name is carried by the map key only:
//
//	nodes:
//	  vm1:
//	    description: lab machine
//	targets:
//	  docs:
//	    path: ~/docs
package registry
