// Package types defines the records eriksync keeps in its registry:
// Node (a remote host reachable over ssh) and Target (a directory
// mirrored between the local host and a node), plus the Direction of
// a synchronization.
//
// Both records are identified by name alone. Equality and ordering
// only look at Name, so two nodes with the same name and different
// descriptions are considered the same node.
package types
