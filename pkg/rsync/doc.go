// Package rsync compiles synchronization requests into rsync invocations.
//
// Compile never fails. An unknown node or an empty selection yields no
// commands, and unknown target names are dropped. Callers report an empty
// result as "nothing to do".
package rsync
