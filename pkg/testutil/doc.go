// Package testutil provides an isolated environment for eriksync tests.
//
// A TestEnvironment points HOME, the eriksync config directory and the XDG
// state directory at test-owned locations, clears ERIKSYNC_* settings from
// the process environment, and hands out the afero filesystem the registry
// lives on.
//
// Usage guidelines:
//   - Prefer EnvMemoryOnly; registry code only touches the filesystem through afero
//   - Use EnvIsolated when something outside afero (settings, log files, child
//     processes) has to see the files
package testutil
