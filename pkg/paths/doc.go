// Package paths provides the path handling eriksync needs.
//
// ExpandUser is used by the command compiler to turn a target path such as
// "~/docs" into a local path. It only looks at HOME and only expands a
// leading "~".
//
// The remaining helpers locate the registry file for the CLI. They follow
// the XDG Base Directory specification:
//
//   - Config: $XDG_CONFIG_HOME/eriksync (registry file and settings.toml)
//
// # Environment Variables
//
//   - HOME: substituted for a leading "~" in target paths
//   - ERIKSYNC_CONFIG_DIR: overrides the XDG config directory
package paths
