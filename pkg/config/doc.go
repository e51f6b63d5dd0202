// Package config loads eriksync's application settings.
// Sources are layered: embedded defaults, the user's settings.toml,
// ERIKSYNC_* environment variables, and finally command-line flags.
package config
