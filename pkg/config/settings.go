package config

import (
	"strings"

	"github.com/arthur-debert/eriksync/pkg/errors"
	"github.com/arthur-debert/eriksync/pkg/registry"
)

// Color modes
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Settings are the resolved application settings
type Settings struct {
	// ConfigFile overrides the registry location when set
	ConfigFile string `koanf:"config_file"`
	// Format is the format used when writing the registry
	Format string `koanf:"format"`
	// Color is one of auto, always, never
	Color string `koanf:"color"`
}

// SaveFormat returns the registry format to write with. Unknown values fall
// back to YAML.
func (s *Settings) SaveFormat() registry.Format {
	return registry.ParseFormat(s.Format)
}

// Validate checks enumerated settings
func (s *Settings) Validate() error {
	switch strings.ToLower(s.Color) {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return errors.Newf(errors.ErrInvalidInput, "invalid color setting %q (want auto, always or never)", s.Color).
			WithDetail("color", s.Color)
	}
	return nil
}
