package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/eriksync/pkg/logging"
	"github.com/arthur-debert/eriksync/pkg/registry"
	"github.com/spf13/afero"
)

const (
	// AppDirName is the directory name used under the XDG base directories
	AppDirName = "eriksync"

	// ConfigBaseName is the registry file name without extension
	ConfigBaseName = "eriksync"

	// SettingsFileName is the optional application settings file
	SettingsFileName = "settings.toml"
)

// ConfigDir returns the eriksync config directory, honouring ERIKSYNC_CONFIG_DIR
func ConfigDir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return ExpandUser(dir)
	}
	return filepath.Join(xdg.ConfigHome, AppDirName)
}

// DefaultConfigPath returns the registry file path for the given format
func DefaultConfigPath(format registry.Format) string {
	return filepath.Join(ConfigDir(), ConfigBaseName+format.Ext())
}

// SettingsPath returns the path of the optional settings file
func SettingsPath() string {
	return filepath.Join(ConfigDir(), SettingsFileName)
}

// FindConfigFile returns the first existing registry file in the config
// directory, trying yaml, toml and json in that order. When none exists the
// yaml path is returned.
func FindConfigFile(fsys afero.Fs) string {
	for _, format := range registry.Formats {
		path := DefaultConfigPath(format)
		if exists, _ := afero.Exists(fsys, path); exists {
			logger := logging.GetLogger("paths")
			logger.Debug().Str("path", path).Msg("Found registry file")
			return path
		}
	}
	return DefaultConfigPath(registry.DefaultFormat)
}
