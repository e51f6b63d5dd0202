package paths

import (
	"os"
	"strings"
)

// Environment variable names
const (
	// EnvHome is the standard home directory variable
	EnvHome = "HOME"

	// EnvConfigDir overrides the XDG config directory for eriksync
	EnvConfigDir = "ERIKSYNC_CONFIG_DIR"
)

// HomeDir returns $HOME, or "" when it is unset
func HomeDir() string {
	return os.Getenv(EnvHome)
}

// ExpandUser replaces a leading "~" with the home directory. Nothing else
// in the path is touched.
func ExpandUser(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	return HomeDir() + path[1:]
}
