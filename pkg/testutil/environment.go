package testutil

import (
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/eriksync/pkg/paths"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// EnvType defines the type of test environment
type EnvType int

const (
	EnvMemoryOnly EnvType = iota // Registry files live in an afero.MemMapFs
	EnvIsolated                  // Real filesystem in temp directory
)

// SettingsEnvVars are the environment variables that feed application settings
var SettingsEnvVars = []string{"ERIKSYNC_CONFIG_FILE", "ERIKSYNC_FORMAT", "ERIKSYNC_COLOR"}

// TestEnvironment provides HOME, config and state directories for a test
type TestEnvironment struct {
	HomeDir   string
	ConfigDir string
	StateDir  string
	// SettingsPath is always on the real filesystem, inside a temp dir
	SettingsPath string

	FS   afero.Fs
	Type EnvType

	t *testing.T
}

// NewTestEnvironment creates a new test environment. Environment variables
// are restored by t when the test ends.
func NewTestEnvironment(t *testing.T, envType EnvType) *TestEnvironment {
	t.Helper()

	env := &TestEnvironment{
		t:            t,
		Type:         envType,
		StateDir:     t.TempDir(),
		SettingsPath: filepath.Join(t.TempDir(), paths.SettingsFileName),
	}

	switch envType {
	case EnvMemoryOnly:
		env.FS = afero.NewMemMapFs()
		env.HomeDir = "/home/tester"
		env.ConfigDir = "/config/eriksync"
	case EnvIsolated:
		env.FS = afero.NewOsFs()
		root := t.TempDir()
		env.HomeDir = filepath.Join(root, "home")
		env.ConfigDir = filepath.Join(root, "config", "eriksync")
		require.NoError(t, env.FS.MkdirAll(env.HomeDir, 0755))
	}

	t.Setenv(paths.EnvHome, env.HomeDir)
	t.Setenv(paths.EnvConfigDir, env.ConfigDir)
	t.Setenv("XDG_STATE_HOME", env.StateDir)
	t.Setenv("NO_COLOR", "1")
	for _, key := range SettingsEnvVars {
		// empty values are ignored by the settings loader
		t.Setenv(key, "")
	}
	xdg.Reload()

	return env
}

// Path joins elem onto the config directory
func (env *TestEnvironment) Path(elem ...string) string {
	return filepath.Join(append([]string{env.ConfigDir}, elem...)...)
}

// Home joins elem onto the home directory
func (env *TestEnvironment) Home(elem ...string) string {
	return filepath.Join(append([]string{env.HomeDir}, elem...)...)
}

// WriteFile writes content to path on the environment's filesystem,
// creating parent directories.
func (env *TestEnvironment) WriteFile(path, content string) {
	env.t.Helper()
	require.NoError(env.t, env.FS.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(env.t, afero.WriteFile(env.FS, path, []byte(content), 0644))
}

// ReadFile returns the content of path on the environment's filesystem
func (env *TestEnvironment) ReadFile(path string) string {
	env.t.Helper()
	data, err := afero.ReadFile(env.FS, path)
	require.NoError(env.t, err)
	return string(data)
}

// Exists reports whether path exists on the environment's filesystem
func (env *TestEnvironment) Exists(path string) bool {
	env.t.Helper()
	ok, err := afero.Exists(env.FS, path)
	require.NoError(env.t, err)
	return ok
}

// WriteSettings writes the settings file, which always lives on disk
func (env *TestEnvironment) WriteSettings(content string) {
	env.t.Helper()
	require.NoError(env.t, afero.WriteFile(afero.NewOsFs(), env.SettingsPath, []byte(content), 0644))
}
