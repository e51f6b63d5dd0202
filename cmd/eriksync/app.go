package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/arthur-debert/eriksync/pkg/config"
	"github.com/arthur-debert/eriksync/pkg/errors"
	"github.com/arthur-debert/eriksync/pkg/executor"
	"github.com/arthur-debert/eriksync/pkg/paths"
	"github.com/arthur-debert/eriksync/pkg/registry"
	"github.com/arthur-debert/eriksync/pkg/style"
	"github.com/spf13/afero"
)

// app carries what the commands share: the filesystem holding the registry,
// the process runner, output streams, flag values and resolved settings.
type app struct {
	fs     afero.Fs
	runner executor.Runner
	out    io.Writer
	errOut io.Writer
	tty    *os.File

	// settingsPath overrides paths.SettingsPath
	settingsPath string

	verbosity  int
	configFlag string
	formatFlag string
	colorFlag  string

	settings *config.Settings
	renderer *style.Renderer
}

func newApp() *app {
	return &app{
		fs:     afero.NewOsFs(),
		runner: executor.ExecRunner{},
		out:    os.Stdout,
		errOut: os.Stderr,
		tty:    os.Stdout,
	}
}

// prepare resolves settings and output styling. It runs once per invocation,
// from PersistentPreRunE or from completion functions.
func (a *app) prepare() error {
	if a.settings != nil {
		return nil
	}

	settingsPath := a.settingsPath
	if settingsPath == "" {
		settingsPath = paths.SettingsPath()
	}

	s, err := config.Load(settingsPath, map[string]interface{}{
		"config_file": a.configFlag,
		"format":      a.formatFlag,
		"color":       a.colorFlag,
	})
	if err != nil {
		return err
	}

	a.settings = s
	a.renderer = style.NewRenderer(style.DetectMode(a.tty, s.Color))
	style.Apply(a.renderer.Mode())
	templateMode = a.renderer.Mode()
	return nil
}

func (a *app) errorRenderer() *style.Renderer {
	if a.renderer != nil {
		return a.renderer
	}
	return style.NewRenderer(style.DetectMode(os.Stderr, a.colorFlag))
}

func (a *app) print(s string) {
	_, _ = fmt.Fprint(a.out, s)
}

// configPath is the registry file for this invocation: the configured file,
// or the first registry found in the config directory.
func (a *app) configPath() string {
	if a.settings.ConfigFile != "" {
		return paths.ExpandUser(a.settings.ConfigFile)
	}
	return paths.FindConfigFile(a.fs)
}

func (a *app) loadRegistry() (*registry.Registry, string, error) {
	path := a.configPath()
	reg, err := registry.Load(a.fs, path)
	if err != nil {
		if errors.IsErrorCode(err, errors.ErrNotFound) {
			return nil, path, errors.Newf(errors.ErrNotFound, MsgErrNoRegistry, path).
				WithDetail("path", path)
		}
		return nil, path, err
	}
	return reg, path, nil
}

// saveRegistry writes reg back in the format of the file it came from and
// echoes the saved content.
func (a *app) saveRegistry(reg *registry.Registry, path string) error {
	format, err := registry.FormatFromPath(path)
	if err != nil {
		return err
	}
	if err := reg.Save(a.fs, path, format); err != nil {
		return err
	}
	a.print(a.renderer.RenderSuccess(fmt.Sprintf(MsgSavedConfig, path)))
	return a.printRegistry(reg, format)
}

func (a *app) printRegistry(reg *registry.Registry, format registry.Format) error {
	data, err := reg.Encode(format)
	if err != nil {
		return err
	}
	out := string(data)
	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	a.print(out)
	return nil
}

// updateRegistry loads the registry, applies change and saves the result
func (a *app) updateRegistry(change func(*registry.Registry)) error {
	reg, path, err := a.loadRegistry()
	if err != nil {
		return err
	}
	change(reg)
	return a.saveRegistry(reg, path)
}

func (a *app) newExecutor() *executor.Executor {
	return executor.New(executor.WithOutput(a.out), executor.WithRunner(a.runner))
}
