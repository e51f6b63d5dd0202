package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/eriksync/pkg/errors"
	"github.com/arthur-debert/eriksync/pkg/paths"
	"github.com/arthur-debert/eriksync/pkg/registry"
	"github.com/arthur-debert/eriksync/pkg/types"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func newInitCmd(a *app) *cobra.Command {
	var replace bool

	cmd := &cobra.Command{
		Use:     "init",
		Short:   MsgInitShort,
		Long:    MsgInitLong,
		GroupID: "registry",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, format, err := a.initTarget()
			if err != nil {
				return err
			}

			exists, err := afero.Exists(a.fs, path)
			if err != nil {
				return errors.Wrapf(err, errors.ErrConfigLoad, "failed to check %s", path).
					WithDetail("path", path)
			}
			if exists && !replace {
				a.print(a.renderer.RenderNotice(fmt.Sprintf(MsgAlreadyExists, path)))
				return nil
			}

			if err := a.fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
				return errors.Wrapf(err, errors.ErrFileCreate, "failed to create %s", filepath.Dir(path)).
					WithDetail("path", path)
			}
			if err := registry.New().Save(a.fs, path, format); err != nil {
				return err
			}

			a.print(a.renderer.RenderSuccess(fmt.Sprintf(MsgCreatedConfig, path)))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&replace, "replace", "r", false, MsgFlagReplace)
	return cmd
}

// initTarget picks the file init creates: the configured file in the format
// its extension names, or eriksync.<format> in the config directory.
func (a *app) initTarget() (string, registry.Format, error) {
	if a.settings.ConfigFile != "" {
		path := paths.ExpandUser(a.settings.ConfigFile)
		format, err := registry.FormatFromPath(path)
		return path, format, err
	}
	format := a.settings.SaveFormat()
	return paths.DefaultConfigPath(format), format, nil
}

func requireName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.New(errors.ErrInvalidInput, MsgErrEmptyName)
	}
	return nil
}

func newAddNodeCmd(a *app) *cobra.Command {
	var name, description string

	cmd := &cobra.Command{
		Use:     "add-node --name NAME [--description TEXT]",
		Short:   MsgAddNodeShort,
		GroupID: "registry",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireName(name); err != nil {
				return err
			}
			return a.updateRegistry(func(reg *registry.Registry) {
				reg.AddNode(types.NewNode(name).WithDescription(description))
			})
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", MsgFlagName)
	cmd.Flags().StringVarP(&description, "description", "d", "", MsgFlagDescription)
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newRemoveNodeCmd(a *app) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:     "remove-node --name NAME",
		Short:   MsgRemoveNodeShort,
		GroupID: "registry",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.updateRegistry(func(reg *registry.Registry) {
				reg.RemoveNode(name)
			})
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", MsgFlagName)
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.RegisterFlagCompletionFunc("name", a.nodeNamesCompletion)
	return cmd
}

func newAddTargetCmd(a *app) *cobra.Command {
	var name, path string

	cmd := &cobra.Command{
		Use:     "add-target --name NAME --path PATH",
		Short:   MsgAddTargetShort,
		GroupID: "registry",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireName(name); err != nil {
				return err
			}
			return a.updateRegistry(func(reg *registry.Registry) {
				reg.AddTarget(types.NewTarget(name, path))
			})
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", MsgFlagName)
	cmd.Flags().StringVarP(&path, "path", "p", "", MsgFlagPath)
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("path")
	_ = cmd.MarkFlagDirname("path")
	return cmd
}

func newRemoveTargetCmd(a *app) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:     "remove-target --name NAME",
		Short:   MsgRemoveTargetShort,
		GroupID: "registry",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.updateRegistry(func(reg *registry.Registry) {
				reg.RemoveTarget(name)
			})
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", MsgFlagName)
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.RegisterFlagCompletionFunc("name", a.targetNamesCompletion)
	return cmd
}

func newListNodesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "list-nodes",
		Short:   MsgListNodesShort,
		GroupID: "registry",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, _, err := a.loadRegistry()
			if err != nil {
				return err
			}
			a.print(a.renderer.RenderNodes(reg.Nodes()))
			return nil
		},
	}
}

func newListTargetsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "list-targets",
		Short:   MsgListTargetsShort,
		GroupID: "registry",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, _, err := a.loadRegistry()
			if err != nil {
				return err
			}
			a.print(a.renderer.RenderTargets(reg.Targets()))
			return nil
		},
	}
}

func newConfigLocationCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "config-location",
		Short:   MsgConfigLocationShort,
		GroupID: "registry",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a.print(a.renderer.RenderPath(a.configPath()))
			return nil
		},
	}
}

func newShowConfigCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "show-config",
		Short:   MsgShowConfigShort,
		GroupID: "registry",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, _, err := a.loadRegistry()
			if err != nil {
				return err
			}
			return a.printRegistry(reg, a.settings.SaveFormat())
		},
	}
}

// nodeNamesCompletion completes node names from the registry
func (a *app) nodeNamesCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	reg, ok := a.completionRegistry()
	if !ok {
		return nil, cobra.ShellCompDirectiveError
	}
	return reg.NodeNames(), cobra.ShellCompDirectiveNoFileComp
}

// targetNamesCompletion completes target names from the registry, leaving
// out those already given.
func (a *app) targetNamesCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	reg, ok := a.completionRegistry()
	if !ok {
		return nil, cobra.ShellCompDirectiveError
	}
	return without(reg.TargetNames(), args), cobra.ShellCompDirectiveNoFileComp
}

func (a *app) completionRegistry() (*registry.Registry, bool) {
	if err := a.prepare(); err != nil {
		return nil, false
	}
	reg, _, err := a.loadRegistry()
	if err != nil {
		return nil, false
	}
	return reg, true
}

func without(names, taken []string) []string {
	var out []string
	for _, name := range names {
		found := false
		for _, t := range taken {
			if t == name {
				found = true
				break
			}
		}
		if !found {
			out = append(out, name)
		}
	}
	return out
}
