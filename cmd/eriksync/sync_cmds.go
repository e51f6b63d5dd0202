package main

import (
	"github.com/arthur-debert/eriksync/pkg/logging"
	"github.com/arthur-debert/eriksync/pkg/rsync"
	"github.com/arthur-debert/eriksync/pkg/types"
	"github.com/spf13/cobra"
)

func newPushCmd(a *app) *cobra.Command {
	return newSyncCmd(a, "push", MsgPushShort, types.Push, false)
}

func newPullCmd(a *app) *cobra.Command {
	return newSyncCmd(a, "pull", MsgPullShort, types.Pull, false)
}

func newDryPushCmd(a *app) *cobra.Command {
	return newSyncCmd(a, "dry-push", MsgDryPushShort, types.Push, true)
}

func newDryPullCmd(a *app) *cobra.Command {
	return newSyncCmd(a, "dry-pull", MsgDryPullShort, types.Pull, true)
}

func newSyncCmd(a *app, name, short string, direction types.Direction, dry bool) *cobra.Command {
	return &cobra.Command{
		Use:               name + " NODE all|TARGET...",
		Short:             short,
		Long:              MsgSyncLong,
		Example:           MsgSyncExample,
		GroupID:           "sync",
		Args:              cobra.MinimumNArgs(2),
		ValidArgsFunction: a.syncArgsCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd." + name)

			reg, _, err := a.loadRegistry()
			if err != nil {
				return err
			}

			nodeName, selection := args[0], args[1:]
			cmds := rsync.Compile(reg, nodeName, selection, direction)

			logger.Info().
				Str("node", nodeName).
				Strs("selection", selection).
				Str("direction", direction.String()).
				Int("commands", len(cmds)).
				Bool("dry", dry).
				Msg("Compiled sync commands")

			if len(cmds) == 0 {
				a.print(a.renderer.RenderNotice(MsgNothingToDo))
				return nil
			}

			exec := a.newExecutor()
			if dry {
				exec.Show(cmds)
				return nil
			}
			return exec.Run(cmd.Context(), cmds)
		},
	}
}

// syncArgsCompletion completes the node first, then "all" and target names
func (a *app) syncArgsCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) == 0 {
		return a.nodeNamesCompletion(cmd, args, toComplete)
	}
	targets, directive := a.targetNamesCompletion(cmd, args[1:], toComplete)
	if directive == cobra.ShellCompDirectiveError {
		return nil, directive
	}
	if len(args) == 1 {
		targets = append([]string{rsync.AllTargets}, targets...)
	}
	return targets, directive
}
