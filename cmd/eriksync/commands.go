package main

import (
	"embed"

	"github.com/arthur-debert/eriksync/internal/version"
	"github.com/arthur-debert/eriksync/pkg/cobrax/topics"
	"github.com/arthur-debert/eriksync/pkg/logging"
	"github.com/arthur-debert/eriksync/pkg/style"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

//go:embed topics/*.md
var topicFiles embed.FS

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return newRootCmd(newApp())
}

func newRootCmd(a *app) *cobra.Command {
	initTemplateFormatting()
	templateMode = style.DetectMode(a.tty, "auto")

	rootCmd := &cobra.Command{
		Use:     "eriksync",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.SetupLogger(a.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
			return a.prepare()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}
	rootCmd.SetOut(a.out)
	rootCmd.SetErr(a.errOut)

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVarP(&a.configFlag, "config", "c", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringVar(&a.formatFlag, "format", "", MsgFlagFormat)
	rootCmd.PersistentFlags().StringVar(&a.colorFlag, "color", "", MsgFlagColor)
	_ = rootCmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions(
		[]string{"yaml", "toml", "json"}, cobra.ShellCompDirectiveNoFileComp))
	_ = rootCmd.RegisterFlagCompletionFunc("color", cobra.FixedCompletions(
		[]string{"auto", "always", "never"}, cobra.ShellCompDirectiveNoFileComp))

	rootCmd.AddGroup(&cobra.Group{ID: "registry", Title: "REGISTRY:"})
	rootCmd.AddGroup(&cobra.Group{ID: "sync", Title: "SYNC:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	// Registry commands
	rootCmd.AddCommand(newInitCmd(a))
	rootCmd.AddCommand(newAddNodeCmd(a))
	rootCmd.AddCommand(newRemoveNodeCmd(a))
	rootCmd.AddCommand(newAddTargetCmd(a))
	rootCmd.AddCommand(newRemoveTargetCmd(a))
	rootCmd.AddCommand(newListNodesCmd(a))
	rootCmd.AddCommand(newListTargetsCmd(a))
	rootCmd.AddCommand(newConfigLocationCmd(a))
	rootCmd.AddCommand(newShowConfigCmd(a))

	// Sync commands
	rootCmd.AddCommand(newPushCmd(a))
	rootCmd.AddCommand(newPullCmd(a))
	rootCmd.AddCommand(newDryPushCmd(a))
	rootCmd.AddCommand(newDryPullCmd(a))

	// Misc
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	renderer := topics.NewGlamourRenderer()
	if templateMode == style.ModeText {
		renderer.Style = "notty"
	}
	if err := topics.InitializeWithOptions(rootCmd, topicFiles, "topics", topics.Options{
		Renderer: renderer,
	}); err != nil {
		log.Debug().Err(err).Msg("Help topics unavailable")
	}
	rootCmd.SetHelpCommandGroupID("misc")

	return rootCmd
}
