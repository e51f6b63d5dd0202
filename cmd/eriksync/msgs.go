package main

import (
	"embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort           = "Mirror directories between this host and remote nodes"
	MsgInitShort           = "Create an empty registry file"
	MsgAddNodeShort        = "Add or replace a node"
	MsgRemoveNodeShort     = "Remove a node"
	MsgAddTargetShort      = "Add or replace a target"
	MsgRemoveTargetShort   = "Remove a target"
	MsgListNodesShort      = "Print nodes"
	MsgListTargetsShort    = "Print targets"
	MsgConfigLocationShort = "Print location of the registry file"
	MsgShowConfigShort     = "Print the registry"
	MsgPushShort           = "Send targets from this host to a node"
	MsgPullShort           = "Fetch targets from a node to this host"
	MsgDryPushShort        = "Show the commands push would run"
	MsgDryPullShort        = "Show the commands pull would run"
	MsgVersionShort        = "Print version information"
	MsgCompletionShort     = "Generate shell completion script"
	MsgManShort            = "Generate man pages"

	// Status messages
	MsgNothingToDo    = "nothing to do"
	MsgAlreadyExists  = "%s already exists"
	MsgCreatedConfig  = "Created configuration file: %s"
	MsgSavedConfig    = "Saved %s"
	MsgVersionFormat  = "eriksync version %s\n  commit: %s\n  built:  %s\n"
	MsgManPagesFormat = "Wrote man pages to %s"

	// Error messages
	MsgErrNoRegistry = "no registry at %s (run 'eriksync init' to create one)"
	MsgErrEmptyName  = "--name must not be empty"

	// Flag descriptions
	MsgFlagVerbose     = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig      = "Registry file to use"
	MsgFlagFormat      = "Registry format: yaml, toml or json"
	MsgFlagColor       = "Colored output: auto, always or never"
	MsgFlagReplace     = "Replace the registry file if it already exists"
	MsgFlagName        = "Name of the node or target"
	MsgFlagDescription = "Description of the node"
	MsgFlagPath        = "Local directory of the target; the same path is used on nodes"
	MsgFlagManDir      = "Directory to write man pages to"
)

//go:embed msgs/*.txt
var msgFiles embed.FS

func mustMsg(name string) string {
	data, err := msgFiles.ReadFile("msgs/" + name)
	if err != nil {
		panic(err)
	}
	return strings.TrimSpace(string(data))
}

// Long messages from embedded files
var (
	MsgRootLong       = mustMsg("root-long.txt")
	MsgSyncLong       = mustMsg("sync-long.txt")
	MsgSyncExample    = mustMsg("sync-example.txt")
	MsgInitLong       = mustMsg("init-long.txt")
	MsgCompletionLong = mustMsg("completion-long.txt")
	MsgUsageTemplate  = mustMsg("usage-template.txt")
)
