package rsync

import (
	"strconv"
	"strings"

	"github.com/arthur-debert/eriksync/pkg/paths"
	"github.com/arthur-debert/eriksync/pkg/types"
)

// Executable is the mirroring tool eriksync shells out to
const Executable = "rsync"

// Flags passed to every invocation: archive, verbose, compress, hard links,
// sparse files, partial transfers with progress, delete extraneous files at
// the destination, and ssh as remote shell.
var Flags = []string{"-avzHSP", "--delete", "-e", "ssh"}

// Command describes one external invocation
type Command struct {
	Executable string
	Args       []string
}

// String renders the command as a shell-like line. Arguments containing
// whitespace or quotes are quoted.
func (c Command) String() string {
	parts := make([]string, 0, len(c.Args)+1)
	parts = append(parts, c.Executable)
	for _, arg := range c.Args {
		if arg == "" || strings.ContainsAny(arg, " \t\n\"'\\") {
			arg = strconv.Quote(arg)
		}
		parts = append(parts, arg)
	}
	return strings.Join(parts, " ")
}

// PushCommand copies the local directory of target onto node
func PushCommand(node types.Node, target types.Target) Command {
	local, remote := locations(node, target)
	return newCommand(local, remote)
}

// PullCommand copies the directory of target on node onto the local host
func PullCommand(node types.Node, target types.Target) Command {
	local, remote := locations(node, target)
	return newCommand(remote, local)
}

func newCommand(src, dest string) Command {
	args := make([]string, 0, len(Flags)+2)
	args = append(args, Flags...)
	args = append(args, src, dest)
	return Command{Executable: Executable, Args: args}
}

// locations returns the local path (with ~ expanded) and the remote
// "<node>:<path>" location for target.
func locations(node types.Node, target types.Target) (string, string) {
	return paths.ExpandUser(target.Path), node.Name + ":" + target.Path
}
