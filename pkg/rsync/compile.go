package rsync

import (
	"strings"

	"github.com/arthur-debert/eriksync/pkg/logging"
	"github.com/arthur-debert/eriksync/pkg/types"
)

// AllTargets selects every registered target when given as the first selector
const AllTargets = "all"

// Catalog is the read-only view of the registry the compiler needs
type Catalog interface {
	GetNode(name string) (types.Node, bool)
	GetTarget(name string) (types.Target, bool)
	TargetNames() []string
}

// Compile builds one command per selected target, in selection order. If
// the first selector is "all" (any case) every target is used in name order.
func Compile(catalog Catalog, nodeName string, selection []string, direction types.Direction) []Command {
	logger := logging.GetLogger("rsync")

	node, ok := catalog.GetNode(nodeName)
	if !ok || len(selection) == 0 {
		logger.Debug().
			Str("node", nodeName).
			Bool("nodeFound", ok).
			Int("selectors", len(selection)).
			Msg("Nothing to compile")
		return nil
	}

	names := selection
	if strings.EqualFold(selection[0], AllTargets) {
		names = catalog.TargetNames()
	}

	build := PushCommand
	if direction == types.Pull {
		build = PullCommand
	}

	commands := make([]Command, 0, len(names))
	for _, name := range names {
		target, ok := catalog.GetTarget(name)
		if !ok {
			continue
		}
		commands = append(commands, build(node, target))
	}

	logger.Debug().
		Str("node", nodeName).
		Str("direction", direction.String()).
		Strs("selection", selection).
		Int("commands", len(commands)).
		Msg("Compiled rsync commands")

	return commands
}
