package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/eriksync/pkg/errors"
	"github.com/arthur-debert/eriksync/pkg/logging"
)

func main() {
	os.Exit(run(newApp(), os.Args[1:]))
}

// run executes the command line and returns the process exit status
func run(a *app, args []string) int {
	rootCmd := newRootCmd(a)
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		logger := logging.GetLogger("main")
		logger.Debug().
			Str("code", string(errors.GetErrorCode(err))).
			Interface("details", errors.GetErrorDetails(err)).
			Msg("Command failed")
		_, _ = fmt.Fprint(a.errOut, a.errorRenderer().RenderError(err))
		return 1
	}
	return 0
}
