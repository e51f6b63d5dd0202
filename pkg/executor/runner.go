package executor

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"

	"github.com/arthur-debert/eriksync/pkg/logging"
	"github.com/arthur-debert/eriksync/pkg/rsync"
)

// Runner starts a command and waits for it. A non-nil error means the
// process could not be started; otherwise the exit code is returned.
type Runner interface {
	Run(ctx context.Context, cmd rsync.Command) (int, error)
}

// ExecRunner runs commands as child processes. Nil streams fall back to the
// process's own, so rsync progress reaches the terminal.
type ExecRunner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Run implements Runner
func (r ExecRunner) Run(ctx context.Context, c rsync.Command) (int, error) {
	logging.LogCommand(c.Executable, c.Args)

	cmd := exec.CommandContext(ctx, c.Executable, c.Args...)
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	if cmd.Stdin == nil {
		cmd.Stdin = os.Stdin
	}
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return -1, err
}
