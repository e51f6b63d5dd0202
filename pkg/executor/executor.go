package executor

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/eriksync/pkg/errors"
	"github.com/arthur-debert/eriksync/pkg/logging"
	"github.com/arthur-debert/eriksync/pkg/rsync"
	"github.com/rs/zerolog"
)

// Option configures an Executor
type Option func(*Executor)

// WithOutput sets where Show writes command lines
func WithOutput(w io.Writer) Option {
	return func(e *Executor) {
		e.out = w
	}
}

// WithRunner replaces the process runner, mostly for tests
func WithRunner(r Runner) Option {
	return func(e *Executor) {
		e.runner = r
	}
}

// Executor shows and runs command lists
type Executor struct {
	out    io.Writer
	runner Runner
	logger zerolog.Logger
}

// New creates an executor writing to stdout and spawning real processes
// unless told otherwise.
func New(opts ...Option) *Executor {
	e := &Executor{
		out:    os.Stdout,
		runner: ExecRunner{},
		logger: logging.GetLogger("executor"),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Show prints one line per command: the executable followed by its arguments
func (e *Executor) Show(cmds []rsync.Command) {
	for _, cmd := range cmds {
		_, _ = fmt.Fprintln(e.out, cmd.String())
	}
}

// Run prints cmds and then runs them in order. It stops at the first command
// that fails to start (ErrProcessStart) or exits non-zero (ErrProcessExit).
func (e *Executor) Run(ctx context.Context, cmds []rsync.Command) error {
	e.Show(cmds)

	done := logging.LogOperationStart(e.logger, "run")
	defer done()

	for i, cmd := range cmds {
		if err := ctx.Err(); err != nil {
			return errors.Wrap(err, errors.ErrProcessStart, "run cancelled").
				WithDetail("command", cmd.String())
		}

		e.logger.Debug().
			Int("index", i).
			Int("total", len(cmds)).
			Str("command", cmd.String()).
			Msg("Running command")

		code, err := e.runner.Run(ctx, cmd)
		if err != nil {
			e.logger.Error().Err(err).Str("command", cmd.String()).Msg("Command failed to start")
			return errors.Wrapf(err, errors.ErrProcessStart, "could not start %s", cmd.Executable).
				WithDetail("command", cmd.String())
		}
		if code != 0 {
			e.logger.Error().Int("exitCode", code).Str("command", cmd.String()).Msg("Command failed")
			return errors.Newf(errors.ErrProcessExit, "command exited with status %d: %s", code, cmd.String()).
				WithDetail("command", cmd.String()).
				WithDetail("exitCode", code)
		}
	}

	return nil
}
