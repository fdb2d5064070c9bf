package invoke

import (
	"context"
	"os"
	"os/exec"

	"github.com/kballard/go-shellquote"
	"go.uber.org/zap"

	"github.com/railyard-cli/railyard/logger"
)

// Runner executes one external command to completion. The seam exists so
// tests can observe command lines and simulate failures without a docker
// daemon.
type Runner interface {
	Run(ctx context.Context, dir string, name string, args ...string) error
}

// execRunner shells out for real. At trace verbosity the child's output
// streams to the terminal; below that it is discarded — external tool
// noise is not this tool's output.
type execRunner struct {
	logger    *zap.SugaredLogger
	verbosity int
}

// NewRunner returns the standard subprocess runner.
func NewRunner(log *zap.SugaredLogger, verbosity int) Runner {
	return &execRunner{logger: log, verbosity: verbosity}
}

func (r *execRunner) Run(ctx context.Context, dir string, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	if logger.ShouldStreamSubprocess(r.verbosity) {
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
	}

	r.logger.Infow("running external command",
		logger.FieldCommand, shellquote.Join(append([]string{name}, args...)...),
		logger.FieldDir, dir)

	err := cmd.Run()
	if exitErr, ok := err.(*exec.ExitError); ok {
		r.logger.Errorw("external command failed",
			logger.FieldCommand, name,
			logger.FieldExit, exitErr.ExitCode())
	}
	return err
}
