package process

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"

	"github.com/aretw0/detox-cli/pkg/command"
	"github.com/aretw0/detox-cli/pkg/domain"
	"github.com/aretw0/detox-cli/pkg/ports"
)

// Runner implements ports.Launcher by running command lines through /bin/sh.
// Lines are quoted for POSIX shells, so Windows hosts are not supported.
// The child inherits the terminal so the test runner's output reaches the user unmodified.
type Runner struct {
	baseDir string
	stdin   io.Reader
	stdout  io.Writer
	stderr  io.Writer
	environ func() []string
	logger  *slog.Logger
}

// RunnerOption configures the runner.
type RunnerOption func(*Runner)

// WithBaseDir sets the working directory for executed processes.
func WithBaseDir(dir string) RunnerOption {
	return func(r *Runner) {
		r.baseDir = dir
	}
}

// WithStdio replaces the inherited standard streams.
func WithStdio(stdin io.Reader, stdout, stderr io.Writer) RunnerOption {
	return func(r *Runner) {
		r.stdin = stdin
		r.stdout = stdout
		r.stderr = stderr
	}
}

// WithEnviron sets the base environment the invocation env is overlaid on.
func WithEnviron(environ func() []string) RunnerOption {
	return func(r *Runner) {
		r.environ = environ
	}
}

// WithLogger sets the logger receiving the command line of each launch.
func WithLogger(logger *slog.Logger) RunnerOption {
	return func(r *Runner) {
		r.logger = logger
	}
}

// NewRunner creates a new Process Runner working in the local tool directory.
func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{
		baseDir: command.DefaultToolDir,
		stdin:   os.Stdin,
		stdout:  os.Stdout,
		stderr:  os.Stderr,
		environ: os.Environ,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var _ ports.Launcher = (*Runner)(nil)

// Launch runs cmd synchronously and blocks until the child exits.
// A non-zero exit is reported as domain.ErrLaunchFailed; exit codes and signals are
// not told apart.
func (r *Runner) Launch(cmd ports.Command) error {
	r.logger.Info(command.FormatEnv(cmd.Env) + cmd.Line)

	proc := shell(cmd.Line)
	proc.Dir = r.baseDir
	proc.Stdin = r.stdin
	proc.Stdout = r.stdout
	proc.Stderr = r.stderr
	proc.Env = command.Environ(r.environ(), cmd.Env)

	if err := proc.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return fmt.Errorf("%w: command failed: %s", domain.ErrLaunchFailed, cmd.Line)
		}
		return fmt.Errorf("failed to start %s: %w", cmd.Line, err)
	}
	return nil
}

func shell(line string) *exec.Cmd {
	return exec.Command("/bin/sh", "-c", line)
}
