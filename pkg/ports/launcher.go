package ports

import "github.com/aretw0/detox-cli/pkg/invocation"

// Command is a fully rendered runner invocation.
type Command struct {
	// Line is the shell command line, executable first.
	Line string
	// Env is overlaid on the current process environment.
	Env *invocation.Mapping
}

// Launcher runs a command synchronously.
// A non-nil error means the runner failed; it wraps domain.ErrLaunchFailed for non-zero exits.
type Launcher interface {
	Launch(cmd Command) error
}

// LauncherFunc adapts a function to the Launcher interface.
type LauncherFunc func(cmd Command) error

// Launch calls f(cmd).
func (f LauncherFunc) Launch(cmd Command) error {
	return f(cmd)
}
