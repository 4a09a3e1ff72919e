package detox

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aretw0/detox-cli/internal/adapters/file"
	"github.com/aretw0/detox-cli/internal/environment"
	"github.com/aretw0/detox-cli/internal/logging"
	"github.com/aretw0/detox-cli/internal/runtime"
	"github.com/aretw0/detox-cli/pkg/adapters/process"
	"github.com/aretw0/detox-cli/pkg/command"
	"github.com/aretw0/detox-cli/pkg/config"
	"github.com/aretw0/detox-cli/pkg/domain"
	"github.com/aretw0/detox-cli/pkg/invocation"
	"github.com/aretw0/detox-cli/pkg/observability"
	"github.com/aretw0/detox-cli/pkg/ports"
	"github.com/aretw0/detox-cli/pkg/runners"
)

const (
	warnMochaWorkers = "Can not use -w, --workers. Parallel test execution is only supported with iOS and Jest"
	warnAndroidJest  = "Multiple workers is an experimental feature on Android and requires an emulator binary of version 28.0.16 or higher. " +
		"Check your version by running: $ANDROID_HOME/tools/bin/sdkmanager --list"
)

// Tester is the high-level entry point of the `detox test` command.
// It builds the runner invocation and drives the retry loop around it.
type Tester struct {
	registry    *runners.Registry
	launcher    ports.Launcher
	failedSpecs ports.FailedSpecsSource
	devices     ports.DeviceRegistry
	metrics     *observability.Metrics
	clock       func() time.Time
	logger      *slog.Logger
}

// Option defines a functional option for configuring the Tester.
type Option func(*Tester)

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Tester) {
		t.logger = logger
	}
}

// WithLauncher replaces the process launcher.
func WithLauncher(l ports.Launcher) Option {
	return func(t *Tester) {
		t.launcher = l
	}
}

// WithFailedSpecs sets where failed specs are read from after a failing attempt.
func WithFailedSpecs(s ports.FailedSpecsSource) Option {
	return func(t *Tester) {
		t.failedSpecs = s
	}
}

// WithDeviceRegistry sets the owner of the device lock files.
func WithDeviceRegistry(r ports.DeviceRegistry) Option {
	return func(t *Tester) {
		t.devices = r
	}
}

// WithRegistry replaces the runner dialects (default: mocha and jest).
func WithRegistry(r *runners.Registry) Option {
	return func(t *Tester) {
		t.registry = r
	}
}

// WithMetrics records attempts and outcomes on m.
func WithMetrics(m *observability.Metrics) Option {
	return func(t *Tester) {
		t.metrics = m
	}
}

// WithClock sets the time source used for DETOX_START_TIMESTAMP and attempt durations.
func WithClock(clock func() time.Time) Option {
	return func(t *Tester) {
		t.clock = clock
	}
}

// New initializes a Tester.
// Collaborators not supplied through options default to the local environment:
// the detox library root for lock files and last-failed specs, and the shell
// for launching runners from node_modules/.bin.
func New(opts ...Option) (*Tester, error) {
	t := &Tester{}
	for _, opt := range opts {
		opt(t)
	}

	if t.logger == nil {
		t.logger = logging.NewNop()
	}
	if t.clock == nil {
		t.clock = time.Now
	}
	if t.registry == nil {
		t.registry = runners.DefaultRegistry()
	}
	if t.launcher == nil {
		t.launcher = process.NewRunner(process.WithLogger(t.logger))
	}

	if t.failedSpecs == nil || t.devices == nil {
		paths, err := environment.Default()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve detox library root: %w", err)
		}
		if t.failedSpecs == nil {
			t.failedSpecs = file.NewFailedSpecs(paths.LastFailedTests())
		}
		if t.devices == nil {
			t.devices = file.NewDeviceRegistry(paths)
		}
	}

	return t, nil
}

// Request is one `test` command.
type Request struct {
	Config config.Unified
	// Passthrough holds the runner arguments the user placed after the orchestrator's own.
	Passthrough invocation.Args
	// Retries bounds how many times failed specs are re-run. Negative means zero.
	Retries int
}

// Test runs the configured test runner, re-running failed specs up to req.Retries times.
// The returned error is either a *domain.RuntimeError for an unsupported runner
// or the launch failure of the last attempt.
func (t *Tester) Test(ctx context.Context, req Request) error {
	testRunner := req.Config.Runner.TestRunner
	dialect, err := t.registry.Lookup(testRunner)
	if err != nil {
		return err
	}

	passthrough := req.Passthrough.Clone()
	if passthrough.Flags == nil {
		passthrough.Flags = invocation.NewMapping()
	}

	c := runners.NewContext(req.Config, dialect.Normalize(passthrough), t.clock())
	t.warnWorkers(dialect, c)
	d := dialect.Build(c)

	if !req.Config.CLI.KeepsLockFile() {
		if err := t.devices.ResetLockFile(c.Platform); err != nil {
			return fmt.Errorf("failed to reset device registry: %w", err)
		}
	}

	executable := command.Executable(testRunner)
	launch := func(ctx context.Context, attempt int, d invocation.Descriptor) error {
		started := t.clock()
		err := t.launcher.Launch(ports.Command{
			Line: command.Render(executable, d, dialect.Style),
			Env:  d.Env,
		})
		t.metrics.ObserveAttempt(dialect.Name, attempt, t.clock().Sub(started), err)
		return err
	}

	retries := req.Retries
	if retries < 0 {
		retries = 0
	}

	controller := runtime.NewController(launch, t.failedSpecs, runtime.WithLogger(t.logger))
	res, err := controller.Run(ctx, d, retries)
	t.metrics.ObserveOutcome(dialect.Name, res.State.String())
	t.logger.Debug("test command finished", "runner", dialect.Name, "state", res.State.String(), "attempts", res.Attempts)
	return err
}

func (t *Tester) warnWorkers(dialect runners.Dialect, c runners.Context) {
	if c.Workers == 1 {
		return
	}
	switch {
	case dialect.Name == runners.Mocha.Name:
		t.logger.Warn(warnMochaWorkers)
	case dialect.Name == runners.Jest.Name && c.Platform == domain.PlatformAndroid:
		t.logger.Warn(warnAndroidJest)
	}
}
