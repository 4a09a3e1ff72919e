package runtime

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/aretw0/detox-cli/internal/logging"
	"github.com/aretw0/detox-cli/pkg/domain"
	"github.com/aretw0/detox-cli/pkg/invocation"
	"github.com/aretw0/detox-cli/pkg/ports"
)

// State is a position in the retry loop.
type State int

const (
	Attempting State = iota
	Succeeded
	ExhaustedRetries
	NoActionableFailures
)

func (s State) String() string {
	switch s {
	case Attempting:
		return "attempting"
	case Succeeded:
		return "succeeded"
	case ExhaustedRetries:
		return "exhausted_retries"
	case NoActionableFailures:
		return "no_actionable_failures"
	default:
		return "unknown"
	}
}

// Terminal reports whether the loop stops in s.
func (s State) Terminal() bool {
	return s != Attempting
}

// LaunchFunc runs one attempt. attempt starts at 1.
type LaunchFunc func(ctx context.Context, attempt int, d invocation.Descriptor) error

// Result describes how a Run ended.
type Result struct {
	State    State
	Attempts int
	// Descriptor is the one used by the last attempt, or the narrowed one
	// that would have been used next when retries ran out.
	Descriptor invocation.Descriptor
}

// Controller re-launches a test run with only the specs that failed,
// until it passes or the retry budget is spent.
type Controller struct {
	launch LaunchFunc
	source ports.FailedSpecsSource
	logger *slog.Logger
}

// ControllerOption configures the controller.
type ControllerOption func(*Controller)

// WithLogger sets the logger for failed-spec reports.
func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

// NewController creates a controller that launches attempts with launch and
// reads failures from source.
func NewController(launch LaunchFunc, source ports.FailedSpecsSource, opts ...ControllerOption) *Controller {
	c := &Controller{
		launch: launch,
		source: source,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run launches d and retries at most retries times. Attempts never overlap.
// The returned error is the launch failure that ended the loop, unchanged.
func (c *Controller) Run(ctx context.Context, d invocation.Descriptor, retries int) (Result, error) {
	res := Result{State: Attempting, Descriptor: d}

	for {
		res.Attempts++
		launchErr := c.launch(ctx, res.Attempts, res.Descriptor)
		if launchErr == nil {
			res.State = Succeeded
			return res, nil
		}

		specs := c.failedSpecs(ctx)
		if len(specs) == 0 {
			res.State = NoActionableFailures
			return res, launchErr
		}

		c.logger.Error("Test run has failed for the following specs:\n" + strings.Join(specs, "\n"))
		res.Descriptor = res.Descriptor.WithSpecs(specs)

		if retries <= 0 {
			res.State = ExhaustedRetries
			return res, launchErr
		}
		retries--
	}
}

func (c *Controller) failedSpecs(ctx context.Context) []string {
	specs, err := c.source.ReadFailedSpecs(ctx)
	if err != nil {
		if !errors.Is(err, domain.ErrNoFailedSpecs) {
			c.logger.Warn("could not read failed specs", "error", err)
		}
		return nil
	}
	return specs
}
