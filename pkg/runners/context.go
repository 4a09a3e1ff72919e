package runners

import (
	"strings"
	"time"

	"github.com/aretw0/detox-cli/pkg/config"
	"github.com/aretw0/detox-cli/pkg/domain"
	"github.com/aretw0/detox-cli/pkg/invocation"
)

// Context is the immutable input of a builder.
type Context struct {
	Config   config.Unified
	Platform domain.Platform
	Workers  int
	// Passthrough holds the already normalized runner arguments supplied by the user.
	Passthrough invocation.Args
	// StartedAt stamps the run for the jest environment.
	StartedAt time.Time
}

// NewContext derives the platform and worker count from cfg.
func NewContext(cfg config.Unified, passthrough invocation.Args, startedAt time.Time) Context {
	if passthrough.Flags == nil {
		passthrough.Flags = invocation.NewMapping()
	}
	return Context{
		Config:      cfg,
		Platform:    domain.ParsePlatform(cfg.Device.Type),
		Workers:     cfg.CLI.Workers(),
		Passthrough: passthrough,
		StartedAt:   startedAt,
	}
}

// specs returns the user supplied specs, falling back to the runner's default spec path.
// The fallback is skipped when one of booleans holds a non-boolean value: the runner's own
// parser will read that value as the spec the user asked for.
func (c Context) specs(booleans map[string]struct{}) []string {
	if len(c.Passthrough.Positional) > 0 {
		return append([]string(nil), c.Passthrough.Positional...)
	}
	if c.Config.Runner.Specs == "" || swallowsSpec(c.Passthrough.Flags, booleans) {
		return nil
	}
	return []string{c.Config.Runner.Specs}
}

func swallowsSpec(flags *invocation.Mapping, booleans map[string]struct{}) bool {
	swallowed := false
	flags.Each(func(key string, v invocation.Value) {
		positive := strings.TrimPrefix(key, "no-")
		if _, ok := booleans[positive]; ok && !v.IsBool() {
			swallowed = true
		}
	})
	return swallowed
}

func (c Context) noColor() bool {
	return c.Config.CLI.NoColor != nil && *c.Config.CLI.NoColor
}
