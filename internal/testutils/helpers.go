package testutils

import (
	"context"
	"fmt"
	"sync"

	"github.com/aretw0/detox-cli/pkg/domain"
	"github.com/aretw0/detox-cli/pkg/ports"
)

// FakeLauncher records every launched command and fails according to Results.
// Launches beyond len(Results) succeed.
type FakeLauncher struct {
	mu       sync.Mutex
	Results  []error
	Commands []ports.Command
}

// FailTimes returns a launcher whose first n launches exit non-zero.
func FailTimes(n int) *FakeLauncher {
	l := &FakeLauncher{}
	for i := 0; i < n; i++ {
		l.Results = append(l.Results, fmt.Errorf("%w: exit status 1", domain.ErrLaunchFailed))
	}
	return l
}

// Launch implements ports.Launcher.
func (l *FakeLauncher) Launch(cmd ports.Command) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	n := len(l.Commands)
	l.Commands = append(l.Commands, cmd)
	if n < len(l.Results) {
		return l.Results[n]
	}
	return nil
}

// Lines returns the launched command lines in order.
func (l *FakeLauncher) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	lines := make([]string, len(l.Commands))
	for i, c := range l.Commands {
		lines[i] = c.Line
	}
	return lines
}

// FailedSpecs is an in-memory ports.FailedSpecsSource replaying one record per read.
// Reads beyond the scripted records repeat the last one.
type FailedSpecs struct {
	mu      sync.Mutex
	Records [][]string
	Err     error
	Reads   int
}

// NewFailedSpecs scripts the records returned by consecutive reads.
// A nil record reads as missing.
func NewFailedSpecs(records ...[]string) *FailedSpecs {
	return &FailedSpecs{Records: records}
}

// ReadFailedSpecs implements ports.FailedSpecsSource.
func (f *FailedSpecs) ReadFailedSpecs(ctx context.Context) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.Reads++
	if f.Err != nil {
		return nil, f.Err
	}
	if len(f.Records) == 0 {
		return nil, domain.ErrNoFailedSpecs
	}
	i := f.Reads - 1
	if i >= len(f.Records) {
		i = len(f.Records) - 1
	}
	if f.Records[i] == nil {
		return nil, domain.ErrNoFailedSpecs
	}
	return append([]string(nil), f.Records[i]...), nil
}

// DeviceRegistry records lock file resets.
type DeviceRegistry struct {
	mu     sync.Mutex
	Resets []domain.Platform
	Err    error
}

// ResetLockFile implements ports.DeviceRegistry.
func (r *DeviceRegistry) ResetLockFile(platform domain.Platform) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.Resets = append(r.Resets, platform)
	return r.Err
}
