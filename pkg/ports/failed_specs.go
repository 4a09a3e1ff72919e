package ports

import (
	"context"

	"github.com/aretw0/detox-cli/pkg/domain"
)

// FailedSpecsSource reads the failed-specs record written by the runner on a failing run.
type FailedSpecsSource interface {
	// ReadFailedSpecs returns the failed spec paths in record order.
	// Returns domain.ErrNoFailedSpecs if the record does not exist.
	// An existing but empty record yields an empty slice.
	ReadFailedSpecs(ctx context.Context) ([]string, error)
}

// DeviceRegistry owns the device registry lock files.
type DeviceRegistry interface {
	// ResetLockFile empties the lock file of the platform, creating it if needed.
	ResetLockFile(platform domain.Platform) error
}
