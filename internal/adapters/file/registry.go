package file

import (
	"fmt"

	"github.com/aretw0/detox-cli/internal/environment"
	"github.com/aretw0/detox-cli/pkg/domain"
)

// emptyRegistry is the serialized form of a registry with no locked devices.
const emptyRegistry = "[]"

// DeviceRegistry implements ports.DeviceRegistry on the registry lock files.
type DeviceRegistry struct {
	Paths environment.Paths
}

// NewDeviceRegistry creates a registry rooted at paths.
func NewDeviceRegistry(paths environment.Paths) *DeviceRegistry {
	return &DeviceRegistry{Paths: paths}
}

// ResetLockFile writes an empty device list to the platform's lock file, creating it if needed.
func (r *DeviceRegistry) ResetLockFile(platform domain.Platform) error {
	path := r.Paths.DeviceLockFile(platform)
	if err := writeAtomic(path, []byte(emptyRegistry)); err != nil {
		return fmt.Errorf("failed to reset device registry lock file %s: %w", path, err)
	}
	return nil
}
