// Package environment resolves the on-disk locations shared with the device registry.
package environment

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/aretw0/detox-cli/pkg/domain"
)

// EnvLibraryRoot overrides the detox library root directory.
const EnvLibraryRoot = "DETOX_LIBRARY_ROOT"

const (
	deviceLockFileIOS     = "device.registry.state.lock"
	deviceLockFileAndroid = "android-device.registry.state.lock"
	lastFailedTestsFile   = "last-failed.txt"
)

// Paths locates the files owned by the device registry.
type Paths struct {
	Root string
}

// Default resolves the library root from EnvLibraryRoot, falling back to ~/Library/Detox.
func Default() (Paths, error) {
	if root := os.Getenv(EnvLibraryRoot); root != "" {
		return Paths{Root: root}, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return Paths{}, fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return Paths{Root: filepath.Join(home, "Library", "Detox")}, nil
}

// DeviceLockFile returns the registry lock file of platform.
// Anything but iOS uses the Android registry.
func (p Paths) DeviceLockFile(platform domain.Platform) string {
	if platform == domain.PlatformIOS {
		return filepath.Join(p.Root, deviceLockFileIOS)
	}
	return filepath.Join(p.Root, deviceLockFileAndroid)
}

// LastFailedTests returns the failed-specs record written by the runner.
func (p Paths) LastFailedTests() string {
	return filepath.Join(p.Root, lastFailedTestsFile)
}
