package domain

import "strings"

// Platform is the mobile platform targeted by a test run.
type Platform string

const (
	PlatformUnknown Platform = ""
	PlatformIOS     Platform = "ios"
	PlatformAndroid Platform = "android"
)

// ParsePlatform derives the platform from a device type such as "ios.simulator"
// or "android.emulator". Only the first dot-separated segment is considered.
func ParsePlatform(deviceType string) Platform {
	head, _, _ := strings.Cut(deviceType, ".")
	return Platform(head)
}

// Known reports whether a platform was derived at all.
func (p Platform) Known() bool {
	return p != PlatformUnknown
}

// ExclusionTag returns the tag convention of the other platform, i.e. the tag
// whose specs must be skipped when targeting p. Empty for unrecognized platforms.
func (p Platform) ExclusionTag() string {
	switch p {
	case PlatformIOS:
		return ":android:"
	case PlatformAndroid:
		return ":ios:"
	default:
		return ""
	}
}
