// Package config holds the unified configuration consumed by the test orchestrator.
//
// The unified configuration is produced upstream by merging CLI flags, the project
// configuration and the selected device/runner entries. This package only decodes that
// merged result; it never looks up or merges project configuration files itself.
package config

// CLIConfig holds the orchestrator-level options.
// Every field is optional: nil means "not configured", which is distinct from a zero value.
type CLIConfig struct {
	ConfigPath           *string `mapstructure:"configPath" yaml:"configPath,omitempty" json:"configPath,omitempty"`
	Configuration        *string `mapstructure:"configuration" yaml:"configuration,omitempty" json:"configuration,omitempty"`
	Loglevel             *string `mapstructure:"loglevel" yaml:"loglevel,omitempty" json:"loglevel,omitempty"`
	NoColor              *bool   `mapstructure:"noColor" yaml:"noColor,omitempty" json:"noColor,omitempty"`
	Cleanup              *bool   `mapstructure:"cleanup" yaml:"cleanup,omitempty" json:"cleanup,omitempty"`
	Reuse                *bool   `mapstructure:"reuse" yaml:"reuse,omitempty" json:"reuse,omitempty"`
	DebugSynchronization *int    `mapstructure:"debugSynchronization" yaml:"debugSynchronization,omitempty" json:"debugSynchronization,omitempty"`
	GPU                  *string `mapstructure:"gpu" yaml:"gpu,omitempty" json:"gpu,omitempty"`
	Headless             *bool   `mapstructure:"headless" yaml:"headless,omitempty" json:"headless,omitempty"`
	ArtifactsLocation    *string `mapstructure:"artifactsLocation" yaml:"artifactsLocation,omitempty" json:"artifactsLocation,omitempty"`
	RecordLogs           *string `mapstructure:"recordLogs" yaml:"recordLogs,omitempty" json:"recordLogs,omitempty"`
	TakeScreenshots      *string `mapstructure:"takeScreenshots" yaml:"takeScreenshots,omitempty" json:"takeScreenshots,omitempty"`
	RecordVideos         *string `mapstructure:"recordVideos" yaml:"recordVideos,omitempty" json:"recordVideos,omitempty"`
	RecordPerformance    *string `mapstructure:"recordPerformance" yaml:"recordPerformance,omitempty" json:"recordPerformance,omitempty"`
	RecordTimeline       *string `mapstructure:"recordTimeline" yaml:"recordTimeline,omitempty" json:"recordTimeline,omitempty"`
	DeviceName           *string `mapstructure:"deviceName" yaml:"deviceName,omitempty" json:"deviceName,omitempty"`
	DeviceLaunchArgs     *string `mapstructure:"deviceLaunchArgs" yaml:"deviceLaunchArgs,omitempty" json:"deviceLaunchArgs,omitempty"`
	UseCustomLogger      *bool   `mapstructure:"useCustomLogger" yaml:"useCustomLogger,omitempty" json:"useCustomLogger,omitempty"`
	ForceAdbInstall      *bool   `mapstructure:"forceAdbInstall" yaml:"forceAdbInstall,omitempty" json:"forceAdbInstall,omitempty"`
	Workers              *int    `mapstructure:"workers" yaml:"workers,omitempty" json:"workers,omitempty"`
	JestReportSpecs      *string `mapstructure:"jestReportSpecs" yaml:"jestReportSpecs,omitempty" json:"jestReportSpecs,omitempty"`
	KeepLockFile         *bool   `mapstructure:"keepLockFile" yaml:"keepLockFile,omitempty" json:"keepLockFile,omitempty"`
}

// DeviceConfig identifies the selected device.
type DeviceConfig struct {
	Type string `mapstructure:"type" yaml:"type" json:"type"`
	Name string `mapstructure:"name" yaml:"name,omitempty" json:"name,omitempty"`
}

// RunnerConfig identifies the selected test runner.
type RunnerConfig struct {
	TestRunner   string `mapstructure:"testRunner" yaml:"testRunner" json:"testRunner"`
	RunnerConfig string `mapstructure:"runnerConfig" yaml:"runnerConfig,omitempty" json:"runnerConfig,omitempty"`
	Specs        string `mapstructure:"specs" yaml:"specs,omitempty" json:"specs,omitempty"`
}

// Unified is the merged configuration of a single `test` invocation.
// It is treated as immutable once built.
type Unified struct {
	CLI    CLIConfig    `mapstructure:"cli" yaml:"cli" json:"cli"`
	Device DeviceConfig `mapstructure:"device" yaml:"device" json:"device"`
	Runner RunnerConfig `mapstructure:"runner" yaml:"runner" json:"runner"`
}

// DefaultWorkers is used when no worker count is configured.
const DefaultWorkers = 1

// Workers returns the configured worker count or DefaultWorkers.
func (c CLIConfig) Workers() int {
	if c.Workers == nil {
		return DefaultWorkers
	}
	return *c.Workers
}

// KeepsLockFile reports whether the device registry lock file must be left alone.
func (c CLIConfig) KeepsLockFile() bool {
	return c.KeepLockFile != nil && *c.KeepLockFile
}

// Overlay returns a copy of u where every option set in over replaces the base value.
func (u Unified) Overlay(over CLIConfig) Unified {
	c := &u.CLI
	pick(&c.ConfigPath, over.ConfigPath)
	pick(&c.Configuration, over.Configuration)
	pick(&c.Loglevel, over.Loglevel)
	pick(&c.NoColor, over.NoColor)
	pick(&c.Cleanup, over.Cleanup)
	pick(&c.Reuse, over.Reuse)
	pick(&c.DebugSynchronization, over.DebugSynchronization)
	pick(&c.GPU, over.GPU)
	pick(&c.Headless, over.Headless)
	pick(&c.ArtifactsLocation, over.ArtifactsLocation)
	pick(&c.RecordLogs, over.RecordLogs)
	pick(&c.TakeScreenshots, over.TakeScreenshots)
	pick(&c.RecordVideos, over.RecordVideos)
	pick(&c.RecordPerformance, over.RecordPerformance)
	pick(&c.RecordTimeline, over.RecordTimeline)
	pick(&c.DeviceName, over.DeviceName)
	pick(&c.DeviceLaunchArgs, over.DeviceLaunchArgs)
	pick(&c.UseCustomLogger, over.UseCustomLogger)
	pick(&c.ForceAdbInstall, over.ForceAdbInstall)
	pick(&c.Workers, over.Workers)
	pick(&c.JestReportSpecs, over.JestReportSpecs)
	pick(&c.KeepLockFile, over.KeepLockFile)
	return u
}

func pick[T any](dst **T, over *T) {
	if over != nil {
		v := *over
		*dst = &v
	}
}

// Ptr returns a pointer to v. Handy for building configurations in code.
func Ptr[T any](v T) *T {
	return &v
}
