package runners

import (
	"path/filepath"

	"github.com/aretw0/detox-cli/pkg/domain"
	"github.com/aretw0/detox-cli/pkg/invocation"
)

// BuildMocha builds the BDD runner invocation.
// The worker count is ignored; mocha runs specs serially.
func BuildMocha(c Context) invocation.Descriptor {
	cli := c.Config.CLI
	runnerConfig := c.Config.Runner.RunnerConfig

	configFlag := "config"
	if filepath.Ext(runnerConfig) == ".opts" {
		configFlag = "opts"
	}

	grep, invert := invocation.Absent(), invocation.Absent()
	if tag := c.Platform.ExclusionTag(); tag != "" {
		grep, invert = invocation.String(tag), invocation.Bool(true)
	}

	forceAdbInstall := invocation.Absent()
	if c.Platform == domain.PlatformAndroid {
		forceAdbInstall = invocation.TruthyBool(cli.ForceAdbInstall)
	}

	flags := invocation.NewMapping().
		Set(configFlag, invocation.TruthyString(&runnerConfig)).
		Set("cleanup", invocation.TruthyBool(cli.Cleanup)).
		Set("colors", invocation.Bool(!c.noColor())).
		Set("configuration", invocation.TruthyString(cli.Configuration)).
		Set("gpu", invocation.TruthyString(cli.GPU)).
		Set("grep", grep).
		Set("invert", invert).
		Set("headless", invocation.TruthyBool(cli.Headless)).
		Set("loglevel", invocation.TruthyString(cli.Loglevel)).
		Set("reuse", invocation.TruthyBool(cli.Reuse)).
		Set("artifacts-location", invocation.TruthyString(cli.ArtifactsLocation)).
		Set("config-path", invocation.TruthyString(cli.ConfigPath)).
		Set("debug-synchronization", invocation.OptInt(cli.DebugSynchronization)).
		Set("device-name", invocation.TruthyString(cli.DeviceName)).
		Set("force-adb-install", forceAdbInstall).
		Set("record-logs", invocation.TruthyString(cli.RecordLogs)).
		Set("record-performance", invocation.TruthyString(cli.RecordPerformance)).
		Set("record-videos", invocation.TruthyString(cli.RecordVideos)).
		Set("take-screenshots", invocation.TruthyString(cli.TakeScreenshots)).
		Set("use-custom-logger", invocation.TruthyBool(cli.UseCustomLogger)).
		Merge(c.Passthrough.Flags)

	env := invocation.NewMapping().
		Set("deviceLaunchArgs", invocation.OptString(cli.DeviceLaunchArgs))

	return invocation.Descriptor{
		Argv:  invocation.Args{Flags: flags},
		Env:   env,
		Specs: c.specs(MochaBooleanFlags()),
	}
}
