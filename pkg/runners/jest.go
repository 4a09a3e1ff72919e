package runners

import (
	"fmt"

	"github.com/alessio/shellescape"
	"github.com/aretw0/detox-cli/pkg/domain"
	"github.com/aretw0/detox-cli/pkg/invocation"
)

// ExclusionPattern returns the test name pattern matching every spec that is not
// tagged with tag, shell-escaped for embedding in a command line.
func ExclusionPattern(tag string) string {
	return shellescape.Quote(fmt.Sprintf("^((?!%s).)*$", tag))
}

// BuildJest builds the snapshot/parallel runner invocation.
func BuildJest(c Context) invocation.Descriptor {
	cli := c.Config.CLI
	runnerConfig := c.Config.Runner.RunnerConfig
	singleWorker := c.Workers == 1

	color := invocation.Absent()
	if c.noColor() {
		color = invocation.Bool(false)
	}

	testNamePattern := invocation.Absent()
	if tag := c.Platform.ExclusionTag(); tag != "" {
		testNamePattern = invocation.Verbatim(ExclusionPattern(tag))
	}

	flags := invocation.NewMapping().
		Set("color", color).
		Set("config", invocation.TruthyString(&runnerConfig)).
		Set("testNamePattern", testNamePattern).
		Set("maxWorkers", invocation.Int(c.Workers)).
		Merge(c.Passthrough.Flags)

	readOnlyEmu := invocation.Absent()
	if c.Platform == domain.PlatformAndroid {
		readOnlyEmu = invocation.Bool(!singleWorker)
	}

	reportSpecs := invocation.Bool(singleWorker)
	if cli.JestReportSpecs != nil {
		reportSpecs = invocation.Bool(*cli.JestReportSpecs == "true")
	}

	env := invocation.NewMapping().
		Set("DETOX_START_TIMESTAMP", invocation.Number(float64(c.StartedAt.UnixMilli()))).
		Set("configPath", invocation.OptString(cli.ConfigPath)).
		Set("configuration", invocation.OptString(cli.Configuration)).
		Set("loglevel", invocation.OptString(cli.Loglevel)).
		Set("cleanup", invocation.OptBool(cli.Cleanup)).
		Set("reuse", invocation.OptBool(cli.Reuse)).
		Set("debugSynchronization", invocation.OptInt(cli.DebugSynchronization)).
		Set("gpu", invocation.OptString(cli.GPU)).
		Set("headless", invocation.OptBool(cli.Headless)).
		Set("artifactsLocation", invocation.OptString(cli.ArtifactsLocation)).
		Set("recordLogs", invocation.OptString(cli.RecordLogs)).
		Set("takeScreenshots", invocation.OptString(cli.TakeScreenshots)).
		Set("recordVideos", invocation.OptString(cli.RecordVideos)).
		Set("recordPerformance", invocation.OptString(cli.RecordPerformance)).
		Set("recordTimeline", invocation.OptString(cli.RecordTimeline)).
		Set("deviceName", invocation.OptString(cli.DeviceName)).
		Set("deviceLaunchArgs", invocation.OptString(cli.DeviceLaunchArgs)).
		Set("useCustomLogger", invocation.OptBool(cli.UseCustomLogger)).
		Set("forceAdbInstall", invocation.OptBool(cli.ForceAdbInstall)).
		Set("readOnlyEmu", readOnlyEmu).
		Set("reportSpecs", reportSpecs)

	return invocation.Descriptor{
		Argv:  invocation.Args{Flags: flags},
		Env:   env,
		// NormalizeJest already moved swallowed specs to the positionals.
		Specs: c.specs(nil),
	}
}
