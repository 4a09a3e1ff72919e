package runners_test

import (
	"strings"
	"testing"
	"time"

	"github.com/aretw0/detox-cli/pkg/argv"
	"github.com/aretw0/detox-cli/pkg/command"
	"github.com/aretw0/detox-cli/pkg/config"
	"github.com/aretw0/detox-cli/pkg/invocation"
	"github.com/aretw0/detox-cli/pkg/runners"
	"github.com/stretchr/testify/assert"
)

func mochaConfig(deviceType string) config.Unified {
	return config.Unified{
		Device: config.DeviceConfig{Type: deviceType},
		Runner: config.RunnerConfig{TestRunner: "mocha", RunnerConfig: "e2e/.mocharc", Specs: "e2e"},
	}
}

func buildMocha(cfg config.Unified, passthrough invocation.Args) invocation.Descriptor {
	return runners.BuildMocha(runners.NewContext(cfg, passthrough, time.Unix(0, 0)))
}

func TestBuildMocha_Colors(t *testing.T) {
	t.Run("Enabled unless disabled", func(t *testing.T) {
		d := buildMocha(mochaConfig("ios.simulator"), invocation.NewArgs())
		assert.Equal(t, invocation.Bool(true), d.Argv.Flags.Get("colors"))
	})

	t.Run("Explicitly disabled", func(t *testing.T) {
		cfg := mochaConfig("ios.simulator")
		cfg.CLI.NoColor = config.Ptr(true)
		d := buildMocha(cfg, invocation.NewArgs())

		assert.Equal(t, invocation.Bool(false), d.Argv.Flags.Get("colors"))
		assert.Contains(t, command.Render("./mocha", d, command.SpaceStyle), "--no-colors")
	})
}

func TestBuildMocha_Platform(t *testing.T) {
	t.Run("iOS excludes android specs", func(t *testing.T) {
		d := buildMocha(mochaConfig("ios.simulator"), invocation.NewArgs())
		assert.Equal(t, invocation.String(":android:"), d.Argv.Flags.Get("grep"))
		assert.Equal(t, invocation.Bool(true), d.Argv.Flags.Get("invert"))
	})

	t.Run("Android excludes ios specs", func(t *testing.T) {
		d := buildMocha(mochaConfig("android.emulator"), invocation.NewArgs())
		assert.Equal(t, invocation.String(":ios:"), d.Argv.Flags.Get("grep"))
		assert.Equal(t, invocation.Bool(true), d.Argv.Flags.Get("invert"))
	})

	t.Run("Unknown platform sets neither flag", func(t *testing.T) {
		d := buildMocha(mochaConfig(""), invocation.NewArgs())
		assert.False(t, d.Argv.Flags.Has("grep"))
		assert.False(t, d.Argv.Flags.Has("invert"))
	})
}

func TestBuildMocha_ConfigFlag(t *testing.T) {
	cfg := mochaConfig("ios.simulator")
	d := buildMocha(cfg, invocation.NewArgs())
	assert.Equal(t, invocation.String("e2e/.mocharc"), d.Argv.Flags.Get("config"))
	assert.False(t, d.Argv.Flags.Has("opts"))

	cfg.Runner.RunnerConfig = "e2e/mocha.opts"
	d = buildMocha(cfg, invocation.NewArgs())
	assert.Equal(t, invocation.String("e2e/mocha.opts"), d.Argv.Flags.Get("opts"))
	assert.False(t, d.Argv.Flags.Has("config"))

	cfg.Runner.RunnerConfig = ""
	d = buildMocha(cfg, invocation.NewArgs())
	assert.False(t, d.Argv.Flags.Has("config"))
}

func TestBuildMocha_OneToOneOptions(t *testing.T) {
	cfg := mochaConfig("android.emulator")
	cfg.CLI = config.CLIConfig{
		Cleanup:              config.Ptr(true),
		Configuration:        config.Ptr("android.emu.release"),
		GPU:                  config.Ptr("swiftshader_indirect"),
		Headless:             config.Ptr(true),
		Loglevel:             config.Ptr("trace"),
		Reuse:                config.Ptr(false),
		ArtifactsLocation:    config.Ptr("artifacts"),
		ConfigPath:           config.Ptr(".detoxrc.json"),
		DebugSynchronization: config.Ptr(0),
		DeviceName:           config.Ptr("Pixel_API_28"),
		ForceAdbInstall:      config.Ptr(true),
		RecordLogs:           config.Ptr("all"),
		RecordPerformance:    config.Ptr("none"),
		RecordVideos:         config.Ptr("failing"),
		TakeScreenshots:      config.Ptr("manual"),
		UseCustomLogger:      config.Ptr(true),
		DeviceLaunchArgs:     config.Ptr("-detoxPrintBusyIdleResources YES"),
		Workers:              config.Ptr(3),
	}

	d := buildMocha(cfg, invocation.NewArgs())
	flags := d.Argv.Flags

	assert.Equal(t, []string{
		"config", "cleanup", "colors", "configuration", "gpu", "grep", "invert", "headless",
		"loglevel", "artifacts-location", "config-path", "debug-synchronization", "device-name",
		"force-adb-install", "record-logs", "record-performance", "record-videos",
		"take-screenshots", "use-custom-logger",
	}, flags.Keys())
	assert.False(t, flags.Has("reuse"), "falsy options are not applicable")
	assert.Equal(t, invocation.Int(0), flags.Get("debug-synchronization"), "zero is a valid timeout")
	assert.False(t, flags.Has("maxWorkers"), "workers are ignored by mocha")

	assert.Equal(t, []string{"deviceLaunchArgs"}, d.Env.Keys())
	assert.Equal(t, "-detoxPrintBusyIdleResources YES", d.Env.Get("deviceLaunchArgs").String())
}

func TestBuildMocha_ForceAdbInstallIsAndroidOnly(t *testing.T) {
	cfg := mochaConfig("ios.simulator")
	cfg.CLI.ForceAdbInstall = config.Ptr(true)

	d := buildMocha(cfg, invocation.NewArgs())
	assert.False(t, d.Argv.Flags.Has("force-adb-install"))
}

func TestBuildMocha_Passthrough(t *testing.T) {
	passthrough := invocation.NewArgs()
	passthrough.Flags.
		Set("grep", invocation.String("login")).
		Set("bail", invocation.Bool(true))
	passthrough.Positional = []string{"e2e/login.spec.js"}

	d := buildMocha(mochaConfig("ios.simulator"), passthrough)

	assert.Equal(t, invocation.String("login"), d.Argv.Flags.Get("grep"), "caller flags win")
	assert.Equal(t, invocation.Bool(true), d.Argv.Flags.Get("bail"))
	assert.Equal(t, []string{"e2e/login.spec.js"}, d.Specs)
	assert.Empty(t, d.Argv.Positional)
}

func TestBuildMocha_DefaultSpecs(t *testing.T) {
	d := buildMocha(mochaConfig("ios.simulator"), invocation.NewArgs())
	assert.Equal(t, []string{"e2e"}, d.Specs)

	cfg := mochaConfig("ios.simulator")
	cfg.Runner.Specs = ""
	d = buildMocha(cfg, invocation.NewArgs())
	assert.Empty(t, d.Specs)
}

func TestBuildMocha_PassthroughNegation(t *testing.T) {
	d := buildMocha(mochaConfig("ios.simulator"), argv.Parse([]string{"--no-invert", "--no-colors"}))
	line := command.Render("./mocha", d, command.SpaceStyle)

	assert.Equal(t, invocation.Bool(false), d.Argv.Flags.Get("invert"))
	assert.Equal(t, 1, strings.Count(line, "--no-invert"))
	assert.Equal(t, 1, strings.Count(line, "--no-colors"))
	assert.NotContains(t, line, " --invert")
	assert.NotContains(t, line, " --colors")
	assert.Equal(t, "./mocha e2e --config e2e/.mocharc --no-colors --grep :android: --no-invert", line)
}

func TestBuildMocha_SwallowedSpec(t *testing.T) {
	t.Run("Boolean flag bound to a spec", func(t *testing.T) {
		d := buildMocha(mochaConfig("ios.simulator"), argv.Parse([]string{"--bail", "e2e/a.test.js"}))

		assert.Empty(t, d.Specs, "no default spec next to the one the user asked for")
		assert.Equal(t, "./mocha --config e2e/.mocharc --colors --grep :android: --invert --bail e2e/a.test.js",
			command.Render("./mocha", d, command.SpaceStyle))
	})

	t.Run("Negated alias bound to a spec", func(t *testing.T) {
		d := buildMocha(mochaConfig("ios.simulator"), argv.Parse([]string{"--no-exit", "e2e/a.test.js"}))
		assert.Empty(t, d.Specs)
	})

	t.Run("Valued flags keep the default", func(t *testing.T) {
		d := buildMocha(mochaConfig("ios.simulator"), argv.Parse([]string{"--grep", "login", "--bail"}))
		assert.Equal(t, []string{"e2e"}, d.Specs)
	})
}
