package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aretw0/detox-cli"
	"github.com/aretw0/detox-cli/internal/adapters/redis"
	"github.com/aretw0/detox-cli/internal/logging"
	"github.com/aretw0/detox-cli/pkg/argv"
	"github.com/aretw0/detox-cli/pkg/config"
	"github.com/aretw0/detox-cli/pkg/observability"
	"github.com/spf13/cobra"
)

var testCmd = &cobra.Command{
	Use:   "test [specs...] [-- runner args...]",
	Short: "Run your test suite with the test runner specified in the configuration",
	Long: `Runs the configured test runner (mocha or jest) from node_modules/.bin.

Arguments the orchestrator does not own are passed to the runner; place runner flags
after "--". With --retries, only the specs that failed are run again.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		req, err := buildRequest(cmd, args)
		if err != nil {
			return err
		}

		level, err := logging.ParseLevel(pointee(req.Config.CLI.Loglevel))
		if err != nil {
			return err
		}
		logger := logging.New(level)

		opts := []detox.Option{detox.WithLogger(logger)}

		if addr, _ := cmd.Flags().GetString("failed-specs-redis"); addr != "" {
			key, _ := cmd.Flags().GetString("failed-specs-redis-key")
			store := redis.New(addr, "", 0, redis.WithKey(key))
			defer store.Close()
			opts = append(opts, detox.WithFailedSpecs(store))
		}

		metricsFile, _ := cmd.Flags().GetString("metrics-file")
		var metrics *observability.Metrics
		if metricsFile != "" {
			metrics = observability.NewMetrics()
			opts = append(opts, detox.WithMetrics(metrics))
		}

		tester, err := detox.New(opts...)
		if err != nil {
			return err
		}

		testErr := tester.Test(context.Background(), req)
		writeMetrics(logger, metrics, metricsFile)
		return testErr
	},
}

func init() {
	rootCmd.AddCommand(testCmd)
	registerTestFlags(testCmd)
}

func registerTestFlags(cmd *cobra.Command) {
	f := cmd.Flags()

	f.String("unified-config", "", "Path to the composed configuration document (YAML or JSON) with cli, device and runner sections")

	f.StringP("configuration", "c", "", "Select a device configuration")
	f.StringP("config-path", "C", "", "Specify Detox config file path")
	f.Bool("no-color", false, "Disable colors in log output")
	f.Bool("cleanup", false, "Shutdown simulator when test is over")
	f.BoolP("reuse", "r", false, "Reuse existing installed app for a faster test run")
	f.IntP("debug-synchronization", "d", 0, "Print app synchronization status every N milliseconds while waiting")
	f.String("gpu", "", "[Android only] Launch the emulator with a specific GPU mode")
	f.Bool("headless", false, "Launch the emulator or simulator in headless mode")
	f.StringP("artifacts-location", "a", "", "Artifacts root directory")
	f.String("record-logs", "", "Save logs during each test to artifacts directory: failing, all, none")
	f.String("take-screenshots", "", "Save screenshots before and after each test: manual, failing, all, none")
	f.String("record-videos", "", "Save screen recordings of each test: failing, all, none")
	f.String("record-performance", "", "[iOS only] Save Detox Instruments performance recordings: all, none")
	f.String("record-timeline", "", "[Jest only] Record tests and events timeline: all, none")
	f.StringP("device-name", "n", "", "Override the device name or AVD name")
	f.String("device-launch-args", "", "Custom arguments to pass into the app launch")
	f.Bool("use-custom-logger", false, "Use Detox' custom console-logging implementation")
	f.Bool("force-adb-install", false, "[Android only] Force 'adb install' instead of 'pm install'")
	f.IntP("workers", "w", config.DefaultWorkers, "[iOS and Jest only] Number of parallel workers")
	f.String("jest-report-specs", "", "[Jest only] Report each spec file progress: true, false")
	f.Bool("keep-lockfile", false, "Do not reset the device registry lock file before running")
	f.IntP("retries", "R", 0, "Re-run failed specs up to N times")

	f.String("device-type", "", "Device type, e.g. ios.simulator or android.emulator")
	f.String("test-runner", "", "Test runner: mocha or jest")
	f.String("runner-config", "", "Test runner configuration file")
	f.String("specs", "", "Default spec path when none is given")

	f.String("metrics-file", "", "Write Prometheus metrics of the run to this file")
	f.String("failed-specs-redis", "", "Read failed specs from this Redis address instead of the local record")
	f.String("failed-specs-redis-key", redis.DefaultKey, "Redis key holding the failed specs record")
}

// buildRequest layers the flags the user actually set over the unified config document.
func buildRequest(cmd *cobra.Command, args []string) (detox.Request, error) {
	var cfg config.Unified
	if path, _ := cmd.Flags().GetString("unified-config"); path != "" {
		doc, err := config.LoadDocument(path)
		if err != nil {
			return detox.Request{}, err
		}
		cfg = doc
	}

	cfg = cfg.Overlay(config.CLIConfig{
		ConfigPath:           stringFlag(cmd, "config-path"),
		Configuration:        stringFlag(cmd, "configuration"),
		Loglevel:             stringFlag(cmd, "loglevel"),
		NoColor:              boolFlag(cmd, "no-color"),
		Cleanup:              boolFlag(cmd, "cleanup"),
		Reuse:                boolFlag(cmd, "reuse"),
		DebugSynchronization: intFlag(cmd, "debug-synchronization"),
		GPU:                  stringFlag(cmd, "gpu"),
		Headless:             boolFlag(cmd, "headless"),
		ArtifactsLocation:    stringFlag(cmd, "artifacts-location"),
		RecordLogs:           stringFlag(cmd, "record-logs"),
		TakeScreenshots:      stringFlag(cmd, "take-screenshots"),
		RecordVideos:         stringFlag(cmd, "record-videos"),
		RecordPerformance:    stringFlag(cmd, "record-performance"),
		RecordTimeline:       stringFlag(cmd, "record-timeline"),
		DeviceName:           stringFlag(cmd, "device-name"),
		DeviceLaunchArgs:     stringFlag(cmd, "device-launch-args"),
		UseCustomLogger:      boolFlag(cmd, "use-custom-logger"),
		ForceAdbInstall:      boolFlag(cmd, "force-adb-install"),
		Workers:              intFlag(cmd, "workers"),
		JestReportSpecs:      stringFlag(cmd, "jest-report-specs"),
		KeepLockFile:         boolFlag(cmd, "keep-lockfile"),
	})

	if v := stringFlag(cmd, "device-type"); v != nil {
		cfg.Device.Type = *v
	}
	if v := stringFlag(cmd, "test-runner"); v != nil {
		cfg.Runner.TestRunner = *v
	}
	if v := stringFlag(cmd, "runner-config"); v != nil {
		cfg.Runner.RunnerConfig = *v
	}
	if v := stringFlag(cmd, "specs"); v != nil {
		cfg.Runner.Specs = *v
	}

	if cfg.Runner.TestRunner == "" {
		return detox.Request{}, fmt.Errorf("no test runner configured: use --test-runner or --unified-config")
	}

	retries, _ := cmd.Flags().GetInt("retries")

	return detox.Request{
		Config:      cfg,
		Passthrough: argv.Parse(args),
		Retries:     retries,
	}, nil
}

func writeMetrics(logger *slog.Logger, metrics *observability.Metrics, path string) {
	if metrics == nil {
		return
	}
	if err := metrics.WriteTextfile(path); err != nil {
		logger.Warn("failed to write metrics", "path", path, "error", err)
	}
}

func stringFlag(cmd *cobra.Command, name string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetString(name)
	return &v
}

func boolFlag(cmd *cobra.Command, name string) *bool {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetBool(name)
	return &v
}

func intFlag(cmd *cobra.Command, name string) *int {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetInt(name)
	return &v
}

func pointee(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
