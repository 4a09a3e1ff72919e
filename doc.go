/*
Package detox implements the `detox test` orchestrator.

It turns an already composed Detox configuration plus the arguments the user meant for
the test runner into a single runner command line, launches it from the project's
node_modules/.bin with the terminal attached, and re-runs only the failed specs when a
retry budget is configured.

Two runners are supported: mocha and jest. Each has its own argument dialect, selected
from the runner identifier in the configuration.

# Usage

	tester, err := detox.New(detox.WithLogger(logging.New(slog.LevelInfo)))
	if err != nil {
		log.Fatal(err)
	}

	err = tester.Test(ctx, detox.Request{
		Config: config.Unified{
			Device: config.DeviceConfig{Type: "ios.simulator"},
			Runner: config.RunnerConfig{TestRunner: "jest", RunnerConfig: "e2e/config.json"},
		},
		Passthrough: argv.Parse(os.Args[1:]),
		Retries:     2,
	})

A failed attempt reads the runner's last-failed record; when it is missing or empty the
failure is returned at once instead of being retried.
*/
package detox
