package detox_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aretw0/detox-cli"
	"github.com/aretw0/detox-cli/internal/logging"
	"github.com/aretw0/detox-cli/internal/testutils"
	"github.com/aretw0/detox-cli/pkg/argv"
	"github.com/aretw0/detox-cli/pkg/config"
	"github.com/aretw0/detox-cli/pkg/domain"
	"github.com/aretw0/detox-cli/pkg/invocation"
	"github.com/aretw0/detox-cli/pkg/observability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var startedAt = time.UnixMilli(1712345678901)

type harness struct {
	launcher *testutils.FakeLauncher
	failed   *testutils.FailedSpecs
	devices  *testutils.DeviceRegistry
	logs     *bytes.Buffer
	tester   *detox.Tester
}

func newHarness(t *testing.T, launcher *testutils.FakeLauncher, failed *testutils.FailedSpecs, opts ...detox.Option) *harness {
	t.Helper()

	h := &harness{
		launcher: launcher,
		failed:   failed,
		devices:  &testutils.DeviceRegistry{},
		logs:     &bytes.Buffer{},
	}
	opts = append([]detox.Option{
		detox.WithLauncher(h.launcher),
		detox.WithFailedSpecs(h.failed),
		detox.WithDeviceRegistry(h.devices),
		detox.WithLogger(logging.NewWithWriter(h.logs, logging.LevelInfo)),
		detox.WithClock(func() time.Time { return startedAt }),
	}, opts...)

	tester, err := detox.New(opts...)
	require.NoError(t, err)
	h.tester = tester
	return h
}

func unified(deviceType, testRunner string) config.Unified {
	return config.Unified{
		Device: config.DeviceConfig{Type: deviceType},
		Runner: config.RunnerConfig{TestRunner: testRunner, RunnerConfig: "e2e/config.json", Specs: "e2e"},
	}
}

func TestTester_Jest(t *testing.T) {
	h := newHarness(t, &testutils.FakeLauncher{}, testutils.NewFailedSpecs())

	err := h.tester.Test(context.Background(), detox.Request{Config: unified("ios.simulator", "jest")})
	require.NoError(t, err)

	assert.Equal(t, []string{
		`./jest e2e --config=e2e/config.json --testNamePattern='^((?!:android:).)*$' --maxWorkers=1`,
	}, h.launcher.Lines())

	env := h.launcher.Commands[0].Env
	assert.Equal(t, invocation.Number(1712345678901), env.Get("DETOX_START_TIMESTAMP"))
	assert.Equal(t, invocation.Bool(true), env.Get("reportSpecs"))
	assert.Equal(t, []domain.Platform{domain.PlatformIOS}, h.devices.Resets)
}

func TestTester_Mocha(t *testing.T) {
	h := newHarness(t, &testutils.FakeLauncher{}, testutils.NewFailedSpecs())

	cfg := unified("android.emulator", "mocha")
	cfg.CLI.Workers = config.Ptr(3)

	err := h.tester.Test(context.Background(), detox.Request{
		Config:      cfg,
		Passthrough: argv.Parse([]string{"e2e/login.test.js", "--bail"}),
	})
	require.NoError(t, err)

	assert.Equal(t, []string{
		`./mocha e2e/login.test.js --config e2e/config.json --colors --grep :ios: --invert --bail`,
	}, h.launcher.Lines())
	assert.Contains(t, h.logs.String(), "Can not use -w, --workers")
}

func TestTester_JestNormalizesPassthrough(t *testing.T) {
	h := newHarness(t, &testutils.FakeLauncher{}, testutils.NewFailedSpecs())

	err := h.tester.Test(context.Background(), detox.Request{
		Config:      unified("ios.simulator", "jest"),
		Passthrough: argv.Parse([]string{"--no-color", "e2e/a.test.js"}),
	})
	require.NoError(t, err)

	assert.Equal(t, []string{
		`./jest e2e/a.test.js --no-color --config=e2e/config.json --testNamePattern='^((?!:android:).)*$' --maxWorkers=1`,
	}, h.launcher.Lines())
}

func TestTester_AndroidJestWorkersWarning(t *testing.T) {
	h := newHarness(t, &testutils.FakeLauncher{}, testutils.NewFailedSpecs())

	cfg := unified("android.emulator", "jest")
	cfg.CLI.Workers = config.Ptr(2)

	require.NoError(t, h.tester.Test(context.Background(), detox.Request{Config: cfg}))
	assert.Contains(t, h.logs.String(), "Multiple workers is an experimental feature on Android")
	assert.Equal(t, invocation.Bool(true), h.launcher.Commands[0].Env.Get("readOnlyEmu"))
}

func TestTester_RetriesFailedSpecs(t *testing.T) {
	metrics := observability.NewMetrics()
	h := newHarness(t,
		testutils.FailTimes(3),
		testutils.NewFailedSpecs([]string{"e2e/a.test.js", "e2e/b.test.js"}, []string{"e2e/b.test.js"}),
		detox.WithMetrics(metrics),
	)

	err := h.tester.Test(context.Background(), detox.Request{
		Config:  unified("ios.simulator", "jest"),
		Retries: 2,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrLaunchFailed)
	assert.Equal(t, []string{
		`./jest e2e --config=e2e/config.json --testNamePattern='^((?!:android:).)*$' --maxWorkers=1`,
		`./jest e2e/a.test.js e2e/b.test.js --config=e2e/config.json --testNamePattern='^((?!:android:).)*$' --maxWorkers=1`,
		`./jest e2e/b.test.js --config=e2e/config.json --testNamePattern='^((?!:android:).)*$' --maxWorkers=1`,
	}, h.launcher.Lines())
	assert.Contains(t, h.logs.String(), "Test run has failed for the following specs")
}

func TestTester_NoActionableFailures(t *testing.T) {
	h := newHarness(t, testutils.FailTimes(3), testutils.NewFailedSpecs([]string{}))

	err := h.tester.Test(context.Background(), detox.Request{
		Config:  unified("ios.simulator", "jest"),
		Retries: 2,
	})

	require.Error(t, err)
	assert.Len(t, h.launcher.Commands, 1)
}

func TestTester_UnsupportedRunner(t *testing.T) {
	h := newHarness(t, &testutils.FakeLauncher{}, testutils.NewFailedSpecs())

	err := h.tester.Test(context.Background(), detox.Request{Config: unified("ios.simulator", "ava")})

	var runtimeErr *domain.RuntimeError
	require.ErrorAs(t, err, &runtimeErr)
	assert.ErrorIs(t, err, domain.ErrUnsupportedRunner)
	assert.Contains(t, runtimeErr.Message, `"ava" is not supported in Detox CLI tools.`)
	assert.Empty(t, h.launcher.Commands, "nothing is launched")
	assert.Empty(t, h.devices.Resets, "lock file is untouched")
}

func TestTester_KeepLockFile(t *testing.T) {
	h := newHarness(t, &testutils.FakeLauncher{}, testutils.NewFailedSpecs())

	cfg := unified("ios.simulator", "jest")
	cfg.CLI.KeepLockFile = config.Ptr(true)

	require.NoError(t, h.tester.Test(context.Background(), detox.Request{Config: cfg}))
	assert.Empty(t, h.devices.Resets)
}

func TestTester_LockFileError(t *testing.T) {
	h := newHarness(t, &testutils.FakeLauncher{}, testutils.NewFailedSpecs())
	h.devices.Err = errors.New("read-only file system")

	err := h.tester.Test(context.Background(), detox.Request{Config: unified("ios.simulator", "jest")})

	require.Error(t, err)
	assert.Empty(t, h.launcher.Commands)
}
