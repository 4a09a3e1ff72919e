package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/detox-cli/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_WeakTyping(t *testing.T) {
	u, err := config.Decode(map[string]any{
		"cli": map[string]any{
			"configuration":        "ios.sim.release",
			"noColor":              "true",
			"workers":              "4",
			"debugSynchronization": float64(0),
			"jestReportSpecs":      true,
		},
	})
	require.NoError(t, err)
	cli := u.CLI

	assert.Equal(t, "ios.sim.release", *cli.Configuration)
	assert.True(t, *cli.NoColor)
	assert.Equal(t, 4, cli.Workers())
	require.NotNil(t, cli.DebugSynchronization)
	assert.Equal(t, 0, *cli.DebugSynchronization)
	assert.Equal(t, "true", *cli.JestReportSpecs)
	assert.Nil(t, cli.Cleanup, "unset options stay nil")
}

func TestCLIConfig_Defaults(t *testing.T) {
	var cli config.CLIConfig
	assert.Equal(t, config.DefaultWorkers, cli.Workers())
	assert.False(t, cli.KeepsLockFile())
}

func TestUnified_Overlay(t *testing.T) {
	base := config.Unified{
		CLI: config.CLIConfig{
			Configuration: config.Ptr("ios.sim.debug"),
			Workers:       config.Ptr(2),
		},
		Runner: config.RunnerConfig{TestRunner: "jest"},
	}

	merged := base.Overlay(config.CLIConfig{
		Workers: config.Ptr(1),
		NoColor: config.Ptr(false),
	})

	assert.Equal(t, 1, merged.CLI.Workers())
	assert.Equal(t, "ios.sim.debug", *merged.CLI.Configuration)
	require.NotNil(t, merged.CLI.NoColor)
	assert.False(t, *merged.CLI.NoColor)
	assert.Equal(t, 2, base.CLI.Workers(), "overlay must not touch the base")
	assert.Equal(t, "jest", merged.Runner.TestRunner)
}

func TestLoadDocument(t *testing.T) {
	dir := t.TempDir()

	t.Run("YAML", func(t *testing.T) {
		path := filepath.Join(dir, "unified.yaml")
		content := `
cli:
  configuration: android.emu.debug
  workers: 3
  keepLockFile: true
device:
  type: android.emulator
  name: Pixel_API_28
runner:
  testRunner: jest
  runnerConfig: e2e/config.json
  specs: e2e
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		u, err := config.LoadDocument(path)
		require.NoError(t, err)
		assert.Equal(t, 3, u.CLI.Workers())
		assert.True(t, u.CLI.KeepsLockFile())
		assert.Equal(t, "android.emulator", u.Device.Type)
		assert.Equal(t, "e2e/config.json", u.Runner.RunnerConfig)
		assert.Equal(t, "e2e", u.Runner.Specs)
	})

	t.Run("JSON", func(t *testing.T) {
		path := filepath.Join(dir, "unified.json")
		content := `{"cli":{"noColor":true},"device":{"type":"ios.simulator"},"runner":{"testRunner":"mocha","runnerConfig":"e2e/.mocharc"}}`
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		u, err := config.LoadDocument(path)
		require.NoError(t, err)
		assert.True(t, *u.CLI.NoColor)
		assert.Equal(t, "mocha", u.Runner.TestRunner)
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := config.LoadDocument(filepath.Join(dir, "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("Malformed", func(t *testing.T) {
		path := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(path, []byte("{"), 0644))
		_, err := config.LoadDocument(path)
		assert.Error(t, err)
	})
}
