package detox_test

import (
	"context"
	"fmt"
	"log"

	"github.com/aretw0/detox-cli"
	"github.com/aretw0/detox-cli/internal/testutils"
	"github.com/aretw0/detox-cli/pkg/config"
	"github.com/aretw0/detox-cli/pkg/ports"
)

// ExampleNew shows a dry run: the launcher prints the runner command instead of executing it.
func ExampleNew() {
	tester, err := detox.New(
		detox.WithLauncher(ports.LauncherFunc(func(cmd ports.Command) error {
			fmt.Println(cmd.Line)
			return nil
		})),
		detox.WithFailedSpecs(testutils.NewFailedSpecs()),
		detox.WithDeviceRegistry(&testutils.DeviceRegistry{}),
	)
	if err != nil {
		log.Fatal(err)
	}

	err = tester.Test(context.Background(), detox.Request{
		Config: config.Unified{
			CLI:    config.CLIConfig{Configuration: config.Ptr("android.emu.debug")},
			Device: config.DeviceConfig{Type: "android.emulator"},
			Runner: config.RunnerConfig{TestRunner: "mocha", RunnerConfig: "e2e/.mocharc.json", Specs: "e2e"},
		},
	})
	if err != nil {
		log.Fatal(err)
	}

	// Output:
	// ./mocha e2e --config e2e/.mocharc.json --colors --configuration android.emu.debug --grep :ios: --invert
}
