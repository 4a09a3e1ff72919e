/*
Package ports defines the driven ports (interfaces) of the test orchestrator.

These interfaces decouple the retry loop from the process boundary and from the state
owned by the device registry, so that the orchestration can be tested without spawning
real test runners.

# Key Interfaces

  - Launcher: Runs a rendered runner command line to completion.
  - FailedSpecsSource: Reads the specs that failed on the last run.
  - DeviceRegistry: Resets the device registry lock file before the first launch.
*/
package ports
