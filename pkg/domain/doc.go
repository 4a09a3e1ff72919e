/*
Package domain contains the core models shared by the test orchestrator.

It defines the target platform, the failed-specs record format and the error taxonomy.
This package is kept pure and free of I/O, following Hexagonal Architecture principles.

# Key Entities

  - Platform: The mobile platform derived from the device type (ios, android).
  - RuntimeError: A configuration error carrying a human-readable hint.
  - Failed specs: The newline-delimited list of spec files that failed on the last run.
*/
package domain
