package detox

// Version is the release of the command line tools, set at build time with
// -ldflags "-X github.com/aretw0/detox-cli.Version=...".
var Version = "dev"
