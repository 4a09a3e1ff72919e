package runners

// mochaOptions lists mocha's boolean options, including the ones detox adds.
var mochaOptions = []Option{
	{Name: "allow-uncaught", Type: "boolean"},
	{Name: "async-only", Type: "boolean", Alias: []string{"A"}},
	{Name: "bail", Type: "boolean", Alias: []string{"b"}},
	{Name: "check-leaks", Type: "boolean"},
	{Name: "cleanup", Type: "boolean"},
	{Name: "color", Type: "boolean", Alias: []string{"c", "colors"}},
	{Name: "delay", Type: "boolean"},
	{Name: "diff", Type: "boolean"},
	{Name: "dry-run", Type: "boolean"},
	{Name: "exit", Type: "boolean"},
	{Name: "fail-zero", Type: "boolean"},
	{Name: "forbid-only", Type: "boolean"},
	{Name: "forbid-pending", Type: "boolean"},
	{Name: "force-adb-install", Type: "boolean"},
	{Name: "full-trace", Type: "boolean"},
	{Name: "headless", Type: "boolean"},
	{Name: "inline-diffs", Type: "boolean"},
	{Name: "invert", Type: "boolean", Alias: []string{"i"}},
	{Name: "list-interfaces", Type: "boolean"},
	{Name: "list-reporters", Type: "boolean"},
	{Name: "parallel", Type: "boolean", Alias: []string{"p"}},
	{Name: "recursive", Type: "boolean"},
	{Name: "reuse", Type: "boolean"},
	{Name: "sort", Type: "boolean", Alias: []string{"S"}},
	{Name: "use-custom-logger", Type: "boolean"},
	{Name: "watch", Type: "boolean", Alias: []string{"w"}},
}

// MochaBooleanFlags returns mocha's boolean flag names including aliases.
func MochaBooleanFlags() map[string]struct{} {
	return CollectBooleanFlags(mochaOptions)
}
