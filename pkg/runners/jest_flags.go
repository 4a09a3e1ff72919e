package runners

// Option describes a runner CLI option as declared by the runner itself.
type Option struct {
	Name  string
	Type  string
	Alias []string
}

// jestOptions lists jest-cli's boolean options. Non-boolean options are irrelevant to
// flag normalization and are left out.
var jestOptions = []Option{
	{Name: "all", Type: "boolean"},
	{Name: "automock", Type: "boolean"},
	{Name: "cache", Type: "boolean"},
	{Name: "changedFilesWithAncestor", Type: "boolean"},
	{Name: "ci", Type: "boolean"},
	{Name: "clearCache", Type: "boolean"},
	{Name: "clearMocks", Type: "boolean"},
	{Name: "collectCoverage", Type: "boolean", Alias: []string{"coverage"}},
	{Name: "color", Type: "boolean"},
	{Name: "colors", Type: "boolean"},
	{Name: "debug", Type: "boolean"},
	{Name: "detectLeaks", Type: "boolean"},
	{Name: "detectOpenHandles", Type: "boolean"},
	{Name: "errorOnDeprecated", Type: "boolean"},
	{Name: "expand", Type: "boolean", Alias: []string{"e"}},
	{Name: "forceExit", Type: "boolean"},
	{Name: "help", Type: "boolean", Alias: []string{"h"}},
	{Name: "init", Type: "boolean"},
	{Name: "injectGlobals", Type: "boolean"},
	{Name: "json", Type: "boolean"},
	{Name: "lastCommit", Type: "boolean"},
	{Name: "listTests", Type: "boolean"},
	{Name: "logHeapUsage", Type: "boolean"},
	{Name: "noStackTrace", Type: "boolean"},
	{Name: "notify", Type: "boolean"},
	{Name: "onlyChanged", Type: "boolean", Alias: []string{"o"}},
	{Name: "onlyFailures", Type: "boolean", Alias: []string{"f"}},
	{Name: "passWithNoTests", Type: "boolean"},
	{Name: "resetMocks", Type: "boolean"},
	{Name: "resetModules", Type: "boolean"},
	{Name: "restoreMocks", Type: "boolean"},
	{Name: "runInBand", Type: "boolean", Alias: []string{"i"}},
	{Name: "showConfig", Type: "boolean"},
	{Name: "silent", Type: "boolean"},
	{Name: "skipFilter", Type: "boolean"},
	{Name: "testLocationInResults", Type: "boolean"},
	{Name: "updateSnapshot", Type: "boolean", Alias: []string{"u"}},
	{Name: "useStderr", Type: "boolean"},
	{Name: "verbose", Type: "boolean"},
	{Name: "version", Type: "boolean", Alias: []string{"v"}},
	{Name: "watch", Type: "boolean"},
	{Name: "watchAll", Type: "boolean"},
	{Name: "watchman", Type: "boolean"},
}

// CollectBooleanFlags returns the names and aliases of every boolean option.
func CollectBooleanFlags(options []Option) map[string]struct{} {
	set := make(map[string]struct{})
	for _, opt := range options {
		if opt.Type != "boolean" {
			continue
		}
		set[opt.Name] = struct{}{}
		for _, alias := range opt.Alias {
			set[alias] = struct{}{}
		}
	}
	return set
}

// JestBooleanFlags returns jest's boolean flag names including aliases.
func JestBooleanFlags() map[string]struct{} {
	return CollectBooleanFlags(jestOptions)
}
