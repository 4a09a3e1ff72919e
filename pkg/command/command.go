// Package command renders invocation descriptors into shell command lines.
package command

import (
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/alessio/shellescape"
	"github.com/aretw0/detox-cli/pkg/invocation"
)

// DefaultToolDir is the project-local directory holding runner executables.
var DefaultToolDir = filepath.Join("node_modules", ".bin")

// Style describes how a runner's argument parser expects valued flags.
type Style struct {
	// Separator joins a long flag and its value: " " gives "--flag value",
	// "=" gives "--flag=value".
	Separator string
}

var (
	// SpaceStyle renders "--flag value".
	SpaceStyle = Style{Separator: " "}
	// EqualsStyle renders "--flag=value".
	EqualsStyle = Style{Separator: "="}
)

// Executable returns the path of a runner executable relative to the tool directory,
// which is also the working directory of the launched process. The path is meant
// for a POSIX shell line and always uses a forward slash.
func Executable(runner string) string {
	return "./" + runner
}

// Render builds the shell command line for d: the executable, the positional
// tokens, the specs and finally the flags in mapping order. Absent flags are skipped.
func Render(executable string, d invocation.Descriptor, style Style) string {
	tokens := []string{shellescape.Quote(executable)}
	for _, p := range d.Argv.Positional {
		tokens = append(tokens, shellescape.Quote(p))
	}
	for _, s := range d.Specs {
		tokens = append(tokens, shellescape.Quote(s))
	}

	d.Argv.Flags.Each(func(name string, v invocation.Value) {
		tokens = append(tokens, renderFlag(name, v, style)...)
	})

	return strings.Join(tokens, " ")
}

func renderFlag(name string, v invocation.Value, style Style) []string {
	prefix := "--"
	sep := style.Separator
	if len(name) == 1 {
		prefix = "-"
		sep = " "
	}

	switch v.Kind() {
	case invocation.KindBool:
		if b, _ := v.BoolValue(); b {
			return []string{prefix + name}
		}
		return []string{"--no-" + name}
	case invocation.KindVerbatim:
		return []string{prefix + name + sep + v.String()}
	default:
		var out []string
		for _, item := range v.Items() {
			out = append(out, prefix+name+sep+shellescape.Quote(item))
		}
		return out
	}
}

// FormatEnv renders env as `KEY=<json> ` pairs for logging.
// Absent and empty-string values are left out.
func FormatEnv(env *invocation.Mapping) string {
	var b strings.Builder
	env.Each(func(name string, v invocation.Value) {
		if v.Kind() == invocation.KindString && v.String() == "" {
			return
		}
		raw, err := json.Marshal(v)
		if err != nil {
			return
		}
		b.WriteString(name)
		b.WriteByte('=')
		b.Write(raw)
		b.WriteByte(' ')
	})
	return b.String()
}

// Environ overlays env on top of base (in os.Environ form). Entries of env win.
func Environ(base []string, env *invocation.Mapping) []string {
	out := make([]string, 0, len(base)+env.Len())

	overridden := map[string]bool{}
	env.Each(func(name string, _ invocation.Value) {
		overridden[name] = true
	})
	for _, kv := range base {
		key, _, _ := strings.Cut(kv, "=")
		if overridden[key] {
			continue
		}
		out = append(out, kv)
	}
	env.Each(func(name string, v invocation.Value) {
		out = append(out, name+"="+v.String())
	})
	return out
}
