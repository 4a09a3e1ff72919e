package runners

import (
	"strings"

	"github.com/aretw0/detox-cli/pkg/invocation"
)

// NormalizeJest resolves singleton boolean flags that swallowed a positional value.
//
// Given "--no-color foo.spec.js" the tokenizer yields {"no-color": "foo.spec.js"}.
// Since color is boolean, the result is {"color": false} with foo.spec.js moved to the
// positional arguments, ahead of the original positionals.
func NormalizeJest(args invocation.Args, booleans map[string]struct{}) invocation.Args {
	out := invocation.NewArgs()
	var strays []string

	args.Flags.Each(func(key string, v invocation.Value) {
		positive := strings.TrimPrefix(key, "no-")
		if _, ok := booleans[positive]; ok && !v.IsBool() {
			out.Flags.Set(positive, invocation.Bool(key == positive))
			strays = append(strays, v.Items()...)
			return
		}
		out.Flags.Set(key, v)
	})

	out.Positional = append(strays, args.Positional...)
	return out
}

// NormalizeMocha is the identity: mocha's parser has no singleton ambiguity.
func NormalizeMocha(args invocation.Args) invocation.Args {
	return args
}
