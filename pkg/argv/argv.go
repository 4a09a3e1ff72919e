// Package argv turns raw passthrough tokens into runner arguments.
//
// The tokenizer is intentionally greedy: a long flag followed by a token that does not
// look like a flag takes that token as its value, which is how shell-split arguments
// reach the runner dialects. Resolving the resulting ambiguity (e.g. "--no-color a.js")
// is the job of the runner-specific normalizers.
package argv

import (
	"strings"

	"github.com/aretw0/detox-cli/pkg/invocation"
)

// Parse converts passthrough tokens into an argument set.
func Parse(tokens []string) invocation.Args {
	args := invocation.NewArgs()

	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]

		switch {
		case tok == "--":
			args.Positional = append(args.Positional, tokens[i+1:]...)
			return args

		case strings.HasPrefix(tok, "--") && len(tok) > 2:
			name := tok[2:]
			if key, val, ok := strings.Cut(name, "="); ok {
				set(args.Flags, key, scalar(val))
				continue
			}
			if i+1 < len(tokens) && !isFlag(tokens[i+1]) {
				set(args.Flags, name, scalar(tokens[i+1]))
				i++
				continue
			}
			// A bare --no-x negates x. With a bound value it stays as is for the normalizers.
			if positive, ok := strings.CutPrefix(name, "no-"); ok && positive != "" {
				set(args.Flags, positive, invocation.Bool(false))
				continue
			}
			set(args.Flags, name, invocation.Bool(true))

		case strings.HasPrefix(tok, "-") && len(tok) > 1 && !isNumber(tok):
			letters, val, hasValue := strings.Cut(tok[1:], "=")
			if letters == "" {
				args.Positional = append(args.Positional, tok)
				continue
			}
			for _, r := range letters[:len(letters)-1] {
				set(args.Flags, string(r), invocation.Bool(true))
			}
			last := letters[len(letters)-1:]
			if hasValue {
				set(args.Flags, last, scalar(val))
				continue
			}
			if i+1 < len(tokens) && !isFlag(tokens[i+1]) {
				set(args.Flags, last, scalar(tokens[i+1]))
				i++
				continue
			}
			set(args.Flags, last, invocation.Bool(true))

		default:
			args.Positional = append(args.Positional, tok)
		}
	}

	return args
}

// set stores v under name, turning repeated occurrences into a list.
func set(flags *invocation.Mapping, name string, v invocation.Value) {
	prev := flags.Get(name)
	if prev.IsAbsent() || prev.IsBool() || v.IsBool() {
		flags.Set(name, v)
		return
	}
	flags.Set(name, invocation.List(append(prev.Items(), v.Items()...)...))
}

func scalar(s string) invocation.Value {
	switch s {
	case "true":
		return invocation.Bool(true)
	case "false":
		return invocation.Bool(false)
	default:
		return invocation.String(s)
	}
}

func isFlag(tok string) bool {
	return strings.HasPrefix(tok, "-") && len(tok) > 1 && !isNumber(tok)
}

func isNumber(tok string) bool {
	digits := strings.TrimPrefix(tok, "-")
	if digits == "" {
		return false
	}
	seenDot := false
	for _, r := range digits {
		switch {
		case r >= '0' && r <= '9':
		case r == '.' && !seenDot:
			seenDot = true
		default:
			return false
		}
	}
	return true
}
