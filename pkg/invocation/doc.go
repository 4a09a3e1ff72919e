/*
Package invocation models a single test runner invocation.

An invocation is described by a Descriptor: the runner flags (Args), the environment
overlay and the ordered spec list. Every flag and environment entry holds a Value, an
explicit tri-state that keeps "explicitly false" apart from "not applicable":

	flags := invocation.NewMapping().
		Set("colors", invocation.Bool(false)). // rendered as --no-colors
		Set("grep", invocation.Absent())       // never rendered

Mappings preserve insertion order so that rendered command lines are deterministic.
*/
package invocation
