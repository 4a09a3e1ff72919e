package invocation

// Args is a runner argument set: named flags plus positional tokens.
type Args struct {
	Flags      *Mapping
	Positional []string
}

// NewArgs creates an empty argument set.
func NewArgs() Args {
	return Args{Flags: NewMapping()}
}

// Clone returns an independent copy of a.
func (a Args) Clone() Args {
	return Args{
		Flags:      a.Flags.Clone(),
		Positional: append([]string(nil), a.Positional...),
	}
}

// Descriptor describes one runner invocation.
type Descriptor struct {
	Argv  Args
	Env   *Mapping
	Specs []string
}

// WithSpecs returns a copy of d that runs exactly specs.
// The receiver is left untouched.
func (d Descriptor) WithSpecs(specs []string) Descriptor {
	return Descriptor{
		Argv:  d.Argv.Clone(),
		Env:   d.Env.Clone(),
		Specs: append([]string(nil), specs...),
	}
}
