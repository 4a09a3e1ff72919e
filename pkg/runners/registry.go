package runners

import (
	"fmt"
	"strings"
	"sync"

	"github.com/aretw0/detox-cli/pkg/command"
	"github.com/aretw0/detox-cli/pkg/domain"
	"github.com/aretw0/detox-cli/pkg/invocation"
)

// Dialect bundles everything needed to drive one test runner.
type Dialect struct {
	Name      string
	Style     command.Style
	Normalize func(invocation.Args) invocation.Args
	Build     func(Context) invocation.Descriptor
}

// Mocha is the BDD runner dialect.
var Mocha = Dialect{
	Name:      "mocha",
	Style:     command.SpaceStyle,
	Normalize: NormalizeMocha,
	Build:     BuildMocha,
}

// Jest is the snapshot/parallel runner dialect.
var Jest = Dialect{
	Name:  "jest",
	Style: command.EqualsStyle,
	Normalize: func(args invocation.Args) invocation.Args {
		return NormalizeJest(args, JestBooleanFlags())
	},
	Build: BuildJest,
}

type entry struct {
	key     string
	dialect Dialect
}

// Registry maps test runner identifiers to dialects.
// Identifiers match by substring, so "jest-circus" resolves to jest.
type Registry struct {
	mu       sync.RWMutex
	dialects []entry
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// DefaultRegistry returns a registry with the mocha and jest dialects.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register("mocha", Mocha)
	r.Register("jest", Jest)
	return r
}

// Register adds a dialect. Earlier registrations win on ambiguous identifiers.
// If a dialect with the same key exists, it is overwritten.
func (r *Registry) Register(key string, d Dialect) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.dialects {
		if r.dialects[i].key == key {
			r.dialects[i].dialect = d
			return
		}
	}
	r.dialects = append(r.dialects, entry{key: key, dialect: d})
}

// Lookup resolves the dialect for a test runner identifier.
// Unknown runners yield a *domain.RuntimeError.
func (r *Registry) Lookup(testRunner string) (Dialect, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, e := range r.dialects {
		if strings.Contains(testRunner, e.key) {
			return e.dialect, nil
		}
	}
	return Dialect{}, &domain.RuntimeError{
		Message: fmt.Sprintf("%q is not supported in Detox CLI tools.", testRunner),
		Hint:    "You can still run your tests with the runner's own CLI tool",
	}
}
