package invocation

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Mapping is an insertion-ordered set of named values.
// A nil *Mapping behaves as an empty mapping for reads.
type Mapping struct {
	entries *orderedmap.OrderedMap[string, Value]
}

// NewMapping creates an empty mapping.
func NewMapping() *Mapping {
	return &Mapping{entries: orderedmap.New[string, Value]()}
}

// Set stores v under name. Overwriting keeps the original position.
// It returns the mapping to allow chaining.
func (m *Mapping) Set(name string, v Value) *Mapping {
	m.entries.Set(name, v)
	return m
}

// Get returns the value stored under name, or Absent.
func (m *Mapping) Get(name string) Value {
	if m == nil {
		return Absent()
	}
	v, _ := m.entries.Get(name)
	return v
}

// Has reports whether name holds a present (non-absent) value.
func (m *Mapping) Has(name string) bool {
	return !m.Get(name).IsAbsent()
}

// Delete removes name.
func (m *Mapping) Delete(name string) {
	m.entries.Delete(name)
}

// Each calls fn for every present entry in insertion order.
func (m *Mapping) Each(fn func(name string, v Value)) {
	if m == nil {
		return
	}
	for pair := m.entries.Oldest(); pair != nil; pair = pair.Next() {
		if pair.Value.IsAbsent() {
			continue
		}
		fn(pair.Key, pair.Value)
	}
}

// Keys returns the names of present entries in insertion order.
func (m *Mapping) Keys() []string {
	var keys []string
	m.Each(func(name string, _ Value) {
		keys = append(keys, name)
	})
	return keys
}

// Len returns the number of present entries.
func (m *Mapping) Len() int {
	n := 0
	m.Each(func(string, Value) { n++ })
	return n
}

// Merge applies the present entries of other on top of m. Entries of other win.
func (m *Mapping) Merge(other *Mapping) *Mapping {
	other.Each(func(name string, v Value) {
		m.Set(name, v)
	})
	return m
}

// Clone returns an independent copy of m, absent entries included.
func (m *Mapping) Clone() *Mapping {
	c := NewMapping()
	if m == nil {
		return c
	}
	for pair := m.entries.Oldest(); pair != nil; pair = pair.Next() {
		c.entries.Set(pair.Key, pair.Value)
	}
	return c
}
