package invocation

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Kind identifies which variant a Value holds.
type Kind int

const (
	KindAbsent Kind = iota
	KindBool
	KindString
	KindNumber
	KindList
	KindVerbatim
)

// Value is a flag or environment value.
// The zero Value is Absent.
type Value struct {
	kind  Kind
	b     bool
	s     string
	n     float64
	items []string
}

// Absent marks an entry as not applicable. Absent entries are never serialized.
func Absent() Value { return Value{} }

// Bool returns a boolean value. Bool(false) is an explicit false and is serialized.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// String returns a string value.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Number returns a numeric value.
func Number(n float64) Value { return Value{kind: KindNumber, n: n} }

// Int returns a numeric value from an int.
func Int(n int) Value { return Number(float64(n)) }

// List returns a repeatable flag value. An empty list is Absent.
func List(items ...string) Value {
	if len(items) == 0 {
		return Absent()
	}
	return Value{kind: KindList, items: append([]string(nil), items...)}
}

// Verbatim returns a string that is already shell-escaped and must be rendered as-is.
func Verbatim(s string) Value { return Value{kind: KindVerbatim, s: s} }

// Kind returns the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// IsAbsent reports whether v must be omitted.
func (v Value) IsAbsent() bool { return v.kind == KindAbsent }

// IsBool reports whether v holds a boolean.
func (v Value) IsBool() bool { return v.kind == KindBool }

// BoolValue returns the boolean held by v and whether v is a boolean at all.
func (v Value) BoolValue() (bool, bool) {
	return v.b, v.kind == KindBool
}

// Items returns the textual elements of v: the list elements for a List,
// a single element for scalars and nothing for Absent.
func (v Value) Items() []string {
	switch v.kind {
	case KindAbsent:
		return nil
	case KindList:
		return append([]string(nil), v.items...)
	default:
		return []string{v.String()}
	}
}

// String returns the textual form used for command lines and process environments.
func (v Value) String() string {
	switch v.kind {
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindString, KindVerbatim:
		return v.s
	case KindNumber:
		return strconv.FormatFloat(v.n, 'f', -1, 64)
	case KindList:
		return strings.Join(v.items, ",")
	default:
		return ""
	}
}

// MarshalJSON encodes v the way it is printed in environment logs:
// strings quoted, booleans and numbers bare, Absent as null.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindBool:
		return json.Marshal(v.b)
	case KindNumber:
		return json.Marshal(v.n)
	case KindString, KindVerbatim:
		return json.Marshal(v.s)
	case KindList:
		return json.Marshal(v.items)
	default:
		return []byte("null"), nil
	}
}

// OptBool maps an optional boolean to a Value, keeping explicit false.
func OptBool(p *bool) Value {
	if p == nil {
		return Absent()
	}
	return Bool(*p)
}

// OptString maps an optional string to a Value, keeping empty strings.
func OptString(p *string) Value {
	if p == nil {
		return Absent()
	}
	return String(*p)
}

// OptInt maps an optional int to a Value, keeping zero.
func OptInt(p *int) Value {
	if p == nil {
		return Absent()
	}
	return Int(*p)
}

// TruthyBool is Bool(true) when p is set and true, Absent otherwise.
func TruthyBool(p *bool) Value {
	if p == nil || !*p {
		return Absent()
	}
	return Bool(true)
}

// TruthyString is String(*p) when p is set and non-empty, Absent otherwise.
func TruthyString(p *string) Value {
	if p == nil || *p == "" {
		return Absent()
	}
	return String(*p)
}
