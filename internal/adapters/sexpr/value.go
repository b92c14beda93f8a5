// Package sexpr implements the bundled script engine: a small S-expression
// language compiled to a constant-pool bytecode chunk executed on a stack VM.
// It provides the compile and chunk-codec primitives the loader needs from an
// embedding host.
package sexpr

import (
	"fmt"
	"strings"
)

// Kind tags a runtime value.
type Kind uint8

const (
	KindNil Kind = iota
	KindInt
	KindStr
	KindList
)

// Value is a runtime value. The zero Value is nil.
type Value struct {
	Kind Kind    `msgpack:"k"`
	Int  int64   `msgpack:"i,omitempty"`
	Str  string  `msgpack:"s,omitempty"`
	List []Value `msgpack:"l,omitempty"`
}

// NilValue returns the nil value.
func NilValue() Value {
	return Value{}
}

// IntValue wraps an integer.
func IntValue(n int64) Value {
	return Value{Kind: KindInt, Int: n}
}

// StrValue wraps a string.
func StrValue(s string) Value {
	return Value{Kind: KindStr, Str: s}
}

// ListValue wraps a list.
func ListValue(items ...Value) Value {
	return Value{Kind: KindList, List: items}
}

// Truthy reports whether v counts as true in conditionals. Only nil is false.
func (v Value) Truthy() bool {
	return v.Kind != KindNil
}

// Equal reports deep equality.
func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case KindNil:
		return true
	case KindInt:
		return v.Int == o.Int
	case KindStr:
		return v.Str == o.Str
	case KindList:
		if len(v.List) != len(o.List) {
			return false
		}
		for i := range v.List {
			if !v.List[i].Equal(o.List[i]) {
				return false
			}
		}
		return true
	}
	return false
}

// String renders the value for display.
func (v Value) String() string {
	switch v.Kind {
	case KindNil:
		return "nil"
	case KindInt:
		return fmt.Sprintf("%d", v.Int)
	case KindStr:
		return v.Str
	case KindList:
		parts := make([]string, len(v.List))
		for i, item := range v.List {
			parts[i] = item.String()
		}
		return "(" + strings.Join(parts, " ") + ")"
	}
	return "?"
}
