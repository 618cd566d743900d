// Package types implements the type and symbol representations of the mini
// language. This package knows positions and declaration nodes but performs
// no analysis itself.
package types

import (
	"fmt"
	"sync/atomic"
)

// TypeFlags classifies a Type.
type TypeFlags uint32

const (
	FlagAny     TypeFlags = 1 << iota // error sentinel; assignable to and from everything
	FlagUnknown                       // reserved for unresolved types
	FlagString                        // the string intrinsic
	FlagNumber                        // the number intrinsic

	FlagTypeParameter TypeFlags = 1 << 18 // a function's type parameter

	FlagIntrinsic = FlagAny | FlagUnknown | FlagString | FlagNumber
)

var flagNames = []struct {
	flag TypeFlags
	name string
}{
	{FlagAny, "Any"},
	{FlagUnknown, "Unknown"},
	{FlagString, "String"},
	{FlagNumber, "Number"},
	{FlagTypeParameter, "TypeParameter"},
}

func (f TypeFlags) String() string {
	if f == 0 {
		return "0"
	}
	s := ""
	for _, fn := range flagNames {
		if f&fn.flag != 0 {
			if s != "" {
				s += "|"
			}
			s += fn.name
			f &^= fn.flag
		}
	}
	if f != 0 {
		if s != "" {
			s += "|"
		}
		s += fmt.Sprintf("%#x", uint32(f))
	}
	return s
}

// Type is a semantic type. Types are compared by identity: two *Type values
// denote the same type iff they are the same pointer.
type Type struct {
	id     uint64
	flags  TypeFlags
	name   string  // intrinsic or type parameter name
	symbol *Symbol // declaring symbol for type parameters
}

// typeCount numbers every Type created in the process. It is atomic so that
// independent compilations may run in parallel.
var typeCount atomic.Uint64

// NewIntrinsic creates a new intrinsic type. Only the universe should need
// this; tests may use it to build distinct types.
func NewIntrinsic(flags TypeFlags, name string) *Type {
	return &Type{id: typeCount.Add(1), flags: flags, name: name}
}

// NewTypeParam creates a fresh type parameter bound to sym.
func NewTypeParam(name string, sym *Symbol) *Type {
	return &Type{id: typeCount.Add(1), flags: FlagTypeParameter, name: name, symbol: sym}
}

// ID returns the unique id of t.
func (t *Type) ID() uint64 { return t.id }

// Flags returns the flags of t.
func (t *Type) Flags() TypeFlags { return t.flags }

// Name returns the intrinsic or type parameter name of t.
func (t *Type) Name() string { return t.name }

// Symbol returns the declaring symbol of a type parameter, or nil.
func (t *Type) Symbol() *Symbol { return t.symbol }

// Is reports whether t has any of the flags in f.
func (t *Type) Is(f TypeFlags) bool { return t != nil && t.flags&f != 0 }

// IsTypeParam reports whether t is a type parameter.
func (t *Type) IsTypeParam() bool { return t.Is(FlagTypeParameter) }

// String returns the display name of t, or "unknown" for a nameless type.
func (t *Type) String() string {
	if t == nil || t.name == "" {
		return "unknown"
	}
	return t.name
}
