// Package vm implements the stack-based bytecode virtual machine: its value
// model, instruction set, loader, and single-threaded execution engine.
package vm

import (
	"strconv"

	"github.com/dolthub/maphash"
)

// Value is the tagged union manipulated by the machine: either a Number or a
// String. The zero Value is a Number of 0.
type Value struct {
	str   string
	num   float64
	isStr bool
}

var (
	numHasher = maphash.NewHasher[int64]()
	strHasher = maphash.NewHasher[string]()
)

// Number returns a Value holding the float64 f.
func Number(f float64) Value { return Value{num: f} }

// String returns a Value holding the string s.
func String(s string) Value { return Value{str: s, isStr: true} }

// IsNumber reports whether v holds a Number.
func (v Value) IsNumber() bool { return !v.isStr }

// IsString reports whether v holds a String.
func (v Value) IsString() bool { return v.isStr }

// AsNumber returns the float64 held by v, or a TypeError if v is a String.
func (v Value) AsNumber() (float64, error) {
	if v.isStr {
		return 0, newError(ErrTypeError, "value is a string, not a number")
	}
	return v.num, nil
}

// AsString returns the string held by v, or a TypeError if v is a Number.
func (v Value) AsString() (string, error) {
	if !v.isStr {
		return "", newError(ErrTypeError, "value is a number, not a string")
	}
	return v.str, nil
}

// String renders v as text: numbers use the shortest round-tripping decimal
// form, strings are returned unchanged.
func (v Value) String() string {
	if v.isStr {
		return v.str
	}
	return strconv.FormatFloat(v.num, 'g', -1, 64)
}

// Hash returns the 64-bit hash used to key the context map. Numbers are
// truncated to a signed 64-bit integer before hashing, so two numbers whose
// truncations are equal collide deliberately; strings are hashed as their raw
// UTF-8 bytes. A string and a number may coincide only incidentally.
func (v Value) Hash() uint64 {
	if v.isStr {
		return strHasher.Hash(v.str)
	}
	return numHasher.Hash(int64(v.num))
}

// truncInt32 truncates a Value to a 32-bit signed integer via AsNumber,
// matching the VM's comparison and boolean opcode semantics.
func truncInt32(v Value) (int32, error) {
	f, err := v.AsNumber()
	if err != nil {
		return 0, err
	}
	return int32(int64(f)), nil
}
