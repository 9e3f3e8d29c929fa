// Package types holds the value primitives shared by every registry entity:
// a three-state optional string and an ordered repeated container.
package types

import (
	"github.com/fxamacker/cbor/v2"
)

// cborNull and cborUndefined are the single-byte CBOR simple values
// used to represent an absent String.
const (
	cborNull      = 0xf6
	cborUndefined = 0xf7
)

// String is an optional string that keeps "absent" and "empty" apart.
//
// The zero value is absent.
type String struct {
	value string
	valid bool
}

// Some returns a present String holding s, which may be empty.
func Some(s string) String {
	return String{value: s, valid: true}
}

// None returns an absent String.
func None() String {
	return String{}
}

// Get returns the held value and whether it is present.
func (s String) Get() (string, bool) {
	return s.value, s.valid
}

// Value returns the held value, or "" when absent.
func (s String) Value() string {
	return s.value
}

// Valid reports whether the String is present.
func (s String) Valid() bool {
	return s.valid
}

// Blank reports whether the String is absent or present but empty.
func (s String) Blank() bool {
	return !s.valid || s.value == ""
}

// Equal reports whether both are absent, or both are present with the same value.
func (s String) Equal(o String) bool {
	return s.valid == o.valid && s.value == o.value
}

func (s String) String() string {
	if !s.valid {
		return "<none>"
	}
	return s.value
}

// MarshalCBOR implements cbor.Marshaler. An absent String is encoded as null.
func (s String) MarshalCBOR() ([]byte, error) {
	if !s.valid {
		return []byte{cborNull}, nil
	}
	return cbor.Marshal(s.value)
}

// UnmarshalCBOR implements cbor.Unmarshaler.
func (s *String) UnmarshalCBOR(data []byte) error {
	if len(data) == 1 && (data[0] == cborNull || data[0] == cborUndefined) {
		*s = None()
		return nil
	}

	var v string
	if err := cbor.Unmarshal(data, &v); err != nil {
		return err
	}
	*s = Some(v)
	return nil
}
