package rvv

import "fmt"

// Kind is the element type of a View. The set is closed: Float32 and Int8.
type Kind uint8

const (
	// Invalid is the zero Kind; no operation accepts it.
	Invalid Kind = iota
	Float32
	Int8
)

// String returns the numpy-style dtype name.
func (k Kind) String() string {
	switch k {
	case Float32:
		return "float32"
	case Int8:
		return "int8"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Size returns the element size in bytes.
func (k Kind) Size() int {
	switch k {
	case Float32:
		return 4
	case Int8:
		return 1
	default:
		return 0
	}
}

// ParseKind maps a dtype name ("float32", "f4", "int8", "i1") to a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "float32", "f4", "<f4":
		return Float32, nil
	case "int8", "i1", "|i1":
		return Int8, nil
	default:
		return Invalid, fmt.Errorf("%w: unknown dtype %q", ErrTypeMismatch, s)
	}
}
