package riscv

import "fmt"

// ErrorKind is the closed set of recoverable failures of this library.
type ErrorKind uint8

const (
	// OutOfBounds means an index or identity failed its range check.
	OutOfBounds ErrorKind = iota + 1
	// InvalidFieldVariant means an enumerated field held a value with no
	// matching variant.
	InvalidFieldVariant
)

func (k ErrorKind) String() string {
	switch k {
	case OutOfBounds:
		return "out of bounds"
	case InvalidFieldVariant:
		return "invalid field variant"
	}
	return fmt.Sprintf("error kind %d", uint8(k))
}

// Error is returned by fallible constructors and accessors.  Field and Value
// are only filled in for InvalidFieldVariant.
type Error struct {
	Kind  ErrorKind
	Field string
	Value uint
}

// ErrOutOfBounds and ErrInvalidFieldVariant are the sentinels to use with
// errors.Is; they match any *Error of the same kind.
var (
	ErrOutOfBounds         = &Error{Kind: OutOfBounds}
	ErrInvalidFieldVariant = &Error{Kind: InvalidFieldVariant}
)

func (e *Error) Error() string {
	if e.Kind == InvalidFieldVariant {
		return fmt.Sprintf("invalid variant for field %s: %#x", e.Field, e.Value)
	}
	return e.Kind.String()
}

// Is matches on the kind only.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

func invalidFieldVariant(field string, value uint) error {
	return &Error{Kind: InvalidFieldVariant, Field: field, Value: value}
}
