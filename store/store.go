// Package store defines the backing stores that hold vector elements.
//
// A store is a closed variant: Plain holds arbitrary values including the
// missing-value marker, Matrix holds float64 values in a gonum vector and
// cannot represent missing values. Cast is the only function that changes a
// store's representation.
package store

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedKind is returned when a store kind is not recognized.
	ErrUnsupportedKind = errors.New("unsupported store kind")

	// ErrNotNumeric is returned when a Matrix store receives a missing or
	// non-numeric value.
	ErrNotNumeric = errors.New("value is not numeric")
)

// Kind identifies a backing store representation.
type Kind uint8

const (
	// KindPlain is a slice of arbitrary values.
	KindPlain Kind = iota
	// KindMatrix is a dense numeric vector.
	KindMatrix
)

// String returns a string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindPlain:
		return "plain"
	case KindMatrix:
		return "matrix"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Valid reports whether k is a recognized kind.
func (k Kind) Valid() bool {
	return k == KindPlain || k == KindMatrix
}

// ParseKind returns the kind with the given name.
func ParseKind(name string) (Kind, error) {
	switch name {
	case "plain", "array":
		return KindPlain, nil
	case "matrix", "nmatrix":
		return KindMatrix, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedKind, name)
	}
}

// Store is the element storage owned by exactly one vector.
//
// Positions are 0-based. Callers are responsible for bounds: positions are
// always resolved through an index before they reach a store.
type Store interface {
	Kind() Kind
	Len() int
	Get(i int) any
	Set(i int, v any) error
	Append(v any) error
	Delete(i int)
	// Values returns a copy of the elements in order.
	Values() []any
	SupportsMissing() bool
	// Clone returns a deep copy.
	Clone() Store
}

// New builds a store of the given kind holding a copy of values.
func New(kind Kind, values []any) (Store, error) {
	switch kind {
	case KindPlain:
		return NewPlain(values), nil
	case KindMatrix:
		return NewMatrix(values)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedKind, kind)
	}
}

// Cast converts s to the given kind. If s already has that kind it is
// returned unchanged.
func Cast(s Store, kind Kind) (Store, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedKind, kind)
	}
	if s.Kind() == kind {
		return s, nil
	}
	return New(kind, s.Values())
}
