package vecframe

import (
	"errors"
	"fmt"

	"github.com/hupe1980/vecframe/index"
	"github.com/hupe1980/vecframe/store"
	"github.com/hupe1980/vecframe/value"
)

var (
	// ErrLookup is returned when a label or position is not present in an
	// Index, Vector or DataFrame.
	ErrLookup = index.ErrNotFound

	// ErrDuplicateLabel is returned when construction or append would repeat a label.
	ErrDuplicateLabel = index.ErrDuplicateLabel

	// ErrLength is returned when a value sequence length disagrees with an Index size.
	ErrLength = errors.New("length mismatch")

	// ErrLabelRequired is returned by Append on a symbolic Index without a label.
	ErrLabelRequired = errors.New("label required")

	// ErrUnsupportedStoreKind is returned for an unrecognized backing store kind.
	ErrUnsupportedStoreKind = store.ErrUnsupportedKind

	// ErrNotNumeric is returned when a matrix store receives a non-numeric value.
	ErrNotNumeric = store.ErrNotNumeric

	// ErrAlignment is returned when a column Vector's Index differs from the
	// DataFrame's row Index.
	ErrAlignment = errors.New("column index not aligned with row index")

	// ErrInvalidColumn is returned when column values are not a sequence.
	ErrInvalidColumn = errors.New("invalid column values")

	// ErrUnhashable is returned when a label is not usable as a map key.
	ErrUnhashable = value.ErrUnhashable
)

// LengthError reports a value sequence whose length disagrees with an Index.
type LengthError struct {
	Expected int
	Actual   int
	// Column is the column being built, if any.
	Column any
}

func (e *LengthError) Error() string {
	if e.Column != nil {
		return fmt.Sprintf("length mismatch for column %v: expected %d, got %d", e.Column, e.Expected, e.Actual)
	}
	return fmt.Sprintf("length mismatch: expected %d, got %d", e.Expected, e.Actual)
}

func (e *LengthError) Unwrap() error { return ErrLength }

// AlignmentError reports a column whose Index differs from the row Index.
//
// Heterogeneous per-column indexing is not supported; seeing this error from
// Validate means a column was structurally modified through a view.
type AlignmentError struct {
	Column any
	Reason string
}

func (e *AlignmentError) Error() string {
	return fmt.Sprintf("column %v not aligned: %s", e.Column, e.Reason)
}

func (e *AlignmentError) Unwrap() error { return ErrAlignment }

// LabelRequiredError reports an append on a symbolic Index without a label.
type LabelRequiredError struct {
	Kind index.LabelKind
}

func (e *LabelRequiredError) Error() string {
	return fmt.Sprintf("label required to append to %s index", e.Kind)
}

func (e *LabelRequiredError) Unwrap() error { return ErrLabelRequired }
