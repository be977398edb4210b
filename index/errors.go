package index

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a label or position is not present.
	ErrNotFound = errors.New("label not found")

	// ErrDuplicateLabel is returned when construction would repeat a label.
	ErrDuplicateLabel = errors.New("duplicate label")
)

// LookupError reports a label or position that is absent from an Index.
type LookupError struct {
	Label any
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("label not found: %v", e.Label)
}

func (e *LookupError) Unwrap() error { return ErrNotFound }

// DuplicateLabelError reports a label that occurs more than once.
type DuplicateLabelError struct {
	Label any
}

func (e *DuplicateLabelError) Error() string {
	return fmt.Sprintf("duplicate label: %v", e.Label)
}

func (e *DuplicateLabelError) Unwrap() error { return ErrDuplicateLabel }
