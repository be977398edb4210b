// Package vecframe provides a label-indexed, column-oriented in-memory data
// engine for Go.
//
// It is built from three pieces:
//
//   - index.Index: an immutable, ordered mapping from labels to positions
//   - Vector: a labeled column backed by a plain or numeric matrix store
//   - DataFrame: a table of Vectors aligned on a shared row Index
//
// # Quick Start
//
//	v, err := vecframe.NewVector([]any{33, 2, 15}, vecframe.WithLabels("a", "b", "c"))
//	if err != nil {
//		log.Fatal(err)
//	}
//	x, _ := v.At("a")      // 33
//	y, _ := v.At(1)        // 2, integers fall back to positions
//	sorted := v.Sort()     // values 2 15 33, labels b c a
//
//	df, err := vecframe.FromColumns(map[vecframe.Label]any{
//		"a": []int{1, 2, 3},
//		"b": []float64{4, 5, 6},
//	})
//
// # Addressing
//
// Single-argument lookups take a label or a position. A label present in the
// Index always wins; an integer that is not a label is a raw position.
//
// # Backing Stores
//
// A Vector stores its elements in a store.Plain (any value, nil is missing)
// or a store.Matrix (float64 in a gonum vector). Vector.Cast is the only
// transition between them. Writing a missing value into a matrix store
// converts it to plain first.
//
// # Errors
//
// Failures are returned as errors matching the sentinels ErrLookup,
// ErrDuplicateLabel, ErrLength, ErrLabelRequired, ErrUnsupportedStoreKind and
// ErrAlignment via errors.Is. A failed mutation leaves the receiver unchanged.
//
// # Concurrency
//
// All operations are synchronous. Concurrent readers are safe only while no
// goroutine mutates the same Vector or DataFrame.
package vecframe
