// Package index provides the immutable label index used to address vectors
// and data frames.
//
// An Index is an ordered, bijective mapping from hashable labels to integer
// positions 0..n-1. Indexes are values: no method mutates an Index, and every
// operation that changes cardinality (Union, Append, Without, Slice, Take)
// returns a fresh Index.
//
// # Label Kinds
//
// Every index has a LabelKind:
//
//   - Positional: built from a count with New, empty, or carrying integer labels
//   - Symbolic: carrying non-integer labels such as strings
//
// The kind governs ambiguous single-argument lookups. Resolve treats an
// integer argument that is not itself a label as a raw position, so element 0
// of a symbolic index can be addressed both by its label and by 0.
//
// # Equality
//
// Equal is order-sensitive: two indexes are equal iff they carry the same
// labels at the same positions.
package index
