package index

import (
	"fmt"
	"iter"
	"strings"

	"github.com/hupe1980/vecframe/value"
)

// Label is a hashable index label.
type Label = value.Label

// LabelKind distinguishes positional indexes from symbolic ones.
type LabelKind uint8

const (
	// Positional indexes are built from a count or carry integer labels.
	Positional LabelKind = iota
	// Symbolic indexes carry non-integer labels.
	Symbolic
)

// String returns a string representation of the LabelKind.
func (k LabelKind) String() string {
	if k == Positional {
		return "Positional"
	}
	return "Symbolic"
}

// Index is an immutable, ordered, bijective mapping from label to position.
//
// The zero value is not usable; construct with New or FromLabels.
type Index struct {
	labels    []Label
	positions map[Label]int
	kind      LabelKind
}

// New returns the positional index 0..n-1.
func New(n int) *Index {
	if n < 0 {
		n = 0
	}
	labels := make([]Label, n)
	positions := make(map[Label]int, n)
	for i := range labels {
		labels[i] = i
		positions[i] = i
	}
	return &Index{labels: labels, positions: positions, kind: Positional}
}

// FromLabels builds an index over labels in the given order.
func FromLabels(labels []Label) (*Index, error) {
	normalized := make([]Label, len(labels))
	for i, l := range labels {
		n, err := value.NormalizeLabel(l)
		if err != nil {
			return nil, err
		}
		normalized[i] = n
	}
	return build(normalized)
}

// MustFromLabels is like FromLabels but panics on error.
// It is intended for tests and examples.
func MustFromLabels(labels ...Label) *Index {
	idx, err := FromLabels(labels)
	if err != nil {
		panic(err)
	}
	return idx
}

// build takes ownership of already normalized labels.
func build(labels []Label) (*Index, error) {
	positions := make(map[Label]int, len(labels))
	for i, l := range labels {
		if _, dup := positions[l]; dup {
			return nil, &DuplicateLabelError{Label: l}
		}
		positions[l] = i
	}
	return &Index{labels: labels, positions: positions, kind: kindOf(labels)}, nil
}

func kindOf(labels []Label) LabelKind {
	if len(labels) == 0 {
		return Positional
	}
	if _, ok := value.IsInteger(labels[0]); ok {
		return Positional
	}
	return Symbolic
}

// Len returns the number of labels.
func (idx *Index) Len() int { return len(idx.labels) }

// Kind returns the label kind of the index.
func (idx *Index) Kind() LabelKind { return idx.kind }

// Lookup returns the position of label, if present.
func (idx *Index) Lookup(label Label) (int, bool) {
	l, err := value.NormalizeLabel(label)
	if err != nil {
		return 0, false
	}
	pos, ok := idx.positions[l]
	return pos, ok
}

// PositionOf returns the position of label.
func (idx *Index) PositionOf(label Label) (int, error) {
	pos, ok := idx.Lookup(label)
	if !ok {
		return 0, &LookupError{Label: label}
	}
	return pos, nil
}

// LabelAt returns the label stored at pos.
func (idx *Index) LabelAt(pos int) (Label, error) {
	if pos < 0 || pos >= len(idx.labels) {
		return nil, &LookupError{Label: pos}
	}
	return idx.labels[pos], nil
}

// Contains reports whether label is present.
func (idx *Index) Contains(label Label) bool {
	_, ok := idx.Lookup(label)
	return ok
}

// Labels returns a copy of the labels in order.
func (idx *Index) Labels() []Label {
	out := make([]Label, len(idx.labels))
	copy(out, idx.labels)
	return out
}

// All iterates over (position, label) pairs in order.
func (idx *Index) All() iter.Seq2[int, Label] {
	return func(yield func(int, Label) bool) {
		for i, l := range idx.labels {
			if !yield(i, l) {
				return
			}
		}
	}
}

// Resolve maps a label or position onto a position.
//
// A present label wins; otherwise an integer argument is taken as a raw
// position. Anything else fails with a *LookupError.
func (idx *Index) Resolve(key Label) (int, error) {
	if pos, ok := idx.Lookup(key); ok {
		return pos, nil
	}
	if i, ok := value.IsInteger(key); ok && i >= 0 && i < len(idx.labels) {
		return i, nil
	}
	return 0, &LookupError{Label: key}
}

// Slice returns the contiguous sub-index between lo and hi inclusive.
//
// When both ends are integers they are positions, otherwise both are
// resolved as labels first. An inverted range yields an empty index.
func (idx *Index) Slice(lo, hi Label) (*Index, error) {
	from, to, err := idx.Bounds(lo, hi)
	if err != nil {
		return nil, err
	}
	if from > to {
		return build(nil)
	}
	labels := make([]Label, to-from+1)
	copy(labels, idx.labels[from:to+1])
	return build(labels)
}

// Bounds resolves the ends of a Slice range to positions.
func (idx *Index) Bounds(lo, hi Label) (int, int, error) {
	li, lok := value.IsInteger(lo)
	hj, hok := value.IsInteger(hi)
	if lok && hok {
		if li < 0 || li >= len(idx.labels) {
			return 0, 0, &LookupError{Label: lo}
		}
		if hj < 0 || hj >= len(idx.labels) {
			return 0, 0, &LookupError{Label: hi}
		}
		return li, hj, nil
	}
	from, err := idx.PositionOf(lo)
	if err != nil {
		return 0, 0, err
	}
	to, err := idx.PositionOf(hi)
	if err != nil {
		return 0, 0, err
	}
	return from, to, nil
}

// Take returns the sub-index of the given positions in the given order.
func (idx *Index) Take(positions []int) (*Index, error) {
	labels := make([]Label, len(positions))
	for i, p := range positions {
		if p < 0 || p >= len(idx.labels) {
			return nil, &LookupError{Label: p}
		}
		labels[i] = idx.labels[p]
	}
	return build(labels)
}

// Union returns the labels of idx followed by the labels of other not
// already present, preserving first-seen order.
func (idx *Index) Union(other *Index) *Index {
	labels := make([]Label, len(idx.labels), len(idx.labels)+other.Len())
	copy(labels, idx.labels)
	for _, l := range other.labels {
		if _, ok := idx.positions[l]; !ok {
			labels = append(labels, l)
		}
	}
	// deduplicated above, build cannot fail
	out, _ := build(labels)
	return out
}

// Append returns a new index extended by labels, all of which must be new.
func (idx *Index) Append(labels ...Label) (*Index, error) {
	out := make([]Label, len(idx.labels), len(idx.labels)+len(labels))
	copy(out, idx.labels)
	for _, l := range labels {
		n, err := value.NormalizeLabel(l)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return build(out)
}

// Without returns a new index with label removed and the rest kept in order.
func (idx *Index) Without(label Label) (*Index, error) {
	pos, err := idx.PositionOf(label)
	if err != nil {
		return nil, err
	}
	out := make([]Label, 0, len(idx.labels)-1)
	out = append(out, idx.labels[:pos]...)
	out = append(out, idx.labels[pos+1:]...)
	return build(out)
}

// NextInteger returns one past the largest integer label, or 0 if none.
func (idx *Index) NextInteger() int {
	next := 0
	for _, l := range idx.labels {
		if i, ok := value.IsInteger(l); ok && i >= next {
			next = i + 1
		}
	}
	return next
}

// Equal reports whether both indexes hold the same labels in the same order.
func (idx *Index) Equal(other *Index) bool {
	if idx == other {
		return true
	}
	if idx == nil || other == nil || len(idx.labels) != len(other.labels) {
		return false
	}
	for i, l := range idx.labels {
		if other.labels[i] != l {
			return false
		}
	}
	return true
}

// String renders the index as Index[l0 l1 ...].
func (idx *Index) String() string {
	var sb strings.Builder
	sb.WriteString("Index[")
	for i, l := range idx.labels {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, l)
	}
	sb.WriteByte(']')
	return sb.String()
}
