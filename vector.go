package vecframe

import (
	"bytes"
	"fmt"
	"iter"

	"github.com/hupe1980/vecframe/bitmap"
	"github.com/hupe1980/vecframe/codec"
	"github.com/hupe1980/vecframe/index"
	"github.com/hupe1980/vecframe/store"
	"github.com/hupe1980/vecframe/value"
)

// Label is a hashable index label. Integer kinds are normalized to int.
type Label = value.Label

// Pair is a label-value association.
type Pair struct {
	Label Label
	Value any
}

// Vector is a single labeled column.
//
// A Vector exclusively owns its backing store. Its Index is immutable and is
// replaced, never modified, when the cardinality changes. The store length
// always equals the Index size.
//
// A Vector is not safe for concurrent use when any goroutine mutates it.
type Vector struct {
	name   Label
	index  *index.Index
	store   store.Store
	logger  *Logger
	metrics MetricsCollector
	// pinned is set while the Vector is a DataFrame column; its
	// cardinality is then fixed to the row Index.
	pinned bool
}

// NewVector creates a Vector from an ordered sequence of values.
//
// Without an index the Vector is positional over 0..len(values)-1. An index
// longer than values pads the tail with missing values and forces a plain
// store; an index shorter than values fails with a *LengthError.
func NewVector(values []any, opts ...Option) (*Vector, error) {
	o := applyOptions(opts)
	idx, err := o.rowIndex()
	if err != nil {
		return nil, err
	}
	return newVector(values, idx, o.name, o.storeKind, o.logger, o.metrics)
}

// MustVector is like NewVector but panics on error.
// It is intended for tests and examples.
func MustVector(values []any, opts ...Option) *Vector {
	v, err := NewVector(values, opts...)
	if err != nil {
		panic(err)
	}
	return v
}

// VectorFromPairs creates a Vector from an ordered label-value mapping. The
// labels of pairs become the Index; index options are ignored.
func VectorFromPairs(pairs []Pair, opts ...Option) (*Vector, error) {
	o := applyOptions(opts)
	labels := make([]Label, len(pairs))
	values := make([]any, len(pairs))
	for i, p := range pairs {
		labels[i] = p.Label
		values[i] = p.Value
	}
	idx, err := index.FromLabels(labels)
	if err != nil {
		return nil, err
	}
	return newVector(values, idx, o.name, o.storeKind, o.logger, o.metrics)
}

func newVector(values []any, idx *index.Index, name Label, kind store.Kind, logger *Logger, metrics MetricsCollector) (*Vector, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedStoreKind, kind)
	}
	if idx == nil {
		idx = index.New(len(values))
	}
	switch {
	case idx.Len() < len(values):
		return nil, &LengthError{Expected: idx.Len(), Actual: len(values), Column: name}
	case idx.Len() > len(values):
		padded := make([]any, idx.Len())
		copy(padded, values)
		values = padded
		kind = store.KindPlain
	}
	st, err := store.New(kind, values)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = NoopLogger()
	}
	if metrics == nil {
		metrics = NoopMetricsCollector{}
	}
	return &Vector{name: name, index: idx, store: st, logger: logger, metrics: metrics}, nil
}

// derive builds a Vector sharing v's name, store kind, logger and metrics.
// A matrix kind falls back to plain when values are not all numeric.
func (v *Vector) derive(values []any, idx *index.Index) *Vector {
	st, err := store.New(v.store.Kind(), values)
	if err != nil {
		st = store.NewPlain(values)
	}
	return &Vector{name: v.name, index: idx, store: st, logger: v.logger, metrics: v.metrics}
}

// Name returns the optional identifier, or nil if unset.
func (v *Vector) Name() Label { return v.name }

// Index returns the Vector's Index.
func (v *Vector) Index() *index.Index { return v.index }

// Len returns the number of elements.
func (v *Vector) Len() int { return v.store.Len() }

// StoreKind returns the kind of the backing store.
func (v *Vector) StoreKind() store.Kind { return v.store.Kind() }

// Numeric returns the matrix-backed store, if the Vector has one.
func (v *Vector) Numeric() (*store.Matrix, bool) {
	m, ok := v.store.(*store.Matrix)
	return m, ok
}

// At returns the element addressed by a label or position.
//
// A present label wins; an integer that is not a label is taken as a raw
// position. Anything else fails with ErrLookup.
func (v *Vector) At(key Label) (any, error) {
	pos, err := v.index.Resolve(key)
	if err != nil {
		return nil, err
	}
	return v.store.Get(pos), nil
}

// Lookup returns the element addressed by key and whether it was found.
func (v *Vector) Lookup(key Label) (any, bool) {
	pos, err := v.index.Resolve(key)
	if err != nil {
		return nil, false
	}
	return v.store.Get(pos), true
}

// Select returns a new Vector restricted to keys, in the requested order.
func (v *Vector) Select(keys ...Label) (*Vector, error) {
	positions := make([]int, len(keys))
	for i, k := range keys {
		pos, err := v.index.Resolve(k)
		if err != nil {
			return nil, err
		}
		positions[i] = pos
	}
	return v.takePositions(positions)
}

// Slice returns a new Vector over the inclusive range lo..hi. Integer ends
// are positions, other ends are labels.
func (v *Vector) Slice(lo, hi Label) (*Vector, error) {
	from, to, err := v.index.Bounds(lo, hi)
	if err != nil {
		return nil, err
	}
	return v.takePositions(span(from, to))
}

func span(from, to int) []int {
	if from > to {
		return nil
	}
	out := make([]int, 0, to-from+1)
	for i := from; i <= to; i++ {
		out = append(out, i)
	}
	return out
}

func (v *Vector) takePositions(positions []int) (*Vector, error) {
	idx, err := v.index.Take(positions)
	if err != nil {
		return nil, err
	}
	values := make([]any, len(positions))
	for i, p := range positions {
		values[i] = v.store.Get(p)
	}
	return v.derive(values, idx), nil
}

// Head returns the first n elements.
func (v *Vector) Head(n int) *Vector {
	n = min(max(n, 0), v.Len())
	out, _ := v.takePositions(span(0, n-1))
	return out
}

// Tail returns the last n elements.
func (v *Vector) Tail(n int) *Vector {
	n = min(max(n, 0), v.Len())
	out, _ := v.takePositions(span(v.Len()-n, v.Len()-1))
	return out
}

// Set replaces the element addressed by key in place.
//
// Setting a missing value on a matrix store first converts the Vector to a
// plain store.
func (v *Vector) Set(key Label, val any) error {
	pos, err := v.index.Resolve(key)
	if err != nil {
		return err
	}
	st := v.store
	if value.IsMissing(val) && !st.SupportsMissing() {
		if st, err = v.castStore(store.KindPlain); err != nil {
			return err
		}
	}
	if err := st.Set(pos, val); err != nil {
		return err
	}
	v.store = st
	return nil
}

// Append grows the Vector by one element.
//
// Without a label, a positional Index is extended by its next integer and a
// symbolic Index fails with ErrLabelRequired. A label already present fails
// with ErrDuplicateLabel. A DataFrame column cannot be resized and fails
// with ErrAlignment.
func (v *Vector) Append(val any, label ...Label) error {
	if err := v.checkResize(); err != nil {
		return err
	}
	var next Label
	switch {
	case len(label) > 0:
		next = label[0]
	case v.index.Kind() == index.Positional:
		next = v.index.NextInteger()
	default:
		return &LabelRequiredError{Kind: v.index.Kind()}
	}
	idx, err := v.index.Append(next)
	if err != nil {
		return err
	}
	st := v.store
	if value.IsMissing(val) && !st.SupportsMissing() {
		if st, err = v.castStore(store.KindPlain); err != nil {
			return err
		}
	}
	// stores leave their contents untouched when Append fails
	if err := st.Append(val); err != nil {
		return err
	}
	v.store = st
	v.index = idx
	v.logger.LogResize("append", next, v.Len())
	v.metrics.RecordResize("append", v.Len())
	return nil
}

// DeleteAt removes the element addressed by key.
//
// A positional Index is renumbered 0..n-2; a symbolic Index drops the label
// and keeps the rest in order. A DataFrame column cannot be resized and
// fails with ErrAlignment.
func (v *Vector) DeleteAt(key Label) error {
	if err := v.checkResize(); err != nil {
		return err
	}
	pos, err := v.index.Resolve(key)
	if err != nil {
		return err
	}
	return v.deletePosition(pos)
}

// Delete removes the first element equal to val.
func (v *Vector) Delete(val any) error {
	if err := v.checkResize(); err != nil {
		return err
	}
	pos, ok := v.positionOf(val)
	if !ok {
		return &index.LookupError{Label: val}
	}
	return v.deletePosition(pos)
}

func (v *Vector) deletePosition(pos int) error {
	label, err := v.index.LabelAt(pos)
	if err != nil {
		return err
	}
	var idx *index.Index
	if v.index.Kind() == index.Positional {
		idx = index.New(v.index.Len() - 1)
	} else if idx, err = v.index.Without(label); err != nil {
		return err
	}
	v.store.Delete(pos)
	v.index = idx
	v.logger.LogResize("delete", label, v.Len())
	v.metrics.RecordResize("delete", v.Len())
	return nil
}

func (v *Vector) checkResize() error {
	if v.pinned {
		return &AlignmentError{Column: v.name, Reason: "a DataFrame column cannot be resized"}
	}
	return nil
}

func (v *Vector) positionOf(val any) (int, bool) {
	for i := 0; i < v.store.Len(); i++ {
		if value.Equal(v.store.Get(i), val) {
			return i, true
		}
	}
	return 0, false
}

// IndexOf returns the label of the first element equal to val.
func (v *Vector) IndexOf(val any) (Label, bool) {
	pos, ok := v.positionOf(val)
	if !ok {
		return nil, false
	}
	l, _ := v.index.LabelAt(pos)
	return l, true
}

// Exists reports whether an element equal to val is present.
func (v *Vector) Exists(val any) bool {
	_, ok := v.positionOf(val)
	return ok
}

// HasLabel reports whether label is present in the Index.
func (v *Vector) HasLabel(label Label) bool {
	return v.index.Contains(label)
}

// Cast converts the backing store in place.
func (v *Vector) Cast(kind store.Kind) error {
	st, err := v.castStore(kind)
	if err != nil {
		return err
	}
	v.store = st
	return nil
}

// castStore is the single place where the store representation changes.
func (v *Vector) castStore(kind store.Kind) (store.Store, error) {
	from := v.store.Kind()
	st, err := store.Cast(v.store, kind)
	if from != kind {
		v.logger.LogCast(from.String(), kind.String(), v.store.Len(), err)
		v.metrics.RecordCast(from, kind, err)
	}
	return st, err
}

// Rename sets the identifier.
func (v *Vector) Rename(name Label) {
	v.name = name
}

// Dup returns a deep copy.
func (v *Vector) Dup() *Vector {
	return &Vector{name: v.name, index: v.index, store: v.store.Clone(), logger: v.logger, metrics: v.metrics}
}

// Map returns a new Vector holding fn applied to every element.
func (v *Vector) Map(fn func(any) any) *Vector {
	values := v.store.Values()
	for i, x := range values {
		values[i] = fn(x)
	}
	return v.derive(values, v.index)
}

// Unique returns the first occurrence of every distinct value with its label.
func (v *Vector) Unique() *Vector {
	var (
		positions []int
		seen      = make(map[any]struct{})
		others    []any
	)
outer:
	for i := 0; i < v.store.Len(); i++ {
		x := v.store.Get(i)
		if key, ok := uniqueKey(x); ok {
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
		} else {
			for _, o := range others {
				if value.Equal(o, x) {
					continue outer
				}
			}
			others = append(others, x)
		}
		positions = append(positions, i)
	}
	out, _ := v.takePositions(positions)
	return out
}

func uniqueKey(x any) (any, bool) {
	if f, ok := value.ToFloat(x); ok {
		return f, true
	}
	if x == nil {
		return nil, true
	}
	if _, err := value.NormalizeLabel(x); err != nil {
		return nil, false
	}
	return x, true
}

// Reindex returns a new Vector holding the same values in order over labels,
// following the padding rules of NewVector.
func (v *Vector) Reindex(labels ...Label) (*Vector, error) {
	idx, err := index.FromLabels(labels)
	if err != nil {
		return nil, err
	}
	return newVector(v.store.Values(), idx, v.name, v.store.Kind(), v.logger, v.metrics)
}

// ReindexSeq returns a new Vector over the positional Index 0..n-1.
func (v *Vector) ReindexSeq() *Vector {
	return v.derive(v.store.Values(), index.New(v.Len()))
}

// Values returns a copy of the elements in order.
func (v *Vector) Values() []any { return v.store.Values() }

// Pairs returns the (label, value) pairs in order.
func (v *Vector) Pairs() []Pair {
	out := make([]Pair, v.Len())
	for i, l := range v.index.All() {
		out[i] = Pair{Label: l, Value: v.store.Get(i)}
	}
	return out
}

// ToMap returns the elements keyed by label.
func (v *Vector) ToMap() map[Label]any {
	out := make(map[Label]any, v.Len())
	for i, l := range v.index.All() {
		out[l] = v.store.Get(i)
	}
	return out
}

// All iterates over (label, value) pairs in order.
func (v *Vector) All() iter.Seq2[Label, any] {
	return func(yield func(Label, any) bool) {
		for i, l := range v.index.All() {
			if !yield(l, v.store.Get(i)) {
				return
			}
		}
	}
}

// Equal reports whether both Vectors have equal Indexes and every label maps
// to an equal value. The name is not compared.
func (v *Vector) Equal(other *Vector) bool {
	if v == other {
		return true
	}
	if v == nil || other == nil || !v.index.Equal(other.index) {
		return false
	}
	for i := 0; i < v.store.Len(); i++ {
		if !value.Equal(v.store.Get(i), other.store.Get(i)) {
			return false
		}
	}
	return true
}

// CountMissing returns the number of missing values.
func (v *Vector) CountMissing() int {
	return v.MissingPositions().Cardinality()
}

// MissingPositions returns the positions holding missing values.
func (v *Vector) MissingPositions() *bitmap.Positions {
	return v.Where(value.IsMissing)
}

// Where returns the positions whose element satisfies pred.
func (v *Vector) Where(pred func(any) bool) *bitmap.Positions {
	out := bitmap.New()
	for i := 0; i < v.store.Len(); i++ {
		if pred(v.store.Get(i)) {
			out.Add(i)
		}
	}
	return out
}

// Take returns a new Vector restricted to positions, in ascending order.
// Positions outside the Vector are ignored.
func (v *Vector) Take(positions *bitmap.Positions) *Vector {
	var keep []int
	for p := range positions.All() {
		if p >= v.Len() {
			break
		}
		keep = append(keep, p)
	}
	out, _ := v.takePositions(keep)
	return out
}

// String renders a short description such as "#<Vector: price(3)>".
func (v *Vector) String() string {
	if v.name == nil {
		return fmt.Sprintf("#<Vector(%d)>", v.Len())
	}
	return fmt.Sprintf("#<Vector: %v(%d)>", v.name, v.Len())
}

// MarshalJSON encodes the Vector as an object of label to value in order.
func (v *Vector) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, l := range v.index.All() {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := codec.Default.Marshal(fmt.Sprint(l))
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		b, err := codec.Default.Marshal(v.store.Get(i))
		if err != nil {
			return nil, err
		}
		buf.Write(b)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
