package vecframe

import (
	"fmt"
	"iter"
	"reflect"
	"slices"

	"github.com/hupe1980/vecframe/bitmap"
	"github.com/hupe1980/vecframe/index"
	"github.com/hupe1980/vecframe/store"
	"github.com/hupe1980/vecframe/value"
)

// DataFrame is a table of aligned column Vectors sharing a row Index.
//
// Every column Vector's Index equals the row Index and the column Index
// names the columns in order. Indexes are immutable values, so columns may
// refer to the same row Index without aliasing; each column owns its store.
type DataFrame struct {
	name    Label
	columns *index.Index
	rows    *index.Index
	data    []*Vector
	kind    store.Kind
	logger  *Logger
	metrics MetricsCollector
}

// FromRecords creates a DataFrame from an ordered sequence of rows.
//
// The column Index is the WithColumns order followed by record keys not
// already present, in first-seen order. The row Index defaults to
// 0..len(records)-1. Keys absent from a record yield missing values; a row
// Index longer than records pads every column with missing values. Either
// way a column holding missing values is built on a plain store.
func FromRecords(records []Record, opts ...Option) (*DataFrame, error) {
	o := applyOptions(opts)

	names, err := index.FromLabels(dedupe(o.columns))
	if err != nil {
		return nil, err
	}
	for _, r := range records {
		keys, err := index.FromLabels(dedupe(r.Names()))
		if err != nil {
			return nil, err
		}
		names = names.Union(keys)
	}

	rows, err := o.rowIndex()
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = index.New(len(records))
	}

	df := newFrame(o, names, rows)
	for _, name := range names.Labels() {
		values := make([]any, len(records))
		for i, r := range records {
			values[i], _ = r.Get(name)
		}
		kind := o.storeKind
		if slices.ContainsFunc(values, value.IsMissing) {
			kind = store.KindPlain
		}
		vec, err := newVector(values, rows, name, kind, df.logger, df.metrics)
		if err != nil {
			return nil, err
		}
		df.data = append(df.data, pin(vec))
	}
	if err := df.Validate(); err != nil {
		return nil, err
	}
	return df, nil
}

// Empty creates a DataFrame with the WithColumns columns over the configured
// row Index, holding only missing values.
func Empty(opts ...Option) (*DataFrame, error) {
	return FromRecords(nil, opts...)
}

// FromColumns creates a DataFrame from a mapping of column name to values.
//
// Values may be []any, any other slice or array, or a *Vector. The column
// Index defaults to the sorted keys; WithColumns sets a leading order and the
// remaining keys follow sorted. The row Index defaults to the Index of the
// first column if it is a *Vector, else to the length of its values.
//
// Every column is deep-copied. A column whose length differs from the row
// Index size, or WithColumns naming a key that is not supplied, fails with
// ErrLength. A *Vector column whose Index differs from the row Index fails
// with ErrAlignment.
func FromColumns(columns map[Label]any, opts ...Option) (*DataFrame, error) {
	o := applyOptions(opts)

	source := make(map[Label]any, len(columns))
	keys := make([]Label, 0, len(columns))
	for k, v := range columns {
		n, err := value.NormalizeLabel(k)
		if err != nil {
			return nil, err
		}
		if _, dup := source[n]; dup {
			return nil, &index.DuplicateLabelError{Label: k}
		}
		source[n] = v
		keys = append(keys, n)
	}
	slices.SortFunc(keys, value.Compare)

	names, err := index.FromLabels(dedupe(o.columns))
	if err != nil {
		return nil, err
	}
	rest, err := index.FromLabels(keys)
	if err != nil {
		return nil, err
	}
	names = names.Union(rest)
	if names.Len() != len(source) {
		return nil, &LengthError{Expected: len(source), Actual: names.Len()}
	}

	rows, err := o.rowIndex()
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows, err = defaultRows(names, source)
		if err != nil {
			return nil, err
		}
	}

	df := newFrame(o, names, rows)
	for _, name := range names.Labels() {
		vec, err := df.columnVector(name, source[name])
		if err != nil {
			return nil, err
		}
		df.data = append(df.data, pin(vec))
	}
	if err := df.Validate(); err != nil {
		return nil, err
	}
	return df, nil
}

func newFrame(o *options, columns, rows *index.Index) *DataFrame {
	return &DataFrame{
		name:    o.name,
		columns: columns,
		rows:    rows,
		data:    make([]*Vector, 0, columns.Len()),
		kind:    o.storeKind,
		logger:  o.logger.WithName(o.name),
		metrics: o.metrics,
	}
}

// pin fixes the cardinality of a Vector held as a column.
func pin(v *Vector) *Vector {
	v.pinned = true
	return v
}

func defaultRows(names *index.Index, source map[Label]any) (*index.Index, error) {
	if names.Len() == 0 {
		return index.New(0), nil
	}
	first, _ := names.LabelAt(0)
	if vec, ok := source[first].(*Vector); ok {
		return vec.Index(), nil
	}
	values, err := toValues(first, source[first])
	if err != nil {
		return nil, err
	}
	return index.New(len(values)), nil
}

// columnVector builds a fresh column Vector over the row Index.
func (df *DataFrame) columnVector(name Label, values any) (*Vector, error) {
	if vec, ok := values.(*Vector); ok {
		if vec.Len() != df.rows.Len() {
			return nil, &LengthError{Expected: df.rows.Len(), Actual: vec.Len(), Column: name}
		}
		if !vec.Index().Equal(df.rows) {
			return nil, &AlignmentError{Column: name, Reason: "vector index differs from row index"}
		}
		out := vec.Dup()
		out.Rename(name)
		out.logger = df.logger
		out.metrics = df.metrics
		return out, nil
	}
	vals, err := toValues(name, values)
	if err != nil {
		return nil, err
	}
	if len(vals) != df.rows.Len() {
		return nil, &LengthError{Expected: df.rows.Len(), Actual: len(vals), Column: name}
	}
	return newVector(vals, df.rows, name, df.kind, df.logger, df.metrics)
}

// toValues copies a slice or array of any element type into []any.
func toValues(name Label, values any) ([]any, error) {
	if vals, ok := values.([]any); ok {
		out := make([]any, len(vals))
		copy(out, vals)
		return out, nil
	}
	rv := reflect.ValueOf(values)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, fmt.Errorf("%w: column %v holds %T", ErrInvalidColumn, name, values)
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, nil
}

func dedupe(labels []Label) []Label {
	out := make([]Label, 0, len(labels))
	seen := make(map[Label]struct{}, len(labels))
	for _, l := range labels {
		n, err := value.NormalizeLabel(l)
		if err != nil {
			// keep it, FromLabels reports the error
			out = append(out, l)
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}

// Name returns the optional identifier, or nil if unset.
func (df *DataFrame) Name() Label { return df.name }

// Rename sets the identifier.
func (df *DataFrame) Rename(name Label) { df.name = name }

// Index returns the row Index.
func (df *DataFrame) Index() *index.Index { return df.rows }

// ColumnIndex returns the column Index.
func (df *DataFrame) ColumnIndex() *index.Index { return df.columns }

// ColumnNames returns the column names in order.
func (df *DataFrame) ColumnNames() []Label { return df.columns.Labels() }

// Len returns the number of rows.
func (df *DataFrame) Len() int { return df.rows.Len() }

// Width returns the number of columns.
func (df *DataFrame) Width() int { return len(df.data) }

// HasColumn reports whether name is a column.
func (df *DataFrame) HasColumn(name Label) bool { return df.columns.Contains(name) }

// Column returns the named column. The result is a view: element updates
// through Set are visible in the DataFrame. Append, DeleteAt and Delete on it
// fail with ErrAlignment while it remains a column.
func (df *DataFrame) Column(name Label) (*Vector, error) {
	pos, err := df.columns.PositionOf(name)
	if err != nil {
		return nil, err
	}
	return df.data[pos], nil
}

// Lookup returns the named column and whether it exists.
func (df *DataFrame) Lookup(name Label) (*Vector, bool) {
	pos, ok := df.columns.Lookup(name)
	if !ok {
		return nil, false
	}
	return df.data[pos], true
}

// Select returns a new DataFrame restricted to names, in the requested order.
func (df *DataFrame) Select(names ...Label) (*DataFrame, error) {
	columns, err := index.FromLabels(names)
	if err != nil {
		return nil, err
	}
	out := df.derive(columns, df.rows)
	for _, name := range columns.Labels() {
		vec, err := df.Column(name)
		if err != nil {
			return nil, err
		}
		out.data = append(out.data, pin(vec.Dup()))
	}
	return out, nil
}

func (df *DataFrame) derive(columns, rows *index.Index) *DataFrame {
	return &DataFrame{
		name:    df.name,
		columns: columns,
		rows:    rows,
		data:    make([]*Vector, 0, columns.Len()),
		kind:    df.kind,
		logger:  df.logger,
		metrics: df.metrics,
	}
}

// SetColumn replaces the named column or appends it as a new column.
//
// Values follow the rules of FromColumns and must match the row Index size
// (ErrLength); a *Vector must carry the row Index (ErrAlignment). A DataFrame
// without columns or rows adopts the row Index of its first column. On
// failure the DataFrame is left unchanged.
func (df *DataFrame) SetColumn(name Label, values any) error {
	n, err := value.NormalizeLabel(name)
	if err != nil {
		return err
	}
	if err := df.Validate(); err != nil {
		return err
	}

	target := df
	if df.Width() == 0 && df.rows.Len() == 0 {
		rows, err := defaultRows(index.MustFromLabels(n), map[Label]any{n: values})
		if err != nil {
			df.logger.LogColumn("insert", n, 0, err)
			df.metrics.RecordColumn("insert", err)
			return err
		}
		target = df.derive(df.columns, rows)
	}

	vec, err := target.columnVector(n, values)
	if err != nil {
		df.logger.LogColumn("set", n, target.rows.Len(), err)
		df.metrics.RecordColumn("set", err)
		return err
	}

	if pos, ok := df.columns.Lookup(n); ok {
		df.data[pos].pinned = false
		df.data[pos] = pin(vec)
		df.logger.LogColumn("replace", n, df.rows.Len(), nil)
		df.metrics.RecordColumn("replace", nil)
		return nil
	}
	columns, err := df.columns.Append(n)
	if err != nil {
		return err
	}
	df.columns = columns
	df.rows = target.rows
	df.data = append(df.data, pin(vec))
	df.logger.LogColumn("insert", n, df.rows.Len(), nil)
	df.metrics.RecordColumn("insert", nil)
	return nil
}

// DeleteColumn removes the named column. A Vector obtained from Column
// before the delete is detached and may be resized again.
func (df *DataFrame) DeleteColumn(name Label) error {
	pos, err := df.columns.PositionOf(name)
	if err != nil {
		return err
	}
	columns, err := df.columns.Without(name)
	if err != nil {
		return err
	}
	df.columns = columns
	df.data[pos].pinned = false
	df.data = slices.Delete(df.data, pos, pos+1)
	df.logger.LogColumn("delete", name, df.rows.Len(), nil)
	df.metrics.RecordColumn("delete", nil)
	return nil
}

// Row returns the row addressed by a label or position as a Record in
// column order.
func (df *DataFrame) Row(key Label) (Record, error) {
	pos, err := df.rows.Resolve(key)
	if err != nil {
		return nil, err
	}
	return df.row(pos), nil
}

func (df *DataFrame) row(pos int) Record {
	r := make(Record, len(df.data))
	for i, vec := range df.data {
		label, _ := df.columns.LabelAt(i)
		r[i] = Pair{Label: label, Value: vec.store.Get(pos)}
	}
	return r
}

// Rows iterates over (row label, Record) pairs in row order.
func (df *DataFrame) Rows() iter.Seq2[Label, Record] {
	return func(yield func(Label, Record) bool) {
		for pos, label := range df.rows.All() {
			if !yield(label, df.row(pos)) {
				return
			}
		}
	}
}

// Columns iterates over (column name, Vector) pairs in column order.
func (df *DataFrame) Columns() iter.Seq2[Label, *Vector] {
	return func(yield func(Label, *Vector) bool) {
		for pos, name := range df.columns.All() {
			if !yield(name, df.data[pos]) {
				return
			}
		}
	}
}

// Filter returns a new DataFrame restricted to the rows at positions, in
// ascending order. Positions outside the DataFrame are ignored.
func (df *DataFrame) Filter(positions *bitmap.Positions) *DataFrame {
	if len(df.data) == 0 {
		var keep []int
		for p := range positions.All() {
			if p >= df.Len() {
				break
			}
			keep = append(keep, p)
		}
		rows, _ := df.rows.Take(keep)
		return df.derive(df.columns, rows)
	}
	out := df.derive(df.columns, nil)
	for _, vec := range df.data {
		out.data = append(out.data, pin(vec.Take(positions)))
	}
	out.rows = out.data[0].Index()
	return out
}

// Head returns the first n rows.
func (df *DataFrame) Head(n int) *DataFrame {
	n = min(max(n, 0), df.Len())
	p := bitmap.New()
	for i := range n {
		p.Add(i)
	}
	return df.Filter(p)
}

// Dup returns a deep copy.
func (df *DataFrame) Dup() *DataFrame {
	out := df.derive(df.columns, df.rows)
	for _, vec := range df.data {
		out.data = append(out.data, pin(vec.Dup()))
	}
	return out
}

// Equal reports whether both DataFrames have equal row Indexes, the same
// number of columns and equal columns by name. Column order is not compared.
func (df *DataFrame) Equal(other *DataFrame) bool {
	if df == other {
		return true
	}
	if df == nil || other == nil || !df.rows.Equal(other.rows) || df.Width() != other.Width() {
		return false
	}
	for name, vec := range df.Columns() {
		ov, ok := other.Lookup(name)
		if !ok || !vec.Equal(ov) {
			return false
		}
	}
	return true
}

// Validate checks the alignment invariants: the column Index size equals the
// number of columns, and every column has the row Index and its size.
func (df *DataFrame) Validate() error {
	if df.columns.Len() != len(df.data) {
		return &AlignmentError{
			Column: nil,
			Reason: fmt.Sprintf("%d column names for %d columns", df.columns.Len(), len(df.data)),
		}
	}
	for name, vec := range df.Columns() {
		if vec.Len() != df.rows.Len() {
			return &AlignmentError{
				Column: name,
				Reason: fmt.Sprintf("length %d, row index size %d", vec.Len(), df.rows.Len()),
			}
		}
		if !vec.Index().Equal(df.rows) {
			return &AlignmentError{Column: name, Reason: "vector index differs from row index"}
		}
	}
	return nil
}

// String renders a short description such as "#<DataFrame: sales(3x2)>".
func (df *DataFrame) String() string {
	if df.name == nil {
		return fmt.Sprintf("#<DataFrame(%dx%d)>", df.Len(), df.Width())
	}
	return fmt.Sprintf("#<DataFrame: %v(%dx%d)>", df.name, df.Len(), df.Width())
}
