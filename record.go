package vecframe

import "github.com/hupe1980/vecframe/value"

// Record is an ordered row of (column name, value) pairs.
type Record []Pair

// R builds a Record from alternating names and values:
//
//	vecframe.R("a", 1, "b", 2)
//
// A trailing name without a value is paired with a missing value.
func R(kv ...any) Record {
	r := make(Record, 0, (len(kv)+1)/2)
	for i := 0; i < len(kv); i += 2 {
		p := Pair{Label: kv[i]}
		if i+1 < len(kv) {
			p.Value = kv[i+1]
		}
		r = append(r, p)
	}
	return r
}

// Get returns the value of the named column and whether it is present.
func (r Record) Get(name Label) (any, bool) {
	n, err := value.NormalizeLabel(name)
	if err != nil {
		return nil, false
	}
	for _, p := range r {
		l, err := value.NormalizeLabel(p.Label)
		if err == nil && l == n {
			return p.Value, true
		}
	}
	return nil, false
}

// Names returns the column names in order.
func (r Record) Names() []Label {
	out := make([]Label, len(r))
	for i, p := range r {
		out[i] = p.Label
	}
	return out
}

// Values returns the values in column order.
func (r Record) Values() []any {
	out := make([]any, len(r))
	for i, p := range r {
		out[i] = p.Value
	}
	return out
}
