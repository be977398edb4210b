package store

// Plain is a store backed by a slice of arbitrary values.
type Plain struct {
	data []any
}

// NewPlain returns a Plain store holding a copy of values.
func NewPlain(values []any) *Plain {
	data := make([]any, len(values))
	copy(data, values)
	return &Plain{data: data}
}

// Kind implements Store.
func (p *Plain) Kind() Kind { return KindPlain }

// Len implements Store.
func (p *Plain) Len() int { return len(p.data) }

// Get implements Store.
func (p *Plain) Get(i int) any { return p.data[i] }

// Set implements Store.
func (p *Plain) Set(i int, v any) error {
	p.data[i] = v
	return nil
}

// Append implements Store.
func (p *Plain) Append(v any) error {
	p.data = append(p.data, v)
	return nil
}

// Delete implements Store.
func (p *Plain) Delete(i int) {
	p.data = append(p.data[:i], p.data[i+1:]...)
}

// Values implements Store.
func (p *Plain) Values() []any {
	out := make([]any, len(p.data))
	copy(out, p.data)
	return out
}

// SupportsMissing implements Store.
func (p *Plain) SupportsMissing() bool { return true }

// Clone implements Store.
func (p *Plain) Clone() Store { return NewPlain(p.data) }
