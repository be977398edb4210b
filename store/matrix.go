package store

import (
	"fmt"

	"github.com/hupe1980/vecframe/value"
	"gonum.org/v1/gonum/mat"
)

// Matrix is a numeric store backed by a gonum dense vector.
//
// Elements are held as float64 and read back as float64. A Matrix cannot
// hold missing values; gonum vectors have no zero-length form, so an empty
// Matrix keeps a nil vector.
type Matrix struct {
	vec *mat.VecDense
}

// NewMatrix returns a Matrix holding values converted to float64.
func NewMatrix(values []any) (*Matrix, error) {
	data := make([]float64, len(values))
	for i, v := range values {
		f, ok := value.ToFloat(v)
		if !ok {
			return nil, fmt.Errorf("%w: position %d holds %v", ErrNotNumeric, i, v)
		}
		data[i] = f
	}
	return newMatrix(data), nil
}

// NewMatrixFloat64 returns a Matrix holding a copy of data.
func NewMatrixFloat64(data []float64) *Matrix {
	cp := make([]float64, len(data))
	copy(cp, data)
	return newMatrix(cp)
}

// newMatrix takes ownership of data.
func newMatrix(data []float64) *Matrix {
	if len(data) == 0 {
		return &Matrix{}
	}
	return &Matrix{vec: mat.NewVecDense(len(data), data)}
}

func (m *Matrix) raw() []float64 {
	if m.vec == nil {
		return nil
	}
	return m.vec.RawVector().Data
}

// Kind implements Store.
func (m *Matrix) Kind() Kind { return KindMatrix }

// Len implements Store.
func (m *Matrix) Len() int {
	if m.vec == nil {
		return 0
	}
	return m.vec.Len()
}

// Get implements Store.
func (m *Matrix) Get(i int) any { return m.vec.AtVec(i) }

// Set implements Store.
func (m *Matrix) Set(i int, v any) error {
	f, ok := value.ToFloat(v)
	if !ok {
		return fmt.Errorf("%w: %v", ErrNotNumeric, v)
	}
	m.vec.SetVec(i, f)
	return nil
}

// Append implements Store.
func (m *Matrix) Append(v any) error {
	f, ok := value.ToFloat(v)
	if !ok {
		return fmt.Errorf("%w: %v", ErrNotNumeric, v)
	}
	data := append(m.raw(), f)
	m.vec = mat.NewVecDense(len(data), data)
	return nil
}

// Delete implements Store.
func (m *Matrix) Delete(i int) {
	data := m.raw()
	data = append(data[:i], data[i+1:]...)
	if len(data) == 0 {
		m.vec = nil
		return
	}
	m.vec = mat.NewVecDense(len(data), data)
}

// Values implements Store.
func (m *Matrix) Values() []any {
	data := m.raw()
	out := make([]any, len(data))
	for i, f := range data {
		out[i] = f
	}
	return out
}

// Float64s returns a copy of the elements.
func (m *Matrix) Float64s() []float64 {
	data := m.raw()
	out := make([]float64, len(data))
	copy(out, data)
	return out
}

// Vec returns a read-only view of the elements for numeric collaborators,
// or nil if the store is empty. The view aliases the store.
func (m *Matrix) Vec() mat.Vector {
	if m.vec == nil {
		return nil
	}
	return m.vec.SliceVec(0, m.vec.Len())
}

// SupportsMissing implements Store.
func (m *Matrix) SupportsMissing() bool { return false }

// Clone implements Store.
func (m *Matrix) Clone() Store { return NewMatrixFloat64(m.raw()) }
