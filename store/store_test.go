package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		name string
		want Kind
	}{
		{name: "plain", want: KindPlain},
		{name: "array", want: KindPlain},
		{name: "matrix", want: KindMatrix},
		{name: "nmatrix", want: KindMatrix},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseKind(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseKind("mdarray")
	assert.ErrorIs(t, err, ErrUnsupportedKind)
}

func TestNew_UnsupportedKind(t *testing.T) {
	_, err := New(Kind(9), nil)
	assert.ErrorIs(t, err, ErrUnsupportedKind)
	assert.Equal(t, "Kind(9)", Kind(9).String())
}

func TestPlain(t *testing.T) {
	src := []any{1, "two", nil}
	p := NewPlain(src)
	src[0] = 100 // caller storage is copied

	assert.Equal(t, KindPlain, p.Kind())
	assert.True(t, p.SupportsMissing())
	assert.Equal(t, 3, p.Len())
	assert.Equal(t, 1, p.Get(0))
	assert.Nil(t, p.Get(2))

	require.NoError(t, p.Set(2, 3.5))
	require.NoError(t, p.Append(nil))
	assert.Equal(t, []any{1, "two", 3.5, nil}, p.Values())

	p.Delete(1)
	assert.Equal(t, []any{1, 3.5, nil}, p.Values())

	c := p.Clone()
	require.NoError(t, c.Set(0, "changed"))
	assert.Equal(t, 1, p.Get(0))
}

func TestMatrix(t *testing.T) {
	m, err := NewMatrix([]any{1, 2.5, int64(3)})
	require.NoError(t, err)

	assert.Equal(t, KindMatrix, m.Kind())
	assert.False(t, m.SupportsMissing())
	assert.Equal(t, 3, m.Len())
	assert.Equal(t, 1.0, m.Get(0))

	require.NoError(t, m.Set(1, 7))
	assert.ErrorIs(t, m.Set(1, nil), ErrNotNumeric)
	assert.ErrorIs(t, m.Set(1, "x"), ErrNotNumeric)
	assert.Equal(t, 7.0, m.Get(1))

	require.NoError(t, m.Append(4))
	assert.ErrorIs(t, m.Append(nil), ErrNotNumeric)
	assert.Equal(t, []float64{1, 7, 3, 4}, m.Float64s())

	m.Delete(0)
	assert.Equal(t, []any{7.0, 3.0, 4.0}, m.Values())

	v := m.Vec()
	require.NotNil(t, v)
	assert.Equal(t, 3, v.Len())
	assert.Equal(t, 3.0, v.AtVec(1))
}

func TestMatrix_Empty(t *testing.T) {
	m, err := NewMatrix(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, m.Len())
	assert.Nil(t, m.Vec())
	assert.Empty(t, m.Values())

	require.NoError(t, m.Append(1))
	assert.Equal(t, 1, m.Len())
	m.Delete(0)
	assert.Equal(t, 0, m.Len())
	assert.Equal(t, 0, m.Clone().Len())
}

func TestNewMatrix_RejectsMissing(t *testing.T) {
	_, err := NewMatrix([]any{1, nil})
	assert.ErrorIs(t, err, ErrNotNumeric)
}

func TestCast(t *testing.T) {
	p := NewPlain([]any{1, 2, 3})

	m, err := Cast(p, KindMatrix)
	require.NoError(t, err)
	assert.Equal(t, KindMatrix, m.Kind())
	assert.Equal(t, []any{1.0, 2.0, 3.0}, m.Values())

	same, err := Cast(m, KindMatrix)
	require.NoError(t, err)
	assert.Same(t, m, same)

	back, err := Cast(m, KindPlain)
	require.NoError(t, err)
	assert.Equal(t, KindPlain, back.Kind())
	assert.Equal(t, []any{1.0, 2.0, 3.0}, back.Values())

	_, err = Cast(NewPlain([]any{nil}), KindMatrix)
	assert.ErrorIs(t, err, ErrNotNumeric)

	_, err = Cast(p, Kind(42))
	assert.ErrorIs(t, err, ErrUnsupportedKind)
}
