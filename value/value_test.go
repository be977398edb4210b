package value

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeLabel(t *testing.T) {
	tests := []struct {
		name  string
		label Label
		want  Label
	}{
		{name: "int", label: 3, want: 3},
		{name: "int64", label: int64(3), want: 3},
		{name: "uint8", label: uint8(3), want: 3},
		{name: "uint64 above MaxInt", label: uint64(1 << 63), want: uint64(1 << 63)},
		{name: "string", label: "a", want: "a"},
		{name: "float", label: 1.5, want: 1.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeLabel(tt.label)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := NormalizeLabel([]int{1})
	assert.ErrorIs(t, err, ErrUnhashable)
}

func TestIsInteger(t *testing.T) {
	n, ok := IsInteger(uint64(math.MaxInt))
	assert.True(t, ok)
	assert.Equal(t, math.MaxInt, n)

	for _, l := range []any{uint64(math.MaxInt) + 1, uint(math.MaxUint), uintptr(math.MaxUint)} {
		_, ok := IsInteger(l)
		assert.False(t, ok, "%T %v", l, l)
	}

	huge, err := NormalizeLabel(uint64(1 << 63))
	require.NoError(t, err)
	minInt, err := NormalizeLabel(int64(math.MinInt64))
	require.NoError(t, err)
	assert.NotEqual(t, huge, minInt)
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b any
		want int
	}{
		{name: "int less", a: 1, b: 2, want: -1},
		{name: "int float equal", a: 2, b: 2.0, want: 0},
		{name: "float greater", a: 3.5, b: int64(3), want: 1},
		{name: "string", a: "a", b: "b", want: -1},
		{name: "bool", a: false, b: true, want: -1},
		{name: "missing last", a: nil, b: 100, want: 1},
		{name: "missing equal", a: nil, b: nil, want: 0},
		{name: "number before string", a: 10, b: "a", want: -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Compare(tt.a, tt.b))
		})
	}
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal(1, 1.0))
	assert.True(t, Equal(int64(7), uint16(7)))
	assert.True(t, Equal(nil, nil))
	assert.True(t, Equal("x", "x"))
	assert.False(t, Equal(nil, 0))
	assert.False(t, Equal("1", 1))
	assert.False(t, Equal(1, 2))
	assert.True(t, Equal([]int{1}, []int{1}))
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindMissing, KindOf(nil))
	assert.Equal(t, KindInt, KindOf(uint32(1)))
	assert.Equal(t, KindFloat, KindOf(float32(1)))
	assert.Equal(t, KindString, KindOf("s"))
	assert.Equal(t, KindBool, KindOf(true))
	assert.Equal(t, KindOther, KindOf(struct{}{}))
	assert.Equal(t, "missing", KindMissing.String())
}
