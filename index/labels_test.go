package index

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	idx := New(3)
	assert.Equal(t, 3, idx.Len())
	assert.Equal(t, Positional, idx.Kind())
	assert.Equal(t, []Label{0, 1, 2}, idx.Labels())

	assert.Equal(t, 0, New(-1).Len())
}

func TestFromLabels(t *testing.T) {
	idx, err := FromLabels([]Label{"a", "b", "c"})
	require.NoError(t, err)
	assert.Equal(t, Symbolic, idx.Kind())

	pos, err := idx.PositionOf("b")
	require.NoError(t, err)
	assert.Equal(t, 1, pos)

	l, err := idx.LabelAt(2)
	require.NoError(t, err)
	assert.Equal(t, "c", l)

	_, err = idx.PositionOf("z")
	assert.ErrorIs(t, err, ErrNotFound)
	var le *LookupError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, "z", le.Label)

	_, err = idx.LabelAt(3)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = idx.LabelAt(-1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFromLabels_Duplicate(t *testing.T) {
	_, err := FromLabels([]Label{"a", "b", "a"})
	assert.ErrorIs(t, err, ErrDuplicateLabel)

	// Integer kinds normalize to the same label.
	_, err = FromLabels([]Label{1, int64(1)})
	assert.ErrorIs(t, err, ErrDuplicateLabel)
}

func TestFromLabels_IntegerLabelsArePositional(t *testing.T) {
	idx := MustFromLabels(5, 6, 7)
	assert.Equal(t, Positional, idx.Kind())
	pos, ok := idx.Lookup(int32(6))
	assert.True(t, ok)
	assert.Equal(t, 1, pos)
}

func TestEqual(t *testing.T) {
	a := MustFromLabels("a", "b", "c")
	assert.True(t, a.Equal(a))
	assert.True(t, a.Equal(MustFromLabels("a", "b", "c")))
	assert.False(t, a.Equal(MustFromLabels("c", "b", "a")))
	assert.False(t, a.Equal(MustFromLabels("a", "b")))
	assert.True(t, New(3).Equal(MustFromLabels(0, 1, 2)))
	assert.False(t, a.Equal(nil))
}

func TestSlice(t *testing.T) {
	idx := MustFromLabels("a", "b", "c", "d", "e")

	tests := []struct {
		name   string
		lo, hi Label
		want   []Label
	}{
		{name: "labels", lo: "b", hi: "d", want: []Label{"b", "c", "d"}},
		{name: "positions", lo: 1, hi: 3, want: []Label{"b", "c", "d"}},
		{name: "single", lo: "a", hi: "a", want: []Label{"a"}},
		{name: "inverted", lo: "d", hi: "b", want: []Label{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := idx.Slice(tt.lo, tt.hi)
			require.NoError(t, err)
			assert.True(t, got.Equal(MustFromLabels(tt.want...)), got.String())
		})
	}

	_, err := idx.Slice("a", "z")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = idx.Slice(0, 10)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSlice_Positional(t *testing.T) {
	idx := New(10)
	got, err := idx.Slice(2, 4)
	require.NoError(t, err)
	assert.Equal(t, []Label{2, 3, 4}, got.Labels())
}

func TestUnion(t *testing.T) {
	a := MustFromLabels("a", "b")
	b := MustFromLabels("b", "c", "a", "d")
	u := a.Union(b)
	assert.Equal(t, []Label{"a", "b", "c", "d"}, u.Labels())
	// receivers are untouched
	assert.Equal(t, 2, a.Len())
	assert.Equal(t, 4, b.Len())
}

func TestAppendAndWithout(t *testing.T) {
	idx := MustFromLabels("a", "b")

	grown, err := idx.Append("c")
	require.NoError(t, err)
	assert.Equal(t, []Label{"a", "b", "c"}, grown.Labels())
	assert.Equal(t, 2, idx.Len())

	_, err = idx.Append("a")
	assert.ErrorIs(t, err, ErrDuplicateLabel)

	shrunk, err := grown.Without("b")
	require.NoError(t, err)
	assert.Equal(t, []Label{"a", "c"}, shrunk.Labels())

	_, err = grown.Without("z")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResolve(t *testing.T) {
	idx := MustFromLabels("a", "b", "c")

	pos, err := idx.Resolve("c")
	require.NoError(t, err)
	assert.Equal(t, 2, pos)

	pos, err = idx.Resolve(1)
	require.NoError(t, err)
	assert.Equal(t, 1, pos)

	_, err = idx.Resolve(3)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = idx.Resolve("z")
	assert.ErrorIs(t, err, ErrNotFound)

	// labels win over positions
	ints := MustFromLabels(2, 0, 1)
	pos, err = ints.Resolve(0)
	require.NoError(t, err)
	assert.Equal(t, 1, pos)
}

func TestTakeAndNextInteger(t *testing.T) {
	idx := MustFromLabels("a", "b", "c")
	sub, err := idx.Take([]int{2, 0})
	require.NoError(t, err)
	assert.Equal(t, []Label{"c", "a"}, sub.Labels())

	_, err = idx.Take([]int{5})
	assert.ErrorIs(t, err, ErrNotFound)

	assert.Equal(t, 0, idx.NextInteger())
	assert.Equal(t, 3, New(3).NextInteger())
	assert.Equal(t, 8, MustFromLabels(7, 2).NextInteger())
}

func TestLabelsIsCopy(t *testing.T) {
	idx := MustFromLabels("a", "b")
	labels := idx.Labels()
	labels[0] = "z"
	assert.True(t, idx.Contains("a"))
	assert.False(t, idx.Contains("z"))
}

func TestAll(t *testing.T) {
	idx := MustFromLabels("x", "y")
	var got []Label
	for pos, l := range idx.All() {
		assert.Equal(t, len(got), pos)
		got = append(got, l)
	}
	assert.Equal(t, []Label{"x", "y"}, got)
	assert.Equal(t, "Index[x y]", idx.String())
}

func TestFromLabels_HugeUnsignedStaysDistinct(t *testing.T) {
	idx, err := FromLabels([]Label{int64(math.MinInt64), uint64(1 << 63)})
	require.NoError(t, err)
	assert.Equal(t, 2, idx.Len())

	pos, err := idx.PositionOf(uint64(1 << 63))
	require.NoError(t, err)
	assert.Equal(t, 1, pos)

	_, err = New(3).Resolve(uint64(1 << 63))
	assert.ErrorIs(t, err, ErrNotFound)
}
