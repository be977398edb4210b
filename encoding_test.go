package vecframe

import (
	"testing"

	"github.com/hupe1980/vecframe/codec"
	"github.com/hupe1980/vecframe/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocument_RoundTrip(t *testing.T) {
	df, err := FromColumns(map[Label]any{
		"a": []int{1, 2, 3},
		"b": []any{"x", nil, "z"},
	}, WithColumns("b", "a"), WithLabels("r1", "r2", "r3"), WithName("t"))
	require.NoError(t, err)

	doc := df.Document()
	assert.Equal(t, []any{"b", "a"}, doc.Columns)
	assert.Equal(t, []any{"r1", "r2", "r3"}, doc.Index)
	assert.Equal(t, [][]any{{"x", nil, "z"}, {1, 2, 3}}, doc.Data)

	back, err := FromDocument(doc)
	require.NoError(t, err)
	assert.True(t, back.Equal(df))
	assert.Equal(t, df.ColumnNames(), back.ColumnNames())
	assert.Equal(t, "t", back.Name())
}

func TestFromDocument_Mismatch(t *testing.T) {
	_, err := FromDocument(Document{Columns: []any{"a", "b"}, Data: [][]any{{1}}})
	assert.ErrorIs(t, err, ErrLength)
}

func TestEncodeDecode(t *testing.T) {
	df, err := FromColumns(map[Label]any{
		"a": []int{1, 2, 3},
		"b": []float64{1.5, 2.5, 3.5},
		"c": []any{true, nil, false},
	})
	require.NoError(t, err)

	codecs := []codec.Codec{nil, codec.JSON{}, codec.MustZstd(nil), codec.NewLZ4(codec.JSON{})}
	for _, c := range codecs {
		name := "default"
		if c != nil {
			name = c.Name()
		}
		t.Run(name, func(t *testing.T) {
			b, err := df.Encode(c)
			require.NoError(t, err)

			back, err := Decode(c, b)
			require.NoError(t, err)
			assert.True(t, back.Equal(df))
			assert.True(t, back.Index().Equal(df.Index()))
			assert.Equal(t, df.ColumnNames(), back.ColumnNames())
		})
	}
}

func TestDecode_Garbage(t *testing.T) {
	_, err := Decode(codec.JSON{}, []byte("{"))
	assert.Error(t, err)
}

func TestEncode_Unsupported(t *testing.T) {
	df, err := FromColumns(map[Label]any{"a": []any{make(chan int)}})
	require.NoError(t, err)
	_, err = df.Encode(codec.JSON{})
	assert.Error(t, err)
}

func TestEncodeDecode_Random(t *testing.T) {
	rng := testutil.NewRNG(99)
	const rows = 64
	df, err := FromColumns(map[Label]any{
		"ints":   rng.WithMissing(rng.Ints(rows, 1000), 0.2),
		"floats": rng.Floats(rows),
	}, WithLabels(rng.Labels(rows)...))
	require.NoError(t, err)

	for _, name := range []string{"go-json", "zstd+go-json", "lz4+json"} {
		c, ok := codec.ByName(name)
		require.True(t, ok)

		b, err := df.Encode(c)
		require.NoError(t, err)
		back, err := Decode(c, b)
		require.NoError(t, err)
		assert.True(t, back.Equal(df), name)
		assert.True(t, back.Index().Equal(df.Index()), name)
	}
}
