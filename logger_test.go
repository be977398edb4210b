package vecframe

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/hupe1980/vecframe/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_Cast(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	v := MustVector([]any{1, 2}, WithLogger(logger))
	require.NoError(t, v.Cast(store.KindMatrix))

	assert.Contains(t, buf.String(), "store cast")
	assert.Contains(t, buf.String(), "from=plain")
	assert.Contains(t, buf.String(), "to=matrix")
}

func TestLogger_Column(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	df, err := FromColumns(map[Label]any{"a": []int{1}}, WithLogger(logger), WithName("sales"))
	require.NoError(t, err)
	require.NoError(t, df.SetColumn("b", []int{2}))

	assert.Contains(t, buf.String(), "column insert")
	assert.Contains(t, buf.String(), "name=sales")

	buf.Reset()
	logger.LogColumn("replace", "a", 1, errors.New("boom"))
	assert.Contains(t, buf.String(), "column replace failed")
}

func TestNoopLogger(t *testing.T) {
	l := NoopLogger()
	assert.False(t, l.Enabled(t.Context(), slog.LevelError))
	assert.Same(t, l, l.WithName(nil))
}
