package vecframe

import (
	"testing"

	"github.com/hupe1980/vecframe/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBasicMetricsCollector_Vector(t *testing.T) {
	m := &BasicMetricsCollector{}
	v := MustVector([]any{1, 2}, WithMetrics(m))

	require.NoError(t, v.Append(3))
	require.NoError(t, v.DeleteAt(0))
	require.NoError(t, v.Cast(store.KindMatrix))
	require.NoError(t, v.Set(0, nil)) // casts back to plain
	assert.ErrorIs(t, v.Cast(store.KindMatrix), ErrNotNumeric)

	stats := m.GetStats()
	assert.Equal(t, int64(1), stats.AppendCount)
	assert.Equal(t, int64(1), stats.DeleteCount)
	assert.Equal(t, int64(3), stats.CastCount)
	assert.Equal(t, int64(1), stats.CastErrors)
}

func TestBasicMetricsCollector_DataFrame(t *testing.T) {
	m := &BasicMetricsCollector{}
	df, err := FromColumns(map[Label]any{"a": []int{1, 2}}, WithMetrics(m))
	require.NoError(t, err)

	require.NoError(t, df.SetColumn("b", []int{3, 4}))
	require.NoError(t, df.SetColumn("a", []int{5, 6}))
	require.Error(t, df.SetColumn("c", []int{1}))
	require.NoError(t, df.DeleteColumn("b"))

	// derived columns report to the same collector
	a, err := df.Column("a")
	require.NoError(t, err)
	free := a.Dup()
	require.NoError(t, free.Append(7))

	stats := m.GetStats()
	assert.Equal(t, int64(1), stats.ColumnInserts)
	assert.Equal(t, int64(1), stats.ColumnReplaces)
	assert.Equal(t, int64(1), stats.ColumnDeletes)
	assert.Equal(t, int64(1), stats.ColumnErrors)
	assert.Equal(t, int64(1), stats.AppendCount)
}

func TestNoopMetricsCollector(t *testing.T) {
	v := MustVector([]any{1})
	_, ok := v.metrics.(NoopMetricsCollector)
	assert.True(t, ok)
	require.NoError(t, v.Append(2))
}
