package lockfree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/lockfree"
)

func TestBasicMetricsCollector_Wired(t *testing.T) {
	mc := &lockfree.BasicMetricsCollector{}
	v := lockfree.New[int](lockfree.WithMetricsCollector(mc))

	for i := 0; i < 20; i++ {
		require.NoError(t, v.PushBack(i))
	}
	_, err := v.PopBack()
	require.NoError(t, err)
	_, err = v.Get(0)
	require.NoError(t, err)
	_, err = v.Get(100)
	require.Error(t, err)
	_, err = v.Set(1, 9)
	require.NoError(t, err)
	v.Reserve(100)

	stats := mc.GetStats()
	assert.Equal(t, int64(20), stats.PushCount)
	assert.Equal(t, int64(0), stats.PushErrors)
	assert.Equal(t, int64(1), stats.PopCount)
	assert.Equal(t, int64(2), stats.GetCount)
	assert.Equal(t, int64(1), stats.GetErrors)
	assert.Equal(t, int64(1), stats.SetCount)
	assert.Equal(t, int64(1), stats.ReserveCount)
	// The pushes allocate bucket 1 on demand (bucket 0 exists from
	// construction), Reserve(100) adds buckets 2 and 3.
	assert.Equal(t, int64(3), stats.BucketAllocs)
	assert.Equal(t, int64(0), stats.BucketRaces)
}

func TestBasicMetricsCollector_Direct(t *testing.T) {
	mc := &lockfree.BasicMetricsCollector{}
	mc.RecordPush(3, nil)
	mc.RecordPush(0, lockfree.ErrCapacityExceeded)
	mc.RecordPop(1, lockfree.ErrUnderflow)
	mc.RecordHelp()
	mc.RecordBucketAlloc(true)

	stats := mc.GetStats()
	assert.Equal(t, int64(2), stats.PushCount)
	assert.Equal(t, int64(3), stats.PushRetries)
	assert.Equal(t, int64(1), stats.PushErrors)
	assert.Equal(t, int64(1), stats.PopErrors)
	assert.Equal(t, int64(1), stats.HelpCount)
	assert.Equal(t, int64(1), stats.BucketAllocs)
	assert.Equal(t, int64(1), stats.BucketRaces)
}

func TestNoopMetricsCollector(t *testing.T) {
	// Must be callable without state; the default when no collector is set.
	var mc lockfree.NoopMetricsCollector
	mc.RecordPush(0, nil)
	mc.RecordPop(0, nil)
	mc.RecordGet(nil)
	mc.RecordSet(0, nil)
	mc.RecordHelp()
	mc.RecordBucketAlloc(false)
	mc.RecordReserve(0)
}
