package sim

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSeries(seed int64) *ThroughputSeries {
	return NewThroughputSeries(rand.New(rand.NewSource(seed)), ThroughputCountMin, ThroughputCountMax)
}

func TestThroughputSeries_HoursStrictlyIncrease(t *testing.T) {
	s := testSeries(42)

	for i := 0; i < 10; i++ {
		p := s.AppendNextHour()
		assert.Equal(t, i+1, p.Hour, "hour must advance by exactly 1 per append")
	}
	assert.Equal(t, 10, s.Len())
	assert.Equal(t, 10, s.LastHour())
}

func TestThroughputSeries_CountsWithinRange(t *testing.T) {
	s := testSeries(7)

	for i := 0; i < 200; i++ {
		p := s.AppendNextHour()
		assert.GreaterOrEqual(t, p.BagsProcessed, ThroughputCountMin)
		assert.Less(t, p.BagsProcessed, ThroughputCountMax)
	}
}

func TestThroughputSeries_EmptySeries(t *testing.T) {
	s := testSeries(1)

	assert.Equal(t, 0, s.Len())
	assert.Equal(t, 0, s.LastHour())
	assert.Empty(t, s.Snapshot())

	// First append starts the series at hour 1.
	p := s.AppendNextHour()
	assert.Equal(t, 1, p.Hour)
}

func TestThroughputSeries_Snapshot_IsACopy(t *testing.T) {
	s := testSeries(3)
	s.AppendNextHour()
	s.AppendNextHour()

	snap := s.Snapshot()
	require.Len(t, snap, 2)
	snap[0].Hour = 99

	assert.Equal(t, 1, s.Snapshot()[0].Hour)
}

func TestThroughputSeries_Deterministic(t *testing.T) {
	a := testSeries(42)
	b := testSeries(42)

	for i := 0; i < 20; i++ {
		assert.Equal(t, a.AppendNextHour(), b.AppendNextHour())
	}
}

func TestNewThroughputSeries_RejectsEmptyRange(t *testing.T) {
	assert.Panics(t, func() {
		NewThroughputSeries(rand.New(rand.NewSource(1)), 150, 80)
	})
}
