// Implements the ThroughputSeries, the bags-processed-per-hour metric
// behind the efficiency chart. The series is synthetic: each advanced
// hour draws its count at random rather than deriving it from queue
// activity.

package sim

import "math/rand"

// Count range for synthetic hourly throughput, closed-open: [min, max).
const (
	ThroughputCountMin = 80
	ThroughputCountMax = 150
)

// MetricPoint is one hour's throughput sample.
type MetricPoint struct {
	Hour          int `json:"hour" yaml:"hour"`
	BagsProcessed int `json:"bags_processed" yaml:"bags_processed"`
}

// ThroughputSeries is an append-only sequence of MetricPoints with
// strictly increasing hours. Appending never fails; the series is
// unbounded.
type ThroughputSeries struct {
	points   []MetricPoint
	rng      *rand.Rand
	countMin int
	countMax int
}

// NewThroughputSeries creates an empty series drawing counts uniformly
// from [countMin, countMax) using rng.
func NewThroughputSeries(rng *rand.Rand, countMin, countMax int) *ThroughputSeries {
	if rng == nil {
		panic("NewThroughputSeries: rng must not be nil")
	}
	if countMin >= countMax {
		panic("NewThroughputSeries: countMin must be < countMax")
	}
	return &ThroughputSeries{rng: rng, countMin: countMin, countMax: countMax}
}

// AppendNextHour appends and returns the sample for the next hour:
// hour = last hour + 1 (1 for an empty series), count drawn uniformly
// from the configured range.
func (t *ThroughputSeries) AppendNextHour() MetricPoint {
	p := MetricPoint{
		Hour:          t.LastHour() + 1,
		BagsProcessed: t.countMin + t.rng.Intn(t.countMax-t.countMin),
	}
	t.points = append(t.points, p)
	return p
}

// LastHour returns the most recent hour in the series, or 0 when the
// series is empty.
func (t *ThroughputSeries) LastHour() int {
	if len(t.points) == 0 {
		return 0
	}
	return t.points[len(t.points)-1].Hour
}

// Len returns the number of samples in the series.
func (t *ThroughputSeries) Len() int {
	return len(t.points)
}

// Snapshot returns a copy of the full series in hour order, for
// charting and tabular display.
func (t *ThroughputSeries) Snapshot() []MetricPoint {
	out := make([]MetricPoint, len(t.points))
	copy(out, t.points)
	return out
}
