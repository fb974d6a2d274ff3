package trace

// TraceSummary aggregates statistics from a SessionTrace.
type TraceSummary struct {
	TotalActions     int
	FailedActions    int
	UniqueKinds      int
	KindDistribution map[string]int // action kind → dispatch count
	FailuresByKind   map[string]int // error kind → failure count
}

// Summarize computes aggregate statistics from a SessionTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SessionTrace) *TraceSummary {
	summary := &TraceSummary{
		KindDistribution: make(map[string]int),
		FailuresByKind:   make(map[string]int),
	}
	if st == nil {
		return summary
	}

	summary.TotalActions = len(st.Actions)
	for _, a := range st.Actions {
		summary.KindDistribution[a.Kind]++
		if !a.OK {
			summary.FailedActions++
			summary.FailuresByKind[a.ErrorKind]++
		}
	}
	summary.UniqueKinds = len(summary.KindDistribution)

	return summary
}
