// Tracks per-session action counters for final reporting.

package sim

import "fmt"

// SessionStats aggregates what happened over one session, for the
// summary printed at the end of a scripted run. Failed removals and
// missed lookups are counted but never mutate a store.
type SessionStats struct {
	ActionsApplied int // total actions dispatched, including failures
	ActionsFailed  int // actions that returned an error kind

	BagsEnqueued        int // bags added to the processing line
	BagsProcessed       int // bags removed from the front of the line
	ReportsFiled        int // misplaced reports pushed
	ReportsInvestigated int // reports popped for investigation
	Lookups             int // passenger lookups attempted
	LookupMisses        int // lookups of absent keys
	HoursAdvanced       int // synthetic hours appended to the series
}

// Print displays the aggregated counters at the end of a run.
func (s *SessionStats) Print() {
	fmt.Println("=== Session Stats ===")
	fmt.Printf("Actions Applied      : %d (%d failed)\n", s.ActionsApplied, s.ActionsFailed)
	fmt.Printf("Bags Enqueued        : %d\n", s.BagsEnqueued)
	fmt.Printf("Bags Processed       : %d\n", s.BagsProcessed)
	fmt.Printf("Reports Filed        : %d\n", s.ReportsFiled)
	fmt.Printf("Reports Investigated : %d\n", s.ReportsInvestigated)
	fmt.Printf("Passenger Lookups    : %d (%d misses)\n", s.Lookups, s.LookupMisses)
	fmt.Printf("Hours Advanced       : %d\n", s.HoursAdvanced)
}
