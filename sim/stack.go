// Implements the ReportStack, the misplaced-baggage report backlog.
// The resolution team works newest-first, so reports come off the top.

package sim

import (
	"fmt"
	"strings"
)

// ReportStack is a LIFO stack of misplaced-bag report identifiers.
// Push and Pop both operate on the same physical end of the storage,
// so the most recently filed report is always investigated first.
type ReportStack struct {
	reports []string // top is reports[len-1]
}

// Push files a new report on top of the stack. Always succeeds.
func (s *ReportStack) Push(id string) {
	s.reports = append(s.reports, id)
}

// Pop removes and returns the most recently filed report.
// Returns ErrEmptyContainer when the stack is empty; the stack is left
// unchanged in that case.
func (s *ReportStack) Pop() (string, error) {
	if len(s.reports) == 0 {
		return "", fmt.Errorf("pop: %w", ErrEmptyContainer)
	}
	top := s.reports[len(s.reports)-1]
	s.reports = s.reports[:len(s.reports)-1]
	return top, nil
}

// Len returns the number of open reports.
func (s *ReportStack) Len() int {
	return len(s.reports)
}

// Peek returns the top report without removing it, and false when the
// stack is empty.
func (s *ReportStack) Peek() (string, bool) {
	if len(s.reports) == 0 {
		return "", false
	}
	return s.reports[len(s.reports)-1], true
}

// Snapshot returns a copy of the stack contents top-first (reverse of
// insertion order), the order a renderer presents to emphasize LIFO.
func (s *ReportStack) Snapshot() []string {
	out := make([]string, len(s.reports))
	for i, r := range s.reports {
		out[len(s.reports)-1-i] = r
	}
	return out
}

func (s *ReportStack) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	sb.WriteString(strings.Join(s.Snapshot(), " "))
	sb.WriteString("]")
	return sb.String()
}
