// Package trace provides action-trace recording for scripted session runs.
// This package has no dependencies on sim/ — it stores pure data types.
package trace

// TraceLevel controls the verbosity of action tracing.
type TraceLevel string

const (
	// TraceLevelNone disables tracing (zero overhead).
	TraceLevelNone TraceLevel = "none"
	// TraceLevelActions captures every dispatched action and its outcome.
	TraceLevelActions TraceLevel = "actions"
)

// validTraceLevels maps accepted trace level strings.
var validTraceLevels = map[TraceLevel]bool{
	TraceLevelNone:    true,
	TraceLevelActions: true,
	"":                true, // empty defaults to none
}

// IsValidTraceLevel returns true if the given level string is a recognized trace level.
func IsValidTraceLevel(level string) bool {
	return validTraceLevels[TraceLevel(level)]
}

// SessionTrace collects action records during a session run.
type SessionTrace struct {
	Level   TraceLevel
	Actions []ActionRecord
}

// NewSessionTrace creates a SessionTrace ready for recording.
func NewSessionTrace(level TraceLevel) *SessionTrace {
	return &SessionTrace{
		Level:   level,
		Actions: make([]ActionRecord, 0),
	}
}

// Enabled reports whether this trace records anything.
func (st *SessionTrace) Enabled() bool {
	return st != nil && st.Level == TraceLevelActions
}

// RecordAction appends one action record. No-op unless enabled.
func (st *SessionTrace) RecordAction(record ActionRecord) {
	if !st.Enabled() {
		return
	}
	record.Seq = len(st.Actions)
	st.Actions = append(st.Actions, record)
}
