// The dispatch envelope: the uniform action-in, result-out contract the
// presentation layer consumes. Typed Session methods do the work; this
// file only routes and translates errors into wire-level kinds.

package sim

// Action kinds accepted by Session.Dispatch.
const (
	ActionQueueEnqueue   = "queue.enqueue"
	ActionQueueDequeue   = "queue.dequeue"
	ActionStackPush      = "stack.push"
	ActionStackPop       = "stack.pop"
	ActionLookupFind     = "lookup.find"
	ActionLookupList     = "lookup.list"
	ActionSeriesAdvance  = "series.advance"
	ActionSeriesSnapshot = "series.snapshot"
	ActionStateSnapshot  = "state.snapshot"
)

// ActionKinds lists every accepted kind, in the order the original
// pages present them. Scripted runs draw from this slice.
var ActionKinds = []string{
	ActionQueueEnqueue,
	ActionQueueDequeue,
	ActionStackPush,
	ActionStackPop,
	ActionLookupFind,
	ActionLookupList,
	ActionSeriesAdvance,
	ActionSeriesSnapshot,
	ActionStateSnapshot,
}

// Action is one presentation-layer request.
type Action struct {
	Kind string `json:"kind"`

	// BagID applies to queue.enqueue and stack.push; empty means
	// "generate one".
	BagID string `json:"bag_id,omitempty"`

	// PassengerKey applies to lookup.find.
	PassengerKey string `json:"passenger_key,omitempty"`
}

// Result is the uniform response envelope. Exactly one of Payload or
// ErrorKind is meaningful, selected by OK.
type Result struct {
	OK        bool   `json:"ok"`
	Payload   any    `json:"payload,omitempty"`
	ErrorKind string `json:"error_kind,omitempty"`
}

// okResult wraps a payload in a successful envelope.
func okResult(payload any) Result {
	return Result{OK: true, Payload: payload}
}

// failResult wraps a store-level error in a failed envelope.
func failResult(err error) Result {
	return Result{OK: false, ErrorKind: errorKind(err)}
}

// RemovedBag is the payload for successful queue.dequeue and stack.pop.
type RemovedBag struct {
	BagID string `json:"bag_id"`
}

// FoundPassenger is the payload for successful lookup.find.
type FoundPassenger struct {
	Key    string          `json:"key"`
	Record PassengerRecord `json:"record"`
}

// Dispatch applies one action to the session and returns the uniform
// envelope. Mutating actions that fail leave every store unchanged.
// An unrecognized kind yields ok=false with ErrorKindUnknownAction.
func (s *Session) Dispatch(a Action) Result {
	s.Stats.ActionsApplied++

	var res Result
	switch a.Kind {
	case ActionQueueEnqueue:
		s.EnqueueBag(a.BagID)
		res = okResult(s.QueueSnapshot())
	case ActionQueueDequeue:
		id, err := s.ProcessNextBag()
		if err != nil {
			res = failResult(err)
			break
		}
		res = okResult(RemovedBag{BagID: id})
	case ActionStackPush:
		s.FileReport(a.BagID)
		res = okResult(s.StackSnapshot())
	case ActionStackPop:
		id, err := s.InvestigateLastReport()
		if err != nil {
			res = failResult(err)
			break
		}
		res = okResult(RemovedBag{BagID: id})
	case ActionLookupFind:
		rec, err := s.FindPassenger(a.PassengerKey)
		if err != nil {
			res = failResult(err)
			break
		}
		res = okResult(FoundPassenger{Key: a.PassengerKey, Record: rec})
	case ActionLookupList:
		res = okResult(s.ListPassengers())
	case ActionSeriesAdvance:
		res = okResult(s.AdvanceHour())
	case ActionSeriesSnapshot:
		res = okResult(s.SeriesSnapshot())
	case ActionStateSnapshot:
		res = okResult(s.StateSnapshot())
	default:
		res = Result{OK: false, ErrorKind: ErrorKindUnknownAction}
	}

	if !res.OK {
		s.Stats.ActionsFailed++
	}
	return res
}
