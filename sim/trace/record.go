package trace

// ActionRecord captures a single dispatched action and its outcome.
type ActionRecord struct {
	Seq          int    // position in the run, assigned by RecordAction
	Kind         string // action kind, e.g. "queue.enqueue"
	BagID        string // bag/report identifier, when the action carries one
	PassengerKey string // lookup key, when the action carries one
	OK           bool
	ErrorKind    string // empty when OK
}
