package sim

import "errors"

// The two recoverable store-level error conditions. Both leave the store
// unchanged; neither is ever fatal to the session.
var (
	// ErrEmptyContainer is returned by removal from an empty queue or stack.
	ErrEmptyContainer = errors.New("empty container")

	// ErrKeyNotFound is returned by lookup of an absent passenger key.
	ErrKeyNotFound = errors.New("key not found")
)

// Wire-level error kinds for the dispatch envelope.
const (
	ErrorKindEmptyContainer = "empty_container"
	ErrorKindKeyNotFound    = "key_not_found"
	ErrorKindUnknownAction  = "unknown_action"
)

// errorKind maps a store-level error to its envelope error kind.
// Unrecognized errors map to the empty string.
func errorKind(err error) string {
	switch {
	case errors.Is(err, ErrEmptyContainer):
		return ErrorKindEmptyContainer
	case errors.Is(err, ErrKeyNotFound):
		return ErrorKindKeyNotFound
	default:
		return ""
	}
}
