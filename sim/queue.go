// Implements the BaggageQueue, the main baggage processing line.
// Bags are enqueued at check-in and processed for loading in arrival order.

package sim

import (
	"fmt"
	"strings"
)

// BaggageQueue is a FIFO queue of bag identifiers. The element at
// position 0 is always the next to be processed; new bags always join
// at the back.
//
// Duplicate and empty-string identifiers are accepted without complaint:
// the conveyor does not inspect tags, it just carries them.
type BaggageQueue struct {
	bags []string // front is bags[0]
}

// Enqueue adds a bag to the back of the queue. Always succeeds.
func (q *BaggageQueue) Enqueue(id string) {
	q.bags = append(q.bags, id)
}

// Dequeue removes and returns the bag at the front of the queue.
// Returns ErrEmptyContainer when the queue is empty; the queue is left
// unchanged in that case.
func (q *BaggageQueue) Dequeue() (string, error) {
	if len(q.bags) == 0 {
		return "", fmt.Errorf("dequeue: %w", ErrEmptyContainer)
	}
	front := q.bags[0]
	q.bags = q.bags[1:]
	return front, nil
}

// Len returns the number of bags in the queue.
func (q *BaggageQueue) Len() int {
	return len(q.bags)
}

// Peek returns the bag at the front without removing it, and false when
// the queue is empty.
func (q *BaggageQueue) Peek() (string, bool) {
	if len(q.bags) == 0 {
		return "", false
	}
	return q.bags[0], true
}

// Snapshot returns a copy of the queue contents in front-to-back order,
// for rendering. Mutating the returned slice does not affect the queue.
func (q *BaggageQueue) Snapshot() []string {
	out := make([]string, len(q.bags))
	copy(out, q.bags)
	return out
}

func (q *BaggageQueue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	sb.WriteString(strings.Join(q.bags, " "))
	sb.WriteString("]")
	return sb.String()
}
