package sim

import (
	"errors"
	"testing"
)

func TestReportStack_LIFOOrder(t *testing.T) {
	// GIVEN a stack with reports [A, B] pushed in that order
	s := &ReportStack{}
	s.Push("A")
	s.Push("B")

	// WHEN both reports are popped
	first, err := s.Pop()
	if err != nil {
		t.Fatalf("Pop: unexpected error %v", err)
	}
	second, err := s.Pop()
	if err != nil {
		t.Fatalf("Pop: unexpected error %v", err)
	}

	// THEN they come out in reverse insertion order
	if first != "B" || second != "A" {
		t.Errorf("Pop order: got (%s, %s), want (B, A)", first, second)
	}
	if s.Len() != 0 {
		t.Errorf("Len after draining: got %d, want 0", s.Len())
	}
}

func TestReportStack_PopEmpty_Fails(t *testing.T) {
	// GIVEN an empty stack
	s := &ReportStack{}

	// WHEN Pop() is called
	_, err := s.Pop()

	// THEN it fails with ErrEmptyContainer and the stack stays empty
	if !errors.Is(err, ErrEmptyContainer) {
		t.Errorf("Pop on empty stack: got err %v, want ErrEmptyContainer", err)
	}
	if s.Len() != 0 {
		t.Errorf("Len after failed pop: got %d, want 0", s.Len())
	}
}

func TestReportStack_Peek_ReturnsTop(t *testing.T) {
	// GIVEN a stack with reports [A, B]
	s := &ReportStack{}
	s.Push("A")
	s.Push("B")

	// WHEN Peek() is called
	got, ok := s.Peek()

	// THEN it returns the most recent push without removing it
	if !ok || got != "B" {
		t.Errorf("Peek: got (%s, %v), want (B, true)", got, ok)
	}
	if s.Len() != 2 {
		t.Errorf("Peek modified stack length: got %d, want 2", s.Len())
	}
}

func TestReportStack_Snapshot_TopFirst(t *testing.T) {
	// GIVEN a stack with reports [A, B, C] pushed in that order
	s := &ReportStack{}
	s.Push("A")
	s.Push("B")
	s.Push("C")

	// THEN the snapshot presents them top-first
	want := []string{"C", "B", "A"}
	snap := s.Snapshot()
	if len(snap) != len(want) {
		t.Fatalf("Snapshot length: got %d, want %d", len(snap), len(want))
	}
	for i, id := range snap {
		if id != want[i] {
			t.Errorf("Snapshot[%d]: got %s, want %s", i, id, want[i])
		}
	}

	// AND mutating the snapshot does not affect the stack
	snap[0] = "Z"
	top, _ := s.Peek()
	if top != "C" {
		t.Errorf("Snapshot mutation leaked into stack: top got %s, want C", top)
	}
}
