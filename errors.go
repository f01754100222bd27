package lockfree

import (
	"errors"
	"fmt"
)

var (
	// ErrUnderflow is returned by PopBack on an empty vector.
	ErrUnderflow = errors.New("pop from empty vector")

	// ErrOutOfRange is the sentinel matched by errors.Is for all index
	// bound violations. The concrete error carries the offending index;
	// see ErrIndexOutOfRange.
	ErrOutOfRange = errors.New("index out of range")

	// ErrCapacityExceeded is returned by PushBack when the index space of
	// the bucket directory is exhausted. The vector cannot recover from
	// this condition; it is a hard capacity limit, not contention.
	ErrCapacityExceeded = errors.New("vector capacity exceeded")
)

// ErrIndexOutOfRange indicates an access outside the vector bounds.
//
// Length is the logical length observed when the access was rejected. Bounds
// are checked against a descriptor snapshot, so under concurrent pushes and
// pops the reported length may already be stale by the time the caller sees
// the error.
type ErrIndexOutOfRange struct {
	Index  int
	Length int
}

func (e *ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("index out of range: %d with length %d", e.Index, e.Length)
}

func (e *ErrIndexOutOfRange) Unwrap() error { return ErrOutOfRange }
