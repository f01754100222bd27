package lockfree

import "sync/atomic"

// writeDescriptor is a deferred slot write carried by a descriptor: a single
// CAS from old to val at slot. old is the slot's content observed when the
// record was built, the empty marker for a fresh slot or the remnant of a
// popped element for a reused one. Applying the record is idempotent (the
// CAS can fail only because another goroutine already applied the identical
// CAS), so any goroutine that observes a pending write may complete it on
// the owner's behalf. This cooperative completion is what keeps the
// structure lock-free: a pusher stalled between installing its descriptor
// and writing its element never blocks anyone else.
type writeDescriptor[T any] struct {
	slot *atomic.Pointer[T]
	old  *T
	val  *T
}

func (w *writeDescriptor[T]) apply() {
	w.slot.CompareAndSwap(w.old, w.val)
}

// descriptor is the atomically swapped source of truth for a vector's logical
// length, plus at most one pending slot write. Each successful PushBack or
// PopBack installs a fresh descriptor; the install CAS is the linearization
// point of the operation.
type descriptor[T any] struct {
	size    int
	pending atomic.Pointer[writeDescriptor[T]]
}

func newDescriptor[T any](size int, w *writeDescriptor[T]) *descriptor[T] {
	d := &descriptor[T]{size: size}
	if w != nil {
		d.pending.Store(w)
	}
	return d
}

// completeWrite applies the descriptor's pending write, if any, and reports
// whether there was one to apply. Safe to call from any goroutine, any number
// of times: clearing pending is only ever a transition to nil, so a racing
// completer can at worst re-attempt the already-applied CAS.
//
// A stale re-attempt, even one replayed arbitrarily late, cannot clobber a
// newer value. Slots never return to the empty marker once written, every
// committed write installs a freshly allocated pointer, and the record keeps
// its expected pointer live, so a slot that has moved past the expectation
// can never hold it again and the replayed CAS fails.
func (d *descriptor[T]) completeWrite() bool {
	w := d.pending.Load()
	if w == nil {
		return false
	}
	w.apply()
	d.pending.Store(nil)
	return true
}
