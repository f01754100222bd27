package lockfree

import "sync/atomic"

// Vector is a lock-free, dynamically growable array. It supports indexed
// reads and writes, append, remove-from-end, length query and capacity
// reservation, all safe for concurrent use by any number of goroutines
// without mutual-exclusion locks.
//
// The implementation follows the descriptor-based design of Dechev,
// Pirkelbauer and Stroustrup ("Lock-Free Dynamically Resizable Arrays"):
// storage is a fixed directory of geometrically growing buckets, and a
// single atomically swapped descriptor holds the logical length together
// with at most one pending slot write. Structural operations commit by
// CAS-ing a fresh descriptor into place; everyone who observes a descriptor
// with a pending write completes that write before proceeding, so a stalled
// goroutine can never block the others.
//
// Progress is lock-free, not wait-free: under contention some goroutine's
// CAS succeeds each round, but an individual goroutine can in principle
// retry indefinitely while being outraced.
//
// The zero value is not usable; create instances with New.
type Vector[T any] struct {
	store bucketStore[T]
	desc  atomic.Pointer[descriptor[T]]

	metrics MetricsCollector
	logger  *Logger
}

// New creates an empty Vector.
func New[T any](optFns ...Option) *Vector[T] {
	o := applyOptions(optFns)
	v := &Vector[T]{
		metrics: o.metricsCollector,
		logger:  o.logger,
	}
	// Bucket 0 exists for the lifetime of the vector.
	first := make(bucket[T], firstBucketSize)
	v.store.buckets[0].Store(&first)
	v.desc.Store(newDescriptor[T](0, nil))
	if o.capacity > 0 {
		v.Reserve(o.capacity)
	}
	v.logger.LogNew(o.capacity)
	return v
}

// Len returns the logical length recorded by the current descriptor: a
// consistent snapshot that may be immediately stale under concurrent
// modification.
func (v *Vector[T]) Len() int {
	return v.desc.Load().size
}

// Cap returns the number of elements the vector can hold without further
// bucket allocation.
func (v *Vector[T]) Cap() int {
	return v.store.capacity()
}

// PushBack appends value at the end of the vector. It fails only with
// ErrCapacityExceeded, once the index space of the bucket directory is
// exhausted.
//
// The append becomes visible atomically with the descriptor swap. The slot
// write itself may still be in flight at that instant, carried by the new
// descriptor as a pending write, but every later operation that goes through
// the descriptor completes it first, so no such operation can observe the
// slot unwritten.
func (v *Vector[T]) PushBack(value T) error {
	elem := &value
	var retries int
	for {
		d := v.desc.Load()
		if d.completeWrite() {
			v.metrics.RecordHelp()
		}
		b, i := locate(d.size)
		if b >= nBuckets {
			v.logger.LogCapacityExceeded(d.size)
			v.metrics.RecordPush(retries, ErrCapacityExceeded)
			return ErrCapacityExceeded
		}
		bk := v.ensureBucket(b)
		if b > 0 && i == 0 {
			// Growth is strictly sequential; keep the predecessor allocated.
			v.ensureBucket(b - 1)
		}
		slot := &(*bk)[i]
		newd := newDescriptor(d.size+1, &writeDescriptor[T]{
			slot: slot,
			// A slot beyond the logical length is either fresh (still the
			// empty marker) or holds the remnant of a popped element; the
			// deferred write commits over whichever is there now.
			old: slot.Load(),
			val: elem,
		})
		if v.desc.CompareAndSwap(d, newd) {
			// Not required for correctness, any later caller would help, but it
			// keeps the common case single round-trip.
			newd.completeWrite()
			v.metrics.RecordPush(retries, nil)
			return nil
		}
		retries++
	}
}

// Append appends value and reports whether it was added, false only when the
// index space is exhausted. It exists as the minimal sequential-container
// spelling of PushBack.
func (v *Vector[T]) Append(value T) bool {
	return v.PushBack(value) == nil
}

// PopBack removes and returns the last element. It fails with ErrUnderflow
// on an empty vector.
//
// The removed element is not erased from its slot: it stays behind as an
// inert remnant until a later push reuses the index and commits over it.
// Slots therefore never return to the empty marker once written, which is
// what lets a reusing push name the remnant as the expected value of its
// deferred write. The returned value is the slot content read between the
// help step and the descriptor CAS; a Set landing inside that window is
// absorbed into the vacated slot (see Set).
func (v *Vector[T]) PopBack() (T, error) {
	var zero T
	var retries int
	for {
		d := v.desc.Load()
		if d.completeWrite() {
			v.metrics.RecordHelp()
		}
		if d.size == 0 {
			v.metrics.RecordPop(retries, ErrUnderflow)
			return zero, ErrUnderflow
		}
		b, i := locate(d.size - 1)
		elem := v.store.slotAt(b, i).Load()
		if v.desc.CompareAndSwap(d, newDescriptor[T](d.size-1, nil)) {
			v.metrics.RecordPop(retries, nil)
			return *elem, nil
		}
		retries++
	}
}

// Get returns the element at index i. It fails with an *ErrIndexOutOfRange
// (matching errors.Is(err, ErrOutOfRange)) when i is outside the vector
// bounds.
//
// The bounds check is a descriptor snapshot and therefore inherently racy
// against concurrent pushes and pops; it exists to give a friendlier error
// than addressing an unallocated bucket would. The slot read itself is a
// plain atomic load, uncoordinated with the descriptor.
func (v *Vector[T]) Get(i int) (T, error) {
	var zero T
	d := v.desc.Load()
	if i < 0 || i >= d.size {
		err := &ErrIndexOutOfRange{Index: i, Length: d.size}
		v.metrics.RecordGet(err)
		return zero, err
	}
	// The only in-bounds index a pending write can target is size-1.
	// Completing it first keeps the read from surfacing the empty marker
	// or the remnant of a popped element the pending push is reusing.
	if d.completeWrite() {
		v.metrics.RecordHelp()
	}
	b, s := locate(i)
	slot := v.store.slotAt(b, s)
	if slot == nil {
		err := &ErrIndexOutOfRange{Index: i, Length: d.size}
		v.metrics.RecordGet(err)
		return zero, err
	}
	elem := slot.Load()
	if elem == nil {
		err := &ErrIndexOutOfRange{Index: i, Length: v.desc.Load().size}
		v.metrics.RecordGet(err)
		return zero, err
	}
	v.metrics.RecordGet(nil)
	return *elem, nil
}

// Set stores value at index i and returns the previous value. It fails with
// an *ErrIndexOutOfRange when i is outside the vector bounds. Set never
// touches the descriptor and never changes the length; it is linearizable
// with Get and with other Sets on the same slot.
//
// The bounds check is a descriptor snapshot, so a Set racing a PopBack of
// the same index can land in the just-vacated slot. The write is then
// either never observed again, overwritten by the next push reusing the
// index, or left standing in place of that push's element, depending on
// where it falls relative to the push's deferred write. The slot stays
// committed in every case, and the returned previous value is what the
// slot held at Set's own CAS, which for that race can be an
// already-removed element.
func (v *Vector[T]) Set(i int, value T) (T, error) {
	var zero T
	d := v.desc.Load()
	if i < 0 || i >= d.size {
		err := &ErrIndexOutOfRange{Index: i, Length: d.size}
		v.metrics.RecordSet(0, err)
		return zero, err
	}
	// Complete a pending push at this index first, so the CAS below targets
	// the committed element rather than a remnant the pending write also
	// named, which would drop that push's element.
	if d.completeWrite() {
		v.metrics.RecordHelp()
	}
	b, s := locate(i)
	slot := v.store.slotAt(b, s)
	if slot == nil {
		err := &ErrIndexOutOfRange{Index: i, Length: d.size}
		v.metrics.RecordSet(0, err)
		return zero, err
	}
	elem := &value
	var retries int
	for {
		old := slot.Load()
		if old == nil {
			err := &ErrIndexOutOfRange{Index: i, Length: v.desc.Load().size}
			v.metrics.RecordSet(retries, err)
			return zero, err
		}
		if slot.CompareAndSwap(old, elem) {
			v.metrics.RecordSet(retries, nil)
			return *old, nil
		}
		retries++
	}
}

// Reserve pre-allocates buckets up to the capacity required for n elements
// without changing the logical length. Purely an optimization to avoid
// allocation bursts during subsequent appends; best effort, and safe to call
// concurrently with anything (bucket install races are benign).
func (v *Vector[T]) Reserve(n int) {
	if n <= 0 {
		return
	}
	need, _ := locate(n - 1)
	if need >= nBuckets {
		need = nBuckets - 1
	}
	var allocated int
	for b := v.store.allocated(); b <= need; b++ {
		if v.store.load(b) == nil {
			v.ensureBucket(b)
			allocated++
		}
	}
	v.metrics.RecordReserve(allocated)
	v.logger.LogReserve(n, allocated)
}

// ensureBucket returns the bucket at index b, allocating and CAS-installing
// it if it does not exist yet. After it returns the bucket is allocated, by
// this goroutine or a concurrent one, with every slot holding the empty
// marker.
func (v *Vector[T]) ensureBucket(b int) *bucket[T] {
	if bk := v.store.load(b); bk != nil {
		return bk
	}
	bk, won := v.store.install(b)
	v.metrics.RecordBucketAlloc(!won)
	v.logger.LogBucketAlloc(b, firstBucketSize<<b, !won)
	return bk
}
