package lockfree

import (
	"math/bits"
	"sync/atomic"
)

const (
	// firstBucketSize is the capacity of bucket 0. Bucket i holds
	// firstBucketSize << i slots, so capacities double with the index.
	firstBucketSize = 8

	// nBuckets is the fixed size of the bucket directory. 30 buckets bound
	// the total capacity at firstBucketSize*(2^30-1) elements.
	nBuckets = 30
)

// firstBucketBits is the bit length of firstBucketSize (firstBucketSize is a
// power of two).
const firstBucketBits = 4 // bits.Len(firstBucketSize)

// bucket is a fixed-capacity block of element slots. A nil slot is the empty
// marker, the state of every slot no push has ever targeted. Slots are
// write-once into non-nil and never return to nil; a popped slot keeps its
// last element as a remnant for the next push at that index to commit over.
type bucket[T any] []atomic.Pointer[T]

// bucketStore is the two-level storage backing a Vector: a fixed directory of
// lazily allocated buckets. Buckets are installed with a single CAS against
// nil; losing the install race is benign: the loser discards its allocation
// and proceeds with the winner's bucket. An installed bucket is never resized,
// replaced or freed for the lifetime of the vector.
type bucketStore[T any] struct {
	buckets [nBuckets]atomic.Pointer[bucket[T]]
}

// locate translates a logical element index into a (bucket, slot) pair.
//
// Biasing the index by firstBucketSize makes the cumulative bucket capacities
// line up with the binary representation of pos: the highest set bit selects
// the bucket and the remaining bits are the offset inside it. Constant-time,
// allocation-free.
func locate(idx int) (int, int) {
	pos := uint64(idx) + firstBucketSize
	hi := bits.Len64(pos) - 1
	return hi - (firstBucketBits - 1), int(pos ^ (1 << hi))
}

// load returns the bucket at index b, or nil if it has not been allocated.
func (s *bucketStore[T]) load(b int) *bucket[T] {
	return s.buckets[b].Load()
}

// install allocates the bucket at index b and attempts to CAS it into the
// directory. It returns the bucket that ended up installed and whether this
// call won the race (false means the allocation was discarded in favor of a
// concurrent winner's).
func (s *bucketStore[T]) install(b int) (*bucket[T], bool) {
	fresh := make(bucket[T], firstBucketSize<<b)
	if s.buckets[b].CompareAndSwap(nil, &fresh) {
		return &fresh, true
	}
	return s.buckets[b].Load(), false
}

// slotAt returns the addressable cell for the given bucket and slot index, or
// nil when the bucket index is out of range or the bucket is not allocated.
func (s *bucketStore[T]) slotAt(b, i int) *atomic.Pointer[T] {
	if b < 0 || b >= nBuckets {
		return nil
	}
	bk := s.buckets[b].Load()
	if bk == nil {
		return nil
	}
	return &(*bk)[i]
}

// allocated returns the number of allocated buckets. Buckets are always
// allocated in index order, so this is also one past the highest live index.
func (s *bucketStore[T]) allocated() int {
	for b := 0; b < nBuckets; b++ {
		if s.buckets[b].Load() == nil {
			return b
		}
	}
	return nBuckets
}

// capacity returns the number of slots addressable without further
// allocation: firstBucketSize*(2^allocated - 1).
func (s *bucketStore[T]) capacity() int {
	return firstBucketSize * ((1 << s.allocated()) - 1)
}
