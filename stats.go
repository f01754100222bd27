package lockfree

import (
	"fmt"
	"sync/atomic"
	"unsafe"

	"github.com/dustin/go-humanize"
)

// Stats is a point-in-time snapshot of a vector's storage. Like Len, the
// numbers come from racy reads and may be stale under concurrent use.
type Stats struct {
	// Len is the logical length.
	Len int
	// Cap is the number of elements addressable without further bucket
	// allocation.
	Cap int
	// Buckets is the number of allocated buckets.
	Buckets int
	// ReservedBytes is the memory reserved for element slots. Element
	// values themselves live behind pointers and are not counted.
	ReservedBytes uint64
}

// String renders the snapshot in humanized form, e.g.
//
//	len=1,000 cap=1,016 buckets=7 reserved=8.0 KiB
func (s Stats) String() string {
	return fmt.Sprintf("len=%s cap=%s buckets=%d reserved=%s",
		humanize.Comma(int64(s.Len)),
		humanize.Comma(int64(s.Cap)),
		s.Buckets,
		humanize.IBytes(s.ReservedBytes),
	)
}

// Stats returns a storage snapshot of the vector.
func (v *Vector[T]) Stats() Stats {
	buckets := v.store.allocated()
	capacity := firstBucketSize * ((1 << buckets) - 1)
	var slot atomic.Pointer[T]
	return Stats{
		Len:           v.Len(),
		Cap:           capacity,
		Buckets:       buckets,
		ReservedBytes: uint64(capacity) * uint64(unsafe.Sizeof(slot)),
	}
}
