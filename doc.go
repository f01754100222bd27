// Package lockfree provides lock-free concurrent containers for Go.
//
// Vector is a dynamically growable array that many goroutines can read,
// write, append to and pop from concurrently, with no mutual-exclusion locks
// anywhere on any path. It implements the descriptor-based algorithm from
// Dechev, Pirkelbauer and Stroustrup, "Lock-Free Dynamically Resizable
// Arrays".
//
// # Quick Start
//
//	v := lockfree.New[int]()
//	_ = v.PushBack(10)
//	_ = v.PushBack(20)
//	x, _ := v.Get(1)          // 20
//	old, _ := v.Set(1, 99)    // old == 20
//	last, _ := v.PopBack()    // 99
//	n := v.Len()              // 1
//
// # Storage Layout
//
// Elements live in a fixed directory of up to 30 lazily allocated buckets
// whose capacities double with the index (8, 16, 32, ...), bounding total
// capacity at 8*(2^30-1) elements. Growing never moves an element: a new
// bucket is allocated, CAS-installed, and existing slots stay where they
// are, so a slot address observed once is valid for the vector's lifetime.
//
// # Concurrency Model
//
// All coordination is compare-and-swap: on the per-vector descriptor (the
// single source of truth for the logical length), on the bucket directory
// (lazy allocation, losing installs are discarded), and on individual
// element slots. An append installs its descriptor first and carries the
// element write as a pending record; any goroutine that encounters the
// record completes it before proceeding, so a preempted writer never stalls
// the structure. Progress is lock-free, not wait-free.
//
// PushBack/PopBack are totally ordered by the descriptor swaps. Get and Set
// on a given slot are linearizable with respect to each other and to the
// append that created the slot's value, but are not ordered relative to Len
// or to unrelated slots.
//
// # Observability
//
// Construction accepts functional options for structured logging (log/slog
// via Logger) and a MetricsCollector exposing contention signals such as
// CAS retries, help-completed writes and lost bucket installs.
package lockfree
