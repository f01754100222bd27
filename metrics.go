package lockfree

import "sync/atomic"

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like
// Prometheus.
//
// For a lock-free structure the interesting signals are contention signals:
// retries counts failed descriptor CAS rounds before an operation committed,
// help-complete counts how often a goroutine finished another goroutine's
// in-flight write, and lost bucket installs count discarded allocations.
//
// Collectors are called from the operation hot path and must be cheap and
// safe for concurrent use.
type MetricsCollector interface {
	// RecordPush is called after each PushBack. retries is the number of
	// failed descriptor CAS attempts before the push committed; err is
	// non-nil only on capacity exhaustion.
	RecordPush(retries int, err error)

	// RecordPop is called after each PopBack. err is non-nil on underflow.
	RecordPop(retries int, err error)

	// RecordGet is called after each Get. err is non-nil on a bounds
	// violation.
	RecordGet(err error)

	// RecordSet is called after each Set. retries is the number of failed
	// slot CAS attempts before the set committed.
	RecordSet(retries int, err error)

	// RecordHelp is called when an operation completed another
	// goroutine's pending write before proceeding.
	RecordHelp()

	// RecordBucketAlloc is called when a bucket allocation was attempted.
	// lost reports that the allocation was discarded because a concurrent
	// goroutine won the install race.
	RecordBucketAlloc(lost bool)

	// RecordReserve is called after each Reserve with the number of
	// buckets the call allocated.
	RecordReserve(buckets int)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordPush(int, error)  {}
func (NoopMetricsCollector) RecordPop(int, error)   {}
func (NoopMetricsCollector) RecordGet(error)        {}
func (NoopMetricsCollector) RecordSet(int, error)   {}
func (NoopMetricsCollector) RecordHelp()            {}
func (NoopMetricsCollector) RecordBucketAlloc(bool) {}
func (NoopMetricsCollector) RecordReserve(int)      {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and contention analysis without external dependencies.
type BasicMetricsCollector struct {
	PushCount    atomic.Int64
	PushRetries  atomic.Int64
	PushErrors   atomic.Int64
	PopCount     atomic.Int64
	PopRetries   atomic.Int64
	PopErrors    atomic.Int64
	GetCount     atomic.Int64
	GetErrors    atomic.Int64
	SetCount     atomic.Int64
	SetRetries   atomic.Int64
	SetErrors    atomic.Int64
	HelpCount    atomic.Int64
	BucketAllocs atomic.Int64
	BucketRaces  atomic.Int64
	ReserveCount atomic.Int64
}

// RecordPush implements MetricsCollector.
func (b *BasicMetricsCollector) RecordPush(retries int, err error) {
	b.PushCount.Add(1)
	b.PushRetries.Add(int64(retries))
	if err != nil {
		b.PushErrors.Add(1)
	}
}

// RecordPop implements MetricsCollector.
func (b *BasicMetricsCollector) RecordPop(retries int, err error) {
	b.PopCount.Add(1)
	b.PopRetries.Add(int64(retries))
	if err != nil {
		b.PopErrors.Add(1)
	}
}

// RecordGet implements MetricsCollector.
func (b *BasicMetricsCollector) RecordGet(err error) {
	b.GetCount.Add(1)
	if err != nil {
		b.GetErrors.Add(1)
	}
}

// RecordSet implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSet(retries int, err error) {
	b.SetCount.Add(1)
	b.SetRetries.Add(int64(retries))
	if err != nil {
		b.SetErrors.Add(1)
	}
}

// RecordHelp implements MetricsCollector.
func (b *BasicMetricsCollector) RecordHelp() {
	b.HelpCount.Add(1)
}

// RecordBucketAlloc implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBucketAlloc(lost bool) {
	b.BucketAllocs.Add(1)
	if lost {
		b.BucketRaces.Add(1)
	}
}

// RecordReserve implements MetricsCollector.
func (b *BasicMetricsCollector) RecordReserve(buckets int) {
	b.ReserveCount.Add(1)
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector counters.
type BasicMetricsStats struct {
	PushCount    int64
	PushRetries  int64
	PushErrors   int64
	PopCount     int64
	PopRetries   int64
	PopErrors    int64
	GetCount     int64
	GetErrors    int64
	SetCount     int64
	SetRetries   int64
	SetErrors    int64
	HelpCount    int64
	BucketAllocs int64
	BucketRaces  int64
	ReserveCount int64
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		PushCount:    b.PushCount.Load(),
		PushRetries:  b.PushRetries.Load(),
		PushErrors:   b.PushErrors.Load(),
		PopCount:     b.PopCount.Load(),
		PopRetries:   b.PopRetries.Load(),
		PopErrors:    b.PopErrors.Load(),
		GetCount:     b.GetCount.Load(),
		GetErrors:    b.GetErrors.Load(),
		SetCount:     b.SetCount.Load(),
		SetRetries:   b.SetRetries.Load(),
		SetErrors:    b.SetErrors.Load(),
		HelpCount:    b.HelpCount.Load(),
		BucketAllocs: b.BucketAllocs.Load(),
		BucketRaces:  b.BucketRaces.Load(),
		ReserveCount: b.ReserveCount.Load(),
	}
}
