package lockfree

import "log/slog"

type options struct {
	capacity         int
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures Vector construction behavior.
type Option func(*options)

// WithCapacity pre-reserves storage for n elements at construction time,
// avoiding bucket allocation bursts during the first appends. The logical
// length of the vector is unaffected.
//
// Equivalent to calling Reserve(n) on a fresh vector.
func WithCapacity(n int) Option {
	return func(o *options) {
		o.capacity = n
	}
}

// WithMetricsCollector configures a metrics collector for monitoring
// operations. Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &lockfree.BasicMetricsCollector{}
//	v := lockfree.New[int](lockfree.WithMetricsCollector(metrics))
//	// ... use v ...
//	stats := metrics.GetStats()
//	fmt.Printf("Pushes: %d, CAS retries: %d\n", stats.PushCount, stats.PushRetries)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for structural events.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := lockfree.NewJSONLogger(slog.LevelDebug)
//	v := lockfree.New[int](lockfree.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.metricsCollector == nil {
		o.metricsCollector = NoopMetricsCollector{}
	}
	if o.logger == nil {
		o.logger = NoopLogger()
	}
	return o
}
