package lockfree

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with lockfree-specific context.
// This provides structured logging with consistent field names.
//
// Logging is restricted to structural events (construction, bucket growth,
// capacity exhaustion). The element hot path never logs.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithBucket adds a bucket index field to the logger.
func (l *Logger) WithBucket(b int) *Logger {
	return &Logger{
		Logger: l.Logger.With("bucket", b),
	}
}

// LogNew logs vector construction.
func (l *Logger) LogNew(capacity int) {
	l.Debug("vector created",
		"reserve", capacity,
	)
}

// LogBucketAlloc logs a bucket allocation attempt.
func (l *Logger) LogBucketAlloc(bucket, capacity int, lost bool) {
	if lost {
		l.Debug("bucket install race lost",
			"bucket", bucket,
			"capacity", capacity,
		)
	} else {
		l.Debug("bucket allocated",
			"bucket", bucket,
			"capacity", capacity,
		)
	}
}

// LogReserve logs a reserve operation.
func (l *Logger) LogReserve(n, buckets int) {
	l.Debug("reserve completed",
		"elements", n,
		"buckets_allocated", buckets,
	)
}

// LogCapacityExceeded logs index space exhaustion.
func (l *Logger) LogCapacityExceeded(size int) {
	l.Error("capacity exceeded",
		"size", size,
		"max_buckets", nBuckets,
	)
}
