package clusters

import (
	"io"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with clustering-specific fields.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses a text handler to stderr at info level.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		return NewTextLogger(nil, slog.LevelInfo)
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that writes JSON records to w.
// A nil w writes to stderr.
func NewJSONLogger(w io.Writer, level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(orStderr(w), &slog.HandlerOptions{Level: level}))
}

// NewTextLogger creates a Logger that writes key=value records to w.
// A nil w writes to stderr.
func NewTextLogger(w io.Writer, level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(orStderr(w), &slog.HandlerOptions{Level: level}))
}

func orStderr(w io.Writer) io.Writer {
	if w == nil {
		return os.Stderr
	}
	return w
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithAlgorithm adds an algorithm name field to the logger.
func (l *Logger) WithAlgorithm(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("algorithm", name),
	}
}

// LogCluster logs the outcome of a clustering run.
func (l *Logger) LogCluster(points, clusters, noise int, elapsed time.Duration, err error) {
	if err != nil {
		l.Error("cluster failed",
			"points", points,
			"elapsed", elapsed,
			"error", err,
		)
		return
	}
	if points > 0 && noise == points {
		l.Warn("cluster found no clusters",
			"points", points,
			"elapsed", elapsed,
		)
		return
	}
	l.Debug("cluster completed",
		"points", points,
		"clusters", clusters,
		"noise", noise,
		"elapsed", elapsed,
	)
}
