package cubical

import (
	"io"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with persistence-specific fields.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger with the given handler.
// If handler is nil, uses a text handler to stderr at Info level.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{Logger: slog.New(handler)}
}

// NewTextLogger creates a Logger that writes human-readable text to w.
func NewTextLogger(w io.Writer, level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// NewJSONLogger creates a Logger that writes JSON records to w.
func NewJSONLogger(w io.Writer, level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// NoopLogger creates a Logger that discards everything.
func NoopLogger() *Logger {
	return &Logger{Logger: slog.New(slog.DiscardHandler)}
}

// WithRun tags records with a run identifier.
func (l *Logger) WithRun(id string) *Logger {
	return &Logger{Logger: l.Logger.With("run", id)}
}

// WithMethod tags records with the reduction strategy.
func (l *Logger) WithMethod(m Method) *Logger {
	return &Logger{Logger: l.Logger.With("method", m.String())}
}

// WithDimension tags records with a cell dimension.
func (l *Logger) WithDimension(dim int) *Logger {
	return &Logger{Logger: l.Logger.With("dimension", dim)}
}

// LogDimension records the outcome of one reduction pass.
func (l *Logger) LogDimension(s DimStats) {
	l.WithDimension(s.Dim).Debug("dimension reduced",
		"columns", s.Columns,
		"pivots", s.Pivots,
		"apparent", s.Apparent,
		"essential", s.Essential,
		"emitted", s.Emitted,
		"cached", s.Cached,
	)
}

// LogCompute records a finished computation.
func (l *Logger) LogCompute(g *Grid, pairs int, elapsed time.Duration) {
	l.Info("persistence computed",
		"grid_dim", g.Dim(),
		"extents", g.Extents(),
		"threshold", g.Threshold(),
		"pairs", pairs,
		"elapsed", elapsed,
	)
}
