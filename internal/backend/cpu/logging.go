package cpu

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with device-specific helpers so call sites log
// a consistent set of fields for pool lifecycle and specialization events.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger with the given handler. If handler is nil,
// uses a text handler to stderr at info level.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{Logger: slog.New(handler)}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000),
	}))}
}

// LogSpecialization records which kernel specialization a device selected
// and whether it matched a feature tier or fell back to the generic path.
func (l *Logger) LogSpecialization(name string, matched bool, arch string) {
	if matched {
		l.Info("kernel specialization selected", "name", name, "arch", arch)
	} else {
		l.Info("no kernel specialization matched, using fallback", "name", name, "arch", arch)
	}
}

// LogPoolLifecycle records a pool creation or teardown event.
func (l *Logger) LogPoolLifecycle(event string, numWorkers uint32) {
	l.Info("worker pool "+event, "num_workers", numWorkers)
}

// LogDispatch records a compute dispatch (inline or pooled) at debug
// level: too frequent for info, useful when diagnosing width-heuristic
// behavior.
func (l *Logger) LogDispatch(op string, numel int64, activeWorkers uint32) {
	l.Debug("dispatched compute", "op", op, "numel", numel, "active_workers", activeWorkers)
}
