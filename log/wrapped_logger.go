package log

// NopLogger discards all log messages, used where a 'Logger' is required but logging isn't desired (e.g. tests).
type NopLogger struct{}

func (NopLogger) Log(Level, string, ...any) {}

// WrappedLogger wraps a 'Logger' exposing level specific convenience methods, optionally prefixing every message
// with a fixed context string (e.g. a component/package name).
type WrappedLogger struct {
	logger Logger
	prefix string
}

// NewWrappedLogger creates a 'WrappedLogger' which forwards to the given 'Logger'. A <nil> logger is replaced with a
// 'NopLogger' so callers never need to nil-check before logging.
func NewWrappedLogger(logger Logger) WrappedLogger {
	if logger == nil {
		logger = NopLogger{}
	}

	return WrappedLogger{logger: logger}
}

// WithPrefix returns a copy of this logger which prefixes every message with the given string.
func (w WrappedLogger) WithPrefix(prefix string) WrappedLogger {
	w.prefix = prefix

	return w
}

func (w WrappedLogger) Log(level Level, format string, args ...any) {
	if w.prefix != "" {
		format = "(" + w.prefix + ") " + format
	}

	w.logger.Log(level, format, args...)
}

func (w WrappedLogger) Tracef(format string, args ...any)   { w.Log(LevelTrace, format, args...) }
func (w WrappedLogger) Debugf(format string, args ...any)   { w.Log(LevelDebug, format, args...) }
func (w WrappedLogger) Infof(format string, args ...any)    { w.Log(LevelInfo, format, args...) }
func (w WrappedLogger) Warnf(format string, args ...any)    { w.Log(LevelWarning, format, args...) }
func (w WrappedLogger) Errorf(format string, args ...any)   { w.Log(LevelError, format, args...) }
func (w WrappedLogger) Panicf(format string, args ...any)   { w.Log(LevelPanic, format, args...) }
