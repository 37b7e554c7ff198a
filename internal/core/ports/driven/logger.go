package driven

// Logger receives diagnostic events from core services and adapters.
// Debug and Info events may be suppressed by the implementation; Error events
// must always be emitted.
type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}
