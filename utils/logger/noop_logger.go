package logger

// NoopLogger discards all log messages. It is the default for the priority queue.
type NoopLogger struct{}

var _ Logger = (*NoopLogger)(nil)

// NewNoopLogger creates a new logger that discards all output
func NewNoopLogger() *NoopLogger {
	return &NoopLogger{}
}

func (n *NoopLogger) Type() LoggerType {
	return LoggerTypeNoop
}

func (n *NoopLogger) Printf(format string, args ...any) {}

func (n *NoopLogger) Println(message string) {}

func (n *NoopLogger) Close() error {
	return nil
}
