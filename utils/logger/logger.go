package logger

import (
	"errors"
	"io"
	"log"
)

// Logger is the logging interface shared by the queue and the demo scheduler.
// All implementations except WriterLogger are safe for concurrent use.
type Logger interface {
	// Type returns the type of the logger
	Type() LoggerType
	// Printf logs a formatted message
	Printf(format string, args ...any)
	// Println logs a message with a newline
	Println(message string)
	// Close releases whatever the logger writes to
	Close() error
}

type LoggerType string

const (
	LoggerTypeStdout LoggerType = "stdout"
	LoggerTypeFile   LoggerType = "file"
	LoggerTypeNoop   LoggerType = "noop"
	LoggerTypeWriter LoggerType = "writer"
	LoggerTypeMulti  LoggerType = "multi"
)

// Option configures the std-log backed loggers
type Option func(*options)

type options struct {
	prefix string
	flags  int
}

// WithPrefix tags every line, e.g. "priority_queue: "
func WithPrefix(prefix string) Option {
	return func(o *options) {
		o.prefix = prefix
	}
}

// WithFlags overrides the log.LstdFlags default
func WithFlags(flags int) Option {
	return func(o *options) {
		o.flags = flags
	}
}

func newStdLogger(w io.Writer, opts []Option) *log.Logger {
	o := options{flags: log.LstdFlags}
	for _, opt := range opts {
		opt(&o)
	}
	return log.New(w, o.prefix, o.flags)
}

// MultiLogger writes to multiple loggers simultaneously.
// Safe for concurrent use if all underlying loggers are safe.
type MultiLogger struct {
	loggers []Logger
}

var _ Logger = (*MultiLogger)(nil)

// NewMultiLogger creates a logger that writes to multiple destinations
func NewMultiLogger(loggers ...Logger) *MultiLogger {
	return &MultiLogger{
		loggers: loggers,
	}
}

func (m *MultiLogger) Type() LoggerType {
	return LoggerTypeMulti
}

func (m *MultiLogger) Printf(format string, args ...any) {
	for _, logger := range m.loggers {
		logger.Printf(format, args...)
	}
}

func (m *MultiLogger) Println(message string) {
	for _, logger := range m.loggers {
		logger.Println(message)
	}
}

// Close closes every underlying logger and joins their errors
func (m *MultiLogger) Close() error {
	var errs []error
	for _, logger := range m.loggers {
		if err := logger.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
