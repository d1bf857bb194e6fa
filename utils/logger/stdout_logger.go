package logger

import (
	"log"
	"os"
)

// StdoutLogger writes logs to stdout using the standard log package.
type StdoutLogger struct {
	logger *log.Logger
}

var _ Logger = (*StdoutLogger)(nil)

// NewStdoutLogger creates a new logger that writes to stdout
func NewStdoutLogger(opts ...Option) *StdoutLogger {
	return &StdoutLogger{
		logger: newStdLogger(os.Stdout, opts),
	}
}

func (s *StdoutLogger) Type() LoggerType {
	return LoggerTypeStdout
}

func (s *StdoutLogger) Printf(format string, args ...any) {
	s.logger.Printf(format, args...)
}

func (s *StdoutLogger) Println(message string) {
	s.logger.Println(message)
}

func (s *StdoutLogger) Close() error {
	return nil
}
