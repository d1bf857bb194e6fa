package logger

import (
	"log"
	"os"
)

// FileLogger writes logs to a file opened with O_APPEND, so concurrent
// processes appending to the same file don't interleave within a line.
type FileLogger struct {
	logger *log.Logger
	file   *os.File
}

var _ Logger = (*FileLogger)(nil)

// NewFileLogger creates a new logger that writes to the specified file path.
// Returns an error if the file cannot be opened.
func NewFileLogger(filepath string, opts ...Option) (*FileLogger, error) {
	file, err := os.OpenFile(filepath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return nil, err
	}

	return &FileLogger{
		logger: newStdLogger(file, opts),
		file:   file,
	}, nil
}

func (f *FileLogger) Type() LoggerType {
	return LoggerTypeFile
}

func (f *FileLogger) Printf(format string, args ...any) {
	f.logger.Printf(format, args...)
}

func (f *FileLogger) Println(message string) {
	f.logger.Println(message)
}

// Close closes the underlying file. Calling it twice is a no-op.
func (f *FileLogger) Close() error {
	if f.file == nil {
		return nil
	}
	err := f.file.Close()
	f.file = nil
	return err
}
