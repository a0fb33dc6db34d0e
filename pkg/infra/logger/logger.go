package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const defaultBufferSize = 32 * 1024

type Options struct {
	// Mode names the log file: <Dir>/<Mode>.log.
	Mode  string
	Level string
	Dir   string
	// Console mirrors every entry to stdout.
	Console bool
}

// NewLogger returns a JSON logrus logger writing asynchronously to a file
// under opts.Dir. The returned closer flushes pending entries.
func NewLogger(opts Options) (*logrus.Logger, io.Closer, error) {
	logger := logrus.New()

	logger.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime: "time",
			logrus.FieldKeyMsg:  "msg",
		},
	})
	logger.SetLevel(parseLevel(opts.Level))

	if opts.Mode == "" || strings.ContainsAny(opts.Mode, `/\.`) {
		return nil, nil, fmt.Errorf("invalid log mode %q", opts.Mode)
	}
	dir := opts.Dir
	if dir == "" {
		dir = "logs"
	}
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, nil, fmt.Errorf("failed to create logs directory: %w", err)
	}

	asyncWriter, err := NewAsyncFileWriter(filepath.Join(dir, opts.Mode+".log"), defaultBufferSize)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize async log writer: %w", err)
	}
	logger.SetOutput(asyncWriter)

	if opts.Console {
		logger.AddHook(NewConsoleHook(os.Stdout))
	}
	return logger, asyncWriter, nil
}

func parseLevel(level string) logrus.Level {
	if level == "" {
		level = os.Getenv("LOG_LEVEL")
	}
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return logrus.InfoLevel
	}
	return parsed
}
