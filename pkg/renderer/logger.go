package renderer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/df07/go-raytracer-challenge/pkg/core"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// SlogLogger implements core.Logger on top of a structured logger, one record per call
type SlogLogger struct {
	logger *slog.Logger
	level  slog.Level
}

// NewSlogLogger creates a core.Logger that logs at level. A nil logger uses core.Log().
func NewSlogLogger(logger *slog.Logger, level slog.Level) core.Logger {
	return &SlogLogger{logger: logger, level: level}
}

func (sl *SlogLogger) Printf(format string, args ...interface{}) {
	logger := sl.logger
	if logger == nil {
		logger = core.Log()
	}
	msg := strings.TrimRight(fmt.Sprintf(format, args...), "\n")
	logger.Log(context.Background(), sl.level, msg)
}

// nopLogger discards progress output
type nopLogger struct{}

func (nopLogger) Printf(string, ...interface{}) {}
