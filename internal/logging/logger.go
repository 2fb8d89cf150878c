package logging

import (
	"io"
	"time"

	log "github.com/sirupsen/logrus"
)

// Logger is a minimal logging interface for the command line layers.
// The default is a no-op; pkg/numfmt never logs.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger implements Logger with no output.
type NopLogger struct{}

func (NopLogger) Debugf(format string, args ...any) {}
func (NopLogger) Infof(format string, args ...any)  {}
func (NopLogger) Warnf(format string, args ...any)  {}
func (NopLogger) Errorf(format string, args ...any) {}

// New returns a logrus backed Logger writing to w. Verbose enables debug
// output; otherwise only warnings and errors are shown.
func New(w io.Writer, verbose bool) Logger {
	logger := log.New()
	logger.SetOutput(w)
	logger.SetLevel(log.WarnLevel)
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	logger.SetFormatter(&log.TextFormatter{
		TimestampFormat: time.RFC3339Nano,
	})
	return logger
}
