package commands

import (
	"io"
	"os"
	"sort"

	"github.com/charmbracelet/log"
	"github.com/fivetwenty-io/increase/pkg/increase"
)

// Logger adapts a charmbracelet logger to increase.Logger.
type Logger struct {
	logger *log.Logger
}

var _ increase.Logger = (*Logger)(nil)

// NewLogger writes debug-level logs to stderr. Plain logfmt is used when
// color is disabled.
func NewLogger(noColor bool) *Logger {
	return newLoggerTo(os.Stderr, noColor)
}

func newLoggerTo(w io.Writer, noColor bool) *Logger {
	options := log.Options{
		Level:           log.DebugLevel,
		Prefix:          "increase",
		ReportTimestamp: true,
	}

	if noColor {
		options.Formatter = log.LogfmtFormatter
	}

	return &Logger{logger: log.NewWithOptions(w, options)}
}

func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, keyvals(fields)...)
}

func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, keyvals(fields)...)
}

func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, keyvals(fields)...)
}

func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, keyvals(fields)...)
}

// keyvals flattens fields in key order.
func keyvals(fields map[string]interface{}) []interface{} {
	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	out := make([]interface{}, 0, 2*len(keys))
	for _, key := range keys {
		out = append(out, key, fields[key])
	}

	return out
}
