package tag

import (
	"context"
	"log/slog"
)

// Severity ranks a report.
type Severity uint8

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Reporter receives messages about a decode or encode. Reports never
// influence control flow.
type Reporter interface {
	Report(severity Severity, message string)
}

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(severity Severity, message string)

func (f ReporterFunc) Report(severity Severity, message string) {
	f(severity, message)
}

// Discard drops every report.
var Discard Reporter = ReporterFunc(func(Severity, string) {})

// SlogReporter forwards reports to a structured logger.
type SlogReporter struct {
	Logger *slog.Logger
}

// NewSlogReporter creates a reporter that logs to logger, or to
// slog.Default when logger is nil.
func NewSlogReporter(logger *slog.Logger) SlogReporter {
	if logger == nil {
		logger = slog.Default()
	}

	return SlogReporter{Logger: logger}
}

func (r SlogReporter) Report(severity Severity, message string) {
	level := slog.LevelInfo
	switch severity {
	case SeverityWarning:
		level = slog.LevelWarn
	case SeverityError:
		level = slog.LevelError
	}

	r.Logger.Log(context.Background(), level, message, slog.String("severity", severity.String()))
}
