// Package logging provides a log/slog-backed implementation of the
// engine's Logger interface. No third-party structured-logging library
// appears in any retrieved example repo's go.mod; where the pack reaches
// past plain fmt for logging at all, it reaches for the standard
// library's log/slog, so that is what this adapter wraps.
package logging

import "log/slog"

// SlogLogger adapts an *slog.Logger to the engine's Logger interface,
// emitting one debug-level record per hook invocation with structured
// "state" and "method" attributes.
type SlogLogger struct {
	logger *slog.Logger
}

// New wraps logger. A nil logger falls back to slog.Default().
func New(logger *slog.Logger) *SlogLogger {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogLogger{logger: logger}
}

// Log implements hfsm.Logger.
func (l *SlogLogger) Log(state string, method string) {
	l.logger.Debug("hfsm hook", slog.String("state", state), slog.String("method", method))
}
