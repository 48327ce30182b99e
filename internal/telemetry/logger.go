package telemetry

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Logger is the structured-logging surface session.Session depends on: named
// timing events plus enough session correlation that log lines from several
// concurrently running sessions sharing one grammar.Runtime can be told
// apart.
type Logger struct {
	zl *zap.Logger
}

// New wraps an existing zap logger.
func New(zl *zap.Logger) *Logger {
	if zl == nil {
		zl = zap.NewNop()
	}
	return &Logger{zl: zl}
}

// Nop returns a Logger that discards everything. It is the zero-value
// default a session.Session uses when no logger is supplied with
// session.WithLogger, so call sites never need a nil check.
func Nop() *Logger {
	return &Logger{zl: zap.NewNop()}
}

// WithSession returns a Logger tagging every subsequent entry with id, for
// correlating log lines from one session's lifetime.
func (l *Logger) WithSession(id uuid.UUID) *Logger {
	return &Logger{zl: l.zl.With(zap.String("session", id.String()))}
}

// Timing records one named timing event (lex, parse, store, restore,
// accepts) and its duration.
func (l *Logger) Timing(name string, d time.Duration) {
	l.zl.Debug("timing", zap.String("event", name), zap.Duration("duration", d))
}

// Error logs a non-fatal error encountered while serving a session, e.g. a
// grammar load warning surfaced after the fact.
func (l *Logger) Error(msg string, err error) {
	l.zl.Error(msg, zap.Error(err))
}
