// Package telemetry wraps go.uber.org/zap into the small structured-logging
// surface the session package needs: named timing events and session-scoped
// correlation fields, with a Nop implementation so a library-default session
// never has to guard a logger field against nil.
package telemetry
