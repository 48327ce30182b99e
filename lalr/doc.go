// Package lalr implements an interactive parser contract: an
// LALR state machine driven one terminal at a time, with on-demand
// computation of the set of terminals that would not immediately error, and
// cheap cloning for the session package's snapshotting.
//
// The package treats the interactive parser as a closed interface (Feed,
// Accepts, Clone, Restore) deliberately, the way a production parser in this
// space would keep its table-driven LALR core behind a narrow seam so that
// the table representation can change without touching callers.
package lalr
