package session

import "fmt"

// missingSnapshotPanic is the value recovered code would see if store ever
// lacked a snapshot for an index below the current token count. It signals
// a broken invariant (every successful Feed writes a snapshot at its
// resulting index), not a runtime condition a caller can recover from --
// the same reasoning as token.File.AddLine panicking on an out-of-order
// line offset: corrupt internal bookkeeping, not bad input.
type missingSnapshotPanic struct {
	Index int
}

func (e missingSnapshotPanic) Error() string {
	return fmt.Sprintf("session: missing snapshot at index %d", e.Index)
}

func panicMissingSnapshot(index int) {
	panic(missingSnapshotPanic{Index: index})
}
