// Package session implements the IncrementalDriver and SnapshotStore: the
// top-level entry point that turns a growing source buffer into the set of
// grammar terminals that may legally appear next, reusing as much of the
// previous call's parser state as the new buffer's common prefix allows.
//
// A Session is a faithful port of incremental_parser.py's control flow
// (lex whole buffer, diff token lists, restore nearest snapshot, feed the
// new suffix, classify what's left over) rather than a fresh design: only
// re-lexing is ever O(whole buffer); feeding the LALR machine is O(new
// suffix) because every prior token's post-shift state was already snapshot.
package session
