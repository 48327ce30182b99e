// Package increparse provides a thin, convenience entry point over the
// grammar and session packages: load a grammar file and obtain a ready-to-use
// Session in one call. Callers who need finer control (custom Options,
// sharing one Runtime across many sessions) should use the grammar and
// session packages directly instead.
package increparse
