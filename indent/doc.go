// Package indent implements the optional post-lexing indentation filter: it
// sits between the lexer and the parser, turning runs of leading whitespace
// on a new line into INDENT and DEDENT tokens.
//
// The filter owns two pieces of state that must travel with every snapshot
// the session package takes: the Stack of currently open indentation
// widths, and a DedentQueue of DEDENT tokens generated by one newline but
// not yet handed to the parser (dedenting by more than one level at once
// produces more than one DEDENT token, emitted one at a time).
package indent
