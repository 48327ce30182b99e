package grammar

import "errors"

// ErrGrammarLoad wraps any failure to read or compile a grammar file. It is
// fatal at construction time and is always
// surfaced to the caller of Load, never swallowed.
var ErrGrammarLoad = errors.New("grammar: load failed")

// ErrUnsupportedFlavor is returned when a grammar file requests a parser
// flavor other than "lalr", the only one this package implements.
var ErrUnsupportedFlavor = errors.New("grammar: unsupported parser flavor")
