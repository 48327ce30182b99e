// Package lexer converts a buffer into a sequence of tokens using a
// grammar's terminal definitions, and reports the final character offset it
// managed to reach.
//
// Unlike the DFA lexer this package is adapted from -- built from
// hand-chained StateFn functions specific to one target language -- this
// Lexer is grammar-driven: it has no knowledge of any particular language,
// only of grammar.Runtime's ordered terminal matchers. The lexing loop
// itself keeps that lexer's greedy, stop-cleanly-on-trouble shape: it
// never raises out of Lex, converting both an unmatched character and a
// clean end of buffer into "lexed what it could".
package lexer
