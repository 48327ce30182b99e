package session

import (
	"strings"

	"github.com/db47h/increparse/grammar"
	"github.com/db47h/increparse/token"
)

// classifyRemainder implements the remainder-classification rule: given the
// final character offset the lexer reached (lexPos: the end of the last
// successfully emitted token when lexing ran to the end of the buffer, never
// extended through trailing ignored whitespace alone; or the offset of the
// unmatched character, after any skipped ignored input, when lexing stopped
// early -- see lexer.Lex), the buffer, and the last
// token actually fed (if any), decide COMPLETE / INCOMPLETE / MAYBE_COMPLETE
// and the relevant remainder string.
//
// lastExtensible is whether the last token's terminal kind could still grow
// into a longer match of the same terminal (grammar.TerminalDef.Extensible).
// Gating MAYBE_COMPLETE on it is what keeps this rule internally consistent:
// a closed match of a fixed keyword or punctuation terminal at end of buffer
// can never be extended, so it is COMPLETE, not MAYBE_COMPLETE, regardless
// of how much of the buffer the lexer consumed.
func classifyRemainder(buf string, lexPos int, haveLast bool, lastValue string, lastExtensible bool) (RemainderState, string) {
	if lexPos < len(buf) {
		trimmed := strings.TrimLeft(buf[lexPos:], " ")
		if trimmed != "" {
			return Incomplete, trimmed
		}
		return Complete, ""
	}
	if haveLast && lastExtensible {
		return MaybeComplete, lastValue
	}
	return Complete, ""
}

// extensibleTerminal reports whether name's terminal kind can be extended
// into a longer match of the same name, or false if rt declares no such
// terminal (EOF, a terminal the caller already knows is closed, etc.).
func extensibleTerminal(rt *grammar.Runtime, name token.Terminal) bool {
	for _, t := range rt.Terminals {
		if t.Name == name {
			return t.Extensible()
		}
	}
	return false
}

// longestCommonPrefix returns the length of the longest prefix prev and cur
// share under token.Token.Equal, checked only up to min(len(prev), len(cur))
// -- the exact bound incremental_parser.py's _restore_recent_parser_state
// uses, not a full diff of both lists.
func longestCommonPrefix(prev, cur []token.Token) int {
	n := len(prev)
	if len(cur) < n {
		n = len(cur)
	}
	for i := 0; i < n; i++ {
		if !prev[i].Equal(cur[i]) {
			return i
		}
	}
	return n
}
