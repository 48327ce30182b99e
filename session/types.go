package session

import (
	"time"

	"github.com/db47h/increparse/indent"
	"github.com/db47h/increparse/lalr"
	"github.com/db47h/increparse/token"
)

// AcceptSets holds the two terminal sets ParseResult exposes: what was
// acceptable going into the most recently fed token, and what is acceptable
// coming out of it.
type AcceptSets struct {
	Cur  map[token.Terminal]struct{}
	Next map[token.Terminal]struct{}
}

func (a AcceptSets) clone() AcceptSets {
	return AcceptSets{Cur: cloneSet(a.Cur), Next: cloneSet(a.Next)}
}

func cloneSet(m map[token.Terminal]struct{}) map[token.Terminal]struct{} {
	c := make(map[token.Terminal]struct{}, len(m))
	for k := range m {
		c[k] = struct{}{}
	}
	return c
}

func sortedTerminals(m map[token.Terminal]struct{}) []token.Terminal {
	out := make([]token.Terminal, 0, len(m))
	for t := range m {
		out = append(out, t)
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j] < out[j-1]; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

// Snapshot is the complete, independently restorable parser state as it
// stood immediately after one successfully fed token: the LALR stack, the
// accept sets on either side of that token, and -- when the grammar
// declares an indenter -- the indent stack and pending dedent queue at that
// same point.
//
// A Snapshot never aliases the Session it was taken from: Restore on the
// embedded Parser, and the Stack/DedentQueue Clone methods, all copy
// rather than share backing arrays.
type Snapshot struct {
	Parser  *lalr.Parser
	Accepts AcceptSets
	Indent  indent.Stack
	Dedents indent.DedentQueue
}

// RemainderState classifies the unlexed tail of a buffer: COMPLETE,
// INCOMPLETE, or MAYBE_COMPLETE.
type RemainderState int

const (
	// Complete means there is no meaningful unlexed tail: either the lexer
	// consumed the whole buffer and the last token cannot be extended into a
	// longer terminal, or what's left after the last token is only
	// whitespace.
	Complete RemainderState = iota
	// Incomplete means the lexer stopped at a character that started no
	// terminal at all; more input is required before anything further can
	// be recognized.
	Incomplete
	// MaybeComplete means the lexer closed the last token at the end of the
	// buffer, but that token's terminal kind could still be extended by
	// more characters into a longer match of the same terminal.
	MaybeComplete
)

// String implements fmt.Stringer.
func (s RemainderState) String() string {
	switch s {
	case Complete:
		return "COMPLETE"
	case Incomplete:
		return "INCOMPLETE"
	case MaybeComplete:
		return "MAYBE_COMPLETE"
	default:
		return "UNKNOWN"
	}
}

// ParseResult is what Advance returns: the terminals acceptable before and
// after the most recently fed token, the remainder classification, and
// timing detail for the Accepts calls made during this Advance.
type ParseResult struct {
	CurAcTerminals  []token.Terminal
	NextAcTerminals []token.Terminal
	RemainderState  RemainderState
	RemainderString string
	NextAcIndents   []int

	// AcceptsDuration is the cumulative time spent inside lalr.Parser.Accepts
	// during this call to Advance, tracked separately from total Advance
	// time the way incremental_parser.py tracks time_accepts apart from its
	// overall timing.
	AcceptsDuration time.Duration
}
