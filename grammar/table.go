package grammar

import "github.com/db47h/increparse/token"

// ActionKind identifies what an LALR Action does to the parser's state
// stack for a given (state, lookahead) pair.
type ActionKind int

const (
	// ActionError is the zero value: no entry for this (state, terminal)
	// pair, i.e. the terminal is rejected in this state.
	ActionError ActionKind = iota
	// ActionShift pushes Target onto the state stack and consumes the
	// lookahead terminal.
	ActionShift
	// ActionReduce pops Productions[Target].RHSLen states, then performs
	// a Goto on the production's LHS without consuming the lookahead.
	ActionReduce
	// ActionAccept marks a state from which the only remaining lookahead is
	// EOF and the input is a complete sentence of the grammar.
	ActionAccept
)

// Action is one entry of the LALR action table.
type Action struct {
	Kind   ActionKind
	Target int // state to shift to, or production index to reduce by
}

// Production is one grammar rule, reduced to exactly what the table-driven
// walk needs: the nonterminal it produces and how many stack states (and
// input symbols) it consumes. The core never builds a parse tree, so the
// rule's right-hand side symbols themselves are not retained.
type Production struct {
	LHS    string
	RHSLen int
}

// Table is a compiled LALR action/goto table over an explicit set of
// integer states. It says nothing about how terminals are recognized in
// source text -- that is TerminalDef's job -- only how the parser reacts to
// a terminal once lexed.
type Table struct {
	Start       int
	Action      map[int]map[token.Terminal]Action
	Goto        map[int]map[string]int
	Productions []Production
}

// ActionFor looks up the action for (state, terminal), returning the zero
// Action (ActionError) if there is none.
func (t *Table) ActionFor(state int, term token.Terminal) Action {
	row, ok := t.Action[state]
	if !ok {
		return Action{}
	}
	a, ok := row[term]
	if !ok {
		return Action{}
	}
	return a
}

// GotoFor looks up the successor state for (state, nonterminal).
func (t *Table) GotoFor(state int, lhs string) (int, bool) {
	row, ok := t.Goto[state]
	if !ok {
		return 0, false
	}
	s, ok := row[lhs]
	return s, ok
}
