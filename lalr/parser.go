package lalr

import (
	"errors"
	"fmt"

	"github.com/db47h/increparse/grammar"
	"github.com/db47h/increparse/token"
)

// ErrUnexpectedToken is returned by Feed when the lookahead terminal has no
// action in the current state. Feed is all-or-nothing on this error: the
// parser's internal state is left exactly as it was before the call.
var ErrUnexpectedToken = errors.New("lalr: unexpected token")

// UnexpectedTokenError wraps ErrUnexpectedToken with the offending token, a
// typed error carrying position/kind alongside a sentinel for errors.Is.
type UnexpectedTokenError struct {
	Token token.Token
}

func (e *UnexpectedTokenError) Error() string {
	return fmt.Sprintf("lalr: unexpected token %s %q at %d", e.Token.Type, e.Token.Value, e.Token.Start)
}

func (e *UnexpectedTokenError) Unwrap() error { return ErrUnexpectedToken }

// Parser is an LALR state machine driven one terminal at a time. Its zero
// value is not usable; construct one with New.
type Parser struct {
	table *grammar.Table
	stack []int
}

// New creates a Parser positioned at the grammar's start state.
func New(table *grammar.Table) *Parser {
	return &Parser{table: table, stack: []int{table.Start}}
}

// Feed advances the state machine by one terminal. On success, the internal
// stack reflects every reduction plus the final shift triggered by tok. On
// ErrUnexpectedToken, the parser is left completely unchanged.
func (p *Parser) Feed(tok token.Token) error {
	stack, ok := p.run(p.stack, tok.Type)
	if !ok {
		return &UnexpectedTokenError{Token: tok}
	}
	p.stack = stack
	return nil
}

// Accepts returns the set of terminals that would not immediately produce
// ErrUnexpectedToken if fed right now, including token.EOF when the current
// state could legally close the input. Accepts never mutates the parser; it
// is safe to call repeatedly and concurrently with other read-only calls,
// though the Parser as a whole is not safe for concurrent use alongside
// Feed.
//
// This walks the full reduce chain for every candidate terminal, exactly as
// the LALR table would if that terminal were actually fed -- this is the
// expensive operation of the core, meant to be called at most once per fed
// token (see session.Session).
func (p *Parser) Accepts(alphabet []token.Terminal) map[token.Terminal]struct{} {
	out := make(map[token.Terminal]struct{})
	for _, term := range alphabet {
		if _, ok := p.run(p.stack, term); ok {
			out[term] = struct{}{}
		}
	}
	return out
}

// run simulates feeding term from stack, applying reduce actions until a
// shift or accept is reached. It never mutates stack in place; it returns a
// new slice (or the same backing array extended, never aliasing the
// argument's observable contents) and whether the terminal was accepted.
func (p *Parser) run(stack []int, term token.Terminal) ([]int, bool) {
	cur := append([]int(nil), stack...)
	for {
		top := cur[len(cur)-1]
		act := p.table.ActionFor(top, term)
		switch act.Kind {
		case grammar.ActionShift:
			cur = append(cur, act.Target)
			return cur, true
		case grammar.ActionAccept:
			return cur, true
		case grammar.ActionReduce:
			prod := p.table.Productions[act.Target]
			if prod.RHSLen > len(cur)-1 {
				return nil, false
			}
			cur = cur[:len(cur)-prod.RHSLen]
			top = cur[len(cur)-1]
			g, ok := p.table.GotoFor(top, prod.LHS)
			if !ok {
				return nil, false
			}
			cur = append(cur, g)
		default:
			return nil, false
		}
	}
}

// Clone returns an independent copy of the parser: future Feed calls on the
// clone never affect the receiver and vice versa.
func (p *Parser) Clone() *Parser {
	return &Parser{table: p.table, stack: append([]int(nil), p.stack...)}
}

// Restore replaces the receiver's state with an independent copy of other's.
func (p *Parser) Restore(other *Parser) {
	p.table = other.table
	p.stack = append([]int(nil), other.stack...)
}
