package indent

import "github.com/db47h/increparse/token"

// DedentQueue is an ordered sequence of DEDENT tokens still owed to the
// parser. A single newline that dedents past several open levels enqueues
// one DEDENT per level and the Indenter drains them one at a time, since
// each is a distinct token fed individually to the parser.
//
// Runs of pending dedents are small in practice (bounded by nesting depth),
// so this is a plain slice rather than a ring-buffer FIFO sized for a much
// hotter per-rune undo buffer; push/pop here are O(1) amortized
// and the queue is cloned wholesale on every snapshot regardless.
type DedentQueue struct {
	pending []token.Token
}

// Clone returns an independent copy of the queue.
func (q DedentQueue) Clone() DedentQueue {
	if q.pending == nil {
		return DedentQueue{}
	}
	c := make([]token.Token, len(q.pending))
	copy(c, q.pending)
	return DedentQueue{pending: c}
}

// Len reports the number of tokens still pending.
func (q *DedentQueue) Len() int { return len(q.pending) }

// Push enqueues a DEDENT token.
func (q *DedentQueue) Push(t token.Token) {
	q.pending = append(q.pending, t)
}

// Pop removes and returns the oldest pending DEDENT token. Callers must
// check Len() > 0 first.
func (q *DedentQueue) Pop() token.Token {
	t := q.pending[0]
	q.pending = q.pending[1:]
	return t
}
