package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/db47h/increparse/grammar"
	"github.com/db47h/increparse/indent"
	"github.com/db47h/increparse/internal/telemetry"
	"github.com/db47h/increparse/lalr"
	"github.com/db47h/increparse/lexer"
	"github.com/db47h/increparse/token"
)

// Session is the IncrementalDriver and SnapshotStore for one conversation
// with a grammar: it remembers every token fed so far and a Snapshot after
// each, so that the next call to Advance only has to feed the new suffix of
// an extended buffer rather than reparse it from scratch.
//
// Not safe for concurrent use. Callers needing concurrent sessions over the
// same grammar create one Session per goroutine; grammar.Runtime itself is
// immutable and safe to share.
type Session struct {
	ID uuid.UUID

	rt     *grammar.Runtime
	logger *telemetry.Logger

	tokenSeq []token.Token    // every token successfully fed so far
	store    map[int]Snapshot // number of tokens fed -> state immediately after that many tokens (0: initial state)
}

type options struct {
	logger *telemetry.Logger
}

// Option configures a Session at construction time.
type Option func(*options)

// WithLogger attaches a telemetry logger. Without this option a Session
// uses a Nop logger, never nil.
func WithLogger(l *telemetry.Logger) Option {
	return func(o *options) { o.logger = l }
}

// New creates a Session positioned at rt's start state, with a snapshot
// already recorded at index 0 (before any token is fed).
func New(rt *grammar.Runtime, opts ...Option) *Session {
	o := options{logger: telemetry.Nop()}
	for _, opt := range opts {
		opt(&o)
	}

	parser := lalr.New(rt.Table)
	alphabet := rt.Alphabet()
	accepts0 := parser.Accepts(alphabet)

	id := uuid.New()
	s := &Session{
		ID:     id,
		rt:     rt,
		logger: o.logger.WithSession(id),
		store:  make(map[int]Snapshot),
	}
	s.store[0] = Snapshot{
		Parser:  parser.Clone(),
		Accepts: AcceptSets{Cur: accepts0, Next: cloneSet(accepts0)},
	}
	return s
}

// Advance is the IncrementalDriver entry point: lex buffer from scratch,
// reuse the longest common prefix of tokens against the previous call,
// restore the snapshot at that point, feed forward whatever new tokens
// follow (snapshotting after each), and classify what the lexer could not
// turn into a token.
func (s *Session) Advance(buffer string) ParseResult {
	tLex := time.Now()
	lexRes := lexer.Lex(s.rt, buffer)
	s.logger.Timing("lex", time.Since(tLex))

	logical := lexRes.Tokens
	var indentRes indent.Result
	hasIndenter := s.rt.Indenter != nil
	if hasIndenter {
		indentRes = indent.Apply(*s.rt.Indenter, lexRes.Tokens)
		logical = indentRes.Tokens
	}

	prefixLen := longestCommonPrefix(s.tokenSeq, logical)

	tRestore := time.Now()
	snap, ok := s.store[prefixLen]
	if !ok {
		panicMissingSnapshot(prefixLen)
	}
	parser := snap.Parser.Clone()
	accepts := snap.Accepts.clone()
	curIndent := snap.Indent
	curDedents := snap.Dedents
	s.logger.Timing("restore", time.Since(tRestore))

	s.tokenSeq = s.tokenSeq[:prefixLen]

	alphabet := s.rt.Alphabet()
	var acceptsDur time.Duration
	tParse := time.Now()
	for i := prefixLen; i < len(logical); i++ {
		tok := logical[i]
		if err := parser.Feed(tok); err != nil {
			break // ParseStop: swallowed, remainder classification covers it
		}

		accepts.Cur = accepts.Next
		tAcc := time.Now()
		accepts.Next = parser.Accepts(alphabet)
		acceptsDur += time.Since(tAcc)

		s.tokenSeq = append(s.tokenSeq, tok)

		if hasIndenter {
			curIndent = indentRes.StackAt[i]
			curDedents = indentRes.DedentsAt[i]
		}

		tStore := time.Now()
		s.store[len(s.tokenSeq)] = Snapshot{
			Parser:  parser.Clone(),
			Accepts: accepts.clone(),
			Indent:  curIndent,
			Dedents: curDedents,
		}
		s.logger.Timing("store", time.Since(tStore))
	}
	s.logger.Timing("parse", time.Since(tParse)-acceptsDur)
	s.logger.Timing("accepts", acceptsDur)

	var haveLast bool
	var lastValue string
	var lastExtensible bool
	if n := len(lexRes.Tokens); n > 0 {
		haveLast = true
		lastValue = lexRes.Tokens[n-1].Value
		lastExtensible = extensibleTerminal(s.rt, lexRes.Tokens[n-1].Type)
	}
	remState, remStr := classifyRemainder(buffer, lexRes.Pos, haveLast, lastValue, lastExtensible)

	var nextIndents []int
	if hasIndenter {
		nextIndents = append([]int(nil), curIndent...)
	}

	return ParseResult{
		CurAcTerminals:  sortedTerminals(accepts.Cur),
		NextAcTerminals: sortedTerminals(accepts.Next),
		RemainderState:  remState,
		RemainderString: remStr,
		NextAcIndents:   nextIndents,
		AcceptsDuration: acceptsDur,
	}
}

// Evict drops every stored snapshot below minIndex. It is never called
// internally: the core keeps every snapshot for the lifetime of the
// Session, and reclaiming memory for snapshots an upstream caller knows it
// will never restore to is that caller's policy decision, not this
// package's.
func (s *Session) Evict(minIndex int) {
	for idx := range s.store {
		if idx < minIndex {
			delete(s.store, idx)
		}
	}
}
