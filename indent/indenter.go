package indent

import (
	"strings"

	"github.com/db47h/increparse/grammar"
	"github.com/db47h/increparse/token"
)

// Result is the outcome of applying an indentation filter to a raw token
// stream: the logical token sequence the parser actually sees (with
// INDENT/DEDENT tokens spliced in and same-level newlines dropped), plus the
// indent Stack and DedentQueue as they stood immediately after each logical
// token -- exactly the per-index state session.Snapshot needs to capture.
type Result struct {
	Tokens    []token.Token
	StackAt   []Stack
	DedentsAt []DedentQueue
}

// Apply runs the indentation filter over a complete raw token stream. It is
// a pure, stateless-across-calls bulk transform: like the lexer it is
// derived from, it is cheap enough to redo over the whole buffer on every
// call (the expensive operation this module protects is LALR
// feed-forward and Accepts, not lexing or indentation bookkeeping).
//
// cfg.NewlineTerminal identifies which raw terminal carries a newline plus
// the whitespace run opening the next line; its value's suffix after the
// last '\n' is taken as that line's indentation width. Tokens of any other
// type pass through unchanged.
func Apply(cfg grammar.IndenterConfig, raw []token.Token) Result {
	res := Result{
		Tokens:    make([]token.Token, 0, len(raw)),
		StackAt:   make([]Stack, 0, len(raw)),
		DedentsAt: make([]DedentQueue, 0, len(raw)),
	}
	var stack Stack
	var dedents DedentQueue

	emit := func(t token.Token) {
		res.Tokens = append(res.Tokens, t)
		res.StackAt = append(res.StackAt, stack.Clone())
		res.DedentsAt = append(res.DedentsAt, dedents.Clone())
	}

	for _, t := range raw {
		if t.Type != cfg.NewlineTerminal {
			emit(t)
			continue
		}
		width := indentWidth(t.Value)
		switch top := stack.Top(); {
		case width > top:
			stack = append(stack, width)
			emit(token.Token{Type: cfg.IndentTerminal, Value: "", Start: t.Start, End: t.End})
		case width < top:
			for len(stack) > 0 && stack.Top() > width {
				stack = stack[:len(stack)-1]
				dedents.Push(token.Token{Type: cfg.DedentTerminal, Value: "", Start: t.Start, End: t.End})
			}
			for dedents.Len() > 0 {
				emit(dedents.Pop())
			}
		default:
			// Same indentation level: the newline carries no syntactic
			// weight of its own and is dropped from the logical stream.
		}
	}
	return res
}

func indentWidth(value string) int {
	i := strings.LastIndexByte(value, '\n')
	return len(value) - i - 1
}
