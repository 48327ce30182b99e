package lexer

import (
	"strings"

	"github.com/db47h/increparse/grammar"
	"github.com/db47h/increparse/token"
)

// Result is the outcome of lexing a buffer: the tokens recognized so far and
// the offset the lexer reached before stopping, either because it hit the
// end of the buffer cleanly or because no terminal matched at that point.
type Result struct {
	Tokens []token.Token
	Pos    int // final character offset reached; Pos <= len(buffer)
}

// Lex greedily tokenizes buf against rt's terminal alphabet. It stops
// cleanly on either an unmatched character or end of buffer -- it never
// returns an error. The unlexed tail, if any, is the caller's remainder to
// classify; that classification is session's job, not this
// package's.
func Lex(rt *grammar.Runtime, buf string) Result {
	var res Result
	pos := 0
	for pos < len(buf) {
		pos += rt.SkipIgnore(buf[pos:])
		if pos >= len(buf) {
			break
		}
		def, n := rt.MatchLongest(buf[pos:])
		if def == nil || n == 0 {
			res.Pos = pos
			return res
		}
		res.Tokens = append(res.Tokens, token.Token{
			Type:  def.Name,
			Value: buf[pos : pos+n],
			Start: token.Pos(pos),
			End:   token.Pos(pos + n),
		})
		pos += n
		res.Pos = pos
	}
	return res
}

// TrimmedRemainder returns buf[pos:] with leading spaces stripped, matching
// the remainder-classification rule exactly (only ASCII spaces are
// stripped, not all whitespace -- "trimmed of leading spaces", not
// "trimmed of leading whitespace").
func TrimmedRemainder(buf string, pos int) string {
	return strings.TrimLeft(buf[pos:], " ")
}
