package main

import (
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/width"

	"github.com/db47h/increparse/session"
	"github.com/db47h/increparse/token"
)

// printPretty prints the source buffer followed by a caret aligned under
// the start of the remainder string, the way the library this CLI sits on
// top of reports lexing errors: a source line, then a second line with a
// caret under the offending column. Alignment is computed in terminal
// display cells rather than bytes or runes, since East Asian wide and
// fullwidth characters occupy two cells in a monospaced terminal.
func printPretty(w io.Writer, buf string, res session.ParseResult) {
	fmt.Fprintf(w, "|%s\n", buf)

	col := len(buf) - len(res.RemainderString)
	if col < 0 {
		col = 0
	}
	if col > len(buf) {
		col = len(buf)
	}
	fmt.Fprintf(w, "|%s^ %s %q\n", strings.Repeat(" ", displayWidth(buf[:col])), res.RemainderState, res.RemainderString)

	pos := fileForBuffer(buf).Position(token.Pos(col))
	fmt.Fprintf(w, "at %s\n", pos)
}

// fileForBuffer builds a token.File over an in-memory buffer so the CLI can
// report 1-based line/column positions the same way the library's own
// token.File.Position does for on-disk sources, rather than a raw byte
// offset.
func fileForBuffer(buf string) *token.File {
	f := token.NewFile("<input>")
	f.AddLine(0, 1)
	line := 2
	for i := 0; i < len(buf); i++ {
		if buf[i] == '\n' {
			f.AddLine(token.Pos(i+1), line)
			line++
		}
	}
	return f
}

// displayWidth computes the width in terminal cells of s, adapted from an
// Example_GetLineBytes caret-alignment helper: East Asian wide/fullwidth
// runes occupy two cells, ambiguous-width runes are counted as one cell
// (matching a non-CJK locale), non-graphic runes (control characters such
// as tab and newline) zero cells, everything else one cell.
func displayWidth(s string) int {
	w := 0
	for i := 0; i < len(s); {
		r, n := utf8.DecodeRuneInString(s[i:])
		i += n
		if !unicode.IsGraphic(r) {
			continue
		}
		p := width.LookupRune(r)
		switch p.Kind() {
		case width.EastAsianFullwidth, width.EastAsianWide:
			w += 2
		default:
			w++
		}
	}
	return w
}
