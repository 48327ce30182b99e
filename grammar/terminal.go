package grammar

import (
	"fmt"
	"regexp"

	"github.com/db47h/increparse/token"
)

// Kind classifies how a TerminalDef is matched against the input, and
// whether a closed match of that terminal could still be a prefix of a
// longer one.
type Kind int

const (
	// Literal terminals match a single fixed string (keywords, punctuation).
	// A literal can never be extended into a longer valid terminal under the
	// same name, so a closed literal match is never ambiguous: it is always
	// a MAYBE_COMPLETE candidate of exactly one length, which session
	// classifies as COMPLETE rather than MAYBE_COMPLETE (see
	// session.classifyRemainder and DESIGN.md).
	Literal Kind = iota
	// Regex terminals match the longest prefix of the input satisfying a
	// regular expression (e.g. identifiers, numbers). A closed regex match
	// may be a strict prefix of a longer match of the same terminal, hence
	// MAYBE_COMPLETE applies.
	Regex
	// Wordset terminals match the longest member of a fixed set of literal
	// strings (keyword tables), implemented with the trie in wordset.go.
	// Like Literal, a closed match is treated as not extensible, even when
	// a longer word of the same set begins with the matched one (e.g. "in"
	// and "int"): such a match at end of buffer is classified COMPLETE.
	Wordset
	// Builtin terminals match one of a small set of predefined scanners
	// (numbers, quoted strings) named by Pattern, implemented in literal.go.
	// A grammar author who wants C-like number or string literals would
	// otherwise have to hand-write a regex for them. Every Builtin terminal
	// is extensible exactly like Regex (a digit run can always grow); this
	// includes the quoted-string scanner, whose match already ends at its
	// closing quote.
	Builtin
)

// TerminalDef declares one terminal of a grammar's alphabet: its name and
// how to recognize it in source text.
type TerminalDef struct {
	Name    token.Terminal
	Kind    Kind
	Pattern string // literal text (Literal), regex source (Regex), unused for Wordset
	Words   []string
	re      *regexp.Regexp
	words   *wordNode
}

// Extensible reports whether a closed match of this terminal could still be
// a strict prefix of a longer valid match (see the Kind docs above).
func (d *TerminalDef) Extensible() bool {
	return d.Kind == Regex || d.Kind == Builtin
}

func (d *TerminalDef) compile() error {
	switch d.Kind {
	case Regex:
		re, err := regexp.Compile(`\A(?:` + d.Pattern + `)`)
		if err != nil {
			return fmt.Errorf("terminal %s: %w", d.Name, err)
		}
		d.re = re
	case Wordset:
		if len(d.Words) == 0 {
			return fmt.Errorf("terminal %s: wordset kind requires at least one word", d.Name)
		}
		d.words = newWordTrie(d.Words)
	case Literal:
		if d.Pattern == "" {
			return fmt.Errorf("terminal %s: literal kind requires a non-empty pattern", d.Name)
		}
	case Builtin:
		if _, ok := builtinScanners[d.Pattern]; !ok {
			return fmt.Errorf("terminal %s: unknown builtin %q", d.Name, d.Pattern)
		}
	default:
		return fmt.Errorf("terminal %s: unknown kind %d", d.Name, d.Kind)
	}
	return nil
}

// match attempts to match d against the head of s. It returns the matched
// length, or 0 if d does not match at all.
func (d *TerminalDef) match(s string) int {
	switch d.Kind {
	case Literal:
		if len(s) >= len(d.Pattern) && s[:len(d.Pattern)] == d.Pattern {
			return len(d.Pattern)
		}
		return 0
	case Regex:
		loc := d.re.FindStringIndex(s)
		if loc == nil {
			return 0
		}
		return loc[1]
	case Wordset:
		return d.words.longestMatch(s)
	case Builtin:
		return builtinScanners[d.Pattern](s)
	default:
		return 0
	}
}
