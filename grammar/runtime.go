package grammar

import (
	"regexp"

	"github.com/db47h/increparse/token"
)

// Runtime is a loaded, immutable grammar: its terminal alphabet (with
// matchers), the pattern used to skip insignificant input between tokens,
// an optional indenter configuration, and the compiled LALR table.
//
// A Runtime has no mutable state after New/Load returns and may be shared
// read-only across any number of sessions without locking.
type Runtime struct {
	Flavor    string
	Terminals []*TerminalDef
	Table     *Table
	Indenter  *IndenterConfig

	ignore *regexp.Regexp
}

// New builds a Runtime directly from in-memory definitions, bypassing the
// YAML file format entirely, for callers that already hold terminal
// definitions and a compiled table in memory. Load and DecodeRuntime build
// their Runtime through it.
func New(terminals []*TerminalDef, table *Table, ignorePattern string, opts ...Option) (*Runtime, error) {
	o := options{flavor: "lalr"}
	for _, opt := range opts {
		opt(&o)
	}
	if o.flavor != "lalr" {
		return nil, ErrUnsupportedFlavor
	}
	for _, t := range terminals {
		if err := t.compile(); err != nil {
			return nil, err
		}
	}
	var ignoreRe *regexp.Regexp
	if ignorePattern != "" {
		re, err := regexp.Compile(`\A(?:` + ignorePattern + `)`)
		if err != nil {
			return nil, err
		}
		ignoreRe = re
	}
	return &Runtime{
		Flavor:    o.flavor,
		Terminals: terminals,
		Table:     table,
		Indenter:  o.indenter,
		ignore:    ignoreRe,
	}, nil
}

// Alphabet returns the terminal names this grammar's table may reference as
// a lookahead, including the reserved token.EOF marker and, when an indenter
// is configured, its synthetic INDENT and DEDENT terminals.
func (r *Runtime) Alphabet() []token.Terminal {
	out := make([]token.Terminal, 0, len(r.Terminals)+3)
	for _, t := range r.Terminals {
		out = append(out, t.Name)
	}
	if r.Indenter != nil {
		out = append(out, r.Indenter.IndentTerminal, r.Indenter.DedentTerminal)
	}
	out = append(out, token.EOF)
	return out
}

// SkipIgnore returns the number of bytes at the head of s that match the
// grammar's ignore pattern (whitespace, comments, ...), or 0 if there is no
// ignore pattern or it does not match.
func (r *Runtime) SkipIgnore(s string) int {
	if r.ignore == nil {
		return 0
	}
	loc := r.ignore.FindStringIndex(s)
	if loc == nil {
		return 0
	}
	return loc[1]
}

// MatchLongest finds the terminal that matches the longest prefix of s. On a
// tie, the terminal declared earliest in the grammar wins, matching the
// grammar compiler this core was modeled on: declaration order (see
// DESIGN.md Open Questions).
//
// It returns the matching TerminalDef and the matched length, or (nil, 0) if
// no terminal matches at all.
func (r *Runtime) MatchLongest(s string) (*TerminalDef, int) {
	var best *TerminalDef
	bestLen := 0
	for _, t := range r.Terminals {
		if n := t.match(s); n > bestLen {
			best, bestLen = t, n
		}
	}
	return best, bestLen
}
