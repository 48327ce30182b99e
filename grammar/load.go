package grammar

import (
	"fmt"

	"github.com/db47h/increparse/internal/config"
	"github.com/db47h/increparse/token"
)

// Load reads a grammar file from path, compiles its terminal matchers, and
// returns a ready-to-use Runtime. Load and DecodeRuntime are the only places
// a GrammarLoadFailure (ErrGrammarLoad) can originate; it is always returned
// to the caller, never swallowed.
func Load(path string, opts ...Option) (*Runtime, error) {
	g, err := config.LoadGrammar(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGrammarLoad, err)
	}
	return build(g, opts...)
}

// DecodeRuntime builds a Runtime from an in-memory grammar document,
// primarily so tests and embedded callers can avoid a temp file.
func DecodeRuntime(doc []byte, opts ...Option) (*Runtime, error) {
	g, err := config.DecodeGrammar(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGrammarLoad, err)
	}
	return build(g, opts...)
}

func build(g *config.Grammar, opts ...Option) (*Runtime, error) {
	flavor := g.Flavor
	if flavor == "" {
		flavor = "lalr"
	}
	fileOpts := []Option{WithFlavor(flavor)}
	if g.Indenter != nil {
		fileOpts = append(fileOpts, WithIndenter(IndenterConfig{
			NewlineTerminal: token.Terminal(g.Indenter.NewlineTerminal),
			IndentTerminal:  token.Terminal(g.Indenter.IndentTerminal),
			DedentTerminal:  token.Terminal(g.Indenter.DedentTerminal),
		}))
	}
	fileOpts = append(fileOpts, opts...)

	terminals := make([]*TerminalDef, 0, len(g.Terminals))
	for _, ts := range g.Terminals {
		kind, err := parseKind(ts.Kind)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrGrammarLoad, err)
		}
		terminals = append(terminals, &TerminalDef{
			Name:    token.Terminal(ts.Name),
			Kind:    kind,
			Pattern: ts.Pattern,
			Words:   ts.Words,
		})
	}

	table := &Table{
		Start:       g.Start,
		Action:      make(map[int]map[token.Terminal]Action),
		Goto:        make(map[int]map[string]int),
		Productions: make([]Production, len(g.Productions)),
	}
	for i, p := range g.Productions {
		table.Productions[i] = Production{LHS: p.LHS, RHSLen: p.RHSLen}
	}
	for _, a := range g.Action {
		kind, err := parseActionKind(a.Kind)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrGrammarLoad, err)
		}
		row, ok := table.Action[a.State]
		if !ok {
			row = make(map[token.Terminal]Action)
			table.Action[a.State] = row
		}
		row[token.Terminal(a.Terminal)] = Action{Kind: kind, Target: a.Target}
	}
	for _, gt := range g.Goto {
		row, ok := table.Goto[gt.State]
		if !ok {
			row = make(map[string]int)
			table.Goto[gt.State] = row
		}
		row[gt.Nonterminal] = gt.Target
	}

	rt, err := New(terminals, table, g.Ignore, fileOpts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGrammarLoad, err)
	}
	return rt, nil
}

func parseKind(s string) (Kind, error) {
	switch s {
	case "literal":
		return Literal, nil
	case "regex":
		return Regex, nil
	case "wordset":
		return Wordset, nil
	case "builtin":
		return Builtin, nil
	default:
		return 0, fmt.Errorf("unknown terminal kind %q", s)
	}
}

func parseActionKind(s string) (ActionKind, error) {
	switch s {
	case "shift":
		return ActionShift, nil
	case "reduce":
		return ActionReduce, nil
	case "accept":
		return ActionAccept, nil
	default:
		return 0, fmt.Errorf("unknown action kind %q", s)
	}
}
