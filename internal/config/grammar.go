package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// TerminalSpec is the on-disk description of one grammar terminal.
type TerminalSpec struct {
	Name    string   `yaml:"name"`
	Kind    string   `yaml:"kind"` // "literal", "regex", "wordset", or "builtin"
	Pattern string   `yaml:"pattern,omitempty"`
	Words   []string `yaml:"words,omitempty"`
}

// ActionSpec is one row of the on-disk action table.
type ActionSpec struct {
	State    int    `yaml:"state"`
	Terminal string `yaml:"terminal"`
	Kind     string `yaml:"kind"` // "shift", "reduce", or "accept"
	Target   int    `yaml:"target"`
}

// GotoSpec is one row of the on-disk goto table.
type GotoSpec struct {
	State       int    `yaml:"state"`
	Nonterminal string `yaml:"nonterminal"`
	Target      int    `yaml:"target"`
}

// ProductionSpec is one on-disk grammar production, reduced to what the
// table-driven walk needs.
type ProductionSpec struct {
	LHS    string `yaml:"lhs"`
	RHSLen int    `yaml:"rhs_len"`
}

// IndenterSpec configures the optional post-lexing indentation filter.
type IndenterSpec struct {
	NewlineTerminal string `yaml:"newline_terminal"`
	IndentTerminal  string `yaml:"indent_terminal"`
	DedentTerminal  string `yaml:"dedent_terminal"`
}

// Grammar is the decoded form of a grammar file.
type Grammar struct {
	Flavor      string           `yaml:"flavor"`
	Start       int              `yaml:"start"`
	Ignore      string           `yaml:"ignore,omitempty"`
	Terminals   []TerminalSpec   `yaml:"terminals"`
	Productions []ProductionSpec `yaml:"productions"`
	Action      []ActionSpec     `yaml:"action"`
	Goto        []GotoSpec       `yaml:"goto"`
	Indenter    *IndenterSpec    `yaml:"indenter,omitempty"`
}

// LoadGrammar reads and decodes a grammar file from path.
func LoadGrammar(path string) (*Grammar, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading grammar file %s: %w", path, err)
	}
	return DecodeGrammar(b)
}

// DecodeGrammar decodes a grammar document already in memory.
func DecodeGrammar(b []byte) (*Grammar, error) {
	var g Grammar
	if err := yaml.Unmarshal(b, &g); err != nil {
		return nil, fmt.Errorf("decoding grammar: %w", err)
	}
	return &g, nil
}
