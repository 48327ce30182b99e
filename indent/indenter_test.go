package indent_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/db47h/increparse/grammar"
	"github.com/db47h/increparse/indent"
	"github.com/db47h/increparse/token"
)

var cfg = grammar.IndenterConfig{
	NewlineTerminal: "NEWLINE",
	IndentTerminal:  "INDENT",
	DedentTerminal:  "DEDENT",
}

func nl(col int) token.Token {
	return token.Token{Type: "NEWLINE", Value: "\n" + strings.Repeat(" ", col)}
}

func name(v string) token.Token {
	return token.Token{Type: "NAME", Value: v}
}

func TestApplyIndentAndDedent(t *testing.T) {
	raw := []token.Token{
		name("a"),
		nl(2),
		name("b"),
		nl(0),
		name("c"),
	}
	res := indent.Apply(cfg, raw)

	var types []token.Terminal
	for _, tok := range res.Tokens {
		types = append(types, tok.Type)
	}
	require.Equal(t, []token.Terminal{"NAME", "INDENT", "NAME", "DEDENT", "NAME"}, types)
}

func TestApplyMultiLevelDedentQueuesOneTokenPerLevel(t *testing.T) {
	raw := []token.Token{
		name("a"),
		nl(2), // open level 2
		name("b"),
		nl(5), // open level 5
		name("c"),
		nl(8), // open level 8
		name("d"),
		nl(2), // dedent straight back to the previously opened level 2
		name("e"),
	}
	res := indent.Apply(cfg, raw)

	var types []token.Terminal
	for _, tok := range res.Tokens {
		types = append(types, tok.Type)
	}
	require.Equal(t, []token.Terminal{
		"NAME", "INDENT", "NAME", "INDENT", "NAME", "INDENT",
		"NAME", "DEDENT", "DEDENT", "NAME",
	}, types)
}

func TestApplySameLevelNewlineDropped(t *testing.T) {
	raw := []token.Token{name("a"), nl(0), name("b")}
	res := indent.Apply(cfg, raw)
	require.Len(t, res.Tokens, 2)
}

func TestStackAtTracksOpenWidths(t *testing.T) {
	raw := []token.Token{name("a"), nl(2), name("b")}
	res := indent.Apply(cfg, raw)
	// index 0: "a", stack still empty (indent width not yet opened)
	require.Empty(t, res.StackAt[0])
	// index 2: "b" after INDENT, stack has one open level at width 2
	require.Equal(t, indent.Stack{2}, res.StackAt[2])
}
