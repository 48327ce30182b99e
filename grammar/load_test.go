package grammar_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/db47h/increparse/grammar"
	"github.com/db47h/increparse/token"
)

func TestLoadExprGrammar(t *testing.T) {
	rt, err := grammar.Load("testdata/expr.grammar.yaml")
	require.NoError(t, err)
	require.Equal(t, "lalr", rt.Flavor)
	require.Len(t, rt.Terminals, 2)

	alphabet := rt.Alphabet()
	require.Contains(t, alphabet, token.Terminal("NAME"))
	require.Contains(t, alphabet, token.Terminal("PLUS"))
	require.Contains(t, alphabet, token.EOF)
}

func TestMatchLongest(t *testing.T) {
	rt, err := grammar.Load("testdata/expr.grammar.yaml")
	require.NoError(t, err)

	def, n := rt.MatchLongest("abc + def")
	require.NotNil(t, def)
	require.Equal(t, token.Terminal("NAME"), def.Name)
	require.Equal(t, 3, n)

	require.Equal(t, 1, rt.SkipIgnore(" + def"))

	def, n = rt.MatchLongest("+ def")
	require.NotNil(t, def)
	require.Equal(t, token.Terminal("PLUS"), def.Name)
	require.Equal(t, 1, n)
}

func TestUnsupportedFlavor(t *testing.T) {
	_, err := grammar.Load("testdata/expr.grammar.yaml", grammar.WithFlavor("earley"))
	require.ErrorIs(t, err, grammar.ErrUnsupportedFlavor)
}
