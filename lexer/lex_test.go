package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/db47h/increparse/grammar"
	"github.com/db47h/increparse/lexer"
	"github.com/db47h/increparse/token"
)

func exprRuntime(t *testing.T) *grammar.Runtime {
	t.Helper()
	rt, err := grammar.Load("../grammar/testdata/expr.grammar.yaml")
	require.NoError(t, err)
	return rt
}

func TestLexFullBuffer(t *testing.T) {
	rt := exprRuntime(t)
	res := lexer.Lex(rt, "a + b")
	require.Len(t, res.Tokens, 3)
	require.Equal(t, token.Terminal("NAME"), res.Tokens[0].Type)
	require.Equal(t, "a", res.Tokens[0].Value)
	require.Equal(t, token.Terminal("PLUS"), res.Tokens[1].Type)
	require.Equal(t, token.Terminal("NAME"), res.Tokens[2].Type)
	require.Equal(t, "b", res.Tokens[2].Value)
	require.Equal(t, len("a + b"), res.Pos)
}

func TestLexStopsAtUnmatchedCharacter(t *testing.T) {
	rt := exprRuntime(t)
	res := lexer.Lex(rt, "a + 1")
	require.Len(t, res.Tokens, 2)
	require.Equal(t, 4, res.Pos) // stops right before the '1'
}

func TestLexDoesNotExtendPosThroughTrailingWhitespace(t *testing.T) {
	rt := exprRuntime(t)
	res := lexer.Lex(rt, "a ")
	require.Len(t, res.Tokens, 1)
	require.Equal(t, 1, res.Pos) // not 2: trailing space alone never advances Pos
}

func TestTrimmedRemainder(t *testing.T) {
	require.Equal(t, "", lexer.TrimmedRemainder("a ", 1))
	require.Equal(t, "1", lexer.TrimmedRemainder("a + 1", 4))
}
