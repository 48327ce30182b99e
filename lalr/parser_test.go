package lalr_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/db47h/increparse/grammar"
	"github.com/db47h/increparse/lalr"
	"github.com/db47h/increparse/token"
)

func exprTable() *grammar.Table {
	return &grammar.Table{
		Start: 0,
		Action: map[int]map[token.Terminal]grammar.Action{
			0: {"NAME": {Kind: grammar.ActionShift, Target: 1}},
			1: {
				"PLUS":    {Kind: grammar.ActionShift, Target: 2},
				token.EOF: {Kind: grammar.ActionAccept},
			},
			2: {"NAME": {Kind: grammar.ActionShift, Target: 1}},
		},
		Goto: map[int]map[string]int{},
	}
}

func TestFeedAcceptsSequence(t *testing.T) {
	p := lalr.New(exprTable())
	alphabet := []token.Terminal{"NAME", "PLUS", token.EOF}

	acc := p.Accepts(alphabet)
	require.Contains(t, acc, token.Terminal("NAME"))
	require.NotContains(t, acc, token.Terminal("PLUS"))

	require.NoError(t, p.Feed(token.Token{Type: "NAME", Value: "a"}))
	acc = p.Accepts(alphabet)
	require.Contains(t, acc, token.Terminal("PLUS"))
	require.Contains(t, acc, token.EOF)
	require.NotContains(t, acc, token.Terminal("NAME"))

	require.NoError(t, p.Feed(token.Token{Type: "PLUS", Value: "+"}))
	acc = p.Accepts(alphabet)
	require.Contains(t, acc, token.Terminal("NAME"))
	require.NotContains(t, acc, token.EOF)
}

func TestFeedUnexpectedTokenLeavesStateUnchanged(t *testing.T) {
	p := lalr.New(exprTable())
	require.NoError(t, p.Feed(token.Token{Type: "NAME", Value: "a"}))

	before := p.Clone()
	err := p.Feed(token.Token{Type: "NAME", Value: "b"})
	require.ErrorIs(t, err, lalr.ErrUnexpectedToken)

	var unexpected *lalr.UnexpectedTokenError
	require.ErrorAs(t, err, &unexpected)
	require.Equal(t, token.Terminal("NAME"), unexpected.Token.Type)

	after := p.Accepts([]token.Terminal{"NAME", "PLUS", token.EOF})
	beforeAccepts := before.Accepts([]token.Terminal{"NAME", "PLUS", token.EOF})
	require.Equal(t, beforeAccepts, after)
}

func TestCloneRestoreIndependence(t *testing.T) {
	p := lalr.New(exprTable())
	require.NoError(t, p.Feed(token.Token{Type: "NAME", Value: "a"}))

	snap := p.Clone()
	require.NoError(t, p.Feed(token.Token{Type: "PLUS", Value: "+"}))
	require.NoError(t, p.Feed(token.Token{Type: "NAME", Value: "b"}))

	// snap must still reflect the state right after "a", unaffected by the
	// two further Feed calls on p.
	acc := snap.Accepts([]token.Terminal{"NAME", "PLUS", token.EOF})
	require.Contains(t, acc, token.Terminal("PLUS"))
	require.NotContains(t, acc, token.Terminal("NAME"))

	restored := lalr.New(exprTable())
	restored.Restore(snap)
	require.NoError(t, restored.Feed(token.Token{Type: "PLUS", Value: "+"}))
	acc = restored.Accepts([]token.Terminal{"NAME", "PLUS", token.EOF})
	require.Contains(t, acc, token.Terminal("NAME"))
}
