package increparse_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	increparse "github.com/db47h/increparse"
	"github.com/db47h/increparse/token"
)

func TestOpen(t *testing.T) {
	s, err := increparse.Open("grammar/testdata/expr.grammar.yaml", nil, nil)
	require.NoError(t, err)

	res := s.Advance("a")
	require.Contains(t, res.NextAcTerminals, token.Terminal("PLUS"))
	require.Equal(t, "a", res.RemainderString)
}

func TestOpenMissingGrammar(t *testing.T) {
	_, err := increparse.Open("grammar/testdata/does-not-exist.yaml", nil, nil)
	require.Error(t, err)
}
