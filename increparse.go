package increparse

import (
	"github.com/db47h/increparse/grammar"
	"github.com/db47h/increparse/session"
)

// Open loads the grammar file at path and returns a fresh Session over it.
// It is a shorthand for grammar.Load followed by session.New; gramOpts are
// forwarded to grammar.Load, sessOpts to session.New.
func Open(path string, gramOpts []grammar.Option, sessOpts []session.Option) (*session.Session, error) {
	rt, err := grammar.Load(path, gramOpts...)
	if err != nil {
		return nil, err
	}
	return session.New(rt, sessOpts...), nil
}
