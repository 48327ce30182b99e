package grammar

import "github.com/db47h/increparse/token"

// IndenterConfig names the terminals the indent package needs to know about
// to post-process a token stream: which terminal carries the whitespace run
// starting a new line, and which two synthetic terminals it should emit for
// INDENT and DEDENT.
type IndenterConfig struct {
	NewlineTerminal token.Terminal
	IndentTerminal  token.Terminal
	DedentTerminal  token.Terminal
}

type options struct {
	flavor   string
	indenter *IndenterConfig
}

// Option configures a Runtime at load time.
type Option func(*options)

// WithFlavor overrides the parser flavor declared in the grammar file. Only
// "lalr" is implemented; any other value makes Load fail with
// ErrUnsupportedFlavor.
func WithFlavor(flavor string) Option {
	return func(o *options) { o.flavor = flavor }
}

// WithIndenter attaches an indentation post-lexer configuration, overriding
// whatever the grammar file declares (or supplying one for a grammar file
// that declares none).
func WithIndenter(cfg IndenterConfig) Option {
	return func(o *options) { o.indenter = &cfg }
}
