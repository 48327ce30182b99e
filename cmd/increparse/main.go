// Command increparse is a thin CLI harness over the library: it loads a
// grammar file, reads a buffer from a file or stdin, and prints the
// resulting ParseResult.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/db47h/increparse/grammar"
	"github.com/db47h/increparse/internal/telemetry"
	"github.com/db47h/increparse/session"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "increparse: %s\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		grammarPath  string
		inputPath    string
		flavor       string
		pretty       bool
		debugLogging bool
	)
	flag.StringVar(&grammarPath, "grammar", "", "path to a grammar YAML file (required)")
	flag.StringVar(&inputPath, "input", "", "path to the source buffer to feed (default: stdin)")
	flag.StringVar(&flavor, "flavor", "lalr", "parser flavor to require")
	flag.BoolVar(&pretty, "pretty", false, "align the remainder marker under the source line")
	flag.BoolVar(&debugLogging, "debug", false, "emit structured timing logs to stderr")
	flag.Parse()

	if grammarPath == "" {
		return fmt.Errorf("-grammar is required")
	}

	var logger *telemetry.Logger
	if debugLogging {
		zl, err := zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("building logger: %w", err)
		}
		logger = telemetry.New(zl)
	} else {
		logger = telemetry.Nop()
	}

	rt, err := grammar.Load(grammarPath, grammar.WithFlavor(flavor))
	if err != nil {
		return fmt.Errorf("loading grammar: %w", err)
	}

	buf, err := readInput(inputPath)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	s := session.New(rt, session.WithLogger(logger))
	res := s.Advance(buf)

	if pretty {
		printPretty(os.Stdout, buf, res)
		return nil
	}
	printResult(os.Stdout, res)
	return nil
}

func readInput(path string) (string, error) {
	if path == "" {
		b, err := io.ReadAll(os.Stdin)
		return string(b), err
	}
	b, err := os.ReadFile(path)
	return string(b), err
}

func printResult(w io.Writer, res session.ParseResult) {
	fmt.Fprintf(w, "next: %v\n", res.NextAcTerminals)
	fmt.Fprintf(w, "cur: %v\n", res.CurAcTerminals)
	fmt.Fprintf(w, "remainder: %s %q\n", res.RemainderState, res.RemainderString)
	if res.NextAcIndents != nil {
		fmt.Fprintf(w, "indents: %v\n", res.NextAcIndents)
	}
	fmt.Fprintf(w, "accepts_duration: %s\n", res.AcceptsDuration)
}
