// Package grammar loads a compiled LALR grammar: the terminal alphabet, the
// patterns used to recognize each terminal, and the shift/reduce/goto table
// the lalr package drives one terminal at a time.
//
// A grammar is authored as a small YAML document (see internal/config) and
// decoded into a Runtime by Load. The package deliberately does not compute
// an LALR table from a BNF/EBNF description -- it consumes one that was
// already computed, exactly as the incremental parser this package supports
// consumes (rather than builds) its LALR tables. Generating tables from a
// grammar description is a useful but separate tool and is out of scope.
package grammar
