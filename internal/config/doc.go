// Package config decodes grammar description files. A grammar file is a
// YAML document listing the terminal alphabet (with its lexing patterns),
// an optional ignore pattern, and a precomputed LALR action/goto table.
//
// This is the configuration layer every production repository in this
// family carries as a dedicated, tested package rather than ad hoc
// flag/env parsing; here its only client is the grammar package (Load and
// DecodeRuntime).
package config
