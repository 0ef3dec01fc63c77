// Package jsparse is the thin adapter around go-fast's parser and
// generator: Parse(src) -> tree, Print(tree) -> src. It exists only so the
// rest of the module depends on one place for both directions.
package jsparse

import (
	fastgen "github.com/t14raptor/go-fast/generator"
	"github.com/t14raptor/go-fast/parser"

	"github.com/t14raptor/go-fast/ast"
)

// Parse produces a tree from source. The returned error, when non-nil, is
// the caller's cue to wrap it as a ParseError; the parser is expected to
// run in error-recovery mode and only fail outright on input it cannot
// recover from at all.
func Parse(source string) (*ast.Program, error) {
	return parser.ParseFile(source)
}

// Print emits source from a tree. fastgen.Generate never returns an error,
// so this adapter's printer is total by construction.
func Print(p *ast.Program) string {
	return fastgen.Generate(p)
}
