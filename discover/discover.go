package discover

import "github.com/t14raptor/go-fast/ast"

// Run performs the one-shot artifact scan, producing the Discovery state
// every later pass reads. rawSource is needed only for the string-table
// decoder's textual fallback strategy.
func Run(p *ast.Program, rawSource string) *Discovery {
	d := newDiscovery()
	d.Arrays = findArrays(p)
	d.Table = findStringTable(p, rawSource)
	d.Resolvers = findResolvers(p)
	return d
}
