package rewrite

import (
	"github.com/guapier/jsdeobfuscator/discover"
	"github.com/t14raptor/go-fast/ast"
)

// GlobalResolverCall replaces, for each discovered resolver, every call
// `NAME("KEY")` whose key is in the resolver's map and whose mapped target
// is in AllowList with a bare identifier naming that target. Unknown keys
// and targets outside the allow-list stay untouched.
func GlobalResolverCall(p *ast.Program, resolvers []*discover.GlobalResolver) int {
	if len(resolvers) == 0 {
		return 0
	}
	byName := make(map[string]*discover.GlobalResolver, len(resolvers))
	for _, r := range resolvers {
		byName[r.Name] = r
	}
	v := &resolverCallVisitor{resolvers: byName}
	v.V = v
	p.VisitWith(v)
	return v.changes
}

type resolverCallVisitor struct {
	ast.NoopVisitor
	resolvers map[string]*discover.GlobalResolver
	changes   int
}

func (v *resolverCallVisitor) VisitExpression(n *ast.Expression) {
	n.VisitChildrenWith(v)

	call, ok := n.Expr.(*ast.CallExpression)
	if !ok || len(call.ArgumentList) != 1 {
		return
	}
	callee, ok := call.Callee.Expr.(*ast.Identifier)
	if !ok {
		return
	}
	resolver, ok := v.resolvers[callee.Name]
	if !ok {
		return
	}
	keyLit, ok := call.ArgumentList[0].Expr.(*ast.StringLiteral)
	if !ok {
		return
	}
	target, ok := resolver.Map[keyLit.Value]
	if !ok || !AllowList[target] {
		return
	}

	n.Expr = &ast.Identifier{Name: target}
	v.changes++
}
