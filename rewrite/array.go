// Package rewrite implements the inliner passes: tree walkers that mutate
// nodes in place. Every walker follows the same shape: embed
// ast.NoopVisitor, override VisitExpression, call n.VisitChildrenWith(v)
// first so children rewrite before parents, then switch on n.Expr's
// concrete type and possibly replace it.
package rewrite

import (
	"github.com/guapier/jsdeobfuscator/discover"
	"github.com/guapier/jsdeobfuscator/literal"
	"github.com/t14raptor/go-fast/ast"
)

// ConstantArrayAccess replaces every computed member expression `ID[IDX]`,
// where ID names a known ConstantArray and IDX evaluates to an in-range
// nonnegative integer, with a literal node built from the array's element.
func ConstantArrayAccess(p *ast.Program, arrays map[string]*discover.ConstantArray) int {
	v := &arrayAccessVisitor{arrays: arrays}
	v.V = v
	p.VisitWith(v)
	return v.changes
}

type arrayAccessVisitor struct {
	ast.NoopVisitor
	arrays  map[string]*discover.ConstantArray
	changes int
}

func (v *arrayAccessVisitor) VisitExpression(n *ast.Expression) {
	n.VisitChildrenWith(v)

	mem, ok := n.Expr.(*ast.MemberExpression)
	if !ok {
		return
	}
	id, ok := mem.Object.Expr.(*ast.Identifier)
	if !ok {
		return
	}
	arr, ok := v.arrays[id.Name]
	if !ok {
		return
	}

	idxName, idxIsComputed := memberComputedExpr(mem.Property)
	if !idxIsComputed {
		return
	}

	idxVal, ok := literal.Eval(idxName)
	if !ok || idxVal.Kind != literal.Number {
		return
	}
	idx := int(idxVal.Num)
	if float64(idx) != idxVal.Num || idx < 0 || idx >= len(arr.Elements) {
		return
	}

	node, ok := literal.Materialize(arr.Elements[idx])
	if !ok {
		return
	}
	n.Expr = node
	v.changes++
}

// memberComputedExpr returns the underlying expression of a computed member
// property (`obj[expr]`) regardless of what kind of expression it is. Array
// indices can be arbitrary expressions, not just identifiers or string
// literals, so astutil's narrower name-only helpers don't apply here.
func memberComputedExpr(mp *ast.MemberProperty) (ast.Expr, bool) {
	if mp == nil || mp.Prop == nil {
		return nil, false
	}
	cp, ok := mp.Prop.(*ast.ComputedProperty)
	if !ok || cp.Expr == nil || cp.Expr.Expr == nil {
		return nil, false
	}
	return cp.Expr.Expr, true
}
