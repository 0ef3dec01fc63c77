package rewrite

import (
	"github.com/guapier/jsdeobfuscator/literal"
	"github.com/t14raptor/go-fast/ast"
)

// ConstantFold evaluates every binary and unary expression via the literal
// evaluator on post-order exit; if evaluable, the node is replaced with the
// materialized literal. Children fold before parents, so `"a" + "b" + "c"`
// collapses fully in one walk.
func ConstantFold(p *ast.Program) int {
	v := &foldVisitor{}
	v.V = v
	p.VisitWith(v)
	return v.changes
}

type foldVisitor struct {
	ast.NoopVisitor
	changes int
}

func (v *foldVisitor) VisitExpression(n *ast.Expression) {
	n.VisitChildrenWith(v)

	switch n.Expr.(type) {
	case *ast.BinaryExpression, *ast.UnaryExpression:
	default:
		return
	}

	val, ok := literal.Eval(n.Expr)
	if !ok {
		return
	}
	node, ok := literal.Materialize(val)
	if !ok {
		return
	}
	if !sameShape(n.Expr, node) {
		n.Expr = node
		v.changes++
	}
}

// sameShape guards against ConstantFold "rewriting" a node to an
// observationally identical one every pass. `void 0` and `-5` evaluate and
// materialize back to themselves; counting those as changes would keep
// every phase running to its iteration cap.
func sameShape(a, b ast.Expr) bool {
	switch bn := b.(type) {
	case *ast.NumberLiteral:
		an, ok := a.(*ast.NumberLiteral)
		return ok && an.Value == bn.Value
	case *ast.StringLiteral:
		an, ok := a.(*ast.StringLiteral)
		return ok && an.Value == bn.Value
	case *ast.BooleanLiteral:
		an, ok := a.(*ast.BooleanLiteral)
		return ok && an.Value == bn.Value
	case *ast.NullLiteral:
		_, ok := a.(*ast.NullLiteral)
		return ok
	case *ast.UnaryExpression:
		an, ok := a.(*ast.UnaryExpression)
		if !ok || an.Operator != bn.Operator {
			return false
		}
		if an.Operand == nil || bn.Operand == nil {
			return false
		}
		return sameShape(an.Operand.Expr, bn.Operand.Expr)
	default:
		return false
	}
}
