package rewrite

import (
	"github.com/guapier/jsdeobfuscator/discover"
	"github.com/guapier/jsdeobfuscator/literal"
	"github.com/t14raptor/go-fast/ast"
)

// DecoderCall replaces every call to the known decoder identifier whose
// single argument evaluates to an in-range nonnegative integer with the
// corresponding string-table entry.
func DecoderCall(p *ast.Program, table *discover.StringTable) int {
	if table == nil || table.Decoder == "" {
		return 0
	}
	v := &decoderCallVisitor{decoder: table.Decoder, entries: table.Entries}
	v.V = v
	p.VisitWith(v)
	return v.changes
}

type decoderCallVisitor struct {
	ast.NoopVisitor
	decoder string
	entries []string
	changes int
}

func (v *decoderCallVisitor) VisitExpression(n *ast.Expression) {
	n.VisitChildrenWith(v)

	call, ok := n.Expr.(*ast.CallExpression)
	if !ok || len(call.ArgumentList) != 1 {
		return
	}
	callee, ok := call.Callee.Expr.(*ast.Identifier)
	if !ok || callee.Name != v.decoder {
		return
	}

	idxVal, ok := literal.EvalExpr(&call.ArgumentList[0])
	if !ok || idxVal.Kind != literal.Number {
		return
	}
	idx := int(idxVal.Num)
	if float64(idx) != idxVal.Num || idx < 0 || idx >= len(v.entries) {
		return
	}

	n.Expr = &ast.StringLiteral{Value: v.entries[idx]}
	v.changes++
}
