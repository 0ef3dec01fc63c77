package discover

import (
	"github.com/guapier/jsdeobfuscator/literal"
	"github.com/t14raptor/go-fast/ast"
)

// findArrays collects every variable declarator whose initializer is an
// all-literal array of length >= 10. Arrays with any non-evaluable element
// are rejected entirely; short arrays are too common in ordinary code to be
// obfuscation artifacts.
func findArrays(p *ast.Program) map[string]*ConstantArray {
	f := &arrayFinder{out: make(map[string]*ConstantArray)}
	f.V = f
	p.VisitWith(f)
	return f.out
}

type arrayFinder struct {
	ast.NoopVisitor
	out map[string]*ConstantArray
}

func (v *arrayFinder) VisitStatement(n *ast.Statement) {
	n.VisitChildrenWith(v)

	decl, ok := n.Stmt.(*ast.VariableDeclaration)
	if !ok {
		return
	}
	for _, d := range decl.List {
		if d.Initializer == nil || d.Target == nil || d.Target.Target == nil {
			continue
		}
		id, ok := d.Target.Target.(*ast.Identifier)
		if !ok {
			continue
		}
		arrLit, ok := d.Initializer.Expr.(*ast.ArrayLiteral)
		if !ok {
			continue
		}
		v.captureArray(id.Name, arrLit)
	}
}

func (v *arrayFinder) captureArray(name string, arr *ast.ArrayLiteral) {
	if len(arr.Value) < 10 {
		return
	}
	elems := make([]literal.Value, 0, len(arr.Value))
	for i := range arr.Value {
		val, ok := literal.EvalExpr(&arr.Value[i])
		if !ok {
			return
		}
		elems = append(elems, val)
	}
	v.out[name] = &ConstantArray{Name: name, Elements: elems}
}
