package discover

import (
	"github.com/guapier/jsdeobfuscator/astutil"
	"github.com/t14raptor/go-fast/ast"
)

// findResolvers locates global-resolver functions: every function
// declaration or named function expression containing a switch on its sole
// parameter, with >= 5 cases that validly map a string label to a
// host/language global name, becomes a GlobalResolver.
func findResolvers(p *ast.Program) []*GlobalResolver {
	f := &resolverFinder{}
	f.V = f
	p.VisitWith(f)
	return f.out
}

type resolverFinder struct {
	ast.NoopVisitor
	out []*GlobalResolver
}

func (v *resolverFinder) VisitStatement(n *ast.Statement) {
	n.VisitChildrenWith(v)

	fnDecl, ok := n.Stmt.(*ast.FunctionDeclaration)
	if !ok || fnDecl.Function == nil || fnDecl.Function.Name == nil {
		return
	}
	v.tryCapture(fnDecl.Function.Name.Name, fnDecl.Function)
}

func (v *resolverFinder) VisitExpression(n *ast.Expression) {
	n.VisitChildrenWith(v)

	fn, ok := n.Expr.(*ast.FunctionLiteral)
	if !ok || fn.Name == nil {
		return
	}
	v.tryCapture(fn.Name.Name, fn)
}

func (v *resolverFinder) tryCapture(name string, fn *ast.FunctionLiteral) {
	param, ok := astutil.SingleParamName(fn)
	if !ok {
		return
	}

	stmts := astutil.TopLevelStatements(fn)
	mapping := make(map[string]string)

	for i := range stmts {
		sw, ok := stmts[i].Stmt.(*ast.SwitchStatement)
		if !ok {
			continue
		}
		if !discriminantIsIdentifier(sw.Discriminant, param) {
			continue
		}
		for _, c := range sw.Body {
			if c.Test == nil || c.Test.Expr == nil {
				continue
			}
			label, ok := c.Test.Expr.(*ast.StringLiteral)
			if !ok {
				continue
			}
			ret := astutil.FirstReturn(c.Consequent)
			if ret == nil || ret.Argument == nil {
				continue
			}
			if target, ok := resolverTargetName(ret.Argument.Expr); ok {
				mapping[label.Value] = target
			}
		}
	}

	if len(mapping) >= 5 {
		v.out = append(v.out, &GlobalResolver{Name: name, Map: mapping})
	}
}

func discriminantIsIdentifier(e *ast.Expression, name string) bool {
	if e == nil || e.Expr == nil {
		return false
	}
	id, ok := e.Expr.(*ast.Identifier)
	return ok && id.Name == name
}

// resolverTargetName reads a switch-case return value's target: a member
// access `OBJ["NAME"]`/`OBJ.NAME`, or a bare identifier.
func resolverTargetName(e ast.Expr) (string, bool) {
	switch n := e.(type) {
	case *ast.Identifier:
		return n.Name, true
	case *ast.MemberExpression:
		return astutil.MemberPropName(n.Property)
	default:
		return "", false
	}
}
