// Package astutil holds small helpers for reading the go-fast ECMAScript
// AST that every pass in discover/ and rewrite/ needs: pulling a property
// name off a member expression, walking into a function's single parameter,
// finding the first return in a statement list, and so on.
package astutil

import "github.com/t14raptor/go-fast/ast"

// MemberPropName returns the static property name of a member expression's
// property, whether written as a dotted identifier (obj.prop) or a computed
// string literal (obj["prop"]). It refuses to guess for any other computed
// key (obj[x]).
func MemberPropName(mp *ast.MemberProperty) (string, bool) {
	if mp == nil || mp.Prop == nil {
		return "", false
	}
	switch p := mp.Prop.(type) {
	case *ast.Identifier:
		return p.Name, true
	case *ast.ComputedProperty:
		if p.Expr == nil || p.Expr.Expr == nil {
			return "", false
		}
		if lit, ok := p.Expr.Expr.(*ast.StringLiteral); ok {
			return lit.Value, true
		}
		return "", false
	default:
		return "", false
	}
}

// LiteralKeyName reads an object-literal property key, accepting either a
// bare identifier key ({foo: 1}) or a string-literal key ({"foo": 1}).
func LiteralKeyName(keyExpr *ast.Expression) (string, bool) {
	if keyExpr == nil || keyExpr.Expr == nil {
		return "", false
	}
	switch k := keyExpr.Expr.(type) {
	case *ast.Identifier:
		return k.Name, true
	case *ast.StringLiteral:
		return k.Value, true
	default:
		return "", false
	}
}

// UnwrapSequenceTail follows a (a, b, c) sequence expression to its last
// operand, which is the value the sequence evaluates to. Non-sequence
// expressions are returned unchanged.
func UnwrapSequenceTail(expr ast.Expr) ast.Expr {
	for {
		seq, ok := expr.(*ast.SequenceExpression)
		if !ok || len(seq.Sequence) == 0 {
			return expr
		}
		expr = seq.Sequence[len(seq.Sequence)-1].Expr
	}
}

// Identifier resolves an expression to its identifier name, unwrapping a
// trailing sequence expression first (mirrors patterns like `a = (x, b)`
// seen when decoder/alias assignments are chained).
func Identifier(expr ast.Expr) (string, bool) {
	if id, ok := UnwrapSequenceTail(expr).(*ast.Identifier); ok {
		return id.Name, true
	}
	return "", false
}

// SingleParamName returns the name of a function literal's sole declared
// parameter. Functions with zero or more than one parameter are rejected,
// since every artifact this module discovers (decoder, resolver) is a
// strict single-argument function.
func SingleParamName(fn *ast.FunctionLiteral) (string, bool) {
	if fn == nil || len(fn.ParameterList) != 1 {
		return "", false
	}
	return bindingName(fn.ParameterList[0])
}

func bindingName(b *ast.Binding) (string, bool) {
	if b == nil || b.Target == nil {
		return "", false
	}
	id, ok := b.Target.(*ast.Identifier)
	if !ok {
		return "", false
	}
	return id.Name, true
}

// FirstReturn finds the first top-level return statement in a statement
// list, not descending into nested blocks or control structures. The
// shape produced by an obfuscator's generated switch-case bodies is always
// `case "x": return ...;` with the return as the case's direct statement.
func FirstReturn(stmts []ast.Statement) *ast.ReturnStatement {
	for i := range stmts {
		if ret, ok := stmts[i].Stmt.(*ast.ReturnStatement); ok {
			return ret
		}
	}
	return nil
}

// ComputedIdentifierName returns the name of a computed member property
// written as a bare identifier (`arr[idx]`), as distinct from MemberPropName
// which deliberately only resolves dotted and string-literal-computed
// property names; a variable index is never a static property name.
func ComputedIdentifierName(mp *ast.MemberProperty) (string, bool) {
	if mp == nil || mp.Prop == nil {
		return "", false
	}
	cp, ok := mp.Prop.(*ast.ComputedProperty)
	if !ok || cp.Expr == nil || cp.Expr.Expr == nil {
		return "", false
	}
	id, ok := cp.Expr.Expr.(*ast.Identifier)
	if !ok {
		return "", false
	}
	return id.Name, true
}

// TopLevelStatements returns the statement list of a function's body block,
// or nil if the function has no body (arrow expression bodies, externs).
func TopLevelStatements(fn *ast.FunctionLiteral) []ast.Statement {
	if fn == nil || fn.Body == nil {
		return nil
	}
	return fn.Body.List
}
