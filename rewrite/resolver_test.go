package rewrite

import (
	"testing"

	"github.com/guapier/jsdeobfuscator/discover"
	"github.com/t14raptor/go-fast/ast"
)

func TestGlobalResolverCallInlinesAllowedTarget(t *testing.T) {
	resolvers := []*discover.GlobalResolver{
		{Name: "R", Map: map[string]string{"D": "Date", "C": "console"}},
	}
	call := &ast.CallExpression{
		Callee:       wrap(&ast.Identifier{Name: "R"}),
		ArgumentList: []ast.Expression{*wrap(&ast.StringLiteral{Value: "D"})},
	}
	p := &ast.Program{Body: []ast.Statement{
		{Stmt: &ast.ExpressionStatement{Expression: wrap(call)}},
	}}

	if changes := GlobalResolverCall(p, resolvers); changes != 1 {
		t.Fatalf("expected 1 change, got %d", changes)
	}
	id, ok := p.Body[0].Stmt.(*ast.ExpressionStatement).Expression.Expr.(*ast.Identifier)
	if !ok || id.Name != "Date" {
		t.Fatalf("expected identifier Date, got %#v", p.Body[0].Stmt.(*ast.ExpressionStatement).Expression.Expr)
	}
}

func TestGlobalResolverCallRejectsTargetOutsideAllowList(t *testing.T) {
	resolvers := []*discover.GlobalResolver{
		{Name: "R", Map: map[string]string{"S": "someInternalHelper"}},
	}
	call := &ast.CallExpression{
		Callee:       wrap(&ast.Identifier{Name: "R"}),
		ArgumentList: []ast.Expression{*wrap(&ast.StringLiteral{Value: "S"})},
	}
	p := &ast.Program{Body: []ast.Statement{
		{Stmt: &ast.ExpressionStatement{Expression: wrap(call)}},
	}}

	if changes := GlobalResolverCall(p, resolvers); changes != 0 {
		t.Fatalf("expected no change for a target outside the allow-list, got %d", changes)
	}
}
