package rewrite

import (
	"testing"

	"github.com/guapier/jsdeobfuscator/discover"
	"github.com/t14raptor/go-fast/ast"
)

func TestDecoderCallInlinesTableEntry(t *testing.T) {
	table := &discover.StringTable{Entries: []string{"alpha", "beta", "gamma"}, Decoder: "D"}

	call := &ast.CallExpression{
		Callee:       wrap(&ast.Identifier{Name: "D"}),
		ArgumentList: []ast.Expression{*wrap(&ast.NumberLiteral{Value: 2})},
	}
	p := &ast.Program{Body: []ast.Statement{
		{Stmt: &ast.ExpressionStatement{Expression: wrap(call)}},
	}}

	if changes := DecoderCall(p, table); changes != 1 {
		t.Fatalf("expected 1 change, got %d", changes)
	}
	str, ok := p.Body[0].Stmt.(*ast.ExpressionStatement).Expression.Expr.(*ast.StringLiteral)
	if !ok || str.Value != "gamma" {
		t.Fatalf("expected gamma, got %#v", p.Body[0].Stmt.(*ast.ExpressionStatement).Expression.Expr)
	}
}

func TestDecoderCallNoTableIsNoop(t *testing.T) {
	call := &ast.CallExpression{
		Callee:       wrap(&ast.Identifier{Name: "D"}),
		ArgumentList: []ast.Expression{*wrap(&ast.NumberLiteral{Value: 0})},
	}
	p := &ast.Program{Body: []ast.Statement{
		{Stmt: &ast.ExpressionStatement{Expression: wrap(call)}},
	}}
	if changes := DecoderCall(p, nil); changes != 0 {
		t.Fatalf("expected no change without a table, got %d", changes)
	}
}
