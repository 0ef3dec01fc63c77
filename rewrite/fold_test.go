package rewrite

import (
	"testing"

	"github.com/t14raptor/go-fast/ast"
	"github.com/t14raptor/go-fast/token"
)

func wrap(e ast.Expr) *ast.Expression { return &ast.Expression{Expr: e} }

func TestConstantFoldStringConcat(t *testing.T) {
	p := &ast.Program{
		Body: []ast.Statement{
			{Stmt: &ast.ExpressionStatement{
				Expression: wrap(&ast.BinaryExpression{
					Operator: token.Plus,
					Left: wrap(&ast.BinaryExpression{
						Operator: token.Plus,
						Left:     wrap(&ast.StringLiteral{Value: "foo"}),
						Right:    wrap(&ast.StringLiteral{Value: "bar"}),
					}),
					Right: wrap(&ast.StringLiteral{Value: "baz"}),
				}),
			}},
		},
	}

	changes := ConstantFold(p)
	if changes == 0 {
		t.Fatal("expected at least one fold")
	}

	result, ok := p.Body[0].Stmt.(*ast.ExpressionStatement).Expression.Expr.(*ast.StringLiteral)
	if !ok || result.Value != "foobarbaz" {
		t.Fatalf("expected foobarbaz, got %#v", p.Body[0].Stmt.(*ast.ExpressionStatement).Expression.Expr)
	}
}

func TestConstantFoldReachesFixedPoint(t *testing.T) {
	p := &ast.Program{
		Body: []ast.Statement{
			{Stmt: &ast.ExpressionStatement{
				Expression: wrap(&ast.NumberLiteral{Value: 5}),
			}},
		},
	}
	if changes := ConstantFold(p); changes != 0 {
		t.Fatalf("expected zero changes on an already-folded tree, got %d", changes)
	}
}

func TestConstantFoldVoidZeroIsFixedPoint(t *testing.T) {
	p := &ast.Program{
		Body: []ast.Statement{
			{Stmt: &ast.ExpressionStatement{
				Expression: wrap(&ast.UnaryExpression{
					Operator: token.Void,
					Operand:  wrap(&ast.NumberLiteral{Value: 0}),
				}),
			}},
		},
	}
	if changes := ConstantFold(p); changes != 0 {
		t.Fatalf("expected void 0 to stay untouched, got %d changes", changes)
	}
}

func TestConstantFoldNegativeLiteralIsFixedPoint(t *testing.T) {
	p := &ast.Program{
		Body: []ast.Statement{
			{Stmt: &ast.ExpressionStatement{
				Expression: wrap(&ast.UnaryExpression{
					Operator: token.Minus,
					Operand:  wrap(&ast.NumberLiteral{Value: 5}),
				}),
			}},
		},
	}
	if changes := ConstantFold(p); changes != 0 {
		t.Fatalf("expected -5 to stay untouched, got %d changes", changes)
	}
}
