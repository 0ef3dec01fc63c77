package literal

import (
	"testing"

	"github.com/t14raptor/go-fast/ast"
	"github.com/t14raptor/go-fast/token"
)

func expr(e ast.Expr) *ast.Expression { return &ast.Expression{Expr: e} }

func TestEvalNumberLiteral(t *testing.T) {
	v, ok := Eval(&ast.NumberLiteral{Value: 42})
	if !ok || v.Kind != Number || v.Num != 42 {
		t.Fatalf("got %+v, %v", v, ok)
	}
}

func TestEvalStringConcat(t *testing.T) {
	bin := &ast.BinaryExpression{
		Operator: token.Plus,
		Left:     expr(&ast.StringLiteral{Value: "foo"}),
		Right:    expr(&ast.StringLiteral{Value: "bar"}),
	}
	v, ok := Eval(bin)
	if !ok || v.Kind != String || v.Str != "foobar" {
		t.Fatalf("got %+v, %v", v, ok)
	}
}

func TestEvalNumberStringConcat(t *testing.T) {
	bin := &ast.BinaryExpression{
		Operator: token.Plus,
		Left:     expr(&ast.NumberLiteral{Value: 2}),
		Right:    expr(&ast.StringLiteral{Value: "x"}),
	}
	v, ok := Eval(bin)
	if !ok || v.Kind != String || v.Str != "2x" {
		t.Fatalf("got %+v, %v", v, ok)
	}
}

func TestEvalArithmetic(t *testing.T) {
	bin := &ast.BinaryExpression{
		Operator: token.Plus,
		Left:     expr(&ast.NumberLiteral{Value: 2}),
		Right:    expr(&ast.NumberLiteral{Value: 3}),
	}
	v, ok := Eval(bin)
	if !ok || v.Num != 5 {
		t.Fatalf("got %+v, %v", v, ok)
	}
}

func TestEvalDivisionByZeroNotEvaluable(t *testing.T) {
	bin := &ast.BinaryExpression{
		Operator: token.Slash,
		Left:     expr(&ast.NumberLiteral{Value: 1}),
		Right:    expr(&ast.NumberLiteral{Value: 0}),
	}
	_, ok := Eval(bin)
	if ok {
		t.Fatal("expected division by zero to be not-evaluable")
	}
}

func TestEvalVoidIsUndefinedRegardlessOfOperand(t *testing.T) {
	un := &ast.UnaryExpression{
		Operator: token.Void,
		Operand:  expr(&ast.CallExpression{}),
	}
	v, ok := Eval(un)
	if !ok || v.Kind != Undefined {
		t.Fatalf("got %+v, %v", v, ok)
	}
}

func TestEvalUnaryNotTruthiness(t *testing.T) {
	un := &ast.UnaryExpression{
		Operator: token.Not,
		Operand:  expr(&ast.NumberLiteral{Value: 0}),
	}
	v, ok := Eval(un)
	if !ok || v.Kind != Boolean || !v.Bool {
		t.Fatalf("got %+v, %v", v, ok)
	}
}

func TestMaterializeNegativeNumber(t *testing.T) {
	node, ok := Materialize(Num(-5))
	if !ok {
		t.Fatal("expected materialization to succeed")
	}
	un, ok := node.(*ast.UnaryExpression)
	if !ok || un.Operator != token.Minus {
		t.Fatalf("expected unary minus, got %#v", node)
	}
	num, ok := un.Operand.Expr.(*ast.NumberLiteral)
	if !ok || num.Value != 5 {
		t.Fatalf("expected positive 5 operand, got %#v", un.Operand.Expr)
	}
}

func TestMaterializeUndefinedIsVoidZero(t *testing.T) {
	node, ok := Materialize(Undef())
	if !ok {
		t.Fatal("expected materialization to succeed")
	}
	un, ok := node.(*ast.UnaryExpression)
	if !ok || un.Operator != token.Void {
		t.Fatalf("expected void operator, got %#v", node)
	}
}

func TestMaterializeNonFiniteRefused(t *testing.T) {
	zero := 0.0
	if _, ok := Materialize(Num(1.0 / zero)); ok {
		t.Fatal("expected Infinity to be refused")
	}
}
