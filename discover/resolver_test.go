package discover

import (
	"testing"

	"github.com/t14raptor/go-fast/ast"
)

func TestResolverTargetNameIdentifier(t *testing.T) {
	name, ok := resolverTargetName(&ast.Identifier{Name: "Date"})
	if !ok || name != "Date" {
		t.Fatalf("got %q, %v", name, ok)
	}
}

func TestResolverTargetNameDottedMember(t *testing.T) {
	mem := &ast.MemberExpression{
		Object: &ast.Expression{Expr: &ast.Identifier{Name: "g"}},
		Property: &ast.MemberProperty{Prop: &ast.Identifier{Name: "console"}},
	}
	name, ok := resolverTargetName(mem)
	if !ok || name != "console" {
		t.Fatalf("got %q, %v", name, ok)
	}
}

func TestResolverTargetNameComputedStringMember(t *testing.T) {
	mem := &ast.MemberExpression{
		Object: &ast.Expression{Expr: &ast.Identifier{Name: "g"}},
		Property: &ast.MemberProperty{Prop: &ast.ComputedProperty{
			Expr: &ast.Expression{Expr: &ast.StringLiteral{Value: "Date"}},
		}},
	}
	name, ok := resolverTargetName(mem)
	if !ok || name != "Date" {
		t.Fatalf("got %q, %v", name, ok)
	}
}

func TestResolverTargetNameRejectsOther(t *testing.T) {
	if _, ok := resolverTargetName(&ast.NumberLiteral{Value: 1}); ok {
		t.Fatal("expected number literal to be rejected as a resolver target")
	}
}

func TestDiscriminantIsIdentifier(t *testing.T) {
	e := &ast.Expression{Expr: &ast.Identifier{Name: "k"}}
	if !discriminantIsIdentifier(e, "k") {
		t.Fatal("expected match")
	}
	if discriminantIsIdentifier(e, "other") {
		t.Fatal("expected no match for different name")
	}
}
