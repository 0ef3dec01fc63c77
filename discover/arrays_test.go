package discover

import (
	"testing"

	"github.com/guapier/jsdeobfuscator/jsparse"
	"github.com/guapier/jsdeobfuscator/literal"
)

func TestFindArraysCapturesAllLiteralArray(t *testing.T) {
	src := `
var A = [1, 2, 3, 4, 5, 6, 7, 8, 9, 10];
var short = [1, 2, 3];
var mixed = [1, 2, 3, 4, 5, 6, 7, 8, 9, foo()];
`
	p, err := jsparse.Parse(src)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	arrays := findArrays(p)
	if len(arrays) != 1 {
		t.Fatalf("expected exactly one array captured, got %d", len(arrays))
	}
	a := arrays["A"]
	if a == nil {
		t.Fatal("expected array A to be captured")
	}
	if len(a.Elements) != 10 {
		t.Fatalf("expected 10 elements, got %d", len(a.Elements))
	}
	if a.Elements[0].Kind != literal.Number || a.Elements[0].Num != 1 {
		t.Fatalf("unexpected first element %+v", a.Elements[0])
	}
}

func TestFindArraysAcceptsNegativeAndStringElements(t *testing.T) {
	src := `var B = [-1, "x", 2, 3, 4, 5, 6, 7, 8, 9];`
	p, err := jsparse.Parse(src)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	arrays := findArrays(p)
	b := arrays["B"]
	if b == nil {
		t.Fatal("expected array B to be captured")
	}
	if b.Elements[0].Kind != literal.Number || b.Elements[0].Num != -1 {
		t.Fatalf("expected -1 first element, got %+v", b.Elements[0])
	}
	if b.Elements[1].Kind != literal.String || b.Elements[1].Str != "x" {
		t.Fatalf("expected string element, got %+v", b.Elements[1])
	}
}
