// Package literal implements the partial evaluator used by every discovery
// and rewrite pass to decide whether an expression is statically known at
// rewrite time, and to materialize the result back into the tree.
package literal

import "math"

// Kind tags the variant held by a Value.
type Kind int

const (
	Number Kind = iota
	String
	Boolean
	Null
	Undefined
)

// Value is the partial evaluator's result domain: a small tagged union,
// never a Go interface{}, so every caller must exhaustively switch on Kind
// rather than relying on dynamic type assertions scattered across passes.
type Value struct {
	Kind Kind
	Num  float64
	Str  string
	Bool bool
}

func Num(n float64) Value { return Value{Kind: Number, Num: n} }
func Str(s string) Value  { return Value{Kind: String, Str: s} }
func Bool(b bool) Value   { return Value{Kind: Boolean, Bool: b} }
func Nul() Value          { return Value{Kind: Null} }
func Undef() Value        { return Value{Kind: Undefined} }

// Truthy applies ECMAScript ToBoolean to a Value.
func (v Value) Truthy() bool {
	switch v.Kind {
	case Number:
		return v.Num != 0 && !math.IsNaN(v.Num)
	case String:
		return v.Str != ""
	case Boolean:
		return v.Bool
	case Null, Undefined:
		return false
	default:
		return false
	}
}
