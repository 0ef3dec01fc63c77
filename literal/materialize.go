package literal

import (
	"math"

	"github.com/t14raptor/go-fast/ast"
	"github.com/t14raptor/go-fast/token"
)

// Materialize builds the AST node a Value should be rewritten into,
// following the rules in the data model: negative numbers become a unary
// minus applied to the positive literal rather than a literal holding a
// negative Value field (the printer always emits literal nodes as written,
// never descends into inspecting sign), Undefined becomes `void 0`, and
// non-finite numbers are refused; the caller must leave the original
// expression untouched instead of rewriting to NaN/Infinity literals that
// the parser round-trips as identifiers, not numeric literals.
func Materialize(v Value) (ast.Expr, bool) {
	switch v.Kind {
	case Number:
		if math.IsNaN(v.Num) || math.IsInf(v.Num, 0) {
			return nil, false
		}
		if v.Num < 0 || isNegZero(v.Num) {
			return &ast.UnaryExpression{
				Operator: token.Minus,
				Operand:  &ast.Expression{Expr: &ast.NumberLiteral{Value: -v.Num}},
			}, true
		}
		return &ast.NumberLiteral{Value: v.Num}, true
	case String:
		return &ast.StringLiteral{Value: v.Str}, true
	case Boolean:
		return &ast.BooleanLiteral{Value: v.Bool}, true
	case Null:
		return &ast.NullLiteral{}, true
	case Undefined:
		return &ast.UnaryExpression{
			Operator: token.Void,
			Operand:  &ast.Expression{Expr: &ast.NumberLiteral{Value: 0}},
		}, true
	default:
		return nil, false
	}
}
