package literal

import (
	"math"

	"github.com/t14raptor/go-fast/ast"
)

// Eval recursively partially-evaluates an expression node. It returns
// ok == false for anything it cannot reduce: an evaluator that isn't sure
// never guesses, it just declines to rewrite.
func Eval(e ast.Expr) (Value, bool) {
	switch n := e.(type) {
	case *ast.NumberLiteral:
		return Num(n.Value), true
	case *ast.StringLiteral:
		return Str(n.Value), true
	case *ast.BooleanLiteral:
		return Bool(n.Value), true
	case *ast.NullLiteral:
		return Nul(), true
	case *ast.UnaryExpression:
		return evalUnary(n)
	case *ast.BinaryExpression:
		return evalBinary(n)
	default:
		return Value{}, false
	}
}

// EvalExpr unwraps the *ast.Expression wrapper before evaluating.
func EvalExpr(e *ast.Expression) (Value, bool) {
	if e == nil || e.Expr == nil {
		return Value{}, false
	}
	return Eval(e.Expr)
}

func evalUnary(n *ast.UnaryExpression) (Value, bool) {
	if n.Operator.String() == "void" {
		return Undef(), true
	}

	operand, ok := EvalExpr(n.Operand)
	if !ok {
		return Value{}, false
	}

	switch n.Operator.String() {
	case "!":
		return Bool(!operand.Truthy()), true
	case "-":
		if operand.Kind != Number {
			return Value{}, false
		}
		return Num(-operand.Num), true
	case "+":
		if operand.Kind != Number {
			return Value{}, false
		}
		return Num(operand.Num), true
	case "~":
		if operand.Kind != Number {
			return Value{}, false
		}
		return Num(float64(^toInt32(operand.Num))), true
	default:
		return Value{}, false
	}
}

func evalBinary(n *ast.BinaryExpression) (Value, bool) {
	left, ok := EvalExpr(n.Left)
	if !ok {
		return Value{}, false
	}
	right, ok := EvalExpr(n.Right)
	if !ok {
		return Value{}, false
	}

	op := n.Operator.String()

	if op == "+" && (left.Kind == String || right.Kind == String) {
		return Str(toStringForConcat(left) + toStringForConcat(right)), true
	}

	if left.Kind != Number || right.Kind != Number {
		return Value{}, false
	}
	l, r := left.Num, right.Num

	switch op {
	case "+":
		return Num(l + r), true
	case "-":
		return Num(l - r), true
	case "*":
		return Num(l * r), true
	case "/":
		if r == 0 {
			return Value{}, false
		}
		return Num(l / r), true
	case "%":
		if r == 0 {
			return Value{}, false
		}
		return Num(math.Mod(l, r)), true
	case "**":
		return Num(math.Pow(l, r)), true
	case "&":
		return Num(float64(toInt32(l) & toInt32(r))), true
	case "|":
		return Num(float64(toInt32(l) | toInt32(r))), true
	case "^":
		return Num(float64(toInt32(l) ^ toInt32(r))), true
	case "<<":
		return Num(float64(toInt32(l) << (toUint32(r) & 31))), true
	case ">>":
		return Num(float64(toInt32(l) >> (toUint32(r) & 31))), true
	case ">>>":
		return Num(float64(toUint32(l) >> (toUint32(r) & 31))), true
	default:
		return Value{}, false
	}
}

// toStringForConcat implements the "String-prefer-String" rule for binary
// `+`: a Number operand is rendered with ECMAScript's shortest round-trip
// decimal form, not Go's default %v formatting.
func toStringForConcat(v Value) string {
	switch v.Kind {
	case String:
		return v.Str
	case Number:
		return formatNumber(v.Num)
	case Boolean:
		if v.Bool {
			return "true"
		}
		return "false"
	case Null:
		return "null"
	case Undefined:
		return "undefined"
	default:
		return ""
	}
}

func toInt32(f float64) int32 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return int32(uint32(int64(f)))
}

func toUint32(f float64) uint32 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return uint32(int64(f))
}
