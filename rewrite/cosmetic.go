package rewrite

import (
	"regexp"

	"github.com/guapier/jsdeobfuscator/stats"
	"github.com/t14raptor/go-fast/ast"
)

// identRe matches a valid bracket-to-dot property name; reserved words are
// rejected separately via reservedWords below.
var identRe = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// reservedWords is the fixed ECMAScript reserved-word set bracket-to-dot
// conversion must respect: `obj["for"]` stays bracketed.
var reservedWords = buildAllowList([]string{
	"break", "case", "catch", "class", "const", "continue", "debugger",
	"default", "delete", "do", "else", "enum", "export", "extends",
	"false", "finally", "for", "function", "if", "import", "in",
	"instanceof", "new", "null", "return", "super", "switch", "this",
	"throw", "true", "try", "typeof", "var", "void", "while", "with",
	"implements", "interface", "let", "package", "private", "protected",
	"public", "static", "yield",
})

// Cosmetic is the final cleanup walk: raw-form clearing on literals,
// bracket-to-dot conversion, !0/!1 simplification, boolean-literal-driven
// conditional/if/logical collapse, and empty statement removal, all in a
// single pass over the tree.
func Cosmetic(p *ast.Program) stats.Stats {
	v := &cosmeticVisitor{}
	v.V = v
	p.VisitWith(v)

	p.Body = filterEmpty(p.Body)

	return v.st
}

type cosmeticVisitor struct {
	ast.NoopVisitor
	st stats.Stats
}

func (v *cosmeticVisitor) VisitStatement(n *ast.Statement) {
	n.VisitChildrenWith(v)

	if block, ok := n.Stmt.(*ast.BlockStatement); ok {
		before := len(block.List)
		block.List = filterEmpty(block.List)
		v.st.DeadCodeRemovals += before - len(block.List)
	}

	ifStmt, ok := n.Stmt.(*ast.IfStatement)
	if !ok || ifStmt.Test == nil || ifStmt.Consequent == nil {
		return
	}
	boolLit, ok := ifStmt.Test.Expr.(*ast.BooleanLiteral)
	if !ok {
		return
	}
	if boolLit.Value {
		n.Stmt = ifStmt.Consequent.Stmt
	} else if ifStmt.Alternate != nil {
		n.Stmt = ifStmt.Alternate.Stmt
	} else {
		n.Stmt = &ast.EmptyStatement{}
	}
	v.st.DeadCodeRemovals++
}

func filterEmpty(list []ast.Statement) []ast.Statement {
	out := list[:0]
	for _, s := range list {
		if _, ok := s.Stmt.(*ast.EmptyStatement); ok {
			continue
		}
		out = append(out, s)
	}
	return out
}

func (v *cosmeticVisitor) VisitExpression(n *ast.Expression) {
	n.VisitChildrenWith(v)

	switch expr := n.Expr.(type) {
	case *ast.NumberLiteral:
		v.clearNumberRaw(expr)
	case *ast.StringLiteral:
		v.clearStringRaw(expr)
	case *ast.MemberExpression:
		v.simplifyMember(n, expr)
	case *ast.UnaryExpression:
		v.simplifyBangNumeral(n, expr)
	case *ast.ConditionalExpression:
		v.simplifyConditional(n, expr)
	case *ast.LogicalExpression:
		v.simplifyLogical(n, expr)
	}
}

func (v *cosmeticVisitor) clearNumberRaw(n *ast.NumberLiteral) {
	if n.Raw == "" {
		return
	}
	wasHex := len(n.Raw) >= 2 && n.Raw[0] == '0' && (n.Raw[1] == 'x' || n.Raw[1] == 'X')
	n.Raw = ""
	if wasHex {
		v.st.HexNumeralsNormalized++
	}
}

func (v *cosmeticVisitor) clearStringRaw(n *ast.StringLiteral) {
	n.Raw = ""
}

// simplifyMember handles bracket-to-dot conversion and the sequence-
// expression collapse rule. It covers two shapes of the property:
// a plain string literal, and a sequence expression whose tail is a string
// literal (`obj[(junk, "prop")]`).
func (v *cosmeticVisitor) simplifyMember(n *ast.Expression, mem *ast.MemberExpression) {
	cp, ok := mem.Property.Prop.(*ast.ComputedProperty)
	if !ok || cp.Expr == nil {
		return
	}

	switch propExpr := cp.Expr.Expr.(type) {
	case *ast.StringLiteral:
		if dotifiable(propExpr.Value) {
			mem.Property.Prop = &ast.Identifier{Name: propExpr.Value}
			v.st.PropertyAccessSimplified++
		}
	case *ast.SequenceExpression:
		if len(propExpr.Sequence) == 0 {
			return
		}
		tail := propExpr.Sequence[len(propExpr.Sequence)-1]
		str, ok := tail.Expr.(*ast.StringLiteral)
		if !ok {
			return
		}
		if dotifiable(str.Value) {
			mem.Property.Prop = &ast.Identifier{Name: str.Value}
		} else {
			cp.Expr = &tail
		}
		v.st.PropertyAccessSimplified++
	}
}

func dotifiable(name string) bool {
	return identRe.MatchString(name) && !reservedWords[name]
}

func (v *cosmeticVisitor) simplifyBangNumeral(n *ast.Expression, un *ast.UnaryExpression) {
	if un.Operator.String() != "!" {
		return
	}
	num, ok := un.Operand.Expr.(*ast.NumberLiteral)
	if !ok {
		return
	}
	n.Expr = &ast.BooleanLiteral{Value: num.Value == 0}
	v.st.BooleansSimplified++
}

func (v *cosmeticVisitor) simplifyConditional(n *ast.Expression, cond *ast.ConditionalExpression) {
	boolLit, ok := cond.Test.Expr.(*ast.BooleanLiteral)
	if !ok {
		return
	}
	if boolLit.Value {
		n.Expr = cond.Consequent.Expr
	} else {
		n.Expr = cond.Alternate.Expr
	}
	v.st.BooleansSimplified++
}

func (v *cosmeticVisitor) simplifyLogical(n *ast.Expression, log *ast.LogicalExpression) {
	boolLit, ok := log.Left.Expr.(*ast.BooleanLiteral)
	if !ok {
		return
	}
	switch log.Operator.String() {
	case "&&":
		if boolLit.Value {
			n.Expr = log.Right.Expr
		} else {
			n.Expr = &ast.BooleanLiteral{Value: false}
		}
	case "||":
		if boolLit.Value {
			n.Expr = &ast.BooleanLiteral{Value: true}
		} else {
			n.Expr = log.Right.Expr
		}
	default:
		return
	}
	v.st.BooleansSimplified++
}
