package discover

import (
	"regexp"
	"strings"

	"github.com/guapier/jsdeobfuscator/astutil"
	"github.com/guapier/jsdeobfuscator/codec"
	"github.com/t14raptor/go-fast/ast"
)

// findStringTable locates the decompressFromUTF16 call, decompresses its
// argument, and attributes a decoder function name, first by scanning the
// call's enclosing function body in the tree, then by a textual scan of the
// raw source when the tree strategy comes up empty.
func findStringTable(p *ast.Program, rawSource string) *StringTable {
	stringDecls := findStringDeclarators(p)

	call := findDecompressCall(p)
	if call == nil {
		return nil
	}

	raw := resolveStringArg(call.arg, stringDecls)
	if raw == "" {
		return nil
	}

	decompressed := codec.DecompressFromUTF16(raw)
	if decompressed == "" {
		return nil
	}

	entries := strings.Split(decompressed, "|")

	decoder := findDecoderNameInStatements(call.enclosingStmts)
	if decoder == "" {
		decoder = findDecoderNameTextual(rawSource)
	}

	return &StringTable{Entries: entries, Decoder: decoder}
}

// findStringDeclarators collects every `NAME = "literal"` variable
// declarator, at any nesting depth, so a decompressFromUTF16(NAME) call can resolve its argument
// back to the string it was bound to.
func findStringDeclarators(p *ast.Program) map[string]string {
	out := make(map[string]string)
	f := &stringDeclFinder{out: out}
	f.V = f
	p.VisitWith(f)
	return out
}

type stringDeclFinder struct {
	ast.NoopVisitor
	out map[string]string
}

func (v *stringDeclFinder) VisitStatement(n *ast.Statement) {
	n.VisitChildrenWith(v)
	decl, ok := n.Stmt.(*ast.VariableDeclaration)
	if !ok {
		return
	}
	for _, d := range decl.List {
		if d.Initializer == nil || d.Target == nil || d.Target.Target == nil {
			continue
		}
		id, ok := d.Target.Target.(*ast.Identifier)
		if !ok {
			continue
		}
		str, ok := d.Initializer.Expr.(*ast.StringLiteral)
		if !ok {
			continue
		}
		v.out[id.Name] = str.Value
	}
}

func resolveStringArg(e ast.Expr, decls map[string]string) string {
	switch n := e.(type) {
	case *ast.StringLiteral:
		return n.Value
	case *ast.Identifier:
		return decls[n.Name]
	default:
		return ""
	}
}

type decompressCall struct {
	arg            ast.Expr
	enclosingStmts []ast.Statement
}

// findDecompressCall walks the program depth-first, threading the current
// enclosing function's top-level statement list (or the program body, at
// top level) so that once the target call is found, the decoder search has
// the right scope to look in. This is a manual recursive descent rather
// than an ast.NoopVisitor because the visitor framework doesn't expose an
// ancestor stack, and this search needs one.
func findDecompressCall(p *ast.Program) *decompressCall {
	top := programTopLevel(p)
	var found *decompressCall
	walkStatements(p.Body, top, &found)
	return found
}

func programTopLevel(p *ast.Program) []ast.Statement {
	return p.Body
}

func walkStatements(stmts []ast.Statement, enclosing []ast.Statement, found **decompressCall) {
	for i := range stmts {
		if *found != nil {
			return
		}
		walkStatement(&stmts[i], enclosing, found)
	}
}

func walkStatement(s *ast.Statement, enclosing []ast.Statement, found **decompressCall) {
	if s == nil || s.Stmt == nil || *found != nil {
		return
	}
	switch n := s.Stmt.(type) {
	case *ast.ExpressionStatement:
		walkExpression(n.Expression, enclosing, found)
	case *ast.ReturnStatement:
		if n.Argument != nil {
			walkExpression(n.Argument, enclosing, found)
		}
	case *ast.VariableDeclaration:
		for i := range n.List {
			if n.List[i].Initializer != nil {
				walkExpression(n.List[i].Initializer, enclosing, found)
			}
		}
	case *ast.IfStatement:
		if n.Test != nil {
			walkExpression(n.Test, enclosing, found)
		}
		walkStatement(n.Consequent, enclosing, found)
		if n.Alternate != nil {
			walkStatement(n.Alternate, enclosing, found)
		}
	case *ast.BlockStatement:
		walkStatements(n.List, enclosing, found)
	case *ast.FunctionDeclaration:
		if n.Function != nil && n.Function.Body != nil {
			walkStatements(n.Function.Body.List, n.Function.Body.List, found)
		}
	case *ast.ForStatement:
		if n.Test != nil {
			walkExpression(n.Test, enclosing, found)
		}
		walkStatement(n.Body, enclosing, found)
	case *ast.WhileStatement:
		if n.Test != nil {
			walkExpression(n.Test, enclosing, found)
		}
		walkStatement(n.Body, enclosing, found)
	}
}

func walkExpression(e *ast.Expression, enclosing []ast.Statement, found **decompressCall) {
	if e == nil || e.Expr == nil || *found != nil {
		return
	}

	if call, ok := e.Expr.(*ast.CallExpression); ok {
		if member, ok := call.Callee.Expr.(*ast.MemberExpression); ok {
			if name, ok := astutil.MemberPropName(member.Property); ok && name == "decompressFromUTF16" && len(call.ArgumentList) == 1 {
				*found = &decompressCall{arg: call.ArgumentList[0].Expr, enclosingStmts: enclosing}
				return
			}
		}
	}

	switch n := e.Expr.(type) {
	case *ast.CallExpression:
		walkExpression(n.Callee, enclosing, found)
		for i := range n.ArgumentList {
			walkExpression(&n.ArgumentList[i], enclosing, found)
		}
	case *ast.AssignExpression:
		walkExpression(n.Left, enclosing, found)
		walkExpression(n.Right, enclosing, found)
	case *ast.BinaryExpression:
		walkExpression(n.Left, enclosing, found)
		walkExpression(n.Right, enclosing, found)
	case *ast.SequenceExpression:
		for i := range n.Sequence {
			walkExpression(&n.Sequence[i], enclosing, found)
		}
	case *ast.MemberExpression:
		walkExpression(n.Object, enclosing, found)
	case *ast.FunctionLiteral:
		if n.Body != nil {
			walkStatements(n.Body.List, n.Body.List, found)
		}
	}
}

// findDecoderNameInStatements scans the enclosing statement list for
// `NAME = function(param){ return ARRAY[param]; }`. NAME must escape the
// enclosing scope; that qualifies as long as it isn't itself declared by a
// var/let/const in this same statement list.
func findDecoderNameInStatements(stmts []ast.Statement) string {
	if stmts == nil {
		return ""
	}
	locallyDeclared := make(map[string]bool)
	for i := range stmts {
		if decl, ok := stmts[i].Stmt.(*ast.VariableDeclaration); ok {
			for _, d := range decl.List {
				if d.Target == nil || d.Target.Target == nil {
					continue
				}
				if id, ok := d.Target.Target.(*ast.Identifier); ok {
					locallyDeclared[id.Name] = true
				}
			}
		}
	}

	for i := range stmts {
		exprStmt, ok := stmts[i].Stmt.(*ast.ExpressionStatement)
		if !ok {
			continue
		}
		assign, ok := exprStmt.Expression.Expr.(*ast.AssignExpression)
		if !ok || assign.Operator.String() != "=" {
			continue
		}
		nameID, ok := assign.Left.Expr.(*ast.Identifier)
		if !ok || locallyDeclared[nameID.Name] {
			continue
		}
		fn, ok := assign.Right.Expr.(*ast.FunctionLiteral)
		if !ok {
			continue
		}
		param, ok := astutil.SingleParamName(fn)
		if !ok {
			continue
		}
		ret := astutil.FirstReturn(astutil.TopLevelStatements(fn))
		if ret == nil || ret.Argument == nil {
			continue
		}
		member, ok := ret.Argument.Expr.(*ast.MemberExpression)
		if !ok {
			continue
		}
		if _, ok := member.Object.Expr.(*ast.Identifier); !ok {
			continue
		}
		idxName, ok := astutil.ComputedIdentifierName(member.Property)
		if !ok || idxName != param {
			continue
		}
		return nameID.Name
	}
	return ""
}

var decoderAssignPattern = regexp.MustCompile(`([A-Za-z_$][A-Za-z0-9_$]*)\s*=\s*function\s*\(\s*([A-Za-z_$][A-Za-z0-9_$]*)\s*\)\s*\{\s*return\s+[A-Za-z_$][A-Za-z0-9_$]*\[\s*([A-Za-z_$][A-Za-z0-9_$]*)\s*\]\s*;?\s*\}`)

// findDecoderNameTextual scans the raw source for the decoder assignment.
// The codec's own implementation ships inline in the obfuscated file and
// contains the string "decompressFromUTF16" too, so the first occurrence is
// the library definition, not the call site; only the last occurrence is
// the right anchor. The forward window is capped at 1000 characters.
func findDecoderNameTextual(src string) string {
	marker := "decompressFromUTF16"
	last := strings.LastIndex(src, marker)
	if last == -1 {
		return ""
	}
	end := last + 1000
	if end > len(src) {
		end = len(src)
	}
	window := src[last:end]
	m := decoderAssignPattern.FindStringSubmatch(window)
	if m == nil {
		return ""
	}
	if m[2] != m[3] {
		return ""
	}
	return m[1]
}
