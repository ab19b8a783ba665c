package expr

import (
	"strconv"

	"github.com/stevegt/goadapt"
	"github.com/xiam/sexpr/ast"
	"github.com/xiam/sexpr/parser"
)

// SyntaxError is a syntax error at a source node.
type SyntaxError struct {
	msg  string
	node *ast.Node
}

func (e *SyntaxError) Error() string {
	pos := "-"
	if tok := e.node.Token(); tok != nil {
		p := tok.Pos()
		pos = goadapt.Spf("%d:%d", p.Line, p.Column)
	}
	return goadapt.Spf("[expr:%s] %s: %s", pos, e.msg, source(e.node))
}

// source renders node back to s-expression text.
func source(node *ast.Node) string {
	text := string(ast.Encode(node))
	if node.Type() == ast.NodeTypeExpression {
		return "(" + text + ")"
	}
	return text
}

// synck raises a syntax error if cond is false.
func synck(node *ast.Node, cond bool, args ...interface{}) {
	if !cond {
		msg := goadapt.FormatArgs(args...)
		panic(&SyntaxError{msg, node})
	}
}

// Parse parses a single expression.
func Parse(src string) (e *Expr, err error) {
	defer goadapt.Return(&err)
	defer func() {
		if r := recover(); r != nil {
			se, ok := r.(*SyntaxError)
			if !ok {
				panic(r)
			}
			e, err = nil, se
		}
	}()
	root, err := parser.Parse([]byte(src))
	goadapt.Ck(err)

	synck(root, root.Type() == ast.NodeTypeList, "root is not a list")
	children := root.List()
	synck(root, len(children) == 1, "want one expression, got %d", len(children))

	e = parseNode(children[0])
	return
}

// MustParse is like Parse but panics on error. For tests and fixed expressions.
func MustParse(src string) *Expr {
	e, err := Parse(src)
	goadapt.Ck(err)
	return e
}

func parseNode(n *ast.Node) *Expr {
	switch n.Type() {
	case ast.NodeTypeInt, ast.NodeTypeFloat:
		v, err := strconv.ParseFloat(n.Encode(), 64)
		synck(n, err == nil, "bad number %q", n.Encode())
		return &Expr{Kind: Number, Value: v}
	case ast.NodeTypeSymbol:
		word := n.Encode()
		if v, err := strconv.ParseFloat(word, 64); err == nil {
			return &Expr{Kind: Number, Value: v}
		}
		_, isOp := operators[word]
		synck(n, !isOp, "operator %s used as a variable", word)
		return &Expr{Kind: Variable, Name: word}
	case ast.NodeTypeExpression:
		return parseCall(n)
	default:
		synck(n, false, "unsupported node type %v", n.Type())
	}
	return nil
}

func parseCall(n *ast.Node) *Expr {
	children := n.List()
	synck(n, len(children) > 0, "missing operator")
	head := children[0]
	synck(head, head.Type() == ast.NodeTypeSymbol, "operator is not a symbol")

	op := head.Encode()
	a, ok := operators[op]
	synck(head, ok, "unknown operator %s", op)

	args := children[1:]
	synck(n, len(args) >= a.min, "%s wants at least %d operands, got %d", op, a.min, len(args))
	synck(n, a.max < 0 || len(args) <= a.max, "%s wants at most %d operands, got %d", op, a.max, len(args))

	e := &Expr{Kind: Call, Name: op}
	for _, c := range args {
		e.Args = append(e.Args, parseNode(c))
	}
	return e
}
