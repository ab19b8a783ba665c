package expr

import (
	"fmt"

	"github.com/emicklei/dot"

	"github.com/born-ml/jet/internal/jet"
)

// Dot renders e as a Graphviz graph, operands pointing at their operator.
func Dot(e *Expr) *dot.Graph {
	return render(e, func(n *Expr) string { return nodeLabel(n) })
}

// DotTrace renders e with every node annotated by its jet from trace.
func DotTrace[T jet.Float](e *Expr, trace map[*Expr]jet.Jet[T]) *dot.Graph {
	return render(e, func(n *Expr) string {
		j, ok := trace[n]
		if !ok {
			return nodeLabel(n)
		}
		return fmt.Sprintf("%s\n%v %v", nodeLabel(n), j.Value(), j.Gradient())
	})
}

func render(e *Expr, label func(*Expr) string) *dot.Graph {
	g := dot.NewGraph(dot.Directed)
	g.Attr("rankdir", "BT")
	next := 0
	var visit func(n *Expr) dot.Node
	visit = func(n *Expr) dot.Node {
		id := fmt.Sprintf("n%d", next)
		next++
		node := g.Node(id).Label(label(n))
		switch n.Kind {
		case Variable:
			node.Attr("shape", "box")
		case Number:
			node.Attr("shape", "plaintext")
		}
		for _, a := range n.Args {
			g.Edge(visit(a), node)
		}
		return node
	}
	visit(e)
	return g
}

func nodeLabel(n *Expr) string {
	if n.Kind == Call {
		return n.Name
	}
	return n.String()
}
