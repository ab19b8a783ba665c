// Package expr is a small s-expression language evaluated over jets.
//
//	(+ (* x x) y)
//	(/ (log (+ (* x x) (* y y))) (sqrt (* x y)))
//	(max x (pow y 2))
//
// Symbols other than operators name independent variables; numbers are constants.
package expr

import (
	"sort"
	"strconv"
	"strings"
)

// Kind distinguishes the three node forms.
type Kind int

const (
	Number Kind = iota
	Variable
	Call
)

// Expr is a parsed expression node.
type Expr struct {
	Kind  Kind
	Value float64 // Number
	Name  string  // Variable name or Call operator
	Args  []*Expr // Call operands
}

// Vars returns the distinct variable names in e, sorted.
func (e *Expr) Vars() []string {
	seen := map[string]bool{}
	e.walk(func(n *Expr) {
		if n.Kind == Variable {
			seen[n.Name] = true
		}
	})
	out := make([]string, 0, len(seen))
	for name := range seen {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// String renders e back to s-expression form.
func (e *Expr) String() string {
	switch e.Kind {
	case Number:
		return strconv.FormatFloat(e.Value, 'g', -1, 64)
	case Variable:
		return e.Name
	}
	parts := make([]string, 0, len(e.Args)+1)
	parts = append(parts, e.Name)
	for _, a := range e.Args {
		parts = append(parts, a.String())
	}
	return "(" + strings.Join(parts, " ") + ")"
}

func (e *Expr) walk(f func(*Expr)) {
	f(e)
	for _, a := range e.Args {
		a.walk(f)
	}
}

// arity bounds per operator; max < 0 means unbounded.
type arity struct{ min, max int }

var operators = map[string]arity{
	"+":       {1, -1},
	"-":       {1, -1},
	"*":       {1, -1},
	"/":       {1, -1},
	"max":     {2, -1},
	"min":     {2, -1},
	"pow":     {2, 2},
	"exp":     {1, 1},
	"log":     {1, 1},
	"sqrt":    {1, 1},
	"tanh":    {1, 1},
	"sigmoid": {1, 1},
	"abs":     {1, 1},
}

// Operators returns the supported operator names, sorted.
func Operators() []string {
	out := make([]string, 0, len(operators))
	for name := range operators {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
