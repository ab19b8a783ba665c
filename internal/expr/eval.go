package expr

import (
	"fmt"

	"github.com/born-ml/jet/internal/jet"
)

// EvalError reports an expression that cannot be evaluated with the given bindings.
type EvalError struct {
	Expr *Expr
	Msg  string
}

func (e *EvalError) Error() string {
	return fmt.Sprintf("expr: %s: %s", e.Expr, e.Msg)
}

// Eval evaluates e with variables bound to env. All bound jets must share one
// dimension; constants are created with that dimension (0 when env is empty).
// Shape violations are returned as errors wrapping jet.ErrShapeMismatch.
func Eval[T jet.Float](e *Expr, env map[string]jet.Jet[T]) (out jet.Jet[T], err error) {
	dim, err := envDim(env)
	if err != nil {
		return out, err
	}
	if err := checkBound(e, env); err != nil {
		return out, err
	}
	err = jet.Catch(func() {
		out = eval(e, env, dim, nil)
	})
	return out, err
}

// Trace is like Eval but also returns the jet computed at every node.
func Trace[T jet.Float](e *Expr, env map[string]jet.Jet[T]) (map[*Expr]jet.Jet[T], error) {
	dim, err := envDim(env)
	if err != nil {
		return nil, err
	}
	if err := checkBound(e, env); err != nil {
		return nil, err
	}
	trace := map[*Expr]jet.Jet[T]{}
	err = jet.Catch(func() {
		eval(e, env, dim, trace)
	})
	return trace, err
}

// Compile binds vars positionally and returns e as a function of jets, suitable
// for the gradient checker. Every variable of e must appear in vars.
func Compile[T jet.Float](e *Expr, vars []string) (func(x []jet.Jet[T]) jet.Jet[T], error) {
	index := make(map[string]int, len(vars))
	for i, name := range vars {
		index[name] = i
	}
	for _, name := range e.Vars() {
		if _, ok := index[name]; !ok {
			return nil, &EvalError{Expr: e, Msg: "unbound variable " + name}
		}
	}
	return func(x []jet.Jet[T]) jet.Jet[T] {
		if len(x) != len(vars) {
			panic(fmt.Sprintf("expr: compiled for %d variables, called with %d", len(vars), len(x)))
		}
		env := make(map[string]jet.Jet[T], len(vars))
		for name, i := range index {
			env[name] = x[i]
		}
		dim := jet.Dim(0)
		if len(x) > 0 {
			dim = x[0].Dim()
		}
		return eval(e, env, dim, nil)
	}, nil
}

func envDim[T jet.Float](env map[string]jet.Jet[T]) (jet.Dim, error) {
	dim := jet.Dim(-1)
	for name, j := range env {
		if dim < 0 {
			dim = j.Dim()
			continue
		}
		if j.Dim() != dim {
			return 0, fmt.Errorf("expr: variable %s has dimension %d, others %d: %w",
				name, j.Dim(), dim, jet.ErrShapeMismatch)
		}
	}
	return max(dim, 0), nil
}

func checkBound[T jet.Float](e *Expr, env map[string]jet.Jet[T]) error {
	for _, name := range e.Vars() {
		if _, ok := env[name]; !ok {
			return &EvalError{Expr: e, Msg: "unbound variable " + name}
		}
	}
	return nil
}

func eval[T jet.Float](e *Expr, env map[string]jet.Jet[T], dim jet.Dim, trace map[*Expr]jet.Jet[T]) jet.Jet[T] {
	var out jet.Jet[T]
	switch e.Kind {
	case Number:
		out = jet.Const(dim, T(e.Value))
	case Variable:
		out = env[e.Name]
	case Call:
		args := make([]jet.Jet[T], len(e.Args))
		for i, a := range e.Args {
			args[i] = eval(a, env, dim, trace)
		}
		out = apply(e, args)
	}
	if trace != nil {
		trace[e] = out
	}
	return out
}

func apply[T jet.Float](e *Expr, args []jet.Jet[T]) jet.Jet[T] {
	switch e.Name {
	case "+":
		return fold(args, jet.Add[T])
	case "-":
		if len(args) == 1 {
			return args[0].Neg()
		}
		return fold(args, jet.Sub[T])
	case "*":
		return fold(args, jet.Mul[T])
	case "/":
		if len(args) == 1 {
			return jet.ScalarDiv(1, args[0])
		}
		return fold(args, jet.Div[T])
	case "max":
		return fold(args, jet.Max[T])
	case "min":
		return fold(args, jet.Min[T])
	case "pow":
		// A literal exponent uses the power rule; otherwise a^b = exp(b·ln a).
		if e.Args[1].Kind == Number {
			return jet.Pow(args[0], T(e.Args[1].Value))
		}
		return jet.Exp(args[1].Mul(jet.Log(args[0])))
	case "exp":
		return jet.Exp(args[0])
	case "log":
		return jet.Log(args[0])
	case "sqrt":
		return jet.Sqrt(args[0])
	case "tanh":
		return jet.Tanh(args[0])
	case "sigmoid":
		return jet.Sigmoid(args[0])
	case "abs":
		return jet.Abs(args[0])
	}
	panic("expr: unknown operator " + e.Name)
}

func fold[T jet.Float](args []jet.Jet[T], op func(a, b jet.Jet[T]) jet.Jet[T]) jet.Jet[T] {
	acc := args[0]
	for _, a := range args[1:] {
		acc = op(acc, a)
	}
	return acc
}
