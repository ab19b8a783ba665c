package main

import (
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/born-ml/jet/internal/expr"
	"github.com/born-ml/jet/internal/jet"
)

// parseBindings parses "x=3,y=4" into a map.
func parseBindings(s string) (map[string]float64, error) {
	out := map[string]float64{}
	if strings.TrimSpace(s) == "" {
		return out, nil
	}
	for _, part := range strings.Split(s, ",") {
		name, val, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("bad binding %q, want name=value", part)
		}
		v, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return nil, fmt.Errorf("bad value for %s: %w", name, err)
		}
		out[name] = v
	}
	return out, nil
}

// point orders bindings by vars, failing on any unbound variable.
func point(vars []string, bindings map[string]float64) ([]float64, error) {
	x := make([]float64, len(vars))
	for i, name := range vars {
		v, ok := bindings[name]
		if !ok {
			return nil, fmt.Errorf("no value for variable %s (use -at %s=...)", name, name)
		}
		x[i] = v
	}
	return x, nil
}

func seedEnv[T jet.Float](vars []string, x []float64) map[string]jet.Jet[T] {
	dim := jet.Dim(len(vars))
	env := make(map[string]jet.Jet[T], len(vars))
	for i, name := range vars {
		env[name] = jet.Variable(dim, T(x[i]), i)
	}
	return env
}

func parseExprArgs(fs *flag.FlagSet, args []string) (*expr.Expr, []string, []float64, error) {
	if err := fs.Parse(args); err != nil {
		return nil, nil, nil, err
	}
	if fs.NArg() != 1 {
		return nil, nil, nil, fmt.Errorf("%s: want exactly one expression, got %d arguments", fs.Name(), fs.NArg())
	}
	e, err := expr.Parse(fs.Arg(0))
	if err != nil {
		return nil, nil, nil, err
	}
	at := fs.Lookup("at").Value.String()
	bindings, err := parseBindings(at)
	if err != nil {
		return nil, nil, nil, err
	}
	vars := e.Vars()
	x, err := point(vars, bindings)
	if err != nil {
		return nil, nil, nil, err
	}
	return e, vars, x, nil
}

func runEval(args []string, w io.Writer) error {
	fs := flag.NewFlagSet("eval", flag.ContinueOnError)
	dtype := fs.String("dtype", "float64", "Element type: float32 or float64")
	fs.String("at", "", "Variable values, e.g. x=3,y=4")

	e, vars, x, err := parseExprArgs(fs, args)
	if err != nil {
		return err
	}
	dt, ok := jet.ParseDataType(*dtype)
	if !ok {
		return fmt.Errorf("unknown dtype %q", *dtype)
	}
	switch dt {
	case jet.Float32:
		return printEval[float32](w, e, vars, x)
	default:
		return printEval[float64](w, e, vars, x)
	}
}

func printEval[T jet.Float](w io.Writer, e *expr.Expr, vars []string, x []float64) error {
	z, err := expr.Eval(e, seedEnv[T](vars, x))
	if err != nil {
		return err
	}
	fmt.Fprint(w, z)
	for i, name := range vars {
		fmt.Fprintf(w, "d/d%s = %v\n", name, z.Partial(i))
	}
	return nil
}

func runDot(args []string, w io.Writer) error {
	fs := flag.NewFlagSet("dot", flag.ContinueOnError)
	at := fs.String("at", "", "Variable values; when set, nodes are annotated with their jets")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("dot: want exactly one expression, got %d arguments", fs.NArg())
	}
	e, err := expr.Parse(fs.Arg(0))
	if err != nil {
		return err
	}
	if *at == "" {
		fmt.Fprintln(w, expr.Dot(e).String())
		return nil
	}

	bindings, err := parseBindings(*at)
	if err != nil {
		return err
	}
	vars := e.Vars()
	x, err := point(vars, bindings)
	if err != nil {
		return err
	}
	trace, err := expr.Trace(e, seedEnv[float64](vars, x))
	if err != nil {
		return err
	}
	fmt.Fprintln(w, expr.DotTrace(e, trace).String())
	return nil
}
