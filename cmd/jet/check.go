package main

import (
	"flag"
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/born-ml/jet/internal/expr"
	"github.com/born-ml/jet/internal/gradcheck"
	"github.com/born-ml/jet/internal/ops"
)

func runCheck(args []string, w io.Writer) (bool, error) {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	points := fs.Int("points", 16, "Sampled points per op")
	seed := fs.Uint64("seed", 1, "Random seed for sampled points")
	abs := fs.Float64("abs", 1e-6, "Absolute tolerance")
	rel := fs.Float64("rel", 1e-6, "Relative tolerance")
	src := fs.String("expr", "", "Check EXPR against finite differences instead of the op catalogue")
	at := fs.String("at", "", "Variable values for -expr, e.g. x=3,y=4")
	verbose := fs.Bool("v", false, "Print every case")
	if err := fs.Parse(args); err != nil {
		return false, err
	}

	cfg := gradcheck.DefaultConfig()
	cfg.AbsTolerance = *abs
	cfg.RelTolerance = *rel

	if *src != "" {
		return checkExpr(w, *src, *at, cfg)
	}
	if *points < 1 {
		return false, fmt.Errorf("check: -points must be positive, got %d", *points)
	}

	n := *points
	rng := rand.New(rand.NewPCG(*seed, *seed))
	all := ops.All()
	results := gradcheck.CheckAll(gradcheck.OpCases(all, n, rng), cfg)

	ok := true
	for i, op := range all {
		chunk := results[i*n : (i+1)*n]
		failed := gradcheck.Failures(chunk)
		status := "ok  "
		if len(failed) > 0 {
			status = "FAIL"
			ok = false
		}
		fmt.Fprintf(w, "%s %-16s %d/%d points\n", status, op.Name, len(chunk)-len(failed), len(chunk))
		report := failed
		if *verbose {
			report = chunk
		}
		for _, r := range report {
			printResult(w, r)
		}
	}
	return ok, nil
}

func checkExpr(w io.Writer, src, at string, cfg gradcheck.Config) (bool, error) {
	e, err := expr.Parse(src)
	if err != nil {
		return false, err
	}
	bindings, err := parseBindings(at)
	if err != nil {
		return false, err
	}
	vars := e.Vars()
	x, err := point(vars, bindings)
	if err != nil {
		return false, err
	}
	f, err := expr.Compile[float64](e, vars)
	if err != nil {
		return false, err
	}
	report, err := gradcheck.CheckNumerical(f, x, cfg)
	if err != nil {
		return false, err
	}
	printResult(w, gradcheck.Result{Name: e.String(), Report: report})
	return report.OK(), nil
}

func printResult(w io.Writer, r gradcheck.Result) {
	if r.Err != nil {
		fmt.Fprintf(w, "    %s: %v\n", r.Name, r.Err)
		return
	}
	fmt.Fprintf(w, "    %s: value=%g oracle=%v reference=%v max|Δ|=%.3g\n",
		r.Name, r.Report.Value, r.Report.Oracle, r.Report.Reference, r.Report.MaxAbsDiff)
	if err := r.Report.Err(); err != nil {
		fmt.Fprintf(w, "    %v\n", err)
	}
}
