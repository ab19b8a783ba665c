// Package gradcheck verifies hand-written gradients against the jet oracle.
//
// The harness seeds one jet per coordinate of the evaluation point, evaluates the
// function under test over those jets and compares the resulting gradient, element
// by element, with a reference gradient (a backward pass, or central finite
// differences). Tolerance policy lives here; the jet engine itself has none.
//
// Usage:
//
//	f := func(x []jet.Jet[float64]) jet.Jet[float64] { return x[0].Mul(x[1]) }
//	report, err := gradcheck.Check(f, []float64{3, 4}, []float64{4, 3}, gradcheck.DefaultConfig())
//	if err == nil {
//	    err = report.Err()
//	}
package gradcheck

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/born-ml/jet/internal/jet"
	"github.com/born-ml/jet/internal/parallel"
)

// ErrGradientMismatch is wrapped by Report.Err when any element is out of tolerance.
var ErrGradientMismatch = errors.New("gradcheck: gradient mismatch")

// Func is a scalar function of jets.
type Func[T jet.Float] func(x []jet.Jet[T]) jet.Jet[T]

// Config controls comparison tolerance and finite differences.
type Config struct {
	AbsTolerance float64 // Absolute tolerance per element.
	RelTolerance float64 // Relative tolerance per element.
	Step         float64 // Finite-difference step; 0 lets gonum choose.

	Parallel parallel.Config // Used by CheckAll.
}

// DefaultConfig returns tolerances suited to float64 evaluation.
func DefaultConfig() Config {
	return Config{
		AbsTolerance: 1e-6,
		RelTolerance: 1e-6,
		Step:         1e-6,
		Parallel:     parallel.DefaultConfig(),
	}
}

// Float32Config returns tolerances suited to float32 evaluation.
func Float32Config() Config {
	cfg := DefaultConfig()
	cfg.AbsTolerance = 1e-4
	cfg.RelTolerance = 1e-3
	cfg.Step = 1e-3
	return cfg
}

// Seed returns one jet per coordinate of point, jet i seeded at index i.
func Seed[T jet.Float](point []T) []jet.Jet[T] {
	dim := jet.Dim(len(point))
	out := make([]jet.Jet[T], len(point))
	for i, v := range point {
		out[i] = jet.Variable(dim, v, i)
	}
	return out
}

// Constants returns point as zero-dimensional jets, for plain evaluation.
func Constants[T jet.Float](point []T) []jet.Jet[T] {
	out := make([]jet.Jet[T], len(point))
	for i, v := range point {
		out[i] = jet.Const(0, v)
	}
	return out
}

// Gradient evaluates f at point and returns the value and the oracle gradient.
// A shape or index violation inside f is returned as an error.
func Gradient[T jet.Float](f Func[T], point []T) (value T, grad []T, err error) {
	var out jet.Jet[T]
	err = jet.Catch(func() {
		out = f(Seed(point))
	})
	if err != nil {
		return value, nil, err
	}
	if int(out.Dim()) != len(point) {
		return value, nil, fmt.Errorf("gradcheck: result has dimension %d, want %d: %w",
			out.Dim(), len(point), jet.ErrShapeMismatch)
	}
	return out.Value(), out.Gradient().Slice(), nil
}

// Mismatch is one gradient element outside tolerance.
type Mismatch struct {
	Index     int
	Oracle    float64
	Reference float64
}

// Report is the outcome of one gradient comparison.
type Report struct {
	Point      []float64
	Value      float64
	Oracle     []float64 // jet gradient
	Reference  []float64 // gradient under test
	MaxAbsDiff float64
	Mismatches []Mismatch
}

// OK reports whether every element was within tolerance.
func (r Report) OK() bool {
	return len(r.Mismatches) == 0
}

// Err returns nil when the report is OK, and an error wrapping ErrGradientMismatch
// listing the offending elements otherwise.
func (r Report) Err() error {
	if r.OK() {
		return nil
	}
	parts := make([]string, 0, len(r.Mismatches))
	for _, m := range r.Mismatches {
		parts = append(parts, fmt.Sprintf("[%d] oracle=%g reference=%g", m.Index, m.Oracle, m.Reference))
	}
	return fmt.Errorf("%w at %v: %s", ErrGradientMismatch, r.Point, strings.Join(parts, ", "))
}

// Compare builds a report from an oracle and a reference gradient.
func Compare(oracle, reference []float64, cfg Config) (Report, error) {
	if len(oracle) != len(reference) {
		return Report{}, fmt.Errorf("gradcheck: oracle has %d elements, reference %d: %w",
			len(oracle), len(reference), jet.ErrShapeMismatch)
	}
	r := Report{Oracle: oracle, Reference: reference}
	switch {
	case floats.HasNaN(oracle) || floats.HasNaN(reference):
		// Distance skips NaN under the Inf norm.
		r.MaxAbsDiff = math.NaN()
	case len(oracle) > 0:
		r.MaxAbsDiff = floats.Distance(oracle, reference, math.Inf(1))
	}
	for i := range oracle {
		if !scalar.EqualWithinAbsOrRel(oracle[i], reference[i], cfg.AbsTolerance, cfg.RelTolerance) {
			r.Mismatches = append(r.Mismatches, Mismatch{Index: i, Oracle: oracle[i], Reference: reference[i]})
		}
	}
	return r, nil
}

// Check compares the jet gradient of f at point with reference.
func Check[T jet.Float](f Func[T], point, reference []T, cfg Config) (Report, error) {
	value, grad, err := Gradient(f, point)
	if err != nil {
		return Report{}, err
	}
	r, err := Compare(toFloat64(grad), toFloat64(reference), cfg)
	if err != nil {
		return Report{}, err
	}
	r.Point = toFloat64(point)
	r.Value = float64(value)
	return r, nil
}

func toFloat64[T jet.Float](x []T) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = float64(v)
	}
	return out
}
