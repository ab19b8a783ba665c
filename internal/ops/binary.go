package ops

import (
	"math"

	"github.com/born-ml/jet/internal/jet"
)

func init() {
	register(Op{
		Name:  "mul",
		Arity: 2,
		Forward: func(x []float64) float64 {
			return x[0] * x[1]
		},
		// ∂(ab)/∂a = b, ∂(ab)/∂b = a
		Backward: func(x []float64, _ float64) []float64 {
			return []float64{x[1], x[0]}
		},
		Jet: func(x []jet.Jet[float64]) jet.Jet[float64] {
			return x[0].Mul(x[1])
		},
	})

	register(Op{
		Name:   "div",
		Arity:  2,
		Domain: Positive,
		Forward: func(x []float64) float64 {
			return x[0] / x[1]
		},
		// ∂(a/b)/∂a = 1/b, ∂(a/b)/∂b = -a/b²
		Backward: func(x []float64, _ float64) []float64 {
			return []float64{1 / x[1], -x[0] / (x[1] * x[1])}
		},
		Jet: func(x []jet.Jet[float64]) jet.Jet[float64] {
			return x[0].Div(x[1])
		},
	})

	register(Op{
		Name:   "pow",
		Arity:  2,
		Domain: Positive,
		Forward: func(x []float64) float64 {
			return math.Pow(x[0], x[1])
		},
		// ∂(a^b)/∂a = b·a^(b-1), ∂(a^b)/∂b = a^b·ln a
		Backward: func(x []float64, y float64) []float64 {
			return []float64{x[1] * math.Pow(x[0], x[1]-1), y * math.Log(x[0])}
		},
		// a^b = exp(b·ln a)
		Jet: func(x []jet.Jet[float64]) jet.Jet[float64] {
			return jet.Exp(x[1].Mul(jet.Log(x[0])))
		},
	})

	register(Op{
		Name:  "hypot",
		Arity: 2,
		Forward: func(x []float64) float64 {
			return math.Hypot(x[0], x[1])
		},
		// ∂/∂a = a/y, ∂/∂b = b/y
		Backward: func(x []float64, y float64) []float64 {
			return []float64{x[0] / y, x[1] / y}
		},
		Jet: func(x []jet.Jet[float64]) jet.Jet[float64] {
			return jet.Sqrt(x[0].Mul(x[0]).Add(x[1].Mul(x[1])))
		},
	})
}
