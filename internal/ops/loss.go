package ops

import (
	"fmt"
	"math"

	"github.com/born-ml/jet/internal/jet"
)

func init() {
	register(LogSumExp(4))
	register(CrossEntropy(4, 2))
	register(MSE(3))
}

// LogSumExp returns the op y = log(Σ exp(x_i)) over n inputs.
//
// Forward uses the max-shift trick: y = m + log(Σ exp(x_i - m)), m = max(x).
//
// Backward:
//
//	∂y/∂x_i = exp(x_i - y) = softmax(x)_i
func LogSumExp(n int) Op {
	return Op{
		Name:  fmt.Sprintf("logsumexp%d", n),
		Arity: n,
		Forward: func(x []float64) float64 {
			return logSumExp(x)
		},
		Backward: func(x []float64, y float64) []float64 {
			grad := make([]float64, len(x))
			for i, v := range x {
				grad[i] = math.Exp(v - y)
			}
			return grad
		},
		Jet: logSumExpJet,
	}
}

// CrossEntropy returns the op L = -log_softmax(x)[target] over n logits.
//
// Backward:
//
//	∂L/∂x_i = softmax(x)_i - 1[i == target]
func CrossEntropy(n, target int) Op {
	if target < 0 || target >= n {
		panic(fmt.Sprintf("ops: cross-entropy target %d out of range for %d classes", target, n))
	}
	return Op{
		Name:  fmt.Sprintf("crossentropy%d", n),
		Arity: n,
		Forward: func(x []float64) float64 {
			return logSumExp(x) - x[target]
		},
		Backward: func(x []float64, _ float64) []float64 {
			lse := logSumExp(x)
			grad := make([]float64, len(x))
			for i, v := range x {
				grad[i] = math.Exp(v - lse)
			}
			grad[target]--
			return grad
		},
		Jet: func(x []jet.Jet[float64]) jet.Jet[float64] {
			return logSumExpJet(x).Sub(x[target])
		},
	}
}

// MSE returns the op L = mean((x_i - t_i)²) over n inputs with fixed targets
// t_i = i/n.
//
// Backward:
//
//	∂L/∂x_i = 2(x_i - t_i)/n
func MSE(n int) Op {
	target := func(i int) float64 { return float64(i) / float64(n) }
	return Op{
		Name:  fmt.Sprintf("mse%d", n),
		Arity: n,
		Forward: func(x []float64) float64 {
			var sum float64
			for i, v := range x {
				d := v - target(i)
				sum += d * d
			}
			return sum / float64(n)
		},
		Backward: func(x []float64, _ float64) []float64 {
			grad := make([]float64, len(x))
			for i, v := range x {
				grad[i] = 2 * (v - target(i)) / float64(n)
			}
			return grad
		},
		Jet: func(x []jet.Jet[float64]) jet.Jet[float64] {
			sum := jet.Zero[float64](x[0].Dim())
			for i, v := range x {
				d := v.SubScalar(target(i))
				sum.AddAssign(d.Mul(d))
			}
			return sum.DivScalar(float64(n))
		},
	}
}

func logSumExp(x []float64) float64 {
	m := math.Inf(-1)
	for _, v := range x {
		m = math.Max(m, v)
	}
	var sum float64
	for _, v := range x {
		sum += math.Exp(v - m)
	}
	return m + math.Log(sum)
}

// logSumExpJet shifts by the largest logit. The shift carries the winner's
// gradient, which cancels between the shift and the exponentials.
func logSumExpJet(x []jet.Jet[float64]) jet.Jet[float64] {
	m := x[0]
	for _, v := range x[1:] {
		m = jet.Max(m, v)
	}
	sum := jet.Zero[float64](m.Dim())
	for _, v := range x {
		sum.AddAssign(jet.Exp(v.Sub(m)))
	}
	return m.Add(jet.Log(sum))
}
