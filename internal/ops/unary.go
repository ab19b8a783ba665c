package ops

import (
	"math"

	"github.com/born-ml/jet/internal/jet"
)

func init() {
	register(unary("relu", Real, relu, reluBackward, reluJet))
	register(unary("sigmoid", Real, sigmoid, sigmoidBackward, sigmoidJet))
	register(unary("tanh", Real, math.Tanh, tanhBackward, tanhJet))
	register(unary("silu", Real, silu, siluBackward, siluJet))
	register(unary("gelu", Real, gelu, geluBackward, geluJet))
	register(unary("softplus", Real, softplus, softplusBackward, softplusJet))
	register(unary("exp", Real, math.Exp, expBackward, jet.Exp[float64]))
	register(unary("log", Positive, math.Log, logBackward, jet.Log[float64]))
	register(unary("sqrt", Positive, math.Sqrt, sqrtBackward, jet.Sqrt[float64]))
	register(unary("rsqrt", Positive, rsqrt, rsqrtBackward, rsqrtJet))
}

func unary(
	name string,
	domain Domain,
	forward func(float64) float64,
	backward func(x, y float64) float64,
	oracle func(jet.Jet[float64]) jet.Jet[float64],
) Op {
	return Op{
		Name:     name,
		Arity:    1,
		Domain:   domain,
		Forward:  func(x []float64) float64 { return forward(x[0]) },
		Backward: func(x []float64, y float64) []float64 { return []float64{backward(x[0], y)} },
		Jet:      func(x []jet.Jet[float64]) jet.Jet[float64] { return oracle(x[0]) },
	}
}

// ReLU: y = max(0, x).
//
//	dy/dx = 1 if x > 0, else 0
func relu(x float64) float64 { return math.Max(0, x) }

func reluBackward(x, _ float64) float64 {
	if x > 0 {
		return 1
	}
	return 0
}

func reluJet(x jet.Jet[float64]) jet.Jet[float64] {
	return jet.Max(jet.Zero[float64](x.Dim()), x)
}

// Sigmoid: σ(x) = 1 / (1 + exp(-x)).
//
//	dσ/dx = σ(x)(1 - σ(x)) = y(1 - y)
func sigmoid(x float64) float64 { return 1 / (1 + math.Exp(-x)) }

func sigmoidBackward(_, y float64) float64 { return y * (1 - y) }

func sigmoidJet(x jet.Jet[float64]) jet.Jet[float64] {
	return jet.ScalarDiv(1, jet.Exp(x.Neg()).AddScalar(1))
}

// Tanh: dy/dx = 1 - y².
func tanhBackward(_, y float64) float64 { return 1 - y*y }

func tanhJet(x jet.Jet[float64]) jet.Jet[float64] {
	e := jet.Exp(x.MulScalar(2))
	return e.SubScalar(1).Div(e.AddScalar(1))
}

// SiLU: y = x·σ(x).
//
//	dy/dx = σ(x)(1 + x(1 - σ(x)))
func silu(x float64) float64 { return x * sigmoid(x) }

func siluBackward(x, _ float64) float64 {
	s := sigmoid(x)
	return s * (1 + x*(1-s))
}

func siluJet(x jet.Jet[float64]) jet.Jet[float64] {
	return x.Mul(sigmoidJet(x))
}

// GELU, tanh approximation:
//
//	y = 0.5x(1 + tanh(u)), u = √(2/π)(x + 0.044715x³)
//	dy/dx = 0.5(1 + tanh(u)) + 0.5x(1 - tanh²(u))·√(2/π)(1 + 3·0.044715x²)
const geluC = 0.044715

var geluK = math.Sqrt(2 / math.Pi)

func gelu(x float64) float64 {
	return 0.5 * x * (1 + math.Tanh(geluK*(x+geluC*x*x*x)))
}

func geluBackward(x, _ float64) float64 {
	th := math.Tanh(geluK * (x + geluC*x*x*x))
	return 0.5*(1+th) + 0.5*x*(1-th*th)*geluK*(1+3*geluC*x*x)
}

func geluJet(x jet.Jet[float64]) jet.Jet[float64] {
	u := x.Add(jet.Pow(x, 3).MulScalar(geluC)).MulScalar(geluK)
	return x.MulScalar(0.5).Mul(jet.Tanh(u).AddScalar(1))
}

// Softplus: y = log(1 + exp(x)), dy/dx = σ(x).
func softplus(x float64) float64 { return math.Log1p(math.Exp(x)) }

func softplusBackward(x, _ float64) float64 { return sigmoid(x) }

func softplusJet(x jet.Jet[float64]) jet.Jet[float64] {
	return jet.Log(jet.Exp(x).AddScalar(1))
}

// Exp: dy/dx = exp(x) = y.
func expBackward(_, y float64) float64 { return y }

// Log: dy/dx = 1/x.
func logBackward(x, _ float64) float64 { return 1 / x }

// Sqrt: dy/dx = 1/(2√x) = 0.5/y.
func sqrtBackward(_, y float64) float64 { return 0.5 / y }

// Rsqrt: y = 1/√x, dy/dx = -0.5·x^(-3/2) = -0.5·y³.
func rsqrt(x float64) float64 { return 1 / math.Sqrt(x) }

func rsqrtBackward(_, y float64) float64 { return -0.5 * y * y * y }

func rsqrtJet(x jet.Jet[float64]) jet.Jet[float64] {
	return jet.ScalarDiv(1, jet.Sqrt(x))
}
