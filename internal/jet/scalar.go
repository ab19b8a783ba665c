package jet

import (
	"math"

	"github.com/chewxy/math32"
)

// Elementary scalar functions dispatched on the element type: float32 jets stay in
// float32 arithmetic instead of round-tripping through float64.

func expT[T Float](x T) T {
	if is32[T]() {
		return T(math32.Exp(float32(x)))
	}
	return T(math.Exp(float64(x)))
}

func logT[T Float](x T) T {
	if is32[T]() {
		return T(math32.Log(float32(x)))
	}
	return T(math.Log(float64(x)))
}

func sqrtT[T Float](x T) T {
	if is32[T]() {
		return T(math32.Sqrt(float32(x)))
	}
	return T(math.Sqrt(float64(x)))
}

func tanhT[T Float](x T) T {
	if is32[T]() {
		return T(math32.Tanh(float32(x)))
	}
	return T(math.Tanh(float64(x)))
}

func powT[T Float](x, p T) T {
	if is32[T]() {
		return T(math32.Pow(float32(x), float32(p)))
	}
	return T(math.Pow(float64(x), float64(p)))
}
