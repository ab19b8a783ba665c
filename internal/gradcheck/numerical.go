package gradcheck

import (
	"gonum.org/v1/gonum/diff/fd"

	"github.com/born-ml/jet/internal/jet"
)

// Numerical estimates the gradient of f at point with central differences.
func Numerical(f func([]float64) float64, point []float64, cfg Config) []float64 {
	return fd.Gradient(nil, f, point, &fd.Settings{
		Formula: fd.Central,
		Step:    cfg.Step,
	})
}

// Plain adapts a jet function to a plain float64 function by evaluating it over
// zero-dimensional constants.
func Plain[T jet.Float](f Func[T]) func([]float64) float64 {
	return func(x []float64) float64 {
		in := make([]T, len(x))
		for i, v := range x {
			in[i] = T(v)
		}
		return float64(f(Constants(in)).Value())
	}
}

// CheckNumerical compares the jet gradient of f with central differences of the
// same function. It validates the oracle itself, independent of any backward pass.
func CheckNumerical[T jet.Float](f Func[T], point []T, cfg Config) (Report, error) {
	var numeric []float64
	if err := jet.Catch(func() { numeric = Numerical(Plain(f), toFloat64(point), cfg) }); err != nil {
		return Report{}, err
	}
	ref := make([]T, len(numeric))
	for i, v := range numeric {
		ref[i] = T(v)
	}
	return Check(f, point, ref, cfg)
}
