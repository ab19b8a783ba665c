package gradcheck

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/born-ml/jet/internal/jet"
	"github.com/born-ml/jet/internal/ops"
)

// OpCase builds a case checking op's hand-written backward pass at point.
func OpCase(op ops.Op, point []float64) (Case[float64], error) {
	if err := op.Validate(point); err != nil {
		return Case[float64]{}, err
	}
	return Case[float64]{
		Name:      fmt.Sprintf("%s%v", op.Name, point),
		F:         func(x []jet.Jet[float64]) jet.Jet[float64] { return op.Jet(x) },
		Point:     point,
		Reference: op.Backward(point, op.Forward(point)),
	}, nil
}

// SamplePoint draws an input for op from rng: uniform in [-3, 3], or in
// [0.1, 3] for ops restricted to positive inputs. Points within 1e-3 of zero are
// nudged away to stay clear of kinks such as ReLU's.
func SamplePoint(op ops.Op, rng *rand.Rand) []float64 {
	x := make([]float64, op.Arity)
	for i := range x {
		if op.Domain == ops.Positive {
			x[i] = 0.1 + 2.9*rng.Float64()
			continue
		}
		v := -3 + 6*rng.Float64()
		if math.Abs(v) < 1e-3 {
			v = math.Copysign(1e-3, v)
		}
		x[i] = v
	}
	return x
}

// OpCases builds n sampled cases for every op.
func OpCases(all []ops.Op, n int, rng *rand.Rand) []Case[float64] {
	cases := make([]Case[float64], 0, len(all)*n)
	for _, op := range all {
		for k := 0; k < n; k++ {
			c, err := OpCase(op, SamplePoint(op, rng))
			if err != nil {
				// SamplePoint always honours the arity.
				panic(err)
			}
			cases = append(cases, c)
		}
	}
	return cases
}
