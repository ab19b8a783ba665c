package ops

import (
	"math"
	"testing"

	"github.com/born-ml/jet/internal/jet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// samplePoint returns a deterministic input inside the op's domain.
func samplePoint(op Op, k int) []float64 {
	x := make([]float64, op.Arity)
	for i := range x {
		v := 0.37*float64(i+1) + 0.61*float64(k) - 1.1
		if op.Domain == Positive {
			v = math.Abs(v) + 0.25
		}
		x[i] = v
	}
	return x
}

func seed(x []float64) []jet.Jet[float64] {
	dim := jet.Dim(len(x))
	out := make([]jet.Jet[float64], len(x))
	for i, v := range x {
		out[i] = jet.Variable(dim, v, i)
	}
	return out
}

func TestOps_BackwardMatchesOracle(t *testing.T) {
	for _, op := range All() {
		t.Run(op.Name, func(t *testing.T) {
			for k := 0; k < 5; k++ {
				x := samplePoint(op, k)
				require.NoError(t, op.Validate(x))

				y := op.Forward(x)
				want := op.Jet(seed(x))
				got := op.Backward(x, y)

				assert.InDelta(t, want.Value(), y, 1e-12, "forward at %v", x)
				require.Len(t, got, op.Arity)
				for i := range got {
					assert.InDelta(t, want.Partial(i), got[i], 1e-9, "∂/∂x[%d] at %v", i, x)
				}
			}
		})
	}
}

func TestOps_Lookup(t *testing.T) {
	op, ok := Lookup("sigmoid")
	require.True(t, ok)
	assert.Equal(t, 1, op.Arity)
	assert.InDelta(t, 0.5, op.Forward([]float64{0}), 1e-15)

	_, ok = Lookup("nope")
	assert.False(t, ok)
}

func TestOps_AllSorted(t *testing.T) {
	all := All()
	require.NotEmpty(t, all)
	for i := 1; i < len(all); i++ {
		assert.Less(t, all[i-1].Name, all[i].Name)
	}
}

func TestOps_Validate(t *testing.T) {
	op, _ := Lookup("mul")
	assert.NoError(t, op.Validate([]float64{1, 2}))
	assert.EqualError(t, op.Validate([]float64{1}), "ops: mul expects 2 inputs, got 1")
}

func TestReLU_Kink(t *testing.T) {
	op, _ := Lookup("relu")
	for _, v := range []float64{-2, 0, 3} {
		x := []float64{v}
		got := op.Backward(x, op.Forward(x))
		want := op.Jet(seed(x))
		assert.Equal(t, want.Partial(0), got[0], "relu'(%v)", v)
	}
}

func TestCrossEntropy_Gradient(t *testing.T) {
	op := CrossEntropy(3, 1)
	x := []float64{0.2, 1.5, -0.3}

	grad := op.Backward(x, op.Forward(x))

	var sum float64
	for _, g := range grad {
		sum += g
	}
	// softmax sums to 1, minus the one-hot.
	assert.InDelta(t, 0, sum, 1e-12)
	assert.Less(t, grad[1], 0.0)
}

func TestCrossEntropy_BadTarget(t *testing.T) {
	assert.Panics(t, func() { CrossEntropy(3, 3) })
}

func TestLogSumExp_LargeLogits(t *testing.T) {
	op := LogSumExp(3)
	x := []float64{1000, 1001, 999}

	y := op.Forward(x)
	j := op.Jet(seed(x))

	assert.False(t, math.IsInf(y, 0))
	assert.InDelta(t, y, j.Value(), 1e-9)
	for i, g := range op.Backward(x, y) {
		assert.InDelta(t, g, j.Partial(i), 1e-12)
	}
}
