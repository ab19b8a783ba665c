package jet

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGradientVector_ZeroInitialised(t *testing.T) {
	g := NewGradientVector[float64](4)
	require.Equal(t, 4, g.Len())
	for i := 0; i < g.Len(); i++ {
		assert.Zero(t, g.At(i))
	}
}

func TestGradientVector_Elementwise(t *testing.T) {
	a := GradientVectorFrom([]float64{1, 2, 3})
	b := GradientVectorFrom([]float64{4, -5, 0.5})

	tests := []struct {
		name string
		got  GradientVector[float64]
		want []float64
	}{
		{"add", a.Add(b), []float64{5, -3, 3.5}},
		{"sub", a.Sub(b), []float64{-3, 7, 2.5}},
		{"neg", a.Neg(), []float64{-1, -2, -3}},
		{"scale", a.Scale(2), []float64{2, 4, 6}},
		{"div", a.DivScalar(2), []float64{0.5, 1, 1.5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got.Slice())
		})
	}

	// Operands are never modified.
	assert.Equal(t, []float64{1, 2, 3}, a.Slice())
	assert.Equal(t, []float64{4, -5, 0.5}, b.Slice())
}

func TestGradientVector_FromCopies(t *testing.T) {
	src := []float32{1, 2}
	g := GradientVectorFrom(src)
	src[0] = 9
	assert.Equal(t, float32(1), g.At(0))

	out := g.Slice()
	out[1] = 9
	assert.Equal(t, float32(2), g.At(1))
}

func TestGradientVector_ShapeMismatchPanics(t *testing.T) {
	a := NewGradientVector[float64](2)
	b := NewGradientVector[float64](3)

	assert.False(t, a.HasSameShape(b))
	for name, op := range map[string]func(){
		"add": func() { a.Add(b) },
		"sub": func() { a.Sub(b) },
	} {
		t.Run(name, func(t *testing.T) {
			err := Catch(op)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrShapeMismatch))

			var se *ShapeError
			require.ErrorAs(t, err, &se)
			assert.Equal(t, 2, se.Left)
			assert.Equal(t, 3, se.Right)
		})
	}
}

func TestGradientVector_IndexOutOfRange(t *testing.T) {
	g := NewGradientVector[float64](2)
	for _, i := range []int{-1, 2, 100} {
		err := Catch(func() { g.At(i) })
		assert.ErrorIs(t, err, ErrIndexOutOfRange, "At(%d)", i)

		err = Catch(func() { g.Set(i, 1) })
		assert.ErrorIs(t, err, ErrIndexOutOfRange, "Set(%d)", i)
	}
	assert.PanicsWithError(t, "jet: index out of range: index 2, length 2", func() { g.At(2) })
}

func TestGradientVector_String(t *testing.T) {
	assert.Equal(t, "(1, -2.5, 0)", GradientVectorFrom([]float64{1, -2.5, 0}).String())
	assert.Equal(t, "()", NewGradientVector[float32](0).String())
	assert.Equal(t, "(0.1)", GradientVectorFrom([]float32{0.1}).String())
}

func TestCatch_RepanicsForeignValues(t *testing.T) {
	assert.PanicsWithValue(t, "boom", func() {
		_ = Catch(func() { panic("boom") })
	})
	assert.NoError(t, Catch(func() {}))
}
