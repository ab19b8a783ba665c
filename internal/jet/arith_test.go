package jet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pair returns two jets over the same three variables with non-trivial gradients.
func pair() (Jet[float64], Jet[float64]) {
	dim := Dim(3)
	a := Variable(dim, 1.5, 0)
	b := Variable(dim, -2.0, 1)
	c := Variable(dim, 0.75, 2)

	f := a.Mul(b).Add(c)             // grad (b, a, 1)
	g := a.Add(c.MulScalar(3)).Mul(b) // grad (b, a+3c, 3b)
	return f, g
}

func TestJet_Linearity(t *testing.T) {
	f, g := pair()
	s := 2.5

	assert.Equal(t, f.Gradient().Add(g.Gradient()).Slice(), f.Add(g).Gradient().Slice())
	assert.Equal(t, f.Gradient().Sub(g.Gradient()).Slice(), f.Sub(g).Gradient().Slice())
	assert.Equal(t, f.Gradient().Scale(s).Slice(), ScalarMul(s, f).Gradient().Slice())
	assert.Equal(t, f.Gradient().Scale(s).Slice(), f.MulScalar(s).Gradient().Slice())
	assert.Equal(t, f.Gradient().Neg().Slice(), f.Neg().Gradient().Slice())
}

func TestJet_ProductRule(t *testing.T) {
	f, g := pair()

	got := f.Mul(g)
	want := g.Gradient().Scale(f.Value()).Add(f.Gradient().Scale(g.Value()))

	assert.Equal(t, f.Value()*g.Value(), got.Value())
	assert.Equal(t, want.Slice(), got.Gradient().Slice())
}

func TestJet_QuotientRule(t *testing.T) {
	f, g := pair()
	require.NotZero(t, g.Value())

	got := f.Div(g)
	gv := g.Value()
	want := f.Gradient().DivScalar(gv).Sub(g.Gradient().Scale(f.Value()).DivScalar(gv * gv))

	assert.Equal(t, f.Value()/gv, got.Value())
	assert.Equal(t, want.Slice(), got.Gradient().Slice())
}

func TestJet_ScalarForms(t *testing.T) {
	dim := Dim(2)
	x := VariableWithDerivative(dim, 4.0, 0, 2)
	s := 3.0

	tests := []struct {
		name     string
		got      Jet[float64]
		wantVal  float64
		wantGrad []float64
	}{
		{"f+s", x.AddScalar(s), 7, []float64{2, 0}},
		{"s+f", ScalarAdd(s, x), 7, []float64{2, 0}},
		{"f-s", x.SubScalar(s), 1, []float64{2, 0}},
		{"s-f", ScalarSub(s, x), -1, []float64{-2, 0}},
		{"f*s", x.MulScalar(s), 12, []float64{6, 0}},
		{"s*f", ScalarMul(s, x), 12, []float64{6, 0}},
		{"f/s", x.DivScalar(2), 2, []float64{1, 0}},
		// s/f: gradient -s·G/v² = -3·2/16
		{"s/f", ScalarDiv(s, x), 0.75, []float64{-0.375, 0}},
		{"-f", Neg(x), -4, []float64{-2, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantVal, tt.got.Value())
			assert.Equal(t, tt.wantGrad, tt.got.Gradient().Slice())
		})
	}

	// Operands are untouched.
	assert.Equal(t, 4.0, x.Value())
	assert.Equal(t, []float64{2, 0}, x.Gradient().Slice())
}

func TestJet_PackageFormsMatchMethods(t *testing.T) {
	f, g := pair()
	assert.Equal(t, f.Add(g), Add(f, g))
	assert.Equal(t, f.Sub(g), Sub(f, g))
	assert.Equal(t, f.Mul(g), Mul(f, g))
	assert.Equal(t, f.Div(g), Div(f, g))
}

func TestJet_Assign(t *testing.T) {
	f, g := pair()

	tests := []struct {
		name   string
		assign func(*Jet[float64])
		want   Jet[float64]
	}{
		{"+=", func(j *Jet[float64]) { j.AddAssign(g) }, f.Add(g)},
		{"-=", func(j *Jet[float64]) { j.SubAssign(g) }, f.Sub(g)},
		{"*=", func(j *Jet[float64]) { j.MulAssign(g) }, f.Mul(g)},
		{"/=", func(j *Jet[float64]) { j.DivAssign(g) }, f.Div(g)},
		{"+=s", func(j *Jet[float64]) { j.AddScalarAssign(2) }, f.AddScalar(2)},
		{"-=s", func(j *Jet[float64]) { j.SubScalarAssign(2) }, f.SubScalar(2)},
		{"*=s", func(j *Jet[float64]) { j.MulScalarAssign(2) }, f.MulScalar(2)},
		{"/=s", func(j *Jet[float64]) { j.DivScalarAssign(2) }, f.DivScalar(2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			j := f
			tt.assign(&j)
			assert.Equal(t, tt.want.Value(), j.Value())
			assert.Equal(t, tt.want.Gradient().Slice(), j.Gradient().Slice())
		})
	}
}

func TestJet_ShapeViolationIsFatal(t *testing.T) {
	a := Variable(Dim(2), 1.0, 0)
	b := Variable(Dim(3), 2.0, 0)

	ops := map[string]func(){
		"add":           func() { a.Add(b) },
		"sub":           func() { a.Sub(b) },
		"mul":           func() { a.Mul(b) },
		"div":           func() { a.Div(b) },
		"add-assign":    func() { c := a; c.AddAssign(b) },
		"equal":         func() { a.Equal(b) },
		"not-equal":     func() { a.NotEqual(b) },
		"less":          func() { a.Less(b) },
		"less-equal":    func() { a.LessEqual(b) },
		"greater":       func() { a.Greater(b) },
		"greater-equal": func() { a.GreaterEqual(b) },
		"max":           func() { Max(a, b) },
		"min":           func() { Min(a, b) },
	}
	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			assert.Panics(t, op)
			assert.ErrorIs(t, Catch(op), ErrShapeMismatch)
		})
	}
}

func TestJet_ComparisonIgnoresGradient(t *testing.T) {
	dim := Dim(2)
	f := Variable(dim, 1.0, 0)
	g := VariableWithDerivative(dim, 1.0, 1, 5)
	h := Const(dim, 2.0)

	assert.True(t, Equal(f, g))
	assert.False(t, NotEqual(f, g))
	assert.True(t, LessEqual(f, g))
	assert.True(t, GreaterEqual(f, g))
	assert.False(t, Less(f, g))
	assert.False(t, Greater(f, g))

	assert.True(t, f.Less(h))
	assert.True(t, h.Greater(f))
	assert.True(t, f.NotEqual(h))
}
