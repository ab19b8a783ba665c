package jet

import "strings"

// Dim is the number of independent variables a jet tracks.
type Dim int

// Jet is a dual number: a scalar value and its gradient with respect to Dim
// independent variables.
//
// Jets are values. Operations never modify their operands; only Set and the
// ...Assign methods replace the receiver's content.
type Jet[T Float] struct {
	val  T
	grad GradientVector[T]
}

// Zero returns a jet with value 0 and zero gradient.
func Zero[T Float](dim Dim) Jet[T] {
	return Jet[T]{grad: NewGradientVector[T](int(dim))}
}

// Const returns a constant: the given value with zero gradient.
func Const[T Float](dim Dim, value T) Jet[T] {
	return Jet[T]{val: value, grad: NewGradientVector[T](int(dim))}
}

// Variable returns the independent variable i: derivative 1 at position i and
// 0 elsewhere.
func Variable[T Float](dim Dim, value T, i int) Jet[T] {
	return VariableWithDerivative(dim, value, i, 1)
}

// VariableWithDerivative is Variable with an explicit seed derivative.
func VariableWithDerivative[T Float](dim Dim, value T, i int, derivative T) Jet[T] {
	j := Const(dim, value)
	j.grad.Set(i, derivative)
	return j
}

// FromParts builds a jet from a value and a gradient. The gradient is copied.
func FromParts[T Float](value T, grad []T) Jet[T] {
	return Jet[T]{val: value, grad: GradientVectorFrom(grad)}
}

// Set makes j the independent variable i with the given value: the whole
// gradient is reset to zero, then slot i is set to 1.
func (j *Jet[T]) Set(value T, i int) {
	j.SetWithDerivative(value, i, 1)
}

// SetWithDerivative is Set with an explicit seed derivative.
func (j *Jet[T]) SetWithDerivative(value T, i int, derivative T) {
	// A fresh vector keeps copies of j that share the old storage intact.
	grad := NewGradientVector[T](j.grad.Len())
	grad.Set(i, derivative)
	j.val = value
	j.grad = grad
}

// Value returns the scalar value. The gradient is not consulted.
func (j Jet[T]) Value() T {
	return j.val
}

// ValueOf returns the scalar value of j.
func ValueOf[T Float](j Jet[T]) T {
	return j.val
}

// Dim returns the number of tracked variables.
func (j Jet[T]) Dim() Dim {
	return Dim(j.grad.Len())
}

// Gradient returns a copy of the gradient vector.
func (j Jet[T]) Gradient() GradientVector[T] {
	return j.grad.Clone()
}

// Partial returns the derivative with respect to variable i.
func (j Jet[T]) Partial(i int) T {
	return j.grad.At(i)
}

// HasSameShape reports whether j and other track the same number of variables.
func (j Jet[T]) HasSameShape(other Jet[T]) bool {
	return j.grad.HasSameShape(other.grad)
}

// String renders j as "[value, (g0, g1, ...)]" followed by a newline.
// It is meant for diagnostics only.
func (j Jet[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	sb.WriteString(formatFloat(j.val))
	sb.WriteString(", ")
	sb.WriteString(j.grad.String())
	sb.WriteString("]\n")
	return sb.String()
}
