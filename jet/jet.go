// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package jet provides forward-mode automatic differentiation with dual numbers.
//
// A Jet holds a scalar value and its gradient with respect to a fixed number of
// independent variables. Evaluating an expression over jets yields the exact
// gradient of that expression, which makes jets a reference for checking
// hand-written backward passes.
//
// Example:
//
//	dim := jet.Dim(2)
//	x := jet.Variable(dim, 3.0, 0)
//	y := jet.Variable(dim, 4.0, 1)
//	z := x.Mul(x).Add(y)          // z = x² + y
//	fmt.Print(z)                  // [13, (6, 1)]
//	fmt.Println(z.Gradient())     // (6, 1)
//
// Combining jets of different dimension panics with an error wrapping
// ErrShapeMismatch; use Catch to turn such a violation into an error.
package jet

import (
	"github.com/born-ml/jet/internal/jet"
)

// Float is the constraint for jet element types: float32 or float64.
type Float = jet.Float

// Dim is the number of independent variables a jet tracks.
type Dim = jet.Dim

// Jet is a value paired with its gradient.
type Jet[T Float] = jet.Jet[T]

// GradientVector is the fixed-length gradient held by a Jet.
type GradientVector[T Float] = jet.GradientVector[T]

// DataType identifies the element type at runtime.
type DataType = jet.DataType

// Data type constants.
const (
	Float32 DataType = jet.Float32
	Float64 DataType = jet.Float64
)

// Error kinds raised by shape and index violations.
var (
	ErrShapeMismatch   = jet.ErrShapeMismatch
	ErrIndexOutOfRange = jet.ErrIndexOutOfRange
)

// ShapeError and IndexError are the concrete panic values.
type (
	ShapeError = jet.ShapeError
	IndexError = jet.IndexError
)

// Catch runs fn and returns a shape or index violation as an error.
func Catch(fn func()) error { return jet.Catch(fn) }

// Zero returns a jet with value 0 and zero gradient.
func Zero[T Float](dim Dim) Jet[T] { return jet.Zero[T](dim) }

// Const returns a constant with zero gradient.
func Const[T Float](dim Dim, value T) Jet[T] { return jet.Const(dim, value) }

// Variable returns independent variable i, seeded with derivative 1.
func Variable[T Float](dim Dim, value T, i int) Jet[T] { return jet.Variable(dim, value, i) }

// VariableWithDerivative returns independent variable i seeded with derivative d.
func VariableWithDerivative[T Float](dim Dim, value T, i int, d T) Jet[T] {
	return jet.VariableWithDerivative(dim, value, i, d)
}

// FromParts builds a jet from a value and a gradient. The gradient is copied.
func FromParts[T Float](value T, grad []T) Jet[T] { return jet.FromParts(value, grad) }

// NewGradientVector returns a zero gradient of length n.
func NewGradientVector[T Float](n int) GradientVector[T] { return jet.NewGradientVector[T](n) }

// GradientVectorFrom returns a gradient holding a copy of values.
func GradientVectorFrom[T Float](values []T) GradientVector[T] { return jet.GradientVectorFrom(values) }

// ParseDataType maps "float32"/"f32" and "float64"/"f64" to a DataType.
func ParseDataType(name string) (DataType, bool) { return jet.ParseDataType(name) }

// DataTypeOf returns the DataType of T.
func DataTypeOf[T Float]() DataType { return jet.DataTypeOf[T]() }

// ValueOf returns the scalar value of j.
func ValueOf[T Float](j Jet[T]) T { return jet.ValueOf(j) }

// Add returns f + g.
func Add[T Float](f, g Jet[T]) Jet[T] { return jet.Add(f, g) }

// Sub returns f - g.
func Sub[T Float](f, g Jet[T]) Jet[T] { return jet.Sub(f, g) }

// Mul returns f · g.
func Mul[T Float](f, g Jet[T]) Jet[T] { return jet.Mul(f, g) }

// Div returns f / g.
func Div[T Float](f, g Jet[T]) Jet[T] { return jet.Div(f, g) }

// Neg returns -f.
func Neg[T Float](f Jet[T]) Jet[T] { return jet.Neg(f) }

// ScalarAdd returns s + f.
func ScalarAdd[T Float](s T, f Jet[T]) Jet[T] { return jet.ScalarAdd(s, f) }

// ScalarSub returns s - f.
func ScalarSub[T Float](s T, f Jet[T]) Jet[T] { return jet.ScalarSub(s, f) }

// ScalarMul returns s · f.
func ScalarMul[T Float](s T, f Jet[T]) Jet[T] { return jet.ScalarMul(s, f) }

// ScalarDiv returns s / f.
func ScalarDiv[T Float](s T, f Jet[T]) Jet[T] { return jet.ScalarDiv(s, f) }

// Equal reports whether f and g have equal values.
func Equal[T Float](f, g Jet[T]) bool { return jet.Equal(f, g) }

// NotEqual reports whether f and g have different values.
func NotEqual[T Float](f, g Jet[T]) bool { return jet.NotEqual(f, g) }

// Less reports whether f's value is less than g's.
func Less[T Float](f, g Jet[T]) bool { return jet.Less(f, g) }

// LessEqual reports whether f's value is at most g's.
func LessEqual[T Float](f, g Jet[T]) bool { return jet.LessEqual(f, g) }

// Greater reports whether f's value is greater than g's.
func Greater[T Float](f, g Jet[T]) bool { return jet.Greater(f, g) }

// GreaterEqual reports whether f's value is at least g's.
func GreaterEqual[T Float](f, g Jet[T]) bool { return jet.GreaterEqual(f, g) }

// Exp returns e^f.
func Exp[T Float](f Jet[T]) Jet[T] { return jet.Exp(f) }

// Log returns ln f.
func Log[T Float](f Jet[T]) Jet[T] { return jet.Log(f) }

// Sqrt returns √f.
func Sqrt[T Float](f Jet[T]) Jet[T] { return jet.Sqrt(f) }

// Max returns whichever of f and g has the larger value, gradient included.
func Max[T Float](f, g Jet[T]) Jet[T] { return jet.Max(f, g) }

// Min returns whichever of f and g has the smaller value, gradient included.
func Min[T Float](f, g Jet[T]) Jet[T] { return jet.Min(f, g) }

// Pow returns f^p for a constant p.
func Pow[T Float](f Jet[T], p T) Jet[T] { return jet.Pow(f, p) }

// Tanh returns tanh f.
func Tanh[T Float](f Jet[T]) Jet[T] { return jet.Tanh(f) }

// Sigmoid returns 1/(1 + e^-f).
func Sigmoid[T Float](f Jet[T]) Jet[T] { return jet.Sigmoid(f) }

// Abs returns |f|.
func Abs[T Float](f Jet[T]) Jet[T] { return jet.Abs(f) }
