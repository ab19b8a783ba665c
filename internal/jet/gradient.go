package jet

import (
	"strconv"
	"strings"
)

// GradientVector is a fixed-length dense vector of partial derivatives.
//
// The length is set at construction and never changes. Arithmetic methods are pure:
// they return a new vector and leave both operands untouched. Binary operations
// panic with *ShapeError when lengths differ.
type GradientVector[T Float] struct {
	v []T
}

// NewGradientVector creates a zero-initialised vector of length n.
func NewGradientVector[T Float](n int) GradientVector[T] {
	if n < 0 {
		panic("jet: negative gradient length " + strconv.Itoa(n))
	}
	return GradientVector[T]{v: make([]T, n)}
}

// GradientVectorFrom creates a vector holding a copy of values.
func GradientVectorFrom[T Float](values []T) GradientVector[T] {
	v := make([]T, len(values))
	copy(v, values)
	return GradientVector[T]{v: v}
}

// Len returns the number of elements.
func (g GradientVector[T]) Len() int {
	return len(g.v)
}

// At returns element i.
func (g GradientVector[T]) At(i int) T {
	g.checkIndex(i)
	return g.v[i]
}

// Set overwrites element i in place.
func (g GradientVector[T]) Set(i int, value T) {
	g.checkIndex(i)
	g.v[i] = value
}

// HasSameShape reports whether both vectors have the same length.
func (g GradientVector[T]) HasSameShape(other GradientVector[T]) bool {
	return len(g.v) == len(other.v)
}

// Add returns g + other elementwise.
func (g GradientVector[T]) Add(other GradientVector[T]) GradientVector[T] {
	checkShape("add", len(g.v), len(other.v))
	out := make([]T, len(g.v))
	for i := range g.v {
		out[i] = g.v[i] + other.v[i]
	}
	return GradientVector[T]{v: out}
}

// Sub returns g - other elementwise.
func (g GradientVector[T]) Sub(other GradientVector[T]) GradientVector[T] {
	checkShape("sub", len(g.v), len(other.v))
	out := make([]T, len(g.v))
	for i := range g.v {
		out[i] = g.v[i] - other.v[i]
	}
	return GradientVector[T]{v: out}
}

// Neg returns -g.
func (g GradientVector[T]) Neg() GradientVector[T] {
	out := make([]T, len(g.v))
	for i := range g.v {
		out[i] = -g.v[i]
	}
	return GradientVector[T]{v: out}
}

// Scale returns g * s.
func (g GradientVector[T]) Scale(s T) GradientVector[T] {
	out := make([]T, len(g.v))
	for i := range g.v {
		out[i] = g.v[i] * s
	}
	return GradientVector[T]{v: out}
}

// DivScalar returns g / s. Division by zero follows IEEE semantics.
func (g GradientVector[T]) DivScalar(s T) GradientVector[T] {
	out := make([]T, len(g.v))
	for i := range g.v {
		out[i] = g.v[i] / s
	}
	return GradientVector[T]{v: out}
}

// Slice returns a copy of the elements.
func (g GradientVector[T]) Slice() []T {
	out := make([]T, len(g.v))
	copy(out, g.v)
	return out
}

// Clone returns an independent copy of g.
func (g GradientVector[T]) Clone() GradientVector[T] {
	return GradientVector[T]{v: g.Slice()}
}

// String renders the vector as "(g0, g1, ...)".
func (g GradientVector[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, x := range g.v {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(formatFloat(x))
	}
	sb.WriteByte(')')
	return sb.String()
}

func (g GradientVector[T]) checkIndex(i int) {
	if i < 0 || i >= len(g.v) {
		panic(&IndexError{Index: i, Len: len(g.v)})
	}
}

func formatFloat[T Float](x T) string {
	return strconv.FormatFloat(float64(x), 'g', -1, bitSize[T]())
}
