// Package jet implements forward-mode automatic differentiation with dual numbers.
//
// A Jet carries a scalar value together with the full vector of partial derivatives
// of that value with respect to a fixed set of independent variables. Every operation
// on jets applies the corresponding derivative rule (sum, product, quotient, chain rule),
// so evaluating an ordinary expression over jets yields its exact gradient.
//
// Usage:
//
//	dim := jet.Dim(2)
//	x := jet.Variable(dim, 3.0, 0)
//	y := jet.Variable(dim, 4.0, 1)
//	z := x.Mul(x).Add(y)        // z = x² + y
//	fmt.Print(z)                // [13, (6, 1)]
//
// Jets are used as a ground-truth oracle for hand-written backward passes.
package jet

import "unsafe"

// Float is the constraint for jet element types.
type Float interface {
	~float32 | ~float64
}

// DataType represents runtime type information for jet elements.
type DataType int

// Supported element types.
const (
	Float32 DataType = iota
	Float64
)

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	default:
		return "unknown"
	}
}

// ParseDataType maps a name as printed by String back to its DataType.
func ParseDataType(name string) (DataType, bool) {
	switch name {
	case "float32", "f32":
		return Float32, true
	case "float64", "f64":
		return Float64, true
	default:
		return 0, false
	}
}

// is32 reports whether T is a 32-bit float, including named ~float32 types.
func is32[T Float]() bool {
	var zero T
	return unsafe.Sizeof(zero) == 4
}

// bitSize returns the width used when formatting values of T.
func bitSize[T Float]() int {
	if is32[T]() {
		return 32
	}
	return 64
}

// DataTypeOf infers the DataType for T.
func DataTypeOf[T Float]() DataType {
	if bitSize[T]() == 32 {
		return Float32
	}
	return Float64
}
