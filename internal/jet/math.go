package jet

// Elementary functions. For f = a + εF and a differentiable h:
//
//	h(f) = h(a) + ε·h'(a)·F
//
// Domain errors (log of a non-positive value, sqrt of a negative value) are not
// checked and surface as NaN or Inf.

// Exp returns e^f. Gradient: e^a·F.
func Exp[T Float](f Jet[T]) Jet[T] {
	s := expT(f.val)
	return Jet[T]{val: s, grad: f.grad.Scale(s)}
}

// Log returns the natural logarithm of f. Gradient: F/a.
func Log[T Float](f Jet[T]) Jet[T] {
	return Jet[T]{val: logT(f.val), grad: f.grad.DivScalar(f.val)}
}

// Sqrt returns √f. Gradient: F/(2√a).
func Sqrt[T Float](f Jet[T]) Jet[T] {
	r := sqrtT(f.val)
	return Jet[T]{val: r, grad: f.grad.DivScalar(2 * r)}
}

// Max returns g if f < g and f otherwise. The whole winning jet is returned, so
// the gradient is exactly the gradient of the larger operand.
func Max[T Float](f, g Jet[T]) Jet[T] {
	if f.Less(g) {
		return g
	}
	return f
}

// Min returns g if g < f and f otherwise, mirroring Max.
func Min[T Float](f, g Jet[T]) Jet[T] {
	if g.Less(f) {
		return g
	}
	return f
}

// Pow returns f^p for a constant exponent p. Gradient: p·a^(p-1)·F, and zero for
// p = 0 (where the formula would give 0·Inf at a = 0).
func Pow[T Float](f Jet[T], p T) Jet[T] {
	if p == 0 {
		return Jet[T]{val: powT(f.val, p), grad: NewGradientVector[T](f.grad.Len())}
	}
	return Jet[T]{val: powT(f.val, p), grad: f.grad.Scale(p * powT(f.val, p-1))}
}

// Tanh returns tanh(f). Gradient: (1 - tanh²(a))·F.
func Tanh[T Float](f Jet[T]) Jet[T] {
	t := tanhT(f.val)
	return Jet[T]{val: t, grad: f.grad.Scale(1 - t*t)}
}

// Sigmoid returns 1/(1 + e^-f). Gradient: σ(a)(1 - σ(a))·F.
func Sigmoid[T Float](f Jet[T]) Jet[T] {
	s := 1 / (1 + expT(-f.val))
	return Jet[T]{val: s, grad: f.grad.Scale(s * (1 - s))}
}

// Abs returns |f|. At a = 0 the gradient is passed through unchanged.
func Abs[T Float](f Jet[T]) Jet[T] {
	if f.val < 0 {
		return f.Neg()
	}
	return f
}
