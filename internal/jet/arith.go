package jet

// Jet ⊕ jet.
//
// With f = a + εF and g = b + εG (ε² = 0):
//
//	f + g = (a + b) + ε(F + G)
//	f · g = ab + ε(aG + bF)
//	f / g = a/b + ε(F/b - aG/b²)

// Add returns f + g.
func (f Jet[T]) Add(g Jet[T]) Jet[T] {
	checkShape("add", f.grad.Len(), g.grad.Len())
	return Jet[T]{val: f.val + g.val, grad: f.grad.Add(g.grad)}
}

// Sub returns f - g.
func (f Jet[T]) Sub(g Jet[T]) Jet[T] {
	checkShape("sub", f.grad.Len(), g.grad.Len())
	return Jet[T]{val: f.val - g.val, grad: f.grad.Sub(g.grad)}
}

// Mul returns f · g using the product rule.
func (f Jet[T]) Mul(g Jet[T]) Jet[T] {
	checkShape("mul", f.grad.Len(), g.grad.Len())
	return Jet[T]{
		val:  f.val * g.val,
		grad: g.grad.Scale(f.val).Add(f.grad.Scale(g.val)),
	}
}

// Div returns f / g using the quotient rule. A zero-valued g is not checked;
// the result follows IEEE semantics.
func (f Jet[T]) Div(g Jet[T]) Jet[T] {
	checkShape("div", f.grad.Len(), g.grad.Len())
	return Jet[T]{
		val:  f.val / g.val,
		grad: f.grad.DivScalar(g.val).Sub(g.grad.Scale(f.val).DivScalar(g.val * g.val)),
	}
}

// Neg returns -f.
func (f Jet[T]) Neg() Jet[T] {
	return Jet[T]{val: -f.val, grad: f.grad.Neg()}
}

// Jet ⊕ scalar. A scalar is a constant, so it contributes no gradient.

// AddScalar returns f + s.
func (f Jet[T]) AddScalar(s T) Jet[T] {
	return Jet[T]{val: f.val + s, grad: f.grad}
}

// SubScalar returns f - s.
func (f Jet[T]) SubScalar(s T) Jet[T] {
	return Jet[T]{val: f.val - s, grad: f.grad}
}

// MulScalar returns f · s.
func (f Jet[T]) MulScalar(s T) Jet[T] {
	return Jet[T]{val: f.val * s, grad: f.grad.Scale(s)}
}

// DivScalar returns f / s.
func (f Jet[T]) DivScalar(s T) Jet[T] {
	return Jet[T]{val: f.val / s, grad: f.grad.DivScalar(s)}
}

// Package-level forms, for call sites that read better as functions.

// Add returns f + g.
func Add[T Float](f, g Jet[T]) Jet[T] { return f.Add(g) }

// Sub returns f - g.
func Sub[T Float](f, g Jet[T]) Jet[T] { return f.Sub(g) }

// Mul returns f · g.
func Mul[T Float](f, g Jet[T]) Jet[T] { return f.Mul(g) }

// Div returns f / g.
func Div[T Float](f, g Jet[T]) Jet[T] { return f.Div(g) }

// Neg returns -f.
func Neg[T Float](f Jet[T]) Jet[T] { return f.Neg() }

// ScalarAdd returns s + f.
func ScalarAdd[T Float](s T, f Jet[T]) Jet[T] {
	return Jet[T]{val: s + f.val, grad: f.grad}
}

// ScalarSub returns s - f.
func ScalarSub[T Float](s T, f Jet[T]) Jet[T] {
	return Jet[T]{val: s - f.val, grad: f.grad.Neg()}
}

// ScalarMul returns s · f.
func ScalarMul[T Float](s T, f Jet[T]) Jet[T] {
	return Jet[T]{val: s * f.val, grad: f.grad.Scale(s)}
}

// ScalarDiv returns s / f.
//
//	s / (a + εF) = s(a - εF) / (a² - ε²F²) = s/a - ε·sF/a²
func ScalarDiv[T Float](s T, f Jet[T]) Jet[T] {
	return Jet[T]{val: s / f.val, grad: f.grad.Scale(-s).DivScalar(f.val * f.val)}
}

// Reassignment. Each is the binary operation followed by replacing the receiver.

// AddAssign sets j = j + g.
func (j *Jet[T]) AddAssign(g Jet[T]) { *j = j.Add(g) }

// SubAssign sets j = j - g.
func (j *Jet[T]) SubAssign(g Jet[T]) { *j = j.Sub(g) }

// MulAssign sets j = j · g.
func (j *Jet[T]) MulAssign(g Jet[T]) { *j = j.Mul(g) }

// DivAssign sets j = j / g.
func (j *Jet[T]) DivAssign(g Jet[T]) { *j = j.Div(g) }

// AddScalarAssign sets j = j + s.
func (j *Jet[T]) AddScalarAssign(s T) { *j = j.AddScalar(s) }

// SubScalarAssign sets j = j - s.
func (j *Jet[T]) SubScalarAssign(s T) { *j = j.SubScalar(s) }

// MulScalarAssign sets j = j · s.
func (j *Jet[T]) MulScalarAssign(s T) { *j = j.MulScalar(s) }

// DivScalarAssign sets j = j / s.
func (j *Jet[T]) DivScalarAssign(s T) { *j = j.DivScalar(s) }
