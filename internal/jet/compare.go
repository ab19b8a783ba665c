package jet

// Comparisons look at values only; gradients are ignored. Every comparison
// still requires both jets to have the same dimension.

// Equal reports f == g.
func (f Jet[T]) Equal(g Jet[T]) bool {
	checkShape("equal", f.grad.Len(), g.grad.Len())
	return f.val == g.val
}

// NotEqual reports f != g.
func (f Jet[T]) NotEqual(g Jet[T]) bool {
	checkShape("not-equal", f.grad.Len(), g.grad.Len())
	return f.val != g.val
}

// Less reports f < g.
func (f Jet[T]) Less(g Jet[T]) bool {
	checkShape("less", f.grad.Len(), g.grad.Len())
	return f.val < g.val
}

// LessEqual reports f <= g.
func (f Jet[T]) LessEqual(g Jet[T]) bool {
	checkShape("less-equal", f.grad.Len(), g.grad.Len())
	return f.val <= g.val
}

// Greater reports f > g.
func (f Jet[T]) Greater(g Jet[T]) bool {
	checkShape("greater", f.grad.Len(), g.grad.Len())
	return f.val > g.val
}

// GreaterEqual reports f >= g.
func (f Jet[T]) GreaterEqual(g Jet[T]) bool {
	checkShape("greater-equal", f.grad.Len(), g.grad.Len())
	return f.val >= g.val
}

// Equal reports f == g.
func Equal[T Float](f, g Jet[T]) bool { return f.Equal(g) }

// NotEqual reports f != g.
func NotEqual[T Float](f, g Jet[T]) bool { return f.NotEqual(g) }

// Less reports f < g.
func Less[T Float](f, g Jet[T]) bool { return f.Less(g) }

// LessEqual reports f <= g.
func LessEqual[T Float](f, g Jet[T]) bool { return f.LessEqual(g) }

// Greater reports f > g.
func Greater[T Float](f, g Jet[T]) bool { return f.Greater(g) }

// GreaterEqual reports f >= g.
func GreaterEqual[T Float](f, g Jet[T]) bool { return f.GreaterEqual(g) }
