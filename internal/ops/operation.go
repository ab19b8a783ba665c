// Package ops holds scalar operations with hand-written backward passes.
//
// Each Op carries three views of the same function:
//   - Forward: the plain float64 evaluation.
//   - Backward: the hand-derived partial derivatives, the code under test.
//   - Jet: the same function composed from jet primitives, used as the oracle.
//
// The jet form deliberately avoids reusing the backward formula, so that a wrong
// derivation shows up as a disagreement between Backward and the jet gradient.
package ops

import (
	"fmt"
	"sort"

	"github.com/born-ml/jet/internal/jet"
)

// Domain restricts where an op may be evaluated.
type Domain int

// Supported domains.
const (
	Real     Domain = iota // any finite input
	Positive               // every input > 0
)

// Op is a differentiable scalar operation of fixed arity.
type Op struct {
	Name   string
	Arity  int
	Domain Domain

	// Forward computes y = f(x).
	Forward func(x []float64) float64
	// Backward returns ∂y/∂x[i] given the inputs and the forward output.
	Backward func(x []float64, y float64) []float64
	// Jet evaluates f over jets.
	Jet func(x []jet.Jet[float64]) jet.Jet[float64]
}

// Validate checks that x matches the op's arity.
func (op Op) Validate(x []float64) error {
	if len(x) != op.Arity {
		return fmt.Errorf("ops: %s expects %d inputs, got %d", op.Name, op.Arity, len(x))
	}
	return nil
}

var registry = map[string]Op{}

func register(op Op) {
	if _, dup := registry[op.Name]; dup {
		panic("ops: duplicate op " + op.Name)
	}
	registry[op.Name] = op
}

// Lookup returns the registered op with the given name.
func Lookup(name string) (Op, bool) {
	op, ok := registry[name]
	return op, ok
}

// All returns every registered op sorted by name.
func All() []Op {
	out := make([]Op, 0, len(registry))
	for _, op := range registry {
		out = append(out, op)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
