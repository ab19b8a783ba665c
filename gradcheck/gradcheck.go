// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package gradcheck verifies gradients against the jet oracle.
//
// Example:
//
//	f := func(x []jet.Jet[float64]) jet.Jet[float64] {
//	    return jet.Sigmoid(x[0])
//	}
//	s := 1 / (1 + math.Exp(-0.3))
//	report, err := gradcheck.Check(f, []float64{0.3}, []float64{s * (1 - s)}, gradcheck.DefaultConfig())
//	if err == nil {
//	    err = report.Err() // nil when every element is within tolerance
//	}
package gradcheck

import (
	"github.com/born-ml/jet/internal/gradcheck"
	"github.com/born-ml/jet/jet"
)

// Func is a scalar function of jets.
type Func[T jet.Float] = gradcheck.Func[T]

// Config controls tolerances, finite-difference step and parallelism.
type Config = gradcheck.Config

// Report is the outcome of one comparison.
type Report = gradcheck.Report

// Mismatch is one out-of-tolerance element.
type Mismatch = gradcheck.Mismatch

// Case is one named check; Result its outcome.
type (
	Case[T jet.Float] = gradcheck.Case[T]
	Result            = gradcheck.Result
)

// ErrGradientMismatch is wrapped by Report.Err.
var ErrGradientMismatch = gradcheck.ErrGradientMismatch

// DefaultConfig returns tolerances suited to float64.
func DefaultConfig() Config { return gradcheck.DefaultConfig() }

// Float32Config returns tolerances suited to float32.
func Float32Config() Config { return gradcheck.Float32Config() }

// Seed returns one jet per coordinate of point, jet i seeded at index i.
func Seed[T jet.Float](point []T) []jet.Jet[T] { return gradcheck.Seed(point) }

// Gradient evaluates f at point and returns its value and jet gradient.
func Gradient[T jet.Float](f Func[T], point []T) (T, []T, error) {
	return gradcheck.Gradient(f, point)
}

// Check compares the jet gradient of f at point with reference.
func Check[T jet.Float](f Func[T], point, reference []T, cfg Config) (Report, error) {
	return gradcheck.Check(f, point, reference, cfg)
}

// CheckNumerical compares the jet gradient of f with central differences.
func CheckNumerical[T jet.Float](f Func[T], point []T, cfg Config) (Report, error) {
	return gradcheck.CheckNumerical(f, point, cfg)
}

// CheckAll runs cases concurrently and returns results in input order.
func CheckAll[T jet.Float](cases []Case[T], cfg Config) []Result {
	return gradcheck.CheckAll(cases, cfg)
}
