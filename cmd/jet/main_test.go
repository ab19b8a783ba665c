package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBindings(t *testing.T) {
	b, err := parseBindings("x=3, y=-4.5")
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"x": 3, "y": -4.5}, b)

	b, err = parseBindings("")
	require.NoError(t, err)
	assert.Empty(t, b)

	_, err = parseBindings("x")
	assert.Error(t, err)
	_, err = parseBindings("x=abc")
	assert.Error(t, err)
}

func TestRunEval(t *testing.T) {
	var out bytes.Buffer
	err := runEval([]string{"-at", "x=3,y=4", "(+ (* x x) y)"}, &out)
	require.NoError(t, err)
	assert.Equal(t, "[13, (6, 1)]\nd/dx = 6\nd/dy = 1\n", out.String())
}

func TestRunEval_Float32(t *testing.T) {
	var out bytes.Buffer
	err := runEval([]string{"-dtype", "float32", "-at", "x=2", "(sqrt x)"}, &out)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out.String(), "[1.4142135, (0.353553"), out.String())
}

func TestRunEval_Errors(t *testing.T) {
	var out bytes.Buffer
	assert.Error(t, runEval([]string{"(+ x y)"}, &out))
	assert.Error(t, runEval([]string{"-dtype", "int8", "-at", "x=1", "x"}, &out))
	assert.Error(t, runEval([]string{"-at", "x=1"}, &out))

	err := runEval([]string{"-at", "x=1", "(foo x)"}, &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown operator foo")
	assert.Error(t, runDot([]string{"(exp x y)"}, &out))
	_, err = runCheck([]string{"-expr", "(pow x)", "-at", "x=1"}, &out)
	assert.Error(t, err)
}

func TestRunDot(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runDot([]string{"(* x y)"}, &out))
	assert.Contains(t, out.String(), "digraph")

	out.Reset()
	require.NoError(t, runDot([]string{"-at", "x=2,y=5", "(* x y)"}, &out))
	assert.Contains(t, out.String(), "10")
}

func TestRunCheck(t *testing.T) {
	var out bytes.Buffer
	ok, err := runCheck([]string{"-points", "4", "-seed", "3"}, &out)
	require.NoError(t, err)
	assert.True(t, ok, out.String())
	assert.Contains(t, out.String(), "sigmoid")
	assert.NotContains(t, out.String(), "FAIL")
}

func TestRunCheck_Expr(t *testing.T) {
	var out bytes.Buffer
	ok, err := runCheck([]string{"-expr", "(* (exp x) (tanh y))", "-at", "x=0.3,y=-0.8"}, &out)
	require.NoError(t, err)
	assert.True(t, ok, out.String())

	_, err = runCheck([]string{"-points", "0"}, &out)
	assert.Error(t, err)
}

func TestRunCheck_ConstantPower(t *testing.T) {
	var out bytes.Buffer
	ok, err := runCheck([]string{"-expr", "(pow x 0)", "-at", "x=0"}, &out)
	require.NoError(t, err)
	assert.True(t, ok, out.String())
}
