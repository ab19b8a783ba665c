package jet

import (
	"errors"
	"fmt"
)

var (
	// ErrShapeMismatch is wrapped by every panic raised when two jets or gradient
	// vectors of different dimension are combined.
	ErrShapeMismatch = errors.New("jet: shape mismatch")

	// ErrIndexOutOfRange is wrapped by every panic raised on out-of-bounds access
	// to a gradient vector.
	ErrIndexOutOfRange = errors.New("jet: index out of range")
)

// ShapeError describes a binary operation on operands of different dimension.
type ShapeError struct {
	Op    string
	Left  int
	Right int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: %s: dimension %d vs %d", ErrShapeMismatch, e.Op, e.Left, e.Right)
}

// Unwrap returns ErrShapeMismatch.
func (e *ShapeError) Unwrap() error { return ErrShapeMismatch }

// IndexError describes an out-of-bounds gradient access.
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s: index %d, length %d", ErrIndexOutOfRange, e.Index, e.Len)
}

// Unwrap returns ErrIndexOutOfRange.
func (e *IndexError) Unwrap() error { return ErrIndexOutOfRange }

// Catch runs fn and converts a shape or index violation raised inside it into an
// error. Any other panic is re-raised unchanged.
//
// Violations are fatal by default; Catch exists for callers such as test harnesses
// that must report the failure instead of aborting.
func Catch(fn func()) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		switch e := r.(type) {
		case *ShapeError:
			err = e
		case *IndexError:
			err = e
		default:
			panic(r)
		}
	}()
	fn()
	return nil
}

func checkShape(op string, left, right int) {
	if left != right {
		panic(&ShapeError{Op: op, Left: left, Right: right})
	}
}
