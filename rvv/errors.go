package rvv

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrShapeMismatch reports operand lengths or dimensions that do not satisfy
	// the operation (equal length for elementwise ops, A.cols == B.rows for
	// matmul), empty operands, and wrong dimensionality.
	ErrShapeMismatch = errors.New("rvv: shape mismatch")

	// ErrTypeMismatch reports an element kind the operation does not accept or
	// operands of different kinds.
	ErrTypeMismatch = errors.New("rvv: type mismatch")

	// ErrLayout reports a strided view whose stride pattern the kernels cannot
	// consume (columns must be unit-stride, rows at least Cols apart).
	ErrLayout = errors.New("rvv: unsupported layout")
)

// OpError describes a rejected operation.
type OpError struct {
	Op     string // operation name, e.g. "add", "matmul"
	Err    error  // one of the package sentinels
	Detail string // operand description, e.g. "a.len=4 vs b.len=5"
}

func (e *OpError) Error() string {
	msg := strings.TrimPrefix(e.Err.Error(), "rvv: ")
	if e.Detail == "" {
		return fmt.Sprintf("rvv: %s: %s", e.Op, msg)
	}
	return fmt.Sprintf("rvv: %s: %s: %s", e.Op, msg, e.Detail)
}

// Unwrap returns the sentinel error.
func (e *OpError) Unwrap() error {
	return e.Err
}

func shapeErr(op, format string, args ...any) error {
	return &OpError{Op: op, Err: ErrShapeMismatch, Detail: fmt.Sprintf(format, args...)}
}

func typeErr(op, format string, args ...any) error {
	return &OpError{Op: op, Err: ErrTypeMismatch, Detail: fmt.Sprintf(format, args...)}
}

func layoutErr(op, format string, args ...any) error {
	return &OpError{Op: op, Err: ErrLayout, Detail: fmt.Sprintf(format, args...)}
}
