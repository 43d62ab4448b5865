package rvv

import (
	"errors"
	"testing"
)

func TestOperationErrors(t *testing.T) {
	e := Scalar()

	f4, _ := FromFloat32([]float32{1, 2, 3, 4})
	f5, _ := FromFloat32([]float32{1, 2, 3, 4, 5})
	f0, _ := FromFloat32(nil)
	i4, _ := FromInt8([]int8{1, 2, 3, 4})
	i5, _ := FromInt8([]int8{1, 2, 3, 4, 5})
	m23, _ := FromFloat32(make([]float32, 6), 2, 3)
	m22, _ := FromFloat32(make([]float32, 4), 2, 2)
	m32, _ := FromFloat32(make([]float32, 6), 3, 2)
	mi23, _ := FromInt8(make([]int8, 6), 2, 3)
	mi32, _ := FromInt8(make([]int8, 6), 3, 2)
	colMajor, _ := StridedFloat32(make([]float32, 6), 2, 3, 1, 2)
	overlap, _ := StridedFloat32(make([]float32, 6), 2, 3, 2, 1)

	tests := []struct {
		name    string
		run     func() error
		want    error
		message string
	}{
		{"add length", func() error { _, err := e.Add(f4, f5); return err },
			ErrShapeMismatch, "rvv: add: shape mismatch: a.len=4 vs b.len=5"},
		{"add dtype", func() error { _, err := e.Add(f4, i4); return err },
			ErrTypeMismatch, "rvv: add: type mismatch: b.dtype=int8, want float32"},
		{"add empty", func() error { _, err := e.Add(f0, f0); return err },
			ErrShapeMismatch, "rvv: add: shape mismatch: a is empty"},
		{"add matrix", func() error { _, err := e.Add(m22, f4); return err },
			ErrShapeMismatch, "rvv: add: shape mismatch: a.ndim=2, want 1"},
		{"add nil", func() error { _, err := e.Add(nil, f4); return err },
			ErrShapeMismatch, "rvv: add: shape mismatch: a is nil"},
		{"sub length", func() error { _, err := e.Sub(f5, f4); return err },
			ErrShapeMismatch, "rvv: sub: shape mismatch: a.len=5 vs b.len=4"},
		{"scale dtype", func() error { _, err := e.Scale(i4, 2); return err },
			ErrTypeMismatch, ""},
		{"dot length", func() error { _, err := e.Dot(f4, f5); return err },
			ErrShapeMismatch, "rvv: dot: shape mismatch: a.len=4 vs b.len=5"},
		{"norm empty", func() error { _, err := e.NormL2(f0); return err },
			ErrShapeMismatch, ""},
		{"normalize dtype", func() error { _, err := e.Normalize(i4); return err },
			ErrTypeMismatch, ""},
		{"matmul inner", func() error { _, err := e.MatMul(m23, m23); return err },
			ErrShapeMismatch, "rvv: matmul: shape mismatch: a.cols=3 vs b.rows=2"},
		{"matmul vector", func() error { _, err := e.MatMul(f4, m22); return err },
			ErrShapeMismatch, ""},
		{"matmul layout", func() error { _, err := e.MatMul(colMajor, m32); return err },
			ErrLayout, "rvv: matmul: unsupported layout: a.strides=(1,2) for 3 columns"},
		{"matmul overlapping rows", func() error { _, err := e.MatMul(overlap, m32); return err },
			ErrLayout, ""},
		{"transpose vector", func() error { _, err := e.Transpose(f4); return err },
			ErrShapeMismatch, ""},
		{"mv length", func() error { _, err := e.MatVec(m23, f4); return err },
			ErrShapeMismatch, "rvv: mv: shape mismatch: a.cols=3 vs x.len=4"},
		{"add2d shape", func() error { _, err := e.Add2D(m23, m32); return err },
			ErrShapeMismatch, "rvv: add2d: shape mismatch: a.shape=(2,3) vs b.shape=(3,2)"},
		{"add_i8 dtype", func() error { _, err := e.AddI8(f4, f4); return err },
			ErrTypeMismatch, "rvv: add_i8: type mismatch: a.dtype=float32, want int8"},
		{"add_i8 length", func() error { _, err := e.AddI8(i4, i5); return err },
			ErrShapeMismatch, ""},
		{"dot_i8 length", func() error { _, err := e.DotI8(i5, i4); return err },
			ErrShapeMismatch, "rvv: dot_i8: shape mismatch: a.len=5 vs b.len=4"},
		{"add2d_i8 shape", func() error { _, err := e.Add2DI8(mi23, mi32); return err },
			ErrShapeMismatch, ""},
		{"add2d_i8 dtype", func() error { _, err := e.Add2DI8(m23, mi23); return err },
			ErrTypeMismatch, ""},
		{"scale2d_i8 vector", func() error { _, err := e.Scale2DI8(i4, 2); return err },
			ErrShapeMismatch, ""},
		{"add into short dst", func() error { return e.AddInto(f5, f4, f4) },
			ErrShapeMismatch, "rvv: add: shape mismatch: dst.len=5 vs a.len=4"},
		{"add_i8 into dtype", func() error { return e.AddI8Into(f4, i4, i4) },
			ErrTypeMismatch, ""},
		{"dtype before layout", func() error { _, err := e.Add2DI8(colMajor, mi23); return err },
			ErrTypeMismatch, ""},
		{"layout before shape", func() error { _, err := e.Add2D(colMajor, m32); return err },
			ErrLayout, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.run()
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
			var opErr *OpError
			if !errors.As(err, &opErr) {
				t.Fatalf("err %T is not *OpError", err)
			}
			if tt.message != "" && err.Error() != tt.message {
				t.Errorf("message = %q, want %q", err.Error(), tt.message)
			}
		})
	}
}

func TestNilArrayOperand(t *testing.T) {
	var a *Array
	f, _ := FromFloat32([]float32{1})
	if _, err := Scalar().Add(a, f); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("nil array: err = %v", err)
	}
}

func TestOpErrorWithoutDetail(t *testing.T) {
	err := &OpError{Op: "dot", Err: ErrTypeMismatch}
	if got := err.Error(); got != "rvv: dot: type mismatch" {
		t.Errorf("Error() = %q", got)
	}
}
