package rvv

import (
	"encoding/binary"
	"math"
	"unsafe"
)

// Operand is an input to an operation: a *View or an *Array.
type Operand interface {
	view() *View
}

// View is a non-owning descriptor of caller-owned storage: an element kind, a
// 1-D or 2-D row-major shape and row/column strides in elements. Creating a
// View never copies; the caller must keep the storage alive and unmodified
// for the duration of a call that reads it.
type View struct {
	kind Kind
	f32  []float32
	i8   []int8

	dims      int
	rows      int
	cols      int
	rowStride int
	colStride int
}

func (v *View) view() *View { return v }

// FromFloat32 wraps data as a float32 view. With no shape, or a single
// dimension, the view is 1-D; with two dimensions it is a dense rows×cols
// matrix. The product of the dimensions must equal len(data).
func FromFloat32(data []float32, shape ...int) (*View, error) {
	dims, rows, cols, err := parseShape(len(data), shape)
	if err != nil {
		return nil, err
	}
	return &View{
		kind: Float32, f32: data,
		dims: dims, rows: rows, cols: cols,
		rowStride: cols, colStride: 1,
	}, nil
}

// FromInt8 wraps data as an int8 view; shape rules follow FromFloat32.
func FromInt8(data []int8, shape ...int) (*View, error) {
	dims, rows, cols, err := parseShape(len(data), shape)
	if err != nil {
		return nil, err
	}
	return &View{
		kind: Int8, i8: data,
		dims: dims, rows: rows, cols: cols,
		rowStride: cols, colStride: 1,
	}, nil
}

// StridedFloat32 wraps data as a rows×cols matrix whose element (i, j) is
// data[i*rowStride + j*colStride]. The operations accept unit column stride
// with rows at least cols apart (padded rows); other patterns are rejected
// with ErrLayout when used.
func StridedFloat32(data []float32, rows, cols, rowStride, colStride int) (*View, error) {
	if err := checkStrides(len(data), rows, cols, rowStride, colStride); err != nil {
		return nil, err
	}
	return &View{
		kind: Float32, f32: data,
		dims: 2, rows: rows, cols: cols,
		rowStride: rowStride, colStride: colStride,
	}, nil
}

// StridedInt8 is the int8 counterpart of StridedFloat32.
func StridedInt8(data []int8, rows, cols, rowStride, colStride int) (*View, error) {
	if err := checkStrides(len(data), rows, cols, rowStride, colStride); err != nil {
		return nil, err
	}
	return &View{
		kind: Int8, i8: data,
		dims: 2, rows: rows, cols: cols,
		rowStride: rowStride, colStride: colStride,
	}, nil
}

// FromBytes interprets raw as little-endian elements of kind with the given
// shape. int8 views alias raw; float32 data is decoded into a new slice.
func FromBytes(kind Kind, raw []byte, shape ...int) (*View, error) {
	size := kind.Size()
	if size == 0 {
		return nil, typeErr("view", "dtype=%s", kind)
	}
	if len(raw)%size != 0 {
		return nil, shapeErr("view", "%d bytes is not a multiple of the %s size %d", len(raw), kind, size)
	}

	switch kind {
	case Int8:
		var data []int8
		if len(raw) > 0 {
			data = unsafe.Slice((*int8)(unsafe.Pointer(&raw[0])), len(raw))
		}
		return FromInt8(data, shape...)
	default:
		data := make([]float32, len(raw)/4)
		for i := range data {
			data[i] = math.Float32frombits(binary.LittleEndian.Uint32(raw[4*i:]))
		}
		return FromFloat32(data, shape...)
	}
}

func parseShape(n int, shape []int) (dims, rows, cols int, err error) {
	switch len(shape) {
	case 0:
		return 1, 1, n, nil
	case 1:
		if shape[0] != n {
			return 0, 0, 0, shapeErr("view", "shape=(%d) for %d elements", shape[0], n)
		}
		return 1, 1, n, nil
	case 2:
		r, c := shape[0], shape[1]
		if r < 0 || c < 0 || !holds(n, r, c) {
			return 0, 0, 0, shapeErr("view", "shape=(%d,%d) for %d elements", r, c, n)
		}
		return 2, r, c, nil
	default:
		return 0, 0, 0, shapeErr("view", "ndim=%d, want 1 or 2", len(shape))
	}
}

func checkStrides(n, rows, cols, rowStride, colStride int) error {
	if rows < 0 || cols < 0 {
		return shapeErr("view", "shape=(%d,%d)", rows, cols)
	}
	if rowStride < 0 || colStride < 0 {
		return layoutErr("view", "strides=(%d,%d)", rowStride, colStride)
	}
	if rows == 0 || cols == 0 {
		return nil
	}
	if rows > math.MaxInt/cols || !within(n, rows, cols, rowStride, colStride) {
		return shapeErr("view", "shape=(%d,%d) strides=(%d,%d) exceeds %d elements",
			rows, cols, rowStride, colStride, n)
	}
	return nil
}

// holds reports whether rows*cols == n without forming the product.
func holds(n, rows, cols int) bool {
	if cols == 0 {
		return n == 0
	}
	return n%cols == 0 && rows == n/cols
}

// within reports whether (rows-1)*rowStride + (cols-1)*colStride < n, with
// every operand non-negative and rows, cols >= 1, without overflowing.
func within(n, rows, cols, rowStride, colStride int) bool {
	room := n - 1
	if room < 0 {
		return false
	}
	if rowStride > 0 {
		if rows-1 > room/rowStride {
			return false
		}
		room -= (rows - 1) * rowStride
	}
	if colStride > 0 && cols-1 > room/colStride {
		return false
	}
	return true
}

// Kind returns the element kind.
func (v *View) Kind() Kind { return v.kind }

// Dims returns 1 for vectors and 2 for matrices.
func (v *View) Dims() int { return v.dims }

// Shape returns the logical rows and columns; a 1-D view has one row.
func (v *View) Shape() (rows, cols int) { return v.rows, v.cols }

// Len returns the number of logical elements.
func (v *View) Len() int { return v.rows * v.cols }

// Strides returns the row and column strides in elements.
func (v *View) Strides() (rowStride, colStride int) { return v.rowStride, v.colStride }

// At returns element (r, c) converted to float64. For 1-D views r must be 0.
func (v *View) At(r, c int) float64 {
	i := r*v.rowStride + c*v.colStride
	if v.kind == Int8 {
		return float64(v.i8[i])
	}
	return float64(v.f32[i])
}

// contiguous reports rows packed back to back with no padding.
func (v *View) contiguous() bool {
	return v.colStride == 1 && (v.rows == 1 || v.rowStride == v.cols)
}

// supportedLayout reports unit column stride with non-overlapping rows.
func (v *View) supportedLayout() bool {
	if v.rows <= 1 {
		return v.colStride == 1 || v.cols <= 1
	}
	return v.colStride == 1 && v.rowStride >= v.cols
}

// ld is the leading dimension passed to the 2-D kernels.
func (v *View) ld() int {
	if v.rows <= 1 {
		return v.cols
	}
	return v.rowStride
}

// span returns the float32 storage the view covers, from element (0, 0) to
// element (rows-1, cols-1).
func (v *View) span32() []float32 {
	return v.f32[:(v.rows-1)*v.ld()+v.cols]
}

func (v *View) span8() []int8 {
	return v.i8[:(v.rows-1)*v.ld()+v.cols]
}

func (v *View) row32(r int) []float32 {
	off := r * v.ld()
	return v.f32[off : off+v.cols]
}

func (v *View) row8(r int) []int8 {
	off := r * v.ld()
	return v.i8[off : off+v.cols]
}
