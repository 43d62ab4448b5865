package rvv

import (
	"encoding/binary"
	"math"
)

// Array is an operation result: a dense row-major buffer owned by the caller.
// An Array can be passed back as an Operand.
type Array struct {
	v View
}

func (a *Array) view() *View {
	if a == nil {
		return nil
	}
	return &a.v
}

func newArray(kind Kind, dims, rows, cols int) *Array {
	a := &Array{v: View{
		kind: kind, dims: dims, rows: rows, cols: cols,
		rowStride: cols, colStride: 1,
	}}
	if kind == Int8 {
		a.v.i8 = make([]int8, rows*cols)
	} else {
		a.v.f32 = make([]float32, rows*cols)
	}
	return a
}

// View returns a view over the array's storage.
func (a *Array) View() *View {
	v := a.v
	return &v
}

// Kind returns the element kind.
func (a *Array) Kind() Kind { return a.v.kind }

// Dims returns 1 for vectors and 2 for matrices.
func (a *Array) Dims() int { return a.v.dims }

// Shape returns rows and columns; a 1-D array has one row.
func (a *Array) Shape() (rows, cols int) { return a.v.rows, a.v.cols }

// Len returns the number of elements.
func (a *Array) Len() int { return a.v.rows * a.v.cols }

// Float32 returns the row-major float32 data, or nil for int8 arrays.
func (a *Array) Float32() []float32 { return a.v.f32 }

// Int8 returns the row-major int8 data, or nil for float32 arrays.
func (a *Array) Int8() []int8 { return a.v.i8 }

// At returns element (r, c) converted to float64.
func (a *Array) At(r, c int) float64 { return a.v.At(r, c) }

// Bytes marshals the data as little-endian bytes.
func (a *Array) Bytes() []byte {
	if a.v.kind == Int8 {
		out := make([]byte, len(a.v.i8))
		for i, x := range a.v.i8 {
			out[i] = byte(x)
		}
		return out
	}

	out := make([]byte, 4*len(a.v.f32))
	for i, x := range a.v.f32 {
		binary.LittleEndian.PutUint32(out[4*i:], math.Float32bits(x))
	}
	return out
}
