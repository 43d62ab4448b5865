package native

import (
	"github.com/tphakala/simd/f32"

	"github.com/cwbudde/algo-rvv/internal/kernel/arch/generic"
	"github.com/cwbudde/algo-rvv/internal/kernel/registry"
)

// block is the number of lane products formed per library call in Dot.
const block = 256

// Kernels is the host SIMD kernel set.
type Kernels struct {
	name string
	bits int
}

var _ registry.Kernels = (*Kernels)(nil)

// New returns the kernels registered under name for a register width of
// vectorBits. The width is informational; the library picks its own
// instruction set at startup.
func New(name string, vectorBits int) *Kernels {
	return &Kernels{name: name, bits: vectorBits}
}

// Name returns the registry name the kernels were built under.
func (k *Kernels) Name() string { return k.name }

// VectorBits returns the register width in bits.
func (k *Kernels) VectorBits() int { return k.bits }

// Add computes dst[i] = a[i] + b[i].
func (k *Kernels) Add(dst, a, b []float32) {
	n := len(dst)
	f32.Add(dst, a[:n], b[:n])
}

// Sub computes dst[i] = a[i] - b[i].
func (k *Kernels) Sub(dst, a, b []float32) {
	n := len(dst)
	f32.Sub(dst, a[:n], b[:n])
}

// Scale computes dst[i] = a[i] * s.
func (k *Kernels) Scale(dst, a []float32, s float32) {
	f32.Scale(dst, a[:len(dst)], s)
}

// Dot forms lane products a block at a time and adds them in index order.
func (k *Kernels) Dot(a, b []float32) float32 {
	n := len(a)
	b = b[:n]

	var prod [block]float32
	var acc float32
	for i := 0; i < n; i += block {
		m := min(block, n-i)
		f32.Mul(prod[:m], a[i:i+m], b[i:i+m])
		for _, p := range prod[:m] {
			acc += p
		}
	}
	return acc
}

// AddI8 computes dst[i] = a[i] + b[i] with wraparound.
func (k *Kernels) AddI8(dst, a, b []int8) { generic.AddI8(dst, a, b) }

// ScaleI8 computes dst[i] = a[i] * s with wraparound.
func (k *Kernels) ScaleI8(dst, a []int8, s int8) { generic.ScaleI8(dst, a, s) }

// DotI8 returns the exact int8 dot product.
func (k *Kernels) DotI8(a, b []int8) int64 { return generic.DotI8(a, b) }

// MatMul computes C = A * B one output row at a time:
// C[i][:] += A[i][kk] * B[kk][:] for kk in order.
func (k *Kernels) MatMul(c []float32, ldc int, a []float32, lda int, b []float32, ldb int, m, kdim, n int) {
	tmp := make([]float32, n)
	for i := 0; i < m; i++ {
		crow := c[i*ldc : i*ldc+n]
		clear(crow)
		for kk, av := range a[i*lda : i*lda+kdim] {
			f32.Scale(tmp, b[kk*ldb:kk*ldb+n], av)
			f32.Add(crow, crow, tmp)
		}
	}
}

// MatVec computes y = A * x with one ordered dot product per row.
func (k *Kernels) MatVec(y, a []float32, lda int, x []float32, rows, cols int) {
	x = x[:cols]
	for i := 0; i < rows; i++ {
		y[i] = k.Dot(a[i*lda:i*lda+cols], x)
	}
}

// Transpose writes B = A^T.
func (k *Kernels) Transpose(b []float32, ldb int, a []float32, lda int, rows, cols int) {
	generic.Transpose(b, ldb, a, lda, rows, cols)
}
