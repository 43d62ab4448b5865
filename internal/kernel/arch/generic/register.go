package generic

import (
	"github.com/cwbudde/algo-rvv/internal/cpu"
	"github.com/cwbudde/algo-rvv/internal/kernel/registry"
)

// init registers the scalar implementations with the kernel registry.
//
// The scalar kernels serve as the fallback when no vector unit is available or
// when ForceGeneric is set, and define the numeric ground truth.
//
// Priority: 0 (lowest - used only when no vector alternatives are available)
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      Name,
		SIMDLevel: cpu.SIMDNone,
		Priority:  0,
		Build: func(int) registry.Kernels {
			return Kernels{}
		},
	})
}

// Name is the registry name of the scalar implementation.
const Name = "generic"

// Kernels adapts the package functions to registry.Kernels.
type Kernels struct{}

var _ registry.Kernels = Kernels{}

func (Kernels) Name() string                      { return Name }
func (Kernels) VectorBits() int                   { return 0 }
func (Kernels) Add(dst, a, b []float32)           { Add(dst, a, b) }
func (Kernels) Sub(dst, a, b []float32)           { Sub(dst, a, b) }
func (Kernels) Scale(dst, a []float32, k float32) { Scale(dst, a, k) }
func (Kernels) Dot(a, b []float32) float32        { return Dot(a, b) }
func (Kernels) AddI8(dst, a, b []int8)            { AddI8(dst, a, b) }
func (Kernels) ScaleI8(dst, a []int8, k int8)     { ScaleI8(dst, a, k) }
func (Kernels) DotI8(a, b []int8) int64           { return DotI8(a, b) }

func (Kernels) MatMul(c []float32, ldc int, a []float32, lda int, b []float32, ldb int, m, k, n int) {
	MatMul(c, ldc, a, lda, b, ldb, m, k, n)
}

func (Kernels) MatVec(y, a []float32, lda int, x []float32, rows, cols int) {
	MatVec(y, a, lda, x, rows, cols)
}

func (Kernels) Transpose(b []float32, ldb int, a []float32, lda int, rows, cols int) {
	Transpose(b, ldb, a, lda, rows, cols)
}
