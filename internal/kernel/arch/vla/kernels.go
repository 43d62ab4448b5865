package vla

import (
	"fmt"

	"github.com/cwbudde/algo-rvv/internal/cpu"
	"github.com/cwbudde/algo-rvv/internal/kernel/accum"
	"github.com/cwbudde/algo-rvv/internal/kernel/registry"
)

// Kernels is the vector kernel set for one register width.
type Kernels struct {
	name string
	bits int

	vlF32   int // e32m4
	vlI8    int // e8m8
	vlDotI8 int // e8m4
	tile    int // e32m1, transpose tile edge
}

var _ registry.Kernels = (*Kernels)(nil)

// New returns the kernels for a register width of vectorBits.
// It panics if vectorBits is not a power of two in [cpu.MinVectorBits, cpu.MaxVectorBits].
func New(name string, vectorBits int) *Kernels {
	if !cpu.ValidVectorBits(vectorBits) {
		panic(fmt.Sprintf("vla: invalid vector width %d bits", vectorBits))
	}

	return &Kernels{
		name:    name,
		bits:    vectorBits,
		vlF32:   chunk(vectorBits, accum.OpAdd, accum.Float32),
		vlI8:    chunk(vectorBits, accum.OpAdd, accum.Int8),
		vlDotI8: chunk(vectorBits, accum.OpDot, accum.Int8),
		tile:    accum.ChunkSize(vectorBits, 1, accum.Float32),
	}
}

// chunk returns the lane count of the register group the policy of op
// assigns to elem.
func chunk(vectorBits int, op accum.Op, elem accum.Elem) int {
	p, ok := accum.Lookup(op, elem)
	if !ok {
		panic(fmt.Sprintf("vla: no policy for %s/%s", op, elem))
	}
	return accum.ChunkSize(vectorBits, p.LMUL, elem)
}

// Name returns the registry name the kernels were built under.
func (k *Kernels) Name() string { return k.name }

// VectorBits returns the register width in bits.
func (k *Kernels) VectorBits() int { return k.bits }

// ChunkF32 returns the float32 chunk size.
func (k *Kernels) ChunkF32() int { return k.vlF32 }

// ChunkI8 returns the int8 elementwise chunk size.
func (k *Kernels) ChunkI8() int { return k.vlI8 }

// ChunkDotI8 returns the int8 dot-product chunk size.
func (k *Kernels) ChunkDotI8() int { return k.vlDotI8 }
