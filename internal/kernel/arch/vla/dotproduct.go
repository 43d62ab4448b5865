package vla

import "github.com/cwbudde/algo-rvv/internal/kernel/arch/generic"

// Dot returns sum(a[i] * b[i]). Each e32m4 chunk is multiplied lane-wise and
// folded into the accumulator in lane order; the tail continues the same
// accumulator in the scalar kernel.
func (k *Kernels) Dot(a, b []float32) float32 {
	n := len(a)
	vl := k.vlF32

	var va, vb, vp vfloat32
	var acc float32

	i := 0
	for ; i+vl <= n; i += vl {
		vle32(&va, a[i:], vl)
		vle32(&vb, b[i:], vl)
		vfmul(&vp, &va, &vb, vl)
		acc = vfredosum(acc, &vp, vl)
	}
	return generic.DotFrom(acc, a[i:], b[i:n])
}

// DotI8 returns the exact sum(a[i] * b[i]) of two int8 slices using e8m4
// chunks: widening multiply, int32 chunk reduction, int64 total.
func (k *Kernels) DotI8(a, b []int8) int64 {
	n := len(a)
	vl := k.vlDotI8

	var vp vint16
	var acc int64

	i := 0
	for ; i+vl <= n; i += vl {
		vwmul(&vp, a[i:], b[i:], vl)
		acc += int64(vwredsum(&vp, vl))
	}
	return generic.DotI8From(acc, a[i:], b[i:n])
}
