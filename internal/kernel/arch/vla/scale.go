package vla

import "github.com/cwbudde/algo-rvv/internal/kernel/arch/generic"

// Scale computes dst[i] = a[i] * s in e32m4 chunks (vfmul.vf).
func (k *Kernels) Scale(dst, a []float32, s float32) {
	n := len(dst)
	vl := k.vlF32

	i := 0
	for ; i+vl <= n; i += vl {
		vd := dst[i : i+vl]
		va := a[i : i+vl]
		for l := range vd {
			vd[l] = va[l] * s
		}
	}
	if i < n {
		generic.Scale(dst[i:], a[i:n], s)
	}
}

// ScaleI8 computes dst[i] = a[i] * s in e8m8 chunks (vmul.vx), wrapping modulo 2^8.
func (k *Kernels) ScaleI8(dst, a []int8, s int8) {
	n := len(dst)
	vl := k.vlI8

	i := 0
	for ; i+vl <= n; i += vl {
		vd := dst[i : i+vl]
		va := a[i : i+vl]
		for l := range vd {
			vd[l] = va[l] * s
		}
	}
	if i < n {
		generic.ScaleI8(dst[i:], a[i:n], s)
	}
}
