package vla

import "github.com/cwbudde/algo-rvv/internal/kernel/arch/generic"

// Add computes dst[i] = a[i] + b[i] in e32m4 chunks.
func (k *Kernels) Add(dst, a, b []float32) {
	n := len(dst)
	vl := k.vlF32

	i := 0
	for ; i+vl <= n; i += vl {
		vd := dst[i : i+vl]
		va := a[i : i+vl]
		vb := b[i : i+vl]
		for l := range vd {
			vd[l] = va[l] + vb[l]
		}
	}
	if i < n {
		generic.Add(dst[i:], a[i:n], b[i:n])
	}
}

// Sub computes dst[i] = a[i] - b[i] in e32m4 chunks.
func (k *Kernels) Sub(dst, a, b []float32) {
	n := len(dst)
	vl := k.vlF32

	i := 0
	for ; i+vl <= n; i += vl {
		vd := dst[i : i+vl]
		va := a[i : i+vl]
		vb := b[i : i+vl]
		for l := range vd {
			vd[l] = va[l] - vb[l]
		}
	}
	if i < n {
		generic.Sub(dst[i:], a[i:n], b[i:n])
	}
}

// AddI8 computes dst[i] = a[i] + b[i] in e8m8 chunks, wrapping modulo 2^8.
func (k *Kernels) AddI8(dst, a, b []int8) {
	n := len(dst)
	vl := k.vlI8

	i := 0
	for ; i+vl <= n; i += vl {
		vd := dst[i : i+vl]
		va := a[i : i+vl]
		vb := b[i : i+vl]
		for l := range vd {
			vd[l] = va[l] + vb[l]
		}
	}
	if i < n {
		generic.AddI8(dst[i:], a[i:n], b[i:n])
	}
}
