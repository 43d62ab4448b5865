// Package native contains the float32 kernels for host vector units (AVX2,
// SSE2, NEON), backed by the github.com/tphakala/simd/f32 routines.
//
// Elementwise operations run entirely in the library. Reductions use the
// library for the lane products only and fold them into the float32
// accumulator in index order, so results stay bit-identical to the scalar
// kernels in package generic. MatMul broadcasts A[i][kk] over row kk of B with
// a vector scale followed by a vector add, which accumulates every C[i][j] in
// the same kk order as the scalar triple loop.
//
// The library has no int8 routines; int8 operations and Transpose use the
// scalar kernels.
package native
