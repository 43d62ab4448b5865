// Package rvv is a small vector and matrix math library over contiguous int8
// and float32 buffers.
//
// Every operation is implemented twice: a scalar reference kernel and a
// vectorized kernel built around the RISC-V Vector strip-mining model
// (register groups of VLEN*LMUL/SEW lanes, full chunks followed by a scalar
// tail). An Engine picks one of the two once, from the CPU capability detected
// at startup or from explicit configuration, and every call is routed through
// that choice. Both paths produce identical results: float32 reductions are
// accumulated strictly in index order and int8 dot products are exact.
//
// # Buffers
//
// Inputs are Views: non-owning descriptors of caller-owned slices with an
// element kind and a 1-D or 2-D row-major shape. Constructing a View never
// copies. Results are freshly allocated dense Views owned by the caller.
//
//	a, _ := rvv.FromFloat32([]float32{1, 2, 3, 4})
//	b, _ := rvv.FromFloat32([]float32{5, 6, 7, 8})
//	sum, _ := rvv.Add(a, b)   // [6 8 10 12]
//	dot, _ := rvv.Dot(a, b)   // 70
//
// # Operations
//
// float32 vectors: Add, Sub, Scale, Dot, NormL2, Normalize (and the in-place
// AddInto, SubInto, ScaleInto).
// float32 matrices: Add2D, Scale2D, MatMul, MatVec, Transpose.
// int8: AddI8, ScaleI8, DotI8, Add2DI8, Scale2DI8 (and AddI8Into).
//
// # Numeric policy
//
// int8 arithmetic wraps modulo 2^8. DotI8 widens products and accumulates in
// int64, so it is exact. float32 results follow IEEE rounding with no fused
// multiply-add; NaN and Inf propagate and are never reported as errors.
//
// # Errors
//
// Operands are validated before any kernel runs. Failures wrap
// ErrShapeMismatch, ErrTypeMismatch or ErrLayout in an *OpError naming the
// operation; no partial output is produced.
package rvv
