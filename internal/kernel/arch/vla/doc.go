// Package vla contains the vector-length-agnostic kernels.
//
// The kernels follow the strip-mining model of the RISC-V Vector extension:
// a register group holds vl = VLEN * LMUL / SEW lanes, every operation walks
// its input in full register-group chunks and hands the remainder (the tail)
// to the scalar kernels in package generic. Partial, masked register
// operations are never used, so the tail behaves exactly like the scalar path.
//
// Reductions fold each chunk into the scalar accumulator in lane order
// (an ordered reduction, like vfredosum), which makes float32 results
// bit-identical to the scalar kernels. int8 dot products widen products to
// int16 (vwmul), reduce a chunk into an int32 partial (vwredsum) and fold
// partials into an int64 total.
//
// The set is registered for the RVV level only. Host vector units (AVX2,
// SSE2, NEON) are served by package native.
package vla
