// Package accum defines the type-conversion and accumulation policy shared by
// the scalar and vector kernels.
//
// For every (operation, element type) pair the policy fixes the accumulator
// width, the overflow rule and the reduction order. The scalar kernels are the
// ground truth for these rules; the vector kernels must reproduce them exactly.
//
// Rules in force:
//
//   - int8 elementwise arithmetic wraps modulo 2^8 (native two's complement),
//     it never saturates.
//   - int8 dot products widen each product to int16, reduce a chunk into an
//     int32 partial and fold partials into an int64 total. The result is exact
//     for any length up to MaxExactDotI8Len.
//   - float32 reductions accumulate in float32, strictly in index order. Every
//     product is rounded to float32 before it is added (no fused multiply-add),
//     which keeps the vector and scalar paths bit-identical.
//   - Non-finite float inputs propagate; there are no numeric-domain errors.
package accum

import "fmt"

// Elem is an element type understood by the kernels.
type Elem int

const (
	Float32 Elem = iota
	Int8
)

// String returns the numpy-style name of the element type.
func (e Elem) String() string {
	switch e {
	case Float32:
		return "float32"
	case Int8:
		return "int8"
	default:
		return fmt.Sprintf("Elem(%d)", int(e))
	}
}

// Bits returns the element width (SEW) in bits.
func (e Elem) Bits() int {
	switch e {
	case Float32:
		return 32
	case Int8:
		return 8
	default:
		return 0
	}
}

// Op identifies a kernel operation.
type Op string

const (
	OpAdd       Op = "add"
	OpSub       Op = "sub"
	OpScale     Op = "scale"
	OpDot       Op = "dot"
	OpNormL2    Op = "norm_l2"
	OpNormalize Op = "normalize"
	OpMatMul    Op = "matmul"
	OpMatVec    Op = "mv"
	OpTranspose Op = "transpose"
)

// Accumulator is the scalar type a result is formed in.
type Accumulator int

const (
	// AccElem means results are produced lane-wise in the element type.
	AccElem Accumulator = iota
	AccFloat32
	AccInt64
)

func (a Accumulator) String() string {
	switch a {
	case AccElem:
		return "element"
	case AccFloat32:
		return "float32"
	case AccInt64:
		return "int16>int32>int64"
	default:
		return "unknown"
	}
}

// Overflow is the rule applied when a result does not fit the output type.
type Overflow int

const (
	// IEEE is round-to-nearest-even with Inf/NaN propagation.
	IEEE Overflow = iota
	// Wrap truncates to the low bits (two's complement wraparound).
	Wrap
	// Exact means the accumulator cannot overflow for supported lengths.
	Exact
)

func (o Overflow) String() string {
	switch o {
	case IEEE:
		return "ieee"
	case Wrap:
		return "wrap"
	case Exact:
		return "exact"
	default:
		return "unknown"
	}
}

// Order is the reduction order of an operation.
type Order int

const (
	// Elementwise operations have no reduction.
	Elementwise Order = iota
	// Sequential reductions add terms strictly in index order.
	Sequential
)

func (o Order) String() string {
	if o == Sequential {
		return "sequential"
	}
	return "elementwise"
}

// Register grouping (LMUL) used by the vector kernels, matching the e32m4,
// e8m8 and e8m4 configurations of the RVV kernels.
const (
	LMULFloat32 = 4
	LMULInt8    = 8
	LMULDotInt8 = 4
)

// MaxI8Product is the largest magnitude of an int8 product: (-128)*(-128).
const MaxI8Product = 128 * 128

// MaxExactDotI8Len bounds the length for which DotI8 stays exact in int64.
const MaxExactDotI8Len = (1<<63 - 1) / MaxI8Product

// MaxInt32ChunkLanes is the largest chunk whose int16 products can be reduced
// into an int32 partial without overflow.
const MaxInt32ChunkLanes = (1<<31 - 1) / MaxI8Product

// Policy is the numeric policy of one operation on one element type.
type Policy struct {
	Op          Op
	Elem        Elem
	Accumulator Accumulator
	Overflow    Overflow
	Order       Order
	LMUL        int
}

// String renders the policy for diagnostics.
func (p Policy) String() string {
	return fmt.Sprintf("%s/%s: acc=%s overflow=%s order=%s lmul=m%d",
		p.Op, p.Elem, p.Accumulator, p.Overflow, p.Order, p.LMUL)
}

var policies = []Policy{
	{OpAdd, Float32, AccElem, IEEE, Elementwise, LMULFloat32},
	{OpSub, Float32, AccElem, IEEE, Elementwise, LMULFloat32},
	{OpScale, Float32, AccElem, IEEE, Elementwise, LMULFloat32},
	{OpDot, Float32, AccFloat32, IEEE, Sequential, LMULFloat32},
	{OpNormL2, Float32, AccFloat32, IEEE, Sequential, LMULFloat32},
	{OpNormalize, Float32, AccFloat32, IEEE, Sequential, LMULFloat32},
	{OpMatMul, Float32, AccFloat32, IEEE, Sequential, LMULFloat32},
	{OpMatVec, Float32, AccFloat32, IEEE, Sequential, LMULFloat32},
	{OpTranspose, Float32, AccElem, IEEE, Elementwise, LMULFloat32},
	{OpAdd, Int8, AccElem, Wrap, Elementwise, LMULInt8},
	{OpScale, Int8, AccElem, Wrap, Elementwise, LMULInt8},
	{OpDot, Int8, AccInt64, Exact, Sequential, LMULDotInt8},
}

// Lookup returns the policy for op on elem. The boolean is false when the
// combination is not supported by the kernels.
func Lookup(op Op, elem Elem) (Policy, bool) {
	for _, p := range policies {
		if p.Op == op && p.Elem == elem {
			return p, true
		}
	}
	return Policy{}, false
}

// All returns every supported policy in a stable order.
func All() []Policy {
	out := make([]Policy, len(policies))
	copy(out, policies)
	return out
}

// ChunkSize returns the number of lanes a register group holds:
// VLEN * LMUL / SEW. It returns 0 for a scalar (zero-width) configuration.
func ChunkSize(vectorBits, lmul int, elem Elem) int {
	sew := elem.Bits()
	if vectorBits <= 0 || lmul <= 0 || sew == 0 {
		return 0
	}
	return vectorBits * lmul / sew
}

// WidenMul multiplies two int8 values into an int16 without overflow.
func WidenMul(a, b int8) int16 {
	return int16(a) * int16(b)
}
