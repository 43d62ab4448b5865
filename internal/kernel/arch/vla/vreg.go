package vla

import (
	"github.com/cwbudde/algo-rvv/internal/cpu"
	"github.com/cwbudde/algo-rvv/internal/kernel/accum"
)

// Upper bounds of the register-group lane counts at the widest supported VLEN.
const (
	maxVLF32   = cpu.MaxVectorBits * accum.LMULFloat32 / 32
	maxVLDotI8 = cpu.MaxVectorBits * accum.LMULDotInt8 / 8
)

// vfloat32 is one float32 register group; only the first vl lanes are live.
type vfloat32 [maxVLF32]float32

// vint16 holds the widened int8 products of one register group.
type vint16 [maxVLDotI8]int16

// vle32 is a unit-stride load of vl lanes.
func vle32(vd *vfloat32, p []float32, vl int) {
	copy(vd[:vl], p[:vl])
}

// vse32 is a unit-stride store of vl lanes.
func vse32(p []float32, vs *vfloat32, vl int) {
	copy(p[:vl], vs[:vl])
}

// vfmvZero clears vl lanes.
func vfmvZero(vd *vfloat32, vl int) {
	clear(vd[:vl])
}

// vfmul computes vd = va * vb lane-wise, rounding every product to float32.
func vfmul(vd, va, vb *vfloat32, vl int) {
	for l := 0; l < vl; l++ {
		vd[l] = float32(va[l] * vb[l])
	}
}

// vfmacc computes vd += s * p[0:vl] lane-wise without fusing the multiply.
func vfmacc(vd *vfloat32, s float32, p []float32, vl int) {
	p = p[:vl]
	for l, x := range p {
		vd[l] += float32(s * x)
	}
}

// vfredosum adds the vl lanes of vs to acc in lane order.
func vfredosum(acc float32, vs *vfloat32, vl int) float32 {
	for l := 0; l < vl; l++ {
		acc += vs[l]
	}
	return acc
}

// vwmul widens and multiplies vl int8 lanes into int16 lanes.
func vwmul(vd *vint16, a, b []int8, vl int) {
	a = a[:vl]
	b = b[:vl]
	for l := range a {
		vd[l] = accum.WidenMul(a[l], b[l])
	}
}

// vwredsum reduces vl int16 lanes into an int32 partial sum. vl never exceeds
// accum.MaxInt32ChunkLanes, so the partial cannot overflow.
func vwredsum(vs *vint16, vl int) int32 {
	var sum int32
	for l := 0; l < vl; l++ {
		sum += int32(vs[l])
	}
	return sum
}
