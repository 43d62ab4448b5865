// Package reference computes float64 ground truth for the float32 kernels and
// generates deterministic test inputs.
//
// The float64 block arithmetic comes from algo-vecmath; the results are the
// yardstick for the tolerances stated by the rvv package (1e-6 absolute for
// dot and norm on small inputs, 1e-5 relative for matmul).
package reference

import (
	"math"
	"math/rand"

	"github.com/cwbudde/algo-vecmath"
)

// Float32s returns n deterministic values uniformly drawn from [-amp, amp).
func Float32s(seed int64, n int, amp float32) []float32 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]float32, n)
	for i := range out {
		out[i] = (rng.Float32()*2 - 1) * amp
	}
	return out
}

// Int8s returns n deterministic values uniformly drawn from [lo, hi].
func Int8s(seed int64, n int, lo, hi int8) []int8 {
	rng := rand.New(rand.NewSource(seed))
	span := int(hi) - int(lo) + 1
	out := make([]int8, n)
	for i := range out {
		out[i] = int8(int(lo) + rng.Intn(span))
	}
	return out
}

// Widen converts a float32 slice to float64.
func Widen(a []float32) []float64 {
	out := make([]float64, len(a))
	for i, v := range a {
		out[i] = float64(v)
	}
	return out
}

// Add returns a + b in float64.
func Add(a, b []float32) []float64 {
	out := Widen(a)
	vecmath.AddBlockInPlace(out, Widen(b))
	return out
}

// Sub returns a - b in float64.
func Sub(a, b []float32) []float64 {
	neg := make([]float64, len(b))
	vecmath.ScaleBlock(neg, Widen(b), -1)

	out := Widen(a)
	vecmath.AddBlockInPlace(out, neg)
	return out
}

// Scale returns a * k in float64.
func Scale(a []float32, k float32) []float64 {
	out := make([]float64, len(a))
	vecmath.ScaleBlock(out, Widen(a), float64(k))
	return out
}

// Dot returns the sequential float64 sum of a[i]*b[i].
func Dot(a, b []float32) float64 {
	prod := make([]float64, len(a))
	vecmath.MulBlock(prod, Widen(a), Widen(b))
	return sum(prod)
}

// NormL2 returns the float64 Euclidean norm of a.
func NormL2(a []float32) float64 {
	wa := Widen(a)
	sq := make([]float64, len(a))
	vecmath.Power(sq, wa, make([]float64, len(a)))
	return math.Sqrt(sum(sq))
}

// MatMul returns the m×n float64 product of the dense row-major A (m×k) and B (k×n).
func MatMul(a, b []float32, m, k, n int) []float64 {
	wb := Widen(b)
	out := make([]float64, m*n)
	row := make([]float64, n)

	for i := 0; i < m; i++ {
		crow := out[i*n : (i+1)*n]
		for kk := 0; kk < k; kk++ {
			vecmath.ScaleBlock(row, wb[kk*n:(kk+1)*n], float64(a[i*k+kk]))
			vecmath.AddBlockInPlace(crow, row)
		}
	}
	return out
}

// DotI8 returns the exact integer dot product of two int8 slices.
func DotI8(a, b []int8) int64 {
	var acc int64
	for i := range a {
		acc += int64(a[i]) * int64(b[i])
	}
	return acc
}

// AddI8 returns the wrapped int8 sum computed through int arithmetic.
func AddI8(a, b []int8) []int8 {
	out := make([]int8, len(a))
	for i := range a {
		out[i] = int8(uint8((int(a[i]) + int(b[i])) & 0xff))
	}
	return out
}

// MaxRelErr returns max_i |got[i]-want[i]| / max(1, |want[i]|).
// It returns +Inf when the lengths differ or when exactly one side is NaN.
func MaxRelErr(got []float32, want []float64) float64 {
	if len(got) != len(want) {
		return math.Inf(1)
	}
	worst := 0.0
	for i := range got {
		g := float64(got[i])
		if math.IsNaN(g) != math.IsNaN(want[i]) {
			return math.Inf(1)
		}
		if math.IsNaN(g) {
			continue
		}
		e := math.Abs(g-want[i]) / math.Max(1, math.Abs(want[i]))
		if e > worst {
			worst = e
		}
	}
	return worst
}

func sum(x []float64) float64 {
	var s float64
	for _, v := range x {
		s += v
	}
	return s
}
