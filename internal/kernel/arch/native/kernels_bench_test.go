package native

import (
	"testing"

	"github.com/cwbudde/algo-rvv/internal/kernel/arch/generic"
	"github.com/cwbudde/algo-rvv/internal/reference"
	"github.com/cwbudde/algo-rvv/internal/testutil"
)

var sink float32

func BenchmarkDot(b *testing.B) {
	k := New("avx2", 256)
	for _, n := range []int{64, 1024, 16384} {
		x := reference.Float32s(1, n, 1)
		y := reference.Float32s(2, n, 1)

		b.Run("native/"+testutil.SizeName(n), func(b *testing.B) {
			b.SetBytes(int64(8 * n))
			for i := 0; i < b.N; i++ {
				sink = k.Dot(x, y)
			}
		})
		b.Run("generic/"+testutil.SizeName(n), func(b *testing.B) {
			b.SetBytes(int64(8 * n))
			for i := 0; i < b.N; i++ {
				sink = generic.Dot(x, y)
			}
		})
	}
}

func BenchmarkAdd(b *testing.B) {
	k := New("avx2", 256)
	for _, n := range []int{64, 1024, 16384} {
		x := reference.Float32s(1, n, 1)
		y := reference.Float32s(2, n, 1)
		dst := make([]float32, n)

		b.Run("native/"+testutil.SizeName(n), func(b *testing.B) {
			b.SetBytes(int64(12 * n))
			for i := 0; i < b.N; i++ {
				k.Add(dst, x, y)
			}
		})
		b.Run("generic/"+testutil.SizeName(n), func(b *testing.B) {
			b.SetBytes(int64(12 * n))
			for i := 0; i < b.N; i++ {
				generic.Add(dst, x, y)
			}
		})
	}
}
