package native

import (
	"github.com/cwbudde/algo-rvv/internal/cpu"
	"github.com/cwbudde/algo-rvv/internal/kernel/registry"
)

// init registers the host SIMD kernels once per instruction set level.
//
// Priority:
//   - AVX2: 20
//   - NEON: 15
//   - SSE2: 10
func init() {
	levels := []struct {
		name     string
		level    cpu.SIMDLevel
		priority int
	}{
		{"avx2", cpu.SIMDAVX2, 20},
		{"neon", cpu.SIMDNEON, 15},
		{"sse2", cpu.SIMDSSE2, 10},
	}

	for _, l := range levels {
		name := l.name
		registry.Global.Register(registry.OpEntry{
			Name:      name,
			SIMDLevel: l.level,
			Priority:  l.priority,
			Build: func(vectorBits int) registry.Kernels {
				return New(name, vectorBits)
			},
		})
	}
}
