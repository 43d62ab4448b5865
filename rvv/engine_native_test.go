//go:build (amd64 || arm64) && !purego

package rvv

import (
	"testing"

	"github.com/cwbudde/algo-rvv/internal/cpu"
)

func TestCapabilityFor_HostSIMD(t *testing.T) {
	tests := []struct {
		name     string
		features cpu.Features
		want     Capability
	}{
		{
			name:     "avx2 preferred over sse2",
			features: cpu.Features{HasSSE2: true, HasAVX: true, HasAVX2: true},
			want:     Capability{Vector: true, Level: "AVX2", VectorBits: 256, Kernel: "avx2"},
		},
		{
			name:     "sse2",
			features: cpu.Features{HasSSE2: true},
			want:     Capability{Vector: true, Level: "SSE2", VectorBits: 128, Kernel: "sse2"},
		},
		{
			name:     "neon",
			features: cpu.Features{HasNEON: true},
			want:     Capability{Vector: true, Level: "NEON", VectorBits: 128, Kernel: "neon"},
		},
		{
			name:     "rvv preferred over host simd",
			features: cpu.Features{HasRVV: true, HasAVX2: true, HasSSE2: true},
			want:     Capability{Vector: true, Level: "RVV", VectorBits: 128, Kernel: "rvv"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := capabilityFor(tt.features); got != tt.want {
				t.Errorf("capabilityFor() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
