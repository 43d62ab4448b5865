//go:build (amd64 || arm64) && !purego

package rvv

// Register the host SIMD kernels.
import (
	_ "github.com/cwbudde/algo-rvv/internal/kernel/arch/native"
)
