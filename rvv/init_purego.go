//go:build purego

package rvv

// Pure Go builds link only the scalar kernels.
import (
	_ "github.com/cwbudde/algo-rvv/internal/kernel/arch/generic"
)
