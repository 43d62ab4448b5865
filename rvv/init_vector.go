//go:build !purego

package rvv

// Register the scalar and vector kernel sets.
import (
	_ "github.com/cwbudde/algo-rvv/internal/kernel/arch/generic"
	_ "github.com/cwbudde/algo-rvv/internal/kernel/arch/vla"
)
