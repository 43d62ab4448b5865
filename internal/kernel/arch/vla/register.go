package vla

import (
	"github.com/cwbudde/algo-rvv/internal/cpu"
	"github.com/cwbudde/algo-rvv/internal/kernel/registry"
)

// Name is the registry name of the RVV kernel set.
const Name = "rvv"

// init registers the RVV kernels with the kernel registry.
//
// The dispatch layer supplies the register width (VLEN, 128 bits on the C906
// unless configured otherwise).
//
// Priority: 30 (preferred whenever the V extension is reported)
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      Name,
		SIMDLevel: cpu.SIMDRVV,
		Priority:  30,
		Build: func(vectorBits int) registry.Kernels {
			return New(Name, vectorBits)
		},
	})
}
