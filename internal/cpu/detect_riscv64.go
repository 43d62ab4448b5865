//go:build riscv64

package cpu

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// detectFeaturesImpl performs CPU feature detection on riscv64 systems.
//
// HasV is reported by the kernel through hwprobe. VLEN is not exposed by
// golang.org/x/sys/cpu, so VectorBits stays zero and DefaultRVVBits applies
// unless configured.
func detectFeaturesImpl() Features {
	return Features{
		HasRVV:       cpu.RISCV64.HasV,
		Architecture: runtime.GOARCH,
	}
}
