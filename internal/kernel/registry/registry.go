// Package registry provides the implementation registry for the numeric kernels.
//
// Multiple implementation variants (scalar, RVV, AVX2, NEON, ...) coexist behind
// the Kernels interface. Implementation packages register a builder via init();
// the dispatch layer selects the highest-priority entry compatible with the
// detected CPU features and builds it for the configured register width.
package registry

import (
	"sync"

	"github.com/cwbudde/algo-rvv/internal/cpu"
)

// Kernels is the operation set every implementation variant provides.
//
// Inputs are validated by the caller: lengths match, slices are non-empty and
// dst does not alias an input unless the operation is elementwise. 2-D kernels
// take row-major operands with leading dimensions (lda, ldb, ldc) that may
// exceed the column count for padded rows.
type Kernels interface {
	// Name identifies the variant (e.g., "generic", "rvv").
	Name() string

	// VectorBits is the register width the variant was built for; 0 for scalar.
	VectorBits() int

	// Add computes dst[i] = a[i] + b[i].
	Add(dst, a, b []float32)

	// Sub computes dst[i] = a[i] - b[i].
	Sub(dst, a, b []float32)

	// Scale computes dst[i] = a[i] * k.
	Scale(dst, a []float32, k float32)

	// Dot returns sum(a[i] * b[i]) accumulated sequentially in float32.
	Dot(a, b []float32) float32

	// AddI8 computes dst[i] = a[i] + b[i] with wraparound.
	AddI8(dst, a, b []int8)

	// ScaleI8 computes dst[i] = a[i] * k with wraparound.
	ScaleI8(dst, a []int8, k int8)

	// DotI8 returns the exact sum(a[i] * b[i]).
	DotI8(a, b []int8) int64

	// MatMul computes C[m×n] = A[m×k] * B[k×n].
	MatMul(c []float32, ldc int, a []float32, lda int, b []float32, ldb int, m, k, n int)

	// MatVec computes y[rows] = A[rows×cols] * x[cols].
	MatVec(y, a []float32, lda int, x []float32, rows, cols int)

	// Transpose writes B[cols×rows] = A[rows×cols]^T. dst must not alias src.
	Transpose(b []float32, ldb int, a []float32, lda int, rows, cols int)
}

// OpEntry represents a registered implementation variant.
type OpEntry struct {
	// Name is a human-readable identifier for this implementation (e.g., "rvv").
	Name string

	// SIMDLevel indicates the instruction set required for this implementation.
	SIMDLevel cpu.SIMDLevel

	// Priority determines selection order when multiple compatible implementations exist.
	// Higher priority implementations are preferred:
	//   - Generic (SIMDNone): 0
	//   - SSE2: 10
	//   - NEON: 15
	//   - AVX2: 20
	//   - RVV: 30
	Priority int

	// Build constructs the kernels for a register width in bits.
	// Scalar variants ignore the width.
	Build func(vectorBits int) Kernels
}

// OpRegistry manages the registration and lookup of implementation variants.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
	sorted  bool // true if entries are sorted by priority (descending)
}

// Global is the default registry instance populated by the arch packages.
var Global = &OpRegistry{}

// Register adds an implementation variant to the registry.
//
// It is safe to call concurrently, but all registrations should complete
// before the first call to Lookup().
func (r *OpRegistry) Register(entry OpEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup finds the best implementation variant for the given CPU features.
//
// Returns the highest-priority entry compatible with the CPU, or nil if none is
// (which cannot happen once the generic package is linked in).
func (r *OpRegistry) Lookup(features cpu.Features) *OpEntry {
	r.mu.Lock()
	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}
	r.mu.Unlock()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		entry := &r.entries[i]
		if cpu.Supports(features, entry.SIMDLevel) {
			return entry
		}
	}

	return nil
}

// LookupName returns the entry registered under name, or nil.
func (r *OpRegistry) LookupName(name string) *OpEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		if r.entries[i].Name == name {
			return &r.entries[i]
		}
	}
	return nil
}

// sortByPriority sorts entries by priority in descending order.
// Must be called with r.mu held (write lock).
func (r *OpRegistry) sortByPriority() {
	// insertion sort, the registry holds a handful of entries
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && r.entries[j].Priority < key.Priority {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}
}

// ListEntries returns a copy of all registered entries.
// This function is primarily intended for testing and debugging.
func (r *OpRegistry) ListEntries() []OpEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]OpEntry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Reset clears all registered entries.
// This function is intended for testing purposes only.
func (r *OpRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.sorted = false
}
