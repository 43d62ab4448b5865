// Package cpu provides CPU feature detection for kernel selection.
//
// This package detects vector instruction set extensions (RVV, SSE2, AVX2, NEON)
// available on the current processor together with the vector register width,
// and caches the results for efficient querying.
//
// Detection is performed lazily on the first call to DetectFeatures() and the
// results are cached for subsequent calls using sync.Once for thread-safety.
package cpu

import (
	"sync"
)

// SIMDLevel represents a vector instruction set extension level.
// Levels are not comparable across architectures (e.g., AVX2 vs RVV).
type SIMDLevel int

const (
	// SIMDNone indicates no vector optimization (scalar fallback).
	SIMDNone SIMDLevel = iota

	// SIMDSSE2 indicates x86-64 SSE2 (baseline for amd64).
	SIMDSSE2

	// SIMDAVX indicates x86-64 AVX (Advanced Vector Extensions).
	SIMDAVX

	// SIMDAVX2 indicates x86-64 AVX2 (256-bit integer operations).
	SIMDAVX2

	// SIMDAVX512 indicates x86-64 AVX-512.
	SIMDAVX512

	// SIMDNEON indicates ARM NEON / Advanced SIMD.
	SIMDNEON

	// SIMDRVV indicates the RISC-V Vector extension.
	SIMDRVV
)

// Vector register width bounds accepted by SetVectorBits and the vector kernels.
const (
	MinVectorBits = 64
	MaxVectorBits = 4096

	// DefaultRVVBits is the VLEN assumed for RVV cores when the width is not
	// configured (the C906 core of the SG2002 implements VLEN=128).
	DefaultRVVBits = 128
)

// String returns a human-readable name for the SIMD level.
func (s SIMDLevel) String() string {
	switch s {
	case SIMDNone:
		return "None"
	case SIMDSSE2:
		return "SSE2"
	case SIMDAVX:
		return "AVX"
	case SIMDAVX2:
		return "AVX2"
	case SIMDAVX512:
		return "AVX-512"
	case SIMDNEON:
		return "NEON"
	case SIMDRVV:
		return "RVV"
	default:
		return "Unknown"
	}
}

// Features describes CPU capabilities relevant to kernel selection.
type Features struct {
	// x86/amd64 SIMD features
	HasSSE2   bool
	HasAVX    bool
	HasAVX2   bool
	HasAVX512 bool

	// ARM SIMD features
	HasNEON bool

	// RISC-V vector extension
	HasRVV bool

	// VectorBits overrides the register width used by the vector kernels.
	// Zero selects the default width of the chosen SIMD level.
	VectorBits int

	// ForceGeneric disables all vector kernels (for testing/debugging).
	ForceGeneric bool

	// Architecture is runtime.GOARCH (e.g., "riscv64", "amd64").
	Architecture string
}

var (
	// detectedFeatures holds the cached CPU features detected on this system.
	detectedFeatures Features

	// detectOnce ensures feature detection runs exactly once, thread-safely.
	detectOnce sync.Once

	// detectMutex serializes access to detectOnce/detectedFeatures.
	detectMutex sync.Mutex

	// forcedFeatures allows overriding actual hardware detection for testing.
	forcedFeatures *Features

	// forcedMutex protects forcedFeatures from concurrent access during testing.
	forcedMutex sync.RWMutex
)

// DetectFeatures returns the CPU features available on the current system.
//
// Detection is performed once on the first call and cached for subsequent calls.
// This function is thread-safe and can be called concurrently from multiple goroutines.
func DetectFeatures() Features {
	forcedMutex.RLock()
	forced := forcedFeatures
	forcedMutex.RUnlock()

	if forced != nil {
		return *forced
	}

	detectMutex.Lock()
	detectOnce.Do(func() {
		detectedFeatures = detectFeaturesImpl()
	})
	features := detectedFeatures
	detectMutex.Unlock()

	return features
}

// SetForcedFeatures overrides CPU feature detection with the specified features.
// This is intended for testing purposes only.
func SetForcedFeatures(f Features) {
	forcedMutex.Lock()
	defer forcedMutex.Unlock()
	forced := f
	forcedFeatures = &forced
}

// ResetDetection clears any forced features and the detection cache.
// This is intended for testing purposes.
func ResetDetection() {
	forcedMutex.Lock()
	forcedFeatures = nil
	forcedMutex.Unlock()

	detectMutex.Lock()
	detectOnce = sync.Once{}
	detectedFeatures = Features{}
	detectMutex.Unlock()
}

// Supports returns true if the given CPU features support the specified SIMD level.
// The kernel registry uses it to determine implementation compatibility.
func Supports(features Features, level SIMDLevel) bool {
	if features.ForceGeneric {
		return level == SIMDNone
	}

	switch level {
	case SIMDNone:
		return true
	case SIMDSSE2:
		return features.HasSSE2
	case SIMDAVX:
		return features.HasAVX
	case SIMDAVX2:
		return features.HasAVX2
	case SIMDAVX512:
		return features.HasAVX512
	case SIMDNEON:
		return features.HasNEON
	case SIMDRVV:
		return features.HasRVV
	default:
		return false
	}
}

// VectorBits returns the register width in bits the vector kernels use at the
// given level. An explicit Features.VectorBits takes precedence.
func VectorBits(features Features, level SIMDLevel) int {
	if features.VectorBits > 0 {
		return features.VectorBits
	}

	switch level {
	case SIMDRVV:
		return DefaultRVVBits
	case SIMDAVX2, SIMDAVX:
		return 256
	case SIMDAVX512:
		return 512
	case SIMDSSE2, SIMDNEON:
		return 128
	default:
		return 0
	}
}

// ValidVectorBits reports whether bits is a power of two within
// [MinVectorBits, MaxVectorBits].
func ValidVectorBits(bits int) bool {
	return bits >= MinVectorBits && bits <= MaxVectorBits && bits&(bits-1) == 0
}
