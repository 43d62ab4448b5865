package rvv

import (
	"fmt"
	"sync"

	"github.com/cwbudde/algo-rvv/config"
	"github.com/cwbudde/algo-rvv/internal/cpu"
	"github.com/cwbudde/algo-rvv/internal/kernel/arch/generic"
	"github.com/cwbudde/algo-rvv/internal/kernel/registry"
)

// Capability describes the kernel variant an Engine dispatches to.
type Capability struct {
	// Vector is true when a vector kernel set is selected.
	Vector bool

	// Level names the instruction set ("RVV", "AVX2", "NEON", "SSE2", "None").
	Level string

	// VectorBits is the register width in bits; 0 for scalar.
	VectorBits int

	// Kernel is the registry name of the kernel set ("rvv", "generic", ...).
	Kernel string
}

func (c Capability) String() string {
	if !c.Vector {
		return fmt.Sprintf("%s (scalar)", c.Kernel)
	}
	return fmt.Sprintf("%s (%s, VLEN=%d)", c.Kernel, c.Level, c.VectorBits)
}

var (
	detectOnce sync.Once
	detected   Capability
)

// Detect probes the CPU once per process and returns the capability of the
// best kernel set available.
func Detect() Capability {
	detectOnce.Do(func() {
		detected = capabilityFor(cpu.DetectFeatures())
	})
	return detected
}

func capabilityFor(features cpu.Features) Capability {
	entry := registry.Global.Lookup(features)
	if entry == nil || entry.SIMDLevel == cpu.SIMDNone {
		return scalarCapability()
	}
	return Capability{
		Vector:     true,
		Level:      entry.SIMDLevel.String(),
		VectorBits: cpu.VectorBits(features, entry.SIMDLevel),
		Kernel:     entry.Name,
	}
}

// capabilityOf describes entry built for bits, or for override when it is
// non-zero. Vector and Level follow the instruction set of the entry.
func capabilityOf(entry *registry.OpEntry, bits, override int) (Capability, error) {
	if entry.SIMDLevel == cpu.SIMDNone {
		return Capability{Level: cpu.SIMDNone.String(), Kernel: entry.Name}, nil
	}

	if override != 0 {
		bits = override
	}
	if bits == 0 {
		bits = cpu.VectorBits(cpu.Features{}, entry.SIMDLevel)
	}
	if !cpu.ValidVectorBits(bits) {
		return Capability{}, fmt.Errorf("%w: %d", config.ErrInvalidVectorBits, bits)
	}

	return Capability{
		Vector:     true,
		Level:      entry.SIMDLevel.String(),
		VectorBits: bits,
		Kernel:     entry.Name,
	}, nil
}

func scalarCapability() Capability {
	return Capability{Level: cpu.SIMDNone.String(), Kernel: generic.Name}
}

// vectorKernel is the registry name of the RVV kernel set.
const vectorKernel = "rvv"

// Engine routes operations to one kernel set chosen at construction.
// An Engine is immutable and safe for concurrent use.
type Engine struct {
	capability Capability
	kernels    registry.Kernels
}

// New builds an Engine from the detected capability and the options.
func New(opts ...Option) (*Engine, error) {
	cfg := ApplyOptions(opts...)

	c := Detect()
	if cfg.Capability != nil {
		c = *cfg.Capability
	}
	switch {
	case cfg.ForceScalar:
		c = scalarCapability()
	case cfg.ForceVector:
		c = Capability{VectorBits: c.VectorBits, Kernel: vectorKernel}
	}
	if c.Kernel == "" {
		c.Kernel = generic.Name
	}

	entry := registry.Global.LookupName(c.Kernel)
	if entry == nil {
		return nil, fmt.Errorf("rvv: unknown kernel %q", c.Kernel)
	}

	c, err := capabilityOf(entry, c.VectorBits, cfg.VectorBits)
	if err != nil {
		return nil, err
	}

	return &Engine{
		capability: c,
		kernels:    entry.Build(c.VectorBits),
	}, nil
}

// Scalar returns an Engine that always uses the scalar kernels.
func Scalar() *Engine {
	e, err := New(WithForceScalar(true))
	if err != nil {
		panic(err)
	}
	return e
}

var (
	defaultOnce   sync.Once
	defaultEngine *Engine
)

// Default returns the process-wide Engine used by the package-level
// functions. It is built once from Detect and the RVV_FORCE_SCALAR,
// RVV_FORCE_VECTOR and RVV_VECTOR_BITS environment variables; invalid
// variables are ignored.
func Default() *Engine {
	defaultOnce.Do(func() {
		var opts []Option
		if env, err := config.FromEnv(); err == nil {
			opts = append(opts, WithConfig(env))
		}

		e, err := New(opts...)
		if err != nil {
			e, err = New()
		}
		if err != nil {
			panic(err)
		}
		defaultEngine = e
	})
	return defaultEngine
}

// Capability returns the capability the engine dispatches on.
func (e *Engine) Capability() Capability { return e.capability }

// Vector reports whether the engine runs the vector kernels.
func (e *Engine) Vector() bool { return e.capability.Vector }
