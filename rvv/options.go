package rvv

import "github.com/cwbudde/algo-rvv/config"

// EngineConfig holds the dispatch settings of an Engine.
type EngineConfig struct {
	// Capability replaces the detected capability when non-nil.
	Capability *Capability

	// ForceScalar selects the scalar kernels regardless of capability.
	ForceScalar bool

	// ForceVector selects the RVV kernels regardless of capability.
	// ForceScalar takes precedence.
	ForceVector bool

	// VectorBits overrides the register width of the vector kernels.
	// Zero keeps the width of the capability.
	VectorBits int
}

// Option mutates an EngineConfig.
type Option func(*EngineConfig)

// WithCapability dispatches on c instead of the detected capability.
func WithCapability(c Capability) Option {
	return func(cfg *EngineConfig) {
		cfg.Capability = &c
	}
}

// WithForceScalar selects the scalar kernels when force is true.
func WithForceScalar(force bool) Option {
	return func(cfg *EngineConfig) {
		cfg.ForceScalar = force
	}
}

// WithForceVector selects the RVV kernels when force is true, for cores
// whose vector unit the operating system does not report.
func WithForceVector(force bool) Option {
	return func(cfg *EngineConfig) {
		cfg.ForceVector = force
	}
}

// WithVectorBits sets the vector register width in bits.
func WithVectorBits(bits int) Option {
	return func(cfg *EngineConfig) {
		cfg.VectorBits = bits
	}
}

// WithConfig applies the dispatch settings of an sdkconfig.
func WithConfig(c config.Config) Option {
	return func(cfg *EngineConfig) {
		if c.ForceScalar {
			cfg.ForceScalar = true
		}
		if c.ForceVector {
			cfg.ForceVector = true
		}
		if c.VectorBits > 0 {
			cfg.VectorBits = c.VectorBits
		}
	}
}

// ApplyOptions applies zero or more options to the zero config.
func ApplyOptions(opts ...Option) EngineConfig {
	var cfg EngineConfig

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
