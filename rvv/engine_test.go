//go:build !purego

package rvv

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-rvv/config"
	"github.com/cwbudde/algo-rvv/internal/cpu"
)

func TestCapabilityFor(t *testing.T) {
	tests := []struct {
		name     string
		features cpu.Features
		want     Capability
	}{
		{
			name:     "rvv default width",
			features: cpu.Features{HasRVV: true, Architecture: "riscv64"},
			want:     Capability{Vector: true, Level: "RVV", VectorBits: 128, Kernel: "rvv"},
		},
		{
			name:     "rvv configured width",
			features: cpu.Features{HasRVV: true, VectorBits: 256},
			want:     Capability{Vector: true, Level: "RVV", VectorBits: 256, Kernel: "rvv"},
		},
		{
			name:     "no vector unit",
			features: cpu.Features{},
			want:     Capability{Level: "None", Kernel: "generic"},
		},
		{
			name:     "forced generic",
			features: cpu.Features{HasRVV: true, ForceGeneric: true},
			want:     Capability{Level: "None", Kernel: "generic"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := capabilityFor(tt.features)
			if got != tt.want {
				t.Errorf("capabilityFor() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestDetectIsStable(t *testing.T) {
	first := Detect()
	for i := 0; i < 3; i++ {
		if got := Detect(); got != first {
			t.Fatalf("Detect() changed: %+v then %+v", first, got)
		}
	}
	if Default().Capability().Kernel == "" {
		t.Fatal("default engine has no kernel")
	}
}

func TestNewOptions(t *testing.T) {
	rvv128 := Capability{Vector: true, Level: "RVV", VectorBits: 128, Kernel: "rvv"}

	tests := []struct {
		name       string
		opts       []Option
		wantKernel string
		wantBits   int
		wantVector bool
	}{
		{"explicit capability", []Option{WithCapability(rvv128)}, "rvv", 128, true},
		{"vector bits override", []Option{WithCapability(rvv128), WithVectorBits(512)}, "rvv", 512, true},
		{"force scalar", []Option{WithCapability(rvv128), WithForceScalar(true)}, "generic", 0, false},
		{"config force scalar", []Option{WithCapability(rvv128), WithConfig(config.Config{ForceScalar: true})}, "generic", 0, false},
		{"config width", []Option{WithCapability(rvv128), WithConfig(config.Config{VectorBits: 256})}, "rvv", 256, true},
		{"nil option", []Option{nil, WithCapability(rvv128)}, "rvv", 128, true},
		{"force vector", []Option{WithCapability(scalarCapability()), WithForceVector(true)}, "rvv", 128, true},
		{"force vector keeps width", []Option{WithCapability(rvv128), WithVectorBits(256), WithForceVector(true)}, "rvv", 256, true},
		{"force scalar wins", []Option{WithForceVector(true), WithForceScalar(true)}, "generic", 0, false},
		{"config force vector", []Option{WithCapability(scalarCapability()), WithConfig(config.Config{ForceVector: true, VectorBits: 512})}, "rvv", 512, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := New(tt.opts...)
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			c := e.Capability()
			if c.Kernel != tt.wantKernel || c.VectorBits != tt.wantBits || e.Vector() != tt.wantVector {
				t.Errorf("capability = %+v, want kernel=%s bits=%d vector=%v",
					c, tt.wantKernel, tt.wantBits, tt.wantVector)
			}
			if got := e.kernels.VectorBits(); got != tt.wantBits {
				t.Errorf("kernels built for %d bits, want %d", got, tt.wantBits)
			}
		})
	}
}

func TestNewErrors(t *testing.T) {
	_, err := New(WithCapability(Capability{Vector: true, Level: "RVV", VectorBits: 96, Kernel: "rvv"}))
	if !errors.Is(err, config.ErrInvalidVectorBits) {
		t.Errorf("invalid width: err = %v, want ErrInvalidVectorBits", err)
	}

	_, err = New(WithCapability(Capability{Vector: true, Level: "RVV", VectorBits: 128, Kernel: "sve"}))
	if err == nil {
		t.Error("unknown kernel: expected error")
	}
}

func TestScalar(t *testing.T) {
	e := Scalar()
	if e.Vector() || e.Capability().Kernel != "generic" {
		t.Errorf("Scalar() = %+v", e.Capability())
	}
}

func TestNew_VectorFollowsKernel(t *testing.T) {
	tests := []struct {
		name string
		cap  Capability
		want Capability
	}{
		{
			name: "scalar kernel flagged as vector",
			cap:  Capability{Vector: true, Level: "RVV", VectorBits: 128, Kernel: "generic"},
			want: Capability{Level: "None", Kernel: "generic"},
		},
		{
			name: "vector kernel flagged as scalar",
			cap:  Capability{Kernel: "rvv"},
			want: Capability{Vector: true, Level: "RVV", VectorBits: 128, Kernel: "rvv"},
		},
		{
			name: "empty kernel name",
			cap:  Capability{Vector: true},
			want: Capability{Level: "None", Kernel: "generic"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := New(WithCapability(tt.cap))
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			if got := e.Capability(); got != tt.want {
				t.Errorf("Capability() = %+v, want %+v", got, tt.want)
			}
			if e.Vector() != (e.kernels.VectorBits() != 0) {
				t.Errorf("Vector() = %v with %s kernels at %d bits",
					e.Vector(), e.kernels.Name(), e.kernels.VectorBits())
			}
		})
	}
}
