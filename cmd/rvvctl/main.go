// Command rvvctl inspects and exercises the rvv kernel engine.
//
// Usage:
//
//	rvvctl [--scalar | --force-vector] [--vector-bits N] [--config sdkconfig] <command>
//
// Commands:
//
//	info     print the detected capability, chunk sizes and numeric policies
//	flags    derive compile_flags.txt content from an sdkconfig file
//	verify   compare the vector kernels with the scalar kernels and a float64 reference
//	bench    time add, dot and dot_i8 on both kernel sets
//
// Examples:
//
//	rvvctl info
//	rvvctl --vector-bits 256 verify --n 4096
//	rvvctl flags --config sdkconfig --out compile_flags.txt
//	rvvctl bench --n 1000000 --iters 10
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-rvv/config"
	"github.com/cwbudde/algo-rvv/rvv"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// rootOptions holds the persistent flags that select the engine.
type rootOptions struct {
	scalar     bool
	vector     bool
	vectorBits int
	configPath string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:          "rvvctl",
		Short:        "Inspect and exercise the rvv vector kernel engine",
		SilenceUsage: true,
	}

	root.PersistentFlags().BoolVar(&opts.scalar, "scalar", false, "force the scalar kernels")
	root.PersistentFlags().BoolVar(&opts.vector, "force-vector", false, "use the RVV kernels even if the V extension is not reported")
	root.PersistentFlags().IntVar(&opts.vectorBits, "vector-bits", 0, "vector register width in bits (0 = detected)")
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "sdkconfig file")

	root.AddCommand(
		newInfoCmd(opts),
		newFlagsCmd(opts),
		newVerifyCmd(opts),
		newBenchCmd(opts),
	)

	return root
}

// engine builds the engine selected by the flags, the sdkconfig and the
// environment, in increasing order of precedence for the flags.
func (o *rootOptions) engine() (*rvv.Engine, error) {
	cfg := config.Config{}
	if o.configPath != "" {
		var err error
		if cfg, err = config.Load(o.configPath); err != nil {
			return nil, err
		}
	}
	cfg, err := config.ApplyEnv(cfg)
	if err != nil {
		return nil, err
	}

	opts := []rvv.Option{rvv.WithConfig(cfg)}
	if o.scalar {
		opts = append(opts, rvv.WithForceScalar(true))
	}
	if o.vector {
		opts = append(opts, rvv.WithForceVector(true))
	}
	if o.vectorBits != 0 {
		opts = append(opts, rvv.WithVectorBits(o.vectorBits))
	}
	return rvv.New(opts...)
}

// vectorEngine returns the selected engine when it is vectorized, and
// otherwise the RVV kernels at the configured or default width, so the
// vector code path can be exercised on any host.
func (o *rootOptions) vectorEngine() (*rvv.Engine, error) {
	e, err := o.engine()
	if err != nil {
		return nil, err
	}
	if e.Vector() {
		return e, nil
	}

	return rvv.New(rvv.WithForceVector(true), rvv.WithVectorBits(o.vectorBits))
}
