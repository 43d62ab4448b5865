package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-rvv/internal/reference"
	"github.com/cwbudde/algo-rvv/rvv"
)

type benchCase struct {
	op  string
	run func(e *rvv.Engine) error
}

func newBenchCmd(opts *rootOptions) *cobra.Command {
	var n, iters int

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time add, dot and dot_i8 on the scalar and vector kernels",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if n <= 0 || iters <= 0 {
				return fmt.Errorf("--n and --iters must be positive, got %d and %d", n, iters)
			}
			vec, err := opts.vectorEngine()
			if err != nil {
				return err
			}

			cases, err := benchCases(n)
			if err != nil {
				return err
			}
			return runBench(cmd.OutOrStdout(), rvv.Scalar(), vec, cases, n, iters)
		},
	}

	cmd.Flags().IntVar(&n, "n", 1_000_000, "vector length")
	cmd.Flags().IntVar(&iters, "iters", 10, "iterations per measurement")
	return cmd
}

func benchCases(n int) ([]benchCase, error) {
	a, err := rvv.FromFloat32(reference.Float32s(1, n, 1))
	if err != nil {
		return nil, err
	}
	b, _ := rvv.FromFloat32(reference.Float32s(2, n, 1))
	dst, _ := rvv.FromFloat32(make([]float32, n))
	ai, _ := rvv.FromInt8(reference.Int8s(3, n, -128, 127))
	bi, _ := rvv.FromInt8(reference.Int8s(4, n, -128, 127))

	return []benchCase{
		{"add", func(e *rvv.Engine) error { return e.AddInto(dst, a, b) }},
		{"dot", func(e *rvv.Engine) error { _, err := e.Dot(a, b); return err }},
		{"dot_i8", func(e *rvv.Engine) error { _, err := e.DotI8(ai, bi); return err }},
	}, nil
}

func runBench(w io.Writer, scalar, vec *rvv.Engine, cases []benchCase, n, iters int) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Op\tN\tScalar [ns/op]\t%s [ns/op]\tSpeedup\n", vec.Capability().Kernel)
	fmt.Fprintf(tw, "--\t-\t--------------\t---------\t-------\n")

	for _, c := range cases {
		ts, err := measure(scalar, c.run, iters)
		if err != nil {
			return fmt.Errorf("%s: %w", c.op, err)
		}
		tv, err := measure(vec, c.run, iters)
		if err != nil {
			return fmt.Errorf("%s: %w", c.op, err)
		}

		speedup := 0.0
		if tv > 0 {
			speedup = float64(ts) / float64(tv)
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%.2fx\n", c.op, n, ts.Nanoseconds(), tv.Nanoseconds(), speedup)
	}

	return tw.Flush()
}

// measure returns the mean duration of iters runs after one warm-up run.
func measure(e *rvv.Engine, run func(*rvv.Engine) error, iters int) (time.Duration, error) {
	if err := run(e); err != nil {
		return 0, err
	}

	start := time.Now()
	for i := 0; i < iters; i++ {
		if err := run(e); err != nil {
			return 0, err
		}
	}
	return time.Since(start) / time.Duration(iters), nil
}
