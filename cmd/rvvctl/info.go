package main

import (
	"fmt"
	"io"
	"runtime"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-rvv/internal/cpu"
	"github.com/cwbudde/algo-rvv/internal/kernel/accum"
	"github.com/cwbudde/algo-rvv/internal/kernel/registry"
)

func newInfoCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print the selected kernels, chunk sizes and numeric policies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := opts.engine()
			if err != nil {
				return err
			}

			c := e.Capability()
			out := cmd.OutOrStdout()
			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

			fmt.Fprintf(tw, "Architecture\t%s\n", runtime.GOARCH)
			fmt.Fprintf(tw, "Kernel\t%s\n", c.Kernel)
			fmt.Fprintf(tw, "Level\t%s\n", c.Level)
			fmt.Fprintf(tw, "Vector\t%t\n", c.Vector)
			if c.Vector {
				fmt.Fprintf(tw, "VLEN [bits]\t%d\n", c.VectorBits)
			}
			if c.Level == cpu.SIMDRVV.String() {
				fmt.Fprintf(tw, "Chunk float32 (e32m%d)\t%d\n", accum.LMULFloat32,
					accum.ChunkSize(c.VectorBits, accum.LMULFloat32, accum.Float32))
				fmt.Fprintf(tw, "Chunk int8 (e8m%d)\t%d\n", accum.LMULInt8,
					accum.ChunkSize(c.VectorBits, accum.LMULInt8, accum.Int8))
				fmt.Fprintf(tw, "Chunk dot_i8 (e8m%d)\t%d\n", accum.LMULDotInt8,
					accum.ChunkSize(c.VectorBits, accum.LMULDotInt8, accum.Int8))
			}
			if err := tw.Flush(); err != nil {
				return err
			}

			if err := printEntries(out, registry.Global.ListEntries()); err != nil {
				return err
			}
			return printPolicies(out, accum.All())
		},
	}
}

func printEntries(w io.Writer, entries []registry.OpEntry) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "\nKernel\tLevel\tPriority\n")
	fmt.Fprintf(tw, "------\t-----\t--------\n")
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\t%d\n", e.Name, e.SIMDLevel, e.Priority)
	}
	return tw.Flush()
}

func printPolicies(w io.Writer, policies []accum.Policy) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "\nOp\tType\tAccumulator\tOverflow\tOrder\tLMUL\n")
	fmt.Fprintf(tw, "--\t----\t-----------\t--------\t-----\t----\n")
	for _, p := range policies {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\tm%d\n",
			p.Op, p.Elem, p.Accumulator, p.Overflow, p.Order, p.LMUL)
	}
	return tw.Flush()
}
