package main

import (
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-rvv/internal/reference"
	"github.com/cwbudde/algo-rvv/rvv"
)

// outcome is the result of one operation in comparable form.
type outcome struct {
	f32 []float32
	i8  []int8
	i64 int64
}

// verifyCase runs one operation and optionally checks it against the float64
// reference.
type verifyCase struct {
	op  string
	run func(e *rvv.Engine) (outcome, error)
	ref func(o outcome) error
}

func newVerifyCmd(opts *rootOptions) *cobra.Command {
	var (
		n    int
		seed int64
	)

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Compare the vector kernels with the scalar kernels and a float64 reference",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if n <= 0 {
				return fmt.Errorf("--n must be positive, got %d", n)
			}
			vec, err := opts.vectorEngine()
			if err != nil {
				return err
			}

			cases, err := verifyCases(n, seed)
			if err != nil {
				return err
			}
			failed, err := runVerify(cmd.OutOrStdout(), rvv.Scalar(), vec, cases)
			if err != nil {
				return err
			}
			if failed > 0 {
				return fmt.Errorf("verify: %d of %d checks failed", failed, len(cases))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&n, "n", 1000, "vector length (matrices use about sqrt(n) per side)")
	cmd.Flags().Int64Var(&seed, "seed", 1, "input seed")
	return cmd
}

func runVerify(w io.Writer, scalar, vec *rvv.Engine, cases []verifyCase) (int, error) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Op\tScalar vs %s\tReference\n", vec.Capability())
	fmt.Fprintf(tw, "--\t----------\t---------\n")

	failed := 0
	for _, c := range cases {
		want, err := c.run(scalar)
		if err != nil {
			return failed, fmt.Errorf("%s: %w", c.op, err)
		}
		got, err := c.run(vec)
		if err != nil {
			return failed, fmt.Errorf("%s: %w", c.op, err)
		}

		match := "ok"
		if !identical(got, want) {
			match = "MISMATCH"
		}
		ref := "-"
		if c.ref != nil {
			ref = "ok"
			if err := c.ref(got); err != nil {
				ref = err.Error()
			}
		}
		if match != "ok" || (ref != "ok" && ref != "-") {
			failed++
		}

		fmt.Fprintf(tw, "%s\t%s\t%s\n", c.op, match, ref)
	}

	return failed, tw.Flush()
}

func identical(a, b outcome) bool {
	if len(a.f32) != len(b.f32) || len(a.i8) != len(b.i8) || a.i64 != b.i64 {
		return false
	}
	for i := range a.f32 {
		if math.Float32bits(a.f32[i]) != math.Float32bits(b.f32[i]) {
			return false
		}
	}
	for i := range a.i8 {
		if a.i8[i] != b.i8[i] {
			return false
		}
	}
	return true
}

func withinRel(got []float32, want []float64, tol float64) error {
	if e := reference.MaxRelErr(got, want); e > tol {
		return fmt.Errorf("rel err %.3g > %.0g", e, tol)
	}
	return nil
}

func verifyCases(n int, seed int64) ([]verifyCase, error) {
	xa := reference.Float32s(seed, n, 1)
	xb := reference.Float32s(seed+1, n, 1)
	ia := reference.Int8s(seed+2, n, -128, 127)
	ib := reference.Int8s(seed+3, n, -128, 127)

	side := int(math.Max(1, math.Sqrt(float64(n))))
	ma := reference.Float32s(seed+4, side*(side+1), 1)
	mb := reference.Float32s(seed+5, (side+1)*(side+2), 1)
	mx := reference.Float32s(seed+6, side+1, 1)
	ima := reference.Int8s(seed+7, side*(side+1), -128, 127)
	imb := reference.Int8s(seed+8, side*(side+1), -128, 127)

	a, err := rvv.FromFloat32(xa)
	if err != nil {
		return nil, err
	}
	b, _ := rvv.FromFloat32(xb)
	ai, _ := rvv.FromInt8(ia)
	bi, _ := rvv.FromInt8(ib)
	am, _ := rvv.FromFloat32(ma, side, side+1)
	bm, _ := rvv.FromFloat32(mb, side+1, side+2)
	cm, _ := rvv.FromFloat32(ma, side, side+1)
	x, _ := rvv.FromFloat32(mx)
	aim, _ := rvv.FromInt8(ima, side, side+1)
	bim, _ := rvv.FromInt8(imb, side, side+1)

	arr := func(r *rvv.Array, err error) (outcome, error) {
		if err != nil {
			return outcome{}, err
		}
		return outcome{f32: r.Float32(), i8: r.Int8()}, nil
	}
	scalar := func(v float32, err error) (outcome, error) {
		return outcome{f32: []float32{v}}, err
	}

	var mag float64
	for i := range xa {
		mag += math.Abs(float64(xa[i]) * float64(xb[i]))
	}
	sumTol := float64(n)*1.2e-7*mag + 1e-12

	return []verifyCase{
		{"add", func(e *rvv.Engine) (outcome, error) { return arr(e.Add(a, b)) },
			func(o outcome) error { return withinRel(o.f32, reference.Add(xa, xb), 1e-6) }},
		{"sub", func(e *rvv.Engine) (outcome, error) { return arr(e.Sub(a, b)) },
			func(o outcome) error { return withinRel(o.f32, reference.Sub(xa, xb), 1e-6) }},
		{"scale", func(e *rvv.Engine) (outcome, error) { return arr(e.Scale(a, 0.75)) },
			func(o outcome) error { return withinRel(o.f32, reference.Scale(xa, 0.75), 1e-6) }},
		{"dot", func(e *rvv.Engine) (outcome, error) { return scalar(e.Dot(a, b)) },
			func(o outcome) error {
				if d := math.Abs(float64(o.f32[0]) - reference.Dot(xa, xb)); d > sumTol {
					return fmt.Errorf("abs err %.3g > %.3g", d, sumTol)
				}
				return nil
			}},
		{"norm_l2", func(e *rvv.Engine) (outcome, error) { return scalar(e.NormL2(a)) },
			func(o outcome) error {
				return withinRel(o.f32, []float64{reference.NormL2(xa)}, float64(n)*1.2e-7+1e-6)
			}},
		{"normalize", func(e *rvv.Engine) (outcome, error) { return arr(e.Normalize(a)) }, nil},
		{"matmul", func(e *rvv.Engine) (outcome, error) { return arr(e.MatMul(am, bm)) },
			func(o outcome) error {
				return withinRel(o.f32, reference.MatMul(ma, mb, side, side+1, side+2), 1e-5)
			}},
		{"mv", func(e *rvv.Engine) (outcome, error) { return arr(e.MatVec(am, x)) }, nil},
		{"transpose", func(e *rvv.Engine) (outcome, error) { return arr(e.Transpose(bm)) }, nil},
		{"add2d", func(e *rvv.Engine) (outcome, error) { return arr(e.Add2D(am, cm)) }, nil},
		{"scale2d", func(e *rvv.Engine) (outcome, error) { return arr(e.Scale2D(am, -2)) }, nil},
		{"add_i8", func(e *rvv.Engine) (outcome, error) { return arr(e.AddI8(ai, bi)) },
			func(o outcome) error {
				want := reference.AddI8(ia, ib)
				for i := range want {
					if o.i8[i] != want[i] {
						return fmt.Errorf("index %d: %d != %d", i, o.i8[i], want[i])
					}
				}
				return nil
			}},
		{"scale_i8", func(e *rvv.Engine) (outcome, error) { return arr(e.ScaleI8(ai, 3)) }, nil},
		{"dot_i8", func(e *rvv.Engine) (outcome, error) {
			d, err := e.DotI8(ai, bi)
			return outcome{i64: d}, err
		}, func(o outcome) error {
			if want := reference.DotI8(ia, ib); o.i64 != want {
				return fmt.Errorf("%d != %d", o.i64, want)
			}
			return nil
		}},
		{"add2d_i8", func(e *rvv.Engine) (outcome, error) { return arr(e.Add2DI8(aim, bim)) }, nil},
		{"scale2d_i8", func(e *rvv.Engine) (outcome, error) { return arr(e.Scale2DI8(aim, -5)) }, nil},
	}, nil
}
