package rvv

import "math"

// Add returns a + b for float32 vectors of equal length.
func (e *Engine) Add(a, b Operand) (*Array, error) {
	vs, err := operands("add", Float32, arg{"a", a, 1}, arg{"b", b, 1})
	if err != nil {
		return nil, err
	}
	if err := sameLen("add", vs[0], vs[1], "a", "b"); err != nil {
		return nil, err
	}

	out := newArray(Float32, 1, 1, vs[0].cols)
	e.kernels.Add(out.v.f32, vs[0].span32(), vs[1].span32())
	return out, nil
}

// Sub returns a - b for float32 vectors of equal length.
func (e *Engine) Sub(a, b Operand) (*Array, error) {
	vs, err := operands("sub", Float32, arg{"a", a, 1}, arg{"b", b, 1})
	if err != nil {
		return nil, err
	}
	if err := sameLen("sub", vs[0], vs[1], "a", "b"); err != nil {
		return nil, err
	}

	out := newArray(Float32, 1, 1, vs[0].cols)
	e.kernels.Sub(out.v.f32, vs[0].span32(), vs[1].span32())
	return out, nil
}

// Scale returns a * k.
func (e *Engine) Scale(a Operand, k float32) (*Array, error) {
	vs, err := operands("scale", Float32, arg{"a", a, 1})
	if err != nil {
		return nil, err
	}

	out := newArray(Float32, 1, 1, vs[0].cols)
	e.kernels.Scale(out.v.f32, vs[0].span32(), k)
	return out, nil
}

// Dot returns the inner product of two float32 vectors, accumulated in
// float32 in index order.
func (e *Engine) Dot(a, b Operand) (float32, error) {
	vs, err := operands("dot", Float32, arg{"a", a, 1}, arg{"b", b, 1})
	if err != nil {
		return 0, err
	}
	if err := sameLen("dot", vs[0], vs[1], "a", "b"); err != nil {
		return 0, err
	}

	return e.kernels.Dot(vs[0].span32(), vs[1].span32()), nil
}

// NormL2 returns the Euclidean norm sqrt(dot(a, a)).
func (e *Engine) NormL2(a Operand) (float32, error) {
	vs, err := operands("norm_l2", Float32, arg{"a", a, 1})
	if err != nil {
		return 0, err
	}

	return e.norm(vs[0].span32()), nil
}

func (e *Engine) norm(x []float32) float32 {
	ss := e.kernels.Dot(x, x)
	if ss == 0 {
		return 0
	}
	return float32(math.Sqrt(float64(ss)))
}

// Normalize returns a / NormL2(a). The zero vector normalizes to zeros.
func (e *Engine) Normalize(a Operand) (*Array, error) {
	vs, err := operands("normalize", Float32, arg{"a", a, 1})
	if err != nil {
		return nil, err
	}

	out := newArray(Float32, 1, 1, vs[0].cols)
	x := vs[0].span32()
	nrm := e.norm(x)
	if nrm == 0 {
		return out, nil
	}
	e.kernels.Scale(out.v.f32, x, 1/nrm)
	return out, nil
}

// AddInto stores a + b into dst. dst may share storage with a or b.
func (e *Engine) AddInto(dst, a, b Operand) error {
	vs, err := operands("add", Float32, arg{"dst", dst, 1}, arg{"a", a, 1}, arg{"b", b, 1})
	if err != nil {
		return err
	}
	if err := sameLen("add", vs[1], vs[2], "a", "b"); err != nil {
		return err
	}
	if err := sameLen("add", vs[0], vs[1], "dst", "a"); err != nil {
		return err
	}

	e.kernels.Add(vs[0].span32(), vs[1].span32(), vs[2].span32())
	return nil
}

// SubInto stores a - b into dst. dst may share storage with a or b.
func (e *Engine) SubInto(dst, a, b Operand) error {
	vs, err := operands("sub", Float32, arg{"dst", dst, 1}, arg{"a", a, 1}, arg{"b", b, 1})
	if err != nil {
		return err
	}
	if err := sameLen("sub", vs[1], vs[2], "a", "b"); err != nil {
		return err
	}
	if err := sameLen("sub", vs[0], vs[1], "dst", "a"); err != nil {
		return err
	}

	e.kernels.Sub(vs[0].span32(), vs[1].span32(), vs[2].span32())
	return nil
}

// ScaleInto stores a * k into dst. dst may share storage with a.
func (e *Engine) ScaleInto(dst, a Operand, k float32) error {
	vs, err := operands("scale", Float32, arg{"dst", dst, 1}, arg{"a", a, 1})
	if err != nil {
		return err
	}
	if err := sameLen("scale", vs[0], vs[1], "dst", "a"); err != nil {
		return err
	}

	e.kernels.Scale(vs[0].span32(), vs[1].span32(), k)
	return nil
}
