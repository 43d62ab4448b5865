package rvv

// AddI8 returns a + b for int8 vectors of equal length, wrapping modulo 2^8.
func (e *Engine) AddI8(a, b Operand) (*Array, error) {
	vs, err := operands("add_i8", Int8, arg{"a", a, 1}, arg{"b", b, 1})
	if err != nil {
		return nil, err
	}
	if err := sameLen("add_i8", vs[0], vs[1], "a", "b"); err != nil {
		return nil, err
	}

	out := newArray(Int8, 1, 1, vs[0].cols)
	e.kernels.AddI8(out.v.i8, vs[0].span8(), vs[1].span8())
	return out, nil
}

// AddI8Into stores a + b into dst. dst may share storage with a or b.
func (e *Engine) AddI8Into(dst, a, b Operand) error {
	vs, err := operands("add_i8", Int8, arg{"dst", dst, 1}, arg{"a", a, 1}, arg{"b", b, 1})
	if err != nil {
		return err
	}
	if err := sameLen("add_i8", vs[1], vs[2], "a", "b"); err != nil {
		return err
	}
	if err := sameLen("add_i8", vs[0], vs[1], "dst", "a"); err != nil {
		return err
	}

	e.kernels.AddI8(vs[0].span8(), vs[1].span8(), vs[2].span8())
	return nil
}

// ScaleI8 returns a * k for an int8 vector, wrapping modulo 2^8.
func (e *Engine) ScaleI8(a Operand, k int8) (*Array, error) {
	vs, err := operands("scale_i8", Int8, arg{"a", a, 1})
	if err != nil {
		return nil, err
	}

	out := newArray(Int8, 1, 1, vs[0].cols)
	e.kernels.ScaleI8(out.v.i8, vs[0].span8(), k)
	return out, nil
}

// DotI8 returns the exact inner product of two int8 vectors.
func (e *Engine) DotI8(a, b Operand) (int64, error) {
	vs, err := operands("dot_i8", Int8, arg{"a", a, 1}, arg{"b", b, 1})
	if err != nil {
		return 0, err
	}
	if err := sameLen("dot_i8", vs[0], vs[1], "a", "b"); err != nil {
		return 0, err
	}

	return e.kernels.DotI8(vs[0].span8(), vs[1].span8()), nil
}

// Add2DI8 returns a + b for int8 matrices of equal shape, wrapping modulo 2^8.
func (e *Engine) Add2DI8(a, b Operand) (*Array, error) {
	vs, err := operands("add2d_i8", Int8, arg{"a", a, 2}, arg{"b", b, 2})
	if err != nil {
		return nil, err
	}
	if err := sameShape("add2d_i8", vs[0], vs[1], "a", "b"); err != nil {
		return nil, err
	}

	va, vb := vs[0], vs[1]
	out := newArray(Int8, 2, va.rows, va.cols)
	if va.contiguous() && vb.contiguous() {
		e.kernels.AddI8(out.v.i8, va.span8(), vb.span8())
		return out, nil
	}
	for r := 0; r < va.rows; r++ {
		e.kernels.AddI8(out.v.row8(r), va.row8(r), vb.row8(r))
	}
	return out, nil
}

// Scale2DI8 returns a * k for an int8 matrix, wrapping modulo 2^8.
func (e *Engine) Scale2DI8(a Operand, k int8) (*Array, error) {
	vs, err := operands("scale2d_i8", Int8, arg{"a", a, 2})
	if err != nil {
		return nil, err
	}

	va := vs[0]
	out := newArray(Int8, 2, va.rows, va.cols)
	if va.contiguous() {
		e.kernels.ScaleI8(out.v.i8, va.span8(), k)
		return out, nil
	}
	for r := 0; r < va.rows; r++ {
		e.kernels.ScaleI8(out.v.row8(r), va.row8(r), k)
	}
	return out, nil
}
