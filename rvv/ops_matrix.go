package rvv

// Add2D returns a + b for float32 matrices of equal shape.
func (e *Engine) Add2D(a, b Operand) (*Array, error) {
	vs, err := operands("add2d", Float32, arg{"a", a, 2}, arg{"b", b, 2})
	if err != nil {
		return nil, err
	}
	if err := sameShape("add2d", vs[0], vs[1], "a", "b"); err != nil {
		return nil, err
	}

	va, vb := vs[0], vs[1]
	out := newArray(Float32, 2, va.rows, va.cols)
	if va.contiguous() && vb.contiguous() {
		e.kernels.Add(out.v.f32, va.span32(), vb.span32())
		return out, nil
	}
	for r := 0; r < va.rows; r++ {
		e.kernels.Add(out.v.row32(r), va.row32(r), vb.row32(r))
	}
	return out, nil
}

// Scale2D returns a * k for a float32 matrix.
func (e *Engine) Scale2D(a Operand, k float32) (*Array, error) {
	vs, err := operands("scale2d", Float32, arg{"a", a, 2})
	if err != nil {
		return nil, err
	}

	va := vs[0]
	out := newArray(Float32, 2, va.rows, va.cols)
	if va.contiguous() {
		e.kernels.Scale(out.v.f32, va.span32(), k)
		return out, nil
	}
	for r := 0; r < va.rows; r++ {
		e.kernels.Scale(out.v.row32(r), va.row32(r), k)
	}
	return out, nil
}

// MatMul returns the product of an m×k and a k×n float32 matrix.
func (e *Engine) MatMul(a, b Operand) (*Array, error) {
	vs, err := operands("matmul", Float32, arg{"a", a, 2}, arg{"b", b, 2})
	if err != nil {
		return nil, err
	}

	va, vb := vs[0], vs[1]
	if va.cols != vb.rows {
		return nil, shapeErr("matmul", "a.cols=%d vs b.rows=%d", va.cols, vb.rows)
	}

	m, k, n := va.rows, va.cols, vb.cols
	out := newArray(Float32, 2, m, n)
	e.kernels.MatMul(out.v.f32, n, va.span32(), va.ld(), vb.span32(), vb.ld(), m, k, n)
	return out, nil
}

// MatVec returns A * x for an m×n float32 matrix and a vector of length n.
func (e *Engine) MatVec(a, x Operand) (*Array, error) {
	vs, err := operands("mv", Float32, arg{"a", a, 2}, arg{"x", x, 1})
	if err != nil {
		return nil, err
	}

	va, vx := vs[0], vs[1]
	if va.cols != vx.cols {
		return nil, shapeErr("mv", "a.cols=%d vs x.len=%d", va.cols, vx.cols)
	}

	out := newArray(Float32, 1, 1, va.rows)
	e.kernels.MatVec(out.v.f32, va.span32(), va.ld(), vx.span32(), va.rows, va.cols)
	return out, nil
}

// Transpose returns the cols×rows transpose of a float32 matrix.
func (e *Engine) Transpose(a Operand) (*Array, error) {
	vs, err := operands("transpose", Float32, arg{"a", a, 2})
	if err != nil {
		return nil, err
	}

	va := vs[0]
	out := newArray(Float32, 2, va.cols, va.rows)
	e.kernels.Transpose(out.v.f32, va.rows, va.span32(), va.ld(), va.rows, va.cols)
	return out, nil
}
