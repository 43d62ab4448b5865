package rvv

// arg is a named operand under validation with its required dimensionality.
type arg struct {
	name string
	op   Operand
	dims int
}

// operands resolves and validates the operands of op in a fixed order: kind,
// layout, emptiness, dimensionality. Shape relations between operands are
// checked by the caller afterwards.
func operands(op string, want Kind, args ...arg) ([]*View, error) {
	vs := make([]*View, len(args))
	for i, a := range args {
		if a.op != nil {
			vs[i] = a.op.view()
		}
		if vs[i] == nil {
			return nil, shapeErr(op, "%s is nil", a.name)
		}
	}

	for i, v := range vs {
		if v.kind != want {
			return nil, typeErr(op, "%s.dtype=%s, want %s", args[i].name, v.kind, want)
		}
	}
	for i, v := range vs {
		if !v.supportedLayout() {
			return nil, layoutErr(op, "%s.strides=(%d,%d) for %d columns",
				args[i].name, v.rowStride, v.colStride, v.cols)
		}
	}
	for i, v := range vs {
		if v.Len() == 0 {
			return nil, shapeErr(op, "%s is empty", args[i].name)
		}
	}
	for i, v := range vs {
		if v.dims != args[i].dims {
			return nil, shapeErr(op, "%s.ndim=%d, want %d", args[i].name, v.dims, args[i].dims)
		}
	}

	return vs, nil
}

func sameLen(op string, a, b *View, an, bn string) error {
	if a.cols != b.cols {
		return shapeErr(op, "%s.len=%d vs %s.len=%d", an, a.cols, bn, b.cols)
	}
	return nil
}

func sameShape(op string, a, b *View, an, bn string) error {
	if a.rows != b.rows || a.cols != b.cols {
		return shapeErr(op, "%s.shape=(%d,%d) vs %s.shape=(%d,%d)",
			an, a.rows, a.cols, bn, b.rows, b.cols)
	}
	return nil
}
