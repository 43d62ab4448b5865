package rvv

// Package-level operations run on the Default engine.

// Add returns a + b. See Engine.Add.
func Add(a, b Operand) (*Array, error) { return Default().Add(a, b) }

// Sub returns a - b. See Engine.Sub.
func Sub(a, b Operand) (*Array, error) { return Default().Sub(a, b) }

// Scale returns a * k. See Engine.Scale.
func Scale(a Operand, k float32) (*Array, error) { return Default().Scale(a, k) }

// Dot returns the float32 inner product. See Engine.Dot.
func Dot(a, b Operand) (float32, error) { return Default().Dot(a, b) }

// NormL2 returns the Euclidean norm. See Engine.NormL2.
func NormL2(a Operand) (float32, error) { return Default().NormL2(a) }

// Normalize returns a scaled to unit norm. See Engine.Normalize.
func Normalize(a Operand) (*Array, error) { return Default().Normalize(a) }

// AddInto stores a + b into dst. See Engine.AddInto.
func AddInto(dst, a, b Operand) error { return Default().AddInto(dst, a, b) }

// SubInto stores a - b into dst. See Engine.SubInto.
func SubInto(dst, a, b Operand) error { return Default().SubInto(dst, a, b) }

// ScaleInto stores a * k into dst. See Engine.ScaleInto.
func ScaleInto(dst, a Operand, k float32) error { return Default().ScaleInto(dst, a, k) }

// Add2D returns a + b for matrices. See Engine.Add2D.
func Add2D(a, b Operand) (*Array, error) { return Default().Add2D(a, b) }

// Scale2D returns a * k for a matrix. See Engine.Scale2D.
func Scale2D(a Operand, k float32) (*Array, error) { return Default().Scale2D(a, k) }

// MatMul returns the matrix product. See Engine.MatMul.
func MatMul(a, b Operand) (*Array, error) { return Default().MatMul(a, b) }

// MatVec returns the matrix-vector product. See Engine.MatVec.
func MatVec(a, x Operand) (*Array, error) { return Default().MatVec(a, x) }

// Transpose returns the matrix transpose. See Engine.Transpose.
func Transpose(a Operand) (*Array, error) { return Default().Transpose(a) }

// AddI8 returns a + b for int8 vectors. See Engine.AddI8.
func AddI8(a, b Operand) (*Array, error) { return Default().AddI8(a, b) }

// AddI8Into stores a + b into dst. See Engine.AddI8Into.
func AddI8Into(dst, a, b Operand) error { return Default().AddI8Into(dst, a, b) }

// ScaleI8 returns a * k for an int8 vector. See Engine.ScaleI8.
func ScaleI8(a Operand, k int8) (*Array, error) { return Default().ScaleI8(a, k) }

// DotI8 returns the exact int8 inner product. See Engine.DotI8.
func DotI8(a, b Operand) (int64, error) { return Default().DotI8(a, b) }

// Add2DI8 returns a + b for int8 matrices. See Engine.Add2DI8.
func Add2DI8(a, b Operand) (*Array, error) { return Default().Add2DI8(a, b) }

// Scale2DI8 returns a * k for an int8 matrix. See Engine.Scale2DI8.
func Scale2DI8(a Operand, k int8) (*Array, error) { return Default().Scale2DI8(a, k) }
