package generic

// Dot returns sum(a[i] * b[i]) accumulated in float32 in index order.
// Only the first len(a) elements of b are read.
func Dot(a, b []float32) float32 {
	return DotFrom(0, a, b)
}

// DotFrom continues a float32 dot product from acc. Vector kernels use it for
// the tail so that the tail extends the same sequential accumulation.
func DotFrom(acc float32, a, b []float32) float32 {
	b = b[:len(a)]
	for i := range a {
		// the conversion rounds the product and forbids FMA contraction
		acc += float32(a[i] * b[i])
	}
	return acc
}

// DotI8 returns the exact sum(a[i] * b[i]) of two int8 slices.
func DotI8(a, b []int8) int64 {
	return DotI8From(0, a, b)
}

// DotI8From continues an int8 dot product from acc.
func DotI8From(acc int64, a, b []int8) int64 {
	b = b[:len(a)]
	for i := range a {
		acc += int64(int16(a[i]) * int16(b[i]))
	}
	return acc
}
