package generic

// Add computes dst[i] = a[i] + b[i] over len(dst) elements.
// This is the scalar reference implementation.
func Add(dst, a, b []float32) {
	a = a[:len(dst)]
	b = b[:len(dst)]
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

// Sub computes dst[i] = a[i] - b[i] over len(dst) elements.
func Sub(dst, a, b []float32) {
	a = a[:len(dst)]
	b = b[:len(dst)]
	for i := range dst {
		dst[i] = a[i] - b[i]
	}
}

// AddI8 computes dst[i] = a[i] + b[i], wrapping modulo 2^8.
func AddI8(dst, a, b []int8) {
	a = a[:len(dst)]
	b = b[:len(dst)]
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}
