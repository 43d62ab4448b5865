package generic

// Scale computes dst[i] = a[i] * k.
func Scale(dst, a []float32, k float32) {
	a = a[:len(dst)]
	for i := range dst {
		dst[i] = a[i] * k
	}
}

// ScaleI8 computes dst[i] = a[i] * k, wrapping modulo 2^8.
func ScaleI8(dst, a []int8, k int8) {
	a = a[:len(dst)]
	for i := range dst {
		dst[i] = a[i] * k
	}
}
