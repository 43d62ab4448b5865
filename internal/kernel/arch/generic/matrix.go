package generic

// MatMul computes C = A * B with A m×k (leading dimension lda), B k×n (ldb)
// and C m×n (ldc) using the textbook triple loop. Each C[i][j] is accumulated
// in float32 over kk = 0..k-1 in order.
func MatMul(c []float32, ldc int, a []float32, lda int, b []float32, ldb int, m, k, n int) {
	for i := 0; i < m; i++ {
		arow := a[i*lda : i*lda+k]
		crow := c[i*ldc : i*ldc+n]
		for j := range crow {
			var sum float32
			for kk, av := range arow {
				sum += float32(av * b[kk*ldb+j])
			}
			crow[j] = sum
		}
	}
}

// MatVec computes y = A * x for A rows×cols with leading dimension lda.
func MatVec(y, a []float32, lda int, x []float32, rows, cols int) {
	x = x[:cols]
	for i := 0; i < rows; i++ {
		y[i] = Dot(a[i*lda:i*lda+cols], x)
	}
}

// Transpose writes B = A^T, where A is rows×cols (lda) and B is cols×rows (ldb).
func Transpose(b []float32, ldb int, a []float32, lda int, rows, cols int) {
	for r := 0; r < rows; r++ {
		arow := a[r*lda : r*lda+cols]
		for c, v := range arow {
			b[c*ldb+r] = v
		}
	}
}
