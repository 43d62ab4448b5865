package vla

import "github.com/cwbudde/algo-rvv/internal/kernel/arch/generic"

// MatMul computes C = A * B by broadcasting A[i][kk] against e32m4 chunks of
// row kk of B. Every C[i][j] is accumulated over kk in order, as in the
// scalar triple loop. Columns past the last full chunk use the scalar kernel.
func (k *Kernels) MatMul(c []float32, ldc int, a []float32, lda int, b []float32, ldb int, m, kdim, n int) {
	vl := k.vlF32
	nFull := n - n%vl

	var vacc vfloat32
	for i := 0; i < m; i++ {
		arow := a[i*lda : i*lda+kdim]
		crow := c[i*ldc : i*ldc+n]

		for j := 0; j < nFull; j += vl {
			vfmvZero(&vacc, vl)
			for kk, av := range arow {
				vfmacc(&vacc, av, b[kk*ldb+j:], vl)
			}
			vse32(crow[j:], &vacc, vl)
		}
		if nFull < n {
			generic.MatMul(crow[nFull:], ldc, arow, lda, b[nFull:], ldb, 1, kdim, n-nFull)
		}
	}
}

// MatVec computes y = A * x with one ordered dot product per row.
func (k *Kernels) MatVec(y, a []float32, lda int, x []float32, rows, cols int) {
	x = x[:cols]
	for i := 0; i < rows; i++ {
		y[i] = k.Dot(a[i*lda:i*lda+cols], x)
	}
}

// Transpose writes B = A^T in square tiles of one e32m1 register: each tile
// row is a unit-stride load from A and a strided store into B. The right and
// bottom strips that do not fill a tile use the scalar kernel.
func (k *Kernels) Transpose(b []float32, ldb int, a []float32, lda int, rows, cols int) {
	t := k.tile
	rowsFull := rows - rows%t
	colsFull := cols - cols%t

	for r0 := 0; r0 < rowsFull; r0 += t {
		for c0 := 0; c0 < colsFull; c0 += t {
			for r := r0; r < r0+t; r++ {
				v := a[r*lda+c0 : r*lda+c0+t]
				for l, x := range v {
					b[(c0+l)*ldb+r] = x
				}
			}
		}
	}

	if colsFull < cols {
		generic.Transpose(b[colsFull*ldb:], ldb, a[colsFull:], lda, rows, cols-colsFull)
	}
	if rowsFull < rows && colsFull > 0 {
		generic.Transpose(b[rowsFull:], ldb, a[rowsFull*lda:], lda, rows-rowsFull, colsFull)
	}
}
