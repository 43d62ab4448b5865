package reference

import (
	"math"
	"testing"
)

func TestFloat32sDeterministic(t *testing.T) {
	a := Float32s(42, 64, 1)
	b := Float32s(42, 64, 1)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("not deterministic at %d", i)
		}
		if a[i] < -1 || a[i] >= 1 {
			t.Fatalf("a[%d] = %v out of range", i, a[i])
		}
	}
	c := Float32s(43, 64, 1)
	same := true
	for i := range a {
		if a[i] != c[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced identical data")
	}
}

func TestInt8sRange(t *testing.T) {
	v := Int8s(7, 4096, -10, 10)
	for i, x := range v {
		if x < -10 || x > 10 {
			t.Fatalf("v[%d] = %d out of [-10, 10]", i, x)
		}
	}
	full := Int8s(7, 4096, -128, 127)
	sawMin, sawMax := false, false
	for _, x := range full {
		sawMin = sawMin || x == -128
		sawMax = sawMax || x == 127
	}
	if !sawMin || !sawMax {
		t.Error("full-range generator never hit the extremes")
	}
}

func TestVectorReferences(t *testing.T) {
	a := []float32{1, 2, 3, 4}
	b := []float32{5, 6, 7, 8}

	if got := Dot(a, b); got != 70 {
		t.Errorf("Dot = %v, want 70", got)
	}
	if got := NormL2(a); math.Abs(got-math.Sqrt(30)) > 1e-12 {
		t.Errorf("NormL2 = %v, want sqrt(30)", got)
	}

	sum := Add(a, b)
	diff := Sub(a, b)
	scaled := Scale(a, 3)
	for i := range a {
		if sum[i] != float64(a[i]+b[i]) {
			t.Errorf("Add[%d] = %v", i, sum[i])
		}
		if diff[i] != float64(a[i]-b[i]) {
			t.Errorf("Sub[%d] = %v", i, diff[i])
		}
		if scaled[i] != float64(a[i]*3) {
			t.Errorf("Scale[%d] = %v", i, scaled[i])
		}
	}
}

func TestMatMulReference(t *testing.T) {
	a := []float32{1, 2, 3, 4, 5, 6}    // 2x3
	b := []float32{7, 8, 9, 10, 11, 12} // 3x2
	got := MatMul(a, b, 2, 3, 2)
	want := []float64{58, 64, 139, 154}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("MatMul[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestInt8References(t *testing.T) {
	a := []int8{1, 2, 3, 127}
	b := []int8{5, 6, 7, 1}
	if got := DotI8(a, b); got != 5+12+21+127 {
		t.Errorf("DotI8 = %d", got)
	}
	sum := AddI8(a, b)
	if sum[3] != -128 {
		t.Errorf("AddI8 wrap = %d, want -128", sum[3])
	}
}

func TestMaxRelErr(t *testing.T) {
	if e := MaxRelErr([]float32{1, 2}, []float64{1, 2}); e != 0 {
		t.Errorf("identical: %v", e)
	}
	if e := MaxRelErr([]float32{1}, []float64{1, 2}); !math.IsInf(e, 1) {
		t.Errorf("length mismatch: %v", e)
	}
	nan := float32(math.NaN())
	if e := MaxRelErr([]float32{nan}, []float64{math.NaN()}); e != 0 {
		t.Errorf("NaN vs NaN: %v", e)
	}
	if e := MaxRelErr([]float32{nan}, []float64{1}); !math.IsInf(e, 1) {
		t.Errorf("NaN vs 1: %v", e)
	}
	if e := MaxRelErr([]float32{200}, []float64{100}); e != 1 {
		t.Errorf("relative error = %v, want 1", e)
	}
}
