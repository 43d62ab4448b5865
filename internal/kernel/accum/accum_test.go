package accum

import (
	"math"
	"testing"
)

func TestChunkSize(t *testing.T) {
	tests := []struct {
		bits, lmul int
		elem       Elem
		want       int
	}{
		{128, LMULFloat32, Float32, 16},
		{128, LMULInt8, Int8, 128},
		{128, LMULDotInt8, Int8, 64},
		{256, LMULFloat32, Float32, 32},
		{64, 1, Float32, 2},
		{0, LMULFloat32, Float32, 0},
		{128, 0, Int8, 0},
	}

	for _, tt := range tests {
		if got := ChunkSize(tt.bits, tt.lmul, tt.elem); got != tt.want {
			t.Errorf("ChunkSize(%d, %d, %v) = %d, want %d", tt.bits, tt.lmul, tt.elem, got, tt.want)
		}
	}
}

func TestWidenMulExtremes(t *testing.T) {
	if got := WidenMul(-128, -128); got != MaxI8Product {
		t.Errorf("WidenMul(-128,-128) = %d, want %d", got, MaxI8Product)
	}
	if got := WidenMul(127, -128); got != -16256 {
		t.Errorf("WidenMul(127,-128) = %d, want -16256", got)
	}
}

func TestChunkPartialFitsInt32(t *testing.T) {
	// the widest configured dot chunk must reduce into int32 without overflow
	widest := ChunkSize(4096, LMULDotInt8, Int8)
	if widest > MaxInt32ChunkLanes {
		t.Fatalf("chunk of %d lanes exceeds int32 partial bound %d", widest, MaxInt32ChunkLanes)
	}
	if int64(widest)*MaxI8Product > math.MaxInt32 {
		t.Fatalf("partial sum bound overflows int32")
	}
}

func TestLookup(t *testing.T) {
	p, ok := Lookup(OpDot, Int8)
	if !ok {
		t.Fatal("dot/int8 policy missing")
	}
	if p.Accumulator != AccInt64 || p.Overflow != Exact || p.Order != Sequential {
		t.Errorf("dot/int8 policy = %v", p)
	}

	p, ok = Lookup(OpAdd, Int8)
	if !ok || p.Overflow != Wrap {
		t.Errorf("add/int8 policy = %v, %v", p, ok)
	}

	if _, ok := Lookup(OpMatMul, Int8); ok {
		t.Error("matmul/int8 must not be supported")
	}
	if _, ok := Lookup(OpNormL2, Int8); ok {
		t.Error("norm_l2/int8 must not be supported")
	}
}

func TestAllIsCopy(t *testing.T) {
	all := All()
	all[0].Op = "mutated"
	if p, _ := Lookup(OpAdd, Float32); p.Op != OpAdd {
		t.Error("All() exposed the internal table")
	}
}

func TestPolicyString(t *testing.T) {
	p, _ := Lookup(OpDot, Float32)
	want := "dot/float32: acc=float32 overflow=ieee order=sequential lmul=m4"
	if got := p.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
