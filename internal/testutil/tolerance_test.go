package testutil

import (
	"math"
	"testing"
)

func TestRelClose(t *testing.T) {
	tests := []struct {
		got, want, rel float64
		ok             bool
	}{
		{1.0, 1.0, 0, true},
		{1000, 1000.001, 1e-5, true},
		{1000, 1001, 1e-5, false},
		{1e-9, 0, 1e-6, true},
		{math.NaN(), math.NaN(), 1e-6, true},
		{math.NaN(), 1, 1e-6, false},
	}

	for _, tt := range tests {
		if got := RelClose(tt.got, tt.want, tt.rel); got != tt.ok {
			t.Errorf("RelClose(%v, %v, %v) = %v, want %v", tt.got, tt.want, tt.rel, got, tt.ok)
		}
	}
}

func TestEdgeLengths(t *testing.T) {
	got := EdgeLengths(4)
	want := []int{1, 2, 3, 4, 5, 7, 8, 11}
	if len(got) != len(want) {
		t.Fatalf("EdgeLengths(4) = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("EdgeLengths(4) = %v, want %v", got, want)
		}
	}
}

func TestSizeName(t *testing.T) {
	if got := SizeName(1024); got != "n=1024" {
		t.Errorf("SizeName(1024) = %q", got)
	}
	if got := SizeName(0); got != "n=0" {
		t.Errorf("SizeName(0) = %q", got)
	}
}
