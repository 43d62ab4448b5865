// Package testutil holds assertion helpers shared by the kernel tests.
package testutil

import (
	"math"
	"testing"
)

// RequireBitsEqual fails t unless got and want are bit-identical, NaN
// payloads included.
func RequireBitsEqual(t *testing.T, got, want []float32) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if math.Float32bits(got[i]) != math.Float32bits(want[i]) {
			t.Fatalf("index %d: got %v (%#08x), want %v (%#08x)",
				i, got[i], math.Float32bits(got[i]), want[i], math.Float32bits(want[i]))
		}
	}
}

// RequireInt8Equal fails t unless got and want are identical.
func RequireInt8Equal(t *testing.T, got, want []int8) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %d, want %d", i, got[i], want[i])
		}
	}
}

// RequireRelClose fails t if |got-want| exceeds rel*max(1, |want|).
func RequireRelClose(t *testing.T, got, want float64, rel float64) {
	t.Helper()
	if !RelClose(got, want, rel) {
		t.Fatalf("got %v, want %v (rel tol %v)", got, want, rel)
	}
}

// RelClose reports whether |got-want| <= rel*max(1, |want|).
func RelClose(got, want, rel float64) bool {
	if math.IsNaN(got) || math.IsNaN(want) {
		return math.IsNaN(got) && math.IsNaN(want)
	}
	return math.Abs(got-want) <= rel*math.Max(1, math.Abs(want))
}
