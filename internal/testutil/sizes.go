package testutil

import "sort"

// EdgeLengths returns the lengths that exercise chunked kernels with the given
// chunk sizes: 1, exact multiples, and multiples plus or minus one.
func EdgeLengths(chunks ...int) []int {
	seen := map[int]bool{1: true, 2: true, 3: true, 7: true}
	for _, c := range chunks {
		if c <= 0 {
			continue
		}
		for _, n := range []int{c - 1, c, c + 1, 2 * c, 2*c + 3, 3*c - 1} {
			if n > 0 {
				seen[n] = true
			}
		}
	}

	out := make([]int, 0, len(seen))
	for n := range seen {
		out = append(out, n)
	}
	sort.Ints(out)
	return out
}

// SizeName formats a length for subtest names.
func SizeName(n int) string {
	return "n=" + itoa(n)
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	s := ""
	for n > 0 {
		s = string(rune('0'+n%10)) + s
		n /= 10
	}
	return s
}
