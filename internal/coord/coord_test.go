package coord

import "testing"

// TestArrayRoundTrip checks ArrayToIndex/IndexToArray round-trip for every
// coordinate in the edge (n=4,c=2,pn=12), corner (n=3,c=3,pn=8) and
// single-edge (n=1,c=2,pn=12) shaped families.
func TestArrayRoundTrip(t *testing.T) {
	cases := []struct {
		name       string
		n, c, pn   int
	}{
		{"partial-edges4", 4, 2, 12},
		{"partial-corners3", 3, 3, 8},
		{"single-edge", 1, 2, 12},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fam := Family{Name: tc.name, N: tc.n, C: tc.c, PN: tc.pn}
			size := fam.Size()
			if size <= 0 || size > 2_000_000 {
				t.Fatalf("unreasonable family size %d", size)
			}
			seen := make(map[int]bool, size)
			for i := 0; i < size; i++ {
				a := make([]int, tc.n)
				IndexToArray(a, i, tc.n, tc.c, tc.pn)

				got := ArrayToIndex(a, tc.n, tc.c, tc.pn)
				if got != i {
					t.Fatalf("round-trip mismatch at %d: got %d (array %v)", i, got, a)
				}
				if seen[i] {
					t.Fatalf("duplicate coordinate %d", i)
				}
				seen[i] = true
			}
		})
	}
}

// TestOrientationRoundTrip checks OToIndex/IndexToO round-trip and the
// parity invariant on the reconstructed last entry.
func TestOrientationRoundTrip(t *testing.T) {
	cases := []struct {
		name   string
		c, pn  int
	}{
		{"edge-orientation", 2, 12},
		{"corner-orientation", 3, 8},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			size := pow(tc.c, tc.pn-1)
			for i := 0; i < size; i++ {
				o := make([]int, tc.pn)
				IndexToO(o, i, tc.c, tc.pn)

				sum := 0
				for _, v := range o {
					sum += v
				}
				if sum%tc.c != 0 {
					t.Fatalf("index %d: sum(o) mod %d = %d, want 0", i, tc.c, sum%tc.c)
				}

				got := OToIndex(o, tc.c, tc.pn)
				if got != i {
					t.Fatalf("round-trip mismatch at %d: got %d (o %v)", i, got, o)
				}
			}
		})
	}
}
