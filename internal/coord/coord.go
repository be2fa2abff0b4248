// Package coord implements the bijections between cubie arrays and the
// dense integer coordinates used as move/prune-table addresses: factorial-
// base permutation encoding and positional base-c orientation encoding.
package coord

// pow returns base^exp for the small non-negative exponents used throughout
// this package (orientation bases are 2 or 3).
func pow(base, exp int) int {
	r := 1
	for i := 0; i < exp; i++ {
		r *= base
	}
	return r
}

// fallingFactorial returns n*(n-1)*...*(n-k+1), i.e. n!/(n-k)!.
func fallingFactorial(n, k int) int {
	r := 1
	for i := 0; i < k; i++ {
		r *= n - i
	}
	return r
}

// ArrayToIndex encodes a length-n slice a, each element packed as
// identity*c+orientation over pn total slots, into a single coordinate:
// the permutation part factorial-encoded and the orientation part
// positional-base-c encoded, concatenated as permIndex*c^n + orientIndex.
// a is not mutated.
func ArrayToIndex(a []int, n, c, pn int) int {
	perm := make([]int, n)
	indexO := 0
	for i := 0; i < n; i++ {
		indexO += (a[i] % c) * pow(c, n-i-1)
		perm[i] = a[i] / c
	}

	indexP := 0
	for i := 0; i < n; i++ {
		less := 0
		for j := 0; j < i; j++ {
			if perm[j] < perm[i] {
				less++
			}
		}
		indexP += (perm[i] - less) * fallingFactorial(pn, i)
	}

	return indexP*pow(c, n) + indexO
}

// IndexToArray is ArrayToIndex's inverse: given a coordinate produced by
// ArrayToIndex with the same (n, c, pn), it reconstructs p[i] =
// identity*c+orientation for each of the n tracked slots.
//
// Unlike the original production code this does not fold a move-table
// generator count into the result; callers building move-table rows
// multiply the decoded coordinate by G themselves (see movetable.Build).
func IndexToArray(p []int, index, n, c, pn int) {
	indexP := index / pow(c, n)
	indexO := index % pow(c, n)

	sorted := make([]int, n)
	for i := 0; i < n; i++ {
		radix := pn - i
		p[i] = indexP % radix
		indexP /= radix

		// Re-insert previously emitted identities below p[i] so the
		// decoded sequence reconstructs exactly the perm ArrayToIndex saw.
		bubbleSort(sorted[:i])
		for j := 0; j < i; j++ {
			if sorted[j] <= p[i] {
				p[i]++
			}
		}
		sorted[i] = p[i]
	}

	for i := 0; i < n; i++ {
		slot := n - 1 - i
		p[slot] = c*p[slot] + indexO%c
		indexO /= c
	}
}

// bubbleSort sorts a tiny slice in place; n is always <= 8 for every
// coordinate family this package serves, so this beats pulling in sort.Ints
// for allocation-free hot-path decoding.
func bubbleSort(a []int) {
	for i := 1; i < len(a); i++ {
		for j := i; j > 0 && a[j-1] > a[j]; j-- {
			a[j-1], a[j] = a[j], a[j-1]
		}
	}
}

// OToIndex encodes an orientation vector o of length pn in base c, dropping
// the last (parity-determined) entry.
func OToIndex(o []int, c, pn int) int {
	index := 0
	for i := 0; i < pn-1; i++ {
		index += o[i] * pow(c, pn-i-2)
	}
	return index
}

// IndexToO is OToIndex's inverse, additionally reconstructing the dropped
// last entry so that sum(o) mod c == 0.
func IndexToO(o []int, index, c, pn int) {
	count := 0
	for i := 0; i < pn-1; i++ {
		slot := pn - i - 2
		o[slot] = index % c
		count += o[slot]
		index /= c
	}
	o[pn-1] = (c - count%c) % c
}

// Family describes one coordinate address space: how many cubies are
// tracked (N), their orientation base (C, 2 for edges or 3 for corners),
// and how many slots they range over (PN, 12 or 8). Size is the number of
// distinct coordinate values, used to size move/prune tables.
type Family struct {
	Name string
	N    int
	C    int
	PN   int
}

// IdentityArray builds the array_to_index input representing "every
// tracked cubie sits in its home slot, unflipped/untwisted": trackedSlots
// gives the home slot of tracked identity i at position i, in whatever
// fixed order the caller has chosen to track identities (e.g. the four
// D-layer edges for a cross solver). The resulting array's ArrayToIndex is
// that solver's solved-state coordinate.
func IdentityArray(trackedSlots []int, c int) []int {
	a := make([]int, len(trackedSlots))
	for i, slot := range trackedSlots {
		a[i] = slot * c
	}
	return a
}

// Size returns the number of distinct coordinates in the family:
// fallingFactorial(PN, N) permutation classes times C^N orientation
// classes.
func (f Family) Size() int {
	return fallingFactorial(f.PN, f.N) * pow(f.C, f.N)
}
