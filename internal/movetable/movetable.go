// Package movetable builds the dense per-coordinate move tables consulted
// during search: for every coordinate and every enabled generator, where
// that coordinate moves to. Tables are built once and owned for the
// lifetime of a solver, the same way board/magic.go builds its attack
// tables once at startup.
package movetable

import (
	"github.com/hailam/cubesolve/internal/coord"
	"github.com/hailam/cubesolve/internal/cube"
)

// Kind selects which cubie type a table tracks, and whether permutation and
// orientation are addressed jointly or as two independent coordinates. A
// coordinate family only ever mixes cubies of one kind; composite solver
// state is the Cartesian product of several tables, not one merged table.
type Kind int

const (
	KindCorner Kind = iota
	KindEdge
	// KindCornerPerm and KindCornerOrient split the combined (cp, co)
	// family a full 2x2-corner state would otherwise need into two bounded
	// tables, the way the original 2x2 solver keeps cp and co as separate
	// coordinates instead of one cp*co-sized one: fallingFactorial(8,8)*3^8
	// (264,539,520 states) becomes an 8!=40320-state permutation table and
	// a 3^7=2187-state orientation table.
	//
	// A KindCornerPerm family must have C=1 (no orientation dimension); its
	// Size() is exactly fallingFactorial(PN, N). A KindCornerOrient family
	// tracks all PN slots' orientations regardless of N, encoded with
	// coord.OToIndex/IndexToO, which drop the parity-determined last entry.
	KindCornerPerm
	KindCornerOrient
)

// unfilled is the sentinel written into a row before it has been computed.
const unfilled = -1

// Table is a flat T[coord*G+g] = coord' lookup, plus enough of the
// generator list to translate a move index back to a name.
type Table struct {
	Family     coord.Family
	Kind       Kind
	Generators []cube.Generator
	Data       []int32
}

// G is the number of enabled generators this table was built over.
func (t Table) G() int {
	return len(t.Generators)
}

// Lookup returns the coordinate reached from coordIdx by applying the
// genIdx-th generator.
func (t Table) Lookup(coordIdx, genIdx int) int {
	return int(t.Data[coordIdx*t.G()+genIdx])
}

// Size returns the number of distinct coordinates this table's Kind
// addresses: Family.Size() for the combined corner/edge kinds, or the
// dedicated count for the split permutation-only/orientation-only kinds.
func (t Table) Size() int { return sizeFor(t.Family, t.Kind) }

func sizeFor(fam coord.Family, kind Kind) int {
	if kind == KindCornerOrient {
		return intPow(fam.C, fam.PN-1)
	}
	return fam.Size()
}

// intPow returns base^exp for the small non-negative exponents a Family's
// orientation base produces (2 or 3).
func intPow(base, exp int) int {
	r := 1
	for i := 0; i < exp; i++ {
		r *= base
	}
	return r
}

// Build constructs a move table for family over the given kind and
// generator list.
//
// For the combined corner/edge kinds it iterates every coordinate once; for
// each unfilled (coord, generator) cell it decodes the coordinate to a
// slot/orientation array, applies the generator slot-by-slot, re-encodes the
// result, and fills both that cell and its involutive-pair mirror
// (MT[j*G+inv_g]=i) in the same pass, halving the work. The split kinds use
// the same involutive-pair fill but their own decode/transition/encode.
func Build(fam coord.Family, kind Kind, gens []cube.Generator) Table {
	g := len(gens)
	size := sizeFor(fam, kind)

	data := make([]int32, size*g)
	for i := range data {
		data[i] = unfilled
	}

	inv := inverseIndex(gens)

	switch kind {
	case KindCornerOrient:
		buildCornerOrient(data, fam, gens, inv, size, g)
	case KindCornerPerm:
		buildPerm(data, fam, gens, inv, size, g)
	default:
		buildCombined(data, fam, kind, gens, inv, size, g)
	}

	return Table{Family: fam, Kind: kind, Generators: gens, Data: data}
}

// buildCombined is the original Build body for the joint permutation+
// orientation coordinate (KindCorner/KindEdge).
func buildCombined(data []int32, fam coord.Family, kind Kind, gens []cube.Generator, inv []int, size, g int) {
	n, c, pn := fam.N, fam.C, fam.PN
	a := make([]int, n)
	b := make([]int, n)

	for i := 0; i < size; i++ {
		coord.IndexToArray(a, i, n, c, pn)
		for gi, gen := range gens {
			row := i*g + gi
			if data[row] != unfilled {
				continue
			}
			for k := 0; k < n; k++ {
				slot := a[k] / c
				orient := int8(a[k] % c)
				var newSlot int
				var newOrient int8
				switch kind {
				case KindCorner:
					newSlot, newOrient = cube.ApplyCornerSlot(gen.Move, slot, orient)
				default:
					newSlot, newOrient = cube.ApplyEdgeSlot(gen.Move, slot, orient)
				}
				b[k] = newSlot*c + int(newOrient)
			}
			j := coord.ArrayToIndex(b, n, c, pn)
			data[row] = int32(j)
			if ig := inv[gi]; ig >= 0 {
				data[j*g+ig] = int32(i)
			}
		}
	}
}

// buildPerm tracks only which slot each of fam.N corner identities
// currently occupies, discarding the orientation ApplyCornerSlot also
// returns. fam.C must be 1 so coord.ArrayToIndex/IndexToArray degenerate to
// a pure factorial-base permutation coordinate.
func buildPerm(data []int32, fam coord.Family, gens []cube.Generator, inv []int, size, g int) {
	n, pn := fam.N, fam.PN
	a := make([]int, n)
	b := make([]int, n)

	for i := 0; i < size; i++ {
		coord.IndexToArray(a, i, n, 1, pn)
		for gi, gen := range gens {
			row := i*g + gi
			if data[row] != unfilled {
				continue
			}
			for k := 0; k < n; k++ {
				newSlot, _ := cube.ApplyCornerSlot(gen.Move, a[k], 0)
				b[k] = newSlot
			}
			j := coord.ArrayToIndex(b, n, 1, pn)
			data[row] = int32(j)
			if ig := inv[gi]; ig >= 0 {
				data[j*g+ig] = int32(i)
			}
		}
	}
}

// buildCornerOrient tracks the full 8-entry corner orientation vector
// directly (coord.OToIndex/IndexToO, dropping the parity-determined last
// entry), following cube.Compose's r.CO[i] = (s.CO[m.CP[i]] + m.CO[i]) % 3:
// orientation transition only depends on the generator's own permutation,
// not on which cubie sits where, so it never needs a cubie identity.
func buildCornerOrient(data []int32, fam coord.Family, gens []cube.Generator, inv []int, size, g int) {
	pn, c := fam.PN, fam.C
	o := make([]int, pn)
	o2 := make([]int, pn)

	for i := 0; i < size; i++ {
		coord.IndexToO(o, i, c, pn)
		for gi, gen := range gens {
			row := i*g + gi
			if data[row] != unfilled {
				continue
			}
			for k := 0; k < pn; k++ {
				src := int(gen.Move.CP[k])
				o2[k] = (o[src] + int(gen.Move.CO[k])) % c
			}
			j := coord.OToIndex(o2, c, pn)
			data[row] = int32(j)
			if ig := inv[gi]; ig >= 0 {
				data[j*g+ig] = int32(i)
			}
		}
	}
}

// Apply projects a single coordinate through one generator directly from
// the cube algebra, without consulting (or requiring) a built Table. Move
// tables only have columns for their own enabled generator set; projecting
// a scramble or post-algorithm onto the start coordinate may need a
// generator outside that set, so search uses this instead of Table.Lookup
// for that one-off projection.
func Apply(fam coord.Family, kind Kind, coordIdx int, gen cube.Generator) int {
	switch kind {
	case KindCornerOrient:
		pn, c := fam.PN, fam.C
		o := make([]int, pn)
		o2 := make([]int, pn)
		coord.IndexToO(o, coordIdx, c, pn)
		for k := 0; k < pn; k++ {
			o2[k] = (o[int(gen.Move.CP[k])] + int(gen.Move.CO[k])) % c
		}
		return coord.OToIndex(o2, c, pn)
	case KindCornerPerm:
		n, pn := fam.N, fam.PN
		a := make([]int, n)
		coord.IndexToArray(a, coordIdx, n, 1, pn)
		b := make([]int, n)
		for k := 0; k < n; k++ {
			newSlot, _ := cube.ApplyCornerSlot(gen.Move, a[k], 0)
			b[k] = newSlot
		}
		return coord.ArrayToIndex(b, n, 1, pn)
	default:
		n, c, pn := fam.N, fam.C, fam.PN
		a := make([]int, n)
		coord.IndexToArray(a, coordIdx, n, c, pn)
		b := make([]int, n)
		for k := 0; k < n; k++ {
			slot := a[k] / c
			orient := int8(a[k] % c)
			var newSlot int
			var newOrient int8
			switch kind {
			case KindCorner:
				newSlot, newOrient = cube.ApplyCornerSlot(gen.Move, slot, orient)
			default:
				newSlot, newOrient = cube.ApplyEdgeSlot(gen.Move, slot, orient)
			}
			b[k] = newSlot*c + int(newOrient)
		}
		return coord.ArrayToIndex(b, n, c, pn)
	}
}

// inverseIndex returns, for each generator index, the index of its inverse
// within the same list, or -1 if the list doesn't contain it (a restricted
// generator set need not be closed under inversion).
func inverseIndex(gens []cube.Generator) []int {
	inv := make([]int, len(gens))
	for i, gi := range gens {
		want := cube.Invert(gi.Move)
		inv[i] = -1
		for j, gj := range gens {
			if gj.Move == want {
				inv[i] = j
				break
			}
		}
	}
	return inv
}
