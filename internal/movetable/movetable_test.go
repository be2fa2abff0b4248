package movetable

import (
	"testing"

	"github.com/hailam/cubesolve/internal/coord"
	"github.com/hailam/cubesolve/internal/cube"
)

func genSubset(names ...string) []cube.Generator {
	byName := map[string]cube.Generator{}
	for _, g := range cube.Dictionary() {
		byName[g.Name] = g
	}
	out := make([]cube.Generator, 0, len(names))
	for _, n := range names {
		out = append(out, byName[n])
	}
	return out
}

// TestInvolutivePairFill checks MT[MT[i*G+g]*G+inv_g] == i for every
// coordinate and every generator that has an inverse in the list, over a
// single tracked edge (n=1, c=2, pn=12) and the U- and R-face generators.
func TestInvolutivePairFill(t *testing.T) {
	fam := coord.Family{Name: "single-edge", N: 1, C: 2, PN: 12}
	gens := genSubset("U", "U2", "U'", "R", "R2", "R'")
	tbl := Build(fam, KindEdge, gens)

	inv := inverseIndex(gens)
	size := fam.Size()
	for i := 0; i < size; i++ {
		for gi := range gens {
			ig := inv[gi]
			if ig < 0 {
				continue
			}
			j := tbl.Lookup(i, gi)
			back := tbl.Lookup(j, ig)
			if back != i {
				t.Fatalf("coord %d gen %s: MT[MT[i,g],inv_g] = %d, want %d", i, gens[gi].Name, back, i)
			}
		}
	}
}

// TestNoUnfilledCells checks every cell of a small table got written,
// since the generator set given is closed under composition from any
// reachable coordinate.
func TestNoUnfilledCells(t *testing.T) {
	fam := coord.Family{Name: "partial-corners3", N: 3, C: 3, PN: 8}
	gens := genSubset("U", "U2", "U'", "D", "D2", "D'", "R", "R2", "R'", "L", "L2", "L'", "F", "F2", "F'", "B", "B2", "B'")
	tbl := Build(fam, KindCorner, gens)

	for i, v := range tbl.Data {
		if v == unfilled {
			t.Fatalf("cell %d left unfilled", i)
		}
	}
}

// TestMoveThenInverseReturnsStart checks that applying U and then U'
// through the table returns every coordinate to where it started.
func TestMoveThenInverseReturnsStart(t *testing.T) {
	fam := coord.Family{Name: "single-edge", N: 1, C: 2, PN: 12}
	gens := genSubset("U", "U'")
	tbl := Build(fam, KindEdge, gens)

	for i := 0; i < fam.Size(); i++ {
		j := tbl.Lookup(i, 0)
		back := tbl.Lookup(j, 1)
		if back != i {
			t.Errorf("coord %d: U then U' landed on %d, want %d", i, back, i)
		}
	}
}
