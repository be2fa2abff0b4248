package prune

import (
	"testing"

	"github.com/hailam/cubesolve/internal/coord"
	"github.com/hailam/cubesolve/internal/cube"
	"github.com/hailam/cubesolve/internal/movetable"
)

func genIdx(gens []cube.Generator, names ...string) []int {
	idx := map[string]int{}
	for i, g := range gens {
		idx[g.Name] = i
	}
	out := make([]int, 0, len(names))
	for _, n := range names {
		out = append(out, idx[n])
	}
	return out
}

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

// TestDenseBFSReachesSolvedAtDepthZero checks the seed coordinate is at
// depth 0 and that Bound never exceeds the build depth for any reachable
// state, using a single tracked edge under the U-face generators (the
// reachable space is 4 positions, radius <= 1).
func TestDenseBFSReachesSolvedAtDepthZero(t *testing.T) {
	fam := coord.Family{Name: "single-edge", N: 1, C: 2, PN: 12}
	names := []string{"U", "U2", "U'"}
	gens := genSubset(names...)
	tbl := movetable.Build(fam, movetable.KindEdge, gens)

	seed := []int{0}
	dense := BuildDense([]movetable.Table{tbl}, []int{0, 1, 2}, [][]int{seed}, 4)

	if dense.Bound(seed) != 0 {
		t.Fatalf("seed bound = %d, want 0", dense.Bound(seed))
	}
	// The reachable coordinates are the four U-layer slots, unflipped
	// (coordinate slot*2 for a single tracked edge).
	for _, slot := range []cube.Edge{cube.UR, cube.UF, cube.UL, cube.UB} {
		i := int(slot) * 2
		b := dense.Bound([]int{i})
		if b == Unreached {
			t.Errorf("coordinate %d left unreached", i)
		}
		if b > 4 {
			t.Errorf("coordinate %d bound %d exceeds build depth", i, b)
		}
	}
}

// TestDenseBFSMonotonicFromSeed checks that every coordinate one U-move
// away from the seed has bound <= 1.
func TestDenseBFSMonotonicFromSeed(t *testing.T) {
	fam := coord.Family{Name: "single-edge", N: 1, C: 2, PN: 12}
	gens := genSubset("U", "U2", "U'")
	tbl := movetable.Build(fam, movetable.KindEdge, gens)

	seed := []int{0}
	dense := BuildDense([]movetable.Table{tbl}, []int{0, 1, 2}, [][]int{seed}, 4)

	for g := 0; g < 3; g++ {
		successor := tbl.Lookup(seed[0], g)
		if b := dense.Bound([]int{successor}); b > 1 {
			t.Errorf("one move from seed (gen %d) has bound %d, want <= 1", g, b)
		}
	}
}

// TestSparseBFSDepthsAreConsistent checks that every coordinate recorded
// at depth d >= 1 is reachable in one generator application from some
// coordinate recorded at depth d-1, and that no coordinate appears at two
// depths.
func TestSparseBFSDepthsAreConsistent(t *testing.T) {
	fam := coord.Family{Name: "partial-corners3", N: 3, C: 3, PN: 8}
	names := []string{"U", "U2", "U'", "R", "R2", "R'"}
	gens := genSubset(names...)
	tbl := movetable.Build(fam, movetable.KindCorner, gens)
	gi := genIdx(gens, names...)

	seed := []int{0, 0, 0}
	db := BuildSparse([]movetable.Table{tbl}, gi, [][]int{seed}, 3, SparseConfig{
		MemoryBudgetBytes: 1 << 24,
	})

	seen := map[uint64]int{}
	for d, layer := range db.IndexPairs {
		for _, idx := range layer {
			if prevD, ok := seen[idx]; ok {
				t.Fatalf("coordinate %d recorded at both depth %d and %d", idx, prevD, d)
			}
			seen[idx] = d
		}
	}

	decoded := make([]int, 1)
	for d := 1; d < len(db.IndexPairs); d++ {
		for _, idx := range db.IndexPairs[d] {
			found := false
			for _, prevIdx := range db.IndexPairs[d-1] {
				db.Coder.Decode(prevIdx, decoded)
				for _, g := range gi {
					if uint64(tbl.Lookup(decoded[0], g)) == idx {
						found = true
						break
					}
				}
				if found {
					break
				}
			}
			if !found {
				t.Errorf("depth %d coordinate %d has no predecessor at depth %d", d, idx, d-1)
			}
		}
	}
}

// TestSparseBFSStopsWithinTinyBudget checks that an unreasonably small
// memory budget latches ExpansionStopped rather than growing unbounded.
func TestSparseBFSStopsWithinTinyBudget(t *testing.T) {
	fam := coord.Family{Name: "partial-corners3", N: 3, C: 3, PN: 8}
	names := []string{"U", "U2", "U'", "R", "R2", "R'", "F", "F2", "F'"}
	gens := genSubset(names...)
	tbl := movetable.Build(fam, movetable.KindCorner, gens)
	gi := genIdx(gens, names...)

	seed := []int{0, 0, 0}
	db := BuildSparse([]movetable.Table{tbl}, gi, [][]int{seed}, 20, SparseConfig{
		MemoryBudgetBytes: 1024,
	})
	if !db.ExpansionStopped {
		t.Errorf("expected expansion to stop under a 1KB budget")
	}
}
