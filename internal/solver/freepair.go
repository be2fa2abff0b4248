package solver

import (
	"github.com/hailam/cubesolve/internal/coord"
	"github.com/hailam/cubesolve/internal/movetable"
	"github.com/hailam/cubesolve/internal/notation"
	"github.com/hailam/cubesolve/internal/prune"
	"github.com/hailam/cubesolve/internal/search"
)

// freePairAlgs are the four canonical pair-insertion algorithms spec.md
// names for the free-pair trainer, each joining the FL corner-edge pair
// into its solved relative orientation without inserting it into a slot.
var freePairAlgs = [][]string{
	{"L", "U", "L'"},
	{"L", "U'", "L'"},
	{"B'", "U", "B"},
	{"B'", "U'", "B"},
}

// freePairAUFs are the four AUFs each pair-insertion algorithm is composed
// with when seeding the pattern database.
var freePairAUFs = [][]string{{}, {"U"}, {"U2"}, {"U'"}}

// CrossFreePair tracks a solved bottom cross plus one free corner-edge
// pair (the FL slot's corner and edge joined, not necessarily inserted).
// The pattern database is seeded with 17 depth-0 states per spec.md
// §4.7: the nominal solved state, plus each of the four pair-insertion
// algorithms composed with each of the four AUFs. Those algorithms only
// touch F2L slots, so every seed shares the same cross-edge coordinate;
// only the (corner, edge) coordinate pair varies across seeds.
func CrossFreePair() Spec {
	gens := faceGenerators()
	dict := generatorDict()

	crossSlots := make([]int, len(crossEdges))
	for i, e := range crossEdges {
		crossSlots[i] = int(e)
	}
	crossFam := coord.Family{Name: "free-pair-cross", N: len(crossSlots), C: 2, PN: 12}
	crossTbl := movetable.Build(crossFam, movetable.KindEdge, gens)
	crossSolved := coord.ArrayToIndex(coord.IdentityArray(crossSlots, 2), len(crossSlots), 2, 12)

	cornerFam := coord.Family{Name: "free-pair-corner", N: 1, C: 3, PN: 8}
	edgeFam := coord.Family{Name: "free-pair-edge", N: 1, C: 2, PN: 12}
	cornerTbl := movetable.Build(cornerFam, movetable.KindCorner, gens)
	edgeTbl := movetable.Build(edgeFam, movetable.KindEdge, gens)

	cornerSolved := coord.ArrayToIndex(coord.IdentityArray([]int{int(f2lCorner[SlotFL])}, 3), 1, 3, 8)
	edgeSolved := coord.ArrayToIndex(coord.IdentityArray([]int{int(f2lEdge[SlotFL])}, 2), 1, 2, 12)

	type seed struct{ corner, edge int }
	seeds := []seed{{cornerSolved, edgeSolved}}
	for _, alg := range freePairAlgs {
		for _, auf := range freePairAUFs {
			c, e := cornerSolved, edgeSolved
			for _, tok := range append(append([]string{}, auf...), alg...) {
				g, ok := dict[tok]
				if !ok {
					continue
				}
				c = movetable.Apply(cornerFam, movetable.KindCorner, c, g)
				e = movetable.Apply(edgeFam, movetable.KindEdge, e, g)
			}
			seeds = append(seeds, seed{corner: c, edge: e})
		}
	}

	// The cross-edge coordinate is not advanced by the seeding (per
	// §4.7): every seed's first coordinate is the fixed solved cross.
	seedCoords := make([][]int, len(seeds))
	goalSet := make(map[[2]int]bool, len(seeds))
	for i, s := range seeds {
		seedCoords[i] = []int{crossSolved, s.corner, s.edge}
		goalSet[[2]int{s.corner, s.edge}] = true
	}

	tables := []movetable.Table{crossTbl, cornerTbl, edgeTbl}
	genIdx := sequentialIdx(len(gens))
	dense := prune.BuildDense(tables, genIdx, seedCoords, 8)

	cfg := search.Config{
		Tables:       tables,
		Generators:   gens,
		SolvedCoords: []int{crossSolved, cornerSolved, edgeSolved},
		Heuristics:   []search.HeuristicBinding{{H: dense, Slots: []int{0, 1, 2}}},
		Goal: func(c []int) bool {
			return c[0] == crossSolved && goalSet[[2]int{c[1], c[2]}]
		},
		MA2: notation.DefaultMA2(gens),
		MC:  notation.DefaultMC(gens, nil),
	}
	return Spec{Name: "cross-free-pair", Config: cfg}
}
