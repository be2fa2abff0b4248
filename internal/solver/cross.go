package solver

import (
	"fmt"

	"github.com/hailam/cubesolve/internal/coord"
	"github.com/hailam/cubesolve/internal/cube"
	"github.com/hailam/cubesolve/internal/movetable"
	"github.com/hailam/cubesolve/internal/notation"
	"github.com/hailam/cubesolve/internal/prune"
	"github.com/hailam/cubesolve/internal/search"
)

// F2LSlot names one of the four first-two-layers corner/edge pair
// positions, each identified by the front/back-left/right quadrant it
// occupies in the D layer.
type F2LSlot int

const (
	SlotFL F2LSlot = iota
	SlotFR
	SlotBL
	SlotBR
)

// f2lCorner and f2lEdge give each slot's home cubie: the pair is solved
// when that corner sits in its own slot and that edge sits in its own
// slot, both unflipped.
var f2lCorner = map[F2LSlot]cube.Corner{
	SlotFL: cube.DLF,
	SlotFR: cube.DFR,
	SlotBL: cube.DLB,
	SlotBR: cube.DRB,
}

var f2lEdge = map[F2LSlot]cube.Edge{
	SlotFL: cube.FL,
	SlotFR: cube.FR,
	SlotBL: cube.BL,
	SlotBR: cube.BR,
}

// crossEdges is the four D-layer edges the bottom cross tracks, in a fixed
// order shared by every flavor below.
var crossEdges = []cube.Edge{cube.DR, cube.DF, cube.DL, cube.DB}

// pairCrossMemoryBudgetBytes is the sparse-BFS live-set ceiling used once a
// flavor tracks enough F2L pairs that a dense pattern database no longer
// fits.
const pairCrossMemoryBudgetBytes = 256 << 20

// nPairCross builds the cross-plus-n-F2L-pairs family named name: the four
// cross edges stay their own Family{N:4,C:2,PN:12} coordinate (190,080
// states, matching spec.md's own partial_edges4 example), and each pair in
// pairs adds its own single-corner and single-edge coordinate (size 24
// each) rather than folding the pair's edge into the cross edge family.
// Merging them would grow the edge family to N up to 8 (12P8*2^8≈5.1e9
// coordinates for F2L, a ≈367GB move table); keeping every pair's pieces on
// their own small family keeps every move table tiny regardless of how
// many pairs are tracked.
//
// n == 0 is plain cross; n == 4 (all slots) is a complete F2L. A dense
// pattern database covers the joint coordinate as long as there's at most
// one pair (matching spec.md §4.4's own ~109M-state X-cross example); with
// two or more pairs the joint space grows past what's feasible to allocate
// as one flat array, so the pattern database switches to the
// memory-budgeted sparse BFS spec.md §4.5 assigns to these larger
// trainers.
func nPairCross(name string, pairs []F2LSlot) Spec {
	gens := faceGenerators()

	crossSlots := make([]int, len(crossEdges))
	for i, e := range crossEdges {
		crossSlots[i] = int(e)
	}
	crossFam := coord.Family{Name: name + "-cross", N: len(crossSlots), C: 2, PN: 12}
	crossTbl := movetable.Build(crossFam, movetable.KindEdge, gens)
	crossSolved := coord.ArrayToIndex(coord.IdentityArray(crossSlots, 2), len(crossSlots), 2, 12)

	tables := []movetable.Table{crossTbl}
	solvedCoords := []int{crossSolved}

	for i, p := range pairs {
		cornerFam := coord.Family{Name: fmt.Sprintf("%s-corner%d", name, i), N: 1, C: 3, PN: 8}
		cornerTbl := movetable.Build(cornerFam, movetable.KindCorner, gens)
		cornerSolved := coord.ArrayToIndex(coord.IdentityArray([]int{int(f2lCorner[p])}, 3), 1, 3, 8)
		tables = append(tables, cornerTbl)
		solvedCoords = append(solvedCoords, cornerSolved)

		edgeFam := coord.Family{Name: fmt.Sprintf("%s-edge%d", name, i), N: 1, C: 2, PN: 12}
		edgeTbl := movetable.Build(edgeFam, movetable.KindEdge, gens)
		edgeSolved := coord.ArrayToIndex(coord.IdentityArray([]int{int(f2lEdge[p])}, 2), 1, 2, 12)
		tables = append(tables, edgeTbl)
		solvedCoords = append(solvedCoords, edgeSolved)
	}

	goal := func(c []int) bool {
		for i, v := range c {
			if v != solvedCoords[i] {
				return false
			}
		}
		return true
	}

	genIdx := sequentialIdx(len(gens))
	depth := 7 + len(pairs)
	seeds := [][]int{append([]int{}, solvedCoords...)}

	var heuristic prune.Heuristic
	if len(pairs) <= 1 {
		heuristic = prune.BuildDense(tables, genIdx, seeds, depth)
	} else {
		heuristic = prune.BuildSparse(tables, genIdx, seeds, depth, prune.SparseConfig{MemoryBudgetBytes: pairCrossMemoryBudgetBytes})
	}

	cfg := search.Config{
		Tables:       tables,
		Generators:   gens,
		SolvedCoords: solvedCoords,
		Heuristics:   []search.HeuristicBinding{{H: heuristic, Slots: sequentialIdx(len(tables))}},
		Goal:         goal,
		MA2:          notation.DefaultMA2(gens),
		MC:           notation.DefaultMC(gens, nil),
	}
	return Spec{Name: name, Config: cfg}
}

// Cross solves the bottom four edges only.
func Cross() Spec { return nPairCross("cross", nil) }

// XCross solves the cross plus one F2L pair.
func XCross(slot F2LSlot) Spec { return nPairCross("x-cross", []F2LSlot{slot}) }

// XXCross solves the cross plus two F2L pairs.
func XXCross(a, b F2LSlot) Spec { return nPairCross("xx-cross", []F2LSlot{a, b}) }

// XXXCross solves the cross plus three F2L pairs.
func XXXCross(a, b, c F2LSlot) Spec { return nPairCross("xxx-cross", []F2LSlot{a, b, c}) }

// XXXXCross solves the cross plus all four F2L pairs, i.e. a complete F2L.
func XXXXCross(a, b, c, d F2LSlot) Spec { return nPairCross("xxxx-cross", []F2LSlot{a, b, c, d}) }

// F2L solves the complete first two layers: an alias for XXXXCross over
// every slot.
func F2L() Spec { return XXXXCross(SlotFL, SlotFR, SlotBL, SlotBR) }
