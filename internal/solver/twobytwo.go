package solver

import (
	"github.com/hailam/cubesolve/internal/cache"
	"github.com/hailam/cubesolve/internal/coord"
	"github.com/hailam/cubesolve/internal/cube"
	"github.com/hailam/cubesolve/internal/movetable"
	"github.com/hailam/cubesolve/internal/notation"
	"github.com/hailam/cubesolve/internal/prune"
	"github.com/hailam/cubesolve/internal/search"
)

// twoByTwoPruneDepth is the dense flood-fill depth for the 2x2 corner
// state: cp (40320) times co (2187) is small enough for a byte-per-state
// table, the scenario spec.md names the dense-prune-builder for explicitly.
const twoByTwoPruneDepth = 11

// twoByTwoTables builds the cp/co move tables and solved coordinates every
// 2x2 flavor shares; the dense pruning table is built separately so
// PersistentTwoByTwo can substitute a cached one in its place.
//
// cp and co are tracked as two independent coordinates, not one merged
// family: a single Family{N:8,C:3,PN:8} packs fallingFactorial(8,8)*3^8 =
// 264,539,520 states into its move table, where the original 2x2 solver
// keeps cp (40320 permutations) and co (2187 orientations, parity-reduced)
// as separate, much smaller tables.
func twoByTwoTables() (cp, co movetable.Table, gens []cube.Generator, cpSolved, coSolved int) {
	gens = faceGenerators()

	cpFam := coord.Family{Name: "2x2-cp", N: 8, C: 1, PN: 8}
	cp = movetable.Build(cpFam, movetable.KindCornerPerm, gens)
	cpSolved = coord.ArrayToIndex(coord.IdentityArray(sequentialIdx(8), 1), 8, 1, 8)

	coFam := coord.Family{Name: "2x2-co", N: 8, C: 3, PN: 8}
	co = movetable.Build(coFam, movetable.KindCornerOrient, gens)
	coSolved = coord.OToIndex(make([]int, 8), 3, 8)

	return cp, co, gens, cpSolved, coSolved
}

func twoByTwoConfig(cp, co movetable.Table, gens []cube.Generator, cpSolved, coSolved int, dense prune.Dense) search.Config {
	return search.Config{
		Tables:       []movetable.Table{cp, co},
		Generators:   gens,
		SolvedCoords: []int{cpSolved, coSolved},
		Heuristics:   []search.HeuristicBinding{{H: dense, Slots: []int{0, 1}}},
		Goal:         func(c []int) bool { return c[0] == cpSolved && c[1] == coSolved },
		MA2:          notation.DefaultMA2(gens),
		MC:           notation.DefaultMC(gens, nil),
	}
}

// TwoByTwo solves a 2x2x2 cube: corner permutation and orientation only
// (centers and edges don't exist on a 2x2x2, so nothing else is tracked).
func TwoByTwo() Spec {
	cp, co, gens, cpSolved, coSolved := twoByTwoTables()
	genIdx := sequentialIdx(len(gens))
	dense := prune.BuildDense([]movetable.Table{cp, co}, genIdx, [][]int{{cpSolved, coSolved}}, twoByTwoPruneDepth)
	return Spec{Name: "2x2", Config: twoByTwoConfig(cp, co, gens, cpSolved, coSolved, dense)}
}

// PersistentTwoByTwo wraps TwoByTwo with cache.Store-backed dense-table
// reuse: once the cp/co pruning table has been built for this generator
// set, subsequent StartSearch calls can reuse it from the store instead of
// rebuilding it.
//
// Matches the resolved Open Question on PersistentSolver2x2's scope: reuse
// happens only when the caller asks for it (StartSearch's reuse
// parameter); every other call rebuilds and re-caches, the same
// "single-use unless told otherwise" contract the non-persistent path
// assumes implicitly.
type PersistentTwoByTwo struct {
	store *cache.Store
	sig   cache.Signature

	cp, co   movetable.Table
	gens     []cube.Generator
	cpSolved int
	coSolved int
	spec     Spec
}

// NewPersistentTwoByTwo wraps store for table reuse. Callers own store's
// lifetime (cache.Open/Close); PersistentTwoByTwo never closes it.
func NewPersistentTwoByTwo(store *cache.Store) *PersistentTwoByTwo {
	cp, co, gens, cpSolved, coSolved := twoByTwoTables()
	sig := cache.Signature{
		Family:         cp.Family.Name + "+" + co.Family.Name,
		MoveRestrictID: moveRestrictID(gens),
		PruneDepth:     twoByTwoPruneDepth,
	}
	genIdx := sequentialIdx(len(gens))
	dense := prune.BuildDense([]movetable.Table{cp, co}, genIdx, [][]int{{cpSolved, coSolved}}, twoByTwoPruneDepth)
	_ = store.StoreDense(sig, dense)

	return &PersistentTwoByTwo{
		store: store, sig: sig,
		cp: cp, co: co, gens: gens, cpSolved: cpSolved, coSolved: coSolved,
		spec: Spec{Name: "2x2-persistent", Config: twoByTwoConfig(cp, co, gens, cpSolved, coSolved, dense)},
	}
}

// StartSearch runs one solve. When reuse is true, the cached table is
// loaded in place of rebuilding; when false, the table is rebuilt from
// scratch and the store is refreshed, per PersistentSolver2x2's contract.
func (p *PersistentTwoByTwo) StartSearch(opts search.Options, reuse bool) {
	if reuse {
		if d, found, err := p.store.LoadDense(p.sig); err == nil && found {
			p.spec.Config = twoByTwoConfig(p.cp, p.co, p.gens, p.cpSolved, p.coSolved, d)
		}
	} else {
		genIdx := sequentialIdx(len(p.gens))
		dense := prune.BuildDense([]movetable.Table{p.cp, p.co}, genIdx, [][]int{{p.cpSolved, p.coSolved}}, twoByTwoPruneDepth)
		p.spec.Config = twoByTwoConfig(p.cp, p.co, p.gens, p.cpSolved, p.coSolved, dense)
		_ = p.store.StoreDense(p.sig, dense)
	}
	p.spec.StartSearch(opts)
}

// Analyze reports 2x2 solve progress without searching.
func (p *PersistentTwoByTwo) Analyze(scramble, rotation, postAlg []string) (bound int, solved bool) {
	return p.spec.Analyze(scramble, rotation, postAlg)
}
