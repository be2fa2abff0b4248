// Package search implements the generic IDA* engine every concrete solver
// flavour specializes: depth-limited DFS over one or more coordinate
// families, guided by pruning heuristics, honoring MA2/MC move
// restrictions, with a canonical-path filter on emitted solutions and
// optional rotation-aware branching. Mirrors engine/search.go's negamax
// loop plus engine/engine.go's iterative-deepening driver, but stays
// single-threaded and callback-driven per the cooperative, lock-free
// concurrency model this core requires.
package search

import (
	"log"

	"github.com/hailam/cubesolve/internal/cube"
	"github.com/hailam/cubesolve/internal/movetable"
	"github.com/hailam/cubesolve/internal/notation"
	"github.com/hailam/cubesolve/internal/prune"
)

// HeuristicBinding attaches a pruning heuristic to the subset (and order)
// of the full coordinate tuple it reads. Heuristics should be listed
// strictest first: the DFS short-circuits on the first one whose bound
// fails the depth test.
type HeuristicBinding struct {
	H     prune.Heuristic
	Slots []int
}

func (b HeuristicBinding) bound(full []int) int {
	sub := make([]int, len(b.Slots))
	for i, s := range b.Slots {
		sub[i] = full[s]
	}
	return b.H.Bound(sub)
}

// Config parameterizes one solver flavour. Tables[i] advances coordinate
// slot i; all Tables must share the same enabled-generator ordering as
// Generators (table column g corresponds to Generators[g]).
type Config struct {
	Tables       []movetable.Table
	Generators   []cube.Generator
	SolvedCoords []int
	Heuristics   []HeuristicBinding
	Goal         func(coords []int) bool

	MA2 map[notation.MA2Key]bool
	MC  map[string]int

	// Rotations enables rotation-aware search when non-zero (its Classes
	// slice is non-empty). When zero, every rotation-frame lookup below is
	// a documented no-op: incoming tokens are used verbatim.
	Rotations cube.RotationTable
	// MaxRotCount caps whole-cube rotations within one accepted solution,
	// for pseudo-cross/X-cross variants. Zero disables mid-search rotation
	// branching entirely, leaving the frame fixed at whatever scramble +
	// post_alg reached.
	MaxRotCount int
	// CenterOffsets, when non-empty, restricts accepted solutions to ones
	// whose accumulated rotation class is one of these indices.
	CenterOffsets map[int]bool
}

// Options configures one StartSearch call.
type Options struct {
	Scramble []string
	Rotation []string
	PostAlg  []string
	Num      int
	Len      int
	Update   func(string)
}

// StartSearch runs the top-level schema from the component design: project
// the scramble (through any pre-rotation) and post-algorithm onto the
// solved coordinate tuple to find the DFS root, rewrite the enabled move
// list into the frame reached by that point, then iterative-deepen.
func (cfg Config) StartSearch(opts Options) {
	state, tc, aprevIdx := cfg.project(opts.Scramble, opts.Rotation, opts.PostAlg)

	nameIndex := make(map[string]int, len(cfg.Generators))
	for i, g := range cfg.Generators {
		nameIndex[g.Name] = i
	}

	hRoot := cfg.rootBound(state)

	if hRoot == 0 && cfg.Goal(state) && centerOK(cfg, tc) {
		opts.Update("Already solved.")
		return
	}
	if hRoot >= prune.Unreached {
		opts.Update("Unsolvable.")
		return
	}

	log.Printf("[ida] root bound=%d, deepening to %d", hRoot, opts.Len)

	var rotGensForBranch []cube.Generator
	if cfg.MaxRotCount > 0 {
		for _, g := range cube.Dictionary() {
			if isRotation(g) {
				rotGensForBranch = append(rotGensForBranch, g)
			}
		}
	}

	d := &dfsRun{
		cfg:        cfg,
		nameIndex:  nameIndex,
		rotGens:    rotGensForBranch,
		root:       state,
		startClass: tc,
		prefix:     append(append([]string{}, opts.Rotation...), opts.PostAlg...),
		opts:       opts,
	}
	for depth := hRoot; depth <= opts.Len; depth++ {
		d.mc = map[string]int{}
		d.sol = d.sol[:0]
		if d.run(state, depth, aprevIdx, tc, 0) {
			return
		}
	}
	opts.Update("Search finished.")
}

// project parses scramble/rotation/post_alg, rewrites each through the
// rotation frame active at the point it's read, and applies them in turn to
// the solved coordinate tuple. It returns the DFS root, the rotation class
// reached (tc in the component design), and aprev's index into
// cfg.Generators (-1 for EMPTY).
func (cfg Config) project(scramble, rotation, postAlg []string) (state []int, tc int, aprevIdx int) {
	dict := make(map[string]cube.Generator, len(cube.Dictionary()))
	for _, g := range cube.Dictionary() {
		dict[g.Name] = g
	}

	rotGens, tc := relabelTokens(rotation, 0, cfg.Rotations, dict)
	scrambleGens, tc := relabelTokens(scramble, tc, cfg.Rotations, dict)
	postGens, tc := relabelTokens(postAlg, tc, cfg.Rotations, dict)

	state = append([]int{}, cfg.SolvedCoords...)
	state = applySequence(cfg.Tables, state, rotGens)
	state = applySequence(cfg.Tables, state, scrambleGens)
	state = applySequence(cfg.Tables, state, postGens)

	// aprev is remembered only across post_alg, per the component design
	// ("apply post_alg... remember the final generator as aprev"): the
	// scramble's own last move never constrains the search's first move,
	// it stays EMPTY (prevName "") when no post_alg is given.
	aprevName := ""
	if len(postGens) > 0 {
		aprevName = postGens[len(postGens)-1].Name
	}
	aprevIdx = -1
	for i, g := range cfg.Generators {
		if g.Name == aprevName {
			aprevIdx = i
			break
		}
	}
	return state, tc, aprevIdx
}

func (cfg Config) rootBound(state []int) int {
	bound := 0
	for _, hb := range cfg.Heuristics {
		if b := hb.bound(state); b > bound {
			bound = b
		}
	}
	return bound
}

// Analyze projects scramble/rotation/post_alg onto the solved coordinate
// tuple and reports the root's heuristic bound and whether the goal
// predicate already holds there, without running any DFS. This is the
// read-only "how much progress does this scramble already represent"
// consultation mode, as opposed to StartSearch's full solve.
func (cfg Config) Analyze(scramble, rotation, postAlg []string) (bound int, solved bool) {
	state, tc, _ := cfg.project(scramble, rotation, postAlg)
	bound = cfg.rootBound(state)
	return bound, bound == 0 && cfg.Goal(state) && centerOK(cfg, tc)
}

// centerOK reports whether rotation class class is an acceptable ending
// orientation for cfg's CenterOffsets restriction (vacuously true when the
// restriction is empty, i.e. the solver flavour isn't rotation-aware).
func centerOK(cfg Config, class int) bool {
	if len(cfg.CenterOffsets) == 0 {
		return true
	}
	return cfg.CenterOffsets[class]
}

// relabelTokens walks tokens, relabeling each through rt.Reverse at the
// current rotation class (a no-op when rt carries no classes), looking it
// up in dict, and advancing the class through any rotation generators
// encountered. Unknown or malformed tokens are silently dropped per the
// tokenizer's documented error contract.
func relabelTokens(tokens []string, startClass int, rt cube.RotationTable, dict map[string]cube.Generator) ([]cube.Generator, int) {
	class := startClass
	var out []cube.Generator
	for _, tok := range tokens {
		name := tok
		if len(rt.Classes) > 0 {
			name = rt.Reverse[class][tok]
		}
		gen, ok := dict[name]
		if !ok {
			continue
		}
		out = append(out, gen)
		if len(rt.Classes) > 0 {
			class = cube.ClassTransition(rt, class, gen.Move)
		}
	}
	return out, class
}

// applySequence advances state through gens, skipping whole-cube rotation
// generators: a rotation reorients the observer, it does not move any
// cubie, so the coordinate tuple is unaffected by one.
func applySequence(tables []movetable.Table, state []int, gens []cube.Generator) []int {
	for _, g := range gens {
		if isRotation(g) {
			continue
		}
		next := make([]int, len(tables))
		for i, t := range tables {
			next[i] = movetable.Apply(t.Family, t.Kind, state[i], g)
		}
		state = next
	}
	return state
}

func isRotation(g cube.Generator) bool {
	return g.Base == "x" || g.Base == "y" || g.Base == "z"
}

func advance(tables []movetable.Table, state []int, genIdx int) []int {
	next := make([]int, len(tables))
	for i, t := range tables {
		next[i] = t.Lookup(state[i], genIdx)
	}
	return next
}

func allHeuristicsZero(cfg Config, coords []int) bool {
	for _, hb := range cfg.Heuristics {
		if hb.bound(coords) != 0 {
			return false
		}
	}
	return true
}

func equalCoords(a, b []int) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// moveStep is one entry on the DFS move stack: either a face/wide/slice
// turn that advances coordinate state, or a whole-cube rotation that only
// changes how subsequent names are resolved against the move tables.
type moveStep struct {
	name     string
	rotation bool
}

// dfsRun holds the mutable state of one iterative-deepening attempt: the
// move stack, per-move usage counters, and how many solutions have been
// emitted so far.
type dfsRun struct {
	cfg        Config
	nameIndex  map[string]int
	rotGens    []cube.Generator
	root       []int
	startClass int
	prefix     []string
	opts       Options

	sol     []moveStep
	mc      map[string]int
	emitted int
}

// phys resolves the enabled-move name (as the caller's MA2/MC configuration
// and emitted solutions know it) to the physical table column it indexes
// while the observer is oriented into rotation class class. A zero-value
// Rotations table (no rotation-aware search in play) makes this the
// identity lookup.
func (d *dfsRun) phys(name string, class int) int {
	target := name
	if len(d.cfg.Rotations.Classes) > 0 {
		target = d.cfg.Rotations.Reverse[class][name]
	}
	if j, ok := d.nameIndex[target]; ok {
		return j
	}
	return d.nameIndex[name]
}

// run is the depth-limited DFS. It returns true once Num solutions have
// been emitted, signalling every enclosing call to unwind immediately.
// class is the rotation class the observer is currently in; rotCount is
// how many mid-search rotations have been spent so far on this branch.
func (d *dfsRun) run(state []int, remaining, aprevIdx, class, rotCount int) bool {
	prevName := ""
	if aprevIdx >= 0 {
		prevName = d.cfg.Generators[aprevIdx].Name
	}

	for i, g := range d.cfg.Generators {
		if d.cfg.MA2[notation.MA2Key{Prev: prevName, Next: g.Name}] {
			continue
		}
		if d.mc[g.Name] >= d.cfg.MC[g.Name] {
			continue
		}

		next := advance(d.cfg.Tables, state, d.phys(g.Name, class))

		skip := false
		for _, hb := range d.cfg.Heuristics {
			if hb.bound(next) >= remaining {
				skip = true
				break
			}
		}
		if skip {
			continue
		}

		d.sol = append(d.sol, moveStep{name: g.Name})
		d.mc[g.Name]++

		stop := false
		if remaining == 1 {
			if d.cfg.Goal(next) && centerOK(d.cfg, class) && d.canonicalPathOK() {
				d.emit()
				d.emitted++
				stop = d.emitted >= d.opts.Num
			}
		} else {
			stop = d.run(next, remaining-1, i, class, rotCount)
		}

		d.sol = d.sol[:len(d.sol)-1]
		d.mc[g.Name]--
		if stop {
			return true
		}
	}

	if rotCount < d.cfg.MaxRotCount {
		for _, rg := range d.rotGens {
			newClass := cube.ClassTransition(d.cfg.Rotations, class, rg.Move)
			if newClass == class {
				continue
			}
			d.sol = append(d.sol, moveStep{name: rg.Name, rotation: true})

			stop := d.run(state, remaining, aprevIdx, newClass, rotCount+1)

			d.sol = d.sol[:len(d.sol)-1]
			if stop {
				return true
			}
		}
	}

	return false
}

// canonicalPathOK rejects a candidate leaf if (i) any move on the stack
// leaves the tracked coordinates unchanged, or (ii) any strict prefix of
// the move stack already satisfies the goal with a non-empty tail still to
// come.
// Rotation steps update the replay's rotation class but never count as a
// no-op face move themselves.
func (d *dfsRun) canonicalPathOK() bool {
	state := append([]int{}, d.root...)
	class := d.startClass
	for i := 0; i < len(d.sol); i++ {
		step := d.sol[i]
		if step.rotation {
			gen, ok := d.rotGenByName(step.name)
			if ok {
				class = cube.ClassTransition(d.cfg.Rotations, class, gen.Move)
			}
			continue
		}
		if allHeuristicsZero(d.cfg, state) && d.cfg.Goal(state) {
			return false
		}
		next := advance(d.cfg.Tables, state, d.phys(step.name, class))
		if equalCoords(state, next) {
			return false
		}
		state = next
	}
	return true
}

func (d *dfsRun) rotGenByName(name string) (cube.Generator, bool) {
	for _, g := range d.rotGens {
		if g.Name == name {
			return g, true
		}
	}
	return cube.Generator{}, false
}

func (d *dfsRun) emit() {
	moves := make([]string, len(d.sol))
	for i, s := range d.sol {
		moves[i] = s.name
	}
	full := append(append([]string{}, d.prefix...), moves...)
	d.opts.Update(notation.String(full))
}
