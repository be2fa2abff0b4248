// Package solver provides the concrete solver flavors named in the
// catalogue (cross, X-cross family, F2L, last layer with and without AUF,
// 2x2, plus pseudo- and free-pair variants), each a thin parameterization
// of internal/search's generic engine. Mirrors engine.Engine's "one
// orchestrator, many configurations" shape: a Spec only carries what
// distinguishes one flavor from another (tracked coordinate families, goal
// predicate, seed states), everything else is the shared IDA* machinery.
package solver

import (
	"strings"

	"github.com/hailam/cubesolve/internal/cube"
	"github.com/hailam/cubesolve/internal/search"
)

// Spec is one named solver flavor: a fully built search.Config plus the
// label it's known by.
type Spec struct {
	Name   string
	Config search.Config
}

// StartSearch runs a full solve, emitting every found solution through
// opts.Update.
func (s Spec) StartSearch(opts search.Options) {
	s.Config.StartSearch(opts)
}

// Analyze reports how much progress a scramble already represents against
// this flavor's goal, without running a search. Grounded in
// original_source's pairAnalyzer/pseudoPairAnalyzer/xxcrossTrainer: "report
// progress, don't search."
func (s Spec) Analyze(scramble, rotation, postAlg []string) (bound int, solved bool) {
	return s.Config.Analyze(scramble, rotation, postAlg)
}

// faceGenerators returns the 18-move single-layer alphabet (U/D/L/R/F/B,
// each in quarter/half/counter-quarter form) common to every solver flavor
// below. Wide and slice moves exist in cube.Dictionary but no named
// trainer in the catalogue restricts to them, so they're left unused here
// rather than wired without a caller.
func faceGenerators() []cube.Generator {
	dict := cube.Dictionary()
	byName := make(map[string]cube.Generator, len(dict))
	for _, g := range dict {
		byName[g.Name] = g
	}
	var out []cube.Generator
	for _, base := range []string{"U", "D", "L", "R", "F", "B"} {
		out = append(out, byName[base], byName[base+"2"], byName[base+"'"])
	}
	return out
}

func generatorDict() map[string]cube.Generator {
	dict := cube.Dictionary()
	byName := make(map[string]cube.Generator, len(dict))
	for _, g := range dict {
		byName[g.Name] = g
	}
	return byName
}

func sequentialIdx(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

// moveRestrictID renders gens as the underscore-separated, "'"->"-"
// escaped grammar notation.ParseMoveRestrictID parses, so a built Spec's
// generator set can be used as a cache.Signature key.
func moveRestrictID(gens []cube.Generator) string {
	names := make([]string, len(gens))
	for i, g := range gens {
		names[i] = strings.ReplaceAll(g.Name, "'", "-")
	}
	return strings.Join(names, "_")
}
