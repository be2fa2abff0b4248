package solver

import (
	"github.com/hailam/cubesolve/internal/cube"
)

// verticalAxisClasses returns the 4 rotation classes reachable by chaining
// the "y" generator from identity: the whole-cube reorientations a
// pseudo-cross trainer accepts as equivalent to a solved cross, per
// spec.md's "four rotations around the vertical axis" goal-seeding
// language (§4.4).
func verticalAxisClasses(rt cube.RotationTable, dict map[string]cube.Generator) map[int]bool {
	classes := map[int]bool{}
	class := 0
	y := dict["y"]
	for i := 0; i < 4; i++ {
		classes[class] = true
		class = cube.ClassTransition(rt, class, y.Move)
	}
	return classes
}

// PseudoCross accepts a cross solved up to a whole-cube rotation around
// the vertical axis as a goal: the underlying coordinate family and
// pruning table are identical to Cross, but the search is rotation-aware
// (at most one mid-search "y"-axis rotation) and a solution is accepted in
// any of the 4 "y"-equivalent ending orientations.
func PseudoCross() Spec {
	base := Cross()
	dict := generatorDict()
	rt := cube.BuildRotationTable(cube.Dictionary())

	cfg := base.Config
	cfg.Rotations = rt
	cfg.MaxRotCount = 1
	cfg.CenterOffsets = verticalAxisClasses(rt, dict)
	return Spec{Name: "pseudo-cross", Config: cfg}
}
