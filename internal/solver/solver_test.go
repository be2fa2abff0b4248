package solver

import (
	"testing"

	"github.com/hailam/cubesolve/internal/cache"
	"github.com/hailam/cubesolve/internal/search"
)

func TestCrossAlreadySolvedWithEmptyScramble(t *testing.T) {
	s := Cross()
	bound, solved := s.Analyze(nil, nil, nil)
	if !solved || bound != 0 {
		t.Fatalf("Analyze(no scramble) = (%d, %v), want (0, true)", bound, solved)
	}

	var updates []string
	s.StartSearch(opts(nil, 1, 3, &updates))
	if len(updates) != 1 || updates[0] != "Already solved." {
		t.Fatalf("updates = %v, want [\"Already solved.\"]", updates)
	}
}

func TestCrossFindsOneMoveSolution(t *testing.T) {
	s := Cross()
	var updates []string
	s.StartSearch(opts([]string{"R"}, 1, 1, &updates))
	if len(updates) != 1 || updates[0] != "R'" {
		t.Fatalf("updates = %v, want [\"R'\"]", updates)
	}
}

func TestCrossAnalyzeMatchesScrambleDepth(t *testing.T) {
	s := Cross()
	bound, solved := s.Analyze([]string{"R"}, nil, nil)
	if solved {
		t.Fatalf("Analyze(scrambled by R) reported solved")
	}
	if bound != 1 {
		t.Fatalf("bound = %d, want 1", bound)
	}
}

func TestXCrossGoalRequiresPairSolved(t *testing.T) {
	s := XCross(SlotFL)
	// The XCross coordinate tuple is (cross edges, FL corner, FL edge); the
	// SolvedCoords tuple is definitionally a goal state, and moving the FL
	// corner off its solved coordinate must break the goal.
	if !s.Config.Goal(s.Config.SolvedCoords) {
		t.Fatalf("XCross's own solved-coordinate tuple is not a goal")
	}
	unsolved := append([]int{}, s.Config.SolvedCoords...)
	unsolved[1] = (unsolved[1] + 1) % 24
	if s.Config.Goal(unsolved) {
		t.Fatalf("XCross accepts a tuple whose FL corner is not solved")
	}
}

func TestF2LIsAllFourSlots(t *testing.T) {
	full := F2L()
	allSlots := XXXXCross(SlotFL, SlotFR, SlotBL, SlotBR)
	if len(full.Config.Tables) != len(allSlots.Config.Tables) {
		t.Fatalf("F2L() and XXXXCross(all slots) disagree on tracked table count: %d vs %d",
			len(full.Config.Tables), len(allSlots.Config.Tables))
	}
}

func TestLLGoalHoldsAtSolvedCoords(t *testing.T) {
	s := LL()
	if !s.Config.Goal(s.Config.SolvedCoords) {
		t.Fatalf("LL's own solved-coordinate tuple is not a goal")
	}
}

func TestLLAUFAcceptsAnyAUFRotation(t *testing.T) {
	s := LLAUF()
	bound, solved := s.Analyze([]string{"U"}, nil, nil)
	if !solved {
		t.Fatalf("LLAUF should treat a solved-but-for-one-U-turn cube as already solved")
	}
	if bound != 0 {
		t.Fatalf("bound = %d, want 0 (goal already satisfied at the root)", bound)
	}
}

func TestTwoByTwoAlreadySolved(t *testing.T) {
	s := TwoByTwo()
	bound, solved := s.Analyze(nil, nil, nil)
	if !solved || bound != 0 {
		t.Fatalf("Analyze(no scramble) = (%d, %v), want (0, true)", bound, solved)
	}
}

func TestPersistentTwoByTwoReusesTableAcrossCalls(t *testing.T) {
	store, err := cache.Open()
	if err != nil {
		t.Fatalf("cache.Open: %v", err)
	}
	defer store.Close()

	p := NewPersistentTwoByTwo(store)

	var first []string
	p.StartSearch(opts([]string{"R"}, 1, 1, &first), false)
	if len(first) != 1 || first[0] != "R'" {
		t.Fatalf("first solve = %v, want [\"R'\"]", first)
	}

	var second []string
	p.StartSearch(opts([]string{"R"}, 1, 1, &second), true)
	if len(second) != 1 || second[0] != "R'" {
		t.Fatalf("reused-table solve = %v, want [\"R'\"]", second)
	}
}

func TestPseudoCrossIsRotationAware(t *testing.T) {
	s := PseudoCross()
	if s.Config.MaxRotCount == 0 {
		t.Fatalf("PseudoCross should enable mid-search rotation branching")
	}
	if len(s.Config.CenterOffsets) != 4 {
		t.Fatalf("CenterOffsets has %d entries, want 4 (the vertical-axis rotation classes)",
			len(s.Config.CenterOffsets))
	}

	var updates []string
	s.StartSearch(opts(nil, 1, 0, &updates))
	if len(updates) != 1 || updates[0] != "Already solved." {
		t.Fatalf("updates = %v, want [\"Already solved.\"]", updates)
	}
}

func TestCrossFreePairGoalHoldsAtEveryLiteralSeed(t *testing.T) {
	s := CrossFreePair()
	if !s.Config.Goal(s.Config.SolvedCoords) {
		t.Fatalf("CrossFreePair's own solved-coordinate tuple is not a goal")
	}
	// Every seed sits at depth 0 of the dense table; each must be a goal.
	crossSolved := s.Config.SolvedCoords[0]
	h := s.Config.Heuristics[0].H
	for c := 0; c < 24; c++ {
		for e := 0; e < 24; e++ {
			coords := []int{crossSolved, c, e}
			if h.Bound(coords) == 0 && !s.Config.Goal(coords) {
				t.Fatalf("seed (corner %d, edge %d) is not a goal", c, e)
			}
		}
	}
}

// opts builds a search.Options recording every update into *into.
func opts(scramble []string, num, length int, into *[]string) search.Options {
	return search.Options{Scramble: scramble, Num: num, Len: length, Update: func(s string) {
		*into = append(*into, s)
	}}
}
