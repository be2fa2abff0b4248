package cube

import "testing"

func isCornerPerm(s State) bool {
	var seen [NumCorners]bool
	for _, c := range s.CP {
		if c < 0 || int(c) >= NumCorners || seen[c] {
			return false
		}
		seen[c] = true
	}
	return true
}

func isEdgePerm(s State) bool {
	var seen [NumEdges]bool
	for _, e := range s.EP {
		if e < 0 || int(e) >= NumEdges || seen[e] {
			return false
		}
		seen[e] = true
	}
	return true
}

// TestGeneratorsPreserveInvariants checks that every generator, applied to
// the identity, yields a state whose CP/EP/Center are permutations and
// whose orientation sums satisfy the parity invariants.
func TestGeneratorsPreserveInvariants(t *testing.T) {
	id := Identity()
	for _, g := range Dictionary() {
		s := Compose(id, g.Move)
		t.Run(g.Name, func(t *testing.T) {
			if !isCornerPerm(s) {
				t.Errorf("%s: CP is not a permutation: %v", g.Name, s.CP)
			}
			if !isEdgePerm(s) {
				t.Errorf("%s: EP is not a permutation: %v", g.Name, s.EP)
			}
			if s.SumCO() != 0 {
				t.Errorf("%s: sum(CO) mod 3 = %d, want 0", g.Name, s.SumCO())
			}
			if s.SumEO() != 0 {
				t.Errorf("%s: sum(EO) mod 2 = %d, want 0", g.Name, s.SumEO())
			}
		})
	}
}

// TestQuarterTurnOrderFour checks that applying a quarter-turn generator
// four times returns to the identity, and that its "2" and "'" variants
// agree with repeated application.
func TestQuarterTurnOrderFour(t *testing.T) {
	dict := Dictionary()
	byName := map[string]State{}
	for _, g := range dict {
		byName[g.Name] = g.Move
	}

	for _, base := range []string{"U", "D", "L", "R", "F", "B", "M", "E", "S", "x", "y", "z"} {
		q := byName[base]
		s := Identity()
		for i := 0; i < 4; i++ {
			s = Compose(s, q)
		}
		if s != Identity() {
			t.Errorf("%s applied 4 times did not return to identity", base)
		}

		half := Compose(Identity(), byName[base+"2"])
		wantHalf := Compose(Compose(Identity(), q), q)
		if half != wantHalf {
			t.Errorf("%s2 does not equal %s applied twice", base, base)
		}

		prime := Compose(Identity(), byName[base+"'"])
		wantPrime := Compose(Compose(Compose(Identity(), q), q), q)
		if prime != wantPrime {
			t.Errorf("%s' does not equal %s applied three times", base, base)
		}
	}
}

// TestInvertUndoes checks Invert(m) composed after m restores the identity,
// for every generator in the full dictionary.
func TestInvertUndoes(t *testing.T) {
	id := Identity()
	for _, g := range Dictionary() {
		undone := Compose(Compose(id, g.Move), Invert(g.Move))
		if undone != id {
			t.Errorf("Invert(%s) does not undo %s", g.Name, g.Name)
		}
	}
}

// TestComposeCornerMatchesFullCompose checks that the subset corner
// composition agrees with the relevant slot of a full Compose, for a
// scrambled starting state.
func TestComposeCornerMatchesFullCompose(t *testing.T) {
	dict := Dictionary()
	byName := map[string]State{}
	for _, g := range dict {
		byName[g.Name] = g.Move
	}

	s := Identity()
	for _, name := range []string{"R", "U", "R'", "U'", "F", "B2"} {
		s = Compose(s, byName[name])
	}

	for c := Corner(0); c < NumCorners; c++ {
		for _, name := range []string{"R", "U'", "F2"} {
			full := Compose(s, byName[name])
			subset := ComposeCorner(s, byName[name], c)
			for i := 0; i < NumCorners; i++ {
				if subset.CP[i] == c {
					if full.CO[i] != subset.CO[i] {
						t.Errorf("ComposeCorner(%s, corner %d): orientation %d, want %d", name, c, subset.CO[i], full.CO[i])
					}
					if full.CP[i] != c {
						t.Errorf("ComposeCorner(%s, corner %d) placed it at slot %d, but full compose disagrees", name, c, i)
					}
				}
			}
		}
	}
}

// TestRotationMapIsInvertible checks that Reverse undoes Map for every
// rotation class and every move name.
func TestRotationMapIsInvertible(t *testing.T) {
	dict := Dictionary()
	rt := BuildRotationTable(dict)
	if len(rt.Classes) != 24 {
		t.Fatalf("expected 24 rotation classes, got %d", len(rt.Classes))
	}
	for r := range rt.Classes {
		for name, mapped := range rt.Map[r] {
			if back := rt.Reverse[r][mapped]; back != name {
				t.Errorf("class %d: Map[%s]=%s but Reverse[%s]=%s, want %s", r, name, mapped, mapped, back, name)
			}
		}
	}
}
