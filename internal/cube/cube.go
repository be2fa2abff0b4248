// Package cube implements the Rubik's-cube cubie algebra: permutation-with-
// orientation state for corners, edges and centers, and the fixed dictionary
// of generator moves used to build coordinate and pruning tables.
package cube

// Corner identifies one of the 8 corner cubies by its solved-state slot.
type Corner int8

// Corner slot/identity indices, in the standard URF..DRB order.
const (
	URF Corner = iota
	UFL
	ULB
	UBR
	DFR
	DLF
	DLB
	DRB
	NumCorners = 8
)

// NoCorner is the sentinel for an undefined corner slot.
const NoCorner Corner = -1

// Edge identifies one of the 12 edge cubies by its solved-state slot.
type Edge int8

// Edge slot/identity indices. UR..UB sit in the U layer, DR..DB in the D
// layer, FR..BR form the equatorial (E-layer) ring.
const (
	UR Edge = iota
	UF
	UL
	UB
	DR
	DF
	DL
	DB
	FR
	FL
	BL
	BR
	NumEdges = 12
)

// NoEdge is the sentinel for an undefined edge slot.
const NoEdge Edge = -1

// Center identifies one of the 6 face centers by its solved-state slot.
type Center int8

const (
	CenterU Center = iota
	CenterD
	CenterF
	CenterB
	CenterL
	CenterR
	NumCenters = 6
)

// NoCenter is the sentinel for an undefined center slot.
const NoCenter Center = -1

// State is a cube position (or a generator, which has the identical shape):
// for every slot, which cubie occupies it and with what orientation.
//
// A fully-defined State satisfies: CP/EP/Center are permutations of their
// domain, sum(CO) % 3 == 0, sum(EO) % 2 == 0. A subset composition result
// (see ComposeCorner/ComposeEdge) leaves all but one cubie at the sentinel.
type State struct {
	CP     [NumCorners]Corner
	CO     [NumCorners]int8
	EP     [NumEdges]Edge
	EO     [NumEdges]int8
	Center [NumCenters]Center
}

// Identity returns the solved cube: every slot holds the cubie of the same
// index, every orientation is zero.
func Identity() State {
	var s State
	for i := range s.CP {
		s.CP[i] = Corner(i)
	}
	for i := range s.EP {
		s.EP[i] = Edge(i)
	}
	for i := range s.Center {
		s.Center[i] = Center(i)
	}
	return s
}

// blank returns a State with every slot at the undefined sentinel, used as
// the base for subset compositions.
func blank() State {
	var s State
	for i := range s.CP {
		s.CP[i] = NoCorner
		s.CO[i] = -1
	}
	for i := range s.EP {
		s.EP[i] = NoEdge
		s.EO[i] = -1
	}
	for i := range s.Center {
		s.Center[i] = NoCenter
	}
	return s
}

// Compose returns s ∘ m: the state reached by applying generator m to s.
// For every slot i, the cubie now at i is whichever cubie m.CP[i] named in
// s, with orientation (s.CO[m.CP[i]] + m.CO[i]) mod 3 (mod 2 for edges).
func Compose(s, m State) State {
	var r State
	for i := 0; i < NumCorners; i++ {
		src := m.CP[i]
		r.CP[i] = s.CP[src]
		r.CO[i] = int8((int(s.CO[src]) + int(m.CO[i])) % 3)
	}
	for i := 0; i < NumEdges; i++ {
		src := m.EP[i]
		r.EP[i] = s.EP[src]
		r.EO[i] = int8((int(s.EO[src]) + int(m.EO[i])) % 2)
	}
	for i := 0; i < NumCenters; i++ {
		r.Center[i] = s.Center[m.Center[i]]
	}
	return r
}

// ComposeCorner applies m to s but only tracks the single cubie c: it
// locates c in s and in the slot m maps into that position, and returns a
// blank state with only that one corner slot defined. This is the operation
// move-table builders use to avoid materializing the full successor state.
func ComposeCorner(s State, m State, c Corner) State {
	r := blank()
	sSlot := findCornerSlot(s, c)
	// Find i such that m.CP[i] == sSlot; m.CP is a permutation so exactly
	// one exists.
	for i := 0; i < NumCorners; i++ {
		if m.CP[i] == sSlot {
			r.CP[i] = c
			r.CO[i] = int8((int(s.CO[sSlot]) + int(m.CO[i])) % 3)
			return r
		}
	}
	return r
}

// ComposeEdge is ComposeCorner's edge analogue.
func ComposeEdge(s State, m State, e Edge) State {
	r := blank()
	sSlot := findEdgeSlot(s, e)
	for i := 0; i < NumEdges; i++ {
		if m.EP[i] == sSlot {
			r.EP[i] = e
			r.EO[i] = int8((int(s.EO[sSlot]) + int(m.EO[i])) % 2)
			return r
		}
	}
	return r
}

func findCornerSlot(s State, c Corner) Corner {
	for i := 0; i < NumCorners; i++ {
		if s.CP[i] == c {
			return Corner(i)
		}
	}
	return NoCorner
}

func findEdgeSlot(s State, e Edge) Edge {
	for i := 0; i < NumEdges; i++ {
		if s.EP[i] == e {
			return Edge(i)
		}
	}
	return NoEdge
}

// Invert returns the generator that undoes m: composing m with Invert(m)
// (in either order) yields the identity.
func Invert(m State) State {
	r := Identity()
	for i := 0; i < NumCorners; i++ {
		j := m.CP[i]
		r.CP[j] = Corner(i)
		r.CO[j] = int8((3 - int(m.CO[i])) % 3)
	}
	for i := 0; i < NumEdges; i++ {
		j := m.EP[i]
		r.EP[j] = Edge(i)
		r.EO[j] = int8((2 - int(m.EO[i])) % 2)
	}
	for i := 0; i < NumCenters; i++ {
		j := m.Center[i]
		r.Center[j] = Center(i)
	}
	return r
}

// SumCO returns sum(CO) mod 3; must be 0 for any reachable state.
func (s State) SumCO() int {
	total := 0
	for _, o := range s.CO {
		total += int(o)
	}
	return total % 3
}

// SumEO returns sum(EO) mod 2; must be 0 for any reachable state.
func (s State) SumEO() int {
	total := 0
	for _, o := range s.EO {
		total += int(o)
	}
	return total % 2
}

// ApplyCornerSlot maps "a corner sitting at slot with orientation orient"
// through generator m, returning its new slot and orientation. This is the
// primitive move-table builders use: it needs no cubie identity and no
// full state, only the generator's own permutation/orientation arrays.
func ApplyCornerSlot(m State, slot int, orient int8) (int, int8) {
	for i := 0; i < NumCorners; i++ {
		if int(m.CP[i]) == slot {
			return i, int8((int(orient) + int(m.CO[i])) % 3)
		}
	}
	return slot, orient
}

// ApplyEdgeSlot is ApplyCornerSlot's edge analogue.
func ApplyEdgeSlot(m State, slot int, orient int8) (int, int8) {
	for i := 0; i < NumEdges; i++ {
		if int(m.EP[i]) == slot {
			return i, int8((int(orient) + int(m.EO[i])) % 2)
		}
	}
	return slot, orient
}

// ApplyCenterSlot maps a center sitting at slot through generator m.
func ApplyCenterSlot(m State, slot int) int {
	for i := 0; i < NumCenters; i++ {
		if int(m.Center[i]) == slot {
			return i
		}
	}
	return slot
}
