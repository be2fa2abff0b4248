package cube

// cycleSpec describes one generator as a set of independent cycles: a piece
// in cyc[k] moves to cyc[k+1 mod len(cyc)], gaining the twist/flip recorded
// at twist[k]/flip[k] (nil means "no orientation change").
type cycleSpec struct {
	name         string
	cornerCycles [][]Corner
	cornerTwist  [][]int8
	edgeCycles   [][]Edge
	edgeFlip     [][]int8
	centerCycles [][]Center
}

func buildFromCycles(spec cycleSpec) State {
	m := Identity()
	for ci, cyc := range spec.cornerCycles {
		var twist []int8
		if ci < len(spec.cornerTwist) {
			twist = spec.cornerTwist[ci]
		}
		n := len(cyc)
		for k := 0; k < n; k++ {
			from, to := cyc[k], cyc[(k+1)%n]
			m.CP[to] = from
			if twist != nil {
				m.CO[to] = twist[k]
			}
		}
	}
	for ei, cyc := range spec.edgeCycles {
		var flip []int8
		if ei < len(spec.edgeFlip) {
			flip = spec.edgeFlip[ei]
		}
		n := len(cyc)
		for k := 0; k < n; k++ {
			from, to := cyc[k], cyc[(k+1)%n]
			m.EP[to] = from
			if flip != nil {
				m.EO[to] = flip[k]
			}
		}
	}
	for _, cyc := range spec.centerCycles {
		n := len(cyc)
		for k := 0; k < n; k++ {
			from, to := cyc[k], cyc[(k+1)%n]
			m.Center[to] = from
		}
	}
	return m
}

// cw42 is the standard alternating corner-twist pattern for a single-layer
// turn that twists corners: sums to 0 mod 3 over the 4-cycle.
var cw42 = []int8{1, 2, 1, 2}

// flip4 marks all four edges of a cycle as flipped.
var flip4 = []int8{1, 1, 1, 1}

// baseCycles is the hand-authored geometry for the twelve quarter-turn
// generators: the six face turns, the three slice turns (M/E/S), and the
// three whole-cube rotations (x/y/z). Double and prime variants, and the
// eighteen wide-move variants, are derived from these in Dictionary().
var baseCycles = []cycleSpec{
	{
		name:         "U",
		cornerCycles: [][]Corner{{URF, UBR, ULB, UFL}},
		edgeCycles:   [][]Edge{{UR, UB, UL, UF}},
	},
	{
		name:         "D",
		cornerCycles: [][]Corner{{DFR, DLF, DLB, DRB}},
		edgeCycles:   [][]Edge{{DF, DL, DB, DR}},
	},
	{
		name:         "L",
		cornerCycles: [][]Corner{{UFL, DLF, DLB, ULB}},
		cornerTwist:  [][]int8{cw42},
		edgeCycles:   [][]Edge{{UL, BL, DL, FL}},
	},
	{
		name:         "R",
		cornerCycles: [][]Corner{{URF, UBR, DRB, DFR}},
		cornerTwist:  [][]int8{cw42},
		edgeCycles:   [][]Edge{{UR, FR, DR, BR}},
	},
	{
		name:         "F",
		cornerCycles: [][]Corner{{URF, UFL, DLF, DFR}},
		cornerTwist:  [][]int8{cw42},
		edgeCycles:   [][]Edge{{UF, FL, DF, FR}},
		edgeFlip:     [][]int8{flip4},
	},
	{
		name:         "B",
		cornerCycles: [][]Corner{{ULB, UBR, DRB, DLB}},
		cornerTwist:  [][]int8{cw42},
		edgeCycles:   [][]Edge{{UB, BR, DB, BL}},
		edgeFlip:     [][]int8{flip4},
	},
	{
		name:         "M",
		edgeCycles:   [][]Edge{{UF, DF, DB, UB}},
		centerCycles: [][]Center{{CenterU, CenterF, CenterD, CenterB}},
	},
	{
		name:         "E",
		edgeCycles:   [][]Edge{{FR, FL, BL, BR}},
		centerCycles: [][]Center{{CenterF, CenterL, CenterB, CenterR}},
	},
	{
		name:         "S",
		edgeCycles:   [][]Edge{{UR, DR, DL, UL}},
		edgeFlip:     [][]int8{flip4},
		centerCycles: [][]Center{{CenterU, CenterR, CenterD, CenterL}},
	},
	{
		// Whole-cube rotation around the R-L axis: same sense as R.
		// Orientation is left untouched (see DESIGN.md, internal/cube,
		// "Known simplification"); only the permutation moves.
		name: "x",
		cornerCycles: [][]Corner{
			{URF, UBR, DRB, DFR},
			{UFL, DLF, DLB, ULB},
		},
		edgeCycles: [][]Edge{
			{UR, BR, DR, FR},
			{UL, FL, DL, BL},
			{UF, DF, DB, UB},
		},
		centerCycles: [][]Center{{CenterU, CenterF, CenterD, CenterB}},
	},
	{
		// Whole-cube rotation around the U-D axis: same sense as U.
		name: "y",
		cornerCycles: [][]Corner{
			{URF, UBR, ULB, UFL},
			{DFR, DRB, DLB, DLF},
		},
		edgeCycles: [][]Edge{
			{UR, UB, UL, UF},
			{DR, DB, DL, DF},
			{FR, BR, BL, FL},
		},
		centerCycles: [][]Center{{CenterF, CenterR, CenterB, CenterL}},
	},
	{
		// Whole-cube rotation around the F-B axis: same sense as F.
		name: "z",
		cornerCycles: [][]Corner{
			{URF, UFL, DLF, DFR},
			{ULB, UBR, DRB, DLB},
		},
		edgeCycles: [][]Edge{
			{UF, FL, DF, FR},
			{UB, BR, DB, BL},
			{UR, DR, DL, UL},
		},
		centerCycles: [][]Center{{CenterU, CenterR, CenterD, CenterL}},
	},
}

// wideExtra pairs a face name with the extra slice layer a wide turn of
// that face drags along (same rotational sense as the face itself).
var wideExtra = map[string]string{
	"u": "E", "d": "E",
	"l": "M", "r": "M",
	"f": "S", "b": "S",
}

// wideFace maps a wide-move letter to its plain-face counterpart.
var wideFace = map[string]string{
	"u": "U", "d": "D", "l": "L", "r": "R", "f": "F", "b": "B",
}

// Generator is one named entry in the move dictionary: a face/wide/slice
// turn or whole-cube rotation, in one of its three orders.
type Generator struct {
	Name  string // e.g. "U", "U2", "U'", "u", "M2", "x'"
	Base  string // the quarter-turn name this was derived from, e.g. "U"
	Move  State
	Order int // 1 (quarter), 2 (half), 3 (three-quarter == prime)
}

// Dictionary builds the full 54-generator alphabet: 18 face moves, 18 wide
// moves, 9 slice moves, 9 rotations. Callers restrict to a subset by name
// (see notation.ParseMoveRestrictID) rather than asking Dictionary to build
// less.
func Dictionary() []Generator {
	quarters := map[string]State{}
	for _, spec := range baseCycles {
		quarters[spec.name] = buildFromCycles(spec)
	}
	// Wide moves are the face quarter-turn composed with its dragged slice,
	// in whichever order; composition of two independent-layer moves
	// commutes.
	for wide, face := range wideFace {
		slice := wideExtra[wide]
		quarters[wide] = Compose(quarters[face], quarters[slice])
	}

	names := []string{"U", "D", "L", "R", "F", "B",
		"u", "d", "l", "r", "f", "b",
		"M", "E", "S",
		"x", "y", "z"}

	var gens []Generator
	for _, base := range names {
		q := quarters[base]
		half := Compose(q, q)
		prime := Invert(q)
		gens = append(gens,
			Generator{Name: base, Base: base, Move: q, Order: 1},
			Generator{Name: base + "2", Base: base, Move: half, Order: 2},
			Generator{Name: base + "'", Base: base, Move: prime, Order: 3},
		)
	}
	return gens
}

// FaceGroup classifies a base move name by the axis/face it turns. The
// default MA2 rule in the notation package does not call it; that rule
// compares Base names and OppositeFace directly.
func FaceGroup(base string) string {
	switch base {
	case "U", "u", "D", "d", "E":
		return "UD"
	case "L", "l", "R", "r", "M":
		return "LR"
	case "F", "f", "B", "b", "S":
		return "FB"
	case "x":
		return "LR"
	case "y":
		return "UD"
	case "z":
		return "FB"
	default:
		return base
	}
}

// OppositeFace reports whether two base move names turn opposite faces of
// the same axis (e.g. U/D, L/R, F/B) — moves on opposite faces commute and
// are canonically ordered by the axis rule in notation.DefaultMA2.
func OppositeFace(a, b string) bool {
	opp := map[string]string{
		"U": "D", "D": "U",
		"L": "R", "R": "L",
		"F": "B", "B": "F",
		"u": "d", "d": "u",
		"l": "r", "r": "l",
		"f": "b", "b": "f",
	}
	return opp[a] == b
}
