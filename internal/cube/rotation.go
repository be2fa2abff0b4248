package cube

// RotationTable holds the 24 whole-cube orientation classes reachable by
// composing x/y/z rotations from the solved frame, and the move-name
// relabeling an observer who rotated into each class would use.
type RotationTable struct {
	// Classes[r] is the cube-rotation state reaching class r from identity.
	Classes []State
	// Map[r][name] is how a mover rotated into class r refers to the move
	// named `name` in the solved-cube frame.
	Map []map[string]string
	// Reverse[r] is the inverse relabeling: Reverse[r][Map[r][name]] == name.
	Reverse []map[string]string
}

var letterOfCenter = [NumCenters]string{"U", "D", "F", "B", "L", "R"}
var centerOfLetter = map[string]Center{
	"U": CenterU, "D": CenterD, "F": CenterF, "B": CenterB, "L": CenterL, "R": CenterR,
}

// axisRepresentative names the face letter whose relabeling also governs a
// slice or rotation generator built on that axis.
var axisRepresentative = map[string]string{
	"M": "L", "E": "D", "S": "F",
	"x": "R", "y": "U", "z": "F",
}

// representativeOfAxis maps every face letter to the slice on its axis, for
// rebuilding a slice name from its relabeled representative letter.
var representativeOfAxis = map[string]string{
	"L": "M", "R": "M", "D": "E", "U": "E", "F": "S", "B": "S",
}

// BuildRotationTable enumerates the 24 reachable whole-cube orientations by
// BFS over {x, y, z} from the identity, deduplicating on the Center tuple.
func BuildRotationTable(dict []Generator) RotationTable {
	byName := map[string]State{}
	for _, g := range dict {
		byName[g.Name] = g.Move
	}
	seed := []State{byName["x"], byName["y"], byName["z"]}

	seen := map[[NumCenters]Center]int{}
	var classes []State
	identity := Identity()
	key := identity.Center
	seen[key] = 0
	classes = append(classes, identity)

	queue := []State{identity}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, g := range seed {
			next := Compose(cur, g)
			k := next.Center
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = len(classes)
			classes = append(classes, next)
			queue = append(queue, next)
		}
	}

	rt := RotationTable{
		Classes: classes,
		Map:     make([]map[string]string, len(classes)),
		Reverse: make([]map[string]string, len(classes)),
	}
	for r, cls := range classes {
		rt.Map[r] = relabel(cls)
	}
	invClassOf := func(s State) int {
		return seen[Invert(s).Center]
	}
	for r, cls := range classes {
		rt.Reverse[r] = rt.Map[invClassOf(cls)]
		_ = cls
	}
	return rt
}

// relabel returns, for a rotation state cls, the map from a solved-frame
// move name to how an observer rotated by cls would name the same physical
// move.
func relabel(cls State) map[string]string {
	letterMap := map[string]string{}
	for letter, c := range centerOfLetter {
		letterMap[letter] = letterOfCenter[cls.Center[c]]
	}

	relabelBase := func(base string) string {
		if rep, ok := axisRepresentative[base]; ok {
			// x/y/z rotations relabel to themselves: the rotation axis
			// itself is invariant under further rotation, only its sense
			// of direction could flip, which this model does not track.
			if base == "x" || base == "y" || base == "z" {
				return base
			}
			return representativeOfAxis[letterMap[rep]]
		}
		return letterMap[base]
	}

	out := map[string]string{}
	for _, base := range []string{"U", "D", "L", "R", "F", "B",
		"u", "d", "l", "r", "f", "b", "M", "E", "S", "x", "y", "z"} {
		newBase := base
		if len(base) == 1 && base[0] >= 'a' && base[0] <= 'z' && base != "x" && base != "y" && base != "z" {
			// wide move: relabel the face portion, keep wideness
			upper := string(base[0] - 32)
			newBase = lower(relabelBase(upper))
		} else {
			newBase = relabelBase(base)
		}
		for _, suffix := range []string{"", "2", "'"} {
			out[base+suffix] = newBase + suffix
		}
	}
	return out
}

// ClassIndex returns the rotation class whose Center tuple matches s, or -1
// if s isn't one of the 24 reachable orientations (e.g. rt is the zero
// value because the caller doesn't use rotation-aware search).
func ClassIndex(rt RotationTable, s State) int {
	for i, c := range rt.Classes {
		if c.Center == s.Center {
			return i
		}
	}
	return -1
}

// ClassTransition returns the rotation class reached by applying generator
// g while already oriented into class r. Face/wide/slice generators leave
// the class unchanged (they don't permute centers); only x/y/z generators
// move it.
func ClassTransition(rt RotationTable, r int, g State) int {
	next := Compose(rt.Classes[r], g)
	if c := ClassIndex(rt, next); c >= 0 {
		return c
	}
	return r
}

func lower(s string) string {
	b := []byte(s)
	for i := range b {
		if b[i] >= 'A' && b[i] <= 'Z' {
			b[i] += 32
		}
	}
	return string(b)
}
