// Package prune builds the pruning heuristics consulted during search: a
// dense BFS flood-fill table for coordinate spaces small enough to afford
// one byte per state, and a sparse BFS pattern database (a sliding
// three-set frontier with a bounded memory budget) for spaces too large
// for that. Both report "moves remaining" bounds through the Heuristic
// interface, mirroring how engine/transposition.go's TranspositionTable is
// a probe-by-key table consulted mid-search.
package prune

// Unreached is the sentinel bound for a composite coordinate this table
// never saw during its build: "at least build depth + 1 moves remain".
const Unreached = 255

// Heuristic is the interface internal/search consults at every DFS node.
// Bound returns a lower bound on the number of moves remaining to a goal
// from the given tuple of per-family coordinates.
type Heuristic interface {
	Bound(coords []int) int
}

// Coder packs a tuple of per-family coordinates into one composite index
// (mixed-radix, most-significant family first) and back. Both the dense
// table (which composite-indexes a flat byte array) and the sparse table
// (which composite-indexes a 64-bit hash-set key) use it.
type Coder struct {
	Sizes []int
}

// Encode returns the composite index for coords.
func (c Coder) Encode(coords []int) uint64 {
	var idx uint64
	for i, size := range c.Sizes {
		idx = idx*uint64(size) + uint64(coords[i])
	}
	return idx
}

// Decode is Encode's inverse, writing into coords (len(coords) ==
// len(c.Sizes)).
func (c Coder) Decode(idx uint64, coords []int) {
	for i := len(c.Sizes) - 1; i >= 0; i-- {
		coords[i] = int(idx % uint64(c.Sizes[i]))
		idx /= uint64(c.Sizes[i])
	}
}

// Total returns the product of all family sizes: the size of a fully
// dense table over this coder's domain.
func (c Coder) Total() int {
	total := 1
	for _, size := range c.Sizes {
		total *= size
	}
	return total
}
