package prune

import (
	"log"

	"github.com/hailam/cubesolve/internal/movetable"
)

// Dense is a one-byte-per-state pruning table built by flood-fill from one
// or more seed states. Unreached cells hold Unreached (255); a reachable
// cell holds the BFS depth at which it was first seen.
type Dense struct {
	Coder Coder
	Data  []uint8
}

// BuildDense allocates a table over coder's domain, seeds it at every
// composite coordinate in seeds (depth 0), then flood-fills depth by depth
// through tables using the generator indices in gens, up to maxDepth.
// Iteration stops early once a ply makes no progress, exactly as spec'd:
// dense tables are a full rescan per depth rather than a frontier queue,
// since the domain is small enough that the rescan is cheap relative to
// the table's own build-once lifetime.
func BuildDense(tables []movetable.Table, gens []int, seeds [][]int, maxDepth int) Dense {
	coder := Coder{Sizes: make([]int, len(tables))}
	for i, t := range tables {
		coder.Sizes[i] = t.Size()
	}

	data := make([]uint8, coder.Total())
	for i := range data {
		data[i] = Unreached
	}
	for _, seed := range seeds {
		data[coder.Encode(seed)] = 0
	}

	coords := make([]int, len(tables))
	next := make([]int, len(tables))
	for d := 0; d < maxDepth; d++ {
		filled := 0
		for i, v := range data {
			if v != uint8(d) {
				continue
			}
			coder.Decode(uint64(i), coords)
			for _, g := range gens {
				for k, t := range tables {
					next[k] = t.Lookup(coords[k], g)
				}
				j := coder.Encode(next)
				if data[j] == Unreached {
					data[j] = uint8(d + 1)
					filled++
				}
			}
		}
		log.Printf("[prune] dense depth %d: %d new states", d+1, filled)
		if filled == 0 {
			break
		}
	}

	return Dense{Coder: coder, Data: data}
}

// Bound implements Heuristic.
func (d Dense) Bound(coords []int) int {
	return int(d.Data[d.Coder.Encode(coords)])
}
