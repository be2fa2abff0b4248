package prune

import (
	"log"
	"math"

	"github.com/hailam/cubesolve/internal/movetable"
)

// bytesPerNode and bucketBytes model the per-entry and per-bucket memory
// cost used by the reservation math below. They are a fixed accounting
// convention (32 bytes live per stored node, 4 bytes per bucket slot), not
// a measurement of Go's actual map internals, which this package cannot
// introspect or pre-size down to the bucket. The budget arithmetic is
// still real: it bounds how many nodes newFrontierSetWithTarget is allowed
// to hint at, and it is what trips expansionStopped.
const (
	bytesPerNode = 32
	bucketBytes  = 4
)

const (
	maxBucketLog = 27
	minBucketLog = 21
)

// frontierSet is a hash set of composite coordinates with an optional
// element-vector side channel: while attached, every insert also appends
// to the slice the channel points at, so a depth's index_pairs entry is
// built as a side effect of expanding into it rather than by a separate
// pass afterward.
type frontierSet struct {
	data     map[uint64]struct{}
	buckets  int // modeled bucket count, for the memory-budget math only
	elements *[]uint64
}

func newFrontierSet(buckets int) *frontierSet {
	return newFrontierSetWithTarget(buckets, 0)
}

func newFrontierSetWithTarget(buckets, targetHint int) *frontierSet {
	return &frontierSet{data: make(map[uint64]struct{}, targetHint), buckets: buckets}
}

func (s *frontierSet) attach(v *[]uint64) { s.elements = v }
func (s *frontierSet) detach()            { s.elements = nil }

// willRehashOnNextInsert predicts whether one more insert would push this
// set past its modeled 0.9 load factor.
func (s *frontierSet) willRehashOnNextInsert() bool {
	return float64(len(s.data)+1) > float64(s.buckets)*0.9
}

func (s *frontierSet) contains(x uint64) bool {
	_, ok := s.data[x]
	return ok
}

func (s *frontierSet) insert(x uint64) {
	s.data[x] = struct{}{}
	if s.elements != nil {
		*s.elements = append(*s.elements, x)
	}
}

func (s *frontierSet) size() int { return len(s.data) }

// SparseConfig bounds a sparse BFS build.
type SparseConfig struct {
	// MemoryBudgetBytes is the total live-set memory ceiling. Converted
	// "megabytes minus fixed overhead" by the caller before reaching here.
	MemoryBudgetBytes int
	// DepthEstimate[d] is the measured node count at depth d, from a prior
	// build of the same family; depths beyond the slice are unmeasured and
	// treated as unbounded (no reservation hint beyond what the budget
	// alone allows).
	DepthEstimate []int
}

func (c SparseConfig) estimate(depth int) int {
	if depth >= 0 && depth < len(c.DepthEstimate) {
		return c.DepthEstimate[depth]
	}
	return math.MaxInt
}

// reserveBuckets probes bucket counts 2^27 down to 2^21 and returns the
// largest that fits within remaining bytes, per the documented formula
// buckets*bucketBytes + (buckets*0.9)*bytesPerNode <= remaining.
func reserveBuckets(remaining int) (buckets int, ok bool) {
	for k := maxBucketLog; k >= minBucketLog; k-- {
		b := 1 << uint(k)
		cost := b*bucketBytes + int(float64(b)*0.9*bytesPerNode)
		if cost <= remaining {
			return b, true
		}
	}
	return 0, false
}

// Database is a sparse BFS pattern database: for every composite
// coordinate it actually visited, the depth at which it was first
// reached. Coordinates it never visited are Unreached.
type Database struct {
	Coder            Coder
	IndexPairs       [][]uint64
	MaxDepthReached  int
	ExpansionStopped bool
	CapacityReached  bool

	depthOf map[uint64]uint8
}

// Bound implements Heuristic.
func (db *Database) Bound(coords []int) int {
	idx := db.Coder.Encode(coords)
	if d, ok := db.depthOf[idx]; ok {
		return int(d)
	}
	return Unreached
}

// BuildSparse runs the sliding three-set frontier BFS described by the
// memory-budgeted pattern-database design: expand cur into next one ply at
// a time, latching ExpansionStopped (and hence CapacityReached) the moment
// either an insert would force a rehash past budget, or no bucket count in
// [2^21, 2^27] fits the remaining memory for the next ply.
func BuildSparse(tables []movetable.Table, gens []int, seeds [][]int, maxDepth int, cfg SparseConfig) *Database {
	coder := Coder{Sizes: make([]int, len(tables))}
	for i, t := range tables {
		coder.Sizes[i] = t.Size()
	}

	db := &Database{Coder: coder, depthOf: map[uint64]uint8{}}

	prev := newFrontierSet(1 << minBucketLog)
	cur := newFrontierSet(1 << minBucketLog)
	var next *frontierSet

	indexPairs := make([][]uint64, 1, maxDepth+2)
	cur.attach(&indexPairs[0])
	for _, s := range seeds {
		idx := coder.Encode(s)
		cur.insert(idx)
		db.depthOf[idx] = 0
	}

	prepareNext := func(buckets, targetHint int) {
		indexPairs = append(indexPairs, make([]uint64, 0, targetHint))
		next = newFrontierSetWithTarget(buckets, targetHint)
		next.attach(&indexPairs[len(indexPairs)-1])
	}
	prepareNext(1<<minBucketLog, 0)

	coords := make([]int, len(tables))
	succ := make([]int, len(tables))

	depth := 0
	for depth < maxDepth {
		progressed := false
		for idx := range cur.data {
			coder.Decode(idx, coords)
			for _, g := range gens {
				for k, t := range tables {
					succ[k] = t.Lookup(coords[k], g)
				}
				candidate := coder.Encode(succ)

				if db.ExpansionStopped {
					db.CapacityReached = true
					continue
				}
				if cur.contains(candidate) || prev.contains(candidate) || next.contains(candidate) {
					continue
				}
				if next.willRehashOnNextInsert() {
					db.ExpansionStopped = true
					db.CapacityReached = true
					continue
				}
				next.insert(candidate)
				db.depthOf[candidate] = uint8(depth + 1)
				progressed = true
			}
		}

		if !progressed {
			break
		}

		// Advance depth: detach element vectors, release prev, slide the
		// window, reserve capacity for the ply after this one.
		prev.detach()
		cur.detach()
		next.detach()
		prev = cur
		cur = next
		depth++
		db.MaxDepthReached = depth
		log.Printf("[sparsebfs] depth %d: %d states (stopped=%v)", depth, cur.size(), db.ExpansionStopped)

		if db.ExpansionStopped {
			break
		}

		estimate := cfg.estimate(depth + 1)
		remaining := cfg.MemoryBudgetBytes - (prev.size()+cur.size())*bytesPerNode - cur.buckets*bucketBytes
		buckets, ok := reserveBuckets(remaining)
		if !ok {
			db.ExpansionStopped = true
			db.CapacityReached = true
			break
		}
		cap := int(float64(buckets) * 0.9 * 0.9)
		targetHint := cap
		if estimate < cap {
			targetHint = estimate
		}
		prepareNext(buckets, targetHint)
	}

	prev.detach()
	cur.detach()
	if next != nil {
		next.detach()
	}

	db.IndexPairs = indexPairs
	return db
}
