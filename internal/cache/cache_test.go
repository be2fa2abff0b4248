package cache

import (
	"testing"

	"github.com/hailam/cubesolve/internal/coord"
	"github.com/hailam/cubesolve/internal/cube"
	"github.com/hailam/cubesolve/internal/movetable"
	"github.com/hailam/cubesolve/internal/prune"
)

func buildToyDense(t *testing.T) prune.Dense {
	t.Helper()
	fam := coord.Family{Name: "single-edge-UR", N: 1, C: 2, PN: 12}
	dict := cube.Dictionary()
	byName := map[string]cube.Generator{}
	for _, g := range dict {
		byName[g.Name] = g
	}
	gens := []cube.Generator{byName["U"], byName["U2"], byName["U'"]}
	tbl := movetable.Build(fam, movetable.KindEdge, gens)
	solved := coord.ArrayToIndex(coord.IdentityArray([]int{int(cube.UR)}, 2), 1, 2, 12)
	return prune.BuildDense([]movetable.Table{tbl}, []int{0, 1, 2}, [][]int{{solved}}, 4)
}

func TestLoadDenseMissReportsNotFound(t *testing.T) {
	s, err := Open()
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()

	_, found, err := s.LoadDense(Signature{Family: "single-edge-UR", MoveRestrictID: "U_U2_U-", PruneDepth: 4})
	if err != nil {
		t.Fatalf("LoadDense: %v", err)
	}
	if found {
		t.Fatalf("expected a cache miss on an empty store")
	}
}

func TestStoreThenLoadDenseRoundTrips(t *testing.T) {
	s, err := Open()
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()

	want := buildToyDense(t)
	sig := Signature{Family: "single-edge-UR", MoveRestrictID: "U_U2_U-", PruneDepth: 4}

	if err := s.StoreDense(sig, want); err != nil {
		t.Fatalf("StoreDense: %v", err)
	}

	got, found, err := s.LoadDense(sig)
	if err != nil {
		t.Fatalf("LoadDense: %v", err)
	}
	if !found {
		t.Fatalf("expected a cache hit after StoreDense")
	}
	if len(got.Data) != len(want.Data) {
		t.Fatalf("Data length = %d, want %d", len(got.Data), len(want.Data))
	}
	for i := range want.Data {
		if got.Data[i] != want.Data[i] {
			t.Fatalf("Data[%d] = %d, want %d", i, got.Data[i], want.Data[i])
		}
	}
	if len(got.Coder.Sizes) != len(want.Coder.Sizes) || got.Coder.Sizes[0] != want.Coder.Sizes[0] {
		t.Fatalf("Coder.Sizes = %v, want %v", got.Coder.Sizes, want.Coder.Sizes)
	}
}

func TestDifferentSignaturesDoNotCollide(t *testing.T) {
	s, err := Open()
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()

	a := buildToyDense(t)
	b := buildToyDense(t)
	b.Data[0] = prune.Unreached

	sigA := Signature{Family: "single-edge-UR", MoveRestrictID: "U_U2_U-", PruneDepth: 4}
	sigB := Signature{Family: "single-edge-UR", MoveRestrictID: "U_U2_U-", PruneDepth: 3}

	if err := s.StoreDense(sigA, a); err != nil {
		t.Fatalf("StoreDense a: %v", err)
	}
	if err := s.StoreDense(sigB, b); err != nil {
		t.Fatalf("StoreDense b: %v", err)
	}

	gotA, _, err := s.LoadDense(sigA)
	if err != nil {
		t.Fatalf("LoadDense a: %v", err)
	}
	if gotA.Data[0] == prune.Unreached {
		t.Fatalf("signature A's table was overwritten by B's")
	}
}
