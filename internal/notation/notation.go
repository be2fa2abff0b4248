// Package notation parses and prints the move-token language solvers take
// as input: space-separated scrambles, underscore-separated move-restrict
// lists, and the pipe/underscore-separated MA2/MC override grammars.
// Every malformed token is silently dropped rather than surfaced as an
// error, matching the documented behaviour of the original tokenizer.
package notation

import (
	"strconv"
	"strings"

	"github.com/hailam/cubesolve/internal/cube"
)

// Alphabet is the set of valid move tokens, keyed by generator name.
type Alphabet map[string]cube.Generator

// NewAlphabet builds an Alphabet from a generator list.
func NewAlphabet(gens []cube.Generator) Alphabet {
	a := make(Alphabet, len(gens))
	for _, g := range gens {
		a[g.Name] = g
	}
	return a
}

// ParseMoveList splits s on whitespace and keeps only tokens present in
// alphabet. Unknown or malformed tokens are silently dropped.
func ParseMoveList(s string, alphabet Alphabet) []string {
	var out []string
	for _, tok := range strings.Fields(s) {
		if _, ok := alphabet[tok]; ok {
			out = append(out, tok)
		}
	}
	return out
}

// String joins a move list back into its canonical space-separated form.
func String(moves []string) string {
	return strings.Join(moves, " ")
}

// ParseMoveRestrictID parses the underscore-separated move_restrict_id
// grammar (e.g. "U_U2_U-_R_R2_R-"), unescaping "-" to "'" in each token
// before validating it against alphabet. Malformed or unknown tokens are
// silently dropped.
func ParseMoveRestrictID(id string, alphabet Alphabet) []string {
	var out []string
	for _, tok := range strings.Split(id, "_") {
		if tok == "" {
			continue
		}
		tok = strings.ReplaceAll(tok, "-", "'")
		if _, ok := alphabet[tok]; ok {
			out = append(out, tok)
		}
	}
	return out
}

// MA2Key identifies one cell of the MA2 adjacency matrix: whether move Next
// is forbidden immediately after move Prev. Prev == "" represents EMPTY,
// the root of a search with no previous move.
type MA2Key struct {
	Prev string
	Next string
}

// ParseMA2Overrides parses the pipe-separated "prev~next" override grammar.
// EMPTY on the prev side parses as ""; EMPTY is not accepted as the next
// move. Malformed pairs (wrong shape, unknown move on a non-EMPTY side) are
// silently dropped. The returned keys are
// meant to be XOR-toggled against DefaultMA2, per the "toggling" wording of
// the override contract — there is no associated value to parse.
func ParseMA2Overrides(s string, alphabet Alphabet) []MA2Key {
	var out []MA2Key
	if strings.TrimSpace(s) == "" {
		return out
	}
	for _, pair := range strings.Split(s, "|") {
		sides := strings.SplitN(pair, "~", 2)
		if len(sides) != 2 {
			continue
		}
		prev, next := sides[0], sides[1]
		if prev != "EMPTY" {
			if _, ok := alphabet[prev]; !ok {
				continue
			}
		} else {
			prev = ""
		}
		if _, ok := alphabet[next]; !ok {
			continue
		}
		out = append(out, MA2Key{Prev: prev, Next: next})
	}
	return out
}

// ApplyMA2Overrides returns a copy of base with every key in overrides
// flipped.
func ApplyMA2Overrides(base map[MA2Key]bool, overrides []MA2Key) map[MA2Key]bool {
	out := make(map[MA2Key]bool, len(base)+len(overrides))
	for k, v := range base {
		out[k] = v
	}
	for _, k := range overrides {
		out[k] = !out[k]
	}
	return out
}

// DefaultMA2 builds the default axis-based adjacency matrix: a move is
// forbidden immediately after itself (same Base — U then U2 should have
// been folded into a single U', not searched as two moves) and, for moves
// on opposite faces of the same axis, forbidden in the lexicographically
// increasing direction, so the commuting pair is only ever explored in one
// canonical order (e.g. "U D" is explored, "D2 U" is not).
func DefaultMA2(gens []cube.Generator) map[MA2Key]bool {
	out := map[MA2Key]bool{}
	for _, p := range gens {
		for _, n := range gens {
			if p.Base == n.Base {
				out[MA2Key{Prev: p.Name, Next: n.Name}] = true
				continue
			}
			if cube.OppositeFace(p.Base, n.Base) && p.Base < n.Base {
				out[MA2Key{Prev: p.Name, Next: n.Name}] = true
			}
		}
	}
	return out
}

// DefaultMCCap is the default per-move usage cap: effectively unbounded
// for any single search of reasonable length.
const DefaultMCCap = 20

// ParseMCOverrides parses the underscore-separated "move:cap" override
// grammar. A malformed token, an unknown move, or a non-integer cap is
// silently dropped.
func ParseMCOverrides(s string, alphabet Alphabet) map[string]int {
	out := map[string]int{}
	if strings.TrimSpace(s) == "" {
		return out
	}
	for _, tok := range strings.Split(s, "_") {
		parts := strings.SplitN(tok, ":", 2)
		if len(parts) != 2 {
			continue
		}
		move, capStr := parts[0], parts[1]
		if _, ok := alphabet[move]; !ok {
			continue
		}
		cap, err := strconv.Atoi(capStr)
		if err != nil {
			continue
		}
		out[move] = cap
	}
	return out
}

// DefaultMC builds the default cap table: DefaultMCCap for every enabled
// generator, then overridden by overrides.
func DefaultMC(gens []cube.Generator, overrides map[string]int) map[string]int {
	out := make(map[string]int, len(gens))
	for _, g := range gens {
		out[g.Name] = DefaultMCCap
	}
	for move, cap := range overrides {
		out[move] = cap
	}
	return out
}
