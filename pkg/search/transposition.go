// Package search implements iterative-deepening negamax with alpha-beta pruning, quiescence,
// a transposition table, null-move pruning and killer/MVV-LVA move ordering.
package search

import (
	"github.com/rookwise/rookwise/pkg/board"
	"github.com/rookwise/rookwise/pkg/eval"
)

// Bound indicates whether a stored score is exact or a cutoff bound.
type Bound uint8

const (
	Exact Bound = iota
	LowerBound
	UpperBound
)

// entry is a transposition-table record keyed by position fingerprint.
type entry struct {
	key   board.Fingerprint
	depth int
	bound Bound
	score eval.Score
	move  board.Move
	valid bool
}

// TranspositionTable caches search results across positions that transpose into each other.
// Entries are keyed by Zobrist fingerprint, including castling rights, en-passant state and
// side to move, so repeat searches from a fresh Game cannot misanswer due to
// stale entries from an unrelated position happening to share a slot.
type TranspositionTable struct {
	entries []entry
	mask    uint64
}

// NewTranspositionTable allocates a table sized to the next power of two at or below the
// requested entry count.
func NewTranspositionTable(size int) *TranspositionTable {
	n := 1
	for n*2 <= size {
		n *= 2
	}
	if n == 0 {
		n = 1
	}
	return &TranspositionTable{
		entries: make([]entry, n),
		mask:    uint64(n - 1),
	}
}

// Probe returns the entry for key, if present.
func (t *TranspositionTable) Probe(key board.Fingerprint) (entry, bool) {
	e := t.entries[uint64(key)&t.mask]
	if e.valid && e.key == key {
		return e, true
	}
	return entry{}, false
}

// Store records an entry, always replacing whatever occupied the slot. A depth-preferred
// replacement policy is a possible refinement for a later pass.
func (t *TranspositionTable) Store(key board.Fingerprint, depth int, bound Bound, score eval.Score, move board.Move) {
	t.entries[uint64(key)&t.mask] = entry{key: key, depth: depth, bound: bound, score: score, move: move, valid: true}
}

// Clear empties every entry.
func (t *TranspositionTable) Clear() {
	for i := range t.entries {
		t.entries[i] = entry{}
	}
}
