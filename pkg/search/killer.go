package search

import "github.com/rookwise/rookwise/pkg/board"

// maxKillerPly bounds the killer-move table; ply indices beyond this ceiling simply don't
// record killers (a fixed-depth search with QDEPTH=4 quiescence extension stays well under it).
const maxKillerPly = 64

// killerTable holds two killer-move slots per ply: a quiet move that caused a
// beta cutoff at a sibling node is tried early in other siblings at the same ply.
type killerTable struct {
	slots [maxKillerPly][2]board.MoveKey
}

func newKillerTable() *killerTable {
	return &killerTable{}
}

// Record shifts slot 0 into slot 1 and stores m in slot 0, deduplicating if m is already a
// killer at this ply.
func (k *killerTable) Record(ply int, m board.Move) {
	if ply < 0 || ply >= maxKillerPly {
		return
	}
	key := m.Key()
	if k.slots[ply][0] == key {
		return
	}
	if k.slots[ply][1] == key {
		k.slots[ply][1] = k.slots[ply][0]
		k.slots[ply][0] = key
		return
	}
	k.slots[ply][1] = k.slots[ply][0]
	k.slots[ply][0] = key
}

// Rank returns 2 if m is the first killer at ply, 1 if it is the second, 0 otherwise.
func (k *killerTable) Rank(ply int, m board.Move) int {
	if ply < 0 || ply >= maxKillerPly {
		return 0
	}
	key := m.Key()
	if k.slots[ply][0] == key {
		return 2
	}
	if k.slots[ply][1] == key {
		return 1
	}
	return 0
}
