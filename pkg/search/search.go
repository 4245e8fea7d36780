// Package search implements iterative-deepening negamax with alpha-beta pruning, quiescence,
// a transposition table, null-move pruning and killer/MVV-LVA move ordering.
package search

import (
	"context"
	"fmt"
	"time"

	"github.com/rookwise/rookwise/pkg/board"
	"github.com/rookwise/rookwise/pkg/eval"
	"github.com/seekerror/logw"
)

// PV is the result of searching to a given depth: the best move found, its score, and the
// work performed to find it.
type PV struct {
	Depth int
	Move  board.Move
	Found bool
	Score eval.Score
	Nodes uint64
	Time  time.Duration
}

func (p PV) String() string {
	return fmt.Sprintf("depth=%v move=%v score=%v nodes=%v time=%v", p.Depth, p.Move, p.Score, p.Nodes, p.Time)
}

// Search is a bounded-depth negamax engine. A Search value owns no long-lived mutable state
// between calls to BestMove -- each call allocates its own transposition and killer tables so
// concurrent callers using distinct Search values never interfere.
type Search struct {
	ttSize int
}

// NewSearch returns a Search whose transposition table holds up to ttSize entries (rounded
// down to a power of two).
func NewSearch(ttSize int) *Search {
	if ttSize <= 0 {
		ttSize = 1 << 16
	}
	return &Search{ttSize: ttSize}
}

// BestMove runs iterative deepening from depth 1 to maxDepth and returns the principal
// variation of the last depth fully completed. If ctx is cancelled, the most recently completed
// iteration's result is returned; if the cancellation cuts the first iteration short, that
// partial iteration's result is returned instead. maxDepth must be >= 1.
func (s *Search) BestMove(ctx context.Context, pos *board.Position, side board.Color, maxDepth int) PV {
	r := &run{
		ctx:     ctx,
		zt:      board.NewZobristTable(0),
		tt:      NewTranspositionTable(s.ttSize),
		killers: newKillerTable(),
	}

	var best PV
	for depth := 1; depth <= maxDepth; depth++ {
		if ctx.Err() != nil {
			logw.Debugf(ctx, "search cancelled before depth %v, returning depth %v", depth, best.Depth)
			return best
		}

		start := time.Now()
		endgame := eval.IsEndgame(pos)
		score := r.negamax(pos, depth, eval.NegInf, eval.Inf, side, endgame, 0)
		if ctx.Err() != nil && best.Found {
			logw.Debugf(ctx, "search cancelled during depth %v, returning depth %v", depth, best.Depth)
			return best
		}

		pv := PV{Depth: depth, Move: r.rootMove, Found: r.rootFound, Score: score, Nodes: r.nodes, Time: time.Since(start)}
		logw.Debugf(ctx, "%v", pv)

		best = pv
		if !r.rootFound {
			break
		}
	}
	return best
}
