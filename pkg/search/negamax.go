package search

import (
	"context"

	"github.com/rookwise/rookwise/pkg/board"
	"github.com/rookwise/rookwise/pkg/eval"
	"github.com/seekerror/stdlib/pkg/util/contextx"
)

// qDepth is the quiescence extension depth.
const qDepth = 4

// run holds the per-search mutable state: node counter, transposition table and killer tables.
// A run is built fresh by Search.BestMove for each call (see search.go) so concurrent callers
// using distinct Search instances never share state.
type run struct {
	ctx     context.Context
	zt      *board.ZobristTable
	tt      *TranspositionTable
	killers *killerTable
	nodes   uint64

	rootMove  board.Move
	rootFound bool
}

// negamax is alpha-beta search with TT probing, null-move pruning, quiescence at the horizon,
// and killer/MVV-LVA move ordering. Cooperative cancellation is optional quality-of-
// implementation, not correctness-critical, so this only checks the run's context at each node
// rather than threading a cancel error up the call stack.
func (r *run) negamax(pos *board.Position, depth int, alpha, beta eval.Score, side board.Color, endgame bool, ply int) eval.Score {
	r.nodes++
	if ply > 0 && contextx.IsCancelled(r.ctx) {
		return 0
	}

	fp := r.zt.Hash(pos, side)
	if e, ok := r.tt.Probe(fp); ok && e.depth >= depth {
		switch e.bound {
		case Exact:
			return e.score
		case LowerBound:
			if e.score > alpha {
				alpha = e.score
			}
		case UpperBound:
			if e.score < beta {
				beta = e.score
			}
		}
		if alpha >= beta {
			return e.score
		}
	}

	if depth <= 0 {
		return r.quiescence(pos, qDepth, alpha, beta, side, endgame)
	}

	moves := pos.LegalMoves(side)
	if len(moves) == 0 {
		if pos.IsInCheck(side) {
			return -eval.Mate + eval.Score(ply)
		}
		return 0
	}

	if depth >= 3 && !pos.IsInCheck(side) && !endgame {
		const nullMoveReduction = 2
		score := -r.negamax(pos, depth-1-nullMoveReduction, -beta, -beta+1, side.Opponent(), endgame, ply+1)
		if score >= beta {
			return beta
		}
	}

	ttMove, hasTTMove := board.Move{}, false
	if e, ok := r.tt.Probe(fp); ok {
		ttMove, hasTTMove = e.move, true
	}
	orderMoves(moves, ttMove, hasTTMove, r.killers, ply)

	origAlpha := alpha
	best := moves[0]
	bestScore := eval.NegInf

	for _, m := range moves {
		cp := pos.Copy()
		cp.Apply(m)

		score := -r.negamax(cp, depth-1, -beta, -alpha, side.Opponent(), eval.IsEndgame(cp), ply+1)

		if score > bestScore {
			bestScore = score
			best = m
		}
		if bestScore > alpha {
			alpha = bestScore
		}
		if alpha >= beta {
			if !m.IsCapture() {
				r.killers.Record(ply, m)
			}
			break
		}
	}

	bound := Exact
	switch {
	case bestScore <= origAlpha:
		bound = UpperBound
	case bestScore >= beta:
		bound = LowerBound
	}
	r.tt.Store(fp, depth, bound, bestScore, best)

	if ply == 0 {
		r.rootMove, r.rootFound = best, true
	}

	return bestScore
}
