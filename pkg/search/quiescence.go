package search

import (
	"github.com/rookwise/rookwise/pkg/board"
	"github.com/rookwise/rookwise/pkg/eval"
	"github.com/seekerror/stdlib/pkg/util/contextx"
)

// quiescence resolves tactical exchanges before handing off to the static evaluator, avoiding
// the horizon effect. Stand-pat first, then captures only, MVV-LVA ordered.
func (r *run) quiescence(pos *board.Position, depth int, alpha, beta eval.Score, side board.Color, endgame bool) eval.Score {
	r.nodes++
	if contextx.IsCancelled(r.ctx) {
		return alpha
	}

	standPat := eval.Evaluate(pos, side, endgame)
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}
	if depth <= 0 {
		return alpha
	}

	captures := capturesOnly(pos.LegalMoves(side))
	orderCaptures(captures)

	for _, m := range captures {
		cp := pos.Copy()
		cp.Apply(m)

		score := -r.quiescence(cp, depth-1, -beta, -alpha, side.Opponent(), eval.IsEndgame(cp))
		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}
	return alpha
}
