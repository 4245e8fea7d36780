// Package engine ties together board state and search into a single synchronous game-playing
// facade.
package engine

import (
	"context"
	"fmt"
	"sync"

	"github.com/rookwise/rookwise/pkg/board"
	"github.com/rookwise/rookwise/pkg/eval"
	"github.com/rookwise/rookwise/pkg/search"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"
)

var version = build.NewVersion(0, 1, 0)

// Difficulty selects a fixed search depth.
type Difficulty uint8

const (
	Easy Difficulty = iota
	Medium
	Hard
)

func (d Difficulty) depth() int {
	switch d {
	case Easy:
		return 2
	case Hard:
		return 5
	default:
		return 4
	}
}

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Hard:
		return "hard"
	default:
		return "medium"
	}
}

const defaultTTSize = 1 << 16 // entries

// Engine wraps a Game with a bounded-depth search, offering synchronous move selection at a
// configurable Difficulty. Safe for concurrent use; every call is serialized by mu.
type Engine struct {
	name, author string

	search *search.Search
	g      *board.Game
	diff   Difficulty

	lastNodes uint64
	mu        sync.Mutex
}

// New returns an engine at the standard starting position.
func New(ctx context.Context, name, author string) *Engine {
	e := &Engine{
		name:   name,
		author: author,
		search: search.NewSearch(defaultTTSize),
		g:      board.NewGame(),
		diff:   Medium,
	}
	logw.Infof(ctx, "Initialized engine: %v, difficulty=%v", e.Name(), e.diff)
	return e
}

// Name returns the engine name and version.
func (e *Engine) Name() string {
	return fmt.Sprintf("%v %v", e.name, version)
}

// Author returns the author.
func (e *Engine) Author() string {
	return e.author
}

// SetDifficulty configures the search depth used by BestMove.
func (e *Engine) SetDifficulty(d Difficulty) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.diff = d
}

// Difficulty returns the current difficulty.
func (e *Engine) Difficulty() Difficulty {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.diff
}

// Reset restores the starting position, clearing move history.
func (e *Engine) Reset(ctx context.Context) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.g.Reset()
	logw.Infof(ctx, "Reset: %v", e.g)
}

// Game returns the live game. Callers must not mutate board state directly; use Apply.
func (e *Engine) Game() *board.Game {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.g
}

// Apply applies a move chosen by the opponent (or UI), validated against the current legal set.
func (e *Engine) Apply(ctx context.Context, m board.Move) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	ok := e.g.Apply(m)
	if ok {
		logw.Infof(ctx, "Applied %v: %v", m, e.g)
	}
	return ok
}

// BestMove searches the current position at the configured difficulty and, if the game is not
// already over, returns the chosen move. The move is NOT applied automatically; callers apply
// it via Apply.
func (e *Engine) BestMove(ctx context.Context) (board.Move, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.g.Status().IsTerminal() {
		return board.Move{}, false
	}

	pos := e.g.Position().Copy()
	turn := e.g.CurrentTurn()
	depth := e.diff.depth()

	pv := e.search.BestMove(ctx, pos, turn, depth)
	e.lastNodes = pv.Nodes

	logw.Infof(ctx, "Searched %v: %v", e.g, pv)
	if !pv.Found {
		return board.Move{}, false
	}
	return pv.Move, true
}

// NodesSearched returns the node count of the most recently completed BestMove call.
func (e *Engine) NodesSearched() uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.lastNodes
}

// Evaluate returns the static evaluation of the current position from the side-to-move's
// perspective, a convenience for diagnostics and the console front-end.
func (e *Engine) Evaluate() eval.Score {
	e.mu.Lock()
	defer e.mu.Unlock()

	pos := e.g.Position()
	return eval.Evaluate(pos, e.g.CurrentTurn(), eval.IsEndgame(pos))
}
