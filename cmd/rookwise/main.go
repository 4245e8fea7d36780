// Command rookwise is a synchronous console front-end for playing against the engine.
package main

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/rookwise/rookwise/pkg/board"
	"github.com/rookwise/rookwise/pkg/engine"
	"github.com/seekerror/logw"
)

var difficulty = flag.String("difficulty", "medium", "easy, medium or hard")

func main() {
	flag.Parse()
	ctx := context.Background()

	e := engine.New(ctx, "rookwise", "rookwise contributors")
	e.SetDifficulty(parseDifficulty(*difficulty))

	in := engine.ReadStdinLines(ctx)
	out := make(chan string, 100)
	go engine.WriteStdoutLines(ctx, out)

	printBoard(out, e)
	out <- "White to move. Enter a move (e.g. e2e4), or: new, resign, draw, quit."

	for line := range in {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "quit", "exit":
			close(out)
			return

		case "new":
			e.Reset(ctx)
			printBoard(out, e)
			continue

		case "resign":
			g := e.Game()
			g.Resign(g.CurrentTurn())
			out <- g.StatusMessage()
			continue

		case "draw":
			e.Game().AgreeDraw()
			out <- e.Game().StatusMessage()
			continue
		}

		m, err := board.ParseMove(fields[0])
		if err != nil {
			out <- fmt.Sprintf("invalid move: %v", err)
			continue
		}
		if !e.Apply(ctx, resolve(e, m)) {
			out <- fmt.Sprintf("illegal move: %v", fields[0])
			continue
		}
		printBoard(out, e)

		if e.Game().Status().IsTerminal() {
			out <- e.Game().StatusMessage()
			continue
		}

		reply, ok := e.BestMove(ctx)
		if !ok {
			out <- "engine has no move"
			continue
		}
		e.Apply(ctx, reply)
		out <- fmt.Sprintf("rookwise plays %v (%v nodes)", reply, e.NodesSearched())
		printBoard(out, e)

		if e.Game().Status().IsTerminal() {
			out <- e.Game().StatusMessage()
		}
	}

	logw.Infof(ctx, "rookwise exited")
}

// resolve looks up the parsed candidate in the live legal-move list to recover its full
// metadata (move kind, captured piece, check flags). ParseMove only yields Normal or Promotion
// moves, so the lookup matches on From/To/PromotionKind rather than on Equals: that is what
// lets "e2e4" find the DoublePawnPush, "e1g1" the castling move and en-passant captures.
func resolve(e *engine.Engine, candidate board.Move) board.Move {
	for _, m := range e.Game().LegalMoves() {
		if m.From == candidate.From && m.To == candidate.To && m.PromotionKind == candidate.PromotionKind {
			return m
		}
	}
	return candidate
}

func printBoard(out chan<- string, e *engine.Engine) {
	out <- e.Game().Position().String()
}

func parseDifficulty(s string) engine.Difficulty {
	switch strings.ToLower(s) {
	case "easy":
		return engine.Easy
	case "hard":
		return engine.Hard
	default:
		return engine.Medium
	}
}
