package board

// PseudoLegalMovesFrom generates every pseudo-legal move originating at sq.
// Ordering within the returned slice is unspecified; the search layer imposes its own ordering.
func (p *Position) PseudoLegalMovesFrom(sq Square) []Move {
	piece, ok := p.PieceAt(sq)
	if !ok {
		return nil
	}

	switch piece.Kind {
	case Pawn:
		return p.pawnMoves(sq, piece)
	case Knight:
		return p.steppingMoves(sq, piece, knightOffsets)
	case Bishop:
		return p.slidingMoves(sq, piece, bishopDirections)
	case Rook:
		return p.slidingMoves(sq, piece, rookDirections)
	case Queen:
		moves := p.slidingMoves(sq, piece, bishopDirections)
		return append(moves, p.slidingMoves(sq, piece, rookDirections)...)
	case King:
		return p.kingMoves(sq, piece)
	default:
		return nil
	}
}

func (p *Position) pawnMoves(sq Square, piece Piece) []Move {
	var moves []Move
	dir := piece.Color.PawnDirection()

	if dst, ok := sq.Offset(dir, 0); ok && p.IsEmpty(dst) {
		moves = append(moves, p.expandPawnDestination(sq, dst, piece, Normal, Piece{}, false)...)

		if sq.Row == piece.Color.PawnStartRow() {
			if dst2, ok := sq.Offset(2*dir, 0); ok && p.IsEmpty(dst2) {
				moves = append(moves, Move{From: sq, To: dst2, Moved: piece, Kind: DoublePawnPush})
			}
		}
	}

	for _, dc := range []int{-1, 1} {
		dst, ok := sq.Offset(dir, dc)
		if !ok {
			continue
		}
		if target, present := p.PieceAt(dst); present && target.Color != piece.Color {
			moves = append(moves, p.expandPawnDestination(sq, dst, piece, Normal, target, true)...)
			continue
		}
		if p.HasEnPassant && p.EnPassant == dst {
			captured := Square{Row: sq.Row, Col: dst.Col}
			capturedPiece, _ := p.PieceAt(captured)
			moves = append(moves, Move{
				From: sq, To: dst, Moved: piece, Kind: EnPassant,
				Captured: capturedPiece, HasCaptured: true,
			})
		}
	}
	return moves
}

// expandPawnDestination emits a single Normal move, or four Promotion moves if dst is on the
// promotion rank.
func (p *Position) expandPawnDestination(from, to Square, piece Piece, kind MoveKind, captured Piece, isCapture bool) []Move {
	if to.Row == piece.Color.PromotionRow() {
		moves := make([]Move, 0, len(PromotionKinds))
		for _, promo := range PromotionKinds {
			moves = append(moves, Move{
				From: from, To: to, Moved: piece, Kind: Promotion, PromotionKind: promo,
				Captured: captured, HasCaptured: isCapture,
			})
		}
		return moves
	}
	return []Move{{From: from, To: to, Moved: piece, Kind: kind, Captured: captured, HasCaptured: isCapture}}
}

func (p *Position) steppingMoves(sq Square, piece Piece, offsets [][2]int) []Move {
	var moves []Move
	for _, off := range offsets {
		dst, ok := sq.Offset(off[0], off[1])
		if !ok {
			continue
		}
		target, present := p.PieceAt(dst)
		if present && target.Color == piece.Color {
			continue
		}
		moves = append(moves, Move{From: sq, To: dst, Moved: piece, Captured: target, HasCaptured: present})
	}
	return moves
}

func (p *Position) slidingMoves(sq Square, piece Piece, directions [][2]int) []Move {
	var moves []Move
	for _, dir := range directions {
		cur := sq
		for {
			dst, ok := cur.Offset(dir[0], dir[1])
			if !ok {
				break
			}
			target, present := p.PieceAt(dst)
			if !present {
				moves = append(moves, Move{From: sq, To: dst, Moved: piece})
				cur = dst
				continue
			}
			if target.Color != piece.Color {
				moves = append(moves, Move{From: sq, To: dst, Moved: piece, Captured: target, HasCaptured: true})
			}
			break
		}
	}
	return moves
}

func (p *Position) kingMoves(sq Square, piece Piece) []Move {
	moves := p.steppingMoves(sq, piece, kingOffsets)
	moves = append(moves, p.castlingMoves(sq, piece)...)
	return moves
}

func (p *Position) castlingMoves(sq Square, king Piece) []Move {
	if king.HasMoved {
		return nil
	}
	opp := king.Color.Opponent()
	if p.SquareAttacked(sq, opp) {
		return nil
	}

	var moves []Move
	row := king.Color.BackRank()

	if p.hasCastlingRight(king.Color, CastlingKingside) {
		f := Square{Row: row, Col: 5}
		g := Square{Row: row, Col: 6}
		if p.IsEmpty(f) && p.IsEmpty(g) && !p.SquareAttacked(f, opp) && !p.SquareAttacked(g, opp) {
			moves = append(moves, Move{From: sq, To: g, Moved: king, Kind: CastlingKingside})
		}
	}
	if p.hasCastlingRight(king.Color, CastlingQueenside) {
		b := Square{Row: row, Col: 1}
		c := Square{Row: row, Col: 2}
		d := Square{Row: row, Col: 3}
		if p.IsEmpty(b) && p.IsEmpty(c) && p.IsEmpty(d) && !p.SquareAttacked(c, opp) && !p.SquareAttacked(d, opp) {
			moves = append(moves, Move{From: sq, To: c, Moved: king, Kind: CastlingQueenside})
		}
	}
	return moves
}

// PseudoLegalMoves generates every pseudo-legal move for the color across the whole position.
func (p *Position) PseudoLegalMoves(c Color) []Move {
	var moves []Move
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			sq := Square{Row: row, Col: col}
			if pc, ok := p.PieceAt(sq); ok && pc.Color == c {
				moves = append(moves, p.PseudoLegalMovesFrom(sq)...)
			}
		}
	}
	return moves
}

// LegalMoves filters pseudo-legal moves by king safety: a move is legal iff,
// after applying it to a copy, the moving side's own king is not in check. For each kept move it
// also sets CausesCheck. CausesCheckmate is deliberately left unset here -- it is expensive (it
// needs a full LegalMoves of the resulting position) and is deferred until the move is actually
// chosen for display; see ResolveCheckmate.
func (p *Position) LegalMoves(c Color) []Move {
	pseudo := p.PseudoLegalMoves(c)
	legal := make([]Move, 0, len(pseudo))

	for _, m := range pseudo {
		cp := p.Copy()
		cp.Apply(m)
		if cp.IsInCheck(c) {
			continue
		}

		if cp.IsInCheck(c.Opponent()) {
			m.CausesCheck = true
		}
		legal = append(legal, m)
	}
	return legal
}

// ResolveCheckmate computes the expensive CausesCheckmate property for a move that has already
// been determined to cause check, by testing whether the resulting position leaves the
// opponent with no legal moves. Intended to be called once, when a move is actually applied or
// displayed -- not during bulk legal-move generation.
func (p *Position) ResolveCheckmate(c Color, m Move) bool {
	if !m.CausesCheck {
		return false
	}
	cp := p.Copy()
	cp.Apply(m)
	return len(cp.LegalMoves(c.Opponent())) == 0
}
