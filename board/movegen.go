package board

import "github.com/daystram/rookery/position"

// PseudoLegalMoves returns the destinations a piece of kind p and side s on from could reach,
// without checking whether the move leaves its own king attacked.
func PseudoLegalMoves(b *Board, p Piece, s Side, from position.Pos) []position.Pos {
	switch p {
	case PiecePawn:
		return b.pawnMoves(s, from)
	case PieceKnight:
		return b.leaperMoves(s, from, offsetsKnight)
	case PieceBishop:
		return b.sliderMoves(s, from, raysBishop)
	case PieceRook:
		return b.sliderMoves(s, from, raysRook)
	case PieceQueen:
		return b.sliderMoves(s, from, raysQueen)
	case PieceKing:
		return append(b.leaperMoves(s, from, offsetsKing), b.castleMoves(s, from)...)
	default:
		return nil
	}
}

// PseudoLegalMovesFrom generates for whatever piece stands on from.
func (b *Board) PseudoLegalMovesFrom(from position.Pos) []position.Pos {
	c, ok := b.PieceAt(from)
	if !ok {
		return nil
	}
	return PseudoLegalMoves(b, c.Piece, c.Side, from)
}

func (b *Board) sliderMoves(s Side, from position.Pos, rays [][2]int) []position.Pos {
	var dsts []position.Pos
	for _, ray := range rays {
		for to := from.Offset(ray[0], ray[1]); to.Valid(); to = to.Offset(ray[0], ray[1]) {
			c := b.at(to)
			if c.IsEmpty() {
				dsts = append(dsts, to)
				continue
			}
			if c.Side != s {
				dsts = append(dsts, to)
			}
			break
		}
	}
	return dsts
}

func (b *Board) leaperMoves(s Side, from position.Pos, offsets [][2]int) []position.Pos {
	var dsts []position.Pos
	for _, off := range offsets {
		to := from.Offset(off[0], off[1])
		if !to.Valid() {
			continue
		}
		if c := b.at(to); c.IsEmpty() || c.Side != s {
			dsts = append(dsts, to)
		}
	}
	return dsts
}

func (b *Board) pawnMoves(s Side, from position.Pos) []position.Pos {
	var dsts []position.Pos
	fwd := s.Forward()
	one := from.Offset(0, fwd)
	if one.Valid() && b.at(one).IsEmpty() {
		dsts = append(dsts, one)
		two := one.Offset(0, fwd)
		if from.Rank == s.PawnRank() && two.Valid() && b.at(two).IsEmpty() {
			dsts = append(dsts, two)
		}
	}
	for _, df := range []int{-1, 1} {
		to := from.Offset(df, fwd)
		if !to.Valid() {
			continue
		}
		c := b.at(to)
		if !c.IsEmpty() && c.Side != s {
			dsts = append(dsts, to)
			continue
		}
		if c.IsEmpty() && b.canEnPassantAs(s, from, to) {
			dsts = append(dsts, to)
		}
	}
	return dsts
}

func (b *Board) castleMoves(s Side, from position.Pos) []position.Pos {
	if from != homeKing(s) {
		return nil
	}
	var dsts []position.Pos
	for _, kingSide := range []bool{true, false} {
		d := NewCastleDirection(s, kingSide)
		if b.canCastle(d) {
			_, to := d.KingHops()
			dsts = append(dsts, to)
		}
	}
	return dsts
}

// canCastle checks every castling precondition against the current position.
func (b *Board) canCastle(d CastleDirection) bool {
	s := d.Side()
	kingFrom, kingTo := d.KingHops()
	rookFrom, _ := d.RookHops()
	if !b.castleAvailable(d) {
		return false
	}
	if !b.IsPathClear(kingFrom, rookFrom) {
		return false
	}
	if b.IsInCheck(s) {
		return false
	}
	transit := kingFrom.Offset(position.Sign(kingTo.File-kingFrom.File), 0)
	return !b.IsSquareAttacked(transit, s) && !b.IsSquareAttacked(kingTo, s)
}

// castleAvailable reports whether the castling rights and the pieces for d are in place.
func (b *Board) castleAvailable(d CastleDirection) bool {
	s := d.Side()
	kingFrom, _ := d.KingHops()
	rookFrom, _ := d.RookHops()
	return !b.kingMoved[s] && !b.rookMoved[s][d.wing()] &&
		b.at(kingFrom).Is(PieceKing, s) && b.at(rookFrom).Is(PieceRook, s)
}

// CanEnPassantCapture reports whether the pawn on from may capture en passant onto to.
func (b *Board) CanEnPassantCapture(from, to position.Pos) bool {
	c, ok := b.PieceAt(from)
	if !ok || c.Piece != PiecePawn {
		return false
	}
	if !to.Valid() || to.Rank-from.Rank != c.Side.Forward() || position.Abs(to.File-from.File) != 1 {
		return false
	}
	return b.at(to).IsEmpty() && b.canEnPassantAs(c.Side, from, to)
}

func (b *Board) canEnPassantAs(s Side, from, to position.Pos) bool {
	if !b.lastDoubleMove.Valid() {
		return false
	}
	if to.File != b.lastDoubleMove.File || from.Rank != b.lastDoubleMove.Rank {
		return false
	}
	return b.at(b.lastDoubleMove).Is(PiecePawn, s.Opposite())
}

// isEnPassant reports whether from-to is shaped like an en passant capture on this board.
func (b *Board) isEnPassant(from, to position.Pos) bool {
	c := b.at(from)
	return c.Piece == PiecePawn && from.File != to.File && b.at(to).IsEmpty()
}
