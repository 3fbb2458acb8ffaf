package board

import "github.com/daystram/rookery/position"

// IsSquareAttacked reports whether any piece of the side opposing defender attacks sq.
// Only piece geometry is consulted, so it is safe to call while generating king moves.
func (b *Board) IsSquareAttacked(sq position.Pos, defender Side) bool {
	if !sq.Valid() {
		return false
	}
	attacker := defender.Opposite()
	for rank := 0; rank < Height; rank++ {
		for file := 0; file < Width; file++ {
			c := b.grid[rank][file]
			if c.IsEmpty() || c.Side != attacker {
				continue
			}
			if b.attacks(position.New(file, rank), c.Piece, attacker, sq) {
				return true
			}
		}
	}
	return false
}

func (b *Board) attacks(from position.Pos, p Piece, s Side, sq position.Pos) bool {
	df, dr := sq.File-from.File, sq.Rank-from.Rank
	adf, adr := position.Abs(df), position.Abs(dr)
	if adf == 0 && adr == 0 {
		return false
	}
	switch p {
	case PiecePawn:
		return dr == s.Forward() && adf == 1
	case PieceKnight:
		return (adf == 1 && adr == 2) || (adf == 2 && adr == 1)
	case PieceBishop:
		return adf == adr && b.IsPathClear(from, sq)
	case PieceRook:
		return (df == 0 || dr == 0) && b.IsPathClear(from, sq)
	case PieceQueen:
		return (adf == adr || df == 0 || dr == 0) && b.IsPathClear(from, sq)
	case PieceKing:
		return adf <= 1 && adr <= 1
	default:
		return false
	}
}

// IsPathClear reports whether every square strictly between from and to is empty.
// The squares must share a file, a rank or a diagonal.
func (b *Board) IsPathClear(from, to position.Pos) bool {
	if !from.Valid() || !to.Valid() {
		return false
	}
	df, dr := to.File-from.File, to.Rank-from.Rank
	if df != 0 && dr != 0 && position.Abs(df) != position.Abs(dr) {
		return false
	}
	stepF, stepR := position.Sign(df), position.Sign(dr)
	for cur := from.Offset(stepF, stepR); cur != to; cur = cur.Offset(stepF, stepR) {
		if !b.at(cur).IsEmpty() {
			return false
		}
	}
	return true
}

// IsInCheck reports whether the king of side s is attacked. A side without a king is never in check.
func (b *Board) IsInCheck(s Side) bool {
	king, ok := b.findKing(s)
	if !ok {
		return false
	}
	return b.IsSquareAttacked(king, s)
}

func (b *Board) findKing(s Side) (position.Pos, bool) {
	for rank := 0; rank < Height; rank++ {
		for file := 0; file < Width; file++ {
			if b.grid[rank][file].Is(PieceKing, s) {
				return position.New(file, rank), true
			}
		}
	}
	return position.None, false
}
