package board

import (
	"errors"
	"fmt"

	"github.com/daystram/rookery/position"
)

var (
	ErrWhiteKingCount = errors.New("white must have exactly one king")
	ErrBlackKingCount = errors.New("black must have exactly one king")
	ErrPawnOnBackRank = errors.New("pawns cannot be on the first or last rank")
	ErrKingInCheck    = errors.New("king cannot start in check")
)

// ValidateSetup checks that the position can be played from: one king per side,
// no pawn on the first or last rank, and neither king attacked.
func (b *Board) ValidateSetup() error {
	var kings [2]int
	for rank := 0; rank < Height; rank++ {
		for file := 0; file < Width; file++ {
			c := b.grid[rank][file]
			switch c.Piece {
			case PieceKing:
				kings[c.Side]++
			case PiecePawn:
				if rank == 0 || rank == Height-1 {
					return fmt.Errorf("%w: %s pawn on %s", ErrPawnOnBackRank, c.Side, position.New(file, rank))
				}
			}
		}
	}
	if kings[SideWhite] != 1 {
		return fmt.Errorf("%w: found %d", ErrWhiteKingCount, kings[SideWhite])
	}
	if kings[SideBlack] != 1 {
		return fmt.Errorf("%w: found %d", ErrBlackKingCount, kings[SideBlack])
	}
	for _, s := range []Side{SideWhite, SideBlack} {
		if b.IsInCheck(s) {
			return fmt.Errorf("%w: %s", ErrKingInCheck, s)
		}
	}
	return nil
}
