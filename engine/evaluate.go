package engine

import (
	"github.com/daystram/rookery/board"
	"github.com/daystram/rookery/position"
)

const (
	ScoreCheck     int32 = 50
	ScoreCheckmate int32 = 10000
)

var (
	scoreMaterial = [6 + 1]int32{
		board.PiecePawn:   100,
		board.PieceKnight: 320,
		board.PieceBishop: 330,
		board.PieceRook:   500,
		board.PieceQueen:  900,
		board.PieceKing:   20000,
	}

	// PST table taken from https://www.chessprogramming.org/Simplified_Evaluation_Function
	// Rows run from rank 8 down to rank 1, as seen by White.
	scorePiecePosition = [6 + 1][64]int32{
		board.PiecePawn: {
			0, 0, 0, 0, 0, 0, 0, 0,
			50, 50, 50, 50, 50, 50, 50, 50,
			10, 10, 20, 30, 30, 20, 10, 10,
			5, 5, 10, 25, 25, 10, 5, 5,
			0, 0, 0, 20, 20, 0, 0, 0,
			5, -5, -10, 0, 0, -10, -5, 5,
			5, 10, 10, -20, -20, 10, 10, 5,
			0, 0, 0, 0, 0, 0, 0, 0,
		},
		board.PieceKnight: {
			-50, -40, -30, -30, -30, -30, -40, -50,
			-40, -20, 0, 0, 0, 0, -20, -40,
			-30, 0, 10, 15, 15, 10, 0, -30,
			-30, 5, 15, 20, 20, 15, 5, -30,
			-30, 0, 15, 20, 20, 15, 0, -30,
			-30, 5, 10, 15, 15, 10, 5, -30,
			-40, -20, 0, 5, 5, 0, -20, -40,
			-50, -40, -30, -30, -30, -30, -40, -50,
		},
		board.PieceBishop: {
			-20, -10, -10, -10, -10, -10, -10, -20,
			-10, 0, 0, 0, 0, 0, 0, -10,
			-10, 0, 5, 10, 10, 5, 0, -10,
			-10, 5, 5, 10, 10, 5, 5, -10,
			-10, 0, 10, 10, 10, 10, 0, -10,
			-10, 10, 10, 10, 10, 10, 10, -10,
			-10, 5, 0, 0, 0, 0, 5, -10,
			-20, -10, -10, -10, -10, -10, -10, -20,
		},
	}
)

// pstIndex maps a square to its scorePiecePosition index for side s. Black reads the table
// mirrored across the ranks.
func pstIndex(s board.Side, pos position.Pos) int {
	if s == board.SideWhite {
		return (board.Height-1-pos.Rank)*board.Width + pos.File
	}
	return pos.Rank*board.Width + pos.File
}

// Evaluate returns the static score of b. The score is positive in favour of side s.
// Material and positional bonuses are summed per side, then check and checkmate adjust
// the total: a checked opponent is worth ScoreCheck and a mated one ScoreCheckmate.
func Evaluate(b *board.Board, s board.Side) int32 {
	var score int32
	for i := 0; i < board.TotalCells; i++ {
		pos := position.FromIndex(i)
		c, ok := b.PieceAt(pos)
		if !ok {
			continue
		}
		v := scoreMaterial[c.Piece] + scorePiecePosition[c.Piece][pstIndex(c.Side, pos)]
		if c.Side == s {
			score += v
		} else {
			score -= v
		}
	}

	opp := s.Opposite()
	switch {
	case b.IsCheckmate(opp):
		score += ScoreCheckmate
	case b.IsInCheck(opp):
		score += ScoreCheck
	}
	switch {
	case b.IsCheckmate(s):
		score -= ScoreCheckmate
	case b.IsInCheck(s):
		score -= ScoreCheck
	}
	return score
}
