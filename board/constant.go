package board

import "github.com/daystram/rookery/position"

const (
	Width      = position.MaxComponentScalar
	Height     = position.MaxComponentScalar
	TotalCells = Width * Height
)

var (
	DefaultStartingPositionFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

	offsetsKnight = [][2]int{
		{1, 2}, {2, 1}, {2, -1}, {1, -2},
		{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
	}
	offsetsKing = [][2]int{
		{0, 1}, {1, 1}, {1, 0}, {1, -1},
		{0, -1}, {-1, -1}, {-1, 0}, {-1, 1},
	}
	raysBishop = [][2]int{{1, 1}, {1, -1}, {-1, -1}, {-1, 1}}
	raysRook   = [][2]int{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}
	raysQueen  = append(append([][2]int{}, raysRook...), raysBishop...)
)

// homeKing returns the square the side's king starts on.
func homeKing(s Side) position.Pos {
	return position.New(position.FileE, s.HomeRank())
}

// homeRook returns the corner the side's rook starts on for the given wing.
func homeRook(s Side, wing int) position.Pos {
	if wing == wingRight {
		return position.New(position.FileH, s.HomeRank())
	}
	return position.New(position.FileA, s.HomeRank())
}
