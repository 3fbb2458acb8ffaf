package board

import "github.com/daystram/rookery/position"

type CastleDirection uint8

const (
	CastleDirectionUnknown CastleDirection = iota
	CastleDirectionWhiteRight
	CastleDirectionWhiteLeft
	CastleDirectionBlackRight
	CastleDirectionBlackLeft
)

const (
	wingLeft  = 0 // a-file rook
	wingRight = 1 // h-file rook
)

var (
	// hops per direction: {from, to}
	posCastling = [4 + 1][6 + 1][2]position.Pos{
		CastleDirectionWhiteRight: {
			PieceKing: {position.E1, position.G1},
			PieceRook: {position.H1, position.F1},
		},
		CastleDirectionWhiteLeft: {
			PieceKing: {position.E1, position.C1},
			PieceRook: {position.A1, position.D1},
		},
		CastleDirectionBlackRight: {
			PieceKing: {position.E8, position.G8},
			PieceRook: {position.H8, position.F8},
		},
		CastleDirectionBlackLeft: {
			PieceKing: {position.E8, position.C8},
			PieceRook: {position.A8, position.D8},
		},
	}
)

func NewCastleDirection(s Side, kingSide bool) CastleDirection {
	switch {
	case s == SideWhite && kingSide:
		return CastleDirectionWhiteRight
	case s == SideWhite:
		return CastleDirectionWhiteLeft
	case kingSide:
		return CastleDirectionBlackRight
	default:
		return CastleDirectionBlackLeft
	}
}

func (d CastleDirection) String() string {
	switch d {
	case CastleDirectionWhiteRight:
		return "White 0-0"
	case CastleDirectionWhiteLeft:
		return "White 0-0-0"
	case CastleDirectionBlackRight:
		return "Black 0-0"
	case CastleDirectionBlackLeft:
		return "Black 0-0-0"
	default:
		return ""
	}
}

func (d CastleDirection) IsWhite() bool {
	return d == CastleDirectionWhiteRight || d == CastleDirectionWhiteLeft
}

func (d CastleDirection) IsRight() bool {
	return d == CastleDirectionWhiteRight || d == CastleDirectionBlackRight
}

func (d CastleDirection) Side() Side {
	if d.IsWhite() {
		return SideWhite
	}
	return SideBlack
}

func (d CastleDirection) wing() int {
	if d.IsRight() {
		return wingRight
	}
	return wingLeft
}

// KingHops returns the king's origin and destination squares.
func (d CastleDirection) KingHops() (position.Pos, position.Pos) {
	hops := posCastling[d][PieceKing]
	return hops[0], hops[1]
}

// RookHops returns the rook's origin and destination squares.
func (d CastleDirection) RookHops() (position.Pos, position.Pos) {
	hops := posCastling[d][PieceRook]
	return hops[0], hops[1]
}

// castleDirectionOf reports which castling a king hop describes, if any.
func castleDirectionOf(s Side, from, to position.Pos) CastleDirection {
	for _, d := range []CastleDirection{NewCastleDirection(s, true), NewCastleDirection(s, false)} {
		kingFrom, kingTo := d.KingHops()
		if from == kingFrom && to == kingTo {
			return d
		}
	}
	return CastleDirectionUnknown
}
